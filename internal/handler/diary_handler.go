package handler

import (
	"strconv"

	"github.com/dayletter/dayletter-backend/internal/common"
	"github.com/dayletter/dayletter-backend/internal/domain"
	"github.com/dayletter/dayletter-backend/internal/middleware"
	"github.com/dayletter/dayletter-backend/internal/service"
	"github.com/gin-gonic/gin"
)

// DiaryHandler handles diary requests
type DiaryHandler struct {
	service service.DiaryService
}

// NewDiaryHandler creates a new DiaryHandler
func NewDiaryHandler(service service.DiaryService) *DiaryHandler {
	return &DiaryHandler{service: service}
}

// CreateDiary handles POST /api/v1/diaries
func (h *DiaryHandler) CreateDiary(c *gin.Context) {
	memberIdx := middleware.GetUserIdx(c)

	var req domain.CreateDiaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, 400, "Invalid request body", err)
		return
	}

	diary, err := h.service.CreateDiary(memberIdx, &req)
	if err != nil {
		common.FailFromError(c, err)
		return
	}

	common.SuccessResponse(c, diary, nil)
}

// UpdateDiary handles PUT /api/v1/diaries/:diaryIdx
func (h *DiaryHandler) UpdateDiary(c *gin.Context) {
	memberIdx := middleware.GetUserIdx(c)

	diaryIdx, err := strconv.Atoi(c.Param("diaryIdx"))
	if err != nil || diaryIdx < 1 {
		common.ErrorResponse(c, 400, "잘못된 식별자입니다", err)
		return
	}

	var req domain.UpdateDiaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, 400, "Invalid request body", err)
		return
	}

	diary, err := h.service.UpdateDiary(memberIdx, diaryIdx, &req)
	if err != nil {
		common.FailFromError(c, err)
		return
	}

	common.SuccessResponse(c, diary, nil)
}

// DeleteDiary handles DELETE /api/v1/diaries/:diaryIdx
func (h *DiaryHandler) DeleteDiary(c *gin.Context) {
	memberIdx := middleware.GetUserIdx(c)

	diaryIdx, err := strconv.Atoi(c.Param("diaryIdx"))
	if err != nil || diaryIdx < 1 {
		common.ErrorResponse(c, 400, "잘못된 식별자입니다", err)
		return
	}

	if err := h.service.DeleteDiary(memberIdx, diaryIdx); err != nil {
		common.FailFromError(c, err)
		return
	}

	common.SuccessResponse(c, gin.H{"deleted": diaryIdx}, nil)
}

// GetDiary handles GET /api/v1/diaries/:diaryIdx
func (h *DiaryHandler) GetDiary(c *gin.Context) {
	memberIdx := middleware.GetUserIdx(c)

	diaryIdx, err := strconv.Atoi(c.Param("diaryIdx"))
	if err != nil || diaryIdx < 1 {
		common.ErrorResponse(c, 400, "잘못된 식별자입니다", err)
		return
	}

	diary, err := h.service.GetDiary(memberIdx, diaryIdx)
	if err != nil {
		common.FailFromError(c, err)
		return
	}

	common.SuccessResponse(c, diary, nil)
}

package handler

import (
	"strconv"

	"github.com/dayletter/dayletter-backend/internal/common"
	"github.com/dayletter/dayletter-backend/internal/domain"
	"github.com/dayletter/dayletter-backend/internal/middleware"
	"github.com/dayletter/dayletter-backend/internal/service"
	"github.com/gin-gonic/gin"
)

// LetterHandler handles letter requests
type LetterHandler struct {
	service service.LetterService
}

// NewLetterHandler creates a new LetterHandler
func NewLetterHandler(service service.LetterService) *LetterHandler {
	return &LetterHandler{service: service}
}

// SendLetter handles POST /api/v1/letters
func (h *LetterHandler) SendLetter(c *gin.Context) {
	memberIdx := middleware.GetUserIdx(c)

	var req domain.SendLetterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, 400, "Invalid request body", err)
		return
	}

	letter, err := h.service.SendLetter(memberIdx, &req)
	if err != nil {
		common.FailFromError(c, err)
		return
	}

	common.SuccessResponse(c, letter, nil)
}

// GetLetter handles GET /api/v1/letters/:letterIdx
func (h *LetterHandler) GetLetter(c *gin.Context) {
	memberIdx := middleware.GetUserIdx(c)

	letterIdx, err := strconv.Atoi(c.Param("letterIdx"))
	if err != nil || letterIdx < 1 {
		common.ErrorResponse(c, 400, "잘못된 식별자입니다", err)
		return
	}

	letter, err := h.service.GetLetter(memberIdx, letterIdx)
	if err != nil {
		common.FailFromError(c, err)
		return
	}

	common.SuccessResponse(c, letter, nil)
}

// DeleteLetter handles DELETE /api/v1/letters/:letterIdx
func (h *LetterHandler) DeleteLetter(c *gin.Context) {
	memberIdx := middleware.GetUserIdx(c)

	letterIdx, err := strconv.Atoi(c.Param("letterIdx"))
	if err != nil || letterIdx < 1 {
		common.ErrorResponse(c, 400, "잘못된 식별자입니다", err)
		return
	}

	if err := h.service.DeleteLetter(memberIdx, letterIdx); err != nil {
		common.FailFromError(c, err)
		return
	}

	common.SuccessResponse(c, gin.H{"deleted": letterIdx}, nil)
}

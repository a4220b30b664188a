package handler

import (
	"strconv"

	"github.com/dayletter/dayletter-backend/internal/common"
	"github.com/dayletter/dayletter-backend/internal/domain"
	"github.com/dayletter/dayletter-backend/internal/middleware"
	"github.com/dayletter/dayletter-backend/internal/service"
	"github.com/gin-gonic/gin"
)

// HistoryHandler handles history feed requests
type HistoryHandler struct {
	service service.HistoryService
}

// NewHistoryHandler creates a new HistoryHandler
func NewHistoryHandler(service service.HistoryService) *HistoryHandler {
	return &HistoryHandler{service: service}
}

// GetHistoryList handles GET /api/v1/histories/list/:pageNum
// filtering = sender | diary | letter, search는 선택.
func (h *HistoryHandler) GetHistoryList(c *gin.Context) {
	memberIdx := middleware.GetUserIdx(c)

	page, err := strconv.Atoi(c.Param("pageNum"))
	if err != nil {
		common.ErrorResponse(c, 400, "잘못된 페이지 번호입니다", err)
		return
	}

	filter, ok := domain.ParseHistoryFilter(c.DefaultQuery("filtering", "sender"))
	if !ok {
		common.ErrorResponse(c, 400, "filtering은 sender, diary, letter 중 하나여야 합니다", nil)
		return
	}

	list, cursor, err := h.service.GetHistoryList(memberIdx, filter, c.Query("search"), page)
	if err != nil {
		common.FailFromError(c, err)
		return
	}

	common.SuccessResponse(c, list, cursor)
}

// GetSenderHistory handles GET /api/v1/histories/sender/:senderNickname/:pageNum
func (h *HistoryHandler) GetSenderHistory(c *gin.Context) {
	memberIdx := middleware.GetUserIdx(c)

	page, err := strconv.Atoi(c.Param("pageNum"))
	if err != nil {
		common.ErrorResponse(c, 400, "잘못된 페이지 번호입니다", err)
		return
	}

	senderNickname := c.Param("senderNickname")
	if senderNickname == "" {
		common.ErrorResponse(c, 400, "발신인 닉네임이 필요합니다", nil)
		return
	}

	items, cursor, err := h.service.GetSenderHistory(memberIdx, senderNickname, c.Query("search"), page)
	if err != nil {
		common.FailFromError(c, err)
		return
	}

	common.SuccessResponse(c, items, cursor)
}

// GetThread handles GET /api/v1/histories/:type/:idx
// type = diary | letter | reply. reply로 들어오면 그 답장이 속한 대화 전체를
// 돌려주고 해당 답장에 focus 표시를 한다.
func (h *HistoryHandler) GetThread(c *gin.Context) {
	memberIdx := middleware.GetUserIdx(c)

	kind, ok := domain.ParseHistoryKind(c.Param("type"))
	if !ok {
		common.ErrorResponse(c, 400, "type은 diary, letter, reply 중 하나여야 합니다", nil)
		return
	}

	idx, err := strconv.Atoi(c.Param("idx"))
	if err != nil || idx < 1 {
		common.ErrorResponse(c, 400, "잘못된 식별자입니다", err)
		return
	}

	thread, err := h.service.GetThread(memberIdx, kind, idx)
	if err != nil {
		common.FailFromError(c, err)
		return
	}

	common.SuccessResponse(c, thread, nil)
}

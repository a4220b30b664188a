package handler

import (
	"strconv"

	"github.com/dayletter/dayletter-backend/internal/common"
	"github.com/dayletter/dayletter-backend/internal/domain"
	"github.com/dayletter/dayletter-backend/internal/middleware"
	"github.com/dayletter/dayletter-backend/internal/service"
	"github.com/gin-gonic/gin"
)

// ReplyHandler handles reply requests
type ReplyHandler struct {
	service service.ReplyService
}

// NewReplyHandler creates a new ReplyHandler
func NewReplyHandler(service service.ReplyService) *ReplyHandler {
	return &ReplyHandler{service: service}
}

// CreateReply handles POST /api/v1/replies
func (h *ReplyHandler) CreateReply(c *gin.Context) {
	memberIdx := middleware.GetUserIdx(c)

	var req domain.CreateReplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, 400, "Invalid request body", err)
		return
	}

	reply, err := h.service.CreateReply(memberIdx, &req)
	if err != nil {
		common.FailFromError(c, err)
		return
	}

	common.SuccessResponse(c, reply, nil)
}

// DeleteReply handles DELETE /api/v1/replies/:replyIdx
func (h *ReplyHandler) DeleteReply(c *gin.Context) {
	memberIdx := middleware.GetUserIdx(c)

	replyIdx, err := strconv.Atoi(c.Param("replyIdx"))
	if err != nil || replyIdx < 1 {
		common.ErrorResponse(c, 400, "잘못된 식별자입니다", err)
		return
	}

	if err := h.service.DeleteReply(memberIdx, replyIdx); err != nil {
		common.FailFromError(c, err)
		return
	}

	common.SuccessResponse(c, gin.H{"deleted": replyIdx}, nil)
}

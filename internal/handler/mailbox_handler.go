package handler

import (
	"strconv"

	"github.com/dayletter/dayletter-backend/internal/common"
	"github.com/dayletter/dayletter-backend/internal/domain"
	"github.com/dayletter/dayletter-backend/internal/middleware"
	"github.com/dayletter/dayletter-backend/internal/service"
	"github.com/gin-gonic/gin"
)

// MailboxHandler handles mailbox requests
type MailboxHandler struct {
	service service.MailboxService
}

// NewMailboxHandler creates a new MailboxHandler
func NewMailboxHandler(service service.MailboxService) *MailboxHandler {
	return &MailboxHandler{service: service}
}

// GetMailbox handles GET /api/v1/mailbox
func (h *MailboxHandler) GetMailbox(c *gin.Context) {
	memberIdx := middleware.GetUserIdx(c)

	items, err := h.service.GetMailbox(memberIdx)
	if err != nil {
		common.FailFromError(c, err)
		return
	}

	common.SuccessResponse(c, items, nil)
}

// OpenMail handles POST /api/v1/mailbox/:type/:idx
// 열람과 동시에 읽음 처리.
func (h *MailboxHandler) OpenMail(c *gin.Context) {
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

	body, err := h.service.OpenMail(memberIdx, kind, idx)
	if err != nil {
		common.FailFromError(c, err)
		return
	}

	common.SuccessResponse(c, body, nil)
}

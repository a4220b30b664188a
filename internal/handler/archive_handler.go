package handler

import (
	"strconv"

	"github.com/dayletter/dayletter-backend/internal/common"
	"github.com/dayletter/dayletter-backend/internal/domain"
	"github.com/dayletter/dayletter-backend/internal/middleware"
	"github.com/dayletter/dayletter-backend/internal/service"
	"github.com/gin-gonic/gin"
)

// ArchiveHandler handles a member's own diary archive requests
type ArchiveHandler struct {
	service service.ArchiveService
}

// NewArchiveHandler creates a new ArchiveHandler
func NewArchiveHandler(service service.ArchiveService) *ArchiveHandler {
	return &ArchiveHandler{service: service}
}

// GetCalendar handles GET /api/v1/archives/calendar/:date
// date = yyyy-MM, type = doneList | emotion (emotion은 프리미엄 전용)
func (h *ArchiveHandler) GetCalendar(c *gin.Context) {
	memberIdx := middleware.GetUserIdx(c)

	month := c.Param("date")
	if len(month) != 7 {
		common.ErrorResponse(c, 400, "date는 yyyy-MM 형식이어야 합니다", nil)
		return
	}

	calType, ok := domain.ParseCalendarType(c.DefaultQuery("type", string(domain.CalendarDoneList)))
	if !ok {
		common.ErrorResponse(c, 400, "type은 doneList, emotion 중 하나여야 합니다", nil)
		return
	}

	days, err := h.service.GetCalendar(memberIdx, month, calType)
	if err != nil {
		common.FailFromError(c, err)
		return
	}

	common.SuccessResponse(c, days, nil)
}

// GetDiaryList handles GET /api/v1/archives/diaryList/:pageNum
// search, startDate, endDate는 선택이고 함께 쓸 수 있다.
func (h *ArchiveHandler) GetDiaryList(c *gin.Context) {
	memberIdx := middleware.GetUserIdx(c)

	page, err := strconv.Atoi(c.Param("pageNum"))
	if err != nil {
		common.ErrorResponse(c, 400, "잘못된 페이지 번호입니다", err)
		return
	}

	groups, cursor, err := h.service.GetDiaryList(
		memberIdx,
		c.Query("search"),
		c.Query("startDate"),
		c.Query("endDate"),
		page,
	)
	if err != nil {
		common.FailFromError(c, err)
		return
	}

	common.SuccessResponse(c, groups, cursor)
}

package handler

import (
	"github.com/dayletter/dayletter-backend/internal/common"
	"github.com/dayletter/dayletter-backend/internal/domain"
	"github.com/dayletter/dayletter-backend/internal/middleware"
	"github.com/dayletter/dayletter-backend/internal/service"
	"github.com/gin-gonic/gin"
)

// AuthHandler handles authentication requests
type AuthHandler struct {
	service service.AuthService
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(service service.AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

// Login handles POST /api/v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req domain.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, 400, "Invalid request body", err)
		return
	}

	tokens, err := h.service.Login(c.Request.Context(), &req)
	if err != nil {
		common.FailFromError(c, err)
		return
	}

	common.SuccessResponse(c, tokens, nil)
}

// Refresh handles POST /api/v1/auth/refresh
// 저장소에 남아 있는 최신 refresh token만 교환해 준다.
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req domain.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, 400, "Invalid request body", err)
		return
	}

	tokens, err := h.service.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		common.FailFromError(c, err)
		return
	}

	common.SuccessResponse(c, tokens, nil)
}

// Logout handles POST /api/v1/auth/logout (requires JWT)
func (h *AuthHandler) Logout(c *gin.Context) {
	memberIdx := middleware.GetUserIdx(c)

	if err := h.service.Logout(c.Request.Context(), memberIdx); err != nil {
		common.FailFromError(c, err)
		return
	}

	common.SuccessResponse(c, gin.H{"logged_out": true}, nil)
}

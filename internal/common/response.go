package common

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// APIResponse standard API response structure
type APIResponse struct {
	Data  interface{} `json:"data"`
	Meta  *PageCursor `json:"meta,omitempty"`
	Error *ErrorInfo  `json:"error,omitempty"`
}

// ErrorInfo error details
type ErrorInfo struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// SuccessResponse returns a successful JSON response
func SuccessResponse(c *gin.Context, data interface{}, meta *PageCursor) {
	c.JSON(http.StatusOK, APIResponse{
		Data: data,
		Meta: meta,
	})
}

// ErrorResponse returns an error JSON response
func ErrorResponse(c *gin.Context, status int, message string, err error) {
	errInfo := &ErrorInfo{
		Code:    getErrorCode(status),
		Message: message,
	}
	if err != nil {
		errInfo.Details = err.Error()
	}

	c.JSON(status, gin.H{
		"error": errInfo,
	})
}

// FailFromError maps a service error to an HTTP response.
// ErrEmptyResult / ErrInvalidPage는 사용자에게 정상적으로 안내되는 상태이므로
// 4xx로 내려주고, 암호화/정합성 오류는 그대로 5xx로 노출한다.
func FailFromError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrEmptyResult):
		ErrorResponse(c, http.StatusNotFound, "검색 결과가 없습니다", nil)
	case errors.Is(err, ErrInvalidPage):
		ErrorResponse(c, http.StatusBadRequest, "잘못된 페이지 요청입니다", nil)
	case errors.Is(err, ErrNotFound),
		errors.Is(err, ErrDiaryNotFound),
		errors.Is(err, ErrLetterNotFound),
		errors.Is(err, ErrReplyNotFound),
		errors.Is(err, ErrUserNotFound):
		ErrorResponse(c, http.StatusNotFound, err.Error(), nil)
	case errors.Is(err, ErrForbidden):
		ErrorResponse(c, http.StatusForbidden, err.Error(), nil)
	case errors.Is(err, ErrPremiumRequired):
		ErrorResponse(c, http.StatusForbidden, "프리미엄 가입이 필요합니다", nil)
	case errors.Is(err, ErrUnauthorized), errors.Is(err, ErrInvalidCredentials),
		errors.Is(err, ErrInvalidToken), errors.Is(err, ErrExpiredToken):
		ErrorResponse(c, http.StatusUnauthorized, err.Error(), nil)
	case errors.Is(err, ErrInvalidInput), errors.Is(err, ErrInvalidEmotion):
		ErrorResponse(c, http.StatusBadRequest, err.Error(), nil)
	case errors.Is(err, ErrContentCrypto), errors.Is(err, ErrDataIntegrity):
		ErrorResponse(c, http.StatusInternalServerError, err.Error(), err)
	default:
		ErrorResponse(c, http.StatusInternalServerError, "요청 처리에 실패했습니다", err)
	}
}

// getErrorCode generates error code from HTTP status
func getErrorCode(status int) string {
	switch status {
	case 400:
		return "BAD_REQUEST"
	case 401:
		return "UNAUTHORIZED"
	case 403:
		return "FORBIDDEN"
	case 404:
		return "NOT_FOUND"
	case 409:
		return "CONFLICT"
	case 500:
		return "INTERNAL_SERVER_ERROR"
	default:
		return "ERROR"
	}
}

package routes

import (
	"github.com/dayletter/dayletter-backend/internal/handler"
	"github.com/dayletter/dayletter-backend/internal/middleware"
	"github.com/dayletter/dayletter-backend/pkg/jwt"
	"github.com/gin-gonic/gin"
)

// Setup configures all API routes
func Setup(
	router *gin.Engine,
	authHandler *handler.AuthHandler,
	diaryHandler *handler.DiaryHandler,
	letterHandler *handler.LetterHandler,
	replyHandler *handler.ReplyHandler,
	historyHandler *handler.HistoryHandler,
	mailboxHandler *handler.MailboxHandler,
	archiveHandler *handler.ArchiveHandler,
	jwtManager *jwt.Manager,
) {
	api := router.Group("/api/v1")

	// Authentication endpoints (no auth required)
	auth := api.Group("/auth")
	auth.POST("/login", authHandler.Login)
	auth.POST("/refresh", authHandler.Refresh)
	auth.POST("/logout", middleware.JWTAuth(jwtManager), authHandler.Logout)

	// Diaries (일기)
	diaries := api.Group("/diaries", middleware.JWTAuth(jwtManager))
	{
		diaries.POST("", diaryHandler.CreateDiary)
		diaries.GET("/:diaryIdx", diaryHandler.GetDiary)
		diaries.PUT("/:diaryIdx", diaryHandler.UpdateDiary)
		diaries.DELETE("/:diaryIdx", diaryHandler.DeleteDiary)
	}

	// Letters (편지)
	letters := api.Group("/letters", middleware.JWTAuth(jwtManager))
	{
		letters.POST("", letterHandler.SendLetter)
		letters.GET("/:letterIdx", letterHandler.GetLetter)
		letters.DELETE("/:letterIdx", letterHandler.DeleteLetter)
	}

	// Replies (답장)
	replies := api.Group("/replies", middleware.JWTAuth(jwtManager))
	{
		replies.POST("", replyHandler.CreateReply)
		replies.DELETE("/:replyIdx", replyHandler.DeleteReply)
	}

	// History (받은 일기/편지/답장 통합 피드)
	histories := api.Group("/histories", middleware.JWTAuth(jwtManager))
	{
		histories.GET("/list/:pageNum", historyHandler.GetHistoryList)
		histories.GET("/sender/:senderNickname/:pageNum", historyHandler.GetSenderHistory)
		histories.GET("/:type/:idx", historyHandler.GetThread)
	}

	// Mailbox (미열람 우편함)
	mailbox := api.Group("/mailbox", middleware.JWTAuth(jwtManager))
	{
		mailbox.GET("", mailboxHandler.GetMailbox)
		mailbox.POST("/:type/:idx", mailboxHandler.OpenMail)
	}

	// Archive (내 일기 달력 / 목록)
	archives := api.Group("/archives", middleware.JWTAuth(jwtManager))
	{
		archives.GET("/calendar/:date", archiveHandler.GetCalendar)
		archives.GET("/diaryList/:pageNum", archiveHandler.GetDiaryList)
	}
}

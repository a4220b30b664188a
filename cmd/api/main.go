package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/dayletter/dayletter-backend/internal/config"
	"github.com/dayletter/dayletter-backend/internal/handler"
	"github.com/dayletter/dayletter-backend/internal/middleware"
	"github.com/dayletter/dayletter-backend/internal/repository"
	"github.com/dayletter/dayletter-backend/internal/routes"
	"github.com/dayletter/dayletter-backend/internal/service"
	"github.com/dayletter/dayletter-backend/pkg/cipher"
	"github.com/dayletter/dayletter-backend/pkg/jwt"
	pkglogger "github.com/dayletter/dayletter-backend/pkg/logger"
	pkgredis "github.com/dayletter/dayletter-backend/pkg/redis"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// getConfigPath returns config file path based on APP_ENV environment variable
func getConfigPath() string {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "local"
	}
	return fmt.Sprintf("configs/config.%s.yaml", env)
}

func main() {
	dotenvFiles := config.LoadDotEnv()

	// 로거 초기화
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "local"
	}
	pkglogger.InitStructured(env)
	pkglogger.Info("APP_ENV=%s, loaded env files: %v", env, dotenvFiles)

	// 설정 로드
	configPath := getConfigPath()
	pkglogger.Info("Loading config from: %s", configPath)
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// MySQL 연결
	db, err := gorm.Open(mysql.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	pkglogger.Info("Connected to MySQL")

	if sqlDB, dbErr := db.DB(); dbErr == nil {
		sqlDB.SetMaxOpenConns(25)
		sqlDB.SetMaxIdleConns(5)
		sqlDB.SetConnMaxLifetime(5 * time.Minute)
		middleware.SetDBConnectionsActive(float64(sqlDB.Stats().OpenConnections))
	}

	// Redis 연결
	redisClient, err := pkgredis.NewClient(
		cfg.Redis.Host,
		cfg.Redis.Port,
		cfg.Redis.Password,
		cfg.Redis.DB,
		cfg.Redis.PoolSize,
	)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	pkglogger.Info("Connected to Redis")

	// 비공개 일기 암호화 키
	contentCipher, err := cipher.New(cfg.Diary.ContentKey)
	if err != nil {
		log.Fatalf("Failed to initialize content cipher: %v", err)
	}

	// JWT Manager
	accessTTL := time.Duration(cfg.JWT.AccessExpireMins) * time.Minute
	refreshTTL := time.Duration(cfg.JWT.RefreshExpireMins) * time.Minute
	jwtManager := jwt.NewManager(cfg.JWT.Secret, accessTTL, refreshTTL)

	// Repositories
	memberRepo := repository.NewMemberRepository(db)
	diaryRepo := repository.NewDiaryRepository(db)
	letterRepo := repository.NewLetterRepository(db)
	replyRepo := repository.NewReplyRepository(db)
	historyRepo := repository.NewHistoryRepository(db)
	mailboxRepo := repository.NewMailboxRepository(db)
	archiveRepo := repository.NewArchiveRepository(db)
	tokenStore := repository.NewTokenStore(redisClient)

	// Services
	authSvc := service.NewAuthService(memberRepo, tokenStore, jwtManager, refreshTTL)
	diarySvc := service.NewDiaryService(diaryRepo, memberRepo, contentCipher)
	letterSvc := service.NewLetterService(letterRepo, memberRepo)
	replySvc := service.NewReplyService(replyRepo, diaryRepo, letterRepo, memberRepo)
	historySvc := service.NewHistoryService(historyRepo, memberRepo, contentCipher, cfg.History.PageSize)
	mailboxSvc := service.NewMailboxService(mailboxRepo, historyRepo, contentCipher)
	archiveSvc := service.NewArchiveService(archiveRepo, contentCipher, cfg.History.PageSize)

	// Handlers
	authHandler := handler.NewAuthHandler(authSvc)
	diaryHandler := handler.NewDiaryHandler(diarySvc)
	letterHandler := handler.NewLetterHandler(letterSvc)
	replyHandler := handler.NewReplyHandler(replySvc)
	historyHandler := handler.NewHistoryHandler(historySvc)
	mailboxHandler := handler.NewMailboxHandler(mailboxSvc)
	archiveHandler := handler.NewArchiveHandler(archiveSvc)

	// Gin 라우터 생성
	router := gin.Default()

	// CORS 설정
	allowOrigins := cfg.CORS.AllowOrigins
	if allowOrigins == "" {
		allowOrigins = "http://localhost:3000"
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins:     splitAndTrim(allowOrigins, ","),
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-ID"},
		AllowCredentials: true,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		ExposeHeaders:    []string{"X-Request-ID"},
		MaxAge:           86400,
	}))

	// Middleware
	router.Use(middleware.Metrics())
	router.Use(middleware.RequestLogger())

	// Prometheus metrics
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Health Check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": "dayletter-backend",
			"time":    time.Now().Unix(),
		})
	})

	routes.Setup(router,
		authHandler,
		diaryHandler,
		letterHandler,
		replyHandler,
		historyHandler,
		mailboxHandler,
		archiveHandler,
		jwtManager,
	)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	pkglogger.Info("Starting server on %s", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func splitAndTrim(s, sep string) []string {
	parts := strings.Split(s, sep)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

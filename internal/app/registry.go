package app

import (
	"database/sql"
	"net/http"

	"leave-approval/internal/holiday"
	"leave-approval/internal/leave"
	"leave-approval/internal/messaging/kafka"
	"leave-approval/internal/middleware"
	"leave-approval/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
	documents storage.DocumentStore,
	cfg Config,
) {
	// --- Repositories ---
	holidayRepo := holiday.NewRepository(gormDB)
	leaveRepo := leave.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)

	// --- Services ---
	holidayService := holiday.NewService(holidayRepo, rdb)
	leaveService := leave.NewServiceWithOutbox(
		db,
		leaveRepo,
		holidayService,
		documents,
		outboxRepo,
		leave.Config{RequireMedicalDocument: cfg.RequireMedicalDocument},
	)

	// --- Handlers ---
	holidayHandler := holiday.NewHandler(holidayService)
	leaveHandler := leave.NewHandler(leaveService, documents)

	// --- Routes Registration ---
	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	root := router.Group("")
	{
		holiday.RegisterRoutes(root, holidayHandler)
		leave.RegisterRoutes(root, leaveHandler, middleware.Idempotency(rdb))
	}
}

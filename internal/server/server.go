package server

import (
	"context"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/example/questlog/pkg/models"
	"github.com/example/questlog/pkg/monitoring"
)

// QuestSupplier produces the quest list of the day. It must not fail.
type QuestSupplier interface {
	GetDailyQuests(ctx context.Context) []models.Quest
}

// Config holds the HTTP settings of the router
type Config struct {
	// Mode is the gin mode: debug, release or test
	Mode           string
	AllowedOrigins []string
}

// NewRouter builds the HTTP handler of the quest server
func NewRouter(cfg Config, quests QuestSupplier, resources []models.LearningResource, logger *zap.Logger) *gin.Engine {
	if cfg.Mode != "" {
		gin.SetMode(cfg.Mode)
	}
	monitoring.Init()

	router := gin.New()
	router.Use(requestLogger(logger), recoverWith(logger, "Internal server error"))
	router.Use(corsMiddleware(cfg.AllowedOrigins))
	router.Use(monitoring.MetricsMiddleware())

	h := newQuestHandler(quests, resources, logger)

	router.GET("/healthz", h.health)
	router.GET("/metrics", monitoring.PrometheusHandler())

	api := router.Group("/api")
	{
		api.GET("/quests/daily", recoverWith(logger, "Failed to fetch quests"), h.dailyQuests)
		api.POST("/quests/generate", recoverWith(logger, "Failed to generate quests"), h.generateQuests)
		api.GET("/resources", h.listResources)
	}

	return router
}

func corsMiddleware(origins []string) gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept"},
		MaxAge:       12 * time.Hour,
	}
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cors.New(cfg)
}

func requestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
		)
	}
}

// recoverWith turns a panic into a 500 response carrying message
func recoverWith(logger *zap.Logger, message string) gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(nil, func(c *gin.Context, err any) {
		logger.Error(message, zap.Any("panic", err), zap.String("path", c.Request.URL.Path))
		c.AbortWithStatusJSON(500, gin.H{"error": message})
	})
}

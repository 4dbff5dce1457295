package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/aaravsharma17/cloudbin/internal/api"
	"github.com/aaravsharma17/cloudbin/internal/pkg/config"
	"github.com/aaravsharma17/cloudbin/internal/pkg/logger"
	"github.com/aaravsharma17/cloudbin/internal/pkg/redis"
	"github.com/aaravsharma17/cloudbin/internal/repository"
)

func main() {
	// Load configuration
	cfg, err := config.Load("config.yaml")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	if err := logger.Init(cfg.Log.Level, cfg.Log.Format); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	logger.Info("Starting CloudBin API")

	// Initialize database
	if err := repository.InitDB(cfg.Database.Path); err != nil {
		zap.L().Fatal("Failed to initialize database",
			zap.Error(err))
	}
	defer repository.Close()

	// Initialize Redis (optional). Without it, logout cannot revoke
	// tokens server-side.
	if cfg.RedisEnabled() {
		if err := redis.Init(cfg); err != nil {
			zap.L().Warn("Redis initialization failed, session revocation will be disabled",
				zap.Error(err))
		} else {
			defer redis.Close()
		}
	} else {
		zap.L().Warn("Redis not configured, session revocation will be disabled")
	}

	// Set Gin mode
	gin.SetMode(gin.ReleaseMode)

	// Create router
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(gin.Logger())

	// Setup routes
	api.SetupRouter(r)

	logger.Info("Listening", zap.String("addr", cfg.GetServerAddr()))

	// Start server
	if err := r.Run(cfg.GetServerAddr()); err != nil {
		zap.L().Fatal("Failed to start server",
			zap.Error(err))
	}
}

// Package main runs the club admin HTTP server with graceful shutdown.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/aarya-club/backend/config"
	"github.com/aarya-club/backend/internal/auth"
	"github.com/aarya-club/backend/internal/events"
	"github.com/aarya-club/backend/internal/members"
	"github.com/aarya-club/backend/internal/middleware"
	"github.com/aarya-club/backend/pkg/database"
	"github.com/aarya-club/backend/pkg/response"
)

func main() {
	logger := newLogger()
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("load config", zap.Error(err))
	}

	ctx := context.Background()
	pool, err := database.NewPostgresPool(ctx, cfg.Database.DSN(), logger)
	if err != nil {
		logger.Fatal("database", zap.Error(err))
	}
	defer pool.Close()

	if err := database.Migrate(ctx, pool); err != nil {
		logger.Fatal("migrate", zap.Error(err))
	}

	jwtService := auth.NewJWTService(cfg.JWT.Secret, cfg.JWT.ExpireHours)

	// Auth
	adminRepo := auth.NewRepository(pool)
	authHandler := auth.NewHandler(adminRepo, jwtService, logger)

	// Events
	eventRepo := events.NewRepository(pool)
	eventService := events.NewService(eventRepo)
	eventHandler := events.NewHandler(eventService, logger)

	// Members
	memberRepo := members.NewRepository(pool)
	memberService := members.NewService(memberRepo)
	memberHandler := members.NewHandler(memberService, logger)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.New(corsConfig(cfg.Server.CORSAllowedOrigins)))
	router.Use(middleware.Logger(logger))
	router.Use(middleware.Authenticate(jwtService))
	router.Use(middleware.AccessPolicy(middleware.DefaultPolicy()))

	// Health
	router.GET("/health", func(c *gin.Context) { response.OK(c, gin.H{"status": "ok"}) })

	api := router.Group("/api")
	{
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		api.GET("/events", eventHandler.List)
		api.GET("/events/:id", eventHandler.Get)
		api.POST("/events", eventHandler.Create)
		api.PUT("/events/:id", eventHandler.Update)
		api.DELETE("/events/:id", eventHandler.Delete)

		api.GET("/members", memberHandler.List)
		api.GET("/members/:id", memberHandler.Get)
		api.POST("/members", memberHandler.Create)
		api.PUT("/members/:id", memberHandler.Update)
		api.DELETE("/members/:id", memberHandler.Delete)
	}

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	go func() {
		logger.Info("server listening", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown", zap.Error(err))
	}
	logger.Info("server stopped")
}

// corsConfig allows the configured origins with credentials and a 1-hour
// preflight cache. "*" cannot be combined with credentials as a literal
// origin list, so wildcard falls back to an allow-everything origin func.
func corsConfig(allowedOrigins string) cors.Config {
	c := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           time.Hour,
	}
	if strings.TrimSpace(allowedOrigins) == "*" {
		c.AllowOriginFunc = func(origin string) bool { return true }
		return c
	}
	for _, o := range strings.Split(allowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			c.AllowOrigins = append(c.AllowOrigins, o)
		}
	}
	return c
}

func newLogger() *zap.Logger {
	config := zap.NewProductionConfig()
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	logger, _ := config.Build()
	return logger
}

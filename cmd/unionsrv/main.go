// Command unionsrv serves the same union schema behind two endpoints, one
// per coercion strategy, so the difference in error quality can be poked at
// with curl:
//
//	POST /coerce/untagged  — undiscriminated union, errors merge across variants
//	POST /coerce/tagged    — discriminated union, errors scope to one variant
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	coerce "github.com/ALai57/malli-or-considered-dangerous"
	"github.com/ALai57/malli-or-considered-dangerous/ginmw"
)

func main() {
	cfg := loadConfig()

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "unionsrv: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	gin.SetMode(cfg.Mode)

	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(logger))

	opts := pipelineHooks(logger)
	r.POST("/coerce/untagged", ginmw.Handler(coerce.New(untaggedUnion(), opts...)))
	r.POST("/coerce/tagged", ginmw.Handler(coerce.New(taggedUnion(), opts...)))
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	srv := &http.Server{Addr: cfg.Addr, Handler: r}
	go func() {
		logger.Info("listening", zap.String("addr", cfg.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("shutdown", zap.Error(err))
	}
	logger.Info("stopped")
}

// pipelineHooks wires the pipeline's observability hooks into zap.
func pipelineHooks(logger *zap.Logger) []coerce.Option {
	return []coerce.Option{
		coerce.WithOnDecodeError(func(ctx context.Context, err error) {
			logger.Warn("request body rejected", zap.Error(err))
		}),
		coerce.WithOnInvalid(func(ctx context.Context, body map[string]any, d time.Duration) {
			logger.Info("coercion failed",
				zap.Int("fields", len(body)),
				zap.Duration("duration", d),
			)
		}),
		coerce.WithOnValid(func(ctx context.Context, value map[string]any, d time.Duration) {
			logger.Debug("coercion succeeded", zap.Duration("duration", d))
		}),
	}
}

func requestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
		)
	}
}

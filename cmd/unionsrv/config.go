package main

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// config holds the server settings, read from UNIONSRV_* environment
// variables with sensible defaults.
type config struct {
	Addr            string
	Mode            string
	LogLevel        string
	ShutdownTimeout time.Duration
}

func loadConfig() config {
	v := viper.New()
	v.SetEnvPrefix("UNIONSRV")
	v.AutomaticEnv()

	v.SetDefault("addr", ":8080")
	v.SetDefault("mode", gin.ReleaseMode)
	v.SetDefault("log_level", "info")
	v.SetDefault("shutdown_timeout", "5s")

	return config{
		Addr:            v.GetString("addr"),
		Mode:            v.GetString("mode"),
		LogLevel:        v.GetString("log_level"),
		ShutdownTimeout: v.GetDuration("shutdown_timeout"),
	}
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	return cfg.Build()
}

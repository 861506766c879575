package utils

import (
	"log"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Global logger instance
var (
	logger   *zap.Logger
	loggerMu sync.Mutex
)

// InitializeLogger sets up the logging configuration for the given environment.
func InitializeLogger(env string) {
	loggerMu.Lock()
	defer loggerMu.Unlock()

	var cfg zap.Config
	if env == "production" {
		cfg = zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	var err error
	logger, err = cfg.Build()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	zap.ReplaceGlobals(logger)
}

// GetLogger retrieves the global logger.
func GetLogger() *zap.Logger {
	if logger == nil {
		InitializeLogger("development")
	}
	return logger
}

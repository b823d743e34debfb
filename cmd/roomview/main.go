// Package main is the entry point for the room viewer.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/roomview/internal/app"
	"github.com/Faultbox/roomview/internal/config"
	"github.com/Faultbox/roomview/internal/logger"
)

func main() {
	// Parse CLI flags first
	config.ParseFlags()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== Room View ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	a, err := app.New(cfg)
	if err != nil {
		logger.Error("failed to start viewer", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}

	err = a.Run()
	a.Close()
	if err != nil {
		logger.Error("viewer error", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}

	logger.Info("viewer closed normally")
}

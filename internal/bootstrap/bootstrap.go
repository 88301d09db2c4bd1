// Package bootstrap performs the one-time process initialization shared by
// every entry point.
package bootstrap

import (
	"fmt"
	"sync"

	"guardian-eye-api/internal/config"
	"guardian-eye-api/internal/services/database"
	"guardian-eye-api/internal/utils"
)

// Runtime holds the process-wide dependencies built during initialization.
type Runtime struct {
	Config *config.Config
	DB     *database.DB
}

var (
	once    sync.Once
	runtime *Runtime
	initErr error
)

// Init runs the shared initialization sequence exactly once per process:
// load configuration (defaulting the settings-module variable only when
// absent), initialize the logger, and construct the database client.
// Subsequent calls are no-ops returning the first result.
func Init() (*Runtime, error) {
	once.Do(func() {
		cfg, err := config.Load()
		if err != nil {
			initErr = fmt.Errorf("failed to load config: %w", err)
			return
		}

		if err := utils.InitLogger(cfg.LogLevel); err != nil {
			initErr = fmt.Errorf("failed to initialize logger: %w", err)
			return
		}

		db, err := database.New(cfg)
		if err != nil {
			initErr = fmt.Errorf("failed to create database client: %w", err)
			return
		}

		runtime = &Runtime{Config: cfg, DB: db}
	})

	return runtime, initErr
}

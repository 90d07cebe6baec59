package cli

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/jmylchreest/sartor/internal/config"
	"github.com/jmylchreest/sartor/internal/logging"
	"github.com/jmylchreest/sartor/internal/storage"
)

// appContext bundles the configuration, logger and store that every
// command needs. Commands obtain one via newAppContext and must call
// Close when done.
type appContext struct {
	cfg   *config.Config
	log   *zap.Logger
	store *storage.Store
}

func newAppContext() (*appContext, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	log, err := logging.New(cfg.Logging.Level, cfg.Logging.Format)
	if err != nil {
		return nil, fmt.Errorf("failed to initialise logging: %w", err)
	}

	store, err := storage.Open(cfg.Database.Path, log.Named("storage"))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	return &appContext{cfg: cfg, log: log, store: store}, nil
}

func (a *appContext) Close() {
	if err := a.store.Close(); err != nil {
		a.log.Warn("failed to close database", zap.Error(err))
	}
	_ = a.log.Sync()
}

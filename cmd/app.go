package cmd

import (
	"fmt"

	"csvdiff/core/config"
	"csvdiff/core/logger"
	"csvdiff/core/source"
	"csvdiff/feature/diff"

	"go.uber.org/zap"
)

// app is what every command needs once configuration is loaded.
type app struct {
	cfg     *config.Config
	log     *zap.Logger
	loader  *source.Loader
	service *diff.Service
}

func bootstrap() (*app, error) {
	cfg, err := config.LoadConfig(configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if !cfg.Report.IsValidFormat() {
		return nil, fmt.Errorf("%w: report.format %q", config.ErrInvalidArgument, cfg.Report.Format)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	clients := source.NewClients(cfg.Storage, cfg.Database, logg)
	ld := source.NewLoader(clients, logg)
	svc := diff.NewService(
		ld,
		source.NewWriter(clients, logg),
		cfg.Diff,
		cfg.Report,
		logg,
	)

	return &app{cfg: cfg, log: logg, loader: ld, service: svc}, nil
}

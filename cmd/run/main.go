package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/jgs61/wheelofchumps/internal/app"
	"github.com/jgs61/wheelofchumps/internal/config"
	"github.com/jgs61/wheelofchumps/internal/logging"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx); err != nil {
		slog.Error("application stopped with error", "error", err)
		os.Exit(1)
	}
}

// run загружает конфигурацию, настраивает логи и обслуживает HTTP до отмены ctx.
func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	cleanup, err := logging.Setup(cfg.Logging.Output, cfg.Logging.Level)
	if err != nil {
		return fmt.Errorf("setup logging: %w", err)
	}
	defer cleanup()

	slog.InfoContext(ctx, "wheel of chumps starting",
		"port", cfg.HTTP.Port,
		"frame_interval", cfg.Spin.FrameInterval.String(),
		"seeded", cfg.Spin.Seed != 0,
	)
	return app.New(cfg).Run(ctx)
}

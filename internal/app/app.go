package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/jgs61/wheelofchumps/internal/config"
	"github.com/jgs61/wheelofchumps/internal/http/router"
	"github.com/jgs61/wheelofchumps/internal/infrastructure/nower"
	"github.com/jgs61/wheelofchumps/internal/infrastructure/randomizer"
	"github.com/jgs61/wheelofchumps/internal/infrastructure/scheduler"
	"github.com/jgs61/wheelofchumps/internal/service"
)

// App отвечает за жизненный цикл сервиса.
type App struct {
	cfg     config.Config
	server  *http.Server
	service *service.Service
}

// New собирает зависимости: источник случайности, часы, планировщик, колесо и HTTP-роутер.
func New(cfg config.Config) *App {
	svc := service.New(cfg, newRandomizer(cfg.Spin), nower.New(), scheduler.New())

	var swaggerSpec []byte
	if data, err := os.ReadFile(cfg.Swagger.SpecPath); err != nil {
		slog.Warn("failed to load swagger spec", "path", cfg.Swagger.SpecPath, "error", err)
	} else {
		swaggerSpec = data
	}
	handler := router.New(svc, swaggerSpec, cfg.Timeouts.Operation)

	srv := &http.Server{
		Addr:         ":" + cfg.HTTP.Port,
		Handler:      handler.Router(),
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
	}

	return &App{cfg: cfg, server: srv, service: svc}
}

func newRandomizer(cfg config.SpinConfig) randomizer.Randomizer {
	if cfg.Seed != 0 {
		slog.Info("spin randomizer seeded", "seed", cfg.Seed)
		return randomizer.NewSeeded(cfg.Seed)
	}
	return randomizer.New()
}

func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "addr", a.server.Addr)
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		// Останавливаем колесо до сервера: отложенные вызовы не должны пережить процесс.
		a.service.Cancel(context.WithoutCancel(ctx))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.Timeouts.Shutdown)
		defer cancel()
		if err := a.server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	case err := <-errCh:
		a.service.Cancel(context.WithoutCancel(ctx))
		return err
	}
}

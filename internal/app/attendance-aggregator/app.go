// Package attendanceaggregator собирает приложение: клиент OData, сервис,
// маршруты и HTTP-сервер с мягкой остановкой.
package attendanceaggregator

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"

	"github.com/magabrotheeeer/attendance-aggregator/internal/config"
	"github.com/magabrotheeeer/attendance-aggregator/internal/odata"
	attendanceservice "github.com/magabrotheeeer/attendance-aggregator/internal/services/attendance"
)

// App хранит HTTP-сервер и логгер приложения.
type App struct {
	server *http.Server
	logger *slog.Logger
}

// New создаёт приложение. Клиент OData создаётся здесь синхронно, до запуска
// сервера: к моменту приёма первого запроса получение данных уже доступно,
// фоновых инициализаций с флагами готовности нет.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	client := odata.NewClient(cfg.BaseURL, cfg.TimeoutAPI)
	service := attendanceservice.NewService(client, logger)

	router := chi.NewRouter()
	RegisterRoutes(router, logger, service, cfg)

	srv := &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &App{
		server: srv,
		logger: logger,
	}, nil
}

// Run запускает HTTP-сервер и останавливает его мягко при отмене контекста.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		return a.server.Shutdown(timeoutCtx)
	}
}

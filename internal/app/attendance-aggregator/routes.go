// Package attendanceaggregator предоставляет маршруты для основного приложения.
package attendanceaggregator

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
	"golang.org/x/time/rate"

	"github.com/magabrotheeeer/attendance-aggregator/internal/config"
	activityhandler "github.com/magabrotheeeer/attendance-aggregator/internal/http/handlers/activity"
	attendancehandler "github.com/magabrotheeeer/attendance-aggregator/internal/http/handlers/attendance"
	healthhandler "github.com/magabrotheeeer/attendance-aggregator/internal/http/handlers/health"
	homehandler "github.com/magabrotheeeer/attendance-aggregator/internal/http/handlers/home"
	statshandler "github.com/magabrotheeeer/attendance-aggregator/internal/http/handlers/stats"
	"github.com/magabrotheeeer/attendance-aggregator/internal/http/middlewarectx"
	attendanceservice "github.com/magabrotheeeer/attendance-aggregator/internal/services/attendance"
)

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger, service *attendanceservice.Service, cfg *config.Config) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
	)

	r.Get("/", homehandler.New(logger).ServeHTTP)

	r.Route("/api", func(r chi.Router) {
		// Общий лимитер бережёт вышестоящий OData API от каскада запросов фронтенда
		r.Use(middlewarectx.RateLimitMiddleware(logger, rate.NewLimiter(20, 40)))

		r.Get("/attendance", attendancehandler.New(logger, service, cfg.DefaultLimit, cfg.MaxLimit).ServeHTTP)
		r.Get("/activity/{id}", activityhandler.New(logger, service).ServeHTTP)
		r.Get("/stats", statshandler.New(logger, service).ServeHTTP)
		r.Get("/health", healthhandler.New(logger, true).ServeHTTP)
	})

	r.Handle("/metrics", promhttp.Handler())
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
}

// Package middlewarectx содержит middleware для HTTP‑сервера.
// Здесь реализовано ограничение частоты запросов к API, чтобы не
// перегружать вышестоящий OData API каскадом запросов фронтенда.
package middlewarectx

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/render"
	"golang.org/x/time/rate"

	"github.com/magabrotheeeer/attendance-aggregator/internal/http/response"
)

// RateLimitMiddleware возвращает middleware, ограничивающее частоту запросов
// одним общим лимитером на процесс.
func RateLimitMiddleware(log *slog.Logger, limiter *rate.Limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				log.Error("too many requests", slog.String("path", r.URL.Path))
				w.WriteHeader(http.StatusTooManyRequests)
				render.JSON(w, r, response.Error("too many requests"))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

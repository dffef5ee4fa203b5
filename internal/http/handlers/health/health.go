// Package health реализует HTTP-обработчик проверки работоспособности сервиса.
package health

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"
)

// Handler отвечает на запросы проверки работоспособности.
// Флаг fetchAvailable выставляется один раз при старте приложения,
// после синхронного создания клиента OData, и дальше только читается.
type Handler struct {
	log            *slog.Logger
	fetchAvailable bool
}

// New создает новый Handler с переданными логгером и признаком готовности клиента.
func New(log *slog.Logger, fetchAvailable bool) *Handler {
	return &Handler{
		log:            log,
		fetchAvailable: fetchAvailable,
	}
}

// ServeHTTP godoc
// @Summary Проверка работоспособности
// @Description Возвращает состояние сервиса и признак готовности клиента OData
// @Tags Service
// @Produce json
// @Success 200 {object} map[string]any "Состояние сервиса"
// @Router /api/health [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	render.JSON(w, r, map[string]any{
		"success":        true,
		"message":        "attendance-aggregator is running",
		"timestamp":      time.Now().UTC().Format(time.RFC3339),
		"fetchAvailable": h.fetchAvailable,
	})
}

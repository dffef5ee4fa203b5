// Package activity реализует HTTP-обработчик выборки одной активности по id.
//
// Handler возвращает сырую вложенную структуру активности без выравнивания,
// в том виде, в котором её отдал вышестоящий OData API.
package activity

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"github.com/magabrotheeeer/attendance-aggregator/internal/http/response"
	"github.com/magabrotheeeer/attendance-aggregator/internal/lib/sl"
	attendanceservice "github.com/magabrotheeeer/attendance-aggregator/internal/services/attendance"
)

// Handler управляет HTTP-запросами на чтение одной активности.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// Service описывает интерфейс бизнес-логики чтения активности.
type Service interface {
	Activity(ctx context.Context, id string) (json.RawMessage, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Получить одну активность
// @Description Возвращает сырую вложенную запись активности по её идентификатору
// @Tags Attendance
// @Produce json
// @Param id path string true "Идентификатор активности (uuid)"
// @Success 200 {object} response.Response "Сырая запись активности"
// @Failure 400 {object} response.ErrorResponse "Некорректный идентификатор"
// @Failure 404 {object} response.ErrorResponse "Активность не найдена"
// @Failure 500 {object} response.ErrorResponse "Ошибка вышестоящего API"
// @Router /api/activity/{id} [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.activity"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id := chi.URLParam(r, "id")
	if err := h.validate.Var(id, "required,uuid"); err != nil {
		log.Error("invalid activity id", slog.String("id", id))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid activity id"))
		return
	}

	raw, err := h.service.Activity(r.Context(), id)
	if err != nil {
		if errors.Is(err, attendanceservice.ErrActivityNotFound) {
			log.Info("activity not found", slog.String("id", id))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("activity not found"))
			return
		}
		log.Error("failed to fetch activity", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.ErrorWithDetails("failed to fetch activity", err.Error()))
		return
	}

	log.Info("activity fetched", slog.String("id", id))
	render.JSON(w, r, response.OKWithData(raw))
}

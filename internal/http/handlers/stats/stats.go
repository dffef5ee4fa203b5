// Package stats реализует HTTP-обработчик приблизительной статистики посещаемости.
//
// Статистика считается по ограниченной выборке активностей, а не по всем данным,
// и явно помечается как приблизительная в поле note.
package stats

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"github.com/magabrotheeeer/attendance-aggregator/internal/http/response"
	"github.com/magabrotheeeer/attendance-aggregator/internal/lib/sl"
	"github.com/magabrotheeeer/attendance-aggregator/internal/models"
)

// Handler управляет HTTP-запросами на получение статистики.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// Service описывает интерфейс бизнес-логики подсчёта статистики.
type Service interface {
	Stats(ctx context.Context, filter models.Filter) (*models.Stats, error)
}

// queryParams параметры строки запроса до валидации.
type queryParams struct {
	DateFrom     string `validate:"omitempty,datetime=2006-01-02"`
	DateTo       string `validate:"omitempty,datetime=2006-01-02"`
	ActivityType string `validate:"omitempty,max=200"`
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
// @Summary Получить статистику посещаемости
// @Description Возвращает приблизительные количества уникальных персон и фракций по выборке активностей
// @Tags Attendance
// @Produce json
// @Param dateFrom query string false "Начало периода (2006-01-02)"
// @Param dateTo query string false "Конец периода (2006-01-02)"
// @Param activityType query string false "Подстрока для поиска по теме активности"
// @Success 200 {object} response.Response "Статистика по выборке"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации параметров"
// @Failure 500 {object} response.ErrorResponse "Ошибка вышестоящего API"
// @Router /api/stats [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.stats"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	query := r.URL.Query()
	params := queryParams{
		DateFrom:     query.Get("dateFrom"),
		DateTo:       query.Get("dateTo"),
		ActivityType: query.Get("activityType"),
	}

	if err := h.validate.Struct(params); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusUnprocessableEntity)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	filter := buildFilter(params)

	stats, err := h.service.Stats(r.Context(), filter)
	if err != nil {
		log.Error("failed to fetch stats", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.ErrorWithDetails("failed to fetch stats", err.Error()))
		return
	}

	log.Info("stats fetched",
		slog.Int("unique_people", stats.UniquePeopleInSample),
		slog.Int("unique_fractions", stats.UniqueFractionsInSample),
	)
	render.JSON(w, r, response.OKWithStats(stats))
}

// buildFilter преобразует провалидированные параметры в доменный фильтр.
func buildFilter(params queryParams) models.Filter {
	var filter models.Filter

	if params.DateFrom != "" {
		from, _ := time.Parse("2006-01-02", params.DateFrom)
		filter.DateFrom = &from
	}
	if params.DateTo != "" {
		to, _ := time.Parse("2006-01-02", params.DateTo)
		filter.DateTo = &to
	}
	if params.ActivityType != "" {
		activityType := params.ActivityType
		filter.ActivityType = &activityType
	}

	return filter
}

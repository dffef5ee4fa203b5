// Package attendance реализует HTTP-обработчик выборки записей посещаемости.
//
// Handler принимает параметры фильтрации и пагинации из строки запроса,
// валидирует их, вызывает бизнес-логику выборки и выравнивания и возвращает
// плоские записи с метаданными в JSON-формате.
//
// В случае ошибок формируются соответствующие HTTP-ответы с описанием проблемы.
package attendance

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"github.com/magabrotheeeer/attendance-aggregator/internal/http/response"
	"github.com/magabrotheeeer/attendance-aggregator/internal/lib/sl"
	"github.com/magabrotheeeer/attendance-aggregator/internal/models"
	attendanceservice "github.com/magabrotheeeer/attendance-aggregator/internal/services/attendance"
)

// Handler управляет HTTP-запросами на выборку посещаемости.
//
// Использует логгер для записи операций и ошибок,
// сервис бизнес-логики для выборки и выравнивания записей,
// а также валидатор для проверки параметров запроса.
type Handler struct {
	log          *slog.Logger
	service      Service
	validate     *validator.Validate
	defaultLimit int
	maxLimit     int
}

// Service описывает интерфейс бизнес-логики выборки посещаемости.
type Service interface {
	List(ctx context.Context, filter models.Filter, limit, skip int) (*attendanceservice.ListResult, error)
}

// queryParams параметры строки запроса до валидации и преобразования в models.Filter.
type queryParams struct {
	DateFrom     string `validate:"omitempty,datetime=2006-01-02"`
	DateTo       string `validate:"omitempty,datetime=2006-01-02"`
	ActivityType string `validate:"omitempty,max=200"`
	Limit        string `validate:"omitempty,numeric"`
	Skip         string `validate:"omitempty,numeric"`
}

// New создает новый Handler с переданными логгером, сервисом и границами пагинации.
func New(log *slog.Logger, service Service, defaultLimit, maxLimit int) *Handler {
	return &Handler{
		log:          log,
		service:      service,
		validate:     validator.New(),
		defaultLimit: defaultLimit,
		maxLimit:     maxLimit,
	}
}

// ServeHTTP godoc
// @Summary Получить записи посещаемости
// @Description Выбирает активности парламента по фильтру и отдает плоские записи посещаемости с метаданными пагинации
// @Tags Attendance
// @Produce json
// @Param dateFrom query string false "Начало периода (2006-01-02)"
// @Param dateTo query string false "Конец периода (2006-01-02)"
// @Param activityType query string false "Подстрока для поиска по теме активности"
// @Param limit query int false "Максимум активностей в ответе (по умолчанию 1000)"
// @Param skip query int false "Смещение пагинации (по умолчанию 0)"
// @Success 200 {object} response.Response "Плоские записи посещаемости с метаданными"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации параметров"
// @Failure 500 {object} response.ErrorResponse "Ошибка вышестоящего API"
// @Router /api/attendance [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.attendance"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	query := r.URL.Query()
	params := queryParams{
		DateFrom:     query.Get("dateFrom"),
		DateTo:       query.Get("dateTo"),
		ActivityType: query.Get("activityType"),
		Limit:        query.Get("limit"),
		Skip:         query.Get("skip"),
	}

	if err := h.validate.Struct(params); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusUnprocessableEntity)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	filter := buildFilter(params)
	limit, skip := h.pagination(params)

	res, err := h.service.List(r.Context(), filter, limit, skip)
	if err != nil {
		log.Error("failed to fetch attendance data", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.ErrorWithDetails("failed to fetch attendance data", err.Error()))
		return
	}

	log.Info("attendance data fetched",
		slog.Int("activities", res.Metadata.TotalActivities),
		slog.Int("registrations", res.Metadata.TotalRegistrations),
	)
	render.JSON(w, r, response.OKWithList(res.Records, res.Metadata))
}

// buildFilter преобразует провалидированные параметры в доменный фильтр.
// Даты уже проверены валидатором, ошибка разбора здесь невозможна.
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

// pagination разбирает limit и skip, подставляя умолчания и ограничивая максимум.
func (h *Handler) pagination(params queryParams) (limit, skip int) {
	limit = h.defaultLimit
	if params.Limit != "" {
		if parsed, err := strconv.Atoi(params.Limit); err == nil && parsed > 0 {
			limit = parsed
		}
	}
	if limit > h.maxLimit {
		limit = h.maxLimit
	}

	if params.Skip != "" {
		if parsed, err := strconv.Atoi(params.Skip); err == nil && parsed > 0 {
			skip = parsed
		}
	}
	return limit, skip
}

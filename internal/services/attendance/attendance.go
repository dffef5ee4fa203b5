// Package attendance содержит бизнес-логику сервиса посещаемости:
// построение запросов к OData API, выравнивание вложенных записей активностей
// в плоские записи посещаемости и подсчёт приблизительной статистики.
package attendance

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/magabrotheeeer/attendance-aggregator/internal/lib/sl"
	"github.com/magabrotheeeer/attendance-aggregator/internal/models"
	"github.com/magabrotheeeer/attendance-aggregator/internal/odata"
)

const (
	entityActiviteit = "Activiteit"

	// baseFilter всегда присутствует в запросах: удалённые записи не выбираются.
	baseFilter = "Verwijderd eq false"

	// defaultExpand разворачивает акторов с персонами и фракциями.
	defaultExpand = "ActiviteitActor($expand=Persoon,Fractie)"

	// statsExpand разворачивает только акторов-участников (Relatie eq 'Deelnemer').
	statsExpand = "ActiviteitActor($filter=Relatie eq 'Deelnemer';$expand=Persoon,Fractie)"

	// statsSampleSize размер выборки для статистики; статистика приблизительная.
	statsSampleSize = 100

	statsNote = "Statistics are based on a sample of the first 100 matching activities and are not exhaustive"
)

// ErrActivityNotFound возвращается, когда активность с указанным id не найдена.
var ErrActivityNotFound = errors.New("activity not found")

// Fetcher описывает методы клиента OData API, используемые сервисом.
type Fetcher interface {
	// FetchActivities выполняет запрос и возвращает типизированный конверт с активностями.
	FetchActivities(ctx context.Context, query string) (*odata.Envelope, error)
	// FetchRaw выполняет запрос и возвращает записи без разбора.
	FetchRaw(ctx context.Context, query string) (*odata.RawEnvelope, error)
}

// Service реализует бизнес-логику работы с записями посещаемости.
type Service struct {
	client Fetcher
	log    *slog.Logger
}

// NewService создает новый экземпляр Service.
func NewService(client Fetcher, log *slog.Logger) *Service {
	return &Service{
		client: client,
		log:    log,
	}
}

// ListResult результат выборки посещаемости: плоские записи и метаданные.
type ListResult struct {
	Records  []models.AttendanceRecord
	Metadata models.ListMetadata
}

// List выбирает активности по фильтру с пагинацией и выравнивает их в записи посещаемости.
//
// Запрос общего количества выполняется только при skip == 0, чтобы не гонять полный
// подсчёт на каждой странице. Его неудача не фатальна: пишется предупреждение,
// TotalCount остаётся nil.
func (s *Service) List(ctx context.Context, filter models.Filter, limit, skip int) (*ListResult, error) {
	filters := buildFilters(filter)

	query := odata.BuildQuery(entityActiviteit, filters, []string{defaultExpand}, map[string]any{
		"top":     limit,
		"skip":    skip,
		"orderby": "Aanvangstijd desc",
	})
	env, err := s.client.FetchActivities(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("fetch activities: %w", err)
	}

	records, skipped := Flatten(env.Value)
	if skipped > 0 {
		s.log.Info("skipped activities without actors", slog.Int("count", skipped))
	}

	var totalCount *int
	if skip == 0 {
		countQuery := odata.BuildQuery(entityActiviteit, filters, nil, map[string]any{
			"count": "true",
			"top":   0,
		})
		countEnv, err := s.client.FetchActivities(ctx, countQuery)
		if err != nil {
			s.log.Warn("failed to fetch total count", sl.Err(err))
		} else {
			totalCount = countEnv.Count
		}
	}

	return &ListResult{
		Records: records,
		Metadata: models.ListMetadata{
			TotalActivities:    len(env.Value),
			TotalRegistrations: len(records),
			TotalCount:         totalCount,
			Skip:               skip,
			Limit:              limit,
		},
	}, nil
}

// Activity возвращает одну активность по id в виде сырой вложенной структуры.
func (s *Service) Activity(ctx context.Context, id string) (json.RawMessage, error) {
	filters := []string{baseFilter, fmt.Sprintf("Id eq %s", id)}

	query := odata.BuildQuery(entityActiviteit, filters, []string{defaultExpand}, nil)
	env, err := s.client.FetchRaw(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("fetch activity: %w", err)
	}
	if len(env.Value) == 0 {
		return nil, ErrActivityNotFound
	}
	return env.Value[0], nil
}

// Stats считает приблизительную статистику по выборке первых активностей:
// количество уникальных персон и фракций среди участников.
func (s *Service) Stats(ctx context.Context, filter models.Filter) (*models.Stats, error) {
	filters := buildFilters(filter)

	query := odata.BuildQuery(entityActiviteit, filters, []string{statsExpand}, map[string]any{
		"top": statsSampleSize,
	})
	env, err := s.client.FetchActivities(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("fetch stats sample: %w", err)
	}

	records, _ := Flatten(env.Value)

	people := make(map[string]struct{})
	fractions := make(map[string]struct{})
	for _, record := range records {
		people[record.PersonID] = struct{}{}
		if record.FractionID != nil {
			fractions[*record.FractionID] = struct{}{}
		}
	}

	return &models.Stats{
		TotalActivities:         len(env.Value),
		SampleRegistrations:     len(records),
		UniquePeopleInSample:    len(people),
		UniqueFractionsInSample: len(fractions),
		Note:                    statsNote,
	}, nil
}

// buildFilters переводит логические параметры фильтра в выражения OData.
// Базовый фильтр по флагу удаления присутствует всегда.
func buildFilters(filter models.Filter) []string {
	filters := []string{baseFilter}

	if filter.DateFrom != nil {
		filters = append(filters, "Aanvangstijd ge "+filter.DateFrom.Format("2006-01-02")+"T00:00:00Z")
	}
	if filter.DateTo != nil {
		filters = append(filters, "Aanvangstijd le "+filter.DateTo.Format("2006-01-02")+"T23:59:59Z")
	}
	if filter.ActivityType != nil && *filter.ActivityType != "" {
		// Одинарные кавычки экранируются удвоением по правилам OData
		needle := strings.ReplaceAll(strings.ToLower(*filter.ActivityType), "'", "''")
		filters = append(filters, fmt.Sprintf("contains(tolower(Onderwerp), '%s')", needle))
	}

	return filters
}

package attendance_test

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	handler "github.com/magabrotheeeer/attendance-aggregator/internal/http/handlers/attendance"
	"github.com/magabrotheeeer/attendance-aggregator/internal/http/response"
	"github.com/magabrotheeeer/attendance-aggregator/internal/models"
	attendanceservice "github.com/magabrotheeeer/attendance-aggregator/internal/services/attendance"
)

type mockService struct {
	ListFunc func(ctx context.Context, filter models.Filter, limit, skip int) (*attendanceservice.ListResult, error)
}

func (m *mockService) List(ctx context.Context, filter models.Filter, limit, skip int) (*attendanceservice.ListResult, error) {
	return m.ListFunc(ctx, filter, limit, skip)
}

type discardHandler struct{}

func (discardHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (discardHandler) Handle(context.Context, slog.Record) error { return nil }
func (discardHandler) WithAttrs([]slog.Attr) slog.Handler        { return discardHandler{} }
func (discardHandler) WithGroup(string) slog.Handler             { return discardHandler{} }

func makeLogger() *slog.Logger {
	return slog.New(discardHandler{})
}

func sampleResult(limit, skip int) *attendanceservice.ListResult {
	total := 150
	return &attendanceservice.ListResult{
		Records: []models.AttendanceRecord{
			{
				ActivityID:    "a1",
				ActivityTitle: "Plenair debat",
				ActivityDate:  "15-03-2024",
				ActivityTime:  "14:30",
				PersonID:      "p1",
				PersonName:    "Jan van der Berg",
				Fraction:      "VVD",
				Role:          "Participant",
				ActorID:       "act1",
				HasValidDate:  true,
			},
		},
		Metadata: models.ListMetadata{
			TotalActivities:    1,
			TotalRegistrations: 1,
			TotalCount:         &total,
			Skip:               skip,
			Limit:              limit,
		},
	}
}

func TestAttendanceHandler(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		service := &mockService{
			ListFunc: func(ctx context.Context, filter models.Filter, limit, skip int) (*attendanceservice.ListResult, error) {
				require.NotNil(t, filter.DateFrom)
				require.Equal(t, "2024-01-01", filter.DateFrom.Format("2006-01-02"))
				require.Nil(t, filter.DateTo)
				require.NotNil(t, filter.ActivityType)
				require.Equal(t, "debat", *filter.ActivityType)
				require.Equal(t, 200, limit)
				require.Equal(t, 0, skip)
				return sampleResult(limit, skip), nil
			},
		}

		req := httptest.NewRequest(http.MethodGet, "/api/attendance?dateFrom=2024-01-01&activityType=debat&limit=200", nil)
		w := httptest.NewRecorder()

		h := handler.New(makeLogger(), service, 1000, 5000)
		h.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp response.Response
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.True(t, resp.Success)

		data := resp.Data.([]any)
		require.Len(t, data, 1)
		record := data[0].(map[string]any)
		assert.Equal(t, "Jan van der Berg", record["personName"])
		assert.Equal(t, true, record["hasValidDate"])

		metadata := resp.Metadata.(map[string]any)
		assert.Equal(t, float64(150), metadata["totalCount"])
		assert.Equal(t, float64(200), metadata["limit"])
	})

	t.Run("defaults applied", func(t *testing.T) {
		service := &mockService{
			ListFunc: func(ctx context.Context, filter models.Filter, limit, skip int) (*attendanceservice.ListResult, error) {
				assert.Equal(t, 1000, limit)
				assert.Equal(t, 0, skip)
				assert.Nil(t, filter.DateFrom)
				assert.Nil(t, filter.DateTo)
				assert.Nil(t, filter.ActivityType)
				return sampleResult(limit, skip), nil
			},
		}

		req := httptest.NewRequest(http.MethodGet, "/api/attendance", nil)
		w := httptest.NewRecorder()

		h := handler.New(makeLogger(), service, 1000, 5000)
		h.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("limit capped at maximum", func(t *testing.T) {
		service := &mockService{
			ListFunc: func(ctx context.Context, filter models.Filter, limit, skip int) (*attendanceservice.ListResult, error) {
				assert.Equal(t, 5000, limit)
				return sampleResult(limit, skip), nil
			},
		}

		req := httptest.NewRequest(http.MethodGet, "/api/attendance?limit=99999", nil)
		w := httptest.NewRecorder()

		h := handler.New(makeLogger(), service, 1000, 5000)
		h.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("invalid date", func(t *testing.T) {
		service := &mockService{
			ListFunc: func(ctx context.Context, filter models.Filter, limit, skip int) (*attendanceservice.ListResult, error) {
				t.Fatal("service should not be called on validation error")
				return nil, nil
			},
		}

		req := httptest.NewRequest(http.MethodGet, "/api/attendance?dateFrom=15-03-2024", nil)
		w := httptest.NewRecorder()

		h := handler.New(makeLogger(), service, 1000, 5000)
		h.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Contains(t, w.Body.String(), "DateFrom")
	})

	t.Run("non-numeric limit", func(t *testing.T) {
		service := &mockService{
			ListFunc: func(ctx context.Context, filter models.Filter, limit, skip int) (*attendanceservice.ListResult, error) {
				t.Fatal("service should not be called on validation error")
				return nil, nil
			},
		}

		req := httptest.NewRequest(http.MethodGet, "/api/attendance?limit=veel", nil)
		w := httptest.NewRecorder()

		h := handler.New(makeLogger(), service, 1000, 5000)
		h.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("upstream failure", func(t *testing.T) {
		service := &mockService{
			ListFunc: func(ctx context.Context, filter models.Filter, limit, skip int) (*attendanceservice.ListResult, error) {
				return nil, errors.New("unexpected upstream status: 502 Bad Gateway")
			},
		}

		req := httptest.NewRequest(http.MethodGet, "/api/attendance", nil)
		w := httptest.NewRecorder()

		h := handler.New(makeLogger(), service, 1000, 5000)
		h.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)

		var resp response.Response
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.False(t, resp.Success)
		assert.Equal(t, "failed to fetch attendance data", resp.Error)
		assert.Contains(t, resp.Details, "502")
	})
}

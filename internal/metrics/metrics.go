// Package metrics регистрирует метрики Prometheus для наблюдения за работой сервиса:
// количество и длительность запросов к вышестоящему OData API, а также счётчики
// обработанных и пропущенных записей. Метрики отдаются на /metrics через promhttp.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// UpstreamRequests счётчик запросов к OData API с меткой результата ("ok", "error").
	UpstreamRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "odata_upstream_requests_total",
		Help: "Total number of requests issued to the upstream OData API.",
	}, []string{"result"})

	// UpstreamDuration гистограмма длительности запросов к OData API в секундах.
	UpstreamDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "odata_upstream_request_duration_seconds",
		Help:    "Duration of upstream OData API requests.",
		Buckets: prometheus.DefBuckets,
	})

	// FlattenedRecords счётчик сформированных записей посещаемости.
	FlattenedRecords = promauto.NewCounter(prometheus.CounterOpts{
		Name: "attendance_flattened_records_total",
		Help: "Total number of attendance records produced by the flattener.",
	})

	// SkippedActivities счётчик активностей, пропущенных из-за отсутствия акторов.
	SkippedActivities = promauto.NewCounter(prometheus.CounterOpts{
		Name: "attendance_skipped_activities_total",
		Help: "Total number of activities skipped because they have no actors.",
	})
)

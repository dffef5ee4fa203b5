// Package home реализует HTTP-обработчик главной страницы с документацией API
// для разработчиков фронтенда с графиками.
package home

import (
	"log/slog"
	"net/http"
)

// Handler отдаёт статичную HTML-страницу с описанием конечных точек.
type Handler struct {
	log *slog.Logger
}

// New создает новый Handler с переданным логгером.
func New(log *slog.Logger) *Handler {
	return &Handler{log: log}
}

const indexHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Tweede Kamer Attendance API</title>
<style>
body { font-family: sans-serif; max-width: 860px; margin: 2rem auto; padding: 0 1rem; color: #222; }
code { background: #f4f4f4; padding: 2px 5px; border-radius: 3px; }
table { border-collapse: collapse; width: 100%; }
th, td { text-align: left; border-bottom: 1px solid #ddd; padding: 6px 8px; vertical-align: top; }
</style>
</head>
<body>
<h1>Tweede Kamer Attendance API</h1>
<p>JSON API over the public Tweede Kamer OData source. Activities are fetched with
actor/person/fraction expansions and flattened into one attendance record per
person per activity, ready for charting.</p>

<h2>Endpoints</h2>
<table>
<tr><th>Endpoint</th><th>Description</th></tr>
<tr><td><code>GET /api/attendance</code></td>
<td>Flattened attendance records. Query parameters: <code>dateFrom</code>,
<code>dateTo</code> (YYYY-MM-DD, inclusive), <code>activityType</code>
(case-insensitive substring match on the activity subject), <code>limit</code>
(default 1000), <code>skip</code> (default 0). The response metadata carries
<code>totalCount</code> on the first page only.</td></tr>
<tr><td><code>GET /api/activity/{id}</code></td>
<td>One activity by id, returned as the raw nested upstream record.</td></tr>
<tr><td><code>GET /api/stats</code></td>
<td>Approximate statistics (unique people and fractions) over a sample of the
first 100 matching activities. Same filter parameters as /api/attendance.</td></tr>
<tr><td><code>GET /api/health</code></td><td>Service health and upstream client readiness.</td></tr>
<tr><td><code>GET /metrics</code></td><td>Prometheus metrics.</td></tr>
<tr><td><code>GET /docs/</code></td><td>Swagger UI.</td></tr>
</table>

<h2>Examples</h2>
<p><code>GET /api/attendance?dateFrom=2024-01-01&amp;dateTo=2024-03-31&amp;activityType=debat&amp;limit=200</code></p>
<p><code>GET /api/stats?dateFrom=2024-01-01</code></p>

<p>Records with missing data degrade to defaults instead of failing the request:
an unparseable date yields <code>"Unknown"</code> and <code>hasValidDate=false</code>,
a missing fraction yields <code>"Unknown"</code>, a missing role yields
<code>"Participant"</code>.</p>
</body>
</html>
`

// ServeHTTP отдаёт страницу документации.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(indexHTML))
}

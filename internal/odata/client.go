package odata

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/magabrotheeeer/attendance-aggregator/internal/metrics"
)

// Client HTTP-клиент вышестоящего OData API.
// Создаётся один раз при старте приложения, до начала приёма запросов,
// и безопасен для одновременного использования из разных обработчиков.
type Client struct {
	apiURL     string
	httpClient *http.Client
}

// NewClient создаёт новый клиент OData API с заданным базовым URL и таймаутом.
func NewClient(apiURL string, timeout time.Duration) *Client {
	return &Client{
		apiURL:     strings.TrimRight(apiURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// FetchActivities выполняет запрос query и разбирает ответ как список активностей.
func (c *Client) FetchActivities(ctx context.Context, query string) (*Envelope, error) {
	var env Envelope
	if err := c.do(ctx, query, &env); err != nil {
		return nil, err
	}
	return &env, nil
}

// FetchRaw выполняет запрос query и возвращает записи ответа без разбора.
func (c *Client) FetchRaw(ctx context.Context, query string) (*RawEnvelope, error) {
	var env RawEnvelope
	if err := c.do(ctx, query, &env); err != nil {
		return nil, err
	}
	return &env, nil
}

// do выполняет один GET-запрос к API и декодирует JSON-ответ в out.
// Повторов при ошибке нет: неудавшийся запрос возвращает ошибку вызывающей стороне.
func (c *Client) do(ctx context.Context, query string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.apiURL+"/"+query, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	metrics.UpstreamDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.UpstreamRequests.WithLabelValues("error").Inc()
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		metrics.UpstreamRequests.WithLabelValues("error").Inc()
		return errors.New("unexpected upstream status: " + resp.Status)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		metrics.UpstreamRequests.WithLabelValues("error").Inc()
		return err
	}
	metrics.UpstreamRequests.WithLabelValues("ok").Inc()
	return nil
}

// Package datasource talks to the analytics backend API.
package datasource

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"
	gobreaker "github.com/sony/gobreaker/v2"
	"golang.org/x/time/rate"

	"game-analytics-service/internal/config"
	"game-analytics-service/internal/logging"
	"game-analytics-service/internal/metrics"
	"game-analytics-service/internal/pipeline"
)

const maxBodyBytes = 16 << 20

// Client is safe for concurrent use.
type Client struct {
	baseURL *url.URL
	token   string
	http    *http.Client
	limiter *rate.Limiter
	breaker *gobreaker.CircuitBreaker[pipeline.Value]
}

func New(cfg config.BackendConfig) (*Client, error) {
	base, err := url.Parse(strings.TrimRight(cfg.BaseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse backend url: %w", err)
	}

	limit := rate.Inf
	if cfg.RateLimitRPS > 0 {
		limit = rate.Limit(cfg.RateLimitRPS)
	}
	burst := cfg.RateLimitBurst
	if burst < 1 {
		burst = 1
	}

	failures := cfg.Breaker.ConsecutiveFailures
	if failures == 0 {
		failures = 5
	}

	c := &Client{
		baseURL: base,
		token:   cfg.Token,
		http:    &http.Client{Timeout: cfg.Timeout},
		limiter: rate.NewLimiter(limit, burst),
	}
	c.breaker = gobreaker.NewCircuitBreaker[pipeline.Value](gobreaker.Settings{
		Name:        "analytics-backend",
		MaxRequests: cfg.Breaker.MaxRequests,
		Interval:    cfg.Breaker.Interval,
		Timeout:     cfg.Breaker.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= failures
		},
		IsSuccessful: isSuccessful,
		OnStateChange: func(name string, from, to gobreaker.State) {
			logging.Warn().
				Str("breaker", name).
				Str("from", from.String()).
				Str("to", to.String()).
				Msg("circuit breaker state changed")
			metrics.DatasourceBreakerState.Set(float64(to))
		},
	})
	return c, nil
}

// isSuccessful keeps client-side errors from tripping the breaker.
func isSuccessful(err error) bool {
	if err == nil || errors.Is(err, context.Canceled) {
		return true
	}
	var se *StatusError
	if errors.As(err, &se) {
		return se.Status < http.StatusInternalServerError
	}
	return false
}

func (c *Client) Get(ctx context.Context, path string, params Params) (pipeline.Value, error) {
	return c.do(ctx, http.MethodGet, path, params.Query(), nil)
}

func (c *Client) Post(ctx context.Context, path string, body any) (pipeline.Value, error) {
	return c.do(ctx, http.MethodPost, path, nil, body)
}

func (c *Client) Put(ctx context.Context, path string, body any) (pipeline.Value, error) {
	return c.do(ctx, http.MethodPut, path, nil, body)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any) (pipeline.Value, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return pipeline.Value{}, fmt.Errorf("rate limit wait: %w", err)
	}

	v, err := c.breaker.Execute(func() (pipeline.Value, error) {
		return c.roundTrip(ctx, method, path, query, body)
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return pipeline.Value{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return v, err
}

func (c *Client) roundTrip(ctx context.Context, method, path string, query url.Values, body any) (pipeline.Value, error) {
	u := c.baseURL.JoinPath(path)
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return pipeline.Value{}, fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), reader)
	if err != nil {
		return pipeline.Value{}, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		metrics.RecordDatasourceRequest(path, "error", time.Since(start))
		if ctx.Err() != nil {
			return pipeline.Value{}, ctx.Err()
		}
		return pipeline.Value{}, fmt.Errorf("%w: %s %s: %v", ErrUnavailable, method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	metrics.RecordDatasourceRequest(path, strconv.Itoa(resp.StatusCode), time.Since(start))
	logging.Ctx(ctx).Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("latency", time.Since(start)).
		Msg("backend call")
	if err != nil {
		return pipeline.Value{}, fmt.Errorf("read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return pipeline.Value{}, &StatusError{Status: resp.StatusCode, Message: statusMessage(resp.StatusCode, raw)}
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return pipeline.Null(), nil
	}
	v, err := pipeline.Parse(raw)
	if err != nil {
		return pipeline.Value{}, fmt.Errorf("%s %s: %w", method, path, err)
	}
	return v, nil
}

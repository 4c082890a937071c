package datasource

import (
	"context"
	"errors"

	"game-analytics-service/internal/logging"
	"game-analytics-service/internal/pipeline"
)

var ErrNoEndpoint = errors.New("no endpoint configured")

// FetchFirst GETs each path in order and returns the first answer. A 404
// moves on to the next path; any other error is returned at once.
func (c *Client) FetchFirst(ctx context.Context, paths []string, params Params) (pipeline.Value, error) {
	var lastErr error
	for _, p := range paths {
		v, err := c.Get(ctx, p, params)
		if err == nil {
			return v, nil
		}
		if !IsNotFound(err) {
			return pipeline.Value{}, err
		}
		lastErr = err
	}
	if lastErr == nil {
		lastErr = ErrNoEndpoint
	}
	return pipeline.Value{}, lastErr
}

// PostOrGet POSTs params and retries as a GET with the same params as a
// query string when the backend answers 404 or 405.
func (c *Client) PostOrGet(ctx context.Context, path string, params Params) (pipeline.Value, error) {
	v, err := c.Post(ctx, path, params.Compact())
	if err == nil || !IsFallbackStatus(err) {
		return v, err
	}
	return c.Get(ctx, path, params)
}

// FetchOptions loads a filter list from the first path that answers with a
// non-empty list. Failures are logged and skipped; the result may be empty.
func (c *Client) FetchOptions(ctx context.Context, paths []string, params Params, keys pipeline.OptionKeys) []pipeline.Option {
	for _, p := range paths {
		v, err := c.Get(ctx, p, params)
		if err != nil {
			if ctx.Err() != nil {
				return []pipeline.Option{}
			}
			logging.Ctx(ctx).Debug().Err(err).Str("path", p).Msg("option endpoint skipped")
			continue
		}
		if opts := pipeline.NormalizeOptions(v, keys); len(opts) > 0 {
			return opts
		}
	}
	return []pipeline.Option{}
}

package usecase_test

import (
	"context"
	"sync"
	"time"

	"game-analytics-service/internal/dashboards/core/usecase"
	"game-analytics-service/internal/datasource"
	"game-analytics-service/internal/pipeline"
)

// fakeReader, AnalyticsReaderPort'u test için fake'ler.
type fakeReader struct {
	GetFn          func(ctx context.Context, path string, params datasource.Params) (pipeline.Value, error)
	PostFn         func(ctx context.Context, path string, body any) (pipeline.Value, error)
	FetchFirstFn   func(ctx context.Context, paths []string, params datasource.Params) (pipeline.Value, error)
	PostOrGetFn    func(ctx context.Context, path string, params datasource.Params) (pipeline.Value, error)
	FetchOptionsFn func(ctx context.Context, paths []string, params datasource.Params, keys pipeline.OptionKeys) []pipeline.Option

	mu     sync.Mutex
	calls  []string
	params map[string]datasource.Params
}

func (f *fakeReader) record(path string, p datasource.Params) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, path)
	if f.params == nil {
		f.params = map[string]datasource.Params{}
	}
	f.params[path] = p
}

func (f *fakeReader) paramsFor(path string) datasource.Params {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.params[path]
}

func (f *fakeReader) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func (f *fakeReader) Get(ctx context.Context, path string, params datasource.Params) (pipeline.Value, error) {
	f.record(path, params)
	if f.GetFn != nil {
		return f.GetFn(ctx, path, params)
	}
	return pipeline.Null(), nil
}

func (f *fakeReader) Post(ctx context.Context, path string, body any) (pipeline.Value, error) {
	p, _ := body.(datasource.Params)
	f.record(path, p)
	if f.PostFn != nil {
		return f.PostFn(ctx, path, body)
	}
	return pipeline.Null(), nil
}

func (f *fakeReader) FetchFirst(ctx context.Context, paths []string, params datasource.Params) (pipeline.Value, error) {
	f.record(paths[0], params)
	if f.FetchFirstFn != nil {
		return f.FetchFirstFn(ctx, paths, params)
	}
	return pipeline.Null(), nil
}

func (f *fakeReader) PostOrGet(ctx context.Context, path string, params datasource.Params) (pipeline.Value, error) {
	f.record(path, params)
	if f.PostOrGetFn != nil {
		return f.PostOrGetFn(ctx, path, params)
	}
	return pipeline.Null(), nil
}

func (f *fakeReader) FetchOptions(ctx context.Context, paths []string, params datasource.Params, keys pipeline.OptionKeys) []pipeline.Option {
	f.record(paths[0], params)
	if f.FetchOptionsFn != nil {
		return f.FetchOptionsFn(ctx, paths, params, keys)
	}
	return []pipeline.Option{}
}

// fakeLister returns fixed option values per field.
type fakeLister struct {
	values map[string][]string
}

func (f *fakeLister) ListOptions(ctx context.Context, dashboard, field string, s usecase.Session) []pipeline.Option {
	opts := []pipeline.Option{}
	for _, v := range f.values[field] {
		opts = append(opts, pipeline.Option{Value: v, Label: v})
	}
	return opts
}

type fakeCache struct {
	mu    sync.Mutex
	items map[string][]pipeline.Option
	adds  int
}

func (c *fakeCache) Get(key string) ([]pipeline.Option, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	opts, ok := c.items[key]
	return opts, ok
}

func (c *fakeCache) Add(key string, opts []pipeline.Option) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.items == nil {
		c.items = map[string][]pipeline.Option{}
	}
	c.items[key] = opts
	c.adds++
}

func fixedClock() usecase.Option {
	return usecase.WithClock(func() time.Time {
		return time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	})
}

func intPtr(n int) *int { return &n }

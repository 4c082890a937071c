package ports

import (
	"context"

	"game-analytics-service/internal/datasource"
	"game-analytics-service/internal/pipeline"
)

// AnalyticsReaderPort is the analytics backend as the dashboards see it.
type AnalyticsReaderPort interface {
	Get(ctx context.Context, path string, params datasource.Params) (pipeline.Value, error)
	Post(ctx context.Context, path string, body any) (pipeline.Value, error)
	FetchFirst(ctx context.Context, paths []string, params datasource.Params) (pipeline.Value, error)
	PostOrGet(ctx context.Context, path string, params datasource.Params) (pipeline.Value, error)
	FetchOptions(ctx context.Context, paths []string, params datasource.Params, keys pipeline.OptionKeys) []pipeline.Option
}

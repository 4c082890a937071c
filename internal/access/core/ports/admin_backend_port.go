package ports

import (
	"context"

	"game-analytics-service/internal/datasource"
	"game-analytics-service/internal/pipeline"
)

// AdminBackendPort is the part of the analytics backend that manages users.
type AdminBackendPort interface {
	Get(ctx context.Context, path string, params datasource.Params) (pipeline.Value, error)
	FetchFirst(ctx context.Context, paths []string, params datasource.Params) (pipeline.Value, error)
	Put(ctx context.Context, path string, body any) (pipeline.Value, error)
	Post(ctx context.Context, path string, body any) (pipeline.Value, error)
}

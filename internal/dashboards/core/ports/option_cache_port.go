package ports

import "game-analytics-service/internal/pipeline"

// OptionCachePort keeps filter option lists between requests.
type OptionCachePort interface {
	Get(key string) ([]pipeline.Option, bool)
	Add(key string, opts []pipeline.Option)
}

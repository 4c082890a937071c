package usecase

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"game-analytics-service/internal/dashboards/core/domain"
	"game-analytics-service/internal/dashboards/core/ports"
	"game-analytics-service/internal/datasource"
	"game-analytics-service/internal/metrics"
	"game-analytics-service/internal/pipeline"
)

// filterSource is where one filter list comes from: endpoints tried in
// order and the fields holding the option value.
type filterSource struct {
	field string
	paths []string
	keys  []string
}

var (
	platformKeys = []string{"platform", "name", "value"}
	versionKeys  = []string{"version", "gameVersion", "name", "value"}
)

var filterCatalog = map[string][]filterSource{
	domain.InApp: {
		{field: "platform", paths: []string{"/api/iap/platforms"}, keys: platformKeys},
	},
	domain.RewardedAds: {
		{field: "country", paths: []string{"/api/rewarded-ads/countries", "/api/iap/countries"}, keys: []string{"country", "code", "name", "value"}},
		{field: "platform", paths: []string{"/api/rewarded-ads/platforms", "/api/iap/platforms"}, keys: platformKeys},
		{field: "version", paths: []string{"/api/rewarded-ads/game-versions", "/api/iap/versions", "/api/iap/game-versions"}, keys: versionKeys},
		{field: "placement", paths: []string{"/api/rewarded-ads/placements", "/api/rewarded-ads/ratio/placement"}, keys: []string{"placement", "placementId", "name", "key", "value"}},
	},
	domain.Gameplay: {
		{field: "country", paths: []string{"/api/gameplay/countries", "/api/iap/countries"}, keys: []string{"country", "countryCode", "name", "value"}},
		{field: "platform", paths: []string{"/api/gameplay/platforms", "/api/iap/platforms"}, keys: platformKeys},
		{field: "version", paths: []string{"/api/gameplay/game-versions", "/api/iap/game-versions", "/api/iap/versions"}, keys: versionKeys},
	},
	domain.Resources: {
		{field: "country", paths: []string{"/api/resource/countries"}, keys: []string{"country", "countryCode", "name", "value"}},
		{field: "platform", paths: []string{"/api/resource/platforms"}, keys: platformKeys},
		{field: "version", paths: []string{"/api/resource/game-versions"}, keys: versionKeys},
		{field: "placement", paths: []string{"/api/resource/placements"}, keys: []string{"placement", "name", "value"}},
		{field: "subPlacement", paths: []string{"/api/resource/sub-placements"}, keys: []string{"subPlacement", "name", "value"}},
		{field: "itemName", paths: []string{"/api/resource/item-names"}, keys: []string{"itemName", "name", "value"}},
	},
}

// FilterFields lists the filter fields of a dashboard in display order.
func FilterFields(dashboard string) []string {
	fields := make([]string, 0, len(filterCatalog[dashboard]))
	for _, src := range filterCatalog[dashboard] {
		fields = append(fields, src.field)
	}
	return fields
}

// FilterOptionsUseCase loads the option lists behind the dashboard filters.
// Lists never fail: an endpoint that errors or answers empty is skipped.
type FilterOptionsUseCase struct {
	reader ports.AnalyticsReaderPort
	cache  ports.OptionCachePort
}

// NewFilterOptionsUseCase accepts a nil cache.
func NewFilterOptionsUseCase(reader ports.AnalyticsReaderPort, cache ports.OptionCachePort) *FilterOptionsUseCase {
	return &FilterOptionsUseCase{reader: reader, cache: cache}
}

func (uc *FilterOptionsUseCase) Execute(ctx context.Context, dashboard string, s Session) (*domain.FilterSet, error) {
	sources, ok := filterCatalog[dashboard]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownDashboard, dashboard)
	}

	set := &domain.FilterSet{Dashboard: dashboard, Lists: make([]domain.FilterList, len(sources))}
	g, gctx := errgroup.WithContext(ctx)
	for i, src := range sources {
		g.Go(func() error {
			set.Lists[i] = domain.FilterList{Field: src.field, Options: uc.load(gctx, dashboard, src, s)}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return set, nil
}

// ListOptions returns one option list; unknown fields give an empty list.
func (uc *FilterOptionsUseCase) ListOptions(ctx context.Context, dashboard, field string, s Session) []pipeline.Option {
	for _, src := range filterCatalog[dashboard] {
		if src.field == field {
			return uc.load(ctx, dashboard, src, s)
		}
	}
	return []pipeline.Option{}
}

func (uc *FilterOptionsUseCase) load(ctx context.Context, dashboard string, src filterSource, s Session) []pipeline.Option {
	key := strings.Join([]string{dashboard, src.field, s.GameID}, "|")
	if uc.cache != nil {
		opts, hit := uc.cache.Get(key)
		metrics.RecordOptionCache(hit)
		if hit {
			return opts
		}
	}

	params := datasource.Params{}
	if id := strings.TrimSpace(s.GameID); id != "" {
		params["gameIds"] = id
	}
	opts := uc.reader.FetchOptions(ctx, src.paths, params, pipeline.OptionKeys{Value: src.keys})
	// empty lists are not cached
	if uc.cache != nil && len(opts) > 0 {
		uc.cache.Add(key, opts)
	}
	return opts
}

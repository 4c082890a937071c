package usecase

import (
	"context"
	"fmt"
	"strings"

	"game-analytics-service/internal/dashboards/core/domain"
	"game-analytics-service/internal/dashboards/core/ports"
	"game-analytics-service/internal/pipeline"
)

const (
	PanelDatePlacement  = "date_placement"
	PanelLevelPlacement = "level_placement"
)

var (
	rewardedAmountKeys = []string{"amount", "totalAmount", "count", "value"}
	rewardedLevelPaths = []string{
		"/api/rewarded-ads/amount-by-level-placement",
		"/api/rewarded-ads/amount-by-level",
	}
)

func rewardedBreakdown() *pipeline.Breakdown {
	return &pipeline.Breakdown{
		NestedKeys: []string{"placements"},
		SeriesKeys: []string{"placement", "placementId", "adPlacement", "group"},
		ValueKeys:  rewardedAmountKeys,
	}
}

// RewardedAdsUseCase builds the rewarded ads dashboard.
type RewardedAdsUseCase struct {
	base
}

func NewRewardedAdsUseCase(reader ports.AnalyticsReaderPort, opts ...Option) *RewardedAdsUseCase {
	return &RewardedAdsUseCase{base: newBase(domain.RewardedAds, reader, opts)}
}

func (uc *RewardedAdsUseCase) Execute(ctx context.Context, in DashboardInput) (*domain.Dashboard, error) {
	return uc.run(ctx, in, uc.build)
}

func (uc *RewardedAdsUseCase) build(ctx context.Context, q query) ([]domain.Panel, error) {
	p := q.params()
	q.levels(p)
	// multi-selects go out comma-joined on this backend
	for field, param := range map[string]string{
		"country":   "countryCode",
		"platform":  "platform",
		"version":   "gameVersion",
		"placement": "placements",
	} {
		if sel := uc.selection(ctx, q, field); len(sel) > 0 {
			p[param] = strings.Join(sel, ",")
		}
	}

	res, err := fetchAll(ctx,
		func(ctx context.Context) (pipeline.Value, error) {
			return uc.reader.Get(ctx, "/api/rewarded-ads/amount-by-date-placement", p)
		},
		func(ctx context.Context) (pipeline.Value, error) {
			return uc.reader.FetchFirst(ctx, rewardedLevelPaths, p)
		},
	)
	if err != nil {
		return nil, err
	}

	byDate, err := pipeline.Aggregate(pipeline.NormalizeRows(res[0], pipeline.DefaultKeyField), pipeline.AggregateSpec{
		CategoryKeys: []string{"date", "level", "x"},
		Breakdown:    rewardedBreakdown(),
		Compare:      pipeline.Lexical,
		Stack:        "stack1",
	})
	if err != nil {
		return nil, fmt.Errorf("date placement chart: %w", err)
	}
	byLevel, err := pipeline.Aggregate(pipeline.NormalizeRows(res[1], "level"), pipeline.AggregateSpec{
		CategoryKeys: []string{"level", "stage", "tier"},
		Breakdown:    rewardedBreakdown(),
		Compare:      pipeline.NumericAware,
		Stack:        "stack1",
	})
	if err != nil {
		return nil, fmt.Errorf("level placement chart: %w", err)
	}

	return []domain.Panel{
		chartPanel(PanelDatePlacement, "Rewarded amount by date and placement", domain.PanelBar, byDate, true),
		chartPanel(PanelLevelPlacement, "Rewarded amount by level and placement", domain.PanelBar, byLevel, true),
		proportionPanel(PanelPlacementRatio, "Rewarded Amount Ratio", pipeline.ShareOfTotal(byDate, "Rewarded Amount Ratio")),
	}, nil
}

package usecase

import (
	"context"
	"fmt"

	"game-analytics-service/internal/dashboards/core/domain"
	"game-analytics-service/internal/dashboards/core/ports"
	"game-analytics-service/internal/pipeline"
)

const (
	PanelPurchases      = "purchases"
	PanelRevenue        = "revenue"
	PanelRevenueRatio   = "revenue_ratio"
	PanelPlacementRatio = "placement_ratio"
)

var (
	iapPurchaseKeys      = []string{"count", "quantity", "purchases", "total"}
	iapRevenueKeys       = []string{"revenue", "amount", "totalRevenue"}
	iapPlacementLabels   = []string{"placement", "placementId", "name", "key"}
	iapPlacementValues   = []string{"ratio", "share", "percentage", "value", "revenue", "totalRevenue"}
	iapPlacementKeyField = "placement"
)

// iapBreakdown stacks by product: either a products mapping per date or one
// row per productId.
func iapBreakdown(valueKeys ...string) *pipeline.Breakdown {
	return &pipeline.Breakdown{
		NestedKeys: []string{"products"},
		SeriesKeys: []string{"productId"},
		ValueKeys:  valueKeys,
	}
}

// InAppUseCase builds the in-app purchase dashboard.
type InAppUseCase struct {
	base
}

func NewInAppUseCase(reader ports.AnalyticsReaderPort, opts ...Option) *InAppUseCase {
	return &InAppUseCase{base: newBase(domain.InApp, reader, opts)}
}

func (uc *InAppUseCase) Execute(ctx context.Context, in DashboardInput) (*domain.Dashboard, error) {
	return uc.run(ctx, in, uc.build)
}

func (uc *InAppUseCase) build(ctx context.Context, q query) ([]domain.Panel, error) {
	p := q.params()
	if v := q.single("country"); v != "" {
		p["country"] = v
	}
	if v := q.single("version"); v != "" {
		p["gameVersion"] = v
	}
	if v := q.single("platform"); v != "" {
		p["platform"] = v
	}
	if products := pipeline.NormalizeUnique(q.Filters["product"]); len(products) > 0 {
		p["products"] = products
	}

	get := func(path string) fetchFunc {
		return func(ctx context.Context) (pipeline.Value, error) { return uc.reader.Get(ctx, path, p) }
	}
	res, err := fetchAll(ctx,
		get("/api/iap/chart/compact"),
		get("/api/iap/revenue-by-date"),
		get("/api/iap/ratio/placement"),
	)
	if err != nil {
		return nil, err
	}

	purchases, err := stackedByDate(res[0], iapBreakdown(iapPurchaseKeys...))
	if err != nil {
		return nil, fmt.Errorf("purchases chart: %w", err)
	}
	revenue, err := stackedByDate(res[1], iapBreakdown(iapRevenueKeys...))
	if err != nil {
		return nil, fmt.Errorf("revenue chart: %w", err)
	}

	placementRows := pipeline.NormalizeRows(res[2], iapPlacementKeyField)
	return []domain.Panel{
		chartPanel(PanelPurchases, "Purchases by product", domain.PanelBar, purchases, true),
		chartPanel(PanelRevenue, "Revenue by product", domain.PanelBar, revenue, true),
		proportionPanel(PanelRevenueRatio, "Revenue Ratio", pipeline.ShareOfTotal(revenue, "Revenue Ratio")),
		proportionPanel(PanelPlacementRatio, "Placement Ratio",
			pipeline.Proportions(placementRows, iapPlacementLabels, iapPlacementValues, "Placement Ratio")),
	}, nil
}

func stackedByDate(v pipeline.Value, bd *pipeline.Breakdown) (*pipeline.Series, error) {
	return pipeline.Aggregate(pipeline.NormalizeRows(v, pipeline.DefaultKeyField), pipeline.AggregateSpec{
		CategoryKeys: []string{"date"},
		Breakdown:    bd,
		Compare:      pipeline.Lexical,
		Stack:        "stack1",
	})
}

package usecase

import (
	"context"
	"fmt"

	"game-analytics-service/internal/dashboards/core/domain"
	"game-analytics-service/internal/dashboards/core/ports"
	"game-analytics-service/internal/pipeline"
)

const (
	PanelByDate          = "by_date"
	PanelByLevel         = "by_level"
	PanelSourceWhereMain = "source_where_main"
	PanelSinkWhereMain   = "sink_where_main"
)

var (
	whereMainKeys = []string{"placement", "whereMain", "sourceWhereMain", "sinkWhereMain", "main"}

	sourceSinkMetrics = []pipeline.MetricDefinition{
		{Key: "source", Label: "source", MetricKeys: []string{"source", "totalSource", "sourceAmount", "inflow", "in", "gain"}, Color: "#eab308"},
		{Key: "sink", Label: "sink", MetricKeys: []string{"sink", "totalSink", "sinkAmount", "outflow", "out", "loss"}, Color: "#22c55e"},
	}

	// resource filter field -> request field
	resourceFilterParams = [][2]string{
		{"country", "countryCode"},
		{"platform", "platform"},
		{"version", "gameVersion"},
		{"placement", "placements"},
		{"subPlacement", "subPlacements"},
		{"itemName", "itemNames"},
	}
)

// ResourcesUseCase builds the resource economy (source / sink) dashboard.
type ResourcesUseCase struct {
	base
}

func NewResourcesUseCase(reader ports.AnalyticsReaderPort, opts ...Option) *ResourcesUseCase {
	return &ResourcesUseCase{base: newBase(domain.Resources, reader, opts)}
}

func (uc *ResourcesUseCase) Execute(ctx context.Context, in DashboardInput) (*domain.Dashboard, error) {
	return uc.run(ctx, in, uc.build)
}

func (uc *ResourcesUseCase) build(ctx context.Context, q query) ([]domain.Panel, error) {
	p := q.params()
	q.levels(p)
	for _, fp := range resourceFilterParams {
		if sel := uc.selection(ctx, q, fp[0]); len(sel) > 0 {
			p[fp[1]] = sel
		}
	}

	post := func(path string) fetchFunc {
		return func(ctx context.Context) (pipeline.Value, error) { return uc.reader.PostOrGet(ctx, path, p) }
	}
	res, err := fetchAll(ctx,
		post("/api/resource/source-sink-by-date"),
		post("/api/resource/source-sink-by-level"),
		post("/api/resource/source-by-where-main"),
		post("/api/resource/sink-by-where-main"),
	)
	if err != nil {
		return nil, err
	}

	byDate, err := pipeline.Aggregate(pipeline.NormalizeRows(res[0], pipeline.DefaultKeyField), pipeline.AggregateSpec{
		CategoryKeys: []string{"date", "x", "day"},
		Metrics:      sourceSinkMetrics,
		Compare:      pipeline.Lexical,
	})
	if err != nil {
		return nil, fmt.Errorf("source sink by date: %w", err)
	}
	byLevel, err := pipeline.Aggregate(pipeline.NormalizeRows(res[1], pipeline.DefaultKeyField), pipeline.AggregateSpec{
		CategoryKeys: []string{"level", "gameLevel", "x"},
		Metrics:      sourceSinkMetrics,
		Compare:      pipeline.NumericAware,
	})
	if err != nil {
		return nil, fmt.Errorf("source sink by level: %w", err)
	}

	sources := pipeline.NormalizeRows(res[2], "placement")
	sinks := pipeline.NormalizeRows(res[3], "placement")
	return []domain.Panel{
		chartPanel(PanelByDate, "Source/Sink by date", domain.PanelLine, byDate, false),
		chartPanel(PanelByLevel, "Source/Sink by level", domain.PanelLine, byLevel, false),
		proportionPanel(PanelSourceWhereMain, "Source by Placement", pipeline.Proportions(sources, whereMainKeys,
			[]string{"source", "totalSource", "sourceAmount", "amount", "value", "count", "total"}, "source")),
		proportionPanel(PanelSinkWhereMain, "Sink by Placement", pipeline.Proportions(sinks, whereMainKeys,
			[]string{"sink", "totalSink", "sinkAmount", "amount", "value", "count", "total"}, "sink")),
	}, nil
}

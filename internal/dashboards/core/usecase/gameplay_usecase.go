package usecase

import (
	"context"
	"fmt"

	"game-analytics-service/internal/dashboards/core/domain"
	"game-analytics-service/internal/dashboards/core/ports"
	"game-analytics-service/internal/pipeline"
)

const (
	PanelStart        = "start"
	PanelWin          = "win"
	PanelLose         = "lose"
	PanelStartRatio   = "start_ratio"
	PanelWinRatio     = "win_ratio"
	PanelLoseRatio    = "lose_ratio"
	PanelWinDuration  = "win_duration"
	PanelLoseDuration = "lose_duration"
)

const (
	outcomeColor        = "#eab308"
	usersColor          = "#22c55e"
	usersRemainingLabel = "% Users Remaining"
	durationLabel       = "Duration(s)"
)

var (
	levelKeys    = []string{"level", "gameLevel", "stage", "x", "key"}
	durationKeys = []string{"duration", "avgDuration", "averageDuration", "meanDuration"}
)

// outcome is one of the start / win / lose gameplay reports.
type outcome struct {
	path          string
	panel         string
	ratioPanel    string
	durationPanel string // empty when the report has no duration chart
	title         string
	durationTitle string
	totalLabel    string
	usersLabel    string
	ratioLabel    string
	totalKeys     []string
	usersKeys     []string
}

var outcomes = []outcome{
	{
		path:       "/api/gameplay/user-start",
		panel:      PanelStart,
		ratioPanel: PanelStartRatio,
		title:      "Starts by level",
		totalLabel: "Total Starts",
		usersLabel: "Users Started",
		ratioLabel: "Start/UserStart Ratio",
		totalKeys:  []string{"totalStarts", "startCount", "totalStart", "starts", "count", "playCount", "total", "value", "amount"},
		usersKeys:  []string{"totalUsersStart", "userStart", "totalUserStart", "users", "uniqueUsers", "userCount"},
	},
	{
		path:          "/api/gameplay/user-win",
		panel:         PanelWin,
		ratioPanel:    PanelWinRatio,
		title:         "Wins by level",
		durationPanel: PanelWinDuration,
		durationTitle: "Win duration",
		totalLabel:    "Total Wins",
		usersLabel:    "Users Won",
		ratioLabel:    "Win/UserWin Ratio",
		totalKeys:     []string{"totalWins", "winCount", "totalWin", "wins", "count", "playCount", "total", "value", "amount"},
		usersKeys:     []string{"totalUsersWin", "userWin", "totalUserWin", "users", "uniqueUsers", "userCount"},
	},
	{
		path:          "/api/gameplay/user-lose",
		panel:         PanelLose,
		ratioPanel:    PanelLoseRatio,
		title:         "Loses by level",
		durationPanel: PanelLoseDuration,
		durationTitle: "Lose duration",
		totalLabel:    "Total Loses",
		usersLabel:    "Users Lost",
		ratioLabel:    "Lose/UserLose Ratio",
		totalKeys:     []string{"totalLoses", "loseCount", "totalLose", "loses", "count", "playCount", "total", "value", "amount"},
		usersKeys:     []string{"totalUsersLose", "userLose", "totalUserLose", "users", "uniqueUsers", "userCount"},
	},
}

// GameplayUseCase builds the level funnel dashboard.
type GameplayUseCase struct {
	base
}

func NewGameplayUseCase(reader ports.AnalyticsReaderPort, opts ...Option) *GameplayUseCase {
	return &GameplayUseCase{base: newBase(domain.Gameplay, reader, opts)}
}

func (uc *GameplayUseCase) Execute(ctx context.Context, in DashboardInput) (*domain.Dashboard, error) {
	return uc.run(ctx, in, uc.build)
}

func (uc *GameplayUseCase) build(ctx context.Context, q query) ([]domain.Panel, error) {
	body := q.params()
	q.levels(body)
	if v := q.single("country"); v != "" {
		body["country"] = v
		body["countryCode"] = v
	}
	if v := q.single("platform"); v != "" {
		body["platform"] = v
	}
	if v := q.single("version"); v != "" {
		body["gameVersion"] = v
	}

	fetches := make([]fetchFunc, len(outcomes))
	for i, o := range outcomes {
		fetches[i] = func(ctx context.Context) (pipeline.Value, error) {
			return uc.reader.Post(ctx, o.path, body)
		}
	}
	res, err := fetchAll(ctx, fetches...)
	if err != nil {
		return nil, err
	}

	var charts, ratios, durations []domain.Panel
	for i, o := range outcomes {
		rows := pipeline.NormalizeRows(res[i], "level")

		s, err := pipeline.Aggregate(rows, pipeline.AggregateSpec{
			CategoryKeys: levelKeys,
			Metrics: []pipeline.MetricDefinition{
				{Key: "total", Label: o.totalLabel, MetricKeys: o.totalKeys, Color: outcomeColor},
				{Key: "users", Label: o.usersLabel, MetricKeys: o.usersKeys, Color: usersColor},
			},
			Compare: pipeline.NumericAware,
		})
		if err != nil {
			return nil, fmt.Errorf("%s chart: %w", o.panel, err)
		}
		if o.panel == PanelStart {
			s = pipeline.AppendRelativeToBaseline(s, o.usersLabel, usersRemainingLabel)
		}
		charts = append(charts, chartPanel(o.panel, o.title, domain.PanelLine, s, false))

		ratio := pipeline.Ratio(rows, pipeline.RatioSpec{
			CategoryKeys:    levelKeys,
			NumeratorKeys:   o.totalKeys,
			DenominatorKeys: o.usersKeys,
			Label:           o.ratioLabel,
			Color:           outcomeColor,
			Compare:         pipeline.NumericAware,
		})
		ratios = append(ratios, chartPanel(o.ratioPanel, o.ratioLabel, domain.PanelLine, ratio, false))

		if o.durationPanel == "" {
			continue
		}
		d, err := pipeline.Aggregate(rows, pipeline.AggregateSpec{
			CategoryKeys: levelKeys,
			Metrics: []pipeline.MetricDefinition{
				{Key: "duration", Label: durationLabel, MetricKeys: durationKeys, Color: outcomeColor, Reduce: pipeline.Average},
			},
			Compare: pipeline.NumericAware,
		})
		if err != nil {
			return nil, fmt.Errorf("%s duration chart: %w", o.panel, err)
		}
		durations = append(durations, chartPanel(o.durationPanel, o.durationTitle, domain.PanelLine, d, false))
	}

	panels := append(charts, ratios...)
	return append(panels, durations...), nil
}

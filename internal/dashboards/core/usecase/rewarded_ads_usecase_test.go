package usecase_test

import (
	"context"
	"reflect"
	"testing"

	"game-analytics-service/internal/dashboards/core/usecase"
	"game-analytics-service/internal/datasource"
	"game-analytics-service/internal/pipeline"
)

func TestRewardedAds_Success(t *testing.T) {
	var levelPaths []string
	reader := &fakeReader{
		GetFn: func(ctx context.Context, path string, params datasource.Params) (pipeline.Value, error) {
			return pipeline.MustParse(`[
				{"date":"2026-03-02","placements":{"revive":5,"bonus":2}},
				{"date":"2026-03-01","placement":"revive","amount":3},
				{"date":"2026-03-01","placement":"bonus","amount":-4}
			]`), nil
		},
		FetchFirstFn: func(ctx context.Context, paths []string, params datasource.Params) (pipeline.Value, error) {
			levelPaths = paths
			return pipeline.MustParse(`{"10":{"placements":{"revive":1}},"2":{"placements":{"revive":4}}}`), nil
		},
	}
	lister := &fakeLister{values: map[string][]string{
		"country":   {"US", "FR"},
		"platform":  {"ios", "android"},
		"placement": {"revive", "bonus", "shop"},
	}}
	uc := usecase.NewRewardedAdsUseCase(reader, fixedClock(), usecase.WithOptionLister(lister))

	out, err := uc.Execute(context.Background(), usecase.DashboardInput{
		From:     "2026-03-01",
		To:       "2026-03-02",
		MinLevel: intPtr(1),
		MaxLevel: intPtr(10),
		Filters: map[string][]string{
			"country":   {"FR", "US"},
			"platform":  {"ios"},
			"placement": {"bonus", "revive", "unknown"},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	p := reader.paramsFor("/api/rewarded-ads/amount-by-date-placement")
	if _, ok := p["countryCode"]; ok {
		t.Fatalf("all countries selected must not be sent, got %v", p["countryCode"])
	}
	if p["platform"] != "ios" || p["placements"] != "bonus,revive" {
		t.Fatalf("unexpected filter params %v", p)
	}
	if p["minLevel"] != 1 || p["maxLevel"] != 10 {
		t.Fatalf("unexpected level params %v", p)
	}
	if !reflect.DeepEqual(levelPaths, []string{
		"/api/rewarded-ads/amount-by-level-placement",
		"/api/rewarded-ads/amount-by-level",
	}) {
		t.Fatalf("unexpected level endpoints %v", levelPaths)
	}

	byDate, _ := out.Panel(usecase.PanelDatePlacement)
	revive, _ := byDate.Series.Dataset("revive")
	bonus, _ := byDate.Series.Dataset("bonus")
	if !reflect.DeepEqual(revive.Data, []float64{3, 5}) || !reflect.DeepEqual(bonus.Data, []float64{0, 2}) {
		t.Fatalf("unexpected date data revive=%v bonus=%v", revive.Data, bonus.Data)
	}
	if revive.Stack != "stack1" {
		t.Fatalf("expected stack1, got %q", revive.Stack)
	}

	byLevel, _ := out.Panel(usecase.PanelLevelPlacement)
	if !reflect.DeepEqual(byLevel.Series.Labels, []string{"2", "10"}) {
		t.Fatalf("levels must sort numerically, got %v", byLevel.Series.Labels)
	}

	ratio, _ := out.Panel(usecase.PanelPlacementRatio)
	if ratio.Title != "Rewarded Amount Ratio" {
		t.Fatalf("unexpected title %q", ratio.Title)
	}
	if !reflect.DeepEqual(ratio.Series.Labels, []string{"revive", "bonus"}) ||
		!reflect.DeepEqual(ratio.Series.Datasets[0].Data, []float64{8, 2}) {
		t.Fatalf("unexpected ratio %+v", ratio.Series)
	}
}

func TestRewardedAds_NoData(t *testing.T) {
	uc := usecase.NewRewardedAdsUseCase(&fakeReader{}, fixedClock())

	out, err := uc.Execute(context.Background(), usecase.DashboardInput{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Message != "No rewarded ads data for selected filters." {
		t.Fatalf("unexpected message %q", out.Message)
	}
}

func TestRewardedAds_SelectionWithoutLister(t *testing.T) {
	reader := &fakeReader{}
	uc := usecase.NewRewardedAdsUseCase(reader, fixedClock())

	_, err := uc.Execute(context.Background(), usecase.DashboardInput{
		Filters: map[string][]string{"version": {"1.2.0", " 1.3.0"}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p := reader.paramsFor("/api/rewarded-ads/amount-by-date-placement"); p["gameVersion"] != "1.2.0,1.3.0" {
		t.Fatalf("unexpected gameVersion %v", p["gameVersion"])
	}
}

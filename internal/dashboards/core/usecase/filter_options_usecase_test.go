package usecase_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"game-analytics-service/internal/dashboards/core/domain"
	"game-analytics-service/internal/dashboards/core/usecase"
	"game-analytics-service/internal/datasource"
	"game-analytics-service/internal/pipeline"
)

func TestFilterOptions_Execute(t *testing.T) {
	var gotKeys pipeline.OptionKeys
	reader := &fakeReader{
		FetchOptionsFn: func(ctx context.Context, paths []string, params datasource.Params, keys pipeline.OptionKeys) []pipeline.Option {
			if paths[0] == "/api/gameplay/countries" {
				gotKeys = keys
				return []pipeline.Option{{Value: "US", Label: "US"}}
			}
			return []pipeline.Option{}
		},
	}
	cache := &fakeCache{}
	uc := usecase.NewFilterOptionsUseCase(reader, cache)

	set, err := uc.Execute(context.Background(), domain.Gameplay, usecase.Session{GameID: "g7"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var fields []string
	for _, l := range set.Lists {
		fields = append(fields, l.Field)
	}
	if !reflect.DeepEqual(fields, []string{"country", "platform", "version"}) {
		t.Fatalf("unexpected fields %v", fields)
	}
	if got := pipeline.OptionValues(set.Options("country")); !reflect.DeepEqual(got, []string{"US"}) {
		t.Fatalf("unexpected countries %v", got)
	}
	if set.Options("platform") == nil || len(set.Options("platform")) != 0 {
		t.Fatalf("failed lists must be empty, not nil")
	}
	if !reflect.DeepEqual(gotKeys.Value, []string{"country", "countryCode", "name", "value"}) {
		t.Fatalf("unexpected candidate keys %v", gotKeys.Value)
	}
	if p := reader.paramsFor("/api/gameplay/countries"); p["gameIds"] != "g7" {
		t.Fatalf("expected gameIds forwarded, got %v", p)
	}

	// ------------------------------------------------------------
	// second call: country comes from the cache, empty lists are retried
	// ------------------------------------------------------------
	if _, err := uc.Execute(context.Background(), domain.Gameplay, usecase.Session{GameID: "g7"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cache.adds != 1 {
		t.Fatalf("expected one cached list, got %d", cache.adds)
	}
	if n := reader.callCount(); n != 5 {
		t.Fatalf("expected 5 backend lookups, got %d", n)
	}
}

func TestFilterOptions_UnknownDashboard(t *testing.T) {
	uc := usecase.NewFilterOptionsUseCase(&fakeReader{}, nil)

	if _, err := uc.Execute(context.Background(), "sales", usecase.Session{}); !errors.Is(err, usecase.ErrUnknownDashboard) {
		t.Fatalf("expected ErrUnknownDashboard, got %v", err)
	}
	if opts := uc.ListOptions(context.Background(), domain.Resources, "nope", usecase.Session{}); len(opts) != 0 {
		t.Fatalf("unknown field must give no options, got %v", opts)
	}
}

func TestFilterFields(t *testing.T) {
	got := usecase.FilterFields(domain.Resources)
	want := []string{"country", "platform", "version", "placement", "subPlacement", "itemName"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected fields %v", got)
	}
}

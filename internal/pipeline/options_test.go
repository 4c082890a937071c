package pipeline_test

import (
	"reflect"
	"testing"

	"game-analytics-service/internal/pipeline"
)

var gameKeys = pipeline.OptionKeys{
	Value: []string{"id", "gameId", "code", "key", "value", "name"},
	Label: []string{"name", "gameName", "title", "displayName"},
}

// ------------------------------------------------------------
// DUPLICATES: ONE ENTRY PER VALUE, FIRST SEEN WINS
// ------------------------------------------------------------
func TestNormalizeOptions_Dedupe(t *testing.T) {
	payload := pipeline.MustParse(`[
		{"id": 1, "name": "First"},
		{"id": "1", "name": "Again"},
		" 2 ",
		2,
		{"gameId": "3"}
	]`)

	got := pipeline.NormalizeOptions(payload, gameKeys)
	want := []pipeline.Option{
		{Value: "1", Label: "First"},
		{Value: "2", Label: "2"},
		{Value: "3", Label: "3"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
}

// ------------------------------------------------------------
// ELEMENTS WITHOUT AN IDENTIFIER ARE DROPPED
// ------------------------------------------------------------
func TestNormalizeOptions_DropsMissingValue(t *testing.T) {
	payload := pipeline.MustParse(`[{"id": null, "name": ""}, {"title": "label only"}, "", null, [1]]`)

	got := pipeline.NormalizeOptions(payload, pipeline.OptionKeys{Value: []string{"id"}, Label: []string{"title"}})
	if len(got) != 0 {
		t.Fatalf("expected no options, got %+v", got)
	}
}

func TestNormalizeOptions_CandidateOrder(t *testing.T) {
	payload := pipeline.MustParse(`[{"id": "  ", "gameId": "g-7", "gameName": "Seven"}]`)

	got := pipeline.NormalizeOptions(payload, gameKeys)
	if len(got) != 1 || got[0].Value != "g-7" || got[0].Label != "Seven" {
		t.Fatalf("unexpected options %+v", got)
	}
}

// ------------------------------------------------------------
// KEYED OBJECT
// ------------------------------------------------------------
func TestNormalizeOptions_Mapping(t *testing.T) {
	payload := pipeline.MustParse(`{"US": "United States", "FR": null, "DE": 3}`)

	got := pipeline.NormalizeOptions(payload, pipeline.DefaultOptionKeys)
	want := []pipeline.Option{
		{Value: "US", Label: "United States"},
		{Value: "FR", Label: "FR"},
		{Value: "DE", Label: "3"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
	if vals := pipeline.OptionValues(got); !reflect.DeepEqual(vals, []string{"US", "FR", "DE"}) {
		t.Fatalf("unexpected values %v", vals)
	}
}

func TestNormalizeOptions_Scalar(t *testing.T) {
	got := pipeline.NormalizeOptions(pipeline.String("US"), pipeline.DefaultOptionKeys)
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty options, got %+v", got)
	}
}

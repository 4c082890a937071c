package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"

	"game-analytics-service/internal/pipeline"
)

func writePayload(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "payload.json")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write payload: %v", err)
	}
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return strings.TrimSpace(out.String()), err
}

func TestParseMetric(t *testing.T) {
	tests := []struct {
		raw      string
		wantKeys []string
		wantErr  bool
	}{
		{"Start=totalUserStartCount, userStartCount", []string{"totalUserStartCount", "userStartCount"}, false},
		{"revenue", []string{"revenue"}, false},
		{"=x", nil, true},
		{"Start=", nil, true},
	}
	for _, tt := range tests {
		m, err := parseMetric(tt.raw, pipeline.Sum)
		if tt.wantErr {
			if err == nil {
				t.Fatalf("%q: expected error", tt.raw)
			}
			continue
		}
		if err != nil {
			t.Fatalf("%q: unexpected error: %v", tt.raw, err)
		}
		if strings.Join(m.MetricKeys, ",") != strings.Join(tt.wantKeys, ",") {
			t.Fatalf("%q: unexpected keys %v", tt.raw, m.MetricKeys)
		}
	}
}

func TestRowsCmd_KeyedObject(t *testing.T) {
	path := writePayload(t, `{"1":{"count":2},"2":5}`)

	out, err := run(t, "rows", path, "--key-field", "level")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := `[{"level":"1","count":2},{"level":"2","value":5}]`
	if out != want {
		t.Fatalf("unexpected rows\n got %s\nwant %s", out, want)
	}
}

func TestOptionsCmd(t *testing.T) {
	path := writePayload(t, `[{"code":"TR","title":"Turkey"},{"code":"TR"},"US"]`)

	out, err := run(t, "options", path, "--value-keys", "code", "--label-keys", "title")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := `[{"value":"TR","label":"Turkey"},{"value":"US","label":"US"}]`
	if out != want {
		t.Fatalf("unexpected options\n got %s\nwant %s", out, want)
	}
}

func TestAggregateCmd(t *testing.T) {
	path := writePayload(t, `[{"level":"10","users":3},{"level":"2","users":1},{"level":"2","users":"4"}]`)

	out, err := run(t, "aggregate", path, "--category", "level", "--metric", "Users=users")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, `"labels":["2","10"]`) || !strings.Contains(out, `"data":[5,3]`) {
		t.Fatalf("unexpected series %s", out)
	}
}

func TestAggregateCmd_NoData(t *testing.T) {
	path := writePayload(t, `[]`)

	out, err := run(t, "aggregate", path, "--category", "date", "--metric", "n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "null" {
		t.Fatalf("expected null, got %s", out)
	}
}

func TestAggregateCmd_RequiresCategory(t *testing.T) {
	path := writePayload(t, `[]`)

	if _, err := run(t, "aggregate", path, "--metric", "n"); err == nil {
		t.Fatalf("expected an error without --category")
	}
}

func TestRenderCmd(t *testing.T) {
	path := writePayload(t, `[{"date":"2026-03-01","products":{"gems":2,"coins":1}},{"date":"2026-03-02","products":{"gems":4}}]`)
	out := filepath.Join(t.TempDir(), "chart.svg")

	if _, err := run(t, "render", path, "--category", "date", "--nested", "products", "--lexical", "--stacked", "-o", out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	raw, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if !strings.Contains(string(raw), "<svg") {
		t.Fatalf("expected an svg document")
	}
}

func TestRenderCmd_Errors(t *testing.T) {
	path := writePayload(t, `[{"date":"2026-03-01","n":1}]`)
	dir := t.TempDir()

	if _, err := run(t, "render", path, "--category", "date", "--metric", "n", "-o", filepath.Join(dir, "chart.gif")); err == nil {
		t.Fatalf("expected an error for an unsupported extension")
	}
	if _, err := run(t, "render", path, "--category", "date", "--metric", "n", "--kind", "radar", "-o", filepath.Join(dir, "chart.svg")); err == nil {
		t.Fatalf("expected an error for an unknown kind")
	}
}

func TestExportCmd(t *testing.T) {
	path := writePayload(t, `[{"level":1,"source":10,"sink":4},{"level":2,"source":7,"sink":9}]`)
	out := filepath.Join(t.TempDir(), "resources.xlsx")

	_, err := run(t, "export", path, "--category", "level",
		"--metric", "Source=source", "--metric", "Sink=sink", "--title", "Source / Sink", "-o", out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	f, err := excelize.OpenFile(out)
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer f.Close()
	if v, _ := f.GetCellValue("chart", "C3"); v != "9" {
		t.Fatalf("unexpected sink value %q", v)
	}
}

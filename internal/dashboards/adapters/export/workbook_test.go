package export

import (
	"bytes"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"

	"game-analytics-service/internal/dashboards/core/domain"
	"game-analytics-service/internal/pipeline"
)

func TestDashboard_WritesSheets(t *testing.T) {
	d := &domain.Dashboard{
		Name: "iap",
		From: "2026-03-01",
		To:   "2026-03-02",
		Panels: []domain.Panel{
			{
				ID:      "purchases",
				Title:   "Purchases by product",
				Kind:    domain.PanelBar,
				Stacked: true,
				Series: &pipeline.Series{
					Labels: []string{"2026-03-01", "2026-03-02"},
					Datasets: []pipeline.Dataset{
						{Label: "gems", Data: []float64{2, 3}},
						{Label: "coins", Data: []float64{0, 1}},
					},
				},
			},
			{ID: "placement_ratio", Title: "Placement Ratio", Kind: domain.PanelDoughnut},
		},
	}

	var buf bytes.Buffer
	if err := Dashboard(&buf, d); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if strings.Join(sheets, ",") != "Summary,purchases" {
		t.Fatalf("unexpected sheets %v", sheets)
	}

	if v, _ := f.GetCellValue("Summary", "B1"); v != "iap" {
		t.Fatalf("unexpected dashboard name %q", v)
	}
	if v, _ := f.GetCellValue("Summary", "D8"); v != "no data" {
		t.Fatalf("empty panel should be listed without a sheet, got %q", v)
	}

	if v, _ := f.GetCellValue("purchases", "B1"); v != "gems" {
		t.Fatalf("unexpected header %q", v)
	}
	if v, _ := f.GetCellValue("purchases", "A3"); v != "2026-03-02" {
		t.Fatalf("unexpected category %q", v)
	}
	if v, _ := f.GetCellValue("purchases", "C3"); v != "1" {
		t.Fatalf("unexpected value %q", v)
	}
}

func TestSheetName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"by_date", "by_date"},
		{"a/b:c*d?", "a_b_c_d_"},
		{"  ", "Panel"},
		{strings.Repeat("x", 40), strings.Repeat("x", 31)},
	}
	for _, tt := range tests {
		if got := sheetName(tt.in); got != tt.want {
			t.Fatalf("sheetName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestUniqueSheetName(t *testing.T) {
	used := map[string]struct{}{"summary": {}}
	if got := uniqueSheetName("Summary", used); got != "Summary (2)" {
		t.Fatalf("unexpected name %q", got)
	}
	long := strings.Repeat("y", 31)
	first := uniqueSheetName(long, used)
	second := uniqueSheetName(long, used)
	if first != long || len(second) != 31 || !strings.HasSuffix(second, " (2)") {
		t.Fatalf("unexpected names %q %q", first, second)
	}
}

// Package export writes dashboards as XLSX workbooks, one sheet per panel.
package export

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"game-analytics-service/internal/dashboards/core/domain"
)

const (
	ContentType  = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	summarySheet = "Summary"
	maxSheetName = 31
)

// Dashboard writes d to w. Every non-empty panel gets a data sheet with a
// native chart next to the table.
func Dashboard(w io.Writer, d *domain.Dashboard) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return fmt.Errorf("rename summary sheet: %w", err)
	}
	rows := [][]any{
		{"Dashboard", d.Name},
		{"From", d.From},
		{"To", d.To},
		{"Message", d.Message},
		{},
		{"Panel", "Title", "Kind", "Sheet"},
	}

	used := map[string]struct{}{strings.ToLower(summarySheet): {}}
	for _, p := range d.Panels {
		if p.Empty() {
			rows = append(rows, []any{p.ID, p.Title, string(p.Kind), "no data"})
			continue
		}
		sheet := uniqueSheetName(p.ID, used)
		if err := writePanel(f, sheet, p); err != nil {
			return fmt.Errorf("panel %s: %w", p.ID, err)
		}
		rows = append(rows, []any{p.ID, p.Title, string(p.Kind), sheet})
	}

	for i, r := range rows {
		if len(r) == 0 {
			continue
		}
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow(summarySheet, cell, &r); err != nil {
			return fmt.Errorf("write summary: %w", err)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func writePanel(f *excelize.File, sheet string, p domain.Panel) error {
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	header := []any{"Category"}
	for _, ds := range p.Series.Datasets {
		header = append(header, ds.Label)
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}
	for i, label := range p.Series.Labels {
		row := []any{label}
		for _, ds := range p.Series.Datasets {
			var v float64
			if i < len(ds.Data) {
				v = ds.Data[i]
			}
			row = append(row, v)
		}
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}

	last := len(p.Series.Labels) + 1
	ref := "'" + sheet + "'!"
	series := make([]excelize.ChartSeries, 0, len(p.Series.Datasets))
	for j := range p.Series.Datasets {
		col, _ := excelize.ColumnNumberToName(j + 2)
		series = append(series, excelize.ChartSeries{
			Name:       ref + "$" + col + "$1",
			Categories: ref + "$A$2:$A$" + strconv.Itoa(last),
			Values:     ref + "$" + col + "$2:$" + col + "$" + strconv.Itoa(last),
		})
	}
	anchor, _ := excelize.CoordinatesToCellName(len(p.Series.Datasets)+3, 2)
	return f.AddChart(sheet, anchor, &excelize.Chart{
		Type:   chartType(p),
		Series: series,
		Title:  []excelize.RichTextRun{{Text: p.Title}},
	})
}

func chartType(p domain.Panel) excelize.ChartType {
	switch {
	case p.Kind == domain.PanelDoughnut:
		return excelize.Doughnut
	case p.Stacked:
		return excelize.ColStacked
	case p.Kind == domain.PanelBar:
		return excelize.Col
	default:
		return excelize.Line
	}
}

// sheetName makes name a valid worksheet name: no []:*?/\' and at most 31
// characters.
func sheetName(name string) string {
	name = strings.Map(func(r rune) rune {
		switch r {
		case '[', ']', ':', '*', '?', '/', '\\', '\'':
			return '_'
		}
		return r
	}, strings.TrimSpace(name))
	if r := []rune(name); len(r) > maxSheetName {
		name = string(r[:maxSheetName])
	}
	if name == "" {
		name = "Panel"
	}
	return name
}

func uniqueSheetName(name string, used map[string]struct{}) string {
	base := sheetName(name)
	candidate := base
	for n := 2; ; n++ {
		if _, taken := used[strings.ToLower(candidate)]; !taken {
			break
		}
		suffix := " (" + strconv.Itoa(n) + ")"
		r := []rune(base)
		if len(r)+len(suffix) > maxSheetName {
			r = r[:maxSheetName-len(suffix)]
		}
		candidate = string(r) + suffix
	}
	used[strings.ToLower(candidate)] = struct{}{}
	return candidate
}

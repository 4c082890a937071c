// Package render draws dashboard panels as SVG or PNG images.
package render

import (
	"errors"
	"fmt"
	"io"
	"strings"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"game-analytics-service/internal/dashboards/core/domain"
	"game-analytics-service/internal/pipeline"
)

type Format string

const (
	SVG Format = "svg"
	PNG Format = "png"
)

var (
	ErrEmptyPanel        = errors.New("panel has nothing to draw")
	ErrUnsupportedFormat = errors.New("unsupported image format")
)

const (
	width   = 1024
	height  = 512
	pieSize = 512
)

func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case SVG, PNG:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
	}
}

func (f Format) ContentType() string {
	if f == PNG {
		return "image/png"
	}
	return "image/svg+xml"
}

func (f Format) provider() chart.RendererProvider {
	if f == PNG {
		return chart.PNG
	}
	return chart.SVG
}

// Panel renders p to w.
func Panel(w io.Writer, p domain.Panel, f Format) error {
	if f != SVG && f != PNG {
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
	if p.Empty() || !hasPositive(p.Series) {
		return ErrEmptyPanel
	}

	var err error
	switch {
	case p.Kind == domain.PanelDoughnut:
		err = pie(p).Render(f.provider(), w)
	case p.Stacked:
		err = stacked(p).Render(f.provider(), w)
	default:
		err = lines(p).Render(f.provider(), w)
	}
	if err != nil {
		return fmt.Errorf("render %s: %w", p.ID, err)
	}
	return nil
}

func hasPositive(s *pipeline.Series) bool {
	for _, d := range s.Datasets {
		for _, v := range d.Data {
			if v > 0 {
				return true
			}
		}
	}
	return false
}

func color(hex, fallbackName string) drawing.Color {
	if hex == "" {
		hex = pipeline.SeriesColor(fallbackName)
	}
	return drawing.ColorFromHex(strings.TrimPrefix(hex, "#"))
}

func pie(p domain.Panel) chart.PieChart {
	ds := p.Series.Datasets[0]
	values := make([]chart.Value, 0, len(p.Series.Labels))
	for i, label := range p.Series.Labels {
		if i >= len(ds.Data) || ds.Data[i] <= 0 {
			continue
		}
		var hex string
		if i < len(ds.Colors) {
			hex = ds.Colors[i]
		}
		c := color(hex, label)
		values = append(values, chart.Value{
			Label: label,
			Value: ds.Data[i],
			Style: chart.Style{FillColor: c, StrokeColor: c},
		})
	}
	return chart.PieChart{
		Title:  p.Title,
		Width:  pieSize,
		Height: pieSize,
		Values: values,
	}
}

func stacked(p domain.Panel) chart.StackedBarChart {
	bars := make([]chart.StackedBar, len(p.Series.Labels))
	for i, label := range p.Series.Labels {
		bar := chart.StackedBar{Name: label}
		for _, d := range p.Series.Datasets {
			if i >= len(d.Data) || d.Data[i] <= 0 {
				continue
			}
			c := color(d.Color, d.Label)
			bar.Values = append(bar.Values, chart.Value{
				Label: d.Label,
				Value: d.Data[i],
				Style: chart.Style{FillColor: c, StrokeColor: c},
			})
		}
		bars[i] = bar
	}
	return chart.StackedBarChart{
		Title:  p.Title,
		Width:  width,
		Height: height,
		Bars:   bars,
	}
}

// lines plots every dataset against the category index, labelled with the
// category names.
func lines(p domain.Panel) *chart.Chart {
	n := len(p.Series.Labels)
	xs := make([]float64, n)
	ticks := make([]chart.Tick, n)
	for i, label := range p.Series.Labels {
		xs[i] = float64(i)
		ticks[i] = chart.Tick{Value: float64(i), Label: label}
	}

	series := make([]chart.Series, 0, len(p.Series.Datasets))
	for _, d := range p.Series.Datasets {
		ys := make([]float64, n)
		copy(ys, d.Data)
		c := color(d.Color, d.Label)
		series = append(series, chart.ContinuousSeries{
			Name:    d.Label,
			XValues: xs,
			YValues: ys,
			Style: chart.Style{
				StrokeColor: c,
				StrokeWidth: 2,
				DotColor:    c,
				DotWidth:    3,
			},
		})
	}

	maxY := p.MaxY
	if maxY <= 0 {
		maxY = pipeline.SuggestedMaxY(p.Series, false)
	}
	ch := &chart.Chart{
		Title:  p.Title,
		Width:  width,
		Height: height,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16},
		},
		XAxis: chart.XAxis{
			Range: &chart.ContinuousRange{Min: 0, Max: float64(max(n-1, 1))},
			Ticks: ticks,
		},
		YAxis: chart.YAxis{
			Range: &chart.ContinuousRange{Min: 0, Max: maxY},
		},
		Series: series,
	}
	ch.Elements = []chart.Renderable{chart.Legend(ch)}
	return ch
}

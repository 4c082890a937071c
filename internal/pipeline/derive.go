package pipeline

import (
	"math"
	"slices"
)

// RelativeColor is the color of datasets appended by AppendRelativeToBaseline.
const RelativeColor = "#f59e0b"

// RatioOf divides num by den index by index. A non-positive denominator
// yields 0. Missing entries count as 0.
func RatioOf(label string, num, den Dataset) Dataset {
	n := max(len(num.Data), len(den.Data))
	data := make([]float64, n)
	for i := range n {
		var a, b float64
		if i < len(num.Data) {
			a = num.Data[i]
		}
		if i < len(den.Data) {
			b = den.Data[i]
		}
		if b > 0 {
			data[i] = Round2(a / b)
		}
	}
	return Dataset{Label: label, Data: data}
}

type RatioSpec struct {
	CategoryKeys    []string
	NumeratorKeys   []string
	DenominatorKeys []string
	Label           string
	Color           string
	Compare         Comparator
}

// Ratio groups rows by category and divides the unrounded numerator and
// denominator sums. It returns nil when no row yields a category.
func Ratio(rows []Row, spec RatioSpec) *Series {
	if len(spec.CategoryKeys) == 0 || len(spec.NumeratorKeys) == 0 || len(spec.DenominatorKeys) == 0 {
		return nil
	}
	buckets := collect(rows, AggregateSpec{
		CategoryKeys: spec.CategoryKeys,
		Metrics: []MetricDefinition{
			{Key: "numerator", MetricKeys: spec.NumeratorKeys},
			{Key: "denominator", MetricKeys: spec.DenominatorKeys},
		},
		Compare: spec.Compare,
	})
	if len(buckets) == 0 {
		return nil
	}

	labels := make([]string, len(buckets))
	data := make([]float64, len(buckets))
	for i, b := range buckets {
		labels[i] = b.category
		if den := b.sums["denominator"]; den > 0 {
			data[i] = Round2(b.sums["numerator"] / den)
		}
	}
	return &Series{
		Labels:   labels,
		Datasets: []Dataset{{Label: spec.Label, Data: data, Color: spec.Color}},
	}
}

type share struct {
	name  string
	total float64
}

func proportionSeries(label string, shares []share) *Series {
	shares = slices.DeleteFunc(shares, func(s share) bool { return s.total <= 0 })
	if len(shares) == 0 {
		return nil
	}
	slices.SortStableFunc(shares, func(a, b share) int {
		switch {
		case a.total > b.total:
			return -1
		case a.total < b.total:
			return 1
		default:
			return 0
		}
	})

	s := &Series{Labels: make([]string, len(shares))}
	ds := Dataset{Label: label, Data: make([]float64, len(shares)), Colors: make([]string, len(shares))}
	for i, sh := range shares {
		s.Labels[i] = sh.name
		ds.Data[i] = Round2(sh.total)
		ds.Colors[i] = SeriesColor(sh.name)
	}
	s.Datasets = []Dataset{ds}
	return s
}

// ShareOfTotal turns each dataset into its grand total. Datasets totalling
// zero or less are dropped and the rest sorted descending. It returns nil
// when nothing survives.
func ShareOfTotal(s *Series, label string) *Series {
	if s == nil {
		return nil
	}
	shares := make([]share, 0, len(s.Datasets))
	for _, d := range s.Datasets {
		var total float64
		for _, v := range d.Data {
			total += nonNegative(v)
		}
		shares = append(shares, share{name: d.Label, total: total})
	}
	return proportionSeries(label, shares)
}

// Proportions sums valueKeys per labelKeys over rows, keeping positive
// totals sorted descending.
func Proportions(rows []Row, labelKeys, valueKeys []string, label string) *Series {
	index := map[string]int{}
	var shares []share
	for _, row := range rows {
		name := row.Text(labelKeys...)
		if name == "" {
			continue
		}
		i, ok := index[name]
		if !ok {
			i = len(shares)
			index[name] = i
			shares = append(shares, share{name: name})
		}
		shares[i].total += nonNegative(PickMetric(row, valueKeys))
	}
	return proportionSeries(label, shares)
}

// AppendRelativeToBaseline appends a dataset expressing the baseline dataset
// as a percentage of its first positive value. When the baseline is missing,
// empty or never positive, s itself is returned.
func AppendRelativeToBaseline(s *Series, baseline, label string) *Series {
	ds, ok := s.Dataset(baseline)
	if !ok || len(ds.Data) == 0 {
		return s
	}
	idx := slices.IndexFunc(ds.Data, func(v float64) bool { return v > 0 })
	if idx < 0 {
		return s
	}
	base := ds.Data[idx]

	data := make([]float64, len(ds.Data))
	for i, v := range ds.Data {
		data[i] = Round2(v / base * 100)
	}
	return &Series{
		Labels:   slices.Clone(s.Labels),
		Datasets: append(slices.Clone(s.Datasets), Dataset{Label: label, Data: data, Color: RelativeColor}),
	}
}

// SuggestedMaxY leaves 15% headroom above the tallest bar or stack, with a
// floor of 10 for empty charts.
func SuggestedMaxY(s *Series, stacked bool) float64 {
	var top float64
	if s != nil {
		if stacked {
			for i := range s.Labels {
				var total float64
				for _, d := range s.Datasets {
					if i < len(d.Data) {
						total += nonNegative(d.Data[i])
					}
				}
				top = max(top, total)
			}
		} else {
			for _, d := range s.Datasets {
				for _, v := range d.Data {
					top = max(top, nonNegative(v))
				}
			}
		}
	}
	if top == 0 {
		return 10
	}
	return math.Ceil(top * 1.15)
}

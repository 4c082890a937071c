package pipeline

import (
	"errors"
	"slices"
)

var ErrInvalidSpec = errors.New("pipeline: invalid aggregate spec")

// Reducer folds the per-row picks of one category.
type Reducer uint8

const (
	Sum Reducer = iota
	Average
)

// MetricDefinition describes one fixed dataset of an aggregation.
type MetricDefinition struct {
	Key        string
	Label      string
	MetricKeys []string
	Color      string
	// ToPercent scales values in (0,1] by 100, treating them as fractions.
	ToPercent bool
	Reduce    Reducer
}

// Breakdown discovers series from the rows themselves: either a nested
// mapping of series name to value, or a long-format row naming its series.
type Breakdown struct {
	NestedKeys []string
	SeriesKeys []string
	ValueKeys  []string
}

type AggregateSpec struct {
	CategoryKeys []string
	Metrics      []MetricDefinition
	Breakdown    *Breakdown
	// Compare orders categories; nil means NumericAware.
	Compare Comparator
	// Stack is copied onto every dataset when set.
	Stack string
}

func (s AggregateSpec) validate() error {
	if len(s.CategoryKeys) == 0 {
		return ErrInvalidSpec
	}
	if len(s.Metrics) == 0 && s.Breakdown == nil {
		return ErrInvalidSpec
	}
	for _, m := range s.Metrics {
		if m.Key == "" || len(m.MetricKeys) == 0 {
			return ErrInvalidSpec
		}
	}
	if b := s.Breakdown; b != nil && len(b.NestedKeys) == 0 && len(b.SeriesKeys) == 0 {
		return ErrInvalidSpec
	}
	return nil
}

// Series is chart-ready data: category labels and aligned datasets.
type Series struct {
	Labels   []string  `json:"labels"`
	Datasets []Dataset `json:"datasets"`
}

type Dataset struct {
	Label string    `json:"label"`
	Data  []float64 `json:"data"`
	Color string    `json:"color,omitempty"`
	// Colors holds one color per point for proportion charts.
	Colors []string `json:"colors,omitempty"`
	Stack  string   `json:"stack,omitempty"`
}

// Dataset returns the dataset labelled label.
func (s *Series) Dataset(label string) (Dataset, bool) {
	if s == nil {
		return Dataset{}, false
	}
	for _, d := range s.Datasets {
		if d.Label == label {
			return d, true
		}
	}
	return Dataset{}, false
}

type bucket struct {
	category string
	sums     map[string]float64
	counts   map[string]int
	sub      map[string]float64
	subOrder []string
}

func newBucket(category string) *bucket {
	return &bucket{
		category: category,
		sums:     map[string]float64{},
		counts:   map[string]int{},
		sub:      map[string]float64{},
	}
}

func (b *bucket) addSub(name string, v float64) {
	if _, ok := b.sub[name]; !ok {
		b.subOrder = append(b.subOrder, name)
	}
	b.sub[name] += nonNegative(v)
}

func (b *bucket) value(m MetricDefinition) float64 {
	if m.Reduce == Average {
		n := b.counts[m.Key]
		if n == 0 {
			return 0
		}
		return b.sums[m.Key] / float64(n)
	}
	return b.sums[m.Key]
}

// collect groups rows into buckets sorted by category.
func collect(rows []Row, spec AggregateSpec) []*bucket {
	index := map[string]*bucket{}
	var buckets []*bucket

	for _, row := range rows {
		category := row.Text(spec.CategoryKeys...)
		if category == "" {
			continue
		}
		picks := make([]float64, len(spec.Metrics))
		for i, m := range spec.Metrics {
			picks[i] = PickMetric(row, m.MetricKeys)
		}
		// a row carrying only negative averages never opens a category
		if spec.Breakdown == nil && onlyNegativeAverages(spec.Metrics, picks) {
			continue
		}

		b, ok := index[category]
		if !ok {
			b = newBucket(category)
			index[category] = b
			buckets = append(buckets, b)
		}

		if spec.Breakdown != nil && collectBreakdown(b, row, spec.Breakdown) {
			continue
		}
		for i, m := range spec.Metrics {
			v := picks[i]
			if v < 0 {
				if m.Reduce == Average {
					continue
				}
				v = 0
			}
			b.sums[m.Key] += v
			b.counts[m.Key]++
		}
	}

	compare := spec.Compare
	if compare == nil {
		compare = NumericAware
	}
	slices.SortStableFunc(buckets, func(a, b *bucket) int {
		return compare(a.category, b.category)
	})
	return buckets
}

func onlyNegativeAverages(metrics []MetricDefinition, picks []float64) bool {
	if len(metrics) == 0 {
		return false
	}
	for i, m := range metrics {
		if m.Reduce != Average || picks[i] >= 0 {
			return false
		}
	}
	return true
}

// collectBreakdown reports whether the row was consumed as sub-series data.
func collectBreakdown(b *bucket, row Row, bd *Breakdown) bool {
	for _, key := range bd.NestedKeys {
		v, ok := row.Get(key)
		if !ok || v.Kind() != KindObject {
			continue
		}
		for _, m := range v.Object().Members() {
			f, _ := m.Value.Float()
			b.addSub(m.Key, f)
		}
		return true
	}
	if len(bd.SeriesKeys) == 0 {
		return false
	}
	name := row.Text(bd.SeriesKeys...)
	if name == "" {
		return false
	}
	v := PickMetric(row, bd.ValueKeys)
	if v < 0 {
		return true
	}
	b.addSub(name, v)
	return true
}

// Aggregate groups rows by category and builds one dataset per metric
// definition followed by one per discovered sub-series. It returns nil when
// no row yields a category.
func Aggregate(rows []Row, spec AggregateSpec) (*Series, error) {
	if err := spec.validate(); err != nil {
		return nil, err
	}
	buckets := collect(rows, spec)
	if len(buckets) == 0 {
		return nil, nil
	}

	s := &Series{Labels: make([]string, len(buckets))}
	for i, b := range buckets {
		s.Labels[i] = b.category
	}

	for _, m := range spec.Metrics {
		label := m.Label
		if label == "" {
			label = m.Key
		}
		data := make([]float64, len(buckets))
		for i, b := range buckets {
			v := b.value(m)
			if m.ToPercent && v > 0 && v <= 1 {
				v *= 100
			}
			data[i] = Round2(v)
		}
		s.Datasets = append(s.Datasets, Dataset{Label: label, Data: data, Color: m.Color, Stack: spec.Stack})
	}

	seen := map[string]struct{}{}
	var names []string
	for _, b := range buckets {
		for _, name := range b.subOrder {
			if _, ok := seen[name]; ok {
				continue
			}
			seen[name] = struct{}{}
			names = append(names, name)
		}
	}
	for _, name := range names {
		data := make([]float64, len(buckets))
		for i, b := range buckets {
			data[i] = Round2(b.sub[name])
		}
		s.Datasets = append(s.Datasets, Dataset{Label: name, Data: data, Color: SeriesColor(name), Stack: spec.Stack})
	}

	if s.Datasets == nil {
		s.Datasets = []Dataset{}
	}
	return s, nil
}

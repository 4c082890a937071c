package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"game-analytics-service/internal/pipeline"
)

// seriesFlags describe one aggregation on the command line.
type seriesFlags struct {
	keyField   string
	categories []string
	metrics    []string
	average    []string
	nested     []string
	seriesKeys []string
	valueKeys  []string
	lexical    bool
	stack      string
}

func (f *seriesFlags) bind(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVar(&f.keyField, "key-field", pipeline.DefaultKeyField, "Field that receives the key of a keyed-object payload")
	fs.StringSliceVar(&f.categories, "category", nil, "Category field candidates, in order")
	fs.StringArrayVar(&f.metrics, "metric", nil, "Summed metric as label=key1,key2 (repeatable)")
	fs.StringArrayVar(&f.average, "average", nil, "Averaged metric as label=key1,key2 (repeatable)")
	fs.StringSliceVar(&f.nested, "nested", nil, "Nested breakdown fields, e.g. products")
	fs.StringSliceVar(&f.seriesKeys, "series-keys", nil, "Long-format series name fields")
	fs.StringSliceVar(&f.valueKeys, "value-keys", nil, "Long-format value fields")
	fs.BoolVar(&f.lexical, "lexical", false, "Sort categories by collation instead of numeric-aware order")
	fs.StringVar(&f.stack, "stack", "", "Stack group for every dataset")
	_ = cmd.MarkFlagRequired("category")
}

func (f *seriesFlags) spec() (pipeline.AggregateSpec, error) {
	spec := pipeline.AggregateSpec{
		CategoryKeys: f.categories,
		Compare:      pipeline.NumericAware,
		Stack:        f.stack,
	}
	if f.lexical {
		spec.Compare = pipeline.Lexical
	}
	for _, raw := range f.metrics {
		m, err := parseMetric(raw, pipeline.Sum)
		if err != nil {
			return spec, err
		}
		spec.Metrics = append(spec.Metrics, m)
	}
	for _, raw := range f.average {
		m, err := parseMetric(raw, pipeline.Average)
		if err != nil {
			return spec, err
		}
		spec.Metrics = append(spec.Metrics, m)
	}
	if len(f.nested) > 0 || len(f.seriesKeys) > 0 {
		spec.Breakdown = &pipeline.Breakdown{
			NestedKeys: f.nested,
			SeriesKeys: f.seriesKeys,
			ValueKeys:  f.valueKeys,
		}
	}
	return spec, nil
}

func (f *seriesFlags) series(v pipeline.Value) (*pipeline.Series, error) {
	spec, err := f.spec()
	if err != nil {
		return nil, err
	}
	return pipeline.Aggregate(pipeline.NormalizeRows(v, f.keyField), spec)
}

// parseMetric reads label=key1,key2. A bare label is its own key.
func parseMetric(raw string, reduce pipeline.Reducer) (pipeline.MetricDefinition, error) {
	label, keys, found := strings.Cut(raw, "=")
	label = strings.TrimSpace(label)
	if label == "" {
		return pipeline.MetricDefinition{}, fmt.Errorf("invalid metric %q: empty label", raw)
	}
	candidates := []string{label}
	if found {
		candidates = pipeline.NormalizeUnique(strings.Split(keys, ","))
		if len(candidates) == 0 {
			return pipeline.MetricDefinition{}, fmt.Errorf("invalid metric %q: no keys", raw)
		}
	}
	return pipeline.MetricDefinition{
		Key:        label,
		Label:      label,
		MetricKeys: candidates,
		Reduce:     reduce,
	}, nil
}

// readPayload decodes a file, or stdin for "-".
func readPayload(cmd *cobra.Command, path string) (pipeline.Value, error) {
	var r io.Reader = cmd.InOrStdin()
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return pipeline.Value{}, err
		}
		defer f.Close()
		r = f
	}
	v, err := pipeline.Decode(r)
	if err != nil {
		return pipeline.Value{}, fmt.Errorf("decode %s: %w", path, err)
	}
	return v, nil
}

func printJSON(cmd *cobra.Command, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	if pretty, _ := cmd.Flags().GetBool("pretty"); pretty {
		var buf bytes.Buffer
		if err := json.Indent(&buf, raw, "", "  "); err != nil {
			return err
		}
		raw = buf.Bytes()
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(raw))
	return err
}

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"game-analytics-service/internal/dashboards/adapters/export"
	"game-analytics-service/internal/dashboards/adapters/render"
	"game-analytics-service/internal/dashboards/core/domain"
	"game-analytics-service/internal/pipeline"
)

func newRowsCmd() *cobra.Command {
	var keyField string
	cmd := &cobra.Command{
		Use:   "rows <file>",
		Short: "Print the normalized rows of a payload",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := readPayload(cmd, args[0])
			if err != nil {
				return err
			}
			rows := lo.Map(pipeline.NormalizeRows(v, keyField), func(r pipeline.Row, _ int) pipeline.Value {
				return r.Value()
			})
			return printJSON(cmd, pipeline.Array(rows...))
		},
	}
	cmd.Flags().StringVar(&keyField, "key-field", pipeline.DefaultKeyField, "Field that receives the key of a keyed-object payload")
	return cmd
}

func newOptionsCmd() *cobra.Command {
	var valueKeys, labelKeys []string
	cmd := &cobra.Command{
		Use:   "options <file>",
		Short: "Print the filter options of a payload",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := readPayload(cmd, args[0])
			if err != nil {
				return err
			}
			keys := pipeline.DefaultOptionKeys
			if len(valueKeys) > 0 {
				keys.Value = valueKeys
			}
			if len(labelKeys) > 0 {
				keys.Label = labelKeys
			}
			return printJSON(cmd, pipeline.NormalizeOptions(v, keys))
		},
	}
	cmd.Flags().StringSliceVar(&valueKeys, "value-keys", nil, "Identifier field candidates (default value,id,key,code,name)")
	cmd.Flags().StringSliceVar(&labelKeys, "label-keys", nil, "Label field candidates (default label,name,title,displayName)")
	return cmd
}

func newAggregateCmd() *cobra.Command {
	var f seriesFlags
	cmd := &cobra.Command{
		Use:   "aggregate <file>",
		Short: "Print the chart series built from a payload",
		Example: `  dashctl aggregate start.json --category level --metric "Start=totalUserStartCount,userStartCount"
  dashctl aggregate compact.json --category date --nested products --lexical`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := readPayload(cmd, args[0])
			if err != nil {
				return err
			}
			s, err := f.series(v)
			if err != nil {
				return err
			}
			// null when no row has a category
			return printJSON(cmd, s)
		},
	}
	f.bind(cmd)
	return cmd
}

func newRenderCmd() *cobra.Command {
	var (
		f       seriesFlags
		out     string
		title   string
		kind    string
		stacked bool
	)
	cmd := &cobra.Command{
		Use:   "render <file>",
		Short: "Draw the chart of a payload as SVG or PNG",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := render.ParseFormat(strings.TrimPrefix(filepath.Ext(out), "."))
			if err != nil {
				return err
			}
			p, err := panelFromFile(cmd, args[0], &f, title, kind, stacked)
			if err != nil {
				return err
			}

			file, err := os.Create(out)
			if err != nil {
				return fmt.Errorf("failed to create output: %w", err)
			}
			defer file.Close()
			if err := render.Panel(file, p, format); err != nil {
				return err
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "wrote %s\n", out)
			return nil
		},
	}
	f.bind(cmd)
	cmd.Flags().StringVarP(&out, "out", "o", "chart.svg", "Output file; the extension picks svg or png")
	cmd.Flags().StringVar(&title, "title", "", "Chart title")
	cmd.Flags().StringVar(&kind, "kind", string(domain.PanelBar), "Chart kind: bar, line or doughnut")
	cmd.Flags().BoolVar(&stacked, "stacked", false, "Stack the datasets")
	return cmd
}

func newExportCmd() *cobra.Command {
	var (
		f     seriesFlags
		out   string
		title string
		kind  string
	)
	cmd := &cobra.Command{
		Use:   "export <file>",
		Short: "Write the series of a payload to an XLSX workbook",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := panelFromFile(cmd, args[0], &f, title, kind, f.stack != "")
			if err != nil {
				return err
			}

			file, err := os.Create(out)
			if err != nil {
				return fmt.Errorf("failed to create output: %w", err)
			}
			defer file.Close()

			name := strings.TrimSuffix(filepath.Base(args[0]), filepath.Ext(args[0]))
			d := &domain.Dashboard{Name: name, Panels: []domain.Panel{p}}
			if err := export.Dashboard(file, d); err != nil {
				return err
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "wrote %s\n", out)
			return nil
		},
	}
	f.bind(cmd)
	cmd.Flags().StringVarP(&out, "out", "o", "export.xlsx", "Output workbook")
	cmd.Flags().StringVar(&title, "title", "", "Sheet chart title")
	cmd.Flags().StringVar(&kind, "kind", string(domain.PanelBar), "Chart kind: bar, line or doughnut")
	return cmd
}

func panelFromFile(cmd *cobra.Command, path string, f *seriesFlags, title, kind string, stacked bool) (domain.Panel, error) {
	switch domain.PanelKind(kind) {
	case domain.PanelBar, domain.PanelLine, domain.PanelDoughnut:
	default:
		return domain.Panel{}, fmt.Errorf("invalid kind: %s (must be bar, line or doughnut)", kind)
	}

	v, err := readPayload(cmd, path)
	if err != nil {
		return domain.Panel{}, err
	}
	s, err := f.series(v)
	if err != nil {
		return domain.Panel{}, err
	}
	if s == nil {
		return domain.Panel{}, fmt.Errorf("%s: no chart data", path)
	}
	if title == "" {
		title = filepath.Base(path)
	}
	return domain.Panel{
		ID:      "chart",
		Title:   title,
		Kind:    domain.PanelKind(kind),
		Series:  s,
		MaxY:    pipeline.SuggestedMaxY(s, stacked),
		Stacked: stacked,
	}, nil
}

package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"game-analytics-service/internal/dashboards/core/domain"
	"game-analytics-service/internal/dashboards/core/ports"
	"game-analytics-service/internal/datasource"
	"game-analytics-service/internal/logging"
	"game-analytics-service/internal/metrics"
	"game-analytics-service/internal/pipeline"
)

var (
	ErrInvalidDateRange  = errors.New("invalid date range")
	ErrInvalidLevelRange = errors.New("invalid level range")
	ErrUnknownDashboard  = errors.New("unknown dashboard")
)

const (
	DateLayout       = "2006-01-02"
	defaultRangeDays = 7
)

// NoDataMessages is shown when every panel of a dashboard is empty.
var NoDataMessages = map[string]string{
	domain.InApp:       "No chart data for selected filters.",
	domain.RewardedAds: "No rewarded ads data for selected filters.",
	domain.Gameplay:    "No gameplay data for selected filters.",
	domain.Resources:   "No resource data for selected filters.",
}

// Session identifies the caller's selected game. A non-empty GameID is
// forwarded to the backend as gameIds.
type Session struct {
	GameID string
}

type DashboardInput struct {
	Session Session
	From    string // YYYY-MM-DD, empty means To minus 7 days
	To      string // YYYY-MM-DD, empty means today
	// MinLevel / MaxLevel nil means unbounded
	MinLevel *int
	MaxLevel *int
	// Filters maps a filter field (country, platform, ...) to its selection.
	Filters map[string][]string
}

// OptionLister resolves the option list of a filter field.
type OptionLister interface {
	ListOptions(ctx context.Context, dashboard, field string, s Session) []pipeline.Option
}

type Option func(*base)

// WithClock replaces time.Now for default date ranges.
func WithClock(now func() time.Time) Option {
	return func(b *base) { b.now = now }
}

// WithOptionLister lets multi-select filters collapse to "no filter" when
// every known option is selected.
func WithOptionLister(l OptionLister) Option {
	return func(b *base) { b.options = l }
}

type base struct {
	name    string
	reader  ports.AnalyticsReaderPort
	options OptionLister
	now     func() time.Time
}

func newBase(name string, reader ports.AnalyticsReaderPort, opts []Option) base {
	b := base{name: name, reader: reader, now: time.Now}
	for _, o := range opts {
		o(&b)
	}
	return b
}

// query is a validated DashboardInput.
type query struct {
	DashboardInput
	from string
	to   string
}

func (b *base) resolve(in DashboardInput) (query, error) {
	q := query{DashboardInput: in}

	to := strings.TrimSpace(in.To)
	if to == "" {
		to = b.now().Format(DateLayout)
	}
	toDate, err := time.Parse(DateLayout, to)
	if err != nil {
		return q, fmt.Errorf("%w: toDate %q", ErrInvalidDateRange, to)
	}

	from := strings.TrimSpace(in.From)
	if from == "" {
		from = toDate.AddDate(0, 0, -defaultRangeDays).Format(DateLayout)
	}
	fromDate, err := time.Parse(DateLayout, from)
	if err != nil {
		return q, fmt.Errorf("%w: fromDate %q", ErrInvalidDateRange, from)
	}
	if fromDate.After(toDate) {
		return q, fmt.Errorf("%w: fromDate %s is after toDate %s", ErrInvalidDateRange, from, to)
	}

	if (in.MinLevel != nil && *in.MinLevel < 0) || (in.MaxLevel != nil && *in.MaxLevel < 0) {
		return q, fmt.Errorf("%w: levels must not be negative", ErrInvalidLevelRange)
	}
	if in.MinLevel != nil && in.MaxLevel != nil && *in.MinLevel > *in.MaxLevel {
		return q, fmt.Errorf("%w: minLevel %d is above maxLevel %d", ErrInvalidLevelRange, *in.MinLevel, *in.MaxLevel)
	}

	q.from, q.to = from, to
	return q, nil
}

// params are the request fields every dashboard sends.
func (q query) params() datasource.Params {
	p := datasource.Params{
		"fromDate": q.from,
		"toDate":   q.to,
	}
	if id := strings.TrimSpace(q.Session.GameID); id != "" {
		p["gameIds"] = id
	}
	return p
}

func (q query) levels(p datasource.Params) {
	if q.MinLevel != nil {
		p["minLevel"] = *q.MinLevel
	}
	if q.MaxLevel != nil {
		p["maxLevel"] = *q.MaxLevel
	}
}

// single is the first non-blank value selected for field.
func (q query) single(field string) string {
	for _, v := range q.Filters[field] {
		if s := strings.TrimSpace(v); s != "" {
			return s
		}
	}
	return ""
}

// selection is the effective multi-select filter for field: unknown values
// dropped, and nil when nothing or everything is selected.
func (b *base) selection(ctx context.Context, q query, field string) []string {
	selected := pipeline.NormalizeUnique(q.Filters[field])
	if len(selected) == 0 {
		return nil
	}
	if b.options == nil {
		return selected
	}
	all := pipeline.OptionValues(b.options.ListOptions(ctx, b.name, field, q.Session))
	return pipeline.SelectedValues(selected, all)
}

// run validates the input, builds the panels and fills in the no-data
// message.
func (b *base) run(ctx context.Context, in DashboardInput, build func(ctx context.Context, q query) ([]domain.Panel, error)) (*domain.Dashboard, error) {
	q, err := b.resolve(in)
	if err != nil {
		return nil, err
	}

	panels, err := build(ctx, q)
	metrics.RecordDashboardBuild(b.name, err)
	if err != nil {
		logging.Ctx(ctx).Warn().Err(err).Str("dashboard", b.name).Msg("dashboard build failed")
		return nil, err
	}

	d := &domain.Dashboard{Name: b.name, From: q.from, To: q.to, Panels: panels}
	for _, p := range panels {
		if p.Empty() {
			metrics.RecordEmptyPanel(b.name, p.ID)
		}
	}
	if d.Empty() {
		d.Message = NoDataMessages[b.name]
	}
	logging.Ctx(ctx).Debug().
		Str("dashboard", b.name).
		Str("from", q.from).
		Str("to", q.to).
		Int("panels", len(panels)).
		Msg("dashboard built")
	return d, nil
}

type fetchFunc func(ctx context.Context) (pipeline.Value, error)

// fetchAll runs every fetch concurrently. The first error cancels the rest.
func fetchAll(ctx context.Context, fetches ...fetchFunc) ([]pipeline.Value, error) {
	out := make([]pipeline.Value, len(fetches))
	g, gctx := errgroup.WithContext(ctx)
	for i, f := range fetches {
		g.Go(func() error {
			v, err := f(gctx)
			if err != nil {
				return err
			}
			out[i] = v
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

func chartPanel(id, title string, kind domain.PanelKind, s *pipeline.Series, stacked bool) domain.Panel {
	return domain.Panel{
		ID:      id,
		Title:   title,
		Kind:    kind,
		Series:  s,
		MaxY:    pipeline.SuggestedMaxY(s, stacked),
		Stacked: stacked,
	}
}

func proportionPanel(id, title string, s *pipeline.Series) domain.Panel {
	return domain.Panel{ID: id, Title: title, Kind: domain.PanelDoughnut, Series: s}
}

// GetDashboardUseCase dispatches to the dashboard named in the request.
type GetDashboardUseCase struct {
	builders map[string]Builder
}

type Builder interface {
	Execute(ctx context.Context, in DashboardInput) (*domain.Dashboard, error)
}

func NewGetDashboardUseCase(builders map[string]Builder) *GetDashboardUseCase {
	return &GetDashboardUseCase{builders: builders}
}

func (uc *GetDashboardUseCase) Execute(ctx context.Context, name string, in DashboardInput) (*domain.Dashboard, error) {
	b, ok := uc.builders[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownDashboard, name)
	}
	return b.Execute(ctx, in)
}

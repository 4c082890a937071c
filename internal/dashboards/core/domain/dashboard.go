package domain

import "game-analytics-service/internal/pipeline"

const (
	InApp       = "iap"
	RewardedAds = "rewarded-ads"
	Gameplay    = "gameplay"
	Resources   = "resources"
)

// Names lists the dashboards in display order.
var Names = []string{InApp, RewardedAds, Gameplay, Resources}

type PanelKind string

const (
	PanelBar      PanelKind = "bar"
	PanelLine     PanelKind = "line"
	PanelDoughnut PanelKind = "doughnut"
)

type Panel struct {
	ID      string
	Title   string
	Kind    PanelKind
	Series  *pipeline.Series // nil when the filters matched nothing
	MaxY    float64
	Stacked bool
}

func (p Panel) Empty() bool {
	return p.Series == nil || len(p.Series.Labels) == 0
}

type Dashboard struct {
	Name    string
	From    string // YYYY-MM-DD
	To      string // YYYY-MM-DD
	Panels  []Panel
	Message string // set when every panel is empty
}

func (d *Dashboard) Panel(id string) (Panel, bool) {
	for _, p := range d.Panels {
		if p.ID == id {
			return p, true
		}
	}
	return Panel{}, false
}

func (d *Dashboard) Empty() bool {
	for _, p := range d.Panels {
		if !p.Empty() {
			return false
		}
	}
	return true
}

// FilterList is the option list of one filter field, e.g. "country".
type FilterList struct {
	Field   string
	Options []pipeline.Option
}

type FilterSet struct {
	Dashboard string
	Lists     []FilterList
}

func (s *FilterSet) Options(field string) []pipeline.Option {
	for _, l := range s.Lists {
		if l.Field == field {
			return l.Options
		}
	}
	return nil
}

package fiber

import (
	"game-analytics-service/internal/dashboards/core/domain"
	"game-analytics-service/internal/pipeline"
)

type PanelResponse struct {
	ID      string           `json:"id" example:"purchases"`
	Title   string           `json:"title" example:"Purchases by product"`
	Kind    string           `json:"kind" example:"bar"`
	Stacked bool             `json:"stacked"`
	MaxY    float64          `json:"maxY,omitempty" example:"115"`
	Data    *pipeline.Series `json:"data"` // null when the panel has no data
}

type DashboardResponse struct {
	Name    string          `json:"name" example:"iap"`
	From    string          `json:"fromDate" example:"2026-03-08"`
	To      string          `json:"toDate" example:"2026-03-15"`
	Message string          `json:"message,omitempty" example:"No chart data for selected filters."`
	Panels  []PanelResponse `json:"panels"`
}

type FilterListResponse struct {
	Field   string            `json:"field" example:"platform"`
	Options []pipeline.Option `json:"options"`
}

type FilterSetResponse struct {
	Dashboard string               `json:"dashboard" example:"gameplay"`
	Filters   []FilterListResponse `json:"filters"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"invalid_query"`
	Message string `json:"message,omitempty" example:"invalid date range"`
}

func toDashboardResponse(d *domain.Dashboard) DashboardResponse {
	resp := DashboardResponse{
		Name:    d.Name,
		From:    d.From,
		To:      d.To,
		Message: d.Message,
		Panels:  make([]PanelResponse, 0, len(d.Panels)),
	}
	for _, p := range d.Panels {
		pr := PanelResponse{
			ID:      p.ID,
			Title:   p.Title,
			Kind:    string(p.Kind),
			Stacked: p.Stacked,
			MaxY:    p.MaxY,
		}
		if !p.Empty() {
			pr.Data = p.Series
		}
		resp.Panels = append(resp.Panels, pr)
	}
	return resp
}

func toFilterSetResponse(s *domain.FilterSet) FilterSetResponse {
	resp := FilterSetResponse{
		Dashboard: s.Dashboard,
		Filters:   make([]FilterListResponse, 0, len(s.Lists)),
	}
	for _, l := range s.Lists {
		opts := l.Options
		if opts == nil {
			opts = []pipeline.Option{}
		}
		resp.Filters = append(resp.Filters, FilterListResponse{Field: l.Field, Options: opts})
	}
	return resp
}

package fiber

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"game-analytics-service/internal/dashboards/adapters/export"
	"game-analytics-service/internal/dashboards/adapters/render"
	"game-analytics-service/internal/dashboards/core/domain"
	"game-analytics-service/internal/dashboards/core/usecase"
	"game-analytics-service/internal/datasource"
	"game-analytics-service/internal/logging"
)

// GameIDHeader carries the caller's selected game.
const GameIDHeader = "X-Game-ID"

const unreachableMessage = "Cannot reach API. Make sure backend is running and proxy/base URL is configured."

// filterParams are the query parameters read as filter selections.
var filterParams = []string{"country", "platform", "version", "product", "placement", "subPlacement", "itemName"}

type GetDashboardUseCase interface {
	Execute(ctx context.Context, name string, in usecase.DashboardInput) (*domain.Dashboard, error)
}

type FilterOptionsUseCase interface {
	Execute(ctx context.Context, dashboard string, s usecase.Session) (*domain.FilterSet, error)
}

type DashboardHandler struct {
	dashboards GetDashboardUseCase
	filters    FilterOptionsUseCase
}

func NewDashboardHandler(dashboards GetDashboardUseCase, filters FilterOptionsUseCase) *DashboardHandler {
	return &DashboardHandler{dashboards: dashboards, filters: filters}
}

// Register mounts the dashboard routes on r.
func (h *DashboardHandler) Register(r fiber.Router) {
	r.Get("/dashboards/:name", h.GetDashboard)
	r.Get("/dashboards/:name/filters", h.GetFilters)
	r.Get("/dashboards/:name/export.xlsx", h.ExportDashboard)
	r.Get("/dashboards/:name/panels/:panel.:format", h.RenderPanel)
}

// GetDashboard godoc
// @Summary Build a dashboard
// @Description Fetches the dashboard reports from the analytics backend and returns chart-ready panels
// @Tags Dashboards
// @Produce json
// @Param name path string true "Dashboard: iap | rewarded-ads | gameplay | resources"
// @Param fromDate query string false "Start date (YYYY-MM-DD), defaults to toDate minus 7 days"
// @Param toDate query string false "End date (YYYY-MM-DD), defaults to today"
// @Param minLevel query int false "Lowest level"
// @Param maxLevel query int false "Highest level"
// @Param country query []string false "Country selection" collectionFormat(multi)
// @Param platform query []string false "Platform selection" collectionFormat(multi)
// @Param version query []string false "Game version selection" collectionFormat(multi)
// @Param product query []string false "Product selection" collectionFormat(multi)
// @Param placement query []string false "Placement selection" collectionFormat(multi)
// @Param subPlacement query []string false "Sub placement selection" collectionFormat(multi)
// @Param itemName query []string false "Item name selection" collectionFormat(multi)
// @Param X-Game-ID header string false "Selected game"
// @Success 200 {object} DashboardResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/dashboards/{name} [get]
func (h *DashboardHandler) GetDashboard(c *fiber.Ctx) error {
	d, err := h.load(c)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(toDashboardResponse(d))
}

// GetFilters godoc
// @Summary List filter options
// @Description Returns the option list of every filter of a dashboard. Lists the backend cannot serve are empty.
// @Tags Dashboards
// @Produce json
// @Param name path string true "Dashboard: iap | rewarded-ads | gameplay | resources"
// @Param X-Game-ID header string false "Selected game"
// @Success 200 {object} FilterSetResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/dashboards/{name}/filters [get]
func (h *DashboardHandler) GetFilters(c *fiber.Ctx) error {
	set, err := h.filters.Execute(c.UserContext(), c.Params("name"), session(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(toFilterSetResponse(set))
}

// RenderPanel godoc
// @Summary Render one panel
// @Description Draws a dashboard panel as SVG or PNG. Accepts the same query parameters as the dashboard.
// @Tags Dashboards
// @Produce image/svg+xml
// @Produce image/png
// @Param name path string true "Dashboard"
// @Param panel path string true "Panel id, e.g. purchases"
// @Param format path string true "svg | png"
// @Success 200 {file} binary
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /api/dashboards/{name}/panels/{panel}.{format} [get]
func (h *DashboardHandler) RenderPanel(c *fiber.Ctx) error {
	format, err := render.ParseFormat(c.Params("format"))
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_format",
			Message: err.Error(),
		})
	}

	d, err := h.load(c)
	if err != nil {
		return writeError(c, err)
	}
	panel, ok := d.Panel(c.Params("panel"))
	if !ok {
		return c.Status(http.StatusNotFound).JSON(ErrorResponse{
			Error:   "unknown_panel",
			Message: fmt.Sprintf("dashboard %s has no panel %q", d.Name, c.Params("panel")),
		})
	}

	var buf bytes.Buffer
	if err := render.Panel(&buf, panel, format); err != nil {
		if errors.Is(err, render.ErrEmptyPanel) {
			return c.Status(http.StatusNotFound).JSON(ErrorResponse{
				Error:   "no_data",
				Message: usecase.NoDataMessages[d.Name],
			})
		}
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, format.ContentType())
	return c.Status(http.StatusOK).Send(buf.Bytes())
}

// ExportDashboard godoc
// @Summary Export a dashboard
// @Description Writes every panel of a dashboard to an XLSX workbook. Accepts the same query parameters as the dashboard.
// @Tags Dashboards
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param name path string true "Dashboard"
// @Success 200 {file} binary
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /api/dashboards/{name}/export.xlsx [get]
func (h *DashboardHandler) ExportDashboard(c *fiber.Ctx) error {
	d, err := h.load(c)
	if err != nil {
		return writeError(c, err)
	}

	var buf bytes.Buffer
	if err := export.Dashboard(&buf, d); err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, export.ContentType)
	c.Attachment(fmt.Sprintf("%s_%s_%s.xlsx", d.Name, d.From, d.To))
	return c.Status(http.StatusOK).Send(buf.Bytes())
}

func (h *DashboardHandler) load(c *fiber.Ctx) (*domain.Dashboard, error) {
	in, err := dashboardInput(c)
	if err != nil {
		return nil, err
	}
	return h.dashboards.Execute(c.UserContext(), c.Params("name"), in)
}

func session(c *fiber.Ctx) usecase.Session {
	id := c.Get(GameIDHeader)
	if id == "" {
		id = c.Query("gameId")
	}
	return usecase.Session{GameID: strings.TrimSpace(id)}
}

func dashboardInput(c *fiber.Ctx) (usecase.DashboardInput, error) {
	in := usecase.DashboardInput{
		Session: session(c),
		From:    c.Query("fromDate"),
		To:      c.Query("toDate"),
		Filters: map[string][]string{},
	}

	var err error
	if in.MinLevel, err = levelParam(c, "minLevel"); err != nil {
		return in, err
	}
	if in.MaxLevel, err = levelParam(c, "maxLevel"); err != nil {
		return in, err
	}

	args := c.Context().QueryArgs()
	for _, name := range filterParams {
		for _, raw := range args.PeekMulti(name) {
			// both ?platform=ios&platform=web and ?platform=ios,web
			in.Filters[name] = append(in.Filters[name], strings.Split(string(raw), ",")...)
		}
	}
	return in, nil
}

func levelParam(c *fiber.Ctx, name string) (*int, error) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %s %q is not a number", usecase.ErrInvalidLevelRange, name, raw)
	}
	return &n, nil
}

func writeError(c *fiber.Ctx, err error) error {
	var se *datasource.StatusError
	switch {
	case errors.Is(err, usecase.ErrInvalidDateRange),
		errors.Is(err, usecase.ErrInvalidLevelRange):
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_query",
			Message: err.Error(),
		})
	case errors.Is(err, usecase.ErrUnknownDashboard):
		return c.Status(http.StatusNotFound).JSON(ErrorResponse{
			Error:   "unknown_dashboard",
			Message: err.Error(),
		})
	case errors.As(err, &se):
		return c.Status(http.StatusBadGateway).JSON(ErrorResponse{
			Error:   "upstream_error",
			Message: se.Error(),
		})
	case errors.Is(err, datasource.ErrUnavailable):
		return c.Status(http.StatusServiceUnavailable).JSON(ErrorResponse{
			Error:   "upstream_unavailable",
			Message: unreachableMessage,
		})
	default:
		logging.Ctx(c.UserContext()).Error().Err(err).Str("path", c.Path()).Msg("dashboard request failed")
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Error: "internal_server_error",
		})
	}
}

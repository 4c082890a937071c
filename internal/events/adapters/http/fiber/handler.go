package fiber

import (
	"context"
	"crypto/subtle"
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"game-analytics-service/internal/events/core/domain"
	"game-analytics-service/internal/events/core/usecase"
	"game-analytics-service/internal/logging"
	"game-analytics-service/internal/pipeline"
)

type StoreEventUseCase interface {
	Execute(ctx context.Context, in usecase.StoreEventInput) (usecase.StoreEventResult, error)
	BulkCreateEvents(ctx context.Context, in usecase.BulkCreateEventsInput) (usecase.BulkCreateEventsResult, error)
}

type EventHandler struct {
	storeUC StoreEventUseCase
}

func NewEventHandler(storeUC StoreEventUseCase) *EventHandler {
	return &EventHandler{storeUC: storeUC}
}

// Register mounts the log routes behind the API key check. An empty key
// disables the check.
func (h *EventHandler) Register(r fiber.Router, header, apiKey string) {
	g := r.Group("/logEvent", RequireAPIKey(header, apiKey))
	g.Post("/", h.CreateEvent)
	g.Post("/bulk", h.BulkCreateEvents)
}

func RequireAPIKey(header, apiKey string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if apiKey == "" {
			return c.Next()
		}
		if subtle.ConstantTimeCompare([]byte(c.Get(header)), []byte(apiKey)) != 1 {
			return c.Status(http.StatusUnauthorized).JSON(ErrorResponse{
				Error:   "unauthorized",
				Message: "Invalid API Key",
			})
		}
		return c.Next()
	}
}

// CreateEvent godoc
// @Summary Log a game event
// @Description Validates a rewarded, iap or level event and writes it to the event log with idempotency handling
// @Tags Events
// @Accept json
// @Produce json
// @Param X-API-KEY header string true "Ingest API key"
// @Param request body CreateEventRequest true "Event payload"
// @Success 201 {object} CreateEventResponse
// @Success 200 {object} CreateEventResponse "Duplicate event"
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /logEvent [post]
func (h *EventHandler) CreateEvent(c *fiber.Ctx) error {
	payload, err := pipeline.Parse(c.Body())
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error: "invalid_json",
		})
	}

	res, err := h.storeUC.Execute(c.UserContext(), usecase.StoreEventInput{Payload: payload})
	if err != nil {
		return writeError(c, err)
	}

	if !res.Created {
		resp := CreateEventResponse{
			Status: "duplicate",
		}
		return c.Status(http.StatusOK).JSON(resp)
	}

	resp := CreateEventResponse{
		Status:  "created",
		Message: domain.Confirmations[res.Type],
	}
	return c.Status(http.StatusCreated).JSON(resp)
}

// BulkCreateEvents godoc
// @Summary Bulk log game events
// @Description Accepts a list of events, validates all of them, then writes them individually
// @Tags Events
// @Accept json
// @Produce json
// @Param X-API-KEY header string true "Ingest API key"
// @Param request body BulkCreateEventsRequest true "Bulk event payload"
// @Success 201 {object} BulkCreateEventsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /logEvent/bulk [post]
func (h *EventHandler) BulkCreateEvents(c *fiber.Ctx) error {
	payload, err := pipeline.Parse(c.Body())
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: "invalid_json",
		})
	}

	list, _ := payload.Field("events")
	if len(list.Items()) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: "events_list_required",
		})
	}

	inputs := make([]usecase.StoreEventInput, len(list.Items()))
	for i, e := range list.Items() {
		inputs[i] = usecase.StoreEventInput{Payload: e}
	}

	result, err := h.storeUC.BulkCreateEvents(
		c.UserContext(),
		usecase.BulkCreateEventsInput{Events: inputs},
	)
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(BulkCreateEventsResponse{
		Created:    result.Created,
		Duplicates: result.Duplicates,
	})
}

func writeError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, usecase.ErrMissingEventType):
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_event",
			Message: "Missing eventType field",
		})
	case errors.Is(err, usecase.ErrInvalidEvent),
		errors.Is(err, usecase.ErrUnknownEventType),
		errors.Is(err, usecase.ErrFutureTime),
		errors.Is(err, usecase.ErrTooManyEvents):
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_event",
			Message: err.Error(),
		})
	default:
		logging.Ctx(c.UserContext()).Error().Err(err).Msg("event write failed")
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Error:   "internal_server_error",
			Message: "Error: " + err.Error(),
		})
	}
}

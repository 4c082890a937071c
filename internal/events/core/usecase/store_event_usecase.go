package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"game-analytics-service/internal/events/core/domain"
	"game-analytics-service/internal/events/core/ports"
	"game-analytics-service/internal/metrics"
	"game-analytics-service/internal/pipeline"
)

var (
	ErrInvalidEvent     = errors.New("invalid event")
	ErrMissingEventType = errors.New("missing eventType field")
	ErrUnknownEventType = errors.New("unknown eventType")
	ErrFutureTime       = errors.New("date cannot be in the future")
	ErrTooManyEvents    = errors.New("too many events in one request")
)

// clockSkew is how far ahead of the server clock an event date may be.
const clockSkew = 5 * time.Minute

type StoreEventUseCase struct {
	sink    ports.EventSinkPort
	maxBulk int
	now     func() time.Time
}

type Option func(*StoreEventUseCase)

func WithClock(now func() time.Time) Option {
	return func(uc *StoreEventUseCase) { uc.now = now }
}

// WithMaxBulk caps the number of events accepted by BulkCreateEvents.
func WithMaxBulk(n int) Option {
	return func(uc *StoreEventUseCase) { uc.maxBulk = n }
}

func NewStoreEventUseCase(sink ports.EventSinkPort, opts ...Option) *StoreEventUseCase {
	uc := &StoreEventUseCase{sink: sink, maxBulk: 500, now: time.Now}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

type StoreEventInput struct {
	Payload pipeline.Value
}

type StoreEventResult struct {
	Type    domain.EventType
	Created bool
}

func (uc *StoreEventUseCase) Execute(ctx context.Context, in StoreEventInput) (StoreEventResult, error) {
	e, err := uc.buildEvent(in)
	if err != nil {
		metrics.RecordEvent(typeLabel(in.Payload), "invalid")
		return StoreEventResult{}, err
	}
	return uc.write(ctx, e)
}

func (uc *StoreEventUseCase) write(ctx context.Context, e *domain.Event) (StoreEventResult, error) {
	created, err := uc.sink.WriteEvent(ctx, e)
	if err != nil {
		metrics.RecordEvent(string(e.Type), "error")
		return StoreEventResult{}, err
	}
	if created {
		metrics.RecordEvent(string(e.Type), "created")
	} else {
		metrics.RecordEvent(string(e.Type), "duplicate")
	}
	return StoreEventResult{Type: e.Type, Created: created}, nil
}

func (uc *StoreEventUseCase) buildEvent(in StoreEventInput) (*domain.Event, error) {
	if in.Payload.Kind() != pipeline.KindObject {
		return nil, ErrInvalidEvent
	}
	raw, ok := in.Payload.Field("eventType")
	if !ok {
		return nil, ErrMissingEventType
	}
	t := domain.EventType(raw.Text())
	fields, ok := domain.Fields[t]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownEventType, raw.Text())
	}

	row := pipeline.RowOf(in.Payload)
	if date := row.Text("date"); date != "" {
		at, err := time.Parse(time.RFC3339, date)
		if err != nil {
			return nil, fmt.Errorf("%w: date %q", ErrInvalidEvent, date)
		}
		if at.After(uc.now().Add(clockSkew)) {
			return nil, ErrFutureTime
		}
	}

	data := pipeline.NewObject()
	for _, f := range fields {
		if v, ok := row.Get(f); ok {
			data.Set(f, v)
		}
	}

	return &domain.Event{
		Type:       t,
		UserID:     row.Text("userId"),
		ReceivedAt: uc.now().UTC(),
		Data:       pipeline.ObjectValue(data),
		DedupeKey:  buildDedupeKey(t, row),
	}, nil
}

// buildDedupeKey: event_type + user_id + date + per-type identity.
// Events without a user or a date get no key.
func buildDedupeKey(t domain.EventType, row pipeline.Row) string {
	user, date := row.Text("userId"), row.Text("date")
	if user == "" || date == "" {
		return ""
	}
	var identity string
	switch t {
	case domain.EventIAP:
		identity = row.Text("transactionId", "orderId", "purchaseToken")
	case domain.EventRewarded:
		identity = strings.Join([]string{row.Text("placement"), row.Text("subPlacement"), row.Text("level")}, "/")
	case domain.EventLevel:
		identity = strings.Join([]string{row.Text("gameLevel"), row.Text("status"), row.Text("gameMode")}, "/")
	}
	return fmt.Sprintf("%s|%s|%s|%s", t, user, date, identity)
}

func typeLabel(v pipeline.Value) string {
	raw, _ := v.Field("eventType")
	if _, ok := domain.Fields[domain.EventType(raw.Text())]; ok {
		return raw.Text()
	}
	return "unknown"
}

type BulkCreateEventsInput struct {
	Events []StoreEventInput
}

type BulkCreateEventsResult struct {
	Created    int
	Duplicates int
}

// BulkCreateEvents validates every event before writing any of them.
func (uc *StoreEventUseCase) BulkCreateEvents(ctx context.Context, in BulkCreateEventsInput) (BulkCreateEventsResult, error) {
	var res BulkCreateEventsResult

	if len(in.Events) > uc.maxBulk {
		return res, fmt.Errorf("%w: %d > %d", ErrTooManyEvents, len(in.Events), uc.maxBulk)
	}

	events := make([]*domain.Event, 0, len(in.Events))
	for i, ev := range in.Events {
		e, err := uc.buildEvent(ev)
		if err != nil {
			metrics.RecordEvent(typeLabel(ev.Payload), "invalid")
			return res, fmt.Errorf("event %d: %w", i, err)
		}
		events = append(events, e)
	}

	for _, e := range events {
		r, err := uc.write(ctx, e)
		if err != nil {
			return res, err
		}

		if r.Created {
			res.Created++
		} else {
			res.Duplicates++
		}
	}

	return res, nil
}

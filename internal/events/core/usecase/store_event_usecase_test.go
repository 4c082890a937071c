package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"game-analytics-service/internal/events/core/domain"
	"game-analytics-service/internal/events/core/usecase"
	"game-analytics-service/internal/pipeline"
)

// Fake sink implementing EventSinkPort
type fakeEventSink struct {
	WriteFn func(ctx context.Context, e *domain.Event) (bool, error)
	called  bool
}

func (f *fakeEventSink) WriteEvent(ctx context.Context, e *domain.Event) (bool, error) {
	f.called = true
	if f.WriteFn != nil {
		return f.WriteFn(ctx, e)
	}
	return true, nil
}

func fixedClock() func() time.Time {
	return func() time.Time { return time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC) }
}

func input(s string) usecase.StoreEventInput {
	return usecase.StoreEventInput{Payload: pipeline.MustParse(s)}
}

// ------------------------------------------------------------
// SUCCESS TEST
// ------------------------------------------------------------
func TestStoreEvent_Success(t *testing.T) {
	sink := &fakeEventSink{
		WriteFn: func(ctx context.Context, e *domain.Event) (bool, error) {
			if e.Type != domain.EventIAP {
				t.Fatalf("expected type iap, got %s", e.Type)
			}
			if e.UserID != "user_123" {
				t.Fatalf("expected user 'user_123', got %s", e.UserID)
			}
			if e.DedupeKey != "iap|user_123|2026-03-15T10:00:00.000Z|tx-1" {
				t.Fatalf("unexpected dedupe key %q", e.DedupeKey)
			}
			if !e.ReceivedAt.Equal(time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)) {
				t.Fatalf("unexpected receive time %v", e.ReceivedAt)
			}
			raw, _ := e.Data.MarshalJSON()
			want := `{"userId":"user_123","eventType":"iap","date":"2026-03-15T10:00:00.000Z","productId":"gems","transactionId":"tx-1","price":1.99}`
			if string(raw) != want {
				t.Fatalf("unexpected data\n got %s\nwant %s", raw, want)
			}
			return true, nil
		},
	}

	uc := usecase.NewStoreEventUseCase(sink, usecase.WithClock(fixedClock()))

	res, err := uc.Execute(context.Background(), input(`{
		"eventType":"iap","userId":"user_123","date":"2026-03-15T10:00:00.000Z",
		"productId":"gems","transactionId":"tx-1","price":1.99,"unknownField":true
	}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.Created || res.Type != domain.EventIAP {
		t.Fatalf("unexpected result %+v", res)
	}
	if !sink.called {
		t.Fatalf("sink WriteEvent was not called")
	}
}

// ------------------------------------------------------------
// DUPLICATE
// ------------------------------------------------------------
func TestStoreEvent_Duplicate(t *testing.T) {
	sink := &fakeEventSink{
		WriteFn: func(ctx context.Context, e *domain.Event) (bool, error) {
			return false, nil
		},
	}
	uc := usecase.NewStoreEventUseCase(sink, usecase.WithClock(fixedClock()))

	res, err := uc.Execute(context.Background(), input(`{"eventType":"level","userId":"u","gameLevel":3}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Created {
		t.Fatalf("expected created=false for duplicate")
	}
}

// ------------------------------------------------------------
// VALIDATION
// ------------------------------------------------------------
func TestStoreEvent_Validation(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		wantErr error
	}{
		{"not an object", `[1,2]`, usecase.ErrInvalidEvent},
		{"missing type", `{"userId":"u"}`, usecase.ErrMissingEventType},
		{"unknown type", `{"eventType":"purchase"}`, usecase.ErrUnknownEventType},
		{"null type", `{"eventType":null}`, usecase.ErrUnknownEventType},
		{"bad date", `{"eventType":"rewarded","date":"yesterday"}`, usecase.ErrInvalidEvent},
		{"future date", `{"eventType":"rewarded","date":"2026-03-16T00:00:00Z"}`, usecase.ErrFutureTime},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sink := &fakeEventSink{}
			uc := usecase.NewStoreEventUseCase(sink, usecase.WithClock(fixedClock()))

			_, err := uc.Execute(context.Background(), input(tt.payload))
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
			if sink.called {
				t.Fatalf("sink must not be called for invalid input")
			}
		})
	}
}

func TestStoreEvent_SmallClockSkewAccepted(t *testing.T) {
	uc := usecase.NewStoreEventUseCase(&fakeEventSink{}, usecase.WithClock(fixedClock()))

	_, err := uc.Execute(context.Background(), input(`{"eventType":"rewarded","date":"2026-03-15T12:03:00Z"}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// ------------------------------------------------------------
// SINK ERROR
// ------------------------------------------------------------
func TestStoreEvent_SinkError(t *testing.T) {
	sink := &fakeEventSink{
		WriteFn: func(ctx context.Context, e *domain.Event) (bool, error) {
			return false, errors.New("disk full")
		},
	}
	uc := usecase.NewStoreEventUseCase(sink, usecase.WithClock(fixedClock()))

	if _, err := uc.Execute(context.Background(), input(`{"eventType":"iap"}`)); err == nil {
		t.Fatalf("expected error, got nil")
	}
}

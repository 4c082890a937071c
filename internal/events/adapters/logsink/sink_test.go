package logsink_test

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"

	"game-analytics-service/internal/events/adapters/logsink"
	"game-analytics-service/internal/events/core/domain"
	"game-analytics-service/internal/pipeline"
)

func sampleEvent(key string) *domain.Event {
	return &domain.Event{
		Type:       domain.EventIAP,
		UserID:     "u1",
		ReceivedAt: time.UnixMilli(1767225600000),
		Data:       pipeline.MustParse(`{"userId":"u1","productId":"gems","price":1.99}`),
		DedupeKey:  key,
	}
}

func TestWriteEvent_Line(t *testing.T) {
	var buf bytes.Buffer
	s := logsink.New(&buf, 10, time.Minute)

	created, err := s.WriteEvent(context.Background(), sampleEvent("k1"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !created {
		t.Fatalf("expected created=true")
	}

	line := buf.String()
	if !strings.HasSuffix(line, "\n") {
		t.Fatalf("expected one terminated line, got %q", line)
	}
	var out struct {
		EventType string         `json:"eventType"`
		Timestamp int64          `json:"timestamp"`
		Data      map[string]any `json:"data"`
	}
	if err := json.Unmarshal([]byte(line), &out); err != nil {
		t.Fatalf("line is not JSON: %v", err)
	}
	if out.EventType != "iap" || out.Timestamp != 1767225600000 || out.Data["productId"] != "gems" {
		t.Fatalf("unexpected line %+v", out)
	}
	if !strings.HasPrefix(line, `{"eventType":"iap","timestamp":`) {
		t.Fatalf("unexpected field order %q", line)
	}
}

func TestWriteEvent_Duplicate(t *testing.T) {
	var buf bytes.Buffer
	s := logsink.New(&buf, 10, time.Minute)
	ctx := context.Background()

	if created, _ := s.WriteEvent(ctx, sampleEvent("k1")); !created {
		t.Fatalf("first write must be created")
	}
	created, err := s.WriteEvent(ctx, sampleEvent("k1"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created {
		t.Fatalf("second write must be a duplicate")
	}
	if n := strings.Count(buf.String(), "\n"); n != 1 {
		t.Fatalf("expected 1 line, got %d", n)
	}
}

func TestWriteEvent_NoKeyNeverDuplicate(t *testing.T) {
	var buf bytes.Buffer
	s := logsink.New(&buf, 10, time.Minute)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		if created, _ := s.WriteEvent(ctx, sampleEvent("")); !created {
			t.Fatalf("write %d must be created", i)
		}
	}
}

func TestWriteEvent_WindowExpires(t *testing.T) {
	var buf bytes.Buffer
	s := logsink.New(&buf, 10, 20*time.Millisecond)
	ctx := context.Background()

	s.WriteEvent(ctx, sampleEvent("k1"))
	time.Sleep(60 * time.Millisecond)
	if created, _ := s.WriteEvent(ctx, sampleEvent("k1")); !created {
		t.Fatalf("expected created after the dedupe window")
	}
}

type flakyWriter struct {
	fail bool
	buf  bytes.Buffer
}

func (w *flakyWriter) Write(p []byte) (int, error) {
	if w.fail {
		return 0, errors.New("disk full")
	}
	return w.buf.Write(p)
}

func TestWriteEvent_WriterError(t *testing.T) {
	w := &flakyWriter{fail: true}
	s := logsink.New(w, 10, time.Minute)
	ctx := context.Background()

	if _, err := s.WriteEvent(ctx, sampleEvent("k1")); err == nil {
		t.Fatalf("expected an error")
	}

	// a failed write does not mark the key as seen
	w.fail = false
	if created, err := s.WriteEvent(ctx, sampleEvent("k1")); err != nil || !created {
		t.Fatalf("expected created after recovery, got %v %v", created, err)
	}
}

func TestOpen_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "events.log")
	w, err := logsink.Open(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer w.Close()

	s := logsink.New(w, 10, time.Minute)
	if _, err := s.WriteEvent(context.Background(), sampleEvent("k1")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

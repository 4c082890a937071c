// Package logsink writes ingested events as one JSON line each, ready for a
// log shipper.
package logsink

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/rs/zerolog"

	"game-analytics-service/internal/events/core/domain"
	"game-analytics-service/internal/events/core/ports"
)

type Sink struct {
	mu   sync.Mutex
	out  io.Writer
	seen *lru.LRU[string, struct{}]
}

var _ ports.EventSinkPort = (*Sink)(nil)

// New returns a sink writing to out. Dedupe keys are remembered for window,
// at most size of them.
func New(out io.Writer, size int, window time.Duration) *Sink {
	return &Sink{
		out:  out,
		seen: lru.NewLRU[string, struct{}](size, nil, window),
	}
}

// WriteEvent emits {"eventType", "timestamp", "data"}. timestamp is the
// receive time in milliseconds.
func (s *Sink) WriteEvent(ctx context.Context, e *domain.Event) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	data, err := e.Data.MarshalJSON()
	if err != nil {
		return false, fmt.Errorf("encode event data: %w", err)
	}

	var line bytes.Buffer
	zerolog.New(&line).Log().
		Str("eventType", string(e.Type)).
		Int64("timestamp", e.ReceivedAt.UnixMilli()).
		RawJSON("data", data).
		Send()

	s.mu.Lock()
	defer s.mu.Unlock()

	if e.DedupeKey != "" && s.seen.Contains(e.DedupeKey) {
		return false, nil
	}
	if _, err := s.out.Write(line.Bytes()); err != nil {
		return false, fmt.Errorf("write event: %w", err)
	}
	if e.DedupeKey != "" {
		s.seen.Add(e.DedupeKey, struct{}{})
	}
	return true, nil
}

// Open resolves an output target: "stdout", "stderr" or a file appended to.
func Open(target string) (io.WriteCloser, error) {
	switch target {
	case "", "stdout":
		return nopCloser{os.Stdout}, nil
	case "stderr":
		return nopCloser{os.Stderr}, nil
	}
	f, err := os.OpenFile(target, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open event output: %w", err)
	}
	return f, nil
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

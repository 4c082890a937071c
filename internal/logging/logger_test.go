package logging

import (
	"bytes"
	"context"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"warning", zerolog.WarnLevel},
		{" ERROR ", zerolog.ErrorLevel},
		{"disabled", zerolog.Disabled},
		{"bogus", zerolog.InfoLevel},
		{"", zerolog.InfoLevel},
	}

	for _, tt := range tests {
		if got := parseLevel(tt.input); got != tt.expected {
			t.Fatalf("parseLevel(%q): expected %v, got %v", tt.input, tt.expected, got)
		}
	}
}

func TestInit_WritesJSON(t *testing.T) {
	var buf bytes.Buffer
	Init(Config{Level: "debug", Format: "json", Output: &buf})
	defer Init(DefaultConfig())

	Debug().Str("dashboard", "iap").Msg("built")

	out := buf.String()
	if !strings.Contains(out, `"dashboard":"iap"`) || !strings.Contains(out, `"level":"debug"`) {
		t.Fatalf("unexpected log output: %s", out)
	}
}

func TestCtx_AddsIDs(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(NewTestLogger(&buf))
	defer Init(DefaultConfig())

	ctx := ContextWithRequestID(context.Background(), "req-1")
	ctx = ContextWithCorrelationID(ctx, "corr-1")
	Ctx(ctx).Info().Msg("hello")

	out := buf.String()
	if !strings.Contains(out, `"request_id":"req-1"`) || !strings.Contains(out, `"correlation_id":"corr-1"`) {
		t.Fatalf("expected ids in output, got %s", out)
	}
	if CorrelationIDFromContext(context.Background()) != "" {
		t.Fatalf("expected empty correlation id")
	}
	if len(GenerateCorrelationID()) != 8 || len(GenerateRequestID()) != 36 {
		t.Fatalf("unexpected id lengths")
	}
}

func TestMiddleware(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(NewTestLogger(&buf))
	defer Init(DefaultConfig())

	var seen string
	app := fiber.New()
	app.Use(Middleware())
	app.Get("/ping", func(c *fiber.Ctx) error {
		seen = RequestIDFromContext(c.UserContext())
		return c.SendStatus(fiber.StatusNoContent)
	})

	req := httptest.NewRequest("GET", "/ping", nil)
	req.Header.Set(RequestIDHeader, "fixed-id")
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("app.Test error: %v", err)
	}

	if seen != "fixed-id" {
		t.Fatalf("expected request id in user context, got %q", seen)
	}
	if resp.Header.Get(RequestIDHeader) != "fixed-id" {
		t.Fatalf("expected request id echoed")
	}
	out := buf.String()
	if !strings.Contains(out, `"status":204`) || !strings.Contains(out, `"path":"/ping"`) {
		t.Fatalf("expected access log line, got %s", out)
	}
}

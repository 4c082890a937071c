package datasource

import (
	"errors"
	"fmt"
	"net/http"

	"game-analytics-service/internal/pipeline"
)

// ErrUnavailable wraps transport failures and an open circuit breaker.
var ErrUnavailable = errors.New("analytics backend unavailable")

// StatusError is a non-2xx answer from the backend.
type StatusError struct {
	Status  int
	Message string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("API %d: %s", e.Status, e.Message)
}

// IsFallbackStatus reports whether err is a 404 or 405, the answers that let
// a POST be retried as a GET.
func IsFallbackStatus(err error) bool {
	var se *StatusError
	if !errors.As(err, &se) {
		return false
	}
	return se.Status == http.StatusNotFound || se.Status == http.StatusMethodNotAllowed
}

// IsNotFound reports whether err is a 404 from the backend.
func IsNotFound(err error) bool {
	var se *StatusError
	return errors.As(err, &se) && se.Status == http.StatusNotFound
}

// statusMessage picks a human message out of an error body: the body itself
// when it is a string, then its message or error field, then the raw text.
func statusMessage(status int, body []byte) string {
	v, err := pipeline.Parse(body)
	if err != nil {
		if len(body) > 0 {
			return string(body)
		}
		return http.StatusText(status)
	}
	if v.Kind() == pipeline.KindString {
		if s := v.Text(); s != "" {
			return s
		}
	}
	row := pipeline.RowOf(v)
	if s := row.Text("message", "error"); s != "" {
		return s
	}
	if v.IsNull() {
		return http.StatusText(status)
	}
	raw, err := v.MarshalJSON()
	if err != nil {
		return http.StatusText(status)
	}
	return string(raw)
}

package ports

import (
	"context"

	"game-analytics-service/internal/events/core/domain"
)

type EventSinkPort interface {
	// WriteEvent:
	//   created = true,  err = nil  -> written
	//   created = false, err = nil  -> duplicate (idempotent)
	//   created = false, err != nil -> sink error
	WriteEvent(ctx context.Context, e *domain.Event) (created bool, err error)
}

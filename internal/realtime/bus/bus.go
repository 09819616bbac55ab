package bus

import (
	"context"

	"github.com/interiorswala/studio-backend/internal/realtime"
)

// Bus bridges quotation broadcasts between service instances. A single
// instance runs without one; the hub alone covers its own listeners.
type Bus interface {
	Publish(ctx context.Context, msg realtime.Message) error
	StartForwarder(ctx context.Context, onMsg func(m realtime.Message)) error
	Close() error
}

package services

import (
	"context"

	"github.com/interiorswala/studio-backend/internal/realtime"
	"github.com/interiorswala/studio-backend/internal/realtime/bus"
	"github.com/interiorswala/studio-backend/internal/types"
)

type QuotationNotifier interface {
	QuotationCreated(quotation *types.QuotationRequest)
}

type quotationNotifier struct {
	hub *realtime.Hub
	bus bus.Bus
}

// NewQuotationNotifier broadcasts through the bus when one is configured (the
// forwarder delivers to every instance's hub, this one included); otherwise
// straight to the local hub.
func NewQuotationNotifier(hub *realtime.Hub, b bus.Bus) QuotationNotifier {
	return &quotationNotifier{hub: hub, bus: b}
}

func (n *quotationNotifier) QuotationCreated(quotation *types.QuotationRequest) {
	msg := realtime.Message{
		Type:      realtime.EventNewQuotation,
		Quotation: quotation,
	}
	if n.bus != nil {
		if err := n.bus.Publish(context.Background(), msg); err == nil {
			return
		}
		// Bus unavailable: local listeners still get the event.
	}
	n.hub.Broadcast(msg)
}

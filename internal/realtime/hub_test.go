package realtime

import (
	"testing"
	"time"

	"github.com/interiorswala/studio-backend/internal/logger"
	"github.com/interiorswala/studio-backend/internal/types"
)

func mustTestLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.New("development")
	if err != nil {
		t.Fatalf("logger.New: %v", err)
	}
	t.Cleanup(log.Sync)
	return log
}

func recvMessage(t *testing.T, ch <-chan Message, timeout time.Duration) Message {
	t.Helper()
	select {
	case msg := <-ch:
		return msg
	case <-time.After(timeout):
		t.Fatalf("timed out waiting for message")
	}
	return Message{}
}

func quotation(id int64, name string) *types.QuotationRequest {
	return &types.QuotationRequest{ID: id, Name: name, CreatedAt: time.Now()}
}

func TestHubBroadcastOrdering(t *testing.T) {
	hub := NewHub(mustTestLogger(t))

	client := hub.Register()
	hub.Broadcast(Message{Type: EventNewQuotation, Quotation: quotation(1, "First")})
	hub.Broadcast(Message{Type: EventNewQuotation, Quotation: quotation(2, "Second")})

	gotFirst := recvMessage(t, client.Outbound, time.Second)
	gotSecond := recvMessage(t, client.Outbound, time.Second)
	if gotFirst.Quotation.ID != 1 {
		t.Fatalf("first broadcast: want id=1 got=%d", gotFirst.Quotation.ID)
	}
	if gotSecond.Quotation.ID != 2 {
		t.Fatalf("second broadcast: want id=2 got=%d", gotSecond.Quotation.ID)
	}
}

func TestHubLateListenerMissesBroadcast(t *testing.T) {
	hub := NewHub(mustTestLogger(t))

	early := hub.Register()
	hub.Broadcast(Message{Type: EventNewQuotation, Quotation: quotation(7, "Asha")})

	late := hub.Register()

	got := recvMessage(t, early.Outbound, time.Second)
	if got.Type != EventNewQuotation || got.Quotation.ID != 7 {
		t.Fatalf("early listener: unexpected message %+v", got)
	}
	select {
	case msg := <-late.Outbound:
		t.Fatalf("late listener should not receive past broadcast, got %+v", msg)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestHubUnregisterClosesClient(t *testing.T) {
	hub := NewHub(mustTestLogger(t))

	client := hub.Register()
	hub.Unregister(client)
	hub.Unregister(client) // second call must be harmless

	select {
	case _, ok := <-client.Outbound:
		if ok {
			t.Fatalf("outbound should be closed after unregister")
		}
	case <-time.After(500 * time.Millisecond):
		t.Fatalf("timed out waiting for outbound close")
	}
	if hub.ClientCount() != 0 {
		t.Fatalf("client count: want=0 got=%d", hub.ClientCount())
	}

	// Broadcasting with no listeners must not panic.
	hub.Broadcast(Message{Type: EventNewQuotation, Quotation: quotation(9, "Nobody")})
}

func TestHubSlowListenerDoesNotBlockOthers(t *testing.T) {
	hub := NewHub(mustTestLogger(t))

	slow := hub.Register()
	fast := hub.Register()

	// Fill the slow listener's buffer without draining it.
	for i := 0; i < cap(slow.Outbound)+5; i++ {
		hub.Broadcast(Message{Type: EventNewQuotation, Quotation: quotation(int64(i), "Flood")})
	}

	// The fast listener still got everything its buffer could hold, and the
	// hub never blocked.
	got := recvMessage(t, fast.Outbound, time.Second)
	if got.Type != EventNewQuotation {
		t.Fatalf("fast listener: unexpected message %+v", got)
	}
}

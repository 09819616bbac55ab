package bus_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"

	"github.com/interiorswala/studio-backend/internal/logger"
	"github.com/interiorswala/studio-backend/internal/realtime"
	"github.com/interiorswala/studio-backend/internal/realtime/bus"
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

func TestRedisBusPublishForward(t *testing.T) {
	mr := miniredis.RunT(t)
	t.Setenv("REDIS_ADDR", mr.Addr())
	t.Setenv("REDIS_CHANNEL", "quotations-test")

	log := mustTestLogger(t)
	b, err := bus.NewRedisBus(log)
	require.NoError(t, err)
	t.Cleanup(func() { _ = b.Close() })

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	received := make(chan realtime.Message, 1)
	require.NoError(t, b.StartForwarder(ctx, func(m realtime.Message) {
		received <- m
	}))

	msg := realtime.Message{
		Type: realtime.EventNewQuotation,
		Quotation: &types.QuotationRequest{
			ID:    42,
			Name:  "Asha",
			Email: "a@x.com",
		},
	}
	require.NoError(t, b.Publish(ctx, msg))

	select {
	case got := <-received:
		require.Equal(t, realtime.EventNewQuotation, got.Type)
		require.NotNil(t, got.Quotation)
		require.EqualValues(t, 42, got.Quotation.ID)
		require.Equal(t, "Asha", got.Quotation.Name)
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for forwarded message")
	}
}

func TestRedisBusRequiresAddr(t *testing.T) {
	t.Setenv("REDIS_ADDR", "")
	_, err := bus.NewRedisBus(mustTestLogger(t))
	require.Error(t, err)
}

package events

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// roundTrip publishes on one channel and waits for delivery on another
func roundTrip(t *testing.T, publisher, subscriber Channel) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	name := "bomul_test_" + time.Now().UTC().Format("150405.000000")
	received := make(chan []byte, 1)
	require.NoError(t, subscriber.OnMessage(ctx, name, func(payload []byte) {
		select {
		case received <- payload:
		default:
		}
	}))
	require.NoError(t, publisher.Publish(ctx, name, []byte(`{"type":"REPORT_UPDATE"}`)))

	select {
	case payload := <-received:
		e, err := DecodeEvent(payload)
		require.NoError(t, err)
		require.Equal(t, ReportUpdate, e.Type)
	case <-ctx.Done():
		t.Fatal("timed out waiting for broadcast")
	}
}

func TestRedisChannel_Live(t *testing.T) {
	addr := os.Getenv("BOMUL_TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("BOMUL_TEST_REDIS_ADDR not set")
	}

	ctx := context.Background()
	pub, err := NewRedisChannel(ctx, addr, "", 0)
	require.NoError(t, err)
	defer pub.Close()
	sub, err := NewRedisChannel(ctx, addr, "", 0)
	require.NoError(t, err)
	defer sub.Close()

	roundTrip(t, pub, sub)
}

func TestNATSChannel_Live(t *testing.T) {
	url := os.Getenv("BOMUL_TEST_NATS_URL")
	if url == "" {
		t.Skip("BOMUL_TEST_NATS_URL not set")
	}

	pub, err := NewNATSChannel(url, "bomul-test-pub")
	require.NoError(t, err)
	defer pub.Close()
	sub, err := NewNATSChannel(url, "bomul-test-sub")
	require.NoError(t, err)
	defer sub.Close()

	roundTrip(t, pub, sub)
}

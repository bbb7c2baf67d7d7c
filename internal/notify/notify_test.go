package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/fjod/go_storefront/internal/domain"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockWriter struct {
	mu    sync.Mutex
	msgs  []kafka.Message
	err   error
	calls int
}

func (w *mockWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.calls++
	if w.err != nil {
		return w.err
	}
	w.msgs = append(w.msgs, msgs...)
	return nil
}

type recordingSink struct {
	got []domain.Notification
}

func (r *recordingSink) Notify(_ context.Context, _ string, n domain.Notification) {
	r.got = append(r.got, n)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestKafkaSink_Publishes(t *testing.T) {
	w := &mockWriter{}
	sink := NewKafkaSink(w, discardLogger())

	sink.Notify(context.Background(), "s1", domain.CartEmpty())

	require.Len(t, w.msgs, 1)
	assert.Equal(t, "s1", string(w.msgs[0].Key))

	var ev Event
	require.NoError(t, json.Unmarshal(w.msgs[0].Value, &ev))
	assert.Equal(t, "s1", ev.SessionID)
	assert.Equal(t, "Корзина пуста", ev.Title)
	assert.Equal(t, domain.SeverityDestructive, ev.Severity)
	assert.False(t, ev.EmittedAt.IsZero())
}

func TestKafkaSink_BreakerOpensOnFailures(t *testing.T) {
	w := &mockWriter{err: errors.New("broker down")}
	sink := NewKafkaSink(w, discardLogger())

	for i := 0; i < 10; i++ {
		sink.Notify(context.Background(), "s1", domain.OrderPlaced())
	}

	// 5 consecutive failures trip the breaker, the rest are rejected without a write
	assert.Equal(t, 5, w.calls)
}

func TestKafkaSink_CancelledRequestStillPublishes(t *testing.T) {
	w := &mockWriter{}
	sink := NewKafkaSink(w, discardLogger())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	sink.Notify(ctx, "s1", domain.OrderPlaced())

	assert.Len(t, w.msgs, 1)
}

func TestLogSink_LevelBySeverity(t *testing.T) {
	var buf bytes.Buffer
	sink := NewLogSink(slog.New(slog.NewJSONHandler(&buf, nil)))

	sink.Notify(context.Background(), "s1", domain.CartEmpty())

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "WARN", line["level"])
	assert.Equal(t, "destructive", line["severity"])
	assert.Equal(t, "s1", line["session_id"])
}

func TestMulti_FansOut(t *testing.T) {
	a, b := &recordingSink{}, &recordingSink{}
	Multi{a, Discard{}, b}.Notify(context.Background(), "s1", domain.OrderPlaced())

	assert.Len(t, a.got, 1)
	assert.Len(t, b.got, 1)
}

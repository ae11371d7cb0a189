package realtime

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"nhooyr.io/websocket"
	"nhooyr.io/websocket/wsjson"

	"github.com/renato0307/hotline/internal/domain"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func entry(id int64) domain.LogEntry {
	return domain.LogEntry{
		HookType:  domain.HookStop,
		ID:        id,
		SessionID: "s1",
		Timestamp: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func decode(t *testing.T, data []byte) domain.Message {
	t.Helper()
	var msg domain.Message
	require.NoError(t, json.Unmarshal(data, &msg))
	return msg
}

func TestPublish_NoSubscribersIsNoop(t *testing.T) {
	hub := NewHub()

	assert.NotPanics(t, func() { hub.Publish(domain.ClearLogsMessage()) })
	assert.Zero(t, hub.Count())
}

func TestPublish_EverySubscriberGetsMessagesInOrder(t *testing.T) {
	hub := NewHub()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	a := hub.Subscribe(ctx)
	b := hub.Subscribe(ctx)
	require.Equal(t, 2, hub.Count())

	hub.Publish(domain.NewLogMessage(entry(1)))
	hub.Publish(domain.NewLogMessage(entry(2)))
	hub.Publish(domain.ClearLogsMessage())

	for _, ch := range []<-chan []byte{a, b} {
		first := decode(t, <-ch)
		second := decode(t, <-ch)
		third := decode(t, <-ch)
		assert.Equal(t, int64(1), first.Data.ID)
		assert.Equal(t, int64(2), second.Data.ID)
		assert.Equal(t, domain.MessageClearLogs, third.Type)
		assert.Nil(t, third.Data)
	}
}

func TestPublish_SlowSubscriberDoesNotBlock(t *testing.T) {
	hub := NewHub(WithBufferSize(1))
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	slow := hub.Subscribe(ctx)
	fast := hub.Subscribe(ctx)

	done := make(chan struct{})
	go func() {
		defer close(done)
		hub.Publish(domain.NewLogMessage(entry(1)))
		<-fast
		hub.Publish(domain.NewLogMessage(entry(2)))
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("publish blocked on a full subscriber")
	}

	// The slow subscriber kept only what fit in its buffer
	assert.Equal(t, int64(1), decode(t, <-slow).Data.ID)
	assert.Equal(t, int64(2), decode(t, <-fast).Data.ID)
}

func TestSubscribe_CancelRemovesSubscriber(t *testing.T) {
	hub := NewHub()
	ctx, cancel := context.WithCancel(context.Background())

	ch := hub.Subscribe(ctx)
	require.Equal(t, 1, hub.Count())

	cancel()

	require.Eventually(t, func() bool { return hub.Count() == 0 }, time.Second, 10*time.Millisecond)
	_, ok := <-ch
	assert.False(t, ok)

	// Later publishes must not reach the closed subscriber
	assert.NotPanics(t, func() { hub.Publish(domain.ClearLogsMessage()) })
}

func TestServeHTTP_StreamsMessages(t *testing.T) {
	hub := NewHub()
	srv := httptest.NewServer(hub)
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.Dial(ctx, url, nil)
	require.NoError(t, err)
	defer conn.CloseNow()

	require.Eventually(t, func() bool { return hub.Count() == 1 }, 2*time.Second, 10*time.Millisecond)

	hub.Publish(domain.NewLogMessage(entry(7)))
	hub.Publish(domain.ClearLogsMessage())

	var first, second domain.Message
	require.NoError(t, wsjson.Read(ctx, conn, &first))
	require.NoError(t, wsjson.Read(ctx, conn, &second))

	assert.Equal(t, domain.MessageNewLog, first.Type)
	require.NotNil(t, first.Data)
	assert.Equal(t, int64(7), first.Data.ID)
	assert.Equal(t, domain.MessageClearLogs, second.Type)

	_ = conn.Close(websocket.StatusNormalClosure, "")
	require.Eventually(t, func() bool { return hub.Count() == 0 }, 2*time.Second, 10*time.Millisecond)
}

func TestOriginAllowed(t *testing.T) {
	tests := []struct {
		name     string
		origin   string
		host     string
		patterns []string
		want     bool
	}{
		{"no origin header", "", "localhost:3001", nil, true},
		{"same origin", "http://hotline.lan:3001", "hotline.lan:3001", nil, true},
		{"localhost dev server", "http://localhost:5173", "127.0.0.1:3001", nil, true},
		{"loopback without port", "http://127.0.0.1", "localhost:3001", nil, true},
		{"foreign site", "https://evil.example", "localhost:3001", nil, false},
		{"null origin", "null", "localhost:3001", nil, false},
		{"extra pattern", "https://ui.example:8443", "localhost:3001", []string{"ui.example:*"}, true},
		{"wildcard pattern", "https://evil.example", "localhost:3001", []string{"*"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hub := NewHub(WithOriginPatterns(tt.patterns...))
			r := httptest.NewRequest(http.MethodGet, "http://"+tt.host+"/ws", nil)
			if tt.origin != "" {
				r.Header.Set("Origin", tt.origin)
			}
			assert.Equal(t, tt.want, hub.OriginAllowed(r))
		})
	}
}

func TestServeHTTP_RejectsForeignOrigin(t *testing.T) {
	hub := NewHub()
	srv := httptest.NewServer(hub)
	defer srv.Close()

	client := &http.Client{Transport: &http.Transport{}}
	defer client.CloseIdleConnections()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	_, resp, err := websocket.Dial(ctx, url, &websocket.DialOptions{
		HTTPClient: client,
		HTTPHeader: http.Header{"Origin": {"https://evil.example"}},
	})
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Equal(t, 0, hub.Count())
}

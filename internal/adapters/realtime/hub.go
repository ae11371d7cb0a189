// Package realtime fans ledger events out to connected listeners over
// websockets.
package realtime

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"path"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"nhooyr.io/websocket"

	"github.com/renato0307/hotline/internal/domain"
	"github.com/renato0307/hotline/internal/logging"
	"github.com/renato0307/hotline/internal/ports"
)

const (
	// DefaultBufferSize is how many messages a slow subscriber may lag behind
	// before further messages are skipped for it
	DefaultBufferSize = 64

	defaultWriteTimeout = 5 * time.Second
)

// DefaultOriginPatterns are the browser origins trusted without configuration
var DefaultOriginPatterns = []string{"localhost", "localhost:*", "127.0.0.1", "127.0.0.1:*"}

type subscriber struct {
	ch chan []byte
	id string
}

// Hub keeps the set of live subscribers. Publish never blocks: each
// subscriber has a fixed buffer and messages that do not fit are skipped.
type Hub struct {
	bufferSize     int
	mu             sync.RWMutex
	originPatterns []string
	subs           map[string]*subscriber
	writeTimeout   time.Duration
}

// Verify interface compliance at compile time
var _ ports.EventPublisher = (*Hub)(nil)

// HubOption configures a Hub
type HubOption func(*Hub)

// WithBufferSize overrides DefaultBufferSize
func WithBufferSize(size int) HubOption {
	return func(h *Hub) {
		if size > 0 {
			h.bufferSize = size
		}
	}
}

// WithOriginPatterns trusts more browser origins on top of
// DefaultOriginPatterns. Patterns match the origin host with path.Match
// syntax, so "*" trusts every origin.
func WithOriginPatterns(patterns ...string) HubOption {
	return func(h *Hub) {
		h.originPatterns = append(h.originPatterns, patterns...)
	}
}

// WithWriteTimeout bounds each websocket write
func WithWriteTimeout(d time.Duration) HubOption {
	return func(h *Hub) {
		if d > 0 {
			h.writeTimeout = d
		}
	}
}

// NewHub creates an empty hub
func NewHub(opts ...HubOption) *Hub {
	h := &Hub{
		bufferSize:     DefaultBufferSize,
		originPatterns: append([]string(nil), DefaultOriginPatterns...),
		subs:           make(map[string]*subscriber),
		writeTimeout:   defaultWriteTimeout,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// OriginAllowed reports whether r comes from a trusted browser origin.
// Requests without an Origin header are not from a browser page and are
// allowed, as are same-origin requests.
func (h *Hub) OriginAllowed(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}
	u, err := url.Parse(origin)
	if err != nil || u.Host == "" {
		return false
	}
	if strings.EqualFold(u.Host, r.Host) {
		return true
	}
	host := strings.ToLower(u.Host)
	for _, pattern := range h.originPatterns {
		if ok, err := path.Match(strings.ToLower(pattern), host); err == nil && ok {
			return true
		}
	}
	return false
}

// Subscribe registers an in-process subscriber. The returned channel yields
// encoded messages in publish order and is closed once ctx ends.
func (h *Hub) Subscribe(ctx context.Context) <-chan []byte {
	sub := &subscriber{
		ch: make(chan []byte, h.bufferSize),
		id: uuid.New().String(),
	}

	h.mu.Lock()
	h.subs[sub.id] = sub
	count := len(h.subs)
	h.mu.Unlock()

	logging.Logger.Debug("Subscriber connected", "id", sub.id, "subscribers", count)

	go func() {
		<-ctx.Done()
		h.unsubscribe(sub)
	}()

	return sub.ch
}

func (h *Hub) unsubscribe(sub *subscriber) {
	h.mu.Lock()
	delete(h.subs, sub.id)
	close(sub.ch)
	count := len(h.subs)
	h.mu.Unlock()

	logging.Logger.Debug("Subscriber disconnected", "id", sub.id, "subscribers", count)
}

// Count returns the number of connected subscribers
func (h *Hub) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs)
}

// Publish implements EventPublisher.Publish
func (h *Hub) Publish(msg domain.Message) {
	data, err := json.Marshal(msg)
	if err != nil {
		logging.Logger.Error("Failed to encode realtime message", "type", msg.Type, "error", err)
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, sub := range h.subs {
		select {
		case sub.ch <- data:
		default:
			logging.Logger.Warn("Subscriber queue full, skipping message", "id", sub.id, "type", msg.Type)
		}
	}
}

// ServeHTTP upgrades the request to a websocket and streams every published
// message to it until either side goes away. Client frames are ignored.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	opts := &websocket.AcceptOptions{
		OriginPatterns: h.originPatterns,
	}
	conn, err := websocket.Accept(w, r, opts)
	if err != nil {
		logging.Logger.Warn("Websocket upgrade failed", "remote", r.RemoteAddr, "error", err)
		return
	}
	defer conn.CloseNow()

	ctx, cancel := context.WithCancel(conn.CloseRead(r.Context()))
	defer cancel()

	messages := h.Subscribe(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case data, ok := <-messages:
			if !ok {
				return
			}
			if err := h.write(ctx, conn, data); err != nil {
				logging.Logger.Debug("Websocket write failed", "remote", r.RemoteAddr, "error", err)
				return
			}
		}
	}
}

func (h *Hub) write(ctx context.Context, conn *websocket.Conn, data []byte) error {
	ctx, cancel := context.WithTimeout(ctx, h.writeTimeout)
	defer cancel()
	return conn.Write(ctx, websocket.MessageText, data)
}

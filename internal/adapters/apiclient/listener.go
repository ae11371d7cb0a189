package apiclient

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"nhooyr.io/websocket"
	"nhooyr.io/websocket/wsjson"

	"github.com/renato0307/hotline/internal/domain"
	"github.com/renato0307/hotline/internal/logging"
)

const (
	DefaultInitialBackoff = time.Second
	DefaultMaxBackoff     = 30 * time.Second

	dialTimeout  = 10 * time.Second
	maxFrameSize = 1 << 20
	jitter       = 0.2
)

// MessageHandler receives realtime messages in arrival order
type MessageHandler func(ctx context.Context, msg domain.Message)

// ListenOptions tune the reconnect loop. Zero values take the defaults.
type ListenOptions struct {
	InitialBackoff time.Duration
	MaxBackoff     time.Duration
	OnConnect      func()
	OnDisconnect   func(err error, retryIn time.Duration)
}

// WebSocketURL returns the realtime endpoint of the server
func (c *Client) WebSocketURL() string {
	u := *c.base
	if u.Scheme == "https" {
		u.Scheme = "wss"
	} else {
		u.Scheme = "ws"
	}
	u.Path = u.Path + "/ws"
	u.RawQuery = ""
	return u.String()
}

// Listen subscribes to the realtime channel and feeds every message to
// handle until ctx is cancelled. Dropped connections are re-established with
// exponential backoff; messages published while disconnected are not
// replayed.
func (c *Client) Listen(ctx context.Context, handle MessageHandler, opts ListenOptions) error {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = opts.InitialBackoff
	if b.InitialInterval <= 0 {
		b.InitialInterval = DefaultInitialBackoff
	}
	b.MaxInterval = opts.MaxBackoff
	if b.MaxInterval <= 0 {
		b.MaxInterval = DefaultMaxBackoff
	}
	b.MaxElapsedTime = 0
	b.RandomizationFactor = jitter
	b.Reset()

	for {
		connected, err := c.listenOnce(ctx, handle, opts.OnConnect)
		if ctx.Err() != nil {
			return nil
		}
		if connected {
			b.Reset()
		}

		wait := b.NextBackOff()
		logging.Logger.Debug("Realtime connection lost", "error", err, "retry_in", wait)
		if opts.OnDisconnect != nil {
			opts.OnDisconnect(err, wait)
		}

		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil
		case <-timer.C:
		}
	}
}

// listenOnce runs a single connection. connected reports whether the
// handshake succeeded, which resets the backoff.
func (c *Client) listenOnce(ctx context.Context, handle MessageHandler, onConnect func()) (connected bool, err error) {
	dialCtx, cancel := context.WithTimeout(ctx, dialTimeout)
	conn, _, err := websocket.Dial(dialCtx, c.WebSocketURL(), nil)
	cancel()
	if err != nil {
		return false, fmt.Errorf("dial %s: %w", c.WebSocketURL(), err)
	}
	defer conn.CloseNow()
	conn.SetReadLimit(maxFrameSize)

	logging.Logger.Info("Realtime connection established", "url", c.WebSocketURL())
	if onConnect != nil {
		onConnect()
	}

	for {
		var msg domain.Message
		if err := wsjson.Read(ctx, conn, &msg); err != nil {
			if ctx.Err() != nil {
				_ = conn.Close(websocket.StatusNormalClosure, "")
				return true, nil
			}
			var closeErr websocket.CloseError
			if errors.As(err, &closeErr) {
				return true, fmt.Errorf("server closed connection: %s", closeErr.Code)
			}
			return true, err
		}
		handle(ctx, msg)
	}
}

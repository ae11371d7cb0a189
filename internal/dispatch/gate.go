package dispatch

import (
	"context"
	"sync"

	"github.com/renato0307/hotline/internal/logging"
	"github.com/renato0307/hotline/internal/ports"
)

// PermissionState is where a listener stands on native notifications
type PermissionState int

const (
	PermissionUnrequested PermissionState = iota
	PermissionGranted
	PermissionDenied
)

func (s PermissionState) String() string {
	switch s {
	case PermissionGranted:
		return "granted"
	case PermissionDenied:
		return "denied"
	default:
		return "unrequested"
	}
}

// Delivery is how a notification reached the user
type Delivery string

const (
	DeliveryAlert  Delivery = "alert"
	DeliveryNative Delivery = "native"
)

// NotificationGate decides between native notifications and the alert
// fallback. Permission is requested lazily, once, the first time a
// notification is needed; the answer holds for the rest of the session.
type NotificationGate struct {
	alert  ports.AlertPresenter
	mu     sync.Mutex
	native ports.DesktopNotifier
	state  PermissionState
}

// NewNotificationGate creates a gate in the unrequested state
func NewNotificationGate(native ports.DesktopNotifier, alert ports.AlertPresenter) *NotificationGate {
	return &NotificationGate{
		alert:  alert,
		native: native,
		state:  PermissionUnrequested,
	}
}

// State returns the current permission state
func (g *NotificationGate) State() PermissionState {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state
}

// Show delivers one notification. A native failure falls back to the alert
// for this notification only; the permission state is kept.
func (g *NotificationGate) Show(ctx context.Context, title, body string) (Delivery, error) {
	if g.permission(ctx) == PermissionGranted {
		err := g.native.Notify(title, body)
		if err == nil {
			return DeliveryNative, nil
		}
		logging.Logger.Warn("Native notification failed, falling back to alert", "error", err)
	}

	return DeliveryAlert, g.alert.Alert(title, body)
}

// permission resolves the state, asking at most once. Concurrent callers
// wait for the single request in flight.
func (g *NotificationGate) permission(ctx context.Context) PermissionState {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.state != PermissionUnrequested {
		return g.state
	}

	granted, err := g.native.RequestPermission(ctx)
	switch {
	case err != nil:
		logging.Logger.Warn("Notification permission request failed", "error", err)
		g.state = PermissionDenied
	case granted:
		g.state = PermissionGranted
	default:
		g.state = PermissionDenied
	}

	logging.Logger.Info("Notification permission resolved", "state", g.state.String())
	return g.state
}

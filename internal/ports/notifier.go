package ports

import "context"

// DesktopNotifier shows native OS notifications
type DesktopNotifier interface {
	// RequestPermission asks (or probes) whether native notifications can be
	// shown. It is called at most once per listener session.
	RequestPermission(ctx context.Context) (bool, error)

	Notify(title, body string) error
}

// AlertPresenter is the fallback when native notifications are unavailable.
// Alert returns only once the alert has been presented.
type AlertPresenter interface {
	Alert(title, body string) error
}

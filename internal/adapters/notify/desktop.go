package notify

import (
	"context"
	"os"
	"os/exec"
	"runtime"

	"github.com/gen2brain/beeep"

	"github.com/renato0307/hotline/internal/logging"
	"github.com/renato0307/hotline/internal/ports"
)

// Desktop shows native OS notifications through beeep
type Desktop struct {
	enabled bool
	notify  func(title, message string) error
	probe   func() bool
}

// Verify interface compliance at compile time
var _ ports.DesktopNotifier = (*Desktop)(nil)

// NewDesktop creates a native notifier. When enabled is false permission is
// always denied, which routes every notification to the fallback.
func NewDesktop(enabled bool) *Desktop {
	beeep.AppName = "Hotline"
	return &Desktop{
		enabled: enabled,
		notify:  notifyNative,
		probe:   platformSupportsNotifications,
	}
}

// RequestPermission implements DesktopNotifier.RequestPermission. Native
// notifications need no consent outside the browser, so this probes whether
// the platform can show them at all.
func (d *Desktop) RequestPermission(ctx context.Context) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	if !d.enabled {
		logging.Logger.Debug("Native notifications disabled")
		return false, nil
	}

	granted := d.probe()
	logging.Logger.Info("Native notification permission", "granted", granted, "os", runtime.GOOS)
	return granted, nil
}

// Notify implements DesktopNotifier.Notify
func (d *Desktop) Notify(title, body string) error {
	return d.notify(title, body)
}

func notifyNative(title, message string) error {
	return beeep.Notify(title, message, "")
}

// platformSupportsNotifications reports whether a notification daemon is
// reachable. Linux and BSD need a D-Bus session or notify-send.
func platformSupportsNotifications() bool {
	switch runtime.GOOS {
	case "darwin", "windows":
		return true
	case "linux", "freebsd", "netbsd", "openbsd":
		if os.Getenv("DBUS_SESSION_BUS_ADDRESS") != "" {
			return true
		}
		_, err := exec.LookPath("notify-send")
		return err == nil
	default:
		return false
	}
}

package notify

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/renato0307/hotline/internal/ports"
	"github.com/renato0307/hotline/internal/theme"
)

// TerminalAlert prints notifications to the terminal with a bell. It is the
// fallback when native notifications are denied or fail.
type TerminalAlert struct {
	mu  sync.Mutex
	out io.Writer
}

// Verify interface compliance at compile time
var _ ports.AlertPresenter = (*TerminalAlert)(nil)

// NewTerminalAlert creates an alert presenter writing to out (stderr when nil)
func NewTerminalAlert(out io.Writer) *TerminalAlert {
	if out == nil {
		out = os.Stderr
	}
	return &TerminalAlert{out: out}
}

// Alert implements AlertPresenter.Alert. The write completes before it returns.
func (a *TerminalAlert) Alert(title, body string) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	box := theme.AlertStyle.Render(theme.AppNameStyle.Render(title) + "\n" + body)
	_, err := fmt.Fprintf(a.out, "\a%s\n", box)
	return err
}

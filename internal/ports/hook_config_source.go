package ports

import (
	"context"

	"github.com/renato0307/hotline/internal/domain"
)

// HookConfigSource returns the current UI configuration. Listeners read it
// on every event so edits take effect without reconnecting.
type HookConfigSource interface {
	HookConfig(ctx context.Context) (domain.HookConfig, error)
}

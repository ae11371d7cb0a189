package ports

import (
	"context"

	"github.com/renato0307/hotline/internal/domain"
)

// ConsumerConfigStore reads and writes the "hooks" key of the agent's
// settings.json. Writes replace only that key; unrelated keys survive.
type ConsumerConfigStore interface {
	// ReadHooks returns the stored document, empty when the file is missing
	ReadHooks(ctx context.Context, target domain.ConfigTarget) (domain.ConsumerDocument, error)

	// WriteHooks replaces the "hooks" key and returns the written file path
	WriteHooks(ctx context.Context, target domain.ConfigTarget, doc domain.ConsumerDocument) (string, error)
}

// UIConfigStore persists the UI configuration document
type UIConfigStore interface {
	// Load returns the raw stored bytes, nil when nothing is stored yet
	Load(ctx context.Context) ([]byte, error)

	// Save stores the canonical configuration
	Save(ctx context.Context, cfg domain.HookConfig) error
}

package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/renato0307/hotline/internal/domain"
	"github.com/renato0307/hotline/internal/hookconfig"
	"github.com/renato0307/hotline/internal/logging"
	"github.com/renato0307/hotline/internal/ports"
)

// HookConfigService edits the UI configuration and compiles it into the
// agent's settings.json. Every mutation is a read-modify-write of the whole
// document; concurrent writers resolve last-write-wins.
type HookConfigService struct {
	command  hookconfig.CommandBuilder
	consumer ports.ConsumerConfigStore
	mu       sync.Mutex
	uiStore  ports.UIConfigStore
}

// Verify interface compliance at compile time
var _ ports.HookConfigSource = (*HookConfigService)(nil)

// NewHookConfigService creates a new HookConfigService
func NewHookConfigService(
	uiStore ports.UIConfigStore,
	consumer ports.ConsumerConfigStore,
	command hookconfig.CommandBuilder,
) *HookConfigService {
	return &HookConfigService{
		command:  command,
		consumer: consumer,
		uiStore:  uiStore,
	}
}

// Load returns the canonical configuration. The global agent document seeds
// defaults when nothing usable is stored yet.
func (s *HookConfigService) Load(ctx context.Context) (domain.HookConfig, error) {
	raw, err := s.uiStore.Load(ctx)
	if err != nil {
		logging.Logger.Error("Failed to load UI config", "error", err)
		return nil, wrapStorage(err)
	}

	consumer, err := s.consumer.ReadHooks(ctx, domain.TargetGlobal)
	if err != nil {
		// Defaults still work without the agent document
		logging.Logger.Warn("Failed to read agent hooks, using plain defaults", "error", err)
		consumer = nil
	}

	return hookconfig.Normalize(raw, consumer), nil
}

// HookConfig implements ports.HookConfigSource
func (s *HookConfigService) HookConfig(ctx context.Context) (domain.HookConfig, error) {
	return s.Load(ctx)
}

// Save normalizes a UI document and stores it
func (s *HookConfigService) Save(ctx context.Context, raw []byte) (domain.HookConfig, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	consumer, err := s.consumer.ReadHooks(ctx, domain.TargetGlobal)
	if err != nil {
		logging.Logger.Warn("Failed to read agent hooks, using plain defaults", "error", err)
		consumer = nil
	}

	cfg := hookconfig.Normalize(raw, consumer)
	if err := s.store(ctx, cfg); err != nil {
		return nil, err
	}

	logging.Logger.Info("UI config saved", "hook_types", len(cfg))
	return cfg, nil
}

// AddEntry appends a default entry and returns the hook type's new sequence
func (s *HookConfigService) AddEntry(ctx context.Context, hookType domain.HookType) ([]domain.HookEntry, error) {
	if !hookType.Valid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownHookType, hookType)
	}

	return s.mutate(ctx, hookType, func(cfg domain.HookConfig) (domain.HookConfig, error) {
		out, _ := hookconfig.AddEntry(cfg, hookType)
		return out, nil
	})
}

// RemoveEntry drops one entry; out of range indexes change nothing
func (s *HookConfigService) RemoveEntry(ctx context.Context, hookType domain.HookType, index int) ([]domain.HookEntry, error) {
	if !hookType.Valid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownHookType, hookType)
	}

	return s.mutate(ctx, hookType, func(cfg domain.HookConfig) (domain.HookConfig, error) {
		return hookconfig.RemoveEntry(cfg, hookType, index), nil
	})
}

// UpdateField sets one field of one entry. Timeouts are clamped to the
// accepted range before they are stored.
func (s *HookConfigService) UpdateField(
	ctx context.Context,
	hookType domain.HookType,
	index int,
	field hookconfig.Field,
	value any,
) ([]domain.HookEntry, error) {
	if !hookType.Valid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownHookType, hookType)
	}

	if field == hookconfig.FieldTimeoutSeconds {
		if seconds, ok := value.(int); ok {
			value = domain.ClampTimeout(seconds)
		}
	}

	return s.mutate(ctx, hookType, func(cfg domain.HookConfig) (domain.HookConfig, error) {
		return hookconfig.UpdateField(cfg, hookType, index, field, value)
	})
}

// Apply compiles the stored configuration into target's settings.json. The
// canonical UI document is stored as well, so legacy documents are migrated
// on first apply.
func (s *HookConfigService) Apply(ctx context.Context, target domain.ConfigTarget) (ApplyResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cfg, err := s.Load(ctx)
	if err != nil {
		return ApplyResult{}, err
	}

	doc := hookconfig.Compile(cfg, hookconfig.CompileOptions{Command: s.command})

	path, err := s.consumer.WriteHooks(ctx, target, doc)
	if err != nil {
		logging.Logger.Error("Failed to write agent hooks", "target", target, "error", err)
		return ApplyResult{}, wrapStorage(err)
	}

	if err := s.store(ctx, cfg); err != nil {
		return ApplyResult{}, err
	}

	logging.Logger.Info("Hooks applied", "target", target, "path", path, "hook_types", len(doc))
	return ApplyResult{Document: doc, Path: path, Target: target}, nil
}

// ConsumerHooks returns target's agent hooks document as stored
func (s *HookConfigService) ConsumerHooks(ctx context.Context, target domain.ConfigTarget) (domain.ConsumerDocument, error) {
	doc, err := s.consumer.ReadHooks(ctx, target)
	if err != nil {
		logging.Logger.Error("Failed to read agent hooks", "target", target, "error", err)
		return nil, wrapStorage(err)
	}
	return doc, nil
}

// WriteConsumerHooks replaces target's agent hooks document verbatim
func (s *HookConfigService) WriteConsumerHooks(ctx context.Context, target domain.ConfigTarget, doc domain.ConsumerDocument) (string, error) {
	path, err := s.consumer.WriteHooks(ctx, target, doc)
	if err != nil {
		logging.Logger.Error("Failed to write agent hooks", "target", target, "error", err)
		return "", wrapStorage(err)
	}
	return path, nil
}

func (s *HookConfigService) mutate(
	ctx context.Context,
	hookType domain.HookType,
	fn func(domain.HookConfig) (domain.HookConfig, error),
) ([]domain.HookEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cfg, err := s.Load(ctx)
	if err != nil {
		return nil, err
	}

	updated, err := fn(cfg)
	if err != nil {
		return nil, err
	}

	if err := s.store(ctx, updated); err != nil {
		return nil, err
	}

	entries := updated[hookType]
	if entries == nil {
		entries = []domain.HookEntry{}
	}
	return entries, nil
}

func (s *HookConfigService) store(ctx context.Context, cfg domain.HookConfig) error {
	if err := s.uiStore.Save(ctx, cfg); err != nil {
		logging.Logger.Error("Failed to save UI config", "error", err)
		return wrapStorage(err)
	}
	return nil
}

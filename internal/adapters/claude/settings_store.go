package claude

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"

	"github.com/renato0307/hotline/internal/config"
	"github.com/renato0307/hotline/internal/domain"
	"github.com/renato0307/hotline/internal/logging"
	"github.com/renato0307/hotline/internal/ports"
)

const hooksKey = "hooks"

var prettyOptions = &pretty.Options{Width: 80, Prefix: "", Indent: "  ", SortKeys: false}

// SettingsStore reads and writes the "hooks" key of the agent's settings.json.
// Every other key in the file is preserved byte for byte.
type SettingsStore struct {
	claudeDir  string
	projectDir string
}

// Verify interface compliance at compile time
var _ ports.ConsumerConfigStore = (*SettingsStore)(nil)

// NewSettingsStore creates a store for the global file in claudeDir and the
// project file under projectDir/.claude
func NewSettingsStore(claudeDir, projectDir string) *SettingsStore {
	return &SettingsStore{
		claudeDir:  claudeDir,
		projectDir: projectDir,
	}
}

// Path returns the settings.json location for target
func (s *SettingsStore) Path(target domain.ConfigTarget) string {
	return config.ConsumerSettingsPath(target, s.claudeDir, s.projectDir)
}

// ReadHooks implements ConsumerConfigStore.ReadHooks
func (s *SettingsStore) ReadHooks(ctx context.Context, target domain.ConfigTarget) (domain.ConsumerDocument, error) {
	path := s.Path(target)

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			logging.Logger.Debug("Agent settings not found, using empty hooks", "path", path)
			return domain.ConsumerDocument{}, nil
		}
		return nil, fmt.Errorf("%w: read %s: %v", domain.ErrStorage, path, err)
	}

	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%w: %s is not valid JSON", domain.ErrStorage, path)
	}

	hooks := gjson.GetBytes(data, hooksKey)
	if !hooks.Exists() || !hooks.IsObject() {
		return domain.ConsumerDocument{}, nil
	}

	doc := domain.ConsumerDocument{}
	if err := json.Unmarshal([]byte(hooks.Raw), &doc); err != nil {
		return nil, fmt.Errorf("%w: decode hooks in %s: %v", domain.ErrStorage, path, err)
	}
	return doc, nil
}

// WriteHooks implements ConsumerConfigStore.WriteHooks
func (s *SettingsStore) WriteHooks(ctx context.Context, target domain.ConfigTarget, doc domain.ConsumerDocument) (string, error) {
	path := s.Path(target)

	existing, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return "", fmt.Errorf("%w: read %s: %v", domain.ErrStorage, path, err)
	}
	if len(existing) == 0 || !gjson.ValidBytes(existing) {
		if len(existing) > 0 {
			logging.Logger.Warn("Agent settings are not valid JSON, rewriting", "path", path)
		}
		existing = []byte("{}")
	}

	if doc == nil {
		doc = domain.ConsumerDocument{}
	}
	hooks, err := json.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("failed to marshal hooks: %w", err)
	}

	updated, err := sjson.SetRawBytes(existing, hooksKey, hooks)
	if err != nil {
		return "", fmt.Errorf("%w: update hooks in %s: %v", domain.ErrStorage, path, err)
	}

	if err := config.WriteFileAtomic(path, pretty.PrettyOptions(updated, prettyOptions), 0644); err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrStorage, err)
	}

	logging.Logger.Info("Agent hooks written", "path", path, "hook_types", len(doc))
	return path, nil
}

package hookconfig

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/renato0307/hotline/internal/domain"
)

// Field names an editable HookEntry field
type Field string

const (
	FieldEnabled        Field = "enabled"
	FieldMatcher        Field = "matcher"
	FieldNotifications  Field = "notifications"
	FieldSounds         Field = "sounds"
	FieldTimeoutSeconds Field = "timeoutSeconds"
)

// ParseField validates a field name. "timeout" is accepted as an alias of
// timeoutSeconds.
func ParseField(s string) (Field, error) {
	switch Field(s) {
	case FieldEnabled, FieldMatcher, FieldNotifications, FieldSounds, FieldTimeoutSeconds:
		return Field(s), nil
	case legacyTimeoutKey:
		return FieldTimeoutSeconds, nil
	}
	return "", fmt.Errorf("%w: %q", domain.ErrInvalidField, s)
}

// AddEntry appends a default disabled entry to hookType's sequence. The input
// is left untouched; the updated configuration and sequence are returned.
func AddEntry(cfg domain.HookConfig, hookType domain.HookType) (domain.HookConfig, []domain.HookEntry) {
	out := cfg.Clone()
	out[hookType] = append(out[hookType], NewEntry())
	return out, out[hookType]
}

// RemoveEntry drops the entry at index. An out of range index is a no-op.
// Removing the last entry leaves an empty sequence.
func RemoveEntry(cfg domain.HookConfig, hookType domain.HookType, index int) domain.HookConfig {
	out := cfg.Clone()
	entries := out[hookType]
	if index < 0 || index >= len(entries) {
		return out
	}

	remaining := make([]domain.HookEntry, 0, len(entries)-1)
	remaining = append(remaining, entries[:index]...)
	remaining = append(remaining, entries[index+1:]...)
	out[hookType] = remaining
	return out
}

// UpdateField replaces one field of one entry. value must carry the field's
// Go type (bool, int, string or []string). Sounds always replace the whole
// slot list with a fresh copy. Timeout ranges are the caller's concern.
// An out of range index is a no-op.
func UpdateField(cfg domain.HookConfig, hookType domain.HookType, index int, field Field, value any) (domain.HookConfig, error) {
	out := cfg.Clone()
	entries := out[hookType]
	if index < 0 || index >= len(entries) {
		return out, nil
	}

	entry := entries[index]
	switch field {
	case FieldEnabled, FieldNotifications:
		b, ok := value.(bool)
		if !ok {
			return cfg, invalidValue(field, value)
		}
		if field == FieldEnabled {
			entry.Enabled = b
		} else {
			entry.Notifications = b
		}
	case FieldMatcher:
		s, ok := value.(string)
		if !ok {
			return cfg, invalidValue(field, value)
		}
		entry.Matcher = s
	case FieldTimeoutSeconds:
		n, ok := value.(int)
		if !ok {
			return cfg, invalidValue(field, value)
		}
		entry.TimeoutSeconds = n
	case FieldSounds:
		sounds, ok := value.([]string)
		if !ok {
			return cfg, invalidValue(field, value)
		}
		entry.Sounds = fitSlots(sounds)
	default:
		return cfg, fmt.Errorf("%w: %q", domain.ErrInvalidField, field)
	}

	entries[index] = entry
	return out, nil
}

func invalidValue(field Field, value any) error {
	return fmt.Errorf("%w: %s does not accept %T", domain.ErrInvalidField, field, value)
}

// DecodeFieldValue turns a JSON value into the Go type UpdateField expects.
// Timeouts are clamped while still a float, as an int conversion of a huge
// number is undefined.
func DecodeFieldValue(field Field, raw json.RawMessage) (any, error) {
	var err error
	switch field {
	case FieldEnabled, FieldNotifications:
		var b bool
		if err = json.Unmarshal(raw, &b); err == nil {
			return b, nil
		}
	case FieldMatcher:
		var s string
		if err = json.Unmarshal(raw, &s); err == nil {
			return s, nil
		}
	case FieldTimeoutSeconds:
		var f float64
		if err = json.Unmarshal(raw, &f); err == nil {
			return domain.ClampTimeoutFloat(f), nil
		}
	case FieldSounds:
		var sounds []string
		if err = json.Unmarshal(raw, &sounds); err == nil {
			return sounds, nil
		}
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidField, field)
	}
	return nil, fmt.Errorf("%w: %s: %v", domain.ErrInvalidField, field, err)
}

// ParseFieldValue turns command line text into the Go type UpdateField
// expects. Sounds are comma separated; empty items keep their slot.
func ParseFieldValue(field Field, text string) (any, error) {
	switch field {
	case FieldEnabled, FieldNotifications:
		b, err := strconv.ParseBool(text)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", domain.ErrInvalidField, field, err)
		}
		return b, nil
	case FieldMatcher:
		return text, nil
	case FieldTimeoutSeconds:
		n, err := strconv.Atoi(strings.TrimSpace(text))
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", domain.ErrInvalidField, field, err)
		}
		return n, nil
	case FieldSounds:
		if text == "" {
			return []string{}, nil
		}
		parts := strings.Split(text, ",")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		return parts, nil
	}
	return nil, fmt.Errorf("%w: %q", domain.ErrInvalidField, field)
}

// Package hookconfig reconciles the user-editable hook configuration.
//
// Stored UI documents come in several historical shapes: a flat object per
// hook type carrying a single "sound", or an array of entries carrying a
// three-slot "sounds" list. Normalize folds all of them into the canonical
// domain.HookConfig, and Compile turns that canonical form into the "hooks"
// document the coding agent reads from settings.json.
//
// Nothing in this package performs I/O or keeps state.
package hookconfig

import (
	"bytes"
	"encoding/json"
	"math"

	"github.com/renato0307/hotline/internal/domain"
)

// Legacy keys written by earlier versions of the UI
const (
	legacySoundKey   = "sound"
	legacyTimeoutKey = "timeout"
)

// NewEntry returns a disabled entry with every field at its default
func NewEntry() domain.HookEntry {
	return domain.HookEntry{
		Enabled:        false,
		Sounds:         make([]string, domain.SoundSlots),
		Notifications:  false,
		TimeoutSeconds: domain.DefaultTimeoutSeconds,
		Matcher:        "",
	}
}

// Defaults synthesizes one entry per hook type. An entry starts enabled when
// the consumer document already defines rules for its type, and inherits the
// matcher of the first such rule.
func Defaults(consumer domain.ConsumerDocument) domain.HookConfig {
	cfg := make(domain.HookConfig, len(domain.AllHookTypes()))
	for _, hookType := range domain.AllHookTypes() {
		entry := NewEntry()
		if rules, ok := consumer[hookType]; ok {
			entry.Enabled = true
			if len(rules) > 0 {
				entry.Matcher = rules[0].Matcher
			}
		}
		cfg[hookType] = []domain.HookEntry{entry}
	}
	return cfg
}

// Normalize converts whatever is persisted for the UI configuration into the
// canonical form. It never fails: absent, empty or malformed input degrades
// to Defaults(consumer), and malformed pieces degrade to default entries.
// Normalizing an already canonical document returns an equal value.
func Normalize(raw []byte, consumer domain.ConsumerDocument) domain.HookConfig {
	var doc map[string]json.RawMessage
	if len(bytes.TrimSpace(raw)) == 0 || json.Unmarshal(raw, &doc) != nil {
		return Defaults(consumer)
	}

	cfg := make(domain.HookConfig, len(doc))
	for key, value := range doc {
		hookType, err := domain.ParseHookType(key)
		if err != nil {
			continue
		}
		cfg[hookType] = normalizeEntries(value)
	}

	if len(cfg) == 0 {
		return Defaults(consumer)
	}
	return cfg
}

// normalizeEntries wraps single objects into a one element sequence
func normalizeEntries(value json.RawMessage) []domain.HookEntry {
	trimmed := bytes.TrimSpace(value)
	if len(trimmed) == 0 {
		return []domain.HookEntry{NewEntry()}
	}

	switch trimmed[0] {
	case '[':
		var items []json.RawMessage
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return []domain.HookEntry{NewEntry()}
		}
		entries := make([]domain.HookEntry, 0, len(items))
		for _, item := range items {
			entries = append(entries, normalizeEntry(item))
		}
		return entries
	case '{':
		return []domain.HookEntry{normalizeEntry(trimmed)}
	default:
		return []domain.HookEntry{NewEntry()}
	}
}

// normalizeEntry migrates one stored entry. Unknown keys and the legacy
// "sound"/"timeout" keys do not survive.
func normalizeEntry(raw json.RawMessage) domain.HookEntry {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil || fields == nil {
		return NewEntry()
	}

	entry := NewEntry()
	entry.Enabled = boolField(fields, "enabled")
	entry.Notifications = boolField(fields, "notifications")
	entry.Matcher = stringField(fields, "matcher")
	entry.Sounds = soundsField(fields)
	entry.TimeoutSeconds = timeoutField(fields)
	return entry
}

func boolField(fields map[string]json.RawMessage, key string) bool {
	var b bool
	if v, ok := fields[key]; ok {
		_ = json.Unmarshal(v, &b)
	}
	return b
}

func stringField(fields map[string]json.RawMessage, key string) string {
	var s string
	if v, ok := fields[key]; ok {
		_ = json.Unmarshal(v, &s)
	}
	return s
}

func numberField(fields map[string]json.RawMessage, key string) (float64, bool) {
	v, ok := fields[key]
	if !ok {
		return 0, false
	}
	var f float64
	if err := json.Unmarshal(v, &f); err != nil {
		return 0, false
	}
	return f, true
}

// soundsField prefers "sounds"; without it the legacy single "sound" moves
// into slot 0
func soundsField(fields map[string]json.RawMessage) []string {
	if v, ok := fields["sounds"]; ok {
		var slots []json.RawMessage
		if err := json.Unmarshal(v, &slots); err == nil && slots != nil {
			sounds := make([]string, 0, len(slots))
			for _, slot := range slots {
				var s string
				_ = json.Unmarshal(slot, &s)
				sounds = append(sounds, s)
			}
			return fitSlots(sounds)
		}
	}

	sounds := make([]string, domain.SoundSlots)
	sounds[0] = stringField(fields, legacySoundKey)
	return sounds
}

func timeoutField(fields map[string]json.RawMessage) int {
	seconds, ok := numberField(fields, "timeoutSeconds")
	if !ok {
		seconds, ok = numberField(fields, legacyTimeoutKey)
	}
	if !ok || math.Trunc(seconds) == 0 {
		return domain.DefaultTimeoutSeconds
	}
	return domain.ClampTimeoutFloat(seconds)
}

// fitSlots pads or truncates sounds to exactly SoundSlots entries, always
// returning a fresh slice
func fitSlots(sounds []string) []string {
	out := make([]string, domain.SoundSlots)
	copy(out, sounds)
	return out
}

// Marshal serializes a canonical configuration. Hook types are emitted in
// sorted key order so equal configurations produce identical bytes.
func Marshal(cfg domain.HookConfig) ([]byte, error) {
	out := make(domain.HookConfig, len(cfg))
	for hookType, entries := range cfg {
		if entries == nil {
			entries = []domain.HookEntry{}
		}
		out[hookType] = entries
	}
	return json.MarshalIndent(out, "", "  ")
}

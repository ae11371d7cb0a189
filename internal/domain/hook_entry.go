package domain

import "math"

const (
	// SoundSlots is the number of sound choices per entry
	SoundSlots = 3

	DefaultTimeoutSeconds = 60
	MaxTimeoutSeconds     = 300
	MinTimeoutSeconds     = 1
)

// HookEntry is one configuration rule for a hook type.
// A hook type may carry several entries, each with its own matcher and sounds.
type HookEntry struct {
	Enabled        bool     `json:"enabled"`
	Sounds         []string `json:"sounds"`
	Notifications  bool     `json:"notifications"`
	TimeoutSeconds int      `json:"timeoutSeconds"`
	Matcher        string   `json:"matcher"`
}

// AvailableSounds returns the non-empty sound slots in slot order
func (e HookEntry) AvailableSounds() []string {
	var sounds []string
	for _, s := range e.Sounds {
		if s != "" {
			sounds = append(sounds, s)
		}
	}
	return sounds
}

// Clone returns a copy that shares no slice with e
func (e HookEntry) Clone() HookEntry {
	c := e
	c.Sounds = append([]string(nil), e.Sounds...)
	return c
}

// HookConfig is the canonical UI configuration: every hook type maps to an
// ordered sequence of entries (insertion order = creation order).
type HookConfig map[HookType][]HookEntry

// Clone deep-copies the configuration
func (c HookConfig) Clone() HookConfig {
	out := make(HookConfig, len(c))
	for t, entries := range c {
		cp := make([]HookEntry, len(entries))
		for i, e := range entries {
			cp[i] = e.Clone()
		}
		out[t] = cp
	}
	return out
}

// ClampTimeout forces seconds into [MinTimeoutSeconds, MaxTimeoutSeconds]
func ClampTimeout(seconds int) int {
	if seconds < MinTimeoutSeconds {
		return MinTimeoutSeconds
	}
	if seconds > MaxTimeoutSeconds {
		return MaxTimeoutSeconds
	}
	return seconds
}

// ClampTimeoutFloat clamps a JSON number into the timeout range before
// converting it, so values beyond the int range still land on a bound.
// Fractions are truncated and NaN counts as the minimum.
func ClampTimeoutFloat(seconds float64) int {
	if math.IsNaN(seconds) {
		return MinTimeoutSeconds
	}
	seconds = math.Max(MinTimeoutSeconds, math.Min(MaxTimeoutSeconds, math.Trunc(seconds)))
	return int(seconds)
}

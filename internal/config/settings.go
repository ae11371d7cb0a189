package config

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/tidwall/sjson"
)

// Settings represents the structure of $HOTLINE_HOME/settings.json.
// Every field is optional; nil/empty means "use the flag default".
type Settings struct {
	ClaudeDir           string `json:"claude_dir,omitempty"`
	Debug               *bool  `json:"debug,omitempty"`
	HookBinary          string `json:"hook_binary,omitempty"`
	Host                string `json:"host,omitempty"`
	MaxLogFiles         *int   `json:"max_log_files,omitempty"`
	NativeNotifications *bool  `json:"native_notifications,omitempty"`
	Port                *int   `json:"port,omitempty"`
	ServerURL           string `json:"server_url,omitempty"`
	StaticDir           string `json:"static_dir,omitempty"`
}

// LoadSettings loads settings from $HOTLINE_HOME/settings.json (or ~/.hotline/settings.json if not set)
// Returns empty Settings if file doesn't exist (not an error)
func LoadSettings() (*Settings, error) {
	path := GetSettingsPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Settings{}, nil
		}
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	var settings Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("invalid settings.json: %w", err)
	}

	if settings.ClaudeDir != "" {
		settings.ClaudeDir = ExpandPath(settings.ClaudeDir)
	}
	if settings.StaticDir != "" {
		settings.StaticDir = ExpandPath(settings.StaticDir)
	}
	if settings.HookBinary != "" {
		settings.HookBinary = ExpandPath(settings.HookBinary)
	}

	return &settings, nil
}

// SaveSettings saves settings to $HOTLINE_HOME/settings.json
func SaveSettings(settings *Settings) error {
	path := GetSettingsPath()
	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := WriteFileAtomic(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}

	return nil
}

// Set assigns one option from its command line text. key is the
// settings.json name; the value is parsed to the option's type.
func (s *Settings) Set(key, value string) error {
	example := GetSettingsExample()
	sample, ok := example[key]
	if !ok {
		keys := make([]string, 0, len(example))
		for k := range example {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		return fmt.Errorf("unknown setting '%s'. Valid settings: %s", key, strings.Join(keys, ", "))
	}

	var typed any
	switch sample.(type) {
	case bool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%s expects true or false: %w", key, err)
		}
		typed = b
	case int:
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%s expects a number: %w", key, err)
		}
		typed = n
	default:
		typed = value
	}

	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}
	if data, err = sjson.SetBytes(data, key, typed); err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}

	var updated Settings
	if err := json.Unmarshal(data, &updated); err != nil {
		return fmt.Errorf("invalid value for %s: %w", key, err)
	}
	*s = updated
	return nil
}

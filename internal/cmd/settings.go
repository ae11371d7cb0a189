package cmd

import (
	"fmt"
	"sort"

	"github.com/renato0307/hotline/internal/config"
	"github.com/renato0307/hotline/internal/logging"
	"github.com/renato0307/hotline/internal/theme"
)

// SettingsCmd manages settings
type SettingsCmd struct {
	Meta SettingsMetaCmd `cmd:"meta" help:"Show settings file location and available options" default:"1"`
	Set  SettingsSetCmd  `cmd:"set" help:"Set one option in settings.json"`
}

// SettingsMetaCmd displays settings metadata
type SettingsMetaCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

// Run executes the meta command
func (s *SettingsMetaCmd) Run(cli *CLI) error {
	settingsFile := config.GetSettingsPath()
	example := config.GetSettingsExample()

	if s.Format == "json" {
		return printJSON(map[string]any{
			"settings_file": settingsFile,
			"format":        example,
		})
	}

	fmt.Fprintf(stdout, "%s %s\n\n", theme.LabelStyle.Render("Settings file:"), settingsFile)
	fmt.Fprintln(stdout, theme.SubtitleStyle.Render("Example settings.json:"))

	keys := make([]string, 0, len(example))
	for key := range example {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	t := newTable("KEY", "EXAMPLE")
	for _, key := range keys {
		t.Row(key, fmt.Sprintf("%v", example[key]))
	}
	fmt.Fprintln(stdout, t.String())

	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "Create or edit this file to configure hotline.")
	fmt.Fprintln(stdout, "All settings are optional and have sensible defaults.")
	return nil
}

// SettingsSetCmd sets one option
type SettingsSetCmd struct {
	Key   string `arg:"" help:"Option name (see 'hotline settings meta')"`
	Value string `arg:"" help:"New value"`
}

// Run executes the set command
func (s *SettingsSetCmd) Run(cli *CLI) error {
	logging.Logger.Debug("Setting option", "key", s.Key, "value", s.Value)

	settings, err := config.LoadSettings()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}
	if err := settings.Set(s.Key, s.Value); err != nil {
		return err
	}
	if err := config.SaveSettings(settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	success("Set '%s' to %s", s.Key, s.Value)
	return nil
}

package config

import (
	"reflect"
	"strings"
)

// GetSettingsExample uses reflection to generate example settings
// This automatically stays in sync when new fields are added to Settings
func GetSettingsExample() map[string]any {
	var s Settings
	t := reflect.TypeOf(s)
	example := make(map[string]any)

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		jsonTag := field.Tag.Get("json")
		if jsonTag == "" {
			continue
		}

		jsonName := strings.Split(jsonTag, ",")[0]
		example[jsonName] = generateExampleValue(field.Type, jsonName)
	}

	return example
}

// generateExampleValue creates appropriate example values based on type and field name
func generateExampleValue(t reflect.Type, fieldName string) any {
	if t.Kind() == reflect.Ptr {
		switch t.Elem().Kind() {
		case reflect.Bool:
			return fieldName == "native_notifications"
		case reflect.Int:
			switch fieldName {
			case "max_log_files":
				return 1000
			case "port":
				return DefaultPort
			}
			return 10
		}
	}

	if t.Kind() == reflect.String {
		switch fieldName {
		case "claude_dir":
			return "~/.claude"
		case "hook_binary":
			return "/usr/local/bin/hotline"
		case "host":
			return "0.0.0.0"
		case "server_url":
			return DefaultServerURL
		case "static_dir":
			return "~/hotline/frontend/dist"
		default:
			return "example"
		}
	}

	return nil
}

//go:build darwin

package sound

// playCommands plays files on macOS using afplay
func playCommands(path string) []command {
	return []command{
		{"afplay", []string{path}},
	}
}

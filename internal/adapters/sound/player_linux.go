//go:build linux

package sound

import (
	"path/filepath"
	"strings"
)

// playCommands plays files on Linux. paplay (PulseAudio) and aplay (ALSA)
// only understand wav, so mp3 goes through mpg123 or ffplay.
func playCommands(path string) []command {
	ffplay := command{"ffplay", []string{"-nodisp", "-autoexit", "-loglevel", "quiet", path}}

	if strings.EqualFold(filepath.Ext(path), ".mp3") {
		return []command{
			{"mpg123", []string{"-q", path}},
			ffplay,
			{"pw-play", []string{path}},
		}
	}

	return []command{
		{"paplay", []string{path}},
		{"aplay", []string{"-q", path}},
		{"pw-play", []string{path}},
		ffplay,
	}
}

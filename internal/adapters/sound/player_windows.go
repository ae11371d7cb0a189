//go:build windows

package sound

import (
	"fmt"
	"path/filepath"
	"strings"
)

// playCommands plays files on Windows using PowerShell
func playCommands(path string) []command {
	quoted := strings.ReplaceAll(path, "'", "''")

	if strings.EqualFold(filepath.Ext(path), ".wav") {
		script := fmt.Sprintf("(New-Object System.Media.SoundPlayer '%s').PlaySync()", quoted)
		return []command{{"powershell", []string{"-NoProfile", "-c", script}}}
	}

	script := fmt.Sprintf(
		"Add-Type -AssemblyName presentationCore; "+
			"$p = New-Object System.Windows.Media.MediaPlayer; "+
			"$p.Open([uri]'%s'); $p.Play(); "+
			"while (-not $p.NaturalDuration.HasTimeSpan) { Start-Sleep -Milliseconds 50 }; "+
			"Start-Sleep -Milliseconds $p.NaturalDuration.TimeSpan.TotalMilliseconds",
		quoted,
	)
	return []command{{"powershell", []string{"-NoProfile", "-c", script}}}
}

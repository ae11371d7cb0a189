package domain

import (
	"path/filepath"
	"strings"
	"time"
	"unicode"
)

// SoundAsset is an uploaded audio file, keyed by filename
type SoundAsset struct {
	Filename   string    `json:"filename"`
	SizeBytes  int64     `json:"sizeBytes"`
	ModifiedAt time.Time `json:"modifiedAt"`
}

// SoundExtensions lists the recognized audio file extensions (lowercase)
var SoundExtensions = []string{".mp3", ".wav"}

var soundContentTypes = map[string]string{
	".mp3": "audio/mpeg",
	".wav": "audio/wav",
}

// SoundContentType returns the MIME type served for name, or "" when name is
// not a sound file
func SoundContentType(name string) string {
	return soundContentTypes[strings.ToLower(filepath.Ext(name))]
}

// IsSoundFile reports whether name carries a recognized audio extension
func IsSoundFile(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, known := range SoundExtensions {
		if ext == known {
			return true
		}
	}
	return false
}

// SanitizeSoundFilename reduces an uploaded name to a safe base filename.
// Path components are stripped, spaces become underscores and other special
// characters are removed. Returns "" when nothing usable remains.
func SanitizeSoundFilename(name string) string {
	name = filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	if name == "." || name == ".." || name == "/" {
		return ""
	}

	var result strings.Builder
	lastWasUnderscore := false

	for _, r := range name {
		if unicode.IsLetter(r) || unicode.IsNumber(r) || r == '-' || r == '.' {
			result.WriteRune(r)
			lastWasUnderscore = false
		} else if r == '_' {
			result.WriteRune('_')
			lastWasUnderscore = true
		} else if unicode.IsSpace(r) || r == '(' || r == ')' {
			if !lastWasUnderscore && result.Len() > 0 {
				result.WriteRune('_')
				lastWasUnderscore = true
			}
		}
	}

	str := strings.Trim(result.String(), "_")
	if strings.Trim(str, ".") == "" {
		return ""
	}
	return str
}

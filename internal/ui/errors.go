package ui

import (
	"strings"
	"unicode/utf8"
)

const (
	maxErrorLines  = 2
	errorPrefix    = "Error: "
	truncationMark = "..."
	minLineWidth   = 10
)

// formatErrorForDisplay word-wraps err to at most maxErrorLines lines of
// maxWidth runes, the first one prefixed with "Error: ". Longer messages end
// with "...".
func formatErrorForDisplay(err error, maxWidth int) string {
	if err == nil {
		return ""
	}
	words := strings.Fields(err.Error())
	if len(words) == 0 {
		return errorPrefix + "unknown error"
	}

	width := max(maxWidth, minLineWidth)
	lineWidth := max(width-utf8.RuneCountInString(errorPrefix), minLineWidth)

	var lines []string
	var line strings.Builder
	truncated := false
	for _, word := range words {
		n := utf8.RuneCountInString(line.String())
		if n > 0 && n+1+utf8.RuneCountInString(word) > lineWidth {
			lines = append(lines, line.String())
			line.Reset()
			if len(lines) == maxErrorLines {
				truncated = true
				break
			}
			lineWidth = width
		}
		if line.Len() > 0 {
			line.WriteByte(' ')
		}
		line.WriteString(word)
	}
	if line.Len() > 0 {
		lines = append(lines, line.String())
	}

	if truncated {
		last := []rune(lines[len(lines)-1])
		if keep := width - utf8.RuneCountInString(truncationMark); len(last) > keep && keep > 0 {
			last = last[:keep]
		}
		lines[len(lines)-1] = string(last) + truncationMark
	}

	return errorPrefix + strings.Join(lines, "\n")
}

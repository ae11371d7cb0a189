package domain

import (
	"strings"
	"time"
)

// LogEntry is one hook trigger recorded in the ledger.
// ID and Timestamp are assigned by the ledger and never change.
type LogEntry struct {
	ID        int64     `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	SessionID string    `json:"sessionId"`
	HookType  HookType  `json:"hookType"`
	ToolName  *string   `json:"toolName"`
	Message   *string   `json:"message"`
}

// ToolNameOr returns the tool name or fallback when absent
func (e LogEntry) ToolNameOr(fallback string) string {
	if e.ToolName == nil || *e.ToolName == "" {
		return fallback
	}
	return *e.ToolName
}

// MessageOr returns the message or fallback when absent
func (e LogEntry) MessageOr(fallback string) string {
	if e.Message == nil || *e.Message == "" {
		return fallback
	}
	return *e.Message
}

// LogInput carries the caller-supplied fields of a new ledger record
type LogInput struct {
	SessionID string   `json:"sessionId"`
	HookType  HookType `json:"hookType"`
	ToolName  *string  `json:"toolName,omitempty"`
	Message   *string  `json:"message,omitempty"`
}

// LogFilter narrows ledger queries; empty fields are ignored and the rest
// are AND-combined
type LogFilter struct {
	HookType  HookType
	Keyword   string
	Limit     int
	Offset    int
	SessionID string
}

const (
	DefaultLogLimit = 100
	MaxLogLimit     = 1000
)

// Normalized applies the default limit and clamps limit/offset
func (f LogFilter) Normalized() LogFilter {
	if f.Limit <= 0 {
		f.Limit = DefaultLogLimit
	}
	if f.Limit > MaxLogLimit {
		f.Limit = MaxLogLimit
	}
	if f.Offset < 0 {
		f.Offset = 0
	}
	return f
}

// Matches reports whether entry passes the filter's hook type, session and
// keyword criteria. Limit and offset are ignored.
func (f LogFilter) Matches(entry LogEntry) bool {
	if f.HookType != "" && entry.HookType != f.HookType {
		return false
	}
	if f.SessionID != "" && entry.SessionID != f.SessionID {
		return false
	}
	if f.Keyword == "" {
		return true
	}
	keyword := FoldCase(f.Keyword)
	return strings.Contains(FoldCase(entry.MessageOr("")), keyword) ||
		strings.Contains(FoldCase(entry.ToolNameOr("")), keyword)
}

// FoldCase is the case folding keyword searches use. The ledger registers
// it with SQLite so stored and live entries match the same way.
func FoldCase(s string) string {
	return strings.ToLower(s)
}

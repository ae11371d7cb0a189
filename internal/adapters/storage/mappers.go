package storage

import (
	"github.com/renato0307/hotline/internal/domain"
)

// logModelToDomain converts a LogModel (GORM) to domain.LogEntry
func logModelToDomain(m LogModel) domain.LogEntry {
	return domain.LogEntry{
		HookType:  domain.HookType(m.HookType),
		ID:        m.ID,
		Message:   m.Message,
		SessionID: m.SessionID,
		Timestamp: m.Timestamp.UTC(),
		ToolName:  m.ToolName,
	}
}

// logModelsToDomain converts a slice of LogModel preserving order
func logModelsToDomain(models []LogModel) []domain.LogEntry {
	entries := make([]domain.LogEntry, 0, len(models))
	for _, m := range models {
		entries = append(entries, logModelToDomain(m))
	}
	return entries
}

// domainToLogModel converts a domain.LogInput to LogModel (GORM)
func domainToLogModel(in domain.LogInput) LogModel {
	return LogModel{
		HookType:  string(in.HookType),
		Message:   in.Message,
		SessionID: in.SessionID,
		ToolName:  in.ToolName,
	}
}

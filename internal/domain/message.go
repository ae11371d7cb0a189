package domain

// MessageType discriminates realtime channel messages
type MessageType string

const (
	MessageNewLog    MessageType = "newLog"
	MessageClearLogs MessageType = "clearLogs"
)

// Message is the realtime channel envelope
type Message struct {
	Type MessageType `json:"type"`
	Data *LogEntry   `json:"data,omitempty"`
}

// NewLogMessage wraps a committed ledger entry
func NewLogMessage(entry LogEntry) Message {
	return Message{Type: MessageNewLog, Data: &entry}
}

// ClearLogsMessage announces a bulk clear
func ClearLogsMessage() Message {
	return Message{Type: MessageClearLogs}
}

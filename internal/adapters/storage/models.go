package storage

import "time"

// LogModel is the GORM model for the logs table
type LogModel struct {
	HookType  string    `gorm:"not null;index:idx_logs_hook_type"`
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	Message   *string   `gorm:"default:null"`
	SessionID string    `gorm:"not null;default:'';index:idx_logs_session_id"`
	Timestamp time.Time `gorm:"not null;index:idx_logs_timestamp"`
	ToolName  *string   `gorm:"default:null"`
}

// TableName specifies the table name for GORM
func (LogModel) TableName() string { return "logs" }

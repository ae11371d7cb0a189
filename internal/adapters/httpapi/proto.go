package httpapi

import (
	"encoding/json"
	"time"

	"github.com/renato0307/hotline/internal/domain"
	"github.com/renato0307/hotline/internal/services"
)

// Error is the body of every failed request
type Error struct {
	Error string                  `json:"error"`
	Files []services.UploadResult `json:"files,omitempty"`
}

// Health is the body of GET /api/health
type Health struct {
	Status      string    `json:"status"`
	Subscribers int       `json:"subscribers"`
	Time        time.Time `json:"time"`
	Version     string    `json:"version"`
}

// HooksRequest is the body of POST /api/hooks
type HooksRequest struct {
	Hooks  domain.ConsumerDocument `json:"hooks"`
	Target string                  `json:"target,omitempty"`
}

// HooksResponse is returned by the consumer hooks endpoints
type HooksResponse struct {
	Hooks   domain.ConsumerDocument `json:"hooks"`
	Path    string                  `json:"path,omitempty"`
	Success bool                    `json:"success,omitempty"`
	Target  domain.ConfigTarget     `json:"target"`
}

// ApplyRequest is the body of POST /api/hooks/apply
type ApplyRequest struct {
	Target string `json:"target,omitempty"`
}

// FieldUpdate is the body of PATCH /api/hook-ui-config/{hookType}/entries/{index}
type FieldUpdate struct {
	Field string          `json:"field"`
	Value json.RawMessage `json:"value"`
}

// EntriesResponse carries a hook type's entry sequence after a mutation
type EntriesResponse struct {
	Entries  []domain.HookEntry `json:"entries"`
	HookType domain.HookType    `json:"hookType"`
}

// LogRequest is the body of POST /api/logs
type LogRequest struct {
	HookType  string  `json:"hookType"`
	Message   *string `json:"message,omitempty"`
	SessionID string  `json:"sessionId"`
	ToolName  *string `json:"toolName,omitempty"`
}

// LogResponse is returned after recording an entry
type LogResponse struct {
	ID      int64           `json:"id"`
	Log     domain.LogEntry `json:"log"`
	Success bool            `json:"success"`
}

// ClearResponse is the body of DELETE /api/logs
type ClearResponse struct {
	Deleted int64 `json:"deleted"`
	Success bool  `json:"success"`
}

// UploadResponse is the body of POST /api/sounds
type UploadResponse struct {
	Files   []services.UploadResult `json:"files"`
	Success bool                    `json:"success"`
}

// SuccessResponse acknowledges requests without a payload
type SuccessResponse struct {
	Success bool `json:"success"`
}

package services

import (
	"io"

	"github.com/renato0307/hotline/internal/domain"
)

// ApplyResult describes a compiled configuration written to the agent
type ApplyResult struct {
	Document domain.ConsumerDocument
	Path     string
	Target   domain.ConfigTarget
}

// UploadFile is one file of a sound upload batch
type UploadFile struct {
	Content     io.Reader
	ContentType string
	Filename    string
}

// UploadResult reports the outcome of one uploaded file. Error is empty on
// success.
type UploadResult struct {
	Error        string             `json:"error,omitempty"`
	Filename     string             `json:"filename,omitempty"`
	OriginalName string             `json:"originalName"`
	Sound        *domain.SoundAsset `json:"sound,omitempty"`
}

// OK reports whether the file was stored
func (r UploadResult) OK() bool {
	return r.Error == ""
}

package services

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/renato0307/hotline/internal/domain"
	"github.com/renato0307/hotline/internal/logging"
	"github.com/renato0307/hotline/internal/ports"
)

// MaxSoundSize is the largest accepted upload
const MaxSoundSize = 10 << 20

var allowedSoundTypes = map[string]bool{
	"audio/mp3":  true,
	"audio/mpeg": true,
	"audio/wav":  true,
}

// SoundService manages uploaded sound assets
type SoundService struct {
	store ports.SoundStore
}

// NewSoundService creates a new SoundService
func NewSoundService(store ports.SoundStore) *SoundService {
	return &SoundService{
		store: store,
	}
}

// List returns stored sounds sorted by filename
func (s *SoundService) List(ctx context.Context) ([]domain.SoundAsset, error) {
	assets, err := s.store.List(ctx)
	if err != nil {
		logging.Logger.Error("Failed to list sounds", "error", err)
		return nil, wrapStorage(err)
	}
	return assets, nil
}

// Upload stores each acceptable file. Files are judged independently: a
// rejected file does not stop the rest of the batch.
func (s *SoundService) Upload(ctx context.Context, files []UploadFile) []UploadResult {
	results := make([]UploadResult, 0, len(files))
	for _, file := range files {
		results = append(results, s.uploadOne(ctx, file))
	}
	return results
}

func (s *SoundService) uploadOne(ctx context.Context, file UploadFile) UploadResult {
	result := UploadResult{OriginalName: file.Filename}

	reject := func(reason string) UploadResult {
		logging.Logger.Warn("Sound upload rejected", "name", file.Filename, "reason", reason)
		result.Error = reason
		return result
	}

	if !allowedContentType(file.ContentType) {
		return reject(fmt.Sprintf("unsupported content type %q", file.ContentType))
	}

	name := domain.SanitizeSoundFilename(file.Filename)
	if name == "" || !domain.IsSoundFile(name) {
		return reject("filename must end in .mp3 or .wav")
	}
	result.Filename = name

	if file.Content == nil {
		return reject("empty upload")
	}
	data, err := io.ReadAll(io.LimitReader(file.Content, MaxSoundSize+1))
	if err != nil {
		return reject("failed to read upload")
	}
	if len(data) > MaxSoundSize {
		return reject(fmt.Sprintf("file exceeds %s", humanize.IBytes(MaxSoundSize)))
	}

	asset, err := s.store.Save(ctx, name, bytes.NewReader(data))
	if err != nil {
		logging.Logger.Error("Failed to store sound", "name", name, "error", err)
		result.Error = "failed to store sound"
		return result
	}

	result.Sound = &asset
	return result
}

// Delete removes a stored sound
func (s *SoundService) Delete(ctx context.Context, filename string) error {
	if err := s.store.Delete(ctx, filename); err != nil {
		return wrapStorage(err)
	}
	return nil
}

// Open returns a stored sound for streaming
func (s *SoundService) Open(ctx context.Context, filename string) (io.ReadSeekCloser, domain.SoundAsset, error) {
	rc, asset, err := s.store.Open(ctx, filename)
	if err != nil {
		return nil, domain.SoundAsset{}, wrapStorage(err)
	}
	return rc, asset, nil
}

func allowedContentType(contentType string) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	return allowedSoundTypes[strings.ToLower(mediaType)]
}

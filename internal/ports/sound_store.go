package ports

import (
	"context"
	"io"

	"github.com/renato0307/hotline/internal/domain"
)

// SoundStore keeps uploaded audio files, keyed by filename
type SoundStore interface {
	// List returns the recognized audio files
	List(ctx context.Context) ([]domain.SoundAsset, error)

	// Save writes (or overwrites) filename with the content of r
	Save(ctx context.Context, filename string, r io.Reader) (domain.SoundAsset, error)

	// Delete removes filename, domain.ErrNotFound when it does not exist
	Delete(ctx context.Context, filename string) error

	// Open returns the file for reading, domain.ErrNotFound when missing
	Open(ctx context.Context, filename string) (io.ReadSeekCloser, domain.SoundAsset, error)
}

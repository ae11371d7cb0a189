package ports

import "context"

// SoundPlayer plays a sound asset by filename
type SoundPlayer interface {
	Play(ctx context.Context, filename string) error
}

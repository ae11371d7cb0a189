package services

import (
	"errors"
	"fmt"

	"github.com/renato0307/hotline/internal/domain"
)

// wrapStorage marks err as a storage failure unless it already carries a
// domain sentinel
func wrapStorage(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, domain.ErrStorage),
		errors.Is(err, domain.ErrNotFound),
		errors.Is(err, domain.ErrInvalidField),
		errors.Is(err, domain.ErrInvalidUpload),
		errors.Is(err, domain.ErrUnknownHookType):
		return err
	default:
		return fmt.Errorf("%w: %v", domain.ErrStorage, err)
	}
}

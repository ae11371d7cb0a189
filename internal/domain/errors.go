package domain

import "errors"

var (
	ErrInvalidField    = errors.New("invalid field")
	ErrInvalidUpload   = errors.New("invalid upload")
	ErrNotFound        = errors.New("not found")
	ErrStorage         = errors.New("storage failure")
	ErrUnknownHookType = errors.New("unknown hook type")
)

package domain

import "errors"

var (
	ErrZeroDuration      = errors.New("timed mode needs a duration greater than zero")
	ErrAlreadyRunning    = errors.New("session already running")
	ErrNotRunning        = errors.New("no running session")
	ErrInvalidMode       = errors.New("invalid mode")
	ErrInvalidVariant    = errors.New("invalid variant")
	ErrUnsupportedLocale = errors.New("unsupported locale")
)

package domain

import "errors"

// Domain errors.
var (
	ErrKeyNotFound        = errors.New("key not found")
	ErrTaskNotFound       = errors.New("task not found")
	ErrEmptyText          = errors.New("task text must not be empty")
	ErrCorruptStore       = errors.New("store file is corrupted")
	ErrMalformedSnapshot  = errors.New("malformed persisted snapshot")
	ErrPersistenceWrite   = errors.New("persistence write failed")
	ErrUnknownBackend     = errors.New("unknown store backend")
	ErrInvalidTheme       = errors.New("invalid theme (expected dark or light)")
	ErrInvalidTaskID      = errors.New("invalid task ID")
	ErrConfigExists       = errors.New("config file already exists")
	ErrUnsupportedFormat  = errors.New("unsupported export format")
	ErrStoreNotConfigured = errors.New("store path is not configured")
)

package utils

import "errors"

var (
	ErrInvalidInput        = errors.New("invalid input")
	ErrSettingsUnavailable = errors.New("ai settings unavailable")
	ErrGenerationFailed    = errors.New("text generation failed")
	ErrSchemaViolation     = errors.New("model output violates recommendation schema")
	ErrSessionNotFound     = errors.New("session not found")
	ErrAccountNotFound     = errors.New("account not found")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrEmailAlreadyExists  = errors.New("email already exists")
	ErrDatabaseError       = errors.New("database error")
	ErrStorageError        = errors.New("object storage error")
)

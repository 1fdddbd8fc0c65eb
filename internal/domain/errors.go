package domain

import "errors"

// NotAuthenticatedMessage is the user-facing failure carried by envelopes when
// no identity is available.
const NotAuthenticatedMessage = "User not authenticated"

var (
	ErrNotAuthenticated     = errors.New("user not authenticated")
	ErrInconsistentSession  = errors.New("session identity has no loadable profile")
	ErrValidation           = errors.New("validation failed")
	ErrStorageKeyNotFound   = errors.New("storage key not found")
	ErrPromptRequired       = errors.New("prompt is required")
	ErrSourceImageRequired  = errors.New("source image is required")
	ErrUnsupportedMediaType = errors.New("unsupported media type")
)

package errors

import (
	"errors"
	"fmt"
)

var (
	// Admission failures. Join is rejected outright; no session is created.
	ErrInvalidToken       = errors.New("invalid join token")
	ErrLimitExceeded      = errors.New("upload slot limit exceeded")
	ErrStorageUnavailable = errors.New("temporary storage unavailable")

	// ErrInProgress is returned by consume while the upload has not yet
	// reached its size limit. The session stays active; retrying is the
	// caller's decision.
	ErrInProgress = errors.New("upload still in progress")

	// ErrCompleted is returned for a chunk that arrives after the upload
	// already reached its size limit.
	ErrCompleted = errors.New("upload already completed")

	ErrSessionNotFound = errors.New("session not found")
	ErrSessionClosed   = errors.New("session closed")
)

// SizeLimitError rejects a chunk that would push the uploaded total past
// the configured maximum. The whole chunk is refused; nothing is truncated.
type SizeLimitError struct {
	Limit int64
}

func (e *SizeLimitError) Error() string {
	return fmt.Sprintf("file size limit exceeded (limit %d bytes)", e.Limit)
}

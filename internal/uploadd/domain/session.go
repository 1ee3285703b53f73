package domain

import (
	"fmt"
	"time"
)

// OwnerRef identifies the coordinating process that holds the upload slot.
// Never mutated after admission; liveness monitoring is scoped to it.
type OwnerRef string

// SlotConfig is the per-slot configuration granted at admission time.
type SlotConfig struct {
	MaxFileSize  int64         // Upper bound on total bytes, fixed at admission
	ChunkTimeout time.Duration // Maximum idle gap between chunk arrivals
}

// Validate ensures a granted slot configuration is usable
func (c SlotConfig) Validate() error {
	if c.MaxFileSize <= 0 {
		return fmt.Errorf("max file size must be positive, got %d", c.MaxFileSize)
	}
	if c.ChunkTimeout <= 0 {
		return fmt.Errorf("chunk timeout must be positive, got %s", c.ChunkTimeout)
	}
	return nil
}

// FileInfo describes a finished upload handed to a consumer's transform.
type FileInfo struct {
	Path string // Location of the temporary file
	Size int64  // Total bytes written
}

// Entry is the caller-supplied descriptor for what was uploaded.
// The session never interprets it; it is passed through to the transform.
type Entry struct {
	Name      string
	MediaType string
	ClientRef string
}

// TransformFunc is applied to the finished file during consume. Its result
// is returned to the consume caller; the session terminates afterwards
// regardless of the transform's outcome.
type TransformFunc func(file FileInfo, entry Entry) (interface{}, error)

// CloseReason records which terminal transition ended a session.
type CloseReason string

const (
	CloseConsumed     CloseReason = "consumed"
	CloseCancelled    CloseReason = "cancelled"
	CloseTimedOut     CloseReason = "timed_out"
	CloseOwnerDied    CloseReason = "owner_died"
	CloseSizeRejected CloseReason = "size_rejected"
	CloseWriteFailed  CloseReason = "write_failed"
)

// Snapshot is a point-in-time view of a live session's state.
type Snapshot struct {
	ID       string
	Owner    OwnerRef
	Uploaded int64
	MaxSize  int64
	Done     bool
}

// Termination is delivered by the liveness monitor when an owner process
// goes away. A nil Err means the owner terminated normally.
type Termination struct {
	Err error
}

package session

import (
	"context"
	"fmt"
	"os"
	"time"

	"uploadd/internal/uploadd/domain"
	errs "uploadd/pkg/errors"
	"uploadd/pkg/logger"
)

// Monitor lets a session observe termination of its owning process.
// Watch delivers at most one Termination; the returned func stops watching.
type Monitor interface {
	Watch(owner domain.OwnerRef) (<-chan domain.Termination, func())
}

// Session handles exactly one file's ingestion from join to close-out.
//
// All inputs (chunk frames, timer expiry, owner-death notifications,
// consume and cancel requests) are serialized through a single inbox
// processed by one goroutine, so state mutations never race. Chunks that
// arrive before a consume call are fully applied before the consume is
// evaluated, which is what makes the single-shot handoff race-free.
type Session struct {
	id    string
	owner domain.OwnerRef
	cfg   domain.SlotConfig

	path string
	file *os.File

	inbox  chan interface{}
	closed chan struct{}

	// actor-goroutine state, never touched from outside run()
	uploaded int64
	done     bool
	timer    *time.Timer

	monitor   Monitor
	ownerDown <-chan domain.Termination
	stopWatch func()
	onClose   func(domain.CloseReason)

	logger *logger.Logger
}

type chunkMsg struct {
	payload []byte
	reply   chan error
}

type consumeMsg struct {
	entry     domain.Entry
	transform domain.TransformFunc
	reply     chan consumeResult
}

type consumeResult struct {
	value interface{}
	err   error
}

type cancelMsg struct {
	reply chan struct{}
}

type snapshotMsg struct {
	reply chan domain.Snapshot
}

// New creates a session over an already-admitted upload slot. The actor
// does not run until Start; callers register the session wherever
// lookups happen first, so the close hook can always undo the
// registration. The session takes exclusive ownership of file; every
// exit path closes it. onClose runs exactly once, after the handle and
// timer are released, and may be nil.
func New(id string, owner domain.OwnerRef, cfg domain.SlotConfig, path string, file *os.File, monitor Monitor, onClose func(domain.CloseReason)) *Session {
	return &Session{
		id:      id,
		owner:   owner,
		cfg:     cfg,
		path:    path,
		file:    file,
		inbox:   make(chan interface{}),
		closed:  make(chan struct{}),
		monitor: monitor,
		onClose: onClose,
		logger:  logger.WithFields("component", "session", "sessionId", id, "owner", string(owner)),
	}
}

// Start attaches the owner watch and launches the actor goroutine. The
// idle timer and owner-death handling only run from here on. Must be
// called exactly once.
func (s *Session) Start() {
	if s.monitor != nil {
		s.ownerDown, s.stopWatch = s.monitor.Watch(s.owner)
	} else {
		s.stopWatch = func() {}
	}

	go s.run()

	s.logger.Debug("session started", "maxFileSize", s.cfg.MaxFileSize, "chunkTimeout", s.cfg.ChunkTimeout)
}

// ID returns the session identifier.
func (s *Session) ID() string {
	return s.id
}

// Owner returns the owning process reference.
func (s *Session) Owner() domain.OwnerRef {
	return s.owner
}

// Closed is closed once the session has fully terminated.
func (s *Session) Closed() <-chan struct{} {
	return s.closed
}

// Chunk applies one binary frame to the upload. A nil return acknowledges
// the chunk. A *errs.SizeLimitError means the chunk would overshoot the
// limit; the session is terminated and the partial file abandoned.
func (s *Session) Chunk(ctx context.Context, payload []byte) error {
	reply := make(chan error, 1)

	select {
	case s.inbox <- chunkMsg{payload: payload, reply: reply}:
	case <-s.closed:
		return errs.ErrSessionClosed
	case <-ctx.Done():
		return ctx.Err()
	}

	select {
	case err := <-reply:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Consume hands the completed file to the caller's transform and
// terminates the session. While the upload is still in progress it
// returns errs.ErrInProgress and leaves the session untouched; retrying
// is the caller's decision. Only the first consume that observes the
// completed upload wins; the session is gone for everyone afterwards.
func (s *Session) Consume(ctx context.Context, entry domain.Entry, transform domain.TransformFunc) (interface{}, error) {
	reply := make(chan consumeResult, 1)

	select {
	case s.inbox <- consumeMsg{entry: entry, transform: transform, reply: reply}:
	case <-s.closed:
		return nil, errs.ErrSessionClosed
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	select {
	case res := <-reply:
		return res.value, res.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Cancel aborts the upload. It always succeeds from the caller's point of
// view; the acknowledgment is sent before the session tears down. A
// cancel against an already-closed session is a no-op.
func (s *Session) Cancel(ctx context.Context) error {
	reply := make(chan struct{}, 1)

	select {
	case s.inbox <- cancelMsg{reply: reply}:
	case <-s.closed:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}

	select {
	case <-reply:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Snapshot reports the session's current progress.
func (s *Session) Snapshot(ctx context.Context) (domain.Snapshot, error) {
	reply := make(chan domain.Snapshot, 1)

	select {
	case s.inbox <- snapshotMsg{reply: reply}:
	case <-s.closed:
		return domain.Snapshot{}, errs.ErrSessionClosed
	case <-ctx.Done():
		return domain.Snapshot{}, ctx.Err()
	}

	select {
	case snap := <-reply:
		return snap, nil
	case <-ctx.Done():
		return domain.Snapshot{}, ctx.Err()
	}
}

func (s *Session) run() {
	// the idle timer covers the gap between join and the first chunk too
	s.timer = time.NewTimer(s.cfg.ChunkTimeout)

	for {
		select {
		case m := <-s.inbox:
			if s.handle(m) {
				return
			}

		case <-s.timer.C:
			s.logger.Warn("no chunk arrived within idle timeout, terminating session",
				"chunkTimeout", s.cfg.ChunkTimeout, "uploaded", s.uploaded)
			s.closeOut(domain.CloseTimedOut)
			return

		case t := <-s.ownerDown:
			if t.Err != nil {
				s.logger.Error("owner process terminated abnormally", "error", t.Err)
			} else {
				s.logger.Debug("owner process terminated normally")
			}
			s.closeOut(domain.CloseOwnerDied)
			return
		}
	}
}

// handle processes one inbox message; returns true when the session
// reached a terminal state and the actor must exit.
func (s *Session) handle(m interface{}) bool {
	switch msg := m.(type) {
	case chunkMsg:
		return s.handleChunk(msg)

	case consumeMsg:
		return s.handleConsume(msg)

	case cancelMsg:
		// ack before teardown; cancel never fails
		msg.reply <- struct{}{}
		s.closeOut(domain.CloseCancelled)
		return true

	case snapshotMsg:
		msg.reply <- domain.Snapshot{
			ID:       s.id,
			Owner:    s.owner,
			Uploaded: s.uploaded,
			MaxSize:  s.cfg.MaxFileSize,
			Done:     s.done,
		}
		return false

	default:
		s.logger.Warn("unknown message in session inbox", "type", fmt.Sprintf("%T", m))
		return false
	}
}

func (s *Session) handleChunk(msg chunkMsg) bool {
	if s.done {
		msg.reply <- errs.ErrCompleted
		return false
	}

	// idle timeout restarts on every chunk arrival, not on a wall clock
	s.resetTimer()

	n := int64(len(msg.payload))
	if s.uploaded+n > s.cfg.MaxFileSize {
		s.logger.Warn("chunk would exceed file size limit, rejecting",
			"chunkSize", n, "uploaded", s.uploaded, "limit", s.cfg.MaxFileSize)
		msg.reply <- &errs.SizeLimitError{Limit: s.cfg.MaxFileSize}
		s.closeOut(domain.CloseSizeRejected)
		return true
	}

	if _, err := s.file.Write(msg.payload); err != nil {
		s.logger.Error("failed to write chunk", "error", err)
		msg.reply <- fmt.Errorf("failed to write chunk: %w", err)
		s.closeOut(domain.CloseWriteFailed)
		return true
	}

	s.uploaded += n
	if s.uploaded == s.cfg.MaxFileSize {
		s.complete()
	}

	msg.reply <- nil
	return false
}

// complete closes the handle and marks the upload done. The session stays
// alive awaiting consume, cancel or owner termination.
func (s *Session) complete() {
	s.stopTimer()
	if err := s.file.Close(); err != nil {
		s.logger.Warn("failed to close completed upload file", "error", err)
	}
	s.file = nil
	s.done = true

	s.logger.Info("upload completed", "bytes", s.uploaded, "path", s.path)
}

func (s *Session) handleConsume(msg consumeMsg) bool {
	if !s.done {
		msg.reply <- consumeResult{err: errs.ErrInProgress}
		return false
	}

	value, err := msg.transform(domain.FileInfo{Path: s.path, Size: s.uploaded}, msg.entry)
	msg.reply <- consumeResult{value: value, err: err}

	s.closeOut(domain.CloseConsumed)
	return true
}

// closeOut is the single convergence point for every terminal transition.
// It releases the handle and timer unconditionally, stops the owner
// watch, runs the close hook and only then publishes termination.
func (s *Session) closeOut(reason domain.CloseReason) {
	s.stopTimer()

	if s.file != nil {
		if err := s.file.Close(); err != nil {
			s.logger.Warn("failed to close upload file", "error", err)
		}
		s.file = nil
	}

	s.stopWatch()

	if s.onClose != nil {
		s.onClose(reason)
	}

	close(s.closed)

	s.logger.Debug("session closed", "reason", string(reason), "uploaded", s.uploaded)
}

func (s *Session) resetTimer() {
	if !s.timer.Stop() {
		select {
		case <-s.timer.C:
		default:
		}
	}
	s.timer.Reset(s.cfg.ChunkTimeout)
}

func (s *Session) stopTimer() {
	if !s.timer.Stop() {
		select {
		case <-s.timer.C:
		default:
		}
	}
}

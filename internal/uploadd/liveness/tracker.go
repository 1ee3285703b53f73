package liveness

import (
	"sync"

	"uploadd/internal/uploadd/domain"
	"uploadd/pkg/logger"
)

// Tracker observes owner processes for termination. Transports mark an
// owner Up when its control channel is established and Down when it goes
// away; sessions Watch their owner and receive a single Termination.
//
// Watch against an owner that is already down delivers immediately, so
// late subscribers never hang on a dead owner. Records are reference
// counted by Up and pruned when the last transport releases its
// reference, so the map does not grow with every owner ever seen.
type Tracker struct {
	mu     sync.Mutex
	owners map[domain.OwnerRef]*ownerEntry
	logger *logger.Logger
}

type ownerEntry struct {
	watchers map[chan domain.Termination]struct{}
	down     *domain.Termination
	refs     int
}

func NewTracker() *Tracker {
	return &Tracker{
		owners: make(map[domain.OwnerRef]*ownerEntry),
		logger: logger.WithField("component", "liveness-tracker"),
	}
}

// Up registers an owner as alive and takes a reference on its record.
// The returned release func gives the reference back; the record is
// pruned when the last reference goes. Up for an owner that was
// previously marked down resets the record for a fresh incarnation,
// and releases belonging to the dead incarnation cannot touch it.
func (t *Tracker) Up(owner domain.OwnerRef) func() {
	t.mu.Lock()
	defer t.mu.Unlock()

	entry, exists := t.owners[owner]
	if !exists || entry.down != nil {
		entry = &ownerEntry{watchers: make(map[chan domain.Termination]struct{})}
		t.owners[owner] = entry
		t.logger.Debug("owner registered", "owner", string(owner))
	}
	entry.refs++

	var once sync.Once
	return func() {
		once.Do(func() {
			t.mu.Lock()
			defer t.mu.Unlock()

			entry.refs--
			if entry.refs <= 0 && t.owners[owner] == entry {
				delete(t.owners, owner)
				t.logger.Debug("owner record pruned", "owner", string(owner))
			}
		})
	}
}

// Down marks an owner as terminated and notifies every watcher. A nil err
// means the owner finished normally. Down for an unknown or already-down
// owner is a no-op.
func (t *Tracker) Down(owner domain.OwnerRef, err error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	entry, exists := t.owners[owner]
	if !exists || entry.down != nil {
		return
	}

	termination := domain.Termination{Err: err}
	entry.down = &termination

	for ch := range entry.watchers {
		// watcher channels are buffered; delivery never blocks
		ch <- termination
	}
	entry.watchers = make(map[chan domain.Termination]struct{})

	if err != nil {
		t.logger.Warn("owner terminated abnormally", "owner", string(owner), "error", err)
	} else {
		t.logger.Debug("owner terminated", "owner", string(owner))
	}
}

// Watch subscribes to an owner's termination. The returned channel
// delivers at most one Termination; the cancel func detaches the watcher.
// Watching an owner the tracker has never seen treats the owner as alive
// until Down is called for it.
func (t *Tracker) Watch(owner domain.OwnerRef) (<-chan domain.Termination, func()) {
	ch := make(chan domain.Termination, 1)

	t.mu.Lock()
	defer t.mu.Unlock()

	entry, exists := t.owners[owner]
	if !exists {
		entry = &ownerEntry{watchers: make(map[chan domain.Termination]struct{})}
		t.owners[owner] = entry
	}

	if entry.down != nil {
		ch <- *entry.down
		return ch, func() {}
	}

	entry.watchers[ch] = struct{}{}

	cancel := func() {
		t.mu.Lock()
		defer t.mu.Unlock()
		if e, ok := t.owners[owner]; ok {
			delete(e.watchers, ch)
		}
	}

	return ch, cancel
}

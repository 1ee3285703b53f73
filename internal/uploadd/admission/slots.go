package admission

import (
	"sync"

	"uploadd/internal/uploadd/domain"
	errs "uploadd/pkg/errors"
	"uploadd/pkg/logger"
)

// CountingSlots is an in-memory SlotRegistry enforcing a per-owner cap on
// concurrent upload slots. Every granted slot carries the same configured
// limits; per-owner overrides belong to whatever system issues tokens.
type CountingSlots struct {
	maxPerOwner int
	cfg         domain.SlotConfig

	mu    sync.Mutex
	held  map[domain.OwnerRef]map[string]struct{}
	total int

	logger *logger.Logger
}

func NewCountingSlots(maxPerOwner int, cfg domain.SlotConfig) *CountingSlots {
	return &CountingSlots{
		maxPerOwner: maxPerOwner,
		cfg:         cfg,
		held:        make(map[domain.OwnerRef]map[string]struct{}),
		logger:      logger.WithField("component", "slot-registry"),
	}
}

// Acquire grants a slot for the owner or fails with ErrLimitExceeded.
func (s *CountingSlots) Acquire(owner domain.OwnerRef, ref string) (domain.SlotConfig, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	refs, exists := s.held[owner]
	if !exists {
		refs = make(map[string]struct{})
		s.held[owner] = refs
	}

	if len(refs) >= s.maxPerOwner {
		s.logger.Warn("slot limit reached for owner",
			"owner", string(owner), "held", len(refs), "max", s.maxPerOwner)
		return domain.SlotConfig{}, errs.ErrLimitExceeded
	}

	refs[ref] = struct{}{}
	s.total++

	s.logger.Debug("slot acquired", "owner", string(owner), "ref", ref, "held", len(refs), "totalHeld", s.total)
	return s.cfg, nil
}

// Release frees a previously granted slot. Unknown refs are ignored so
// close-out paths can release unconditionally.
func (s *CountingSlots) Release(owner domain.OwnerRef, ref string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	refs, exists := s.held[owner]
	if !exists {
		return
	}
	if _, held := refs[ref]; !held {
		return
	}

	delete(refs, ref)
	s.total--
	if len(refs) == 0 {
		delete(s.held, owner)
	}

	s.logger.Debug("slot released", "owner", string(owner), "ref", ref, "held", len(refs), "totalHeld", s.total)
}

// Held reports how many slots the owner currently holds.
func (s *CountingSlots) Held(owner domain.OwnerRef) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.held[owner])
}

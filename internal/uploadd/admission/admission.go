package admission

import (
	"os"

	"uploadd/internal/uploadd/domain"
	errs "uploadd/pkg/errors"
	"uploadd/pkg/logger"
)

// TokenVerifier maps an opaque join token to the owning process identity
// and a correlation reference for the granted slot.
type TokenVerifier interface {
	Verify(token string) (domain.OwnerRef, string, error)
}

// SlotRegistry tracks which logical upload slots exist per owner. Acquire
// grants a slot and its configuration or fails; Release must be called on
// every close-out path of a granted slot.
type SlotRegistry interface {
	Acquire(owner domain.OwnerRef, ref string) (domain.SlotConfig, error)
	Release(owner domain.OwnerRef, ref string)
}

// TempStore allocates a fresh, exclusively-writable temporary file.
type TempStore interface {
	Allocate() (string, *os.File, error)
}

// Grant is everything a successful join yields: the admitted owner, the
// slot, and an open exclusive temp file.
type Grant struct {
	Owner  domain.OwnerRef
	Ref    string
	Config domain.SlotConfig
	Path   string
	File   *os.File
}

// Admitter runs the join handshake: token verification, slot acquisition
// and temp file allocation, in that order. Any failure unwinds what was
// already taken; a rejected join leaves no partial state behind.
type Admitter struct {
	tokens TokenVerifier
	slots  SlotRegistry
	store  TempStore
	logger *logger.Logger
}

func NewAdmitter(tokens TokenVerifier, slots SlotRegistry, store TempStore) *Admitter {
	return &Admitter{
		tokens: tokens,
		slots:  slots,
		store:  store,
		logger: logger.WithField("component", "admitter"),
	}
}

// Admit performs the full join handshake for a token.
func (a *Admitter) Admit(token string) (*Grant, error) {
	owner, ref, err := a.tokens.Verify(token)
	if err != nil {
		a.logger.Warn("join rejected, token verification failed", "error", err)
		return nil, err
	}

	log := a.logger.WithFields("owner", string(owner), "ref", ref)

	cfg, err := a.slots.Acquire(owner, ref)
	if err != nil {
		log.Warn("join rejected, no slot granted", "error", err)
		return nil, err
	}

	path, file, err := a.store.Allocate()
	if err != nil {
		// the slot was already taken; give it back before failing the join
		a.slots.Release(owner, ref)
		log.Error("join rejected, temp file allocation failed", "error", err)
		return nil, errs.ErrStorageUnavailable
	}

	log.Debug("join admitted", "path", path,
		"maxFileSize", cfg.MaxFileSize, "chunkTimeout", cfg.ChunkTimeout)

	return &Grant{
		Owner:  owner,
		Ref:    ref,
		Config: cfg,
		Path:   path,
		File:   file,
	}, nil
}

// Release returns a grant's slot. Called by the session's close hook.
func (a *Admitter) Release(grant *Grant) {
	a.slots.Release(grant.Owner, grant.Ref)
}

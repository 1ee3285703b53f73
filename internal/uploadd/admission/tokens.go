package admission

import (
	"sync"

	"github.com/google/uuid"

	"uploadd/internal/uploadd/domain"
	errs "uploadd/pkg/errors"
	"uploadd/pkg/logger"
)

// TokenTable is an in-memory TokenVerifier. Tokens are issued for an
// owner and stay valid until revoked; each successful verification mints
// a fresh correlation reference so concurrent joins on the same token get
// distinct slots.
type TokenTable struct {
	mu     sync.RWMutex
	owners map[string]domain.OwnerRef
	logger *logger.Logger
}

func NewTokenTable() *TokenTable {
	return &TokenTable{
		owners: make(map[string]domain.OwnerRef),
		logger: logger.WithField("component", "token-table"),
	}
}

// Issue mints a new opaque token for the owner.
func (t *TokenTable) Issue(owner domain.OwnerRef) string {
	token := uuid.NewString()

	t.mu.Lock()
	t.owners[token] = owner
	t.mu.Unlock()

	t.logger.Debug("token issued", "owner", string(owner))
	return token
}

// Seed registers a preconfigured token, e.g. from the config file.
func (t *TokenTable) Seed(token string, owner domain.OwnerRef) {
	t.mu.Lock()
	t.owners[token] = owner
	t.mu.Unlock()
}

// Revoke invalidates a token. Unknown tokens are ignored.
func (t *TokenTable) Revoke(token string) {
	t.mu.Lock()
	delete(t.owners, token)
	t.mu.Unlock()
}

// Verify resolves a token to its owner and a fresh correlation reference.
func (t *TokenTable) Verify(token string) (domain.OwnerRef, string, error) {
	t.mu.RLock()
	owner, exists := t.owners[token]
	t.mu.RUnlock()

	if !exists {
		return "", "", errs.ErrInvalidToken
	}

	return owner, uuid.NewString(), nil
}

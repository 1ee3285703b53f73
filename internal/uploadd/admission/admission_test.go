package admission_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"uploadd/internal/uploadd/admission"
	"uploadd/internal/uploadd/domain"
	errs "uploadd/pkg/errors"
)

var testCfg = domain.SlotConfig{MaxFileSize: 1024, ChunkTimeout: time.Second}

// failingStore simulates an unavailable temp file store
type failingStore struct{}

func (failingStore) Allocate() (string, *os.File, error) {
	return "", nil, errors.New("disk full")
}

type memStore struct {
	dir string
}

func (m memStore) Allocate() (string, *os.File, error) {
	path := filepath.Join(m.dir, "upload.part")
	file, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0600)
	return path, file, err
}

func TestTokenTable_IssueVerifyRevoke(t *testing.T) {
	tokens := admission.NewTokenTable()

	token := tokens.Issue("owner-1")
	require.NotEmpty(t, token)

	owner, ref, err := tokens.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, domain.OwnerRef("owner-1"), owner)
	assert.NotEmpty(t, ref)

	// each verification mints a distinct correlation ref
	_, ref2, err := tokens.Verify(token)
	require.NoError(t, err)
	assert.NotEqual(t, ref, ref2)

	tokens.Revoke(token)
	_, _, err = tokens.Verify(token)
	assert.ErrorIs(t, err, errs.ErrInvalidToken)
}

func TestTokenTable_UnknownToken(t *testing.T) {
	tokens := admission.NewTokenTable()

	_, _, err := tokens.Verify("no-such-token")
	assert.ErrorIs(t, err, errs.ErrInvalidToken)
}

func TestCountingSlots_PerOwnerCap(t *testing.T) {
	slots := admission.NewCountingSlots(2, testCfg)

	cfg, err := slots.Acquire("owner-1", "a")
	require.NoError(t, err)
	assert.Equal(t, testCfg, cfg)

	_, err = slots.Acquire("owner-1", "b")
	require.NoError(t, err)

	_, err = slots.Acquire("owner-1", "c")
	assert.ErrorIs(t, err, errs.ErrLimitExceeded)

	// a different owner is unaffected
	_, err = slots.Acquire("owner-2", "a")
	assert.NoError(t, err)

	// releasing frees capacity
	slots.Release("owner-1", "a")
	_, err = slots.Acquire("owner-1", "c")
	assert.NoError(t, err)
}

func TestCountingSlots_ReleaseUnknownRefIgnored(t *testing.T) {
	slots := admission.NewCountingSlots(1, testCfg)

	slots.Release("owner-1", "never-acquired")
	assert.Equal(t, 0, slots.Held("owner-1"))

	_, err := slots.Acquire("owner-1", "a")
	require.NoError(t, err)
	slots.Release("owner-1", "a")
	slots.Release("owner-1", "a")
	assert.Equal(t, 0, slots.Held("owner-1"))
}

func TestAdmitter_SuccessfulJoin(t *testing.T) {
	tokens := admission.NewTokenTable()
	slots := admission.NewCountingSlots(2, testCfg)
	token := tokens.Issue("owner-1")

	admitter := admission.NewAdmitter(tokens, slots, memStore{dir: t.TempDir()})

	grant, err := admitter.Admit(token)
	require.NoError(t, err)
	defer grant.File.Close()

	assert.Equal(t, domain.OwnerRef("owner-1"), grant.Owner)
	assert.Equal(t, testCfg, grant.Config)
	assert.FileExists(t, grant.Path)
	assert.Equal(t, 1, slots.Held("owner-1"))

	admitter.Release(grant)
	assert.Equal(t, 0, slots.Held("owner-1"))
}

func TestAdmitter_InvalidTokenLeavesNoState(t *testing.T) {
	tokens := admission.NewTokenTable()
	slots := admission.NewCountingSlots(2, testCfg)
	admitter := admission.NewAdmitter(tokens, slots, memStore{dir: t.TempDir()})

	_, err := admitter.Admit("bogus")
	assert.ErrorIs(t, err, errs.ErrInvalidToken)
	assert.Equal(t, 0, slots.Held("owner-1"))
}

func TestAdmitter_SlotLimitExceeded(t *testing.T) {
	tokens := admission.NewTokenTable()
	slots := admission.NewCountingSlots(1, testCfg)
	token := tokens.Issue("owner-1")

	admitter := admission.NewAdmitter(tokens, slots, memStore{dir: t.TempDir()})

	grant, err := admitter.Admit(token)
	require.NoError(t, err)
	defer grant.File.Close()

	_, err = admitter.Admit(token)
	assert.ErrorIs(t, err, errs.ErrLimitExceeded)
}

func TestAdmitter_StorageFailureReleasesSlot(t *testing.T) {
	tokens := admission.NewTokenTable()
	slots := admission.NewCountingSlots(1, testCfg)
	token := tokens.Issue("owner-1")

	admitter := admission.NewAdmitter(tokens, slots, failingStore{})

	_, err := admitter.Admit(token)
	assert.ErrorIs(t, err, errs.ErrStorageUnavailable)

	// the slot taken during the failed join was given back
	assert.Equal(t, 0, slots.Held("owner-1"))
}

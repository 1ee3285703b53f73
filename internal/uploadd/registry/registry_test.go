package registry_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"uploadd/internal/uploadd/domain"
	"uploadd/internal/uploadd/registry"
	"uploadd/internal/uploadd/session"
	errs "uploadd/pkg/errors"
)

func newSession(t *testing.T, id string, reg *registry.Registry) *session.Session {
	t.Helper()

	path := filepath.Join(t.TempDir(), "upload.part")
	file, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0600)
	require.NoError(t, err)

	cfg := domain.SlotConfig{MaxFileSize: 64, ChunkTimeout: time.Minute}
	s := session.New(id, "owner-1", cfg, path, file, nil, func(domain.CloseReason) {
		reg.Remove(id)
	})
	reg.Add(s)
	s.Start()
	return s
}

func TestRegistry_AddGetRemove(t *testing.T) {
	reg := registry.New()
	s := newSession(t, "s-1", reg)

	got, err := reg.Get("s-1")
	require.NoError(t, err)
	assert.Same(t, s, got)

	_, err = reg.Get("missing")
	assert.ErrorIs(t, err, errs.ErrSessionNotFound)

	reg.Remove("s-1")
	_, err = reg.Get("s-1")
	assert.ErrorIs(t, err, errs.ErrSessionNotFound)

	// leave no goroutine behind
	require.NoError(t, s.Cancel(context.Background()))
}

func TestRegistry_SessionRemovesItselfOnClose(t *testing.T) {
	reg := registry.New()
	s := newSession(t, "s-1", reg)

	require.NoError(t, s.Cancel(context.Background()))
	<-s.Closed()

	_, err := reg.Get("s-1")
	assert.ErrorIs(t, err, errs.ErrSessionNotFound)
}

func TestRegistry_DuplicateAddKeepsExisting(t *testing.T) {
	reg := registry.New()
	s1 := newSession(t, "dup", reg)

	path := filepath.Join(t.TempDir(), "other.part")
	file, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0600)
	require.NoError(t, err)
	s2 := session.New("dup", "owner-2", domain.SlotConfig{MaxFileSize: 1, ChunkTimeout: time.Minute}, path, file, nil, nil)
	reg.Add(s2)
	s2.Start()

	got, err := reg.Get("dup")
	require.NoError(t, err)
	assert.Same(t, s1, got)

	require.NoError(t, s1.Cancel(context.Background()))
	require.NoError(t, s2.Cancel(context.Background()))
}

func TestRegistry_CancelAll(t *testing.T) {
	reg := registry.New()
	sessions := []*session.Session{
		newSession(t, "a", reg),
		newSession(t, "b", reg),
		newSession(t, "c", reg),
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	reg.CancelAll(ctx)

	for _, s := range sessions {
		select {
		case <-s.Closed():
		default:
			t.Fatalf("session %s still open after CancelAll", s.ID())
		}
	}

	assert.Empty(t, reg.List())
}

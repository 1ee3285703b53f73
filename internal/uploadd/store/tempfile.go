package store

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"uploadd/pkg/logger"
)

// DirStore allocates exclusively-owned temporary files under one
// directory. Names are uuids so concurrent sessions never collide; the
// O_EXCL open guarantees it anyway.
type DirStore struct {
	dir    string
	logger *logger.Logger
}

func NewDirStore(dir string) (*DirStore, error) {
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create temp directory %s: %w", dir, err)
	}

	return &DirStore{
		dir:    dir,
		logger: logger.WithField("component", "temp-store"),
	}, nil
}

// Allocate opens a fresh temp file for exclusive binary writing.
func (d *DirStore) Allocate() (string, *os.File, error) {
	path := filepath.Join(d.dir, uuid.NewString()+".part")

	file, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0600)
	if err != nil {
		return "", nil, fmt.Errorf("failed to allocate temp file: %w", err)
	}

	d.logger.Debug("temp file allocated", "path", path)
	return path, file, nil
}

// Copyright (c) 2025 Vex Labs
// SPDX-License-Identifier: MIT

// Package storage persists application state to disk as a single JSON
// document under the vex data directory. Writes go through the atomic
// write path so a crash mid-save can never corrupt existing state.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/vexlabs/vex-tui/internal/store"
	"github.com/vexlabs/vex-tui/internal/util"
)

// SchemaVersion is bumped when the on-disk layout changes shape.
const SchemaVersion = 1

// StateFileName is the file holding chats, selection, and settings.
const StateFileName = "state.json"

// ErrStateNotFound indicates no state file exists yet, which is the normal
// first-run condition.
var ErrStateNotFound = errors.New("state file not found")

// record is the on-disk envelope around a store snapshot.
type record struct {
	Version int            `json:"version"`
	State   store.Snapshot `json:"state"`
}

// FileStore reads and writes application state under a base directory,
// typically ~/.vex.
type FileStore struct {
	dir string
}

// NewFileStore creates a store rooted at dir. The directory is created
// lazily on first save.
func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: dir}
}

// DefaultDir returns the standard vex data directory, ~/.vex.
func DefaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, ".vex"), nil
}

// Path returns the absolute path of the state file.
func (f *FileStore) Path() string {
	return filepath.Join(f.dir, StateFileName)
}

// Save writes the snapshot to disk atomically. The file is owner-only
// since transcripts may contain sensitive content.
func (f *FileStore) Save(snap store.Snapshot) error {
	rec := record{Version: SchemaVersion, State: snap}
	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal state: %w", err)
	}
	if err := util.AtomicWriteFilePrivate(f.Path(), data); err != nil {
		return fmt.Errorf("failed to write state file: %w", err)
	}
	return nil
}

// Load reads the persisted snapshot. Returns ErrStateNotFound when no
// state file exists yet.
func (f *FileStore) Load() (store.Snapshot, error) {
	data, err := os.ReadFile(f.Path())
	if err != nil {
		if os.IsNotExist(err) {
			return store.Snapshot{}, ErrStateNotFound
		}
		return store.Snapshot{}, fmt.Errorf("failed to read state file: %w", err)
	}

	var rec record
	if err := json.Unmarshal(data, &rec); err != nil {
		return store.Snapshot{}, fmt.Errorf("failed to parse state file: %w", err)
	}
	if rec.Version > SchemaVersion {
		return store.Snapshot{}, fmt.Errorf("state file version %d is newer than supported version %d", rec.Version, SchemaVersion)
	}
	return rec.State, nil
}

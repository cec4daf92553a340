// Package storage loads and saves counter snapshots.
//
// A session either persists to a JSON file (File) or keeps everything in
// memory (Ephemeral). Both satisfy Saver, which is all the TUI depends on.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/renameio/v2"
	"github.com/studiowebux/tally/internal/config"
	"github.com/studiowebux/tally/internal/types"
	"github.com/tidwall/jsonc"
)

// SnapshotExt is the extension every snapshot file is normalized to
const SnapshotExt = ".json"

// Saver persists the full counter list
type Saver interface {
	// Save replaces the stored snapshot with counters
	Save(counters []types.Counter) error
	// Target describes where snapshots go; empty for in-memory sessions
	Target() string
}

// Ephemeral is a Saver that never writes anything
type Ephemeral struct{}

func (Ephemeral) Save([]types.Counter) error { return nil }

func (Ephemeral) Target() string { return "" }

// File is a Saver backed by a JSON snapshot on disk
type File struct {
	path string
}

// NewFile returns a File for an already resolved path
func NewFile(path string) *File {
	return &File{path: path}
}

// Target implements Saver
func (f *File) Target() string {
	return f.path
}

// Load reads the snapshot. A missing file is reported as fs.ErrNotExist.
func (f *File) Load() ([]types.Counter, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file %s: %w", f.path, err)
	}

	// Hand-edited snapshots may carry comments and trailing commas
	var counters []types.Counter
	if err := json.Unmarshal(jsonc.ToJSON(data), &counters); err != nil {
		return nil, fmt.Errorf("failed to parse file %s: %w", f.path, err)
	}

	return counters, nil
}

// Save writes counters as indented JSON. The snapshot is written to a
// temporary file and renamed over the target, so a failed save leaves the
// previous contents in place.
func (f *File) Save(counters []types.Counter) error {
	if counters == nil {
		counters = []types.Counter{}
	}

	data, err := json.MarshalIndent(counters, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal counters: %w", err)
	}

	if err := renameio.WriteFile(f.path, data, config.FilePermissions, renameio.IgnoreUmask()); err != nil {
		return fmt.Errorf("failed to write file %s: %w", f.path, err)
	}

	return nil
}

// ResolvePath turns a user supplied name into a snapshot path.
// Relative names are resolved against the current working directory and the
// extension is replaced with SnapshotExt ("workout" and "workout.txt" both
// become "workout.json").
func ResolvePath(name string) (string, error) {
	path := name
	if !filepath.IsAbs(path) {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("couldn't get working directory: %w", err)
		}
		path = filepath.Join(wd, path)
	}

	return normalizeExt(path), nil
}

func normalizeExt(path string) string {
	base := filepath.Base(path)
	ext := filepath.Ext(base)
	// ".hidden" has no stem, treat it as a name without extension
	if ext == base {
		ext = ""
	}
	return strings.TrimSuffix(path, ext) + SnapshotExt
}

// Open resolves name and loads its snapshot when the file exists.
// A missing file is not an error: the session starts empty and the path
// becomes the save target.
func Open(name string) (*File, []types.Counter, error) {
	path, err := ResolvePath(name)
	if err != nil {
		return nil, nil, err
	}

	f := NewFile(path)
	counters, err := f.Load()
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return f, nil, nil
		}
		return nil, nil, err
	}

	return f, counters, nil
}

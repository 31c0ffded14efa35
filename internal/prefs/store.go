// Package prefs persists per-database view preferences as JSON blobs in a
// key-value store keyed by database ID.
package prefs

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"notionview/internal/view"
	"notionview/pkg/logger"
)

// keyPrefix namespaces preference entries so they cannot collide with other
// stored state.
const keyPrefix = "dbview"

// ErrNotFound is returned by Load when no preferences are stored for a key.
var ErrNotFound = errors.New("preferences not found")

// Preferences is the persisted view configuration of one database. It is
// written as a whole on every configuration change, never patched.
type Preferences struct {
	Columns      []view.ColumnConfig `json:"columns"`
	Sort         *view.SimpleSort    `json:"sort,omitempty"`
	EnhancedSort view.SortConfig     `json:"enhancedSort,omitempty"`
	Filters      []view.FilterRule   `json:"filters,omitempty"`
}

// Store loads and saves preferences by key.
type Store interface {
	// Load returns the preferences stored under key, or ErrNotFound.
	Load(key string) (*Preferences, error)
	// Save overwrites the preferences stored under key.
	Save(key string, p *Preferences) error
}

// FileStore is a Store backed by one JSON file per key.
type FileStore struct {
	fs  afero.Fs
	dir string
	log *logger.Logger
}

// NewFileStore creates a file-backed store rooted at dir.
func NewFileStore(fs afero.Fs, dir string) *FileStore {
	return &FileStore{
		fs:  fs,
		dir: dir,
		log: logger.Default().WithComponent("prefs"),
	}
}

// Load reads the preferences for key. A corrupt blob is a recoverable
// condition: it is logged and reported as ErrNotFound so the caller derives
// a fresh default configuration instead of failing the load.
func (s *FileStore) Load(key string) (*Preferences, error) {
	path := s.path(key)

	data, err := afero.ReadFile(s.fs, path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to read preferences: %w", err)
	}

	var p Preferences
	if err := json.Unmarshal(data, &p); err != nil {
		s.log.Warnw("discarding malformed preference blob", "key", key, "error", err)
		return nil, ErrNotFound
	}
	return &p, nil
}

// Save writes the preferences for key, replacing any previous blob.
func (s *FileStore) Save(key string, p *Preferences) error {
	if err := s.fs.MkdirAll(s.dir, 0700); err != nil {
		return fmt.Errorf("failed to create preferences directory: %w", err)
	}

	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal preferences: %w", err)
	}

	if err := afero.WriteFile(s.fs, s.path(key), data, 0600); err != nil {
		return fmt.Errorf("failed to write preferences: %w", err)
	}
	return nil
}

func (s *FileStore) path(key string) string {
	return filepath.Join(s.dir, keyPrefix+"_"+sanitizeKey(key)+".json")
}

// sanitizeKey keeps keys filename-safe. Database IDs are UUIDs so this only
// normalizes their hyphens.
func sanitizeKey(key string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		default:
			return '-'
		}
	}, key)
}

// Package handlog persists hands in their canonical JSON form, one
// file per hand. Saved hands are verified on load by replaying the
// action log through the rules engine.
package handlog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lox/holdem-engine/holdem"
	"github.com/lox/holdem-engine/internal/fileutil"
	"github.com/lox/holdem-engine/internal/handid"
)

// Store is a directory of hand logs keyed by hand ID.
type Store struct {
	dir string
	ids *handid.Generator
}

// NewStore opens (creating if needed) a hand log directory.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating hand log dir: %w", err)
	}
	return &Store{dir: dir, ids: handid.NewGenerator()}, nil
}

// NewStoreWith is NewStore with an injected ID generator for tests.
func NewStoreWith(dir string, ids *handid.Generator) (*Store, error) {
	store, err := NewStore(dir)
	if err != nil {
		return nil, err
	}
	store.ids = ids
	return store, nil
}

// Path returns the file path for a hand ID.
func (s *Store) Path(id string) string {
	return filepath.Join(s.dir, id+".json")
}

// Save writes the hand under a fresh ID and returns that ID. The write
// is atomic: a crash mid-save leaves no partial file.
func (s *Store) Save(g *holdem.GameState) (string, error) {
	data, err := json.MarshalIndent(g, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encoding hand: %w", err)
	}
	id := s.ids.Generate()
	if err := fileutil.WriteFileAtomic(s.Path(id), data, 0o644); err != nil {
		return "", fmt.Errorf("saving hand %s: %w", id, err)
	}
	return id, nil
}

// Load reads and verifies the hand with the given ID.
func (s *Store) Load(id string) (*holdem.GameState, error) {
	if err := handid.Validate(id); err != nil {
		return nil, err
	}
	return Read(s.Path(id))
}

// List returns the stored hand IDs, oldest first. Hand IDs embed their
// creation time, so lexical order is chronological.
func (s *Store) List() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("listing hand logs: %w", err)
	}
	var ids []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, ".json") {
			continue
		}
		id := strings.TrimSuffix(name, ".json")
		if handid.Validate(id) == nil {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids, nil
}

// Read loads a hand from an arbitrary file and verifies that its
// action log replays legally.
func Read(path string) (*holdem.GameState, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading hand: %w", err)
	}
	var g holdem.GameState
	if err := json.Unmarshal(data, &g); err != nil {
		return nil, fmt.Errorf("decoding hand %s: %w", path, err)
	}
	if err := g.Verify(); err != nil {
		return nil, fmt.Errorf("hand %s does not replay: %w", path, err)
	}
	return &g, nil
}

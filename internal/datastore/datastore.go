package datastore

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/rotisserie/eris"

	"github.com/comps-gg/tft-cli/internal/model"
	"github.com/comps-gg/tft-cli/internal/tftsync"
)

// Store reads the published game-data documents back from disk. Documents are
// parsed once and cached for the life of the process; Invalidate drops the
// cache after a sync rewrites them.
type Store struct {
	dir string

	mu        sync.Mutex
	champions []model.Champion
	items     []model.Item
	traits    []model.Trait
	loaded    map[string]bool
}

// New creates a store over the given document directory.
func New(dir string) *Store {
	return &Store{dir: dir, loaded: make(map[string]bool)}
}

// Champions returns the published champion list. A missing document is an
// empty list, not an error.
func (s *Store) Champions() ([]model.Champion, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.loaded[tftsync.ChampionsFile] {
		if err := s.read(tftsync.ChampionsFile, &s.champions); err != nil {
			return nil, err
		}
		s.loaded[tftsync.ChampionsFile] = true
	}
	return s.champions, nil
}

// Items returns the published item list.
func (s *Store) Items() ([]model.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.loaded[tftsync.ItemsFile] {
		if err := s.read(tftsync.ItemsFile, &s.items); err != nil {
			return nil, err
		}
		s.loaded[tftsync.ItemsFile] = true
	}
	return s.items, nil
}

// Traits returns the published trait list.
func (s *Store) Traits() ([]model.Trait, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.loaded[tftsync.TraitsFile] {
		if err := s.read(tftsync.TraitsFile, &s.traits); err != nil {
			return nil, err
		}
		s.loaded[tftsync.TraitsFile] = true
	}
	return s.traits, nil
}

// Bundle is the full published dataset.
type Bundle struct {
	Champions []model.Champion `json:"champions"`
	Items     []model.Item     `json:"items"`
	Traits    []model.Trait    `json:"traits"`
}

// All loads every document.
func (s *Store) All() (*Bundle, error) {
	champions, err := s.Champions()
	if err != nil {
		return nil, err
	}
	items, err := s.Items()
	if err != nil {
		return nil, err
	}
	traits, err := s.Traits()
	if err != nil {
		return nil, err
	}
	return &Bundle{Champions: champions, Items: items, Traits: traits}, nil
}

// Invalidate drops all cached documents.
func (s *Store) Invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.champions = nil
	s.items = nil
	s.traits = nil
	s.loaded = make(map[string]bool)
}

func (s *Store) read(name string, v any) error {
	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return eris.Wrapf(err, "datastore: read %s", name)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return eris.Wrapf(err, "datastore: parse %s", name)
	}
	return nil
}

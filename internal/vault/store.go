package vault

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// DefaultStoreCap is the maximum number of entries the local cache keeps,
// most recent first.
const DefaultStoreCap = 100

// EntryStore is the durable local mirror of the vault. Reads are synchronous
// and never touch the network. The snapshot is one JSON array in a single
// file under the cache directory.
type EntryStore struct {
	path string
	cap  int
}

// NewEntryStore creates a store persisting under cacheDir. A non-positive cap
// falls back to DefaultStoreCap.
func NewEntryStore(cacheDir string, cap int) *EntryStore {
	if cap <= 0 {
		cap = DefaultStoreCap
	}
	return &EntryStore{
		path: filepath.Join(cacheDir, "entries.json"),
		cap:  cap,
	}
}

// LoadAll returns the last persisted snapshot, or an empty slice if no
// snapshot exists yet.
func (s *EntryStore) LoadAll() ([]Entry, error) {
	contents, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return []Entry{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("os.ReadFile(%s) > %w", s.path, err)
	}

	var entries []Entry
	if err := json.Unmarshal(contents, &entries); err != nil {
		return nil, fmt.Errorf("json.Unmarshal(%s) > %w", s.path, err)
	}
	return entries, nil
}

// ReplaceAll overwrites the snapshot. Used after a successful remote refresh.
func (s *EntryStore) ReplaceAll(entries []Entry) error {
	if len(entries) > s.cap {
		entries = entries[:s.cap]
	}
	return s.persist(entries)
}

// Prepend inserts one entry at the front of the snapshot, evicts the oldest
// entries beyond the cap and persists the result.
func (s *EntryStore) Prepend(entry Entry) error {
	entries, err := s.LoadAll()
	if err != nil {
		return fmt.Errorf("store.LoadAll > %w", err)
	}

	entries = append([]Entry{entry}, entries...)
	if len(entries) > s.cap {
		entries = entries[:s.cap]
	}
	return s.persist(entries)
}

// FindExact returns the first entry whose word on the lang side equals text
// after normalization, or nil if none matches.
func (s *EntryStore) FindExact(lang Language, text string) (*Entry, error) {
	entries, err := s.LoadAll()
	if err != nil {
		return nil, fmt.Errorf("store.LoadAll > %w", err)
	}

	needle := NormalizeWord(text)
	for _, entry := range entries {
		if NormalizeWord(entry.WordFor(lang)) == needle {
			return &entry, nil
		}
	}
	return nil, nil
}

// FindSubstring returns the first entry whose word on the lang side contains
// text, or is contained by it, case-insensitively. First match wins.
func (s *EntryStore) FindSubstring(lang Language, text string) (*Entry, error) {
	entries, err := s.LoadAll()
	if err != nil {
		return nil, fmt.Errorf("store.LoadAll > %w", err)
	}

	needle := NormalizeWord(text)
	if needle == "" {
		return nil, nil
	}
	for _, entry := range entries {
		stored := NormalizeWord(entry.WordFor(lang))
		if stored == "" {
			continue
		}
		if strings.Contains(stored, needle) || strings.Contains(needle, stored) {
			return &entry, nil
		}
	}
	return nil, nil
}

func (s *EntryStore) persist(entries []Entry) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("os.MkdirAll(%s) > %w", filepath.Dir(s.path), err)
	}

	contents, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("json.Marshal > %w", err)
	}
	if err := os.WriteFile(s.path, contents, 0644); err != nil {
		return fmt.Errorf("os.WriteFile(%s) > %w", s.path, err)
	}
	return nil
}

package vault

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Settings holds user toggles that survive restarts. The force-offline flag
// makes the effective link state behave as disconnected regardless of actual
// connectivity.
type Settings struct {
	ForceOffline bool `json:"force_offline"`
}

// SettingsStore persists Settings as a single JSON file next to the entry
// snapshot.
type SettingsStore struct {
	path string
}

// NewSettingsStore creates a settings store persisting under cacheDir.
func NewSettingsStore(cacheDir string) *SettingsStore {
	return &SettingsStore{path: filepath.Join(cacheDir, "settings.json")}
}

// Load returns the persisted settings, or zero-valued settings if none exist.
func (s *SettingsStore) Load() (Settings, error) {
	contents, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return Settings{}, nil
	}
	if err != nil {
		return Settings{}, fmt.Errorf("os.ReadFile(%s) > %w", s.path, err)
	}

	var settings Settings
	if err := json.Unmarshal(contents, &settings); err != nil {
		return Settings{}, fmt.Errorf("json.Unmarshal(%s) > %w", s.path, err)
	}
	return settings, nil
}

// Save overwrites the persisted settings.
func (s *SettingsStore) Save(settings Settings) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("os.MkdirAll(%s) > %w", filepath.Dir(s.path), err)
	}

	contents, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("json.Marshal > %w", err)
	}
	if err := os.WriteFile(s.path, contents, 0644); err != nil {
		return fmt.Errorf("os.WriteFile(%s) > %w", s.path, err)
	}
	return nil
}

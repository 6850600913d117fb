// Package testutil provides shared test helpers for creating config files
// and vault fixtures.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/tulonga/eendjovo/internal/vault"
)

// SetupTestConfig creates a minimal config file and the directories it points
// at. Returns the path to the generated config file.
func SetupTestConfig(t *testing.T, tmpDir string) string {
	t.Helper()

	for _, d := range []string{"cache", "exports"} {
		require.NoError(t, os.MkdirAll(filepath.Join(tmpDir, d), 0755))
	}

	configContent := fmt.Sprintf(`vault:
  cache_directory: %s
outputs:
  export_directory: %s
openai:
  api_key: fake-key-for-testing
  model: gpt-4o-mini
`,
		filepath.Join(tmpDir, "cache"),
		filepath.Join(tmpDir, "exports"),
	)

	cfgPath := filepath.Join(tmpDir, "config.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(configContent), 0644))
	return cfgPath
}

// EntryOption configures optional fields on a fixture entry.
type EntryOption func(*vault.Entry)

// WithDialect sets the dialect fields on a fixture entry.
func WithDialect(dialect, note string) EntryOption {
	return func(e *vault.Entry) {
		e.DetectedDialect = dialect
		e.DialectCorrectionNote = note
	}
}

// WithCreatedAt sets the creation timestamp on a fixture entry.
func WithCreatedAt(createdAt time.Time) EntryOption {
	return func(e *vault.Entry) {
		e.CreatedAt = createdAt
	}
}

// NewEntry builds a fixture entry with both word fields and examples filled.
func NewEntry(english, oshiwambo string, opts ...EntryOption) vault.Entry {
	entry := vault.Entry{
		EnglishWord:           english,
		OshiwamboWord:         oshiwambo,
		Category:              "omilandu",
		WordType:              "noun",
		UsageExampleEnglish:   fmt.Sprintf("This is a sentence with %s.", english),
		UsageExampleOshiwambo: fmt.Sprintf("Eendjovo edi odi na %s.", oshiwambo),
		CreatedAt:             time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
	for _, opt := range opts {
		opt(&entry)
	}
	return entry
}

// SeedStore persists entries into a fresh store under dir and returns it.
func SeedStore(t *testing.T, dir string, entries []vault.Entry) *vault.EntryStore {
	t.Helper()
	store := vault.NewEntryStore(dir, 0)
	require.NoError(t, store.ReplaceAll(entries))
	return store
}

package vault

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEntry(english, oshiwambo string) Entry {
	return Entry{
		EnglishWord:   english,
		OshiwamboWord: oshiwambo,
		WordType:      "noun",
		CreatedAt:     time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestEntryStore_LoadAll(t *testing.T) {
	t.Run("no snapshot yet", func(t *testing.T) {
		store := NewEntryStore(t.TempDir(), 0)
		entries, err := store.LoadAll()
		require.NoError(t, err)
		assert.Empty(t, entries)
	})

	t.Run("returns the last persisted snapshot", func(t *testing.T) {
		dir := t.TempDir()
		store := NewEntryStore(dir, 0)
		require.NoError(t, store.ReplaceAll([]Entry{
			newTestEntry("evening", "onguloshi"),
			newTestEntry("water", "omeya"),
		}))

		// A second store instance over the same directory sees the snapshot.
		reopened := NewEntryStore(dir, 0)
		entries, err := reopened.LoadAll()
		require.NoError(t, err)
		require.Len(t, entries, 2)
		assert.Equal(t, "evening", entries[0].EnglishWord)
		assert.Equal(t, "omeya", entries[1].OshiwamboWord)
	})
}

func TestEntryStore_Prepend(t *testing.T) {
	t.Run("inserts at the front", func(t *testing.T) {
		store := NewEntryStore(t.TempDir(), 0)
		require.NoError(t, store.Prepend(newTestEntry("water", "omeya")))
		require.NoError(t, store.Prepend(newTestEntry("evening", "onguloshi")))

		entries, err := store.LoadAll()
		require.NoError(t, err)
		require.Len(t, entries, 2)
		assert.Equal(t, "evening", entries[0].EnglishWord)
		assert.Equal(t, "water", entries[1].EnglishWord)
	})

	t.Run("evicts the oldest beyond the cap", func(t *testing.T) {
		store := NewEntryStore(t.TempDir(), 100)
		for i := 0; i < 101; i++ {
			word := fmt.Sprintf("word-%03d", i)
			require.NoError(t, store.Prepend(newTestEntry(word, "oshi-"+word)))
		}

		entries, err := store.LoadAll()
		require.NoError(t, err)
		require.Len(t, entries, 100)
		assert.Equal(t, "word-100", entries[0].EnglishWord)
		assert.Equal(t, "word-001", entries[99].EnglishWord)
	})
}

func TestEntryStore_ReplaceAll(t *testing.T) {
	store := NewEntryStore(t.TempDir(), 2)
	require.NoError(t, store.Prepend(newTestEntry("old", "oshikulu")))

	require.NoError(t, store.ReplaceAll([]Entry{
		newTestEntry("one", "imwe"),
		newTestEntry("two", "mbali"),
		newTestEntry("three", "nhatu"),
	}))

	entries, err := store.LoadAll()
	require.NoError(t, err)
	// Snapshot truncated to the cap, old contents discarded.
	require.Len(t, entries, 2)
	assert.Equal(t, "one", entries[0].EnglishWord)
	assert.Equal(t, "two", entries[1].EnglishWord)
}

func TestEntryStore_FindExact(t *testing.T) {
	dir := t.TempDir()
	store := NewEntryStore(dir, 0)
	require.NoError(t, store.ReplaceAll([]Entry{
		newTestEntry("Evening", "Onguloshi"),
		newTestEntry("water", "omeya"),
	}))

	tests := []struct {
		name string
		lang Language
		text string
		want string
	}{
		{name: "english hit", lang: LanguageEnglish, text: "evening", want: "Evening"},
		{name: "normalizes whitespace and case", lang: LanguageEnglish, text: "  WATER ", want: "water"},
		{name: "oshiwambo hit", lang: LanguageOshiwambo, text: "onguloshi", want: "Evening"},
		{name: "miss", lang: LanguageEnglish, text: "morning", want: ""},
		{name: "no cross-language match", lang: LanguageOshiwambo, text: "evening", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := store.FindExact(tt.lang, tt.text)
			require.NoError(t, err)
			if tt.want == "" {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, tt.want, got.EnglishWord)
		})
	}
}

func TestEntryStore_FindSubstring(t *testing.T) {
	store := NewEntryStore(t.TempDir(), 0)
	require.NoError(t, store.ReplaceAll([]Entry{
		newTestEntry("evening(ish)", "onguloshi"),
		newTestEntry("sun", "etango"),
	}))

	t.Run("stored word contains the input", func(t *testing.T) {
		got, err := store.FindSubstring(LanguageEnglish, "evening")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "onguloshi", got.OshiwamboWord)
	})

	t.Run("input contains the stored word", func(t *testing.T) {
		got, err := store.FindSubstring(LanguageEnglish, "the sunset")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "etango", got.OshiwamboWord)
	})

	t.Run("miss", func(t *testing.T) {
		got, err := store.FindSubstring(LanguageEnglish, "moon")
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("blank input never matches", func(t *testing.T) {
		got, err := store.FindSubstring(LanguageEnglish, "   ")
		require.NoError(t, err)
		assert.Nil(t, got)
	})
}

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tulonga/eendjovo/internal/vault"
)

func TestLanguageFlag(t *testing.T) {
	t.Run("accepts both languages", func(t *testing.T) {
		var flag languageFlag
		require.NoError(t, flag.Set("english"))
		assert.Equal(t, "english", flag.String())

		require.NoError(t, flag.Set("Oshiwambo"))
		assert.Equal(t, "oshiwambo", flag.String())
	})

	t.Run("rejects unknown languages", func(t *testing.T) {
		flag := languageFlag(vault.LanguageEnglish)
		err := flag.Set("klingon")
		require.Error(t, err)
		assert.Equal(t, "english", flag.String())
	})

	t.Run("type name", func(t *testing.T) {
		var flag languageFlag
		assert.Equal(t, "language", flag.Type())
	})
}

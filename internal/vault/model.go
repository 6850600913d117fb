// Package vault holds the bilingual dictionary domain: the entry model, the
// bounded local cache, the remote MySQL-backed vault and the sync policy
// between the two.
package vault

import (
	"fmt"
	"strings"
	"time"
)

// Language identifies which side of an entry a word belongs to.
type Language string

const (
	LanguageEnglish   Language = "english"
	LanguageOshiwambo Language = "oshiwambo"
)

// AllLanguages lists the languages a translation request may use as its source.
var AllLanguages = []Language{LanguageEnglish, LanguageOshiwambo}

// ParseLanguage converts user input into a Language.
func ParseLanguage(val string) (Language, error) {
	for _, lang := range AllLanguages {
		if strings.EqualFold(val, string(lang)) {
			return lang, nil
		}
	}
	return "", fmt.Errorf("invalid language: %s. Possible values are %v", val, AllLanguages)
}

// Other returns the opposite side of a bilingual entry.
func (l Language) Other() Language {
	if l == LanguageEnglish {
		return LanguageOshiwambo
	}
	return LanguageEnglish
}

// Entry is one bilingual word record. The same record serves both translation
// directions: which field is the source word depends on the request language,
// never on the entry itself.
type Entry struct {
	// ID is assigned by the remote vault. Zero for entries that only exist in
	// the local cache, such as guest lookups.
	ID                    int64     `db:"id" json:"id,omitempty" yaml:"id,omitempty"`
	EnglishWord           string    `db:"english_word" json:"english_word" yaml:"english_word"`
	OshiwamboWord         string    `db:"oshiwambo_word" json:"oshiwambo_word" yaml:"oshiwambo_word"`
	Category              string    `db:"category" json:"category" yaml:"category"`
	WordType              string    `db:"word_type" json:"word_type" yaml:"word_type"`
	UsageExampleEnglish   string    `db:"usage_example_english" json:"usage_example_english" yaml:"usage_example_english"`
	UsageExampleOshiwambo string    `db:"usage_example_oshiwambo" json:"usage_example_oshiwambo" yaml:"usage_example_oshiwambo"`
	IsVerified            bool      `db:"is_verified" json:"is_verified" yaml:"is_verified"`
	CreatedAt             time.Time `db:"created_at" json:"created_at" yaml:"created_at"`
	DetectedDialect       string    `db:"detected_dialect" json:"detected_dialect,omitempty" yaml:"detected_dialect,omitempty"`
	DialectCorrectionNote string    `db:"dialect_correction_note" json:"dialect_correction_note,omitempty" yaml:"dialect_correction_note,omitempty"`
}

// WordFor returns the word on the lang side of the entry.
func (e Entry) WordFor(lang Language) string {
	if lang == LanguageEnglish {
		return e.EnglishWord
	}
	return e.OshiwamboWord
}

// SetWordFor sets the word on the lang side of the entry.
func (e *Entry) SetWordFor(lang Language, word string) {
	if lang == LanguageEnglish {
		e.EnglishWord = word
		return
	}
	e.OshiwamboWord = word
}

// CanonicalWord returns the word used as the remote upsert conflict key.
// The key is always the English side, regardless of the request direction.
func (e Entry) CanonicalWord() string {
	return e.EnglishWord
}

// NormalizeWord applies the lookup normalization used across every tier.
func NormalizeWord(text string) string {
	return strings.ToLower(strings.TrimSpace(text))
}

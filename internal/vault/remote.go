package vault

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

//go:generate mockgen -source=remote.go -destination=../mocks/vault/mock_remote.go -package=mock_vault

// RemoteVault defines the operations the managed database offers on
// dictionary entries. Every failure is a network or service error and is
// treated as soft by callers that already hold a local result.
type RemoteVault interface {
	// SelectAll returns every entry, newest first.
	SelectAll(ctx context.Context) ([]Entry, error)
	// Upsert inserts or updates an entry keyed by the canonical (English)
	// word and returns the stored row.
	Upsert(ctx context.Context, entry Entry) (Entry, error)
	Delete(ctx context.Context, id int64) error
}

// DBRemoteVault implements RemoteVault on MySQL.
type DBRemoteVault struct {
	db *sqlx.DB
}

// NewDBRemoteVault creates a new DBRemoteVault.
func NewDBRemoteVault(db *sqlx.DB) *DBRemoteVault {
	return &DBRemoteVault{db: db}
}

// SelectAll returns all vault entries, newest first.
func (r *DBRemoteVault) SelectAll(ctx context.Context) ([]Entry, error) {
	var entries []Entry
	if err := r.db.SelectContext(ctx, &entries,
		"SELECT * FROM vault_entries ORDER BY created_at DESC, id DESC"); err != nil {
		return nil, fmt.Errorf("db.SelectContext(vault_entries) > %w", err)
	}
	return entries, nil
}

// Upsert inserts or updates an entry. The conflict key is the English word,
// regardless of which direction produced the entry.
func (r *DBRemoteVault) Upsert(ctx context.Context, entry Entry) (Entry, error) {
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO vault_entries
			(english_word, oshiwambo_word, category, word_type,
			usage_example_english, usage_example_oshiwambo,
			is_verified, created_at, detected_dialect, dialect_correction_note)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON DUPLICATE KEY UPDATE
			oshiwambo_word = VALUES(oshiwambo_word),
			category = VALUES(category),
			word_type = VALUES(word_type),
			usage_example_english = VALUES(usage_example_english),
			usage_example_oshiwambo = VALUES(usage_example_oshiwambo),
			detected_dialect = VALUES(detected_dialect),
			dialect_correction_note = VALUES(dialect_correction_note)`,
		entry.EnglishWord, entry.OshiwamboWord, entry.Category, entry.WordType,
		entry.UsageExampleEnglish, entry.UsageExampleOshiwambo,
		entry.IsVerified, entry.CreatedAt, entry.DetectedDialect, entry.DialectCorrectionNote)
	if err != nil {
		return Entry{}, fmt.Errorf("db.ExecContext(upsert vault_entry) > %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return Entry{}, fmt.Errorf("result.LastInsertId > %w", err)
	}
	if id > 0 {
		entry.ID = id
	}
	return entry, nil
}

// Delete removes an entry by its remote identifier.
func (r *DBRemoteVault) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM vault_entries WHERE id = ?", id); err != nil {
		return fmt.Errorf("db.ExecContext(delete vault_entry) > %w", err)
	}
	return nil
}

package cli

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/tulonga/eendjovo/internal/vault"
)

// VaultCLI renders local vault snapshots.
type VaultCLI struct {
	store  *vault.EntryStore
	writer io.Writer
}

// NewVaultCLI creates a VaultCLI writing to writer.
func NewVaultCLI(store *vault.EntryStore, writer io.Writer) *VaultCLI {
	return &VaultCLI{store: store, writer: writer}
}

// List prints the local snapshot, newest first, with the verification state
// of each entry.
func (c *VaultCLI) List() error {
	entries, err := c.store.LoadAll()
	if err != nil {
		return fmt.Errorf("store.LoadAll > %w", err)
	}
	if len(entries) == 0 {
		fmt.Fprintln(c.writer, "The local vault is empty.")
		return nil
	}

	verified := color.New(color.FgGreen)
	unverified := color.New(color.FgYellow)
	for _, entry := range entries {
		mark := unverified.Sprint("?")
		if entry.IsVerified {
			mark = verified.Sprint("v")
		}
		fmt.Fprintf(c.writer, "[%s] %s -> %s", mark, entry.EnglishWord, entry.OshiwamboWord)
		if entry.WordType != "" {
			fmt.Fprintf(c.writer, " (%s)", entry.WordType)
		}
		fmt.Fprintln(c.writer)
	}
	fmt.Fprintf(c.writer, "%d entries\n", len(entries))
	return nil
}

// Package cli renders translation results and vault listings for the
// terminal commands.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/tulonga/eendjovo/internal/resolve"
	"github.com/tulonga/eendjovo/internal/vault"
)

// TranslateCLI runs one translation request and prints the outcome.
type TranslateCLI struct {
	resolver *resolve.Resolver
	writer   io.Writer
	bold     *color.Color
	italic   *color.Color
}

// NewTranslateCLI creates a TranslateCLI writing to writer.
func NewTranslateCLI(resolver *resolve.Resolver, writer io.Writer) *TranslateCLI {
	return &TranslateCLI{
		resolver: resolver,
		writer:   writer,
		bold:     color.New(color.Bold),
		italic:   color.New(color.Italic),
	}
}

// Run resolves the request and renders the entry or the failure status.
// Failures are reported on the writer and returned so the command can exit
// non-zero.
func (c *TranslateCLI) Run(ctx context.Context, req resolve.Request) error {
	resolution, err := c.resolver.Resolve(ctx, req)
	if err != nil {
		var failure *resolve.Failure
		if errors.As(err, &failure) {
			color.New(color.FgRed).Fprintf(c.writer, "%s (%s)\n", failure.Status, failure.Kind)
			return err
		}
		return fmt.Errorf("resolver.Resolve > %w", err)
	}

	c.printSourceTag(resolution)
	c.printEntry(resolution.Entry, req.SourceLang)
	return nil
}

func (c *TranslateCLI) printSourceTag(resolution resolve.Resolution) {
	switch resolution.Source {
	case resolve.SourceVault:
		color.New(color.FgGreen).Fprintln(c.writer, "[vault] answered from the local vault")
	case resolve.SourceAI:
		color.New(color.FgCyan).Fprintln(c.writer, "[ai] synthesized a new entry")
	case resolve.SourceFallback:
		color.New(color.FgYellow).Fprintln(c.writer, "[fallback] closest local match")
		if resolution.SoftError != "" {
			c.italic.Fprintf(c.writer, "(%s)\n", resolution.SoftError)
		}
	}
}

func (c *TranslateCLI) printEntry(entry vault.Entry, sourceLang vault.Language) {
	c.bold.Fprintf(c.writer, "%s", entry.WordFor(sourceLang))
	fmt.Fprintf(c.writer, " -> ")
	c.bold.Fprintf(c.writer, "%s\n", entry.WordFor(sourceLang.Other()))

	if entry.WordType != "" {
		fmt.Fprintf(c.writer, "  type: %s\n", entry.WordType)
	}
	if entry.Category != "" {
		fmt.Fprintf(c.writer, "  category: %s\n", entry.Category)
	}
	if entry.UsageExampleEnglish != "" {
		c.italic.Fprintf(c.writer, "  %s\n", entry.UsageExampleEnglish)
	}
	if entry.UsageExampleOshiwambo != "" {
		c.italic.Fprintf(c.writer, "  %s\n", entry.UsageExampleOshiwambo)
	}
	if entry.DetectedDialect != "" {
		fmt.Fprintf(c.writer, "  dialect: %s\n", entry.DetectedDialect)
	}
	if entry.DialectCorrectionNote != "" {
		fmt.Fprintf(c.writer, "  note: %s\n", entry.DialectCorrectionNote)
	}
	if !entry.IsVerified {
		color.New(color.FgYellow).Fprintln(c.writer, "  (unverified)")
	}
}

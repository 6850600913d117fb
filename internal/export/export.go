// Package export writes vault snapshots to reviewer-friendly formats: YAML
// for data exchange, Markdown for reading and PDF for printing.
package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/tulonga/eendjovo/internal/vault"
)

// Format selects the export output format.
type Format string

const (
	FormatYAML     Format = "yaml"
	FormatMarkdown Format = "markdown"
	FormatPDF      Format = "pdf"
)

// AllFormats lists the supported export formats.
var AllFormats = []Format{FormatYAML, FormatMarkdown, FormatPDF}

// ParseFormat converts user input into a Format.
func ParseFormat(val string) (Format, error) {
	for _, format := range AllFormats {
		if strings.EqualFold(val, string(format)) {
			return format, nil
		}
	}
	return "", fmt.Errorf("invalid format: %s. Possible values are %v", val, AllFormats)
}

// Exporter writes entry snapshots under an output directory.
type Exporter struct {
	outputDir string
}

// NewExporter creates an Exporter writing under outputDir.
func NewExporter(outputDir string) *Exporter {
	return &Exporter{outputDir: outputDir}
}

// Export writes entries in the requested format and returns the path of the
// written file.
func (e *Exporter) Export(entries []vault.Entry, format Format) (string, error) {
	if err := os.MkdirAll(e.outputDir, 0755); err != nil {
		return "", fmt.Errorf("os.MkdirAll(%s) > %w", e.outputDir, err)
	}

	switch format {
	case FormatYAML:
		path := filepath.Join(e.outputDir, "vault_entries.yml")
		if err := writeYAML(path, entries); err != nil {
			return "", fmt.Errorf("write vault_entries.yml: %w", err)
		}
		return path, nil
	case FormatMarkdown:
		path := filepath.Join(e.outputDir, "vault_entries.md")
		if err := os.WriteFile(path, []byte(renderMarkdown(entries)), 0644); err != nil {
			return "", fmt.Errorf("os.WriteFile(%s) > %w", path, err)
		}
		return path, nil
	case FormatPDF:
		markdownPath := filepath.Join(e.outputDir, "vault_entries.md")
		if err := os.WriteFile(markdownPath, []byte(renderMarkdown(entries)), 0644); err != nil {
			return "", fmt.Errorf("os.WriteFile(%s) > %w", markdownPath, err)
		}
		path, err := ConvertMarkdownToPDF(markdownPath)
		if err != nil {
			return "", fmt.Errorf("export.ConvertMarkdownToPDF > %w", err)
		}
		return path, nil
	default:
		return "", fmt.Errorf("unsupported format: %s", format)
	}
}

func writeYAML(path string, data interface{}) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	enc := yaml.NewEncoder(f)
	defer func() { _ = enc.Close() }()
	return enc.Encode(data)
}

func renderMarkdown(entries []vault.Entry) string {
	var b strings.Builder
	b.WriteString("# Vault entries\n\n")
	for _, entry := range entries {
		fmt.Fprintf(&b, "## %s — %s\n\n", entry.EnglishWord, entry.OshiwamboWord)
		fmt.Fprintf(&b, "- Word type: %s\n", entry.WordType)
		if entry.Category != "" {
			fmt.Fprintf(&b, "- Category: %s\n", entry.Category)
		}
		fmt.Fprintf(&b, "- Verified: %t\n", entry.IsVerified)
		if !entry.CreatedAt.IsZero() {
			fmt.Fprintf(&b, "- Created: %s\n", entry.CreatedAt.Format(time.DateOnly))
		}
		if entry.DetectedDialect != "" {
			fmt.Fprintf(&b, "- Dialect: %s\n", entry.DetectedDialect)
		}
		if entry.DialectCorrectionNote != "" {
			fmt.Fprintf(&b, "- Note: %s\n", entry.DialectCorrectionNote)
		}
		if entry.UsageExampleEnglish != "" {
			fmt.Fprintf(&b, "\n> %s\n", entry.UsageExampleEnglish)
		}
		if entry.UsageExampleOshiwambo != "" {
			fmt.Fprintf(&b, ">\n> %s\n", entry.UsageExampleOshiwambo)
		}
		b.WriteString("\n")
	}
	return b.String()
}

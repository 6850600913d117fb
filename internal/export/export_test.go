package export_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/tulonga/eendjovo/internal/export"
	"github.com/tulonga/eendjovo/internal/testutil"
	"github.com/tulonga/eendjovo/internal/vault"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    export.Format
		wantErr bool
	}{
		{input: "yaml", want: export.FormatYAML},
		{input: "MARKDOWN", want: export.FormatMarkdown},
		{input: "Pdf", want: export.FormatPDF},
		{input: "csv", wantErr: true},
		{input: "", wantErr: true},
	}
	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			got, err := export.ParseFormat(tc.input)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestExporter_Export(t *testing.T) {
	entries := []vault.Entry{
		testutil.NewEntry("evening", "onguloshi",
			testutil.WithDialect("oshikwanyama", "canonical form is ongulohi in oshindonga")),
		testutil.NewEntry("water", "omeya"),
	}

	t.Run("yaml round trips the entries", func(t *testing.T) {
		outputDir := filepath.Join(t.TempDir(), "exports")
		exporter := export.NewExporter(outputDir)

		path, err := exporter.Export(entries, export.FormatYAML)
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(outputDir, "vault_entries.yml"), path)

		contents, err := os.ReadFile(path)
		require.NoError(t, err)

		var decoded []vault.Entry
		require.NoError(t, yaml.Unmarshal(contents, &decoded))
		require.Len(t, decoded, 2)
		assert.Equal(t, "onguloshi", decoded[0].OshiwamboWord)
		assert.Equal(t, "oshikwanyama", decoded[0].DetectedDialect)
	})

	t.Run("markdown renders one section per entry", func(t *testing.T) {
		outputDir := filepath.Join(t.TempDir(), "exports")
		exporter := export.NewExporter(outputDir)

		path, err := exporter.Export(entries, export.FormatMarkdown)
		require.NoError(t, err)

		contents, err := os.ReadFile(path)
		require.NoError(t, err)
		markdown := string(contents)
		assert.Contains(t, markdown, "# Vault entries")
		assert.Contains(t, markdown, "## evening — onguloshi")
		assert.Contains(t, markdown, "## water — omeya")
		assert.Contains(t, markdown, "- Dialect: oshikwanyama")
		assert.Contains(t, markdown, "> This is a sentence with evening.")
	})

	t.Run("unsupported format", func(t *testing.T) {
		exporter := export.NewExporter(t.TempDir())
		_, err := exporter.Export(entries, export.Format("csv"))
		assert.Error(t, err)
	})
}

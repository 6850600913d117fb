package cli_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/tulonga/eendjovo/internal/cli"
	"github.com/tulonga/eendjovo/internal/identity"
	mock_synthesis "github.com/tulonga/eendjovo/internal/mocks/synthesis"
	"github.com/tulonga/eendjovo/internal/resolve"
	"github.com/tulonga/eendjovo/internal/synthesis"
	"github.com/tulonga/eendjovo/internal/testutil"
	"github.com/tulonga/eendjovo/internal/vault"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	m.Run()
}

func TestTranslateCLI_Run(t *testing.T) {
	t.Run("vault hit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		synth := mock_synthesis.NewMockClient(ctrl)
		store := testutil.SeedStore(t, t.TempDir(), []vault.Entry{
			testutil.NewEntry("evening", "onguloshi",
				testutil.WithDialect("oshikwanyama", "")),
		})

		var out bytes.Buffer
		translateCLI := cli.NewTranslateCLI(resolve.NewResolver(store, synth, nil), &out)
		err := translateCLI.Run(context.Background(), resolve.Request{
			Text:       "evening",
			SourceLang: vault.LanguageEnglish,
			LinkActive: false,
			Identity:   identity.Guest(),
		})
		require.NoError(t, err)

		output := out.String()
		assert.Contains(t, output, "[vault] answered from the local vault")
		assert.Contains(t, output, "evening -> onguloshi")
		assert.Contains(t, output, "type: noun")
		assert.Contains(t, output, "dialect: oshikwanyama")
		assert.Contains(t, output, "(unverified)")
	})

	t.Run("synthesized entry", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		synth := mock_synthesis.NewMockClient(ctrl)
		synth.EXPECT().
			Synthesize(gomock.Any(), gomock.Any()).
			Return(synthesis.SynthesizeResponse{
				Entry: testutil.NewEntry("water", "omeya"),
			}, nil)

		store := vault.NewEntryStore(t.TempDir(), 0)
		var out bytes.Buffer
		translateCLI := cli.NewTranslateCLI(resolve.NewResolver(store, synth, nil), &out)
		err := translateCLI.Run(context.Background(), resolve.Request{
			Text:       "water",
			SourceLang: vault.LanguageEnglish,
			LinkActive: true,
			Identity:   identity.Guest(),
		})
		require.NoError(t, err)

		output := out.String()
		assert.Contains(t, output, "[ai] synthesized a new entry")
		assert.Contains(t, output, "water -> omeya")
	})

	t.Run("fallback with a soft reason", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		synth := mock_synthesis.NewMockClient(ctrl)
		synth.EXPECT().
			Synthesize(gomock.Any(), gomock.Any()).
			Return(synthesis.SynthesizeResponse{}, errors.New("response error 503"))

		store := testutil.SeedStore(t, t.TempDir(), []vault.Entry{
			testutil.NewEntry("evening(ish)", "onguloshi"),
		})

		var out bytes.Buffer
		translateCLI := cli.NewTranslateCLI(resolve.NewResolver(store, synth, nil), &out)
		err := translateCLI.Run(context.Background(), resolve.Request{
			Text:       "evening",
			SourceLang: vault.LanguageEnglish,
			LinkActive: true,
			Identity:   identity.Guest(),
		})
		require.NoError(t, err)

		output := out.String()
		assert.Contains(t, output, "[fallback] closest local match")
		assert.Contains(t, output, "(cognitive link interrupted)")
	})

	t.Run("failure is rendered and returned", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		synth := mock_synthesis.NewMockClient(ctrl)

		store := vault.NewEntryStore(t.TempDir(), 0)
		var out bytes.Buffer
		translateCLI := cli.NewTranslateCLI(resolve.NewResolver(store, synth, nil), &out)
		err := translateCLI.Run(context.Background(), resolve.Request{
			Text:       "evening",
			SourceLang: vault.LanguageEnglish,
			LinkActive: false,
			Identity:   identity.Guest(),
		})

		var failure *resolve.Failure
		require.ErrorAs(t, err, &failure)
		assert.Equal(t, resolve.FailureNoNetworkLink, failure.Kind)
		assert.Contains(t, out.String(), "(no_network_link)")
	})
}

func TestVaultCLI_List(t *testing.T) {
	t.Run("empty vault", func(t *testing.T) {
		store := vault.NewEntryStore(t.TempDir(), 0)
		var out bytes.Buffer
		require.NoError(t, cli.NewVaultCLI(store, &out).List())
		assert.Equal(t, "The local vault is empty.\n", out.String())
	})

	t.Run("lists entries with verification marks", func(t *testing.T) {
		verified := testutil.NewEntry("evening", "onguloshi")
		verified.IsVerified = true
		store := testutil.SeedStore(t, t.TempDir(), []vault.Entry{
			verified,
			testutil.NewEntry("water", "omeya"),
		})

		var out bytes.Buffer
		require.NoError(t, cli.NewVaultCLI(store, &out).List())

		output := out.String()
		assert.Contains(t, output, "[v] evening -> onguloshi (noun)")
		assert.Contains(t, output, "[?] water -> omeya (noun)")
		assert.Contains(t, output, "2 entries")
	})
}

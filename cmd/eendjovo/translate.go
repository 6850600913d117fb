package main

import (
	"fmt"
	"os"
	"sync"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/tulonga/eendjovo/internal/cli"
	"github.com/tulonga/eendjovo/internal/database"
	"github.com/tulonga/eendjovo/internal/identity"
	"github.com/tulonga/eendjovo/internal/resolve"
	"github.com/tulonga/eendjovo/internal/synthesis"
	"github.com/tulonga/eendjovo/internal/synthesis/openai"
	"github.com/tulonga/eendjovo/internal/vault"
)

// languageFlag adapts vault.Language to pflag.
type languageFlag vault.Language

func (l *languageFlag) Set(val string) error {
	lang, err := vault.ParseLanguage(val)
	if err != nil {
		return err
	}
	*l = languageFlag(lang)
	return nil
}

func (l languageFlag) String() string {
	return string(l)
}

func (l *languageFlag) Type() string {
	return "language"
}

var _ pflag.Value = (*languageFlag)(nil)

func newTranslateCommand() *cobra.Command {
	sourceLang := languageFlag(vault.LanguageEnglish)
	var forceOffline bool
	var guest bool

	cmd := &cobra.Command{
		Use:   "translate <text>",
		Short: "Resolve a translation through the vault, synthesis and fuzzy tiers",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}

			linkActive, err := snapshotLinkActive(cfg, forceOffline)
			if err != nil {
				return fmt.Errorf("snapshotLinkActive > %w", err)
			}

			synthClient := openai.NewClient(
				cfg.OpenAI.BaseURL,
				cfg.OpenAI.APIKey,
				cfg.OpenAI.Model,
				synthesis.DefaultMaxRetryAttempts,
			)
			defer func() {
				_ = synthClient.Close()
			}()

			var remote vault.RemoteVault
			if !guest {
				db, err := database.Open(cfg.Database)
				if err != nil {
					return fmt.Errorf("database.Open > %w", err)
				}
				defer func() { _ = db.Close() }()
				remote = vault.NewDBRemoteVault(db)
			}

			// The upsert is fire-and-forget relative to printing the result,
			// but the process still drains it before exiting.
			var background sync.WaitGroup
			defer background.Wait()
			executor := func(f func()) {
				background.Add(1)
				go func() {
					defer background.Done()
					f()
				}()
			}

			resolver := resolve.NewResolver(
				newEntryStore(cfg),
				synthClient,
				remote,
				resolve.WithExecutor(executor),
			)

			caller := identity.Identity{UserID: os.Getenv("EENDJOVO_USER")}
			caller.IsGuest = guest || caller.UserID == ""

			translateCLI := cli.NewTranslateCLI(resolver, cmd.OutOrStdout())
			return translateCLI.Run(cmd.Context(), resolve.Request{
				Text:       args[0],
				SourceLang: vault.Language(sourceLang),
				LinkActive: linkActive,
				Identity:   caller,
			})
		},
	}

	flags := cmd.Flags()
	flags.Var(&sourceLang, "from", fmt.Sprintf("Source language. Possible values are %v", vault.AllLanguages))
	flags.BoolVar(&forceOffline, "offline", false, "Skip the synthesis tier for this request")
	flags.BoolVar(&guest, "guest", false, "Resolve as a guest: never write to the remote vault")
	return cmd
}

package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/tulonga/eendjovo/internal/cli"
	"github.com/tulonga/eendjovo/internal/database"
	"github.com/tulonga/eendjovo/internal/export"
	"github.com/tulonga/eendjovo/internal/vault"
)

func newVaultCommand() *cobra.Command {
	rootCommand := cobra.Command{
		Use:   "vault",
		Short: "Inspect and maintain the knowledge vault",
	}

	rootCommand.AddCommand(
		newVaultListCommand(),
		newVaultSyncCommand(),
		newVaultExportCommand(),
		newVaultDeleteCommand(),
	)
	return &rootCommand
}

func newVaultListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print the local snapshot, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			return cli.NewVaultCLI(newEntryStore(cfg), cmd.OutOrStdout()).List()
		},
	}
}

func newVaultSyncCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "sync",
		Short: "Refresh the local snapshot from the remote vault",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}

			linkActive, err := snapshotLinkActive(cfg, false)
			if err != nil {
				return fmt.Errorf("snapshotLinkActive > %w", err)
			}

			db, err := database.Open(cfg.Database)
			if err != nil {
				return fmt.Errorf("database.Open > %w", err)
			}
			defer func() { _ = db.Close() }()

			syncer := vault.NewSyncer(newEntryStore(cfg), vault.NewDBRemoteVault(db))
			count, err := syncer.Refresh(cmd.Context(), linkActive)
			if err != nil {
				// The local snapshot is untouched; surface a soft warning only.
				fmt.Fprintf(cmd.OutOrStdout(), "refresh failed, local snapshot kept (%s)\n", syncer.State())
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "link %s, %d entries\n", syncer.State(), count)
			return nil
		},
	}
}

func newVaultExportCommand() *cobra.Command {
	formatName := string(export.FormatYAML)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the local snapshot to yaml, markdown or pdf",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}

			format, err := export.ParseFormat(formatName)
			if err != nil {
				return err
			}

			entries, err := newEntryStore(cfg).LoadAll()
			if err != nil {
				return fmt.Errorf("store.LoadAll > %w", err)
			}

			path, err := export.NewExporter(cfg.Outputs.ExportDirectory).Export(entries, format)
			if err != nil {
				return fmt.Errorf("exporter.Export > %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "exported %d entries to %s\n", len(entries), path)
			return nil
		},
	}

	cmd.Flags().StringVar(&formatName, "format", formatName,
		fmt.Sprintf("Output format. Possible values are %v", export.AllFormats))
	return cmd
}

func newVaultDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an entry from the remote vault by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid id %q: %w", args[0], err)
			}

			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}

			db, err := database.Open(cfg.Database)
			if err != nil {
				return fmt.Errorf("database.Open > %w", err)
			}
			defer func() { _ = db.Close() }()

			if err := vault.NewDBRemoteVault(db).Delete(cmd.Context(), id); err != nil {
				return fmt.Errorf("remote.Delete > %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "deleted entry %d\n", id)
			return nil
		},
	}
}

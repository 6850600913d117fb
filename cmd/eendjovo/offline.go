package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tulonga/eendjovo/internal/vault"
)

func newOfflineCommand() *cobra.Command {
	rootCommand := cobra.Command{
		Use:   "offline",
		Short: "Manage the persisted offline override",
	}

	setOverride := func(cmd *cobra.Command, forceOffline bool) error {
		cfg, err := loadConfig()
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		store := vault.NewSettingsStore(cfg.Vault.CacheDirectory)
		settings, err := store.Load()
		if err != nil {
			return fmt.Errorf("settings.Load > %w", err)
		}
		settings.ForceOffline = forceOffline
		if err := store.Save(settings); err != nil {
			return fmt.Errorf("settings.Save > %w", err)
		}
		if forceOffline {
			fmt.Fprintln(cmd.OutOrStdout(), "offline override enabled: the synthesis tier is disabled until turned off")
		} else {
			fmt.Fprintln(cmd.OutOrStdout(), "offline override disabled")
		}
		return nil
	}

	rootCommand.AddCommand(
		&cobra.Command{
			Use:   "on",
			Short: "Force every request to behave as disconnected",
			RunE: func(cmd *cobra.Command, args []string) error {
				return setOverride(cmd, true)
			},
		},
		&cobra.Command{
			Use:   "off",
			Short: "Clear the offline override",
			RunE: func(cmd *cobra.Command, args []string) error {
				return setOverride(cmd, false)
			},
		},
		&cobra.Command{
			Use:   "status",
			Short: "Print the persisted override",
			RunE: func(cmd *cobra.Command, args []string) error {
				cfg, err := loadConfig()
				if err != nil {
					return fmt.Errorf("failed to load configuration: %w", err)
				}
				settings, err := vault.NewSettingsStore(cfg.Vault.CacheDirectory).Load()
				if err != nil {
					return fmt.Errorf("settings.Load > %w", err)
				}
				if settings.ForceOffline {
					fmt.Fprintln(cmd.OutOrStdout(), "offline override: on")
				} else {
					fmt.Fprintln(cmd.OutOrStdout(), "offline override: off")
				}
				return nil
			},
		},
	)
	return &rootCommand
}

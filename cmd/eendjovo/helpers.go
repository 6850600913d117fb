package main

import (
	"fmt"
	"time"

	"github.com/tulonga/eendjovo/internal/config"
	"github.com/tulonga/eendjovo/internal/netlink"
	"github.com/tulonga/eendjovo/internal/vault"
)

func loadConfig() (*config.Config, error) {
	loader, err := config.NewConfigLoader(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to create config loader: %w", err)
	}
	return loader.Load()
}

// snapshotLinkActive reads the persisted offline override and probes
// connectivity once. The result is the per-request link snapshot: it is never
// re-read mid-request.
func snapshotLinkActive(cfg *config.Config, forceOffline bool) (bool, error) {
	settings, err := vault.NewSettingsStore(cfg.Vault.CacheDirectory).Load()
	if err != nil {
		return false, fmt.Errorf("settings.Load > %w", err)
	}

	checker := netlink.NewDialChecker(
		cfg.Network.ProbeAddress,
		time.Duration(cfg.Network.ProbeTimeoutSeconds)*time.Second,
	)
	return netlink.Active(checker, forceOffline || settings.ForceOffline), nil
}

func newEntryStore(cfg *config.Config) *vault.EntryStore {
	return vault.NewEntryStore(cfg.Vault.CacheDirectory, cfg.Vault.CacheCap)
}

package vault

import (
	"context"
	"fmt"
	"log/slog"
)

// LinkState describes the session's position in the reconnection cycle.
type LinkState string

const (
	LinkDisconnected LinkState = "disconnected"
	LinkReconnecting LinkState = "reconnecting"
	LinkSynced       LinkState = "synced"
)

// Syncer refreshes the local snapshot from the remote vault. The local
// snapshot is always served as-is first; a refresh replaces it only when it
// fully succeeds. A failed remote read never corrupts local state.
type Syncer struct {
	store  *EntryStore
	remote RemoteVault
	state  LinkState
}

// NewSyncer creates a Syncer starting in the disconnected state.
func NewSyncer(store *EntryStore, remote RemoteVault) *Syncer {
	return &Syncer{
		store:  store,
		remote: remote,
		state:  LinkDisconnected,
	}
}

// State returns the current link state.
func (s *Syncer) State() LinkState {
	return s.state
}

// Refresh replaces the local snapshot with the remote one if and only if
// linkActive is true. A remote failure is returned as a soft warning: the
// existing snapshot is left untouched and the state falls back to
// disconnected.
func (s *Syncer) Refresh(ctx context.Context, linkActive bool) (int, error) {
	if !linkActive {
		s.state = LinkDisconnected
		return 0, nil
	}

	s.state = LinkReconnecting
	entries, err := s.remote.SelectAll(ctx)
	if err != nil {
		s.state = LinkDisconnected
		slog.Default().Warn("remote vault refresh failed, keeping local snapshot",
			"error", err)
		return 0, fmt.Errorf("remote.SelectAll > %w", err)
	}

	if err := s.store.ReplaceAll(entries); err != nil {
		s.state = LinkDisconnected
		return 0, fmt.Errorf("store.ReplaceAll > %w", err)
	}

	s.state = LinkSynced
	return len(entries), nil
}

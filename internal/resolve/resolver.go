// Package resolve implements the translation resolution cascade: exact local
// match, generative synthesis, fuzzy local fallback. Strict precedence, no
// backtracking once a tier succeeds.
package resolve

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/tulonga/eendjovo/internal/identity"
	"github.com/tulonga/eendjovo/internal/synthesis"
	"github.com/tulonga/eendjovo/internal/vault"
)

// Source tags which tier produced a resolution.
type Source string

const (
	SourceVault    Source = "vault"
	SourceAI       Source = "ai"
	SourceFallback Source = "fallback"
)

// softReasonLinkInterrupted is recorded when the synthesis tier fails and the
// request degrades to the fuzzy tier.
const softReasonLinkInterrupted = "cognitive link interrupted"

// Request is one translation request. LinkActive is snapshotted by the caller
// once per request; the engine never re-reads ambient connectivity state.
type Request struct {
	Text       string
	SourceLang vault.Language
	LinkActive bool
	Identity   identity.Identity
}

// Resolution is a resolved translation tagged with the tier that produced it.
type Resolution struct {
	Entry  vault.Entry
	Source Source
	// SoftError carries the recorded synthesis failure reason when the
	// request degraded to the fuzzy tier.
	SoftError string
}

// Resolver applies the cascade against the local store, the synthesis client
// and the remote vault. The local cache is mutated only from the single
// request-handling flow, so no locking is needed.
type Resolver struct {
	store    *vault.EntryStore
	synth    synthesis.Client
	remote   vault.RemoteVault
	now      func() time.Time
	runAsync func(func())
	logger   *slog.Logger
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithClock overrides the timestamp source for synthesized entries.
func WithClock(now func() time.Time) Option {
	return func(r *Resolver) { r.now = now }
}

// WithExecutor overrides how the fire-and-forget remote upsert is scheduled.
// The default runs it on its own goroutine.
func WithExecutor(run func(func())) Option {
	return func(r *Resolver) { r.runAsync = run }
}

// NewResolver creates a Resolver. remote may be nil when no remote vault is
// configured; the persistence side effect is then local-only.
func NewResolver(store *vault.EntryStore, synth synthesis.Client, remote vault.RemoteVault, opts ...Option) *Resolver {
	r := &Resolver{
		store:    store,
		synth:    synth,
		remote:   remote,
		now:      time.Now,
		runAsync: func(f func()) { go f() },
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve resolves one translation request to an entry or a Failure. Tier
// precedence is strict: an exact local hit never touches the network, the
// synthesis tier runs only while the link is active, and the fuzzy tier is
// the last resort on any synthesis failure.
func (r *Resolver) Resolve(ctx context.Context, req Request) (Resolution, error) {
	text := vault.NormalizeWord(req.Text)
	if text == "" {
		return Resolution{}, &Failure{
			Kind:   FailureEmptyInput,
			Status: "nothing to translate",
		}
	}

	// Tier 1: exact local match. Zero latency, no network.
	if entry, err := r.store.FindExact(req.SourceLang, text); err != nil {
		r.logger.Warn("local snapshot unreadable, skipping exact tier", "error", err)
	} else if entry != nil {
		return Resolution{Entry: *entry, Source: SourceVault}, nil
	}

	var synthErr error
	if req.LinkActive {
		resolution, err := r.synthesize(ctx, req, text)
		if err == nil {
			return resolution, nil
		}
		synthErr = err
		r.logger.Warn(softReasonLinkInterrupted,
			"text", text,
			"sourceLang", req.SourceLang,
			"error", err)
	}

	// Tier 3: fuzzy fallback, first substring match wins.
	if entry, err := r.store.FindSubstring(req.SourceLang, text); err != nil {
		r.logger.Warn("local snapshot unreadable, skipping fuzzy tier", "error", err)
	} else if entry != nil {
		resolution := Resolution{Entry: *entry, Source: SourceFallback}
		if synthErr != nil {
			resolution.SoftError = softReasonLinkInterrupted
		}
		return resolution, nil
	}

	if !req.LinkActive {
		return Resolution{}, &Failure{
			Kind:   FailureNoNetworkLink,
			Status: fmt.Sprintf("isolated: no local match for %q", text),
		}
	}
	return Resolution{}, &Failure{
		Kind:   FailureSynthesisFailed,
		Status: fmt.Sprintf("synthesis and local fallback both failed for %q", text),
		cause:  synthErr,
	}
}

// synthesize runs tier 2 and its persistence side effects: the local prepend
// always, the remote upsert only for authenticated identities and only as a
// background task whose failure is logged and swallowed.
func (r *Resolver) synthesize(ctx context.Context, req Request, text string) (Resolution, error) {
	response, err := r.synth.Synthesize(ctx, synthesis.SynthesizeRequest{
		Text:       text,
		SourceLang: req.SourceLang,
	})
	if err != nil {
		return Resolution{}, fmt.Errorf("synth.Synthesize > %w", err)
	}

	entry := response.Entry
	if entry.WordFor(req.SourceLang) == "" || entry.WordFor(req.SourceLang.Other()) == "" {
		return Resolution{}, fmt.Errorf("synthesis returned an incomplete record for %q", text)
	}
	entry.IsVerified = false
	entry.CreatedAt = r.now()

	if err := r.store.Prepend(entry); err != nil {
		// The caller already has a correct answer; losing the cache write is
		// a soft condition.
		r.logger.Warn("failed to cache synthesized entry", "text", text, "error", err)
	}

	if r.remote != nil && !req.Identity.IsGuest {
		r.persistRemote(ctx, entry)
	}

	return Resolution{Entry: entry, Source: SourceAI}, nil
}

// persistRemote hands the best-effort upsert to the background executor. It
// must never block or fail the user-visible response.
func (r *Resolver) persistRemote(ctx context.Context, entry vault.Entry) {
	// The upsert outlives the request; only its values are inherited.
	ctx = context.WithoutCancel(ctx)
	r.runAsync(func() {
		if _, err := r.remote.Upsert(ctx, entry); err != nil {
			r.logger.Warn("remote vault upsert failed",
				"canonicalWord", entry.CanonicalWord(),
				"error", err)
		}
	})
}

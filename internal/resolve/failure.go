package resolve

import "fmt"

// FailureKind classifies why a resolution produced no entry.
type FailureKind string

const (
	// FailureEmptyInput rejects blank input before any tier runs.
	FailureEmptyInput FailureKind = "empty_input"
	// FailureNoNetworkLink means the synthesis tier was skipped because the
	// link was down and the fuzzy tier also missed.
	FailureNoNetworkLink FailureKind = "no_network_link"
	// FailureSynthesisFailed means the synthesis tier was attempted and
	// errored, and the fuzzy tier also missed.
	FailureSynthesisFailed FailureKind = "synthesis_failed"
)

// Failure is the only error Resolve returns. It carries a human-readable
// status alongside the taxonomy kind; the engine is immediately re-invocable
// after any failure.
type Failure struct {
	Kind   FailureKind
	Status string
	cause  error
}

func (f *Failure) Error() string {
	if f.cause != nil {
		return fmt.Sprintf("%s: %v", f.Status, f.cause)
	}
	return f.Status
}

func (f *Failure) Unwrap() error {
	return f.cause
}

// NoMatch reports whether every tier was exhausted without an entry, as
// opposed to the input being rejected outright.
func (f *Failure) NoMatch() bool {
	return f.Kind == FailureNoNetworkLink || f.Kind == FailureSynthesisFailed
}

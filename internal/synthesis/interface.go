package synthesis

import (
	"context"

	"github.com/tulonga/eendjovo/internal/vault"
)

//go:generate mockgen -source=interface.go -destination=../mocks/synthesis/mock_client.go -package=mock_synthesis

// Client interface defines the generative synthesis of dictionary entries
type Client interface {
	Synthesize(ctx context.Context, params SynthesizeRequest) (SynthesizeResponse, error)
}

// SynthesizeRequest holds one word to resolve and the language it was
// written in.
type SynthesizeRequest struct {
	Text       string         `json:"text"`
	SourceLang vault.Language `json:"source_lang"`
}

// SynthesizeResponse carries the structured record the model produced.
// EnglishWord and OshiwamboWord must both be present; dialect fields are
// optional.
type SynthesizeResponse struct {
	Entry vault.Entry
}

const (
	DefaultMaxRetryAttempts = 3
)

package openai

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/avast/retry-go"
	"github.com/sony/gobreaker"
	"resty.dev/v3"

	"github.com/tulonga/eendjovo/internal/synthesis"
	"github.com/tulonga/eendjovo/internal/vault"
)

type Client struct {
	httpClient       *resty.Client
	breaker          *gobreaker.CircuitBreaker
	model            string
	maxRetryAttempts uint
}

func NewClient(baseURL, apiKey, model string, retryAttempts uint) *Client {
	client := resty.New()
	if baseURL == "" {
		baseURL = "https://api.openai.com/v1"
	}
	client.SetBaseURL(baseURL)
	client.SetHeader("Authorization", "Bearer "+apiKey)
	client.SetHeader("Content-Type", "application/json")

	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    "synthesis",
		Timeout: 30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
	})

	return &Client{
		httpClient:       client,
		breaker:          breaker,
		model:            model,
		maxRetryAttempts: retryAttempts,
	}
}

func (client *Client) Close() error {
	return client.httpClient.Close()
}

// GetModel returns the model name configured for this client
func (client *Client) GetModel() string {
	return client.model
}

type ChatCompletionRequest struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	Temperature float32   `json:"temperature,omitempty"`
}

type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

type ChatCompletionResponse struct {
	ID      string   `json:"id"`
	Object  string   `json:"object"`
	Created int64    `json:"created"`
	Model   string   `json:"model"`
	Choices []Choice `json:"choices"`
	Usage   Usage    `json:"usage"`
}

type Choice struct {
	Index        int           `json:"index"`
	Message      ChoiceMessage `json:"message"`
	FinishReason string        `json:"finish_reason"`
}

type ChoiceMessage struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// entryRecord is the JSON contract the model must produce.
type entryRecord struct {
	EnglishWord           string `json:"english_word"`
	OshiwamboWord         string `json:"oshiwambo_word"`
	Category              string `json:"category"`
	WordType              string `json:"word_type"`
	UsageExampleEnglish   string `json:"usage_example_english"`
	UsageExampleOshiwambo string `json:"usage_example_oshiwambo"`
	DetectedDialect       string `json:"detected_dialect,omitempty"`
	DialectCorrectionNote string `json:"dialect_correction_note,omitempty"`
}

// isRetryableError determines if an error should trigger a retry
func isRetryableError(err error) bool {
	if err == nil {
		return false
	}
	// An open breaker means the service is already known to be failing.
	if err == gobreaker.ErrOpenState || err == gobreaker.ErrTooManyRequests {
		return false
	}

	// Retry on JSON parsing errors as they might be due to incomplete responses
	errStr := err.Error()
	if strings.Contains(errStr, "json.Unmarshal") || strings.Contains(errStr, "unexpected end of JSON input") {
		return true
	}

	// Retry on network-related errors
	if strings.Contains(errStr, "connection refused") || strings.Contains(errStr, "i/o timeout") {
		return true
	}

	// Retry on 5xx errors (server errors)
	if strings.Contains(errStr, "response error 5") {
		return true
	}

	// Retry on rate limiting (429)
	if strings.Contains(errStr, "response error 429") {
		return true
	}

	return false
}

// Synthesize implements the synthesis.Client interface
func (client *Client) Synthesize(
	ctx context.Context,
	params synthesis.SynthesizeRequest,
) (synthesis.SynthesizeResponse, error) {
	var result synthesis.SynthesizeResponse
	if err := retry.Do(
		func() error {
			response, err := client.breaker.Execute(func() (any, error) {
				return client.synthesize(ctx, params)
			})
			if err != nil {
				if !isRetryableError(err) {
					return retry.Unrecoverable(err)
				}
				return err
			}
			result = response.(synthesis.SynthesizeResponse)
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(client.maxRetryAttempts+1),
		retry.DelayType(func(n uint, err error, config *retry.Config) time.Duration {
			return retry.BackOffDelay(n, err, config)
		}),
	); err != nil {
		return synthesis.SynthesizeResponse{}, err
	}
	return result, nil
}

func (client *Client) getRequestBody(params synthesis.SynthesizeRequest) ChatCompletionRequest {
	systemPrompt := `You are a bilingual lexicographer for English and Oshiwambo (the Oshindonga and Oshikwanyama dialects spoken in northern Namibia).

GOAL
Given one word or short phrase and the language it is written in, produce a single dictionary record translating it into the other language.

STRICT OUTPUT: Return ONLY a JSON object, no text outside the JSON:
{
  "english_word": "<the English word>",
  "oshiwambo_word": "<the Oshiwambo word>",
  "category": "<plural form or noun class, free text>",
  "word_type": "<noun, verb, adjective, phrase, ...>",
  "usage_example_english": "<one natural English sentence using the word>",
  "usage_example_oshiwambo": "<the same sentence in Oshiwambo>",
  "detected_dialect": "<oshindonga or oshikwanyama when the input form is dialect-specific, else omit>",
  "dialect_correction_note": "<short note when the input was a non-canonical dialect form, else omit>"
}

RULES
- Both word fields, category, word_type and both usage examples are REQUIRED.
- Keep the input word on its own side: if the input is English, it belongs in english_word; if Oshiwambo, in oshiwambo_word.
- When the input is a recognizable variant from one dialect, set detected_dialect and explain the canonical form in dialect_correction_note.
- If you cannot produce a faithful translation, still return the JSON with your best literal rendering. Never apologize, never add commentary.`

	// One worked example keeps the model on the JSON contract.
	exampleUser := `{"text":"evening","source_lang":"english"}`
	exampleAssistant := `{"english_word":"evening","oshiwambo_word":"onguloshi","category":"eenguloshi","word_type":"noun","usage_example_english":"We arrived in the evening.","usage_example_oshiwambo":"Otwa thiki onguloshi.","detected_dialect":"oshikwanyama"}`

	userContent, _ := json.Marshal(params)

	return ChatCompletionRequest{
		Model:       client.model,
		Temperature: 0.3,
		Messages: []Message{
			{Role: RoleSystem, Content: systemPrompt},
			{Role: RoleUser, Content: exampleUser},
			{Role: RoleAssistant, Content: exampleAssistant},
			{Role: RoleUser, Content: string(userContent)},
		},
	}
}

func (client *Client) synthesize(
	ctx context.Context,
	params synthesis.SynthesizeRequest,
) (synthesis.SynthesizeResponse, error) {
	requestBody := client.getRequestBody(params)

	response, err := client.httpClient.R().
		SetContext(ctx).
		SetBody(requestBody).
		SetResult(&ChatCompletionResponse{}).
		Post("/chat/completions")
	if err != nil {
		return synthesis.SynthesizeResponse{}, fmt.Errorf("httpClient.Post > %w", err)
	}
	if response.IsError() {
		return synthesis.SynthesizeResponse{}, fmt.Errorf("response error %d: %s", response.StatusCode(), response.String())
	}

	responseBody := response.Result().(*ChatCompletionResponse)
	if responseBody == nil || len(responseBody.Choices) == 0 {
		return synthesis.SynthesizeResponse{}, fmt.Errorf("empty response body or choices: %s", response.String())
	}

	content := responseBody.Choices[0].Message.Content
	if content == "" {
		return synthesis.SynthesizeResponse{}, fmt.Errorf("empty response content: %s", response.String())
	}
	slog.Default().Debug("synthesis response content",
		"request", requestBody,
		"response", responseBody,
	)

	var decoded entryRecord
	if err := json.NewDecoder(strings.NewReader(content)).Decode(&decoded); err != nil {
		slog.Default().Error("Failed to parse synthesis response as JSON",
			"text", params.Text,
			"error", err)
		return synthesis.SynthesizeResponse{}, fmt.Errorf("json.Unmarshal(%s) > %w", content, err)
	}
	if decoded.EnglishWord == "" || decoded.OshiwamboWord == "" {
		return synthesis.SynthesizeResponse{}, fmt.Errorf("incomplete record for %q: both word fields are required", params.Text)
	}

	return synthesis.SynthesizeResponse{
		Entry: vault.Entry{
			EnglishWord:           decoded.EnglishWord,
			OshiwamboWord:         decoded.OshiwamboWord,
			Category:              decoded.Category,
			WordType:              decoded.WordType,
			UsageExampleEnglish:   decoded.UsageExampleEnglish,
			UsageExampleOshiwambo: decoded.UsageExampleOshiwambo,
			DetectedDialect:       decoded.DetectedDialect,
			DialectCorrectionNote: decoded.DialectCorrectionNote,
		},
	}, nil
}

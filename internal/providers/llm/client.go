// Package llm adapts an OpenAI-compatible chat-completion API into the two
// narrow operations the copy generator needs: plain text completion and
// structured (JSON) completion. It classifies upstream failures but performs
// no retries; retry policy belongs to the caller.
package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

const (
	defaultModel       = "gpt-4o"
	defaultTemperature = 0.8
	defaultMaxTokens   = 500

	// jsonContract is appended to the system prompt for structured calls.
	jsonContract = "응답은 반드시 유효한 JSON 형식으로만 제공하세요."
)

// Options configures a Client. Zero fields fall back to defaults; only the
// API key is required.
type Options struct {
	APIKey      string
	Model       string
	BaseURL     string
	Org         string
	Temperature float32
	MaxTokens   int
	SpeechModel string
	SpeechVoice string
	HTTPClient  *http.Client
}

// Client wraps the go-openai client with the service's completion contract.
type Client struct {
	api         *openai.Client
	model       string
	temperature float32
	maxTokens   int
	speechModel string
	speechVoice string
}

// New constructs a Client from options.
func New(opts Options) (*Client, error) {
	if strings.TrimSpace(opts.APIKey) == "" {
		return nil, errors.New("llm: api key is required")
	}
	cfg := openai.DefaultConfig(strings.TrimSpace(opts.APIKey))
	if base := strings.TrimRight(opts.BaseURL, "/"); base != "" {
		cfg.BaseURL = base
	}
	if opts.Org != "" {
		cfg.OrgID = opts.Org
	}
	if opts.HTTPClient != nil {
		cfg.HTTPClient = opts.HTTPClient
	}
	model := strings.TrimSpace(opts.Model)
	if model == "" {
		model = defaultModel
	}
	temperature := opts.Temperature
	if temperature == 0 {
		temperature = defaultTemperature
	}
	maxTokens := opts.MaxTokens
	if maxTokens == 0 {
		maxTokens = defaultMaxTokens
	}
	speechModel := strings.TrimSpace(opts.SpeechModel)
	if speechModel == "" {
		speechModel = defaultSpeechModel
	}
	speechVoice := strings.TrimSpace(opts.SpeechVoice)
	if speechVoice == "" {
		speechVoice = defaultSpeechVoice
	}
	return &Client{
		api:         openai.NewClientWithConfig(cfg),
		model:       model,
		temperature: temperature,
		maxTokens:   maxTokens,
		speechModel: speechModel,
		speechVoice: speechVoice,
	}, nil
}

// Model reports the configured model identifier, used in response metadata.
func (c *Client) Model() string { return c.model }

// CompleteText sends the instruction pair and returns the trimmed content of
// the first choice. An answer without content is ErrMissingResponse.
func (c *Client) CompleteText(ctx context.Context, system, user string) (string, error) {
	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
		Temperature: c.temperature,
		MaxTokens:   c.maxTokens,
	})
	if err != nil {
		return "", classify(err)
	}
	if len(resp.Choices) == 0 {
		return "", ErrMissingResponse
	}
	text := strings.TrimSpace(resp.Choices[0].Message.Content)
	if text == "" {
		return "", ErrMissingResponse
	}
	return text, nil
}

// CompleteJSON demands strictly valid JSON on top of the system prompt,
// extracts the JSON payload from the (possibly fenced) response, and returns
// its raw bytes. A payload that fails to parse at every extraction stage is a
// *ParseError carrying the raw model output.
func (c *Client) CompleteJSON(ctx context.Context, system, user string) (json.RawMessage, error) {
	text, err := c.CompleteText(ctx, system+"\n\n"+jsonContract, user)
	if err != nil {
		return nil, err
	}
	fragment := extractJSONFragment(text)
	if fragment == "" {
		return nil, &ParseError{Raw: text, cause: errors.New("empty payload")}
	}
	if !json.Valid([]byte(fragment)) {
		return nil, &ParseError{Raw: text, cause: errors.New("malformed payload")}
	}
	return json.RawMessage(fragment), nil
}

// classify maps go-openai errors onto the service's upstream taxonomy.
func classify(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return &UpstreamError{
			Kind:    kindForStatus(apiErr.HTTPStatusCode),
			Status:  apiErr.HTTPStatusCode,
			Message: apiErr.Message,
			cause:   err,
		}
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return &UpstreamError{
			Kind:    kindForStatus(reqErr.HTTPStatusCode),
			Status:  reqErr.HTTPStatusCode,
			Message: reqErr.Error(),
			cause:   err,
		}
	}
	return &UpstreamError{Kind: KindOther, Message: err.Error(), cause: err}
}

func kindForStatus(status int) Kind {
	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return KindAuth
	case status == http.StatusTooManyRequests:
		return KindRateLimit
	case status >= 500:
		return KindServer
	}
	return KindOther
}

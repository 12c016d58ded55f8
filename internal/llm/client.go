package llm

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// Client is the provider boundary behind résumé enrichment: one prompt in,
// the completion text out.
type Client interface {
	GenerateContent(ctx context.Context, prompt string, tier ModelTier) (string, error)
	// GetModel returns the provider model name used for tier.
	GetModel(tier ModelTier) string
	Close() error
}

// BlockedError reports a completion withheld by the provider, either because
// the prompt was rejected or because the candidate stopped on a safety check.
type BlockedError struct {
	Model  string
	Reason string
}

func (e *BlockedError) Error() string {
	return fmt.Sprintf("%s withheld the completion: %s", e.Model, e.Reason)
}

// NewClient returns the client for config.Provider. A nil config means DefaultConfig.
func NewClient(ctx context.Context, config *Config, apiKey string) (Client, error) {
	if config == nil {
		config = DefaultConfig()
	}
	switch config.Provider {
	case ProviderGemini, "":
		return NewGeminiClient(ctx, config, apiKey)
	default:
		return nil, fmt.Errorf("unsupported provider: %s", config.Provider)
	}
}

// GeminiClient talks to Google Gemini. Models are built once per tier with the
// configured temperature and output cap, then reused across calls.
type GeminiClient struct {
	client *genai.Client
	config *Config

	mu     sync.Mutex
	models map[ModelTier]*genai.GenerativeModel
}

// NewGeminiClient authenticates with apiKey.
func NewGeminiClient(ctx context.Context, config *Config, apiKey string) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiClient{
		client: client,
		config: config,
		models: make(map[ModelTier]*genai.GenerativeModel),
	}, nil
}

// GenerateContent sends prompt to the model for tier. Config.Timeout, when
// set, bounds the call on top of ctx.
func (c *GeminiClient) GenerateContent(ctx context.Context, prompt string, tier ModelTier) (string, error) {
	model, name, err := c.model(tier)
	if err != nil {
		return "", err
	}

	if c.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.config.Timeout)
		defer cancel()
	}

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("%s: failed to generate content: %w", name, err)
	}
	return responseText(name, resp)
}

func (c *GeminiClient) model(tier ModelTier) (*genai.GenerativeModel, string, error) {
	name := c.config.GetModel(tier)
	if name == "" {
		return nil, "", fmt.Errorf("no model configured for tier %s", tier)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if m, ok := c.models[tier]; ok {
		return m, name, nil
	}
	m := c.client.GenerativeModel(name)
	m.SetTemperature(c.config.Temperature)
	if c.config.MaxOutputTokens > 0 {
		m.SetMaxOutputTokens(c.config.MaxOutputTokens)
	}
	c.models[tier] = m
	return m, name, nil
}

// GetModel implements Client.
func (c *GeminiClient) GetModel(tier ModelTier) string {
	return c.config.GetModel(tier)
}

// Close implements Client.
func (c *GeminiClient) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

// responseText concatenates the text parts of the first candidate. Blocked
// prompts and safety or recitation stops are reported as *BlockedError.
func responseText(model string, resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil {
		return "", fmt.Errorf("%s returned no response", model)
	}
	if fb := resp.PromptFeedback; fb != nil && fb.BlockReason != genai.BlockReasonUnspecified {
		return "", &BlockedError{Model: model, Reason: fb.BlockReason.String()}
	}
	if len(resp.Candidates) == 0 {
		return "", fmt.Errorf("%s returned no candidates", model)
	}

	candidate := resp.Candidates[0]
	switch candidate.FinishReason {
	case genai.FinishReasonSafety, genai.FinishReasonRecitation:
		return "", &BlockedError{Model: model, Reason: candidate.FinishReason.String()}
	}

	var b strings.Builder
	if candidate.Content != nil {
		for _, part := range candidate.Content.Parts {
			if text, ok := part.(genai.Text); ok {
				b.WriteString(string(text))
			}
		}
	}
	if b.Len() == 0 {
		return "", fmt.Errorf("%s returned no text", model)
	}
	return b.String(), nil
}

package enrichment

import (
	"context"
	"fmt"

	"github.com/jonathan/resume-editor/internal/llm"
)

// Completer is the text-completion boundary: one prompt in, raw text out.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// CompleterFunc adapts a plain function to Completer.
type CompleterFunc func(ctx context.Context, prompt string) (string, error)

// Complete calls f.
func (f CompleterFunc) Complete(ctx context.Context, prompt string) (string, error) {
	return f(ctx, prompt)
}

// LLMCompleter sends prompts to an llm.Client at a fixed model tier.
type LLMCompleter struct {
	Client llm.Client
	Tier   llm.ModelTier
}

// NewLLMCompleter wraps client. An empty tier means llm.TierStandard.
func NewLLMCompleter(client llm.Client, tier llm.ModelTier) *LLMCompleter {
	if tier == "" {
		tier = llm.TierStandard
	}
	return &LLMCompleter{Client: client, Tier: tier}
}

// Complete implements Completer.
func (c *LLMCompleter) Complete(ctx context.Context, prompt string) (string, error) {
	if c.Client == nil {
		return "", fmt.Errorf("no LLM client configured")
	}
	return c.Client.GenerateContent(ctx, prompt, c.Tier)
}

// Close releases the underlying client.
func (c *LLMCompleter) Close() error {
	if c.Client == nil {
		return nil
	}
	return c.Client.Close()
}

// Package enrichment generates résumé text (bullet points, summaries and
// ATS feedback) through a text-completion service.
//
// Every call is a single request: no retry, no backoff and no parsing beyond
// splitting bullet output into lines.
package enrichment

import (
	"context"
	"strings"

	"github.com/jonathan/resume-editor/internal/prompts"
	"github.com/jonathan/resume-editor/internal/types"
)

// Enricher builds prompts and interprets completions.
type Enricher struct {
	completer Completer
}

// New returns an Enricher backed by completer.
func New(completer Completer) *Enricher {
	return &Enricher{completer: completer}
}

// GenerateBulletPoints asks for 3-4 achievement-oriented bullet points for a
// role and returns them one per line, blank lines dropped.
func (e *Enricher) GenerateBulletPoints(ctx context.Context, role, experienceContext string) ([]string, error) {
	text, err := e.complete(ctx, "bullet points", prompts.KeyBulletPoints, map[string]string{
		"Role":       role,
		"Experience": experienceContext,
	})
	if err != nil {
		return nil, err
	}
	return SplitBullets(text), nil
}

// GenerateSummary asks for a 2-3 sentence professional summary. The response
// is returned unmodified.
func (e *Enricher) GenerateSummary(ctx context.Context, experienceContext string, skills []string) (string, error) {
	return e.complete(ctx, "summary", prompts.KeySummary, map[string]string{
		"Experience": experienceContext,
		"Skills":     strings.Join(skills, ", "),
	})
}

// Analyze asks for an ATS score out of 100, missing keywords and suggestions
// for a serialized résumé. The response is returned for direct display.
func (e *Enricher) Analyze(ctx context.Context, serializedResume string) (string, error) {
	return e.complete(ctx, "analyze", prompts.KeyAnalyze, map[string]string{
		"Resume": serializedResume,
	})
}

func (e *Enricher) complete(ctx context.Context, op, key string, data map[string]string) (string, error) {
	if e == nil || e.completer == nil {
		return "", &APICallError{Operation: op, Message: "no text-completion service configured"}
	}

	prompt, err := prompts.Render(prompts.EnrichmentFile, key, data)
	if err != nil {
		return "", &APICallError{Operation: op, Message: "failed to build prompt", Cause: err}
	}

	text, err := e.completer.Complete(ctx, prompt)
	if err != nil {
		return "", &APICallError{Operation: op, Message: "failed to generate content", Cause: err}
	}
	return text, nil
}

// SplitBullets splits raw completion text into lines, trimming whitespace and
// dropping blank lines.
func SplitBullets(text string) []string {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	bullets := make([]string, 0, len(lines))
	for _, line := range lines {
		if line = strings.TrimSpace(line); line != "" {
			bullets = append(bullets, line)
		}
	}
	return bullets
}

// ExperienceContext describes the work history as "Position at Company"
// phrases joined by ", ", in stored order.
func ExperienceContext(r types.Resume) string {
	parts := make([]string, 0, len(r.WorkExperience))
	for _, exp := range r.WorkExperience {
		parts = append(parts, exp.Position+" at "+exp.Company)
	}
	return strings.Join(parts, ", ")
}

// ItemContext describes a single role for bullet generation: its company and
// any description lines already written.
func ItemContext(exp types.WorkExperience) string {
	parts := make([]string, 0, len(exp.Description)+1)
	if exp.Company != "" {
		parts = append(parts, "Company: "+exp.Company)
	}
	parts = append(parts, exp.Description...)
	return strings.Join(parts, "\n")
}

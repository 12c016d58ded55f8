package enrichment

import (
	"context"
	"errors"
	"testing"

	"github.com/jonathan/resume-editor/internal/llm"
	"github.com/jonathan/resume-editor/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingCompleter struct {
	response string
	err      error
	prompts  []string
}

func (c *recordingCompleter) Complete(_ context.Context, prompt string) (string, error) {
	c.prompts = append(c.prompts, prompt)
	return c.response, c.err
}

func TestSplitBullets(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "blank lines dropped",
			text: "Led migration.\n\nImproved latency by 30%.\n",
			want: []string{"Led migration.", "Improved latency by 30%."},
		},
		{
			name: "whitespace trimmed",
			text: "  Built X  \r\n\t\r\nShipped Y",
			want: []string{"Built X", "Shipped Y"},
		},
		{
			name: "empty response",
			text: "",
			want: []string{},
		},
		{
			name: "only whitespace",
			text: "\n  \n",
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitBullets(tt.text))
		})
	}
}

func TestGenerateBulletPoints(t *testing.T) {
	completer := &recordingCompleter{response: "Led migration.\n\nImproved latency by 30%.\n"}
	e := New(completer)

	bullets, err := e.GenerateBulletPoints(context.Background(), "Engineer", "Company: Acme")
	require.NoError(t, err)
	assert.Equal(t, []string{"Led migration.", "Improved latency by 30%."}, bullets)

	require.Len(t, completer.prompts, 1)
	assert.Contains(t, completer.prompts[0], "Role: Engineer")
	assert.Contains(t, completer.prompts[0], "Experience: Company: Acme")
	assert.Contains(t, completer.prompts[0], "3-4 impactful bullet points")
}

func TestGenerateSummary_ReturnsRawText(t *testing.T) {
	completer := &recordingCompleter{response: "  Seasoned engineer.\n"}
	e := New(completer)

	summary, err := e.GenerateSummary(context.Background(), "Engineer at Acme", []string{"Go", "SQL"})
	require.NoError(t, err)
	assert.Equal(t, "  Seasoned engineer.\n", summary)
	assert.Contains(t, completer.prompts[0], "Experience: Engineer at Acme")
	assert.Contains(t, completer.prompts[0], "Skills: Go, SQL")
	assert.Contains(t, completer.prompts[0], "(2-3 sentences)")
}

func TestAnalyze(t *testing.T) {
	completer := &recordingCompleter{response: "Score: 72/100"}
	e := New(completer)

	feedback, err := e.Analyze(context.Background(), `{"summary":"x"}`)
	require.NoError(t, err)
	assert.Equal(t, "Score: 72/100", feedback)
	assert.Contains(t, completer.prompts[0], `{"summary":"x"}`)
	assert.Contains(t, completer.prompts[0], "ATS compatibility score (out of 100)")
}

func TestCompletionFailureIsAPICallError(t *testing.T) {
	cause := errors.New("quota exceeded")
	e := New(&recordingCompleter{err: cause})

	_, err := e.GenerateBulletPoints(context.Background(), "Engineer", "")
	var apiErr *APICallError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "bullet points", apiErr.Operation)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "quota exceeded")

	_, err = e.Analyze(context.Background(), "{}")
	assert.ErrorAs(t, err, &apiErr)
}

func TestNilCompleter(t *testing.T) {
	_, err := New(nil).GenerateSummary(context.Background(), "", nil)
	var apiErr *APICallError
	assert.ErrorAs(t, err, &apiErr)

	var nilEnricher *Enricher
	_, err = nilEnricher.Analyze(context.Background(), "{}")
	assert.ErrorAs(t, err, &apiErr)
}

func TestExperienceContext(t *testing.T) {
	r := types.NewResume()
	assert.Equal(t, "", ExperienceContext(r))

	r.WorkExperience = []types.WorkExperience{
		{ID: "1", Position: "Engineer", Company: "Acme"},
		{ID: "2", Position: "Lead", Company: "Globex"},
	}
	assert.Equal(t, "Engineer at Acme, Lead at Globex", ExperienceContext(r))
}

func TestItemContext(t *testing.T) {
	assert.Equal(t, "", ItemContext(types.WorkExperience{}))
	assert.Equal(t, "Company: Acme\nBuilt X", ItemContext(types.WorkExperience{
		Company: "Acme", Description: []string{"Built X"},
	}))
}

type stubClient struct {
	tier llm.ModelTier
}

func (c *stubClient) GenerateContent(_ context.Context, _ string, tier llm.ModelTier) (string, error) {
	c.tier = tier
	return "ok", nil
}

func (c *stubClient) GetModel(llm.ModelTier) string { return "stub" }

func (c *stubClient) Close() error { return nil }

func TestLLMCompleter(t *testing.T) {
	client := &stubClient{}
	c := NewLLMCompleter(client, "")
	assert.Equal(t, llm.TierStandard, c.Tier)

	text, err := c.Complete(context.Background(), "hi")
	require.NoError(t, err)
	assert.Equal(t, "ok", text)
	assert.Equal(t, llm.TierStandard, client.tier)
	assert.NoError(t, c.Close())

	_, err = (&LLMCompleter{}).Complete(context.Background(), "hi")
	assert.Error(t, err)
}

func TestCompleterFunc(t *testing.T) {
	f := CompleterFunc(func(_ context.Context, prompt string) (string, error) {
		return prompt + "!", nil
	})
	text, err := f.Complete(context.Background(), "hi")
	require.NoError(t, err)
	assert.Equal(t, "hi!", text)
}

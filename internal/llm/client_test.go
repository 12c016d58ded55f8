package llm

import (
	"testing"

	"github.com/google/generative-ai-go/genai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func textCandidate(parts ...string) *genai.Candidate {
	content := &genai.Content{}
	for _, p := range parts {
		content.Parts = append(content.Parts, genai.Text(p))
	}
	return &genai.Candidate{Content: content, FinishReason: genai.FinishReasonStop}
}

func TestResponseText(t *testing.T) {
	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{textCandidate("Led migration.\n", "Cut latency.")},
	}
	text, err := responseText("gemini-2.5-flash", resp)
	require.NoError(t, err)
	assert.Equal(t, "Led migration.\nCut latency.", text)
}

func TestResponseText_Empty(t *testing.T) {
	tests := []struct {
		name string
		resp *genai.GenerateContentResponse
	}{
		{name: "nil response", resp: nil},
		{name: "no candidates", resp: &genai.GenerateContentResponse{}},
		{name: "no content", resp: &genai.GenerateContentResponse{Candidates: []*genai.Candidate{{}}}},
		{name: "no parts", resp: &genai.GenerateContentResponse{Candidates: []*genai.Candidate{textCandidate()}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := responseText("m", tt.resp)
			require.Error(t, err)
			var blocked *BlockedError
			assert.NotErrorAs(t, err, &blocked)
		})
	}
}

func TestResponseText_Blocked(t *testing.T) {
	tests := []struct {
		name string
		resp *genai.GenerateContentResponse
	}{
		{
			name: "prompt rejected",
			resp: &genai.GenerateContentResponse{
				PromptFeedback: &genai.PromptFeedback{BlockReason: genai.BlockReasonSafety},
			},
		},
		{
			name: "safety stop",
			resp: &genai.GenerateContentResponse{Candidates: []*genai.Candidate{{
				Content:      &genai.Content{Parts: []genai.Part{genai.Text("partial")}},
				FinishReason: genai.FinishReasonSafety,
			}}},
		},
		{
			name: "recitation stop",
			resp: &genai.GenerateContentResponse{Candidates: []*genai.Candidate{{
				FinishReason: genai.FinishReasonRecitation,
			}}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := responseText("gemini-2.5-pro", tt.resp)
			var blocked *BlockedError
			require.ErrorAs(t, err, &blocked)
			assert.Equal(t, "gemini-2.5-pro", blocked.Model)
			assert.NotEmpty(t, blocked.Reason)
		})
	}
}

func TestResponseText_UnblockedFeedbackIgnored(t *testing.T) {
	resp := &genai.GenerateContentResponse{
		PromptFeedback: &genai.PromptFeedback{},
		Candidates:     []*genai.Candidate{textCandidate("ok")},
	}
	text, err := responseText("m", resp)
	require.NoError(t, err)
	assert.Equal(t, "ok", text)
}

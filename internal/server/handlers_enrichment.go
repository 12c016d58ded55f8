package server

import (
	"context"
	"errors"
	"net/http"

	"github.com/jonathan/resume-editor/internal/editor"
)

// BulletsResponse is returned after bullet generation for an experience item.
type BulletsResponse struct {
	ID      string   `json:"id"`
	Bullets []string `json:"bullets"`
	ResumeResponse
}

// SummaryResponse is returned after summary generation.
type SummaryResponse struct {
	Summary string `json:"summary"`
	ResumeResponse
}

// FeedbackResponse carries ATS analysis text.
type FeedbackResponse struct {
	Feedback string `json:"feedback"`
}

// warning extracts the message of a persistence failure, or reports that err
// is a real failure.
func warning(err error) (string, bool) {
	if err == nil {
		return "", true
	}
	var saveErr *editor.SaveError
	if errors.As(err, &saveErr) {
		return err.Error(), true
	}
	return "", false
}

func (s *Server) handleGenerateBullets(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	bullets, err := s.session.GenerateBullets(context.WithoutCancel(r.Context()), id)
	warn, ok := warning(err)
	if !ok {
		s.fail(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, BulletsResponse{
		ID:             id,
		Bullets:        bullets,
		ResumeResponse: ResumeResponse{Resume: s.session.Current(), Warning: warn},
	})
}

func (s *Server) handleGenerateSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := s.session.GenerateSummary(context.WithoutCancel(r.Context()))
	warn, ok := warning(err)
	if !ok {
		s.fail(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, SummaryResponse{
		Summary:        summary,
		ResumeResponse: ResumeResponse{Resume: s.session.Current(), Warning: warn},
	})
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	feedback, err := s.session.Analyze(r.Context())
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, FeedbackResponse{Feedback: feedback})
}

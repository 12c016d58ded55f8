package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/jonathan/resume-editor/internal/editor"
	"github.com/jonathan/resume-editor/internal/sections"
	"github.com/jonathan/resume-editor/internal/types"
)

const maxBodyBytes = 1 << 20

// ResumeResponse carries the résumé after a read or an edit. Warning is set
// when the edit was applied but could not be persisted.
type ResumeResponse struct {
	Resume  types.Resume `json:"resume"`
	ID      string       `json:"id,omitempty"`
	Warning string       `json:"warning,omitempty"`
}

type validatable interface {
	Validate() error
}

// decodeRequest reads a JSON body into req and validates it.
func decodeRequest(w http.ResponseWriter, r *http.Request, req validatable) error {
	body := http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(body).Decode(req); err != nil {
		if errors.Is(err, io.EOF) {
			return &ErrValidation{Field: "body", Message: "request body is required"}
		}
		return &ErrValidation{Field: "body", Message: "invalid JSON: " + err.Error()}
	}
	if err := req.Validate(); err != nil {
		return &ErrValidation{Field: "body", Message: err.Error()}
	}
	return nil
}

// respondEdit writes the outcome of a session edit. A failed save still
// reports the applied résumé.
func (s *Server) respondEdit(w http.ResponseWriter, r *http.Request, status int, resume types.Resume, id string, err error) {
	warn, ok := warning(err)
	if !ok {
		s.fail(w, r, err)
		return
	}
	s.jsonResponse(w, status, ResumeResponse{Resume: resume, ID: id, Warning: warn})
}

func (s *Server) handleGetResume(w http.ResponseWriter, _ *http.Request) {
	resp := ResumeResponse{Resume: s.session.Current()}
	if err := s.session.Corrupt(); err != nil {
		resp.Warning = "stored resume was unreadable and has been replaced: " + err.Error()
	}
	s.jsonResponse(w, http.StatusOK, resp)
}

func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	resume, err := s.session.Reset(r.Context())
	s.respondEdit(w, r, http.StatusOK, resume, "", err)
}

func (s *Server) handleUpdatePersonal(w http.ResponseWriter, r *http.Request) {
	var req types.PersonalUpdateRequest
	if err := decodeRequest(w, r, &req); err != nil {
		s.fail(w, r, err)
		return
	}
	resume, err := s.session.UpdatePersonal(r.Context(), req.Field, req.Value)
	s.respondEdit(w, r, http.StatusOK, resume, "", err)
}

func (s *Server) handleSetSummary(w http.ResponseWriter, r *http.Request) {
	var req types.SummaryUpdateRequest
	if err := decodeRequest(w, r, &req); err != nil {
		s.fail(w, r, err)
		return
	}
	resume, err := s.session.SetSummary(r.Context(), req.Summary)
	s.respondEdit(w, r, http.StatusOK, resume, "", err)
}

func (s *Server) handleSetList(w http.ResponseWriter, r *http.Request) {
	section := types.Section(r.PathValue("name"))
	if !section.IsFlatList() {
		s.fail(w, r, &sections.UnknownSectionError{Section: string(section)})
		return
	}

	var req types.ListUpdateRequest
	if err := decodeRequest(w, r, &req); err != nil {
		s.fail(w, r, err)
		return
	}
	items := req.Items
	if req.Text != nil {
		items = sections.ParseBlock(*req.Text)
	}

	resume, err := s.session.SetList(r.Context(), section, items)
	s.respondEdit(w, r, http.StatusOK, resume, "", err)
}

func (s *Server) handleAddItem(w http.ResponseWriter, r *http.Request) {
	id, resume, err := s.session.AddItem(r.Context(), types.Section(r.PathValue("section")))
	s.respondEdit(w, r, http.StatusCreated, resume, id, err)
}

// handleUpdateItem sets one field of an item. An unknown id is reported as
// 404 even though the edit itself would be a no-op.
func (s *Server) handleUpdateItem(w http.ResponseWriter, r *http.Request) {
	section := types.Section(r.PathValue("section"))
	id := r.PathValue("id")

	var req types.ItemUpdateRequest
	if err := decodeRequest(w, r, &req); err != nil {
		s.fail(w, r, err)
		return
	}
	if err := s.requireItem(section, id); err != nil {
		s.fail(w, r, err)
		return
	}

	resume, err := s.session.UpdateItem(r.Context(), section, id, req.Field, req.Value)
	s.respondEdit(w, r, http.StatusOK, resume, id, err)
}

// handleRemoveItem deletes an item. Removing an unknown id succeeds.
func (s *Server) handleRemoveItem(w http.ResponseWriter, r *http.Request) {
	resume, err := s.session.RemoveItem(r.Context(), types.Section(r.PathValue("section")), r.PathValue("id"))
	s.respondEdit(w, r, http.StatusOK, resume, "", err)
}

func (s *Server) requireItem(section types.Section, id string) error {
	found, err := sections.HasItem(s.session.Current(), section, id)
	if err != nil {
		return err
	}
	if !found {
		return &editor.ItemNotFoundError{Section: section, ID: id}
	}
	return nil
}

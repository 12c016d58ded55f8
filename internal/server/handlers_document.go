package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/jonathan/resume-editor/internal/rendering"
	"github.com/jonathan/resume-editor/internal/types"
)

// PreviewEvent is the payload of a "preview" stream event.
type PreviewEvent struct {
	Template string `json:"template"`
	HTML     string `json:"html"`
}

func (s *Server) handleSections(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]any{"sections": types.Sections()})
}

func (s *Server) handleTemplates(w http.ResponseWriter, _ *http.Request) {
	def := s.template
	if def == "" {
		def = types.DefaultTemplateKey
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"templates": types.Templates(),
		"default":   def,
	})
}

// selectTemplate resolves the ?template= query parameter, falling back to the
// server default.
func (s *Server) selectTemplate(r *http.Request) (types.Template, error) {
	key := r.URL.Query().Get("template")
	if key == "" {
		key = s.template
	}
	t, ok := types.LookupTemplate(key)
	if !ok {
		return types.Template{}, &ErrNotFound{Resource: "template", ID: key}
	}
	return t, nil
}

func (s *Server) handleLayout(w http.ResponseWriter, r *http.Request) {
	t, err := s.selectTemplate(r)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, rendering.Compose(s.session.Current(), t))
}

func (s *Server) handlePreview(w http.ResponseWriter, r *http.Request) {
	t, err := s.selectTemplate(r)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	html, err := rendering.RenderPreview(rendering.Compose(s.session.Current(), t))
	if err != nil {
		s.fail(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(html))
}

// handlePreviewStream sends the rendered preview immediately and again after
// every accepted edit until the client disconnects.
func (s *Server) handlePreviewStream(w http.ResponseWriter, r *http.Request) {
	t, err := s.selectTemplate(r)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	updates, cancel := s.session.Subscribe()
	defer cancel()

	// Streams outlive the server write timeout.
	_ = http.NewResponseController(w).SetWriteDeadline(time.Time{})

	sse, err := NewSSEWriter(w)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	send := func(resume types.Resume) error {
		html, err := rendering.RenderPreview(rendering.Compose(resume, t))
		if err != nil {
			_ = sse.WriteError(err.Error())
			return err
		}
		return sse.WriteEvent("preview", PreviewEvent{Template: t.Key, HTML: html})
	}

	if err := send(s.session.Current()); err != nil {
		return
	}
	for {
		select {
		case <-r.Context().Done():
			return
		case resume, ok := <-updates:
			if !ok {
				return
			}
			if err := send(resume); err != nil {
				s.logger.WithError(err).Debug("preview stream closed")
				return
			}
		}
	}
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	t, err := s.selectTemplate(r)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	format, err := rendering.ParseFormat(r.URL.Query().Get("format"))
	if err != nil {
		s.fail(w, r, err)
		return
	}

	artifact, err := rendering.ExportWith(r.Context(), rendering.Compose(s.session.Current(), t), format, rendering.ExportOptions{
		PDF:         s.pdf,
		TeXTemplate: s.texTemplate,
	})
	if err != nil {
		s.fail(w, r, err)
		return
	}

	w.Header().Set("Content-Type", artifact.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", artifact.Filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(artifact.Data)
}

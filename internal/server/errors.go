package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jonathan/resume-editor/internal/editor"
	"github.com/jonathan/resume-editor/internal/enrichment"
	"github.com/jonathan/resume-editor/internal/rendering"
	"github.com/jonathan/resume-editor/internal/sections"
)

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// ErrNotFound indicates a named resource (such as a template) does not exist
type ErrNotFound struct {
	Resource string
	ID       string
}

func (e *ErrNotFound) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}

// HTTPStatus returns the appropriate HTTP status code for an error. Render,
// template and persistence failures are server errors.
func HTTPStatus(err error) int {
	var (
		validationErr *ErrValidation
		fieldErr      *sections.FieldError
		formatErr     *rendering.UnsupportedFormatError
		notFoundErr   *ErrNotFound
		sectionErr    *sections.UnknownSectionError
		itemErr       *editor.ItemNotFoundError
		apiErr        *enrichment.APICallError
	)

	switch {
	case errors.As(err, &validationErr), errors.As(err, &fieldErr), errors.As(err, &formatErr):
		return http.StatusBadRequest
	case errors.As(err, &notFoundErr), errors.As(err, &sectionErr), errors.As(err, &itemErr):
		return http.StatusNotFound
	case errors.As(err, &apiErr):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

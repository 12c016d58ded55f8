// Package sections implements the per-section edit operations over a résumé value.
package sections

import (
	"fmt"

	"github.com/jonathan/resume-editor/internal/types"
)

// FieldError reports an update naming a field the section does not have, or a
// value of the wrong shape for that field.
type FieldError struct {
	Section types.Section
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("section %s: field %q: %s", e.Section, e.Field, e.Message)
}

// UnknownSectionError reports a section name with no editor.
type UnknownSectionError struct {
	Section string
}

func (e *UnknownSectionError) Error() string {
	return fmt.Sprintf("unknown section: %s", e.Section)
}

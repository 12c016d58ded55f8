package editor

import (
	"fmt"

	"github.com/jonathan/resume-editor/internal/types"
)

// ItemNotFoundError reports an operation addressed to an item that does not exist.
type ItemNotFoundError struct {
	Section types.Section
	ID      string
}

func (e *ItemNotFoundError) Error() string {
	return fmt.Sprintf("no %s item with id %q", e.Section, e.ID)
}

// SaveError reports a mutation that was applied in memory but could not be
// persisted. The next accepted mutation saves the full résumé again.
type SaveError struct {
	Cause error
}

func (e *SaveError) Error() string {
	return fmt.Sprintf("failed to save resume: %v", e.Cause)
}

func (e *SaveError) Unwrap() error {
	return e.Cause
}

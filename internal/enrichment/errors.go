package enrichment

import "fmt"

// APICallError represents a failed call to the text-completion service
type APICallError struct {
	Operation string
	Message   string
	Cause     error
}

func (e *APICallError) Error() string {
	prefix := "API call failed"
	if e.Operation != "" {
		prefix = fmt.Sprintf("%s: API call failed", e.Operation)
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", prefix, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", prefix, e.Message)
}

func (e *APICallError) Unwrap() error {
	return e.Cause
}

package ledger

import (
	"errors"
	"fmt"
	"strings"
)

// ValidationError reports an input problem detected before any state was
// mutated. The operation it aborted is a no-op; Serials carries the offending
// serial numbers when the problem concerns specific items.
type ValidationError struct {
	Message string
	Serials []string
}

func (e *ValidationError) Error() string {
	if len(e.Serials) == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Message, strings.Join(e.Serials, ", "))
}

func validationErrorf(format string, args ...any) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// IsValidation tells HTTP handlers apart the 400s from the 500s.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

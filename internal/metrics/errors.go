package metrics

import "fmt"

// ValidationError reports malformed or out-of-range input at record
// construction time. Scoring never fails on a constructed record, so this is
// the only place a bad measurement is surfaced.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

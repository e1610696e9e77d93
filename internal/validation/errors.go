package validation

import "fmt"

// UnknownKindError indicates a field kind string the validator does not recognize.
type UnknownKindError struct {
	Value string
}

func (e *UnknownKindError) Error() string {
	return fmt.Sprintf("unknown field kind: %q (expected eligibility, reference_name, or reference_data)", e.Value)
}

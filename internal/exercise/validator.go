package exercise

import "fmt"

// Validator checks a generated exercise.
// Implementations should be stateless and safe for concurrent use.
type Validator interface {
	// Name returns a short identifier used in error messages and logs.
	Name() string

	// Validate returns nil if the exercise passes.
	Validate(ex *Exercise, input GenerateInput) *ValidationError
}

// ValidationError describes why an exercise failed validation.
type ValidationError struct {
	Validator string
	Message   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validator %q: %s", e.Validator, e.Message)
}

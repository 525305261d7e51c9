package exercise

import "time"

// Config controls the behavior of the Generator.
type Config struct {
	// Validators run in order on every parsed exercise. The first failure
	// aborts the whole call.
	Validators []Validator

	// MaxTokens is the token budget for the model response.
	MaxTokens int

	// Temperature favors variety: repeated calls should not return the
	// same exercises.
	Temperature float64

	// SlowThreshold is the duration above which a generation is logged
	// as slow. Zero disables the warning.
	SlowThreshold time.Duration
}

// DefaultConfig returns the standard validator chain and sampling settings.
func DefaultConfig() Config {
	return Config{
		Validators:    []Validator{&StructuralValidator{}},
		MaxTokens:     2000,
		Temperature:   0.8,
		SlowThreshold: 2 * time.Second,
	}
}

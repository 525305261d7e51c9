// Package exercise turns a subject, age and difficulty into validated
// exercises by prompting the AI gateway and checking what comes back.
package exercise

import (
	"fmt"

	"github.com/abhisek/kidguard/internal/guideline"
)

// HintCount is the number of progressive hints every exercise carries.
const HintCount = 3

// Exercise is one generated exercise, ready to show to a child.
type Exercise struct {
	Question      string               `json:"question"`
	CorrectAnswer string               `json:"correctAnswer"`
	Hints         []string             `json:"hints"`
	Topic         string               `json:"topic,omitempty"`
	AgeRange      guideline.AgeBand    `json:"ageRange"`
	Subject       guideline.Subject    `json:"subject"`
	Difficulty    guideline.Difficulty `json:"difficulty"`
}

// GenerateInput is the request for one generation call.
type GenerateInput struct {
	Subject    guideline.Subject
	Age        int
	Difficulty guideline.Difficulty
	Count      int
}

// MalformedExerciseError reports that the model's output could not be
// turned into valid exercises. Index is -1 when the document as a whole
// was unusable.
type MalformedExerciseError struct {
	Index  int
	Reason string
	Err    error
}

func (e *MalformedExerciseError) Error() string {
	if e.Index < 0 {
		return "malformed exercise response: " + e.Reason
	}
	return fmt.Sprintf("malformed exercise #%d: %s", e.Index+1, e.Reason)
}

func (e *MalformedExerciseError) Unwrap() error { return e.Err }

// GenerationFailedError wraps every failure that happens after input
// validation: gateway errors and malformed output alike.
type GenerationFailedError struct {
	Cause error
}

func (e *GenerationFailedError) Error() string {
	return fmt.Sprintf("exercise generation failed: %v", e.Cause)
}

func (e *GenerationFailedError) Unwrap() error { return e.Cause }

package exercise

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

const (
	maxQuestionRunes = 2000
	maxAnswerRunes   = 300
	maxHintRunes     = 300
)

// StructuralValidator checks that required fields are present, that there
// are exactly three hints and that nothing exceeds its length limit.
type StructuralValidator struct{}

func (v *StructuralValidator) Name() string { return "structural" }

func (v *StructuralValidator) Validate(ex *Exercise, _ GenerateInput) *ValidationError {
	if strings.TrimSpace(ex.Question) == "" {
		return v.fail("question is empty")
	}
	if utf8.RuneCountInString(ex.Question) > maxQuestionRunes {
		return v.fail(fmt.Sprintf("question exceeds %d characters", maxQuestionRunes))
	}
	if strings.TrimSpace(ex.CorrectAnswer) == "" {
		return v.fail("correctAnswer is empty")
	}
	if utf8.RuneCountInString(ex.CorrectAnswer) > maxAnswerRunes {
		return v.fail(fmt.Sprintf("correctAnswer exceeds %d characters", maxAnswerRunes))
	}
	if len(ex.Hints) != HintCount {
		return v.fail(fmt.Sprintf("expected %d hints, got %d", HintCount, len(ex.Hints)))
	}
	for i, h := range ex.Hints {
		if strings.TrimSpace(h) == "" {
			return v.fail(fmt.Sprintf("hint %d is empty", i+1))
		}
		if utf8.RuneCountInString(h) > maxHintRunes {
			return v.fail(fmt.Sprintf("hint %d exceeds %d characters", i+1, maxHintRunes))
		}
	}
	return nil
}

func (v *StructuralValidator) fail(msg string) *ValidationError {
	return &ValidationError{Validator: v.Name(), Message: msg}
}

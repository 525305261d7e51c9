package exercise

import (
	"strings"
	"testing"
)

func TestStructuralValidator(t *testing.T) {
	valid := func() Exercise {
		return Exercise{
			Question:      "What is 3 + 4?",
			CorrectAnswer: "7",
			Hints:         []string{"Start at 3", "Count up 4", "3, 4, 5, 6, ..."},
		}
	}

	tests := []struct {
		name   string
		mutate func(*Exercise)
		want   string
	}{
		{"valid", func(*Exercise) {}, ""},
		{"empty question", func(e *Exercise) { e.Question = " " }, "question is empty"},
		{"long question", func(e *Exercise) { e.Question = strings.Repeat("a", maxQuestionRunes+1) }, "question exceeds"},
		{"empty answer", func(e *Exercise) { e.CorrectAnswer = "" }, "correctAnswer is empty"},
		{"long answer", func(e *Exercise) { e.CorrectAnswer = strings.Repeat("é", maxAnswerRunes+1) }, "correctAnswer exceeds"},
		{"no hints", func(e *Exercise) { e.Hints = nil }, "expected 3 hints, got 0"},
		{"four hints", func(e *Exercise) { e.Hints = append(e.Hints, "extra") }, "expected 3 hints, got 4"},
		{"blank hint", func(e *Exercise) { e.Hints[1] = "\t" }, "hint 2 is empty"},
		{"long hint", func(e *Exercise) { e.Hints[2] = strings.Repeat("h", maxHintRunes+1) }, "hint 3 exceeds"},
	}

	v := &StructuralValidator{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ex := valid()
			tt.mutate(&ex)
			err := v.Validate(&ex, GenerateInput{})
			if tt.want == "" {
				if err != nil {
					t.Fatalf("expected no error, got %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("expected error containing %q", tt.want)
			}
			if err.Validator != "structural" {
				t.Errorf("expected validator name structural, got %q", err.Validator)
			}
			if !strings.Contains(err.Message, tt.want) {
				t.Errorf("expected message containing %q, got %q", tt.want, err.Message)
			}
		})
	}
}

func TestMultiByteQuestionWithinLimit(t *testing.T) {
	ex := Exercise{
		Question:      strings.Repeat("🍎", maxQuestionRunes),
		CorrectAnswer: "x",
		Hints:         []string{"a", "b", "c"},
	}
	if err := (&StructuralValidator{}).Validate(&ex, GenerateInput{}); err != nil {
		t.Fatalf("limits count characters, not bytes: %v", err)
	}
}

package prompt

import (
	"errors"
	"strings"
	"testing"

	"github.com/abhisek/kidguard/internal/guideline"
)

func TestBuildGeneration_AllSubjectsAndBands(t *testing.T) {
	b := NewBuilder("")
	for _, subject := range guideline.AllSubjects {
		for _, band := range guideline.AllBands {
			p, err := b.BuildGeneration(subject, band.Min(), guideline.DifficultyMedium, 1)
			if err != nil {
				t.Fatalf("%s/%s: unexpected error: %v", subject, band, err)
			}
			if p.System == "" || p.User == "" {
				t.Fatalf("%s/%s: empty prompt", subject, band)
			}
			if !strings.Contains(p.User, "AGE RANGE: "+band.String()) {
				t.Errorf("%s/%s: user prompt missing band header", subject, band)
			}
			if !strings.Contains(p.User, "exactly 3 progressive hints") {
				t.Errorf("%s/%s: user prompt missing hint requirement", subject, band)
			}
			if !strings.Contains(p.System, "French") {
				t.Errorf("%s/%s: system prompt missing default language", subject, band)
			}
			if strings.Contains(p.User, "<no value>") || strings.Contains(p.System, "<no value>") {
				t.Errorf("%s/%s: template rendered a missing value", subject, band)
			}
		}
	}
}

func TestBuildGeneration_Deterministic(t *testing.T) {
	b := NewBuilder("English")
	p1, err := b.BuildGeneration(guideline.SubjectLogic, 10, guideline.DifficultyHard, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	p2, _ := b.BuildGeneration(guideline.SubjectLogic, 10, guideline.DifficultyHard, 3)
	if p1 != p2 {
		t.Fatal("expected identical prompts for identical inputs")
	}
}

func TestBuildGeneration_CountShape(t *testing.T) {
	b := NewBuilder("")

	single, err := b.BuildGeneration(guideline.SubjectMath, 7, guideline.DifficultyEasy, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(single.User, "Generate ONE unique math exercise") {
		t.Errorf("single prompt should ask for one exercise:\n%s", single.User)
	}
	if strings.Contains(single.User, "The array must contain") {
		t.Error("single prompt should not ask for an array")
	}

	multi, err := b.BuildGeneration(guideline.SubjectMath, 7, guideline.DifficultyEasy, 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(multi.User, "Generate 4 distinct") {
		t.Errorf("multi prompt should ask for 4 exercises:\n%s", multi.User)
	}
	if !strings.Contains(multi.User, "exactly 4 objects") {
		t.Error("multi prompt should require an array of exactly 4 objects")
	}
}

func TestBuildGeneration_DifficultyAndAgeBlocksDiffer(t *testing.T) {
	b := NewBuilder("")
	easy, _ := b.BuildGeneration(guideline.SubjectReading, 10, guideline.DifficultyEasy, 1)
	hard, _ := b.BuildGeneration(guideline.SubjectReading, 10, guideline.DifficultyHard, 1)
	if easy.User == hard.User {
		t.Fatal("difficulty should change the prompt")
	}
	young, _ := b.BuildGeneration(guideline.SubjectReading, 6, guideline.DifficultyEasy, 1)
	if !strings.Contains(young.User, "LEVEL 6-8 YEARS") || strings.Contains(young.User, "LEVEL 9-11 YEARS") {
		t.Fatal("age block should match the band")
	}
}

func TestBuildGeneration_InputErrors(t *testing.T) {
	b := NewBuilder("")

	for _, n := range []int{0, -1, 11} {
		_, err := b.BuildGeneration(guideline.SubjectMath, 9, guideline.DifficultyEasy, n)
		var countErr *InvalidCountError
		if !errors.As(err, &countErr) || countErr.Count != n {
			t.Errorf("count %d: expected InvalidCountError, got %v", n, err)
		}
	}

	_, err := b.BuildGeneration("history", 9, guideline.DifficultyEasy, 1)
	var subjErr *InvalidSubjectError
	if !errors.As(err, &subjErr) {
		t.Errorf("expected InvalidSubjectError, got %v", err)
	}

	_, err = b.BuildGeneration(guideline.SubjectMath, 9, "extreme", 1)
	var diffErr *InvalidDifficultyError
	if !errors.As(err, &diffErr) {
		t.Errorf("expected InvalidDifficultyError, got %v", err)
	}

	_, err = b.BuildGeneration(guideline.SubjectMath, 15, guideline.DifficultyEasy, 1)
	if !errors.Is(err, guideline.ErrAgeOutOfRange) {
		t.Errorf("expected ErrAgeOutOfRange, got %v", err)
	}
}

func TestBuildValidation_EmbedsLeniencyVerbatim(t *testing.T) {
	b := NewBuilder("")
	for _, band := range guideline.AllBands {
		p, err := b.BuildValidation("What is 4+4?", "8", "eight", band.Max(), guideline.SubjectMath)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", band, err)
		}
		if !strings.Contains(p, guideline.LeniencyPolicy(band)) {
			t.Errorf("%s: leniency policy not embedded verbatim", band)
		}
		for _, s := range []string{"What is 4+4?", "Expected answer: 8", "Child's answer: eight", `"isCorrect"`, `"leniencyApplied"`} {
			if !strings.Contains(p, s) {
				t.Errorf("%s: prompt missing %q", band, s)
			}
		}
	}
}

func TestBuildValidation_SubjectRules(t *testing.T) {
	b := NewBuilder("")
	p, err := b.BuildValidation("q", "glad", "happy", 9, guideline.SubjectVocabulary)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(p, "VALIDATION RULES FOR VOCABULARY") || !strings.Contains(p, "ACCEPT VALID SYNONYMS") {
		t.Fatalf("vocabulary rules missing:\n%s", p)
	}
}

func TestBuildValidation_Errors(t *testing.T) {
	b := NewBuilder("")
	if _, err := b.BuildValidation("q", "a", "a", 4, guideline.SubjectMath); !errors.Is(err, guideline.ErrAgeOutOfRange) {
		t.Errorf("expected ErrAgeOutOfRange, got %v", err)
	}
	var subjErr *InvalidSubjectError
	if _, err := b.BuildValidation("q", "a", "a", 9, "art"); !errors.As(err, &subjErr) {
		t.Errorf("expected InvalidSubjectError, got %v", err)
	}
}

func TestBuilder_Language(t *testing.T) {
	var nilBuilder *Builder
	if nilBuilder.language() != DefaultLanguage {
		t.Fatal("nil builder should use the default language")
	}
	p, err := NewBuilder("Spanish").BuildGeneration(guideline.SubjectMath, 9, guideline.DifficultyEasy, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(p.User, "in Spanish") {
		t.Fatal("expected language to be carried into the prompt")
	}
}

func TestSubjects(t *testing.T) {
	if got := Subjects(); len(got) != len(guideline.AllSubjects) {
		t.Fatalf("expected %d subjects, got %v", len(guideline.AllSubjects), got)
	}
}

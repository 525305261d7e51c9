package guideline

import (
	"fmt"
	"strings"
)

// AgeBand is one of the three fixed age ranges that drive pedagogical tone
// and answer leniency.
type AgeBand int

const (
	Band6to8 AgeBand = iota
	Band9to11
	Band12to14
)

// AllBands lists every band in ascending age order.
var AllBands = []AgeBand{Band6to8, Band9to11, Band12to14}

// String returns the band as "min-max", e.g. "9-11".
func (b AgeBand) String() string {
	switch b {
	case Band6to8:
		return "6-8"
	case Band9to11:
		return "9-11"
	case Band12to14:
		return "12-14"
	default:
		return fmt.Sprintf("AgeBand(%d)", int(b))
	}
}

// Min returns the youngest age in the band.
func (b AgeBand) Min() int {
	switch b {
	case Band9to11:
		return 9
	case Band12to14:
		return 12
	default:
		return 6
	}
}

// Max returns the oldest age in the band.
func (b AgeBand) Max() int {
	switch b {
	case Band9to11:
		return 11
	case Band12to14:
		return 14
	default:
		return 8
	}
}

// MarshalText encodes the band as its "min-max" label.
func (b AgeBand) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

// UnmarshalText accepts the "min-max" label produced by MarshalText.
func (b *AgeBand) UnmarshalText(text []byte) error {
	for _, band := range AllBands {
		if band.String() == string(text) {
			*b = band
			return nil
		}
	}
	return fmt.Errorf("unknown age band %q", string(text))
}

// Difficulty is the caller-chosen difficulty level.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Valid reports whether d is one of the known levels.
func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// ParseDifficulty normalizes case and whitespace and validates the level.
func ParseDifficulty(s string) (Difficulty, error) {
	d := Difficulty(strings.ToLower(strings.TrimSpace(s)))
	if !d.Valid() {
		return "", fmt.Errorf("unknown difficulty %q (want easy, medium or hard)", s)
	}
	return d, nil
}

// Subject selects which template set the prompt builder uses.
type Subject string

const (
	SubjectMath       Subject = "math"
	SubjectReading    Subject = "reading"
	SubjectLogic      Subject = "logic"
	SubjectVocabulary Subject = "vocabulary"
)

// AllSubjects lists every supported subject.
var AllSubjects = []Subject{SubjectMath, SubjectReading, SubjectLogic, SubjectVocabulary}

// Valid reports whether s is one of the known subjects.
func (s Subject) Valid() bool {
	switch s {
	case SubjectMath, SubjectReading, SubjectLogic, SubjectVocabulary:
		return true
	}
	return false
}

// ParseSubject normalizes case and whitespace and validates the subject.
func ParseSubject(s string) (Subject, error) {
	sub := Subject(strings.ToLower(strings.TrimSpace(s)))
	if !sub.Valid() {
		return "", fmt.Errorf("unknown subject %q (want math, reading, logic or vocabulary)", s)
	}
	return sub, nil
}

// Package guideline holds the static pedagogical tables keyed by age band:
// cognitive descriptions used when building generation prompts and the
// leniency policy text embedded in answer validation prompts.
package guideline

import (
	"errors"
	"fmt"
)

const (
	// MinAge is the youngest supported child age.
	MinAge = 6
	// MaxAge is the oldest supported child age.
	MaxAge = 14
)

// ErrAgeOutOfRange is matched by every AgeOutOfRangeError.
var ErrAgeOutOfRange = errors.New("age out of range")

// AgeOutOfRangeError reports an age outside [MinAge, MaxAge].
type AgeOutOfRangeError struct {
	Age int
}

func (e *AgeOutOfRangeError) Error() string {
	return fmt.Sprintf("age %d out of range [%d,%d]", e.Age, MinAge, MaxAge)
}

func (e *AgeOutOfRangeError) Is(target error) bool { return target == ErrAgeOutOfRange }

// Entry describes what a child in a band can handle.
type Entry struct {
	Band           AgeBand
	CognitiveLevel string
	Attention      string
	LanguageLevel  string
	MathLevel      string
	ReadingLevel   string
	Examples       []string
	Leniency       string
}

// BandFor maps an age to its band. Ages outside [MinAge, MaxAge] are
// rejected rather than clamped to a neighbouring band.
func BandFor(age int) (AgeBand, error) {
	switch {
	case age >= 6 && age <= 8:
		return Band6to8, nil
	case age >= 9 && age <= 11:
		return Band9to11, nil
	case age >= 12 && age <= 14:
		return Band12to14, nil
	}
	return 0, &AgeOutOfRangeError{Age: age}
}

// Lookup returns the guideline entry for a band. The returned entry is a
// copy; callers may not mutate the table through it.
func Lookup(band AgeBand) Entry {
	e, ok := table[band]
	if !ok {
		e = table[Band9to11]
	}
	e.Examples = append([]string(nil), e.Examples...)
	return e
}

// LeniencyPolicy returns the free-text tolerance rules for a band, used
// verbatim in validation prompts.
func LeniencyPolicy(band AgeBand) string {
	return Lookup(band).Leniency
}

// DifficultyForAge is the default difficulty used when a caller has not
// chosen one: younger bands start easy, older bands start hard.
func DifficultyForAge(age int) (Difficulty, error) {
	band, err := BandFor(age)
	if err != nil {
		return "", err
	}
	switch band {
	case Band6to8:
		return DifficultyEasy, nil
	case Band12to14:
		return DifficultyHard, nil
	default:
		return DifficultyMedium, nil
	}
}

var table = map[AgeBand]Entry{
	Band6to8: {
		Band:           Band6to8,
		CognitiveLevel: "Concrete thinking, beginning of simple logic",
		Attention:      "Short attention span (5-10 minutes)",
		LanguageLevel:  "Basic vocabulary (500-1500 words), simple sentences",
		MathLevel:      "Simple addition and subtraction (0-20), first steps in multiplication",
		ReadingLevel:   "Simple words, short sentences (3-7 words)",
		Examples: []string{
			"Counting objects",
			"Reading simple words",
			"Basic visual patterns",
			"Sorting pictures into categories",
		},
		Leniency: `VERY LENIENT:
- Accept phonetic spelling variations
- Accept simple synonyms
- Accept partially correct answers
- Ignore letter case and accents
- For math: accept different formats (8, eight, 8.0)`,
	},
	Band9to11: {
		Band:           Band9to11,
		CognitiveLevel: "Logical thinking, sequential reasoning",
		Attention:      "Medium attention span (15-25 minutes)",
		LanguageLevel:  "Wider vocabulary (2000-4000 words), complex sentences",
		MathLevel:      "Multiplication and division, simple fractions, multi-step problems",
		ReadingLevel:   "Short paragraphs, comprehension of narrative texts",
		Examples: []string{
			"Solving math word problems",
			"Reading comprehension of short passages",
			"Simple deductive logic",
			"Synonyms and antonyms",
		},
		Leniency: `MODERATELY LENIENT:
- Accept synonyms
- Tolerate minor spelling mistakes (1-2 letters)
- Accept partial answers when the main idea is correct
- Respect case and accents, with tolerance
- For math: accept varied numeric formats`,
	},
	Band12to14: {
		Band:           Band12to14,
		CognitiveLevel: "Abstract thinking, hypothetical reasoning",
		Attention:      "Long attention span (30+ minutes)",
		LanguageLevel:  "Advanced vocabulary (5000+ words), complex grammatical structures",
		MathLevel:      "Basic algebra, geometry, percentages, proportions",
		ReadingLevel:   "Long texts, literary analysis, nuanced comprehension",
		Examples: []string{
			"Solving algebraic equations",
			"Analysing complex texts",
			"Advanced logical reasoning",
			"Nuances of language and idioms",
		},
		Leniency: `STANDARD TOLERANCE:
- Accept exact synonyms
- Tolerate minor spelling mistakes
- Require a complete answer but accept different phrasings
- Respect case and accents (with slight tolerance)
- For math: require precision but accept scientific notation`,
	},
}

// Package prompt renders the generation and answer-validation prompts for
// each subject. Rendering is deterministic: the same inputs always produce
// the same text.
package prompt

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"text/template"

	"github.com/abhisek/kidguard/internal/guideline"
)

const (
	// MinCount and MaxCount bound the number of exercises per request.
	MinCount = 1
	MaxCount = 10

	// DefaultLanguage is the language of child-facing text.
	DefaultLanguage = "French"
)

// Prompt is a rendered system + user prompt pair.
type Prompt struct {
	System string
	User   string
}

// InvalidCountError reports a count outside [MinCount, MaxCount].
type InvalidCountError struct {
	Count int
}

func (e *InvalidCountError) Error() string {
	return fmt.Sprintf("count %d out of range [%d,%d]", e.Count, MinCount, MaxCount)
}

// InvalidSubjectError reports an unknown subject.
type InvalidSubjectError struct {
	Subject string
}

func (e *InvalidSubjectError) Error() string {
	return fmt.Sprintf("unknown subject %q", e.Subject)
}

// InvalidDifficultyError reports an unknown difficulty.
type InvalidDifficultyError struct {
	Difficulty string
}

func (e *InvalidDifficultyError) Error() string {
	return fmt.Sprintf("unknown difficulty %q", e.Difficulty)
}

// Builder renders prompts. The zero value is usable and writes child-facing
// text in DefaultLanguage.
type Builder struct {
	// Language is the language the model must use for child-facing text.
	Language string
}

// NewBuilder returns a Builder for the given language. An empty language
// means DefaultLanguage.
func NewBuilder(language string) *Builder {
	return &Builder{Language: language}
}

func (b *Builder) language() string {
	if b == nil || strings.TrimSpace(b.Language) == "" {
		return DefaultLanguage
	}
	return b.Language
}

// BuildGeneration renders the prompt asking for count exercises.
func (b *Builder) BuildGeneration(subject guideline.Subject, age int, difficulty guideline.Difficulty, count int) (Prompt, error) {
	if count < MinCount || count > MaxCount {
		return Prompt{}, &InvalidCountError{Count: count}
	}
	tmpl, ok := subjects[subject]
	if !ok {
		return Prompt{}, &InvalidSubjectError{Subject: string(subject)}
	}
	if !difficulty.Valid() {
		return Prompt{}, &InvalidDifficultyError{Difficulty: string(difficulty)}
	}
	band, err := guideline.BandFor(age)
	if err != nil {
		return Prompt{}, err
	}
	entry := guideline.Lookup(band)
	lang := b.language()

	system, err := render(systemTemplate, systemData{Intro: tmpl.intro, Rules: tmpl.rules, Style: tmpl.style, Language: lang})
	if err != nil {
		return Prompt{}, err
	}

	example := tmpl.exampleFor(band)
	exampleJSON, err := json.MarshalIndent(example, "", "  ")
	if err != nil {
		return Prompt{}, fmt.Errorf("marshal example: %w", err)
	}

	user, err := render(generationTemplate, generationData{
		Label:          tmpl.label,
		Count:          count,
		Age:            age,
		Band:           band.String(),
		DifficultyText: tmpl.difficulty[difficulty],
		AgeBlock:       tmpl.ageBlocks[band],
		Guidelines:     tmpl.guidelines(entry),
		Structure:      tmpl.structure,
		Important:      tmpl.important,
		Language:       lang,
		ExampleJSON:    string(exampleJSON),
	})
	if err != nil {
		return Prompt{}, err
	}

	return Prompt{System: system, User: user}, nil
}

// BuildValidation renders the prompt asking the model to judge a child's
// answer under the band's leniency policy.
func (b *Builder) BuildValidation(question, correctAnswer, childAnswer string, age int, subject guideline.Subject) (string, error) {
	tmpl, ok := subjects[subject]
	if !ok {
		return "", &InvalidSubjectError{Subject: string(subject)}
	}
	band, err := guideline.BandFor(age)
	if err != nil {
		return "", err
	}

	return render(validationTemplate, validationData{
		Label:         tmpl.label,
		Heading:       strings.ToUpper(string(subject)),
		Question:      question,
		CorrectAnswer: correctAnswer,
		ChildAnswer:   childAnswer,
		Age:           age,
		Band:          band.String(),
		Leniency:      guideline.LeniencyPolicy(band),
		Rules:         tmpl.validationRules,
		Feedback:      tmpl.feedback,
		Language:      b.language(),
	})
}

// Subjects lists the subjects with a registered template set.
func Subjects() []guideline.Subject {
	out := make([]guideline.Subject, 0, len(subjects))
	for _, s := range guideline.AllSubjects {
		if _, ok := subjects[s]; ok {
			out = append(out, s)
		}
	}
	return out
}

// subjectTemplate holds everything that differs between subjects.
type subjectTemplate struct {
	label      string
	intro      string
	rules      []string
	style      []string
	difficulty map[guideline.Difficulty]string
	ageBlocks  map[guideline.AgeBand]string
	// guidelines picks the guideline fields relevant to the subject.
	guidelines      func(guideline.Entry) []field
	structure       string
	important       []string
	validationRules string
	feedback        []string
	examples        map[guideline.AgeBand]Example
}

func (t *subjectTemplate) exampleFor(band guideline.AgeBand) Example {
	if ex, ok := t.examples[band]; ok {
		return ex
	}
	return t.examples[guideline.Band9to11]
}

// Example is a reference exercise shown to the model.
type Example struct {
	Question      string   `json:"question"`
	CorrectAnswer string   `json:"correctAnswer"`
	Hints         []string `json:"hints"`
	Topic         string   `json:"topic"`
	AgeRange      string   `json:"ageRange"`
}

type field struct {
	Name  string
	Value string
}

var subjects = map[guideline.Subject]*subjectTemplate{
	guideline.SubjectMath:       &mathTemplate,
	guideline.SubjectReading:    &readingTemplate,
	guideline.SubjectLogic:      &logicTemplate,
	guideline.SubjectVocabulary: &vocabularyTemplate,
}

type systemData struct {
	Intro    string
	Rules    []string
	Style    []string
	Language string
}

var funcs = template.FuncMap{
	"add": func(a, b int) int { return a + b },
}

var systemTemplate = template.Must(template.New("system").Funcs(funcs).Parse(`{{.Intro}}

STRICT RULES:
1. All child-facing text is written in flawless {{.Language}} suited to the child's age
{{range $i, $r := .Rules}}{{add $i 2}}. {{$r}}
{{end}}
STYLE:
{{range .Style}}- {{.}}
{{end}}`))

type generationData struct {
	Label          string
	Count          int
	Age            int
	Band           string
	DifficultyText string
	AgeBlock       string
	Guidelines     []field
	Structure      string
	Important      []string
	Language       string
	ExampleJSON    string
}

var generationTemplate = template.Must(template.New("generation").Parse(`{{if eq .Count 1}}Generate ONE unique {{.Label}}{{else}}Generate {{.Count}} distinct and varied {{.Label}}s{{end}} with these parameters:

AGE RANGE: {{.Band}} years (the child is {{.Age}})
DIFFICULTY: {{.DifficultyText}}

{{.AgeBlock}}

COGNITIVE GUIDELINES:
{{range .Guidelines}}- {{.Name}}: {{.Value}}
{{end}}{{with .Structure}}
{{.}}
{{end}}
IMPORTANT:
{{range .Important}}- {{.}}
{{end}}- Write the question, answer and hints in {{.Language}}
- Provide exactly 3 progressive hints, from the vaguest to the most precise
- The correct answer must be short and unambiguous, written as a JSON string even when it is a number ("8", not 8)

REFERENCE EXAMPLE (shown in English, write yours in {{.Language}}):
{{.ExampleJSON}}

Respond ONLY with valid JSON in this exact format:
{{if eq .Count 1}}{
  "question": "...",
  "correctAnswer": "...",
  "hints": ["hint 1", "hint 2", "hint 3"],
  "topic": "...",
  "ageRange": "{{.Band}}"
}{{else}}[
  {
    "question": "...",
    "correctAnswer": "...",
    "hints": ["hint 1", "hint 2", "hint 3"],
    "topic": "...",
    "ageRange": "{{.Band}}"
  }
]
The array must contain exactly {{.Count}} objects, each with a different question.{{end}}`))

type validationData struct {
	Label         string
	Heading       string
	Question      string
	CorrectAnswer string
	ChildAnswer   string
	Age           int
	Band          string
	Leniency      string
	Rules         string
	Feedback      []string
	Language      string
}

var validationTemplate = template.Must(template.New("validation").Parse(`You are a kind grader of {{.Label}}s for children.

EXERCISE:
{{.Question}}

Expected answer: {{.CorrectAnswer}}
Child's answer: {{.ChildAnswer}}
Child's age: {{.Age}} (age range {{.Band}})

TOLERANCE FOR THIS AGE:
{{.Leniency}}

VALIDATION RULES FOR {{.Heading}}:
{{.Rules}}

FEEDBACK:
{{range .Feedback}}- {{.}}
{{end}}- Write the feedback in {{.Language}}, addressed directly to the child
- Set leniencyApplied to true only if a tolerance rule changed the outcome

Respond ONLY with valid JSON:
{
  "isCorrect": true or false,
  "feedback": "message for the child",
  "leniencyApplied": true or false,
  "reasoning": "one sentence explaining the decision"
}`))

func render(t *template.Template, data any) (string, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render %s prompt: %w", t.Name(), err)
	}
	return buf.String(), nil
}

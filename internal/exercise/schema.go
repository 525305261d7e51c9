package exercise

import "github.com/abhisek/kidguard/internal/llm"

// answerType also takes numbers: math answers often come back unquoted.
var answerType = map[string]any{"type": []any{"string", "number"}}

var exerciseDefinition = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"question":      map[string]any{"type": "string"},
		"correctAnswer": answerType,
		"answer":        answerType,
		"hints": map[string]any{
			"type":  "array",
			"items": map[string]any{"type": "string"},
		},
		"topic":    map[string]any{"type": "string"},
		"ageRange": map[string]any{"type": "string"},
	},
	"required": []any{"question", "hints"},
	"anyOf": []any{
		map[string]any{"required": []any{"correctAnswer"}},
		map[string]any{"required": []any{"answer"}},
	},
}

// ExerciseSchema accepts either a single exercise object or a non-empty
// array of them. Older prompts used "answer" instead of "correctAnswer";
// both are accepted.
var ExerciseSchema = &llm.Schema{
	Name: "generated-exercise",
	Definition: map[string]any{
		"$defs": map[string]any{"exercise": exerciseDefinition},
		"oneOf": []any{
			map[string]any{"$ref": "#/$defs/exercise"},
			map[string]any{
				"type":     "array",
				"minItems": 1,
				"items":    map[string]any{"$ref": "#/$defs/exercise"},
			},
		},
	},
}

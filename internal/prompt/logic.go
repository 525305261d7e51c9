package prompt

import "github.com/abhisek/kidguard/internal/guideline"

var logicTemplate = subjectTemplate{
	label: "logic puzzle",
	intro: `You are an expert in teaching logic and reasoning to children.
You create FASCINATING riddles and logic challenges that stimulate thinking.`,
	rules: []string{
		"Visual riddles, patterns, sequences, deduction and problem solving",
		"Clear presentation, with emojis to picture the problem",
		"Output strict JSON only",
		"Hints guide the reasoning step by step",
		"The answer is clear and unique",
	},
	style: []string{
		"Intriguing riddles that make the child want to solve them",
		"Fun settings (detectives, explorers, magicians)",
		"The exercise should feel like a captivating puzzle",
	},
	difficulty: map[guideline.Difficulty]string{
		guideline.DifficultyEasy:   "EASY - Simple pattern, direct deduction, 1-2 steps",
		guideline.DifficultyMedium: "MEDIUM - Pattern or deduction needing 2-3 reasoning steps",
		guideline.DifficultyHard:   "HARD - Complex reasoning, several steps, elimination",
	},
	ageBlocks: map[guideline.AgeBand]string{
		guideline.Band6to8: `LEVEL 6-8 YEARS:
- Simple visual patterns (repetitions)
- Simple number sequences (+1, +2, -1)
- Basic categorisation (animals, colours, shapes)
- Riddles with 2-3 elements at most
- Lots of emojis to visualise`,
		guideline.Band9to11: `LEVEL 9-11 YEARS:
- More complex patterns (alternation, multiplication)
- Logical deduction with 3-4 clues
- Position and ordering riddles
- Logic problems with 2-3 steps
- Puzzles with several candidate solutions to eliminate`,
		guideline.Band12to14: `LEVEL 12-14 YEARS:
- Abstract and algebraic patterns
- Deduction with multiple conditions
- Riddles requiring methodical organisation
- Proof by contradiction
- Simple combinatorics`,
	},
	guidelines: func(e guideline.Entry) []field {
		return []field{
			{"Cognitive level", e.CognitiveLevel},
			{"Attention span", e.Attention},
		}
	},
	structure: `KINDS OF PUZZLES:
- Sequence: "🔵 🔴 🔵 🔴 🔵 ___ ?"
- Deduction: "If all A are B, and C is an A, then..."
- Number pattern: "2, 4, 8, 16, ___ ?"
- Ordering: "Mark is taller than Lea. Lea is taller than Tom. Who is the shortest?"`,
	important: []string{
		"Make the riddle intriguing",
		"Use emojis to illustrate",
		"The solution must be logically deducible",
	},
	validationRules: `1. Check whether the child's reasoning is correct
2. Accept equivalent answers:
   - Different wordings of the same answer
   - Synonyms (red/🔴, star/⭐)
   - Different number formats
3. For patterns, accept the answer if it follows the rule
4. Tolerate spelling mistakes according to age
5. If the child understood the logic but slipped on a detail, be tolerant`,
	feedback: []string{
		"If correct: praise the excellent logic and reasoning",
		"If incorrect: encourage thinking differently and give a clue",
	},
	examples: map[guideline.AgeBand]Example{
		guideline.Band6to8: {
			Question:      "🔵 🔴 🔵 🔴 🔵 ___\n\nWhich colour comes next in this pattern?",
			CorrectAnswer: "red",
			Hints:         []string{"Look at the order of the colours", "The colours alternate: blue, red, blue, red...", "After blue comes..."},
			Topic:         "alternating pattern",
			AgeRange:      "6-8",
		},
		guideline.Band9to11: {
			Question:      "🐱 Three friends own different pets: a cat, a dog and a fish.\n- Julie has no cat\n- Mark's pet swims\n- Sophie loves felines\n\nWho has the dog?",
			CorrectAnswer: "Julie",
			Hints:         []string{"Mark has the fish because it swims", "Sophie has the cat because it is a feline", "That leaves..."},
			Topic:         "deduction by elimination",
			AgeRange:      "9-11",
		},
		guideline.Band12to14: {
			Question:      "🧮 Complete the sequence:\n2, 6, 12, 20, 30, __",
			CorrectAnswer: "42",
			Hints:         []string{"Look at the differences between the numbers", "The differences are +4, +6, +8, +10 and grow by 2", "After +10 comes +12"},
			Topic:         "second-order sequence",
			AgeRange:      "12-14",
		},
	},
}

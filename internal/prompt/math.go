package prompt

import "github.com/abhisek/kidguard/internal/guideline"

var mathTemplate = subjectTemplate{
	label: "math exercise",
	intro: `You are an expert in mathematics teaching for children.
You create FUN and ENGAGING math exercises that feel like mini-games.`,
	rules: []string{
		`Playful exercises set in a context (avoid bare drills like "Compute: 5+3")`,
		"Use concrete situations familiar to children",
		"Output strict JSON only",
		"Hints are progressive, from the vaguest to the most precise",
		"The answer is clear and unique (a number or a simple expression)",
	},
	style: []string{
		"Positive and encouraging language",
		"Imaginative scenarios (animals, games, sports, sweets)",
		"The exercise should feel like a fun challenge, not homework",
	},
	difficulty: map[guideline.Difficulty]string{
		guideline.DifficultyEasy:   "EASY - Simple and direct exercise with small numbers",
		guideline.DifficultyMedium: "MEDIUM - One or two step exercise with moderate numbers",
		guideline.DifficultyHard:   "HARD - Complex exercise needing several reasoning steps",
	},
	ageBlocks: map[guideline.AgeBand]string{
		guideline.Band6to8: `LEVEL 6-8 YEARS:
- Numbers from 0 to 20 at most
- Simple addition and subtraction
- First multiplication tables (2, 5, 10)
- Use concrete objects (apples, balls, pencils)
- Very short and simple sentences`,
		guideline.Band9to11: `LEVEL 9-11 YEARS:
- Numbers up to 1000
- The four operations
- Simple fractions (1/2, 1/4, 1/3)
- Problems with 2-3 steps
- More varied contexts (money, measures, time)`,
		guideline.Band12to14: `LEVEL 12-14 YEARS:
- Large, decimal and negative numbers
- Basic algebra (simple equations with x)
- Fractions, percentages, proportions
- Geometry (perimeter, area, volume)
- Multi-step problems requiring logical reasoning`,
	},
	guidelines: func(e guideline.Entry) []field {
		return []field{
			{"Cognitive level", e.CognitiveLevel},
			{"Math level", e.MathLevel},
			{"Attention", e.Attention},
		}
	},
	important: []string{
		"Make the exercise FUN with a story or an amusing context",
		"The question must be clear and precise",
		"The answer must be a number or a simple mathematical expression",
	},
	validationRules: `1. Compare the child's answer with the expected answer
2. Accept equivalent formats:
   - "8", "eight", "8.0" are all equivalent to 8
   - "1/2", "0.5", "50%" are all equivalent
   - Ignore spaces and punctuation
3. If the answer is correct or equivalent, set isCorrect to true
4. Otherwise set isCorrect to false`,
	feedback: []string{
		"If correct: enthusiastic, personal congratulations",
		"If incorrect: positive encouragement and a nudge in the right direction",
	},
	examples: map[guideline.AgeBand]Example{
		guideline.Band6to8: {
			Question:      "🍎 Sophie picked 7 red apples and 5 green apples in her garden. How many apples does she have in total?",
			CorrectAnswer: "12",
			Hints:         []string{"Count all the apples together", "7 red apples + 5 green apples", "7 + 5 = ?"},
			Topic:         "addition",
			AgeRange:      "6-8",
		},
		guideline.Band9to11: {
			Question:      "🎮 Leo saved 45€ to buy a video game that costs 28€. How much money will he have left?",
			CorrectAnswer: "17",
			Hints:         []string{"Take the price of the game away from his savings", "45€ - 28€", "45 - 28 = ?"},
			Topic:         "subtraction with money",
			AgeRange:      "9-11",
		},
		guideline.Band12to14: {
			Question:      "🚴 Emma rides her bike at an average speed of 15 km/h. How far does she travel in two and a half hours?",
			CorrectAnswer: "37.5",
			Hints:         []string{"Distance = speed × time", "Two and a half hours = 2.5 hours", "15 × 2.5 = ?"},
			Topic:         "speed and distance",
			AgeRange:      "12-14",
		},
	},
}

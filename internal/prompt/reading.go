package prompt

import "github.com/abhisek/kidguard/internal/guideline"

var readingTemplate = subjectTemplate{
	label: "reading comprehension exercise",
	intro: `You are an expert in teaching reading to children.
You create CAPTIVATING reading comprehension exercises that make children want to read.`,
	rules: []string{
		"Short and engaging stories (adventures, animals, funny situations)",
		"Clear and precise comprehension questions",
		"Output strict JSON only",
		"Hints help the child re-read or understand the text",
		"The answer is clear (a word, a short sentence or a choice)",
	},
	style: []string{
		"Imaginative and positive stories",
		"Rich vocabulary that still suits the age",
		"Themes children care about (nature, friendship, adventure, magic)",
	},
	difficulty: map[guideline.Difficulty]string{
		guideline.DifficultyEasy:   "EASY - Short text, direct question, obvious answer",
		guideline.DifficultyMedium: "MEDIUM - Longer text, question requiring understanding",
		guideline.DifficultyHard:   "HARD - Complex text, question requiring analysis or inference",
	},
	ageBlocks: map[guideline.AgeBand]string{
		guideline.Band6to8: `LEVEL 6-8 YEARS:
- Text of 2-4 short sentences (30-50 words at most)
- Simple and concrete vocabulary
- Sentences of 5-8 words at most
- Questions about explicit facts
- Answer: one word or a very short phrase`,
		guideline.Band9to11: `LEVEL 9-11 YEARS:
- Text of 1-2 paragraphs (80-120 words)
- Richer vocabulary with a few new words
- More complex sentences
- Questions on understanding and simple inference
- Answer: a short sentence or brief explanation`,
		guideline.Band12to14: `LEVEL 12-14 YEARS:
- Text of 2-3 paragraphs (150-200 words)
- Varied and nuanced vocabulary
- Complex grammatical structures
- Questions on analysis, interpretation and theme
- Answer: a full sentence or short analysis`,
	},
	guidelines: func(e guideline.Entry) []field {
		return []field{
			{"Cognitive level", e.CognitiveLevel},
			{"Reading level", e.ReadingLevel},
			{"Vocabulary", e.LanguageLevel},
		}
	},
	structure: `EXERCISE STRUCTURE:
1. Start with the short text to read
2. Then ask ONE comprehension question
3. Put the question after the text, prefixed with "Question: "
4. Format of the question field: "[TEXT]\n\nQuestion: [QUESTION]"`,
	important: []string{
		"Make the story interesting and captivating",
		"Use emojis to make the text more visual",
		"The answer must be found in the text or logically deducible from it",
	},
	validationRules: `1. What matters is UNDERSTANDING, not the exact wording
2. Accept answers that show understanding even with different words
3. Accept synonyms and rephrasings
4. Tolerate spelling mistakes according to age
5. If the answer captures the main idea, it is correct`,
	feedback: []string{
		"If correct: praise the understanding and careful reading",
		"If incorrect: encourage re-reading and hint at where to look",
	},
	examples: map[guideline.AgeBand]Example{
		guideline.Band6to8: {
			Question:      "🐱 Little cat Whiskers loves playing in the garden. He chases butterflies. Mother cat calls him to eat.\n\nQuestion: Where does Whiskers play?",
			CorrectAnswer: "in the garden",
			Hints:         []string{"Read the first sentence again", "Look for where the cat likes to play", "The cat plays in the..."},
			Topic:         "explicit facts",
			AgeRange:      "6-8",
		},
		guideline.Band9to11: {
			Question:      "🌲 Lucas loved walking in the forest with his grandfather. Together they watched birds and picked mushrooms. One day they found an abandoned hut among the trees. It became their secret.\n\nQuestion: Why was the hut special for Lucas and his grandfather?",
			CorrectAnswer: "It was their secret",
			Hints:         []string{"Read the last sentence again", "What did the hut mean to them?", "The hut was their..."},
			Topic:         "inference",
			AgeRange:      "9-11",
		},
		guideline.Band12to14: {
			Question:      "🎨 Marie hesitated in front of her blank canvas. She had so many ideas, but none seemed perfect enough. Her teacher had told her: \"Art is not about perfection, it is about expression.\" The sentence echoed in her head. At last she picked up her brush and let her feelings guide her hand. The result surprised even her.\n\nQuestion: What changes in Marie by the end of the text?",
			CorrectAnswer: "She stops chasing perfection and lets her feelings guide her",
			Hints:         []string{"Compare the beginning and the end", "What changes in her attitude?", "She goes from hesitation to..."},
			Topic:         "character development",
			AgeRange:      "12-14",
		},
	},
}

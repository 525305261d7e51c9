package prompt

import "github.com/abhisek/kidguard/internal/guideline"

var vocabularyTemplate = subjectTemplate{
	label: "vocabulary exercise",
	intro: `You are an expert in teaching vocabulary to children.
You create ENRICHING vocabulary exercises that build mastery of the language.`,
	rules: []string{
		"Varied exercises: synonyms, antonyms, definitions, context, word families",
		"Concrete words that are useful to children",
		"Output strict JSON only",
		"Hints help the child grasp meaning and context",
		"The answer is clear (a word or short phrase)",
	},
	style: []string{
		"Rich and varied vocabulary",
		"Concrete, vivid examples",
		"Learning words should feel like a discovery game",
	},
	difficulty: map[guideline.Difficulty]string{
		guideline.DifficultyEasy:   "EASY - Everyday words, simple synonyms, obvious context",
		guideline.DifficultyMedium: "MEDIUM - Richer vocabulary, nuances, common expressions",
		guideline.DifficultyHard:   "HARD - Advanced vocabulary, figurative meaning, fine nuances",
	},
	ageBlocks: map[guideline.AgeBand]string{
		guideline.Band6to8: `LEVEL 6-8 YEARS:
- Everyday words (family, school, animals, nature)
- Very simple synonyms (happy/glad, small/tiny)
- Obvious antonyms (big/small, hot/cold)
- Definitions tied to concrete mental images
- Avoid abstract words`,
		guideline.Band9to11: `LEVEL 9-11 YEARS:
- Richer vocabulary (emotions, actions, descriptions)
- Synonyms with nuance (fear/terror/anxiety)
- Less obvious antonyms
- Common expressions
- A few simple abstract words`,
		guideline.Band12to14: `LEVEL 12-14 YEARS:
- Formal and varied vocabulary
- Fine nuances between synonyms
- Literal and figurative meaning
- Idioms
- Abstract words and complex concepts`,
	},
	guidelines: func(e guideline.Entry) []field {
		return []field{
			{"Cognitive level", e.CognitiveLevel},
			{"Language level", e.LanguageLevel},
		}
	},
	structure: `EXERCISE TYPES (pick one):
1. Synonym: "Find another word that means the same as [WORD]"
2. Antonym: "What is the opposite of [WORD]?"
3. Definition: "What does the word [WORD] mean?"
4. Context: "Which word completes this sentence: [SENTENCE with ___]?"
5. Word family: "Find a word from the same family as [WORD]"`,
	important: []string{
		"Choose words that are useful and interesting at this age",
		"Use emojis to illustrate",
		"The answer must be a word or a short expression",
	},
	validationRules: `1. Understanding the meaning comes first
2. ACCEPT VALID SYNONYMS even when they differ from the expected answer
3. For antonyms, accept every valid opposite
4. For definitions, accept any correct explanation
5. Tolerate spelling mistakes according to age
6. Accept regional variants of the language
7. If the child understood the concept but chose a different synonym, it is correct`,
	feedback: []string{
		"If correct: praise the command of vocabulary",
		"If a valid but unexpected synonym: praise it and also mention the expected answer",
		"If incorrect: encourage and give a clue about the meaning",
	},
	examples: map[guideline.AgeBand]Example{
		guideline.Band6to8: {
			Question:      "📚 Find another word that means the same as 'happy'",
			CorrectAnswer: "glad",
			Hints:         []string{"Think of how you feel when you are happy", "It is a word about joy", "You can also say: I am ___"},
			Topic:         "synonyms",
			AgeRange:      "6-8",
		},
		guideline.Band9to11: {
			Question:      "🎨 Which word completes this sentence?\n\nThe painter mixes colours on his ___ before painting.",
			CorrectAnswer: "palette",
			Hints:         []string{"Painters hold it in their hand", "All the colours are on it", "It starts with 'pa...'"},
			Topic:         "words in context",
			AgeRange:      "9-11",
		},
		guideline.Band12to14: {
			Question:      "🌟 What does the expression 'to have a heart of gold' mean?",
			CorrectAnswer: "to be very kind and generous",
			Hints:         []string{"It describes a person, not an object", "Gold is precious", "Such a person is very ___ to others"},
			Topic:         "idioms",
			AgeRange:      "12-14",
		},
	},
}

package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/kidguard/internal/answer"
	"github.com/abhisek/kidguard/internal/guideline"
)

var validateCmd = &cobra.Command{
	Use:     "validate",
	Short:   "Check a child's answer",
	Example: `  kidguard validate --age 7 --subject math --question "4 + 4?" --expected 8 --answer eight`,
	RunE: func(cmd *cobra.Command, args []string) error {
		age, _ := cmd.Flags().GetInt("age")
		subject, _ := cmd.Flags().GetString("subject")
		question, _ := cmd.Flags().GetString("question")
		expected, _ := cmd.Flags().GetString("expected")
		childAnswer, _ := cmd.Flags().GetString("answer")
		asJSON, _ := cmd.Flags().GetBool("json")

		a, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()

		v := a.Checker.Validate(cmd.Context(), answer.ValidateInput{
			Question:      question,
			CorrectAnswer: expected,
			ChildAnswer:   childAnswer,
			Age:           age,
			Subject:       guideline.Subject(subject),
		})

		if asJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(v)
		}

		result := "✗ incorrect"
		if v.IsCorrect {
			result = "✓ correct"
		}
		fmt.Printf("Result:    %s\n", result)
		fmt.Printf("Feedback:  %s\n", v.Feedback)
		if v.LeniencyApplied {
			fmt.Println("Leniency:  applied")
		}
		if v.Reasoning != "" {
			fmt.Printf("Reasoning: %s\n", v.Reasoning)
		}
		if v.Fallback {
			fmt.Println("(AI unavailable, exact match used)")
		}
		return nil
	},
}

func init() {
	validateCmd.Flags().IntP("age", "a", 0, "Child's age (6-14)")
	validateCmd.Flags().StringP("subject", "s", string(guideline.SubjectMath), "Subject: math, reading, logic or vocabulary")
	validateCmd.Flags().StringP("question", "q", "", "Question shown to the child")
	validateCmd.Flags().StringP("expected", "e", "", "Expected answer")
	validateCmd.Flags().String("answer", "", "Child's answer")
	validateCmd.Flags().Bool("json", false, "Print the verdict as JSON")
	for _, f := range []string{"age", "question", "expected", "answer"} {
		_ = validateCmd.MarkFlagRequired(f)
	}
}

package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/abhisek/kidguard/internal/exercise"
	"github.com/abhisek/kidguard/internal/guideline"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate exercises for a child's age",
	Example: `  kidguard generate --age 7 --subject math --count 3
  kidguard generate --age 12 --subject all --json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		age, _ := cmd.Flags().GetInt("age")
		subjectFlag, _ := cmd.Flags().GetString("subject")
		difficultyFlag, _ := cmd.Flags().GetString("difficulty")
		count, _ := cmd.Flags().GetInt("count")
		asJSON, _ := cmd.Flags().GetBool("json")

		subjects := guideline.AllSubjects
		if subjectFlag != "all" {
			s, err := guideline.ParseSubject(subjectFlag)
			if err != nil {
				return err
			}
			subjects = []guideline.Subject{s}
		}

		difficulty := guideline.Difficulty(difficultyFlag)
		if difficulty == "" {
			d, err := guideline.DifficultyForAge(age)
			if err != nil {
				return err
			}
			difficulty = d
		}

		a, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()

		// One generation per subject, each in its own goroutine.
		results := make([][]exercise.Exercise, len(subjects))
		g, ctx := errgroup.WithContext(cmd.Context())
		for i, subject := range subjects {
			g.Go(func() error {
				exs, err := a.Generator.Generate(ctx, exercise.GenerateInput{
					Subject:    subject,
					Age:        age,
					Difficulty: difficulty,
					Count:      count,
				})
				if err != nil {
					return fmt.Errorf("%s: %w", subject, err)
				}
				results[i] = exs
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return err
		}

		var all []exercise.Exercise
		for _, exs := range results {
			all = append(all, exs...)
		}

		if asJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(all)
		}
		printExercises(all)
		return nil
	},
}

func printExercises(exs []exercise.Exercise) {
	sep := strings.Repeat("─", 60)
	for i, ex := range exs {
		if i > 0 {
			fmt.Println()
		}
		fmt.Println(sep)
		fmt.Printf("#%d  %s · %s · %s years", i+1, ex.Subject, ex.Difficulty, ex.AgeRange)
		if ex.Topic != "" {
			fmt.Printf(" · %s", ex.Topic)
		}
		fmt.Println()
		fmt.Println(sep)
		fmt.Println(ex.Question)
		fmt.Println()
		for j, h := range ex.Hints {
			fmt.Printf("  Hint %d: %s\n", j+1, h)
		}
		fmt.Printf("  Answer: %s\n", ex.CorrectAnswer)
	}
}

func init() {
	generateCmd.Flags().IntP("age", "a", 0, "Child's age (6-14)")
	generateCmd.Flags().StringP("subject", "s", string(guideline.SubjectMath), "Subject: math, reading, logic, vocabulary or all")
	generateCmd.Flags().StringP("difficulty", "d", "", "Difficulty: easy, medium or hard (default follows age)")
	generateCmd.Flags().IntP("count", "n", 1, "Number of exercises per subject (1-10)")
	generateCmd.Flags().Bool("json", false, "Print exercises as JSON")
	_ = generateCmd.MarkFlagRequired("age")
}

package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/kidguard/internal/metrics"
	"github.com/abhisek/kidguard/internal/store"
)

var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Inspect recorded AI call metrics",
}

func openStore() (*store.Store, error) {
	dbPath, err := resolveDBPath()
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	s, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return s, nil
}

func queryOpts(cmd *cobra.Command) (store.QueryOpts, error) {
	op, _ := cmd.Flags().GetString("operation")
	opts := store.QueryOpts{Operation: metrics.Operation(op)}
	switch opts.Operation {
	case "", metrics.OpGenerate, metrics.OpValidate:
	default:
		return opts, fmt.Errorf("unknown operation %q (want generate or validate)", op)
	}
	if cmd.Flags().Lookup("limit") != nil {
		opts.Limit, _ = cmd.Flags().GetInt("limit")
	}
	return opts, nil
}

var metricsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent AI calls",
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := queryOpts(cmd)
		if err != nil {
			return err
		}
		s, err := openStore()
		if err != nil {
			return err
		}
		defer s.Close()

		recs, err := s.ListMetrics(cmd.Context(), opts)
		if err != nil {
			return fmt.Errorf("query metrics: %w", err)
		}
		if len(recs) == 0 {
			fmt.Println("No AI calls recorded.")
			return nil
		}

		fmt.Printf("%-19s  %-8s  %-20s  %-6s  %-6s  %-7s  %-9s  %s\n",
			"Timestamp", "Op", "Model", "In", "Out", "Ms", "Cost", "OK")
		fmt.Println(strings.Repeat("─", 100))
		for _, r := range recs {
			ok := "✓"
			if !r.Success {
				ok = "✗ " + r.ErrorType
			}
			fmt.Printf("%-19s  %-8s  %-20s  %-6d  %-6d  %-7d  %-9s  %s\n",
				r.Timestamp.Local().Format("2006-01-02 15:04:05"),
				r.Operation,
				truncate(r.Model, 20),
				r.PromptTokens,
				r.CompletionTokens,
				r.ResponseTimeMs,
				formatCost(r.CostUSD),
				ok,
			)
		}
		return nil
	},
}

var metricsStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show aggregated success rate, tokens and cost",
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := queryOpts(cmd)
		if err != nil {
			return err
		}
		s, err := openStore()
		if err != nil {
			return err
		}
		defer s.Close()

		st, err := s.MetricStats(cmd.Context(), opts)
		if err != nil {
			return fmt.Errorf("query metrics: %w", err)
		}
		if st.TotalRequests == 0 {
			fmt.Println("No AI calls recorded.")
			return nil
		}
		printStats(st)
		return nil
	},
}

var metricsClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete every recorded AI call",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore()
		if err != nil {
			return err
		}
		defer s.Close()

		n, err := s.ClearMetrics(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Printf("Deleted %d records.\n", n)
		return nil
	},
}

func printStats(st metrics.Stats) {
	sep := strings.Repeat("─", 40)
	fmt.Println("AI Call Metrics")
	fmt.Println(sep)
	fmt.Printf("%-22s %d\n", "Total requests", st.TotalRequests)
	fmt.Printf("%-22s %d\n", "Successful", st.SuccessCount)
	fmt.Printf("%-22s %d\n", "Failed", st.FailureCount)
	fmt.Printf("%-22s %.1f%%\n", "Success rate", st.SuccessRate*100)
	fmt.Printf("%-22s %d\n", "Total tokens", st.TotalTokens)
	fmt.Printf("%-22s %s\n", "Total cost", formatCost(st.TotalCostUSD))
	fmt.Printf("%-22s %.0fms\n", "Avg response time", st.AvgResponseTimeMs)

	if len(st.ErrorTypes) > 0 {
		fmt.Println()
		fmt.Println("Errors by type")
		fmt.Println(sep)
		types := make([]string, 0, len(st.ErrorTypes))
		for t := range st.ErrorTypes {
			types = append(types, t)
		}
		sort.Strings(types)
		for _, t := range types {
			fmt.Printf("%-22s %d\n", t, st.ErrorTypes[t])
		}
	}
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}

func formatCost(usd float64) string {
	if usd < 0.01 {
		return fmt.Sprintf("$%.4f", usd)
	}
	return fmt.Sprintf("$%.2f", usd)
}

func init() {
	metricsListCmd.Flags().IntP("limit", "n", 20, "Number of records to show")
	metricsListCmd.Flags().StringP("operation", "o", "", "Filter by operation (generate or validate)")
	metricsStatsCmd.Flags().StringP("operation", "o", "", "Filter by operation (generate or validate)")

	metricsCmd.AddCommand(metricsListCmd)
	metricsCmd.AddCommand(metricsStatsCmd)
	metricsCmd.AddCommand(metricsClearCmd)
}

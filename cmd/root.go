package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/abhisek/kidguard/internal/store"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "kidguard",
	Short: "Adaptive exercises and answer checking for kids",
	Long:  "KidGuard generates age-appropriate exercises with an AI model and checks children's answers with age-aware leniency.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("load .env: %w", err)
		}
		if err := loadConfig(); err != nil {
			return err
		}
		setupLogging(os.Stderr, viper.GetBool("debug"), false)
		return nil
	},
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "Config file (default: ./kidguard.yaml if present)")
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides KIDGUARD_DB env var)")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().String("language", "", "Language of child-facing text (default French)")

	_ = viper.BindPFlag("db", rootCmd.PersistentFlags().Lookup("db"))
	_ = viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	_ = viper.BindPFlag("language", rootCmd.PersistentFlags().Lookup("language"))

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(metricsCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig reads the optional config file. Flags and KIDGUARD_*
// environment variables override it.
func loadConfig() error {
	bindEnv()
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("kidguard")
		viper.AddConfigPath(".")
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("failed to load config: %w", err)
	}
	return nil
}

// setupLogging installs the default slog logger: text on the terminal,
// JSON when serving.
func setupLogging(w *os.File, debug, jsonFormat bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}

	var h slog.Handler = slog.NewTextHandler(w, opts)
	if jsonFormat {
		h = slog.NewJSONHandler(w, opts)
	}
	slog.SetDefault(slog.New(h))
}

// resolveDBPath returns the database path using --db flag or config
// (highest priority), then KIDGUARD_DB env var, then the default XDG path.
func resolveDBPath() (string, error) {
	if p := strings.TrimSpace(viper.GetString("db")); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

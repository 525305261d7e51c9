// Package app wires the provider, ledger, store and orchestrators together.
// Every dependency is built here and passed down explicitly.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/abhisek/kidguard/internal/answer"
	"github.com/abhisek/kidguard/internal/api"
	"github.com/abhisek/kidguard/internal/exercise"
	"github.com/abhisek/kidguard/internal/llm"
	"github.com/abhisek/kidguard/internal/metrics"
	"github.com/abhisek/kidguard/internal/prompt"
	"github.com/abhisek/kidguard/internal/store"
)

// Options configures New.
type Options struct {
	// LLM configures the gateway. Ignored when Provider is set.
	LLM llm.Config

	// Provider, when set, is used as-is instead of building one from LLM.
	Provider llm.Provider

	// Language is the language of child-facing text. Empty means
	// prompt.DefaultLanguage.
	Language string

	// DBPath enables durable metrics when non-empty.
	DBPath string

	// Exercise and Answer override the orchestrator defaults when non-nil.
	Exercise *exercise.Config
	Answer   *answer.Config

	Logger *slog.Logger
}

// App holds the wired dependencies.
type App struct {
	Provider  llm.Provider
	Ledger    *metrics.Ledger
	Store     *store.Store
	Generator *exercise.Generator
	Checker   *answer.Checker
	Registry  *prometheus.Registry

	logger *slog.Logger
}

// New builds an App. The caller must Close it.
func New(ctx context.Context, opts Options) (*App, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	a := &App{logger: logger}

	provider := opts.Provider
	if provider == nil {
		p, err := llm.NewClient(ctx, opts.LLM, logger)
		if err != nil {
			return nil, fmt.Errorf("build ai client: %w", err)
		}
		provider = p
	}
	a.Provider = provider

	ledgerOpts := []metrics.Option{metrics.WithLogger(logger)}
	if opts.DBPath != "" {
		st, err := store.Open(opts.DBPath)
		if err != nil {
			return nil, fmt.Errorf("open store: %w", err)
		}
		a.Store = st
		ledgerOpts = append(ledgerOpts, metrics.WithSink(st))
	}
	a.Ledger = metrics.NewLedger(ledgerOpts...)

	builder := prompt.NewBuilder(opts.Language)

	exCfg := exercise.DefaultConfig()
	if opts.Exercise != nil {
		exCfg = *opts.Exercise
	}
	a.Generator = exercise.New(provider, a.Ledger, builder, exCfg, logger)

	ansCfg := answer.DefaultConfig()
	if opts.Answer != nil {
		ansCfg = *opts.Answer
	}
	a.Checker = answer.NewChecker(provider, a.Ledger, builder, ansCfg, logger)

	a.Registry = prometheus.NewRegistry()
	a.Registry.MustRegister(
		metrics.NewCollector(a.Ledger),
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	logger.Debug("app initialized",
		"model", provider.ModelID(),
		"persistent_metrics", a.Store != nil)
	return a, nil
}

// Handler returns the HTTP API backed by this App.
func (a *App) Handler() http.Handler {
	var db api.Pinger
	if a.Store != nil {
		db = a.Store
	}
	return api.NewRouter(api.NewHandler(a.Generator, a.Checker, db, a.logger), a.Registry)
}

// Close releases the store, if any.
func (a *App) Close() error {
	var errs []error
	if a.Store != nil {
		if err := a.Store.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close store: %w", err))
		}
	}
	return errors.Join(errs...)
}

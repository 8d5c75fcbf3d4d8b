package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/JonMunkholm/elc/internal/cache"
	"github.com/JonMunkholm/elc/internal/config"
	"github.com/JonMunkholm/elc/internal/core"
	"github.com/JonMunkholm/elc/internal/election"
	"github.com/JonMunkholm/elc/internal/ingest"
	"github.com/JonMunkholm/elc/internal/logging"
	"github.com/JonMunkholm/elc/internal/source"
)

// app carries what every subcommand needs once PersistentPreRunE has run.
type app struct {
	clearCache bool
	years      []int

	cfg       *config.Config
	elections []election.Election
	cache     cache.Cache
	logFile   io.Closer
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "elc",
		Short: "Fetch and decode AEC federal election results",
		Long: `elc downloads the House of Representatives first preference, two candidate
preferred and distribution of preference files for each configured federal
election, decodes them into typed records and caches the result by year.

Malformed rows are logged and skipped; they never abort a run.

Configuration comes from the environment (and .env): see SOURCE_*, CACHE_*,
INGEST_*, LOG_* and ELECTIONS_FILE.`,
		SilenceUsage:      true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return a.setup(cmd.Context()) },
		RunE: func(cmd *cobra.Command, args []string) error {
			_, _, err := a.load(cmd.Context())
			return err
		},
	}
	root.SetContext(context.Background())
	cobra.OnFinalize(a.close)

	root.PersistentFlags().BoolVarP(&a.clearCache, "clear-cache", "c", false, "clear the cache before running")
	root.PersistentFlags().IntSliceVar(&a.years, "year", nil, "only these election years (repeatable or comma-separated)")

	root.AddCommand(
		newLoadCmd(a),
		newServeCmd(a),
		newExportCmd(a),
		newPurgeCmd(a),
		newVersionCmd(),
	)
	return root
}

// setup loads .env and configuration, installs logging and opens the cache.
func (a *app) setup(ctx context.Context) error {
	// Load .env file if it exists (Overload overwrites existing env vars)
	envErr := godotenv.Overload()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		return err
	}
	a.cfg = cfg

	closer, err := logging.Setup(cfg.Logging.Level, cfg.Logging.Format, cfg.Logging.FilePath())
	if err != nil {
		return err
	}
	a.logFile = closer

	if envErr != nil {
		slog.Debug("no .env file found, using environment variables")
	} else {
		slog.Debug("loaded .env file (overwriting existing env vars)")
	}

	all, err := config.LoadElections(cfg.Ingest.ElectionsFile)
	if err != nil {
		return err
	}
	if a.elections, err = config.FilterElections(all, a.years); err != nil {
		return err
	}

	a.cache, err = cache.Open(ctx, cfg.Cache)
	if err != nil {
		return fmt.Errorf("%s: %w", core.FormatUserError(err), err)
	}

	slog.Info("configuration loaded",
		"cache_backend", cfg.Cache.Backend,
		"source", cfg.Source.BaseURL,
		"elections", len(a.elections),
		"kinds", core.KindCount(),
	)

	if a.clearCache {
		if err := a.cache.Purge(ctx); err != nil {
			return err
		}
		slog.Info("cache cleared")
	}
	return nil
}

// close releases the cache and log file. It runs after every command,
// including failed ones.
func (a *app) close() {
	if a.cache != nil {
		if err := a.cache.Close(); err != nil {
			slog.Warn("closing cache", "error", err)
		}
		a.cache = nil
	}
	if a.logFile != nil {
		a.logFile.Close()
		a.logFile = nil
	}
}

func (a *app) loader() *ingest.Loader {
	src := a.cfg.Source
	fetcher := source.NewHTTPFetcher(source.Options{
		BaseURL:       src.BaseURL,
		Timeout:       src.Timeout,
		Retries:       src.Retries,
		RetryWait:     src.RetryWait,
		UserAgent:     src.UserAgent,
		MaxConcurrent: src.MaxConcurrent,
		MaxWait:       src.MaxWaitTime,
	})
	return ingest.NewLoader(fetcher, a.cache, ingest.Options{
		Workers: a.cfg.Ingest.Workers,
		Timeout: a.cfg.Ingest.Timeout,
	})
}

// load fetches or reads from cache every selected election and logs a
// per-year summary.
func (a *app) load(ctx context.Context) (election.Results, []ingest.YearReport, error) {
	results, reports, err := a.loader().Load(ctx, a.elections)
	if err != nil {
		slog.Error("load failed", "error", err, "code", core.MapError(err).Code)
		return results, reports, err
	}

	for _, rep := range reports {
		d := results[rep.Year]
		args := []any{
			"year", rep.Year,
			"cached", rep.Cached,
			"dropped", rep.Dropped(),
			"duration", rep.Duration,
		}
		for k, n := range d.Counts() {
			args = append(args, k, n)
		}
		if top := election.Summarize(d); len(top) > 0 {
			args = append(args,
				"leading_party", top[0].Party,
				"leading_first_preferences", top[0].TotalFirstPreferences.String(),
				"leading_seats", top[0].SeatsWon,
			)
		}
		slog.Info("election ready", args...)
		for _, w := range rep.Warnings {
			slog.Warn("election warning", "year", rep.Year, "warning", w)
		}
	}
	return results, reports, nil
}

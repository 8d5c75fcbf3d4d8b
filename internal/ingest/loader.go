// Package ingest drives a run: for each configured election it returns the
// cached dataset or downloads the three result files, decodes them and
// caches the result.
package ingest

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/JonMunkholm/elc/internal/cache"
	"github.com/JonMunkholm/elc/internal/core"
	"github.com/JonMunkholm/elc/internal/core/kinds"
	"github.com/JonMunkholm/elc/internal/election"
	"github.com/JonMunkholm/elc/internal/logging"
	"github.com/JonMunkholm/elc/internal/source"
)

// ErrEmptyFile marks a downloaded file that produced no data rows.
var ErrEmptyFile = errors.New("empty file: no data rows")

// Options tunes a Loader.
type Options struct {
	// Workers bounds concurrent group decodes per file. Zero uses GOMAXPROCS.
	Workers int

	// Timeout bounds a whole Load call. Zero means no limit.
	Timeout time.Duration
}

// YearReport describes how one election was obtained.
type YearReport struct {
	Year     int           `json:"year"`
	Code     int           `json:"code"`
	RunID    string        `json:"run_id"`
	Cached   bool          `json:"cached"`
	Files    []core.Report `json:"files,omitempty"`
	Warnings []string      `json:"warnings,omitempty"`
	Duration time.Duration `json:"duration"`
}

// Dropped totals the groups dropped across the year's files.
func (r YearReport) Dropped() int {
	n := 0
	for _, f := range r.Files {
		n += f.Dropped
	}
	return n
}

// Loader fetches, decodes and caches election datasets.
type Loader struct {
	fetcher source.Fetcher
	cache   cache.Cache
	opts    Options
}

// NewLoader returns a Loader. A nil cache disables caching.
func NewLoader(f source.Fetcher, c cache.Cache, opts Options) *Loader {
	return &Loader{fetcher: f, cache: c, opts: opts}
}

// Load obtains every election in order and returns the datasets keyed by
// year. The first fetch or encoding error stops the run.
func (l *Loader) Load(ctx context.Context, elections []election.Election) (election.Results, []YearReport, error) {
	if l.opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, l.opts.Timeout)
		defer cancel()
	}

	results := make(election.Results, len(elections))
	reports := make([]YearReport, 0, len(elections))

	for _, e := range elections {
		if err := ctx.Err(); err != nil {
			return results, reports, err
		}
		d, rep, err := l.LoadYear(ctx, e)
		if err != nil {
			return results, reports, err
		}
		results[e.Year] = d
		reports = append(reports, rep)
	}
	return results, reports, nil
}

// LoadYear returns the cached dataset for e, or fetches and decodes it.
// Failing to write the cache is logged and does not fail the call.
func (l *Loader) LoadYear(ctx context.Context, e election.Election) (election.Dataset, YearReport, error) {
	start := time.Now()
	runID := uuid.New().String()
	ctx = logging.WithRunID(ctx, runID)
	logger := logging.WithFields(ctx, "year", e.Year, "code", e.Code)

	rep := YearReport{Year: e.Year, Code: e.Code, RunID: runID}

	if l.cache != nil {
		d, err := l.cache.Get(ctx, e.Year)
		switch {
		case err == nil:
			rep.Cached = true
			rep.Duration = time.Since(start)
			logger.Info("loaded from cache")
			return d, rep, nil
		case !errors.Is(err, cache.ErrMiss):
			logger.Warn("cache read failed, fetching", "error", err)
		}
	}

	files, err := l.fetchAll(ctx, e.Code)
	if err != nil {
		return election.Dataset{}, rep, fmt.Errorf("election %d: %w", e.Year, err)
	}

	d, reports, err := l.decode(ctx, files)
	if err != nil {
		return election.Dataset{}, rep, fmt.Errorf("election %d: %w", e.Year, err)
	}
	rep.Files = reports

	for _, r := range reports {
		if r.Rows == 0 {
			w := fmt.Errorf("%s: %w", r.Kind, ErrEmptyFile)
			logger.Warn("no rows decoded", "kind", r.Kind, "error", w)
			rep.Warnings = append(rep.Warnings, core.FormatUserError(w))
		}
	}

	if l.cache != nil {
		if err := l.cache.Put(ctx, e.Year, d); err != nil {
			logger.Warn("cache write failed", "error", err)
			rep.Warnings = append(rep.Warnings, "cache write failed: "+err.Error())
		}
	}

	rep.Duration = time.Since(start)
	logger.Info("election loaded",
		"first_preferences", len(d.FirstPreferences),
		"two_candidate_preferred", len(d.TwoCandidatePreferred),
		"preference_distributions", len(d.PreferenceDistributions),
		"dropped", rep.Dropped(),
		"duration", rep.Duration,
	)
	return d, rep, nil
}

// rawFiles holds the downloaded bytes of each kind's file.
type rawFiles struct {
	firstPrefs []byte
	tcp        []byte
	dop        []byte
}

func (l *Loader) fetchAll(ctx context.Context, code int) (rawFiles, error) {
	var files rawFiles

	g, gctx := errgroup.WithContext(ctx)
	for _, f := range []struct {
		name string
		dst  *[]byte
	}{
		{kinds.FirstPreferences.Info.FileName, &files.firstPrefs},
		{kinds.TwoCandidatePreferred.Info.FileName, &files.tcp},
		{kinds.PreferenceDistribution.Info.FileName, &files.dop},
	} {
		f := f
		g.Go(func() error {
			data, err := l.fetcher.Fetch(gctx, code, f.name)
			if err != nil {
				return err
			}
			*f.dst = data
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return rawFiles{}, err
	}
	return files, nil
}

func (l *Loader) decode(ctx context.Context, files rawFiles) (election.Dataset, []core.Report, error) {
	var (
		d    election.Dataset
		opts = core.Options{Workers: l.opts.Workers}
		reps = make([]core.Report, 0, 3)
		rep  core.Report
		err  error
	)

	if d.FirstPreferences, rep, err = core.Process(ctx, kinds.FirstPreferences, files.firstPrefs, opts); err != nil {
		return d, reps, err
	}
	reps = append(reps, rep)

	if d.TwoCandidatePreferred, rep, err = core.Process(ctx, kinds.TwoCandidatePreferred, files.tcp, opts); err != nil {
		return d, reps, err
	}
	reps = append(reps, rep)

	if d.PreferenceDistributions, rep, err = core.Process(ctx, kinds.PreferenceDistribution, files.dop, opts); err != nil {
		return d, reps, err
	}
	reps = append(reps, rep)

	return d, reps, nil
}

// Package source downloads published AEC result files.
package source

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/JonMunkholm/elc/internal/logging"
)

// DefaultBaseURL is the AEC tally room results host.
const DefaultBaseURL = "https://results.aec.gov.au"

// Fetcher returns the raw bytes of one published file for an election.
type Fetcher interface {
	Fetch(ctx context.Context, code int, file string) ([]byte, error)
}

// StatusError is returned when the server answers with a non-2xx status.
type StatusError struct {
	URL        string
	StatusCode int
	Status     string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("fetch %s: unexpected status %s", e.URL, e.Status)
}

// Options configures an HTTPFetcher.
type Options struct {
	BaseURL       string
	Timeout       time.Duration
	Retries       int
	RetryWait     time.Duration
	UserAgent     string
	MaxConcurrent int
	MaxWait       time.Duration
}

// HTTPFetcher fetches files over HTTP with retries and a concurrency limit.
type HTTPFetcher struct {
	baseURL string
	http    *resty.Client
	limiter *Limiter
}

// NewHTTPFetcher builds a fetcher. Zero-valued options fall back to defaults.
func NewHTTPFetcher(opts Options) *HTTPFetcher {
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultBaseURL
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 30 * time.Second
	}
	if opts.RetryWait <= 0 {
		opts.RetryWait = 500 * time.Millisecond
	}

	c := resty.New().
		SetTimeout(opts.Timeout).
		SetRetryCount(max(opts.Retries, 0)).
		SetRetryWaitTime(opts.RetryWait).
		SetRetryMaxWaitTime(opts.RetryWait * 8).
		AddRetryCondition(func(r *resty.Response, err error) bool {
			return err != nil || r.StatusCode() >= http.StatusInternalServerError
		})
	if opts.UserAgent != "" {
		c.SetHeader("User-Agent", opts.UserAgent)
	}

	return &HTTPFetcher{
		baseURL: strings.TrimRight(opts.BaseURL, "/"),
		http:    c,
		limiter: NewLimiter(opts.MaxConcurrent, opts.MaxWait),
	}
}

// URL returns the download URL of file for the election with the given code.
func (f *HTTPFetcher) URL(code int, file string) string {
	return fmt.Sprintf("%s/%d/Website/Downloads/%s-%d.csv", f.baseURL, code, file, code)
}

// Fetch downloads one file. Transport errors and non-2xx responses (after
// retries) are returned as errors.
func (f *HTTPFetcher) Fetch(ctx context.Context, code int, file string) ([]byte, error) {
	if err := f.limiter.Acquire(ctx); err != nil {
		return nil, fmt.Errorf("fetch %s: %w", file, err)
	}
	defer f.limiter.Release()

	url := f.URL(code, file)
	logger := logging.WithFields(ctx, "url", url)
	logger.Debug("fetching file", "active", f.limiter.ActiveCount())

	start := time.Now()
	r, err := f.http.R().SetContext(ctx).Get(url)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", url, err)
	}
	if r.IsError() {
		return nil, &StatusError{URL: url, StatusCode: r.StatusCode(), Status: r.Status()}
	}

	logger.Info("file fetched",
		"bytes", len(r.Body()),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return r.Body(), nil
}

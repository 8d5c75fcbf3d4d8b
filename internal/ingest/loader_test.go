package ingest

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/JonMunkholm/elc/internal/cache"
	"github.com/JonMunkholm/elc/internal/election"
	"github.com/JonMunkholm/elc/internal/source"
)

func csv(lines ...string) []byte {
	return []byte(strings.Join(lines, "\n") + "\n")
}

var publishedFiles = map[string][]byte{
	"HouseFirstPrefsByPartyDownload": csv(
		"First Preferences By Party",
		"StateAb,PartyAb,PartyNm,OrdinaryVotes,AbsentVotes,ProvisionalVotes,PrePollVotes,PostalVotes,TotalVotes,TotalPercentage,TotalSwing",
		`NSW,ALP,"Australian Labor Party",100,2,1,30,7,140,33.3,-1.5`,
		`NSW,LP,"Liberal",90,1,1,20,9,121,30.1,2.5`,
	),
	"HouseTcpByCandidateByPollingPlaceDownload": csv(
		"Two Candidate Preferred By Polling Place",
		"StateAb,DivisionNm,BallotPosition,PartyAb,OrdinaryVotes,Swing",
		"ACT,Bean,1,ALP,500,2.1",
		"ACT,Bean,2,LP,300,-2.1",
		"NSW,NotARealPlace,1,ALP,10,0",
		"NSW,NotARealPlace,2,LP,20,0",
	),
	"HouseDopByDivisionDownload": csv(
		"Distribution of Preferences",
		"DivisionNm,PartyAb,CalculationType,CalculationValue",
		"Wills,GRN,Preference Count,800",
		"Wills,GRN,Preference Percent,8.1",
		"Wills,GRN,Transfer Percent,0.4",
		"Wills,GRN,Transfer Count,40",
	),
}

type fakeFetcher struct {
	mu    sync.Mutex
	files map[string][]byte
	calls []string
	err   error
}

func (f *fakeFetcher) Fetch(_ context.Context, code int, file string) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, file)
	if f.err != nil {
		return nil, f.err
	}
	data, ok := f.files[file]
	if !ok {
		return nil, &source.StatusError{URL: file, StatusCode: 404, Status: "404 Not Found"}
	}
	return data, nil
}

func (f *fakeFetcher) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

// failingPut wraps a cache and rejects every write.
type failingPut struct {
	cache.Cache
}

func (failingPut) Put(context.Context, int, election.Dataset) error {
	return errors.New("disk full")
}

func TestLoadYear_FetchDecodeCache(t *testing.T) {
	ctx := context.Background()
	f := &fakeFetcher{files: publishedFiles}
	c := cache.NewFileCache(filepath.Join(t.TempDir(), "cache"))
	l := NewLoader(f, c, Options{Workers: 2})

	e := election.Election{Year: 2022, Code: 27966}
	d, rep, err := l.LoadYear(ctx, e)
	if err != nil {
		t.Fatalf("LoadYear: %v", err)
	}

	if rep.Cached {
		t.Error("first load should not come from cache")
	}
	if rep.RunID == "" {
		t.Error("expected a run id")
	}
	if f.callCount() != 3 {
		t.Errorf("fetches = %d, want 3", f.callCount())
	}
	if len(d.FirstPreferences) != 2 || len(d.TwoCandidatePreferred) != 1 || len(d.PreferenceDistributions) != 1 {
		t.Errorf("counts = %v", d.Counts())
	}
	if rep.Dropped() != 1 {
		t.Errorf("Dropped() = %d, want 1", rep.Dropped())
	}
	if len(rep.Files) != 3 {
		t.Errorf("file reports = %d, want 3", len(rep.Files))
	}

	// Second load is served from the cache without fetching.
	d2, rep2, err := l.LoadYear(ctx, e)
	if err != nil {
		t.Fatalf("LoadYear cached: %v", err)
	}
	if !rep2.Cached {
		t.Error("second load should come from cache")
	}
	if f.callCount() != 3 {
		t.Errorf("fetches after cached load = %d, want 3", f.callCount())
	}
	if d2.Counts()["two_candidate_preferred"] != 1 {
		t.Errorf("cached counts = %v", d2.Counts())
	}
	if rep2.RunID == rep.RunID {
		t.Error("each load should get its own run id")
	}
}

func TestLoadYear_FetchErrorPropagates(t *testing.T) {
	f := &fakeFetcher{files: map[string][]byte{}}
	l := NewLoader(f, nil, Options{})

	_, _, err := l.LoadYear(context.Background(), election.Election{Year: 2019, Code: 24310})
	var se *source.StatusError
	if !errors.As(err, &se) || se.StatusCode != 404 {
		t.Fatalf("err = %v, want StatusError 404", err)
	}
	if !strings.Contains(err.Error(), "election 2019") {
		t.Errorf("err = %q, want year context", err)
	}
}

func TestLoadYear_InvalidEncodingFails(t *testing.T) {
	files := make(map[string][]byte, len(publishedFiles))
	for k, v := range publishedFiles {
		files[k] = v
	}
	files["HouseDopByDivisionDownload"] = []byte{0xff, 0xfe, 'x'}

	l := NewLoader(&fakeFetcher{files: files}, nil, Options{})
	if _, _, err := l.LoadYear(context.Background(), election.Election{Year: 2022, Code: 27966}); err == nil {
		t.Fatal("expected encoding error")
	}
}

func TestLoadYear_CacheWriteFailureIsNotFatal(t *testing.T) {
	c := failingPut{cache.NewFileCache(t.TempDir())}
	l := NewLoader(&fakeFetcher{files: publishedFiles}, c, Options{})

	d, rep, err := l.LoadYear(context.Background(), election.Election{Year: 2022, Code: 27966})
	if err != nil {
		t.Fatalf("LoadYear: %v", err)
	}
	if len(d.FirstPreferences) != 2 {
		t.Errorf("dataset not returned: %v", d.Counts())
	}
	if len(rep.Warnings) != 1 || !strings.Contains(rep.Warnings[0], "disk full") {
		t.Errorf("warnings = %v, want cache write failure", rep.Warnings)
	}
}

func TestLoadYear_EmptyFileWarns(t *testing.T) {
	files := make(map[string][]byte, len(publishedFiles))
	for k, v := range publishedFiles {
		files[k] = v
	}
	files["HouseFirstPrefsByPartyDownload"] = nil

	l := NewLoader(&fakeFetcher{files: files}, nil, Options{})
	_, rep, err := l.LoadYear(context.Background(), election.Election{Year: 2022, Code: 27966})
	if err != nil {
		t.Fatalf("LoadYear: %v", err)
	}
	if len(rep.Warnings) != 1 || !strings.Contains(rep.Warnings[0], "FILE005") {
		t.Errorf("warnings = %v, want FILE005", rep.Warnings)
	}
}

func TestLoad(t *testing.T) {
	f := &fakeFetcher{files: publishedFiles}
	l := NewLoader(f, cache.NewFileCache(t.TempDir()), Options{})

	results, reports, err := l.Load(context.Background(), election.DefaultElections)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := results.Years(); len(got) != 3 || got[0] != 2022 || got[2] != 2016 {
		t.Errorf("years = %v", got)
	}
	if len(reports) != 3 {
		t.Errorf("reports = %d, want 3", len(reports))
	}
	if f.callCount() != 9 {
		t.Errorf("fetches = %d, want 9", f.callCount())
	}
}

func TestLoad_StopsOnError(t *testing.T) {
	f := &fakeFetcher{err: errors.New("connection refused")}
	l := NewLoader(f, nil, Options{})

	results, reports, err := l.Load(context.Background(), election.DefaultElections)
	if err == nil {
		t.Fatal("expected error")
	}
	if len(results) != 0 || len(reports) != 0 {
		t.Errorf("partial results = %v, reports = %v", results, reports)
	}
}

func TestLoad_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	l := NewLoader(&fakeFetcher{files: publishedFiles}, nil, Options{})
	if _, _, err := l.Load(ctx, election.DefaultElections); !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}

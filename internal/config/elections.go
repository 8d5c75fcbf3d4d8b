package config

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/JonMunkholm/elc/internal/election"
)

// electionsFile is the layout of ELECTIONS_FILE:
//
//	elections:
//	  - year: 2022
//	    code: 27966
//	  - year: 2019
//	    code: 24310
type electionsFile struct {
	Elections []election.Election `yaml:"elections"`
}

// LoadElections returns the elections to ingest, newest first. An empty path
// returns the built-in table.
func LoadElections(path string) ([]election.Election, error) {
	if path == "" {
		out := append([]election.Election(nil), election.DefaultElections...)
		sortElections(out)
		return out, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read elections file: %w", err)
	}

	var f electionsFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse elections file %s: %w", path, err)
	}

	if err := validateElections(f.Elections); err != nil {
		return nil, fmt.Errorf("elections file %s: %w", path, err)
	}

	sortElections(f.Elections)
	return f.Elections, nil
}

// FilterElections keeps only the given years. An empty filter keeps all.
// Unknown years are an error.
func FilterElections(all []election.Election, years []int) ([]election.Election, error) {
	if len(years) == 0 {
		return all, nil
	}

	byYear := make(map[int]election.Election, len(all))
	for _, e := range all {
		byYear[e.Year] = e
	}

	out := make([]election.Election, 0, len(years))
	for _, y := range years {
		e, ok := byYear[y]
		if !ok {
			return nil, fmt.Errorf("election not found: %d", y)
		}
		out = append(out, e)
	}
	sortElections(out)
	return out, nil
}

func validateElections(list []election.Election) error {
	var errs []string
	if len(list) == 0 {
		errs = append(errs, "no elections listed")
	}

	seen := make(map[int]bool, len(list))
	for i, e := range list {
		if e.Year <= 0 {
			errs = append(errs, fmt.Sprintf("entry %d: year must be positive", i))
		}
		if e.Code <= 0 {
			errs = append(errs, fmt.Sprintf("entry %d: code must be positive", i))
		}
		if seen[e.Year] {
			errs = append(errs, fmt.Sprintf("entry %d: duplicate year %d", i, e.Year))
		}
		seen[e.Year] = true
	}

	if len(errs) > 0 {
		return fmt.Errorf("validation failed:\n  - %s", strings.Join(errs, "\n  - "))
	}
	return nil
}

func sortElections(list []election.Election) {
	sort.Slice(list, func(i, j int) bool { return list[i].Year > list[j].Year })
}

package core

import "strings"

// MissingColumns returns the names in columns that idx does not contain, in
// the order given. Lookups are exact: the files name their columns
// consistently and a near miss is a layout change worth reporting.
func MissingColumns(idx HeaderIndex, columns []string) []string {
	var missing []string
	for _, c := range columns {
		if _, ok := idx[c]; !ok {
			missing = append(missing, c)
		}
	}
	return missing
}

// HeaderProblem describes the columns a kind expects but a file lacks. It is
// reported, not returned: each group then fails on its own with a
// MissingFieldError.
type HeaderProblem struct {
	Missing []string
}

func (p HeaderProblem) Error() string {
	return "missing required column(s): " + strings.Join(p.Missing, ", ")
}

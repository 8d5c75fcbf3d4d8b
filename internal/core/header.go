package core

import "strings"

// SplitLines splits text on '\n', dropping a trailing '\r' from each line.
// A final empty line after the last newline is not returned.
func SplitLines(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.Split(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}

// ResolveHeader picks the header line and returns its columns and the index
// of the first data line.
//
// A first line without a comma is a title and the header candidate moves to
// the second line. The candidate is then compared by length with the line
// after it and the longer one wins; a tie keeps the candidate. Data starts on
// the line after whichever line won, so a losing candidate is discarded.
//
// Short files give an empty or partial header rather than an error; lookups
// against it simply fail.
func ResolveHeader(lines []string) (columns []string, dataStart int) {
	line := func(i int) string {
		if i < len(lines) {
			return lines[i]
		}
		return ""
	}

	candidate := 0
	if !strings.Contains(line(0), ",") {
		candidate = 1
	}

	chosen := candidate
	if len(line(candidate+1)) > len(line(candidate)) {
		chosen = candidate + 1
	}

	return SplitLine(line(chosen)), min(chosen+1, len(lines))
}

// MakeHeaderIndex builds a column-name-to-position index.
// When a name repeats, the last position wins.
func MakeHeaderIndex(columns []string) HeaderIndex {
	idx := make(HeaderIndex, len(columns))
	for i, name := range columns {
		idx[name] = i
	}
	return idx
}

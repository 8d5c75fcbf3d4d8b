package core

// HeaderIndex maps a column name to its position in a row.
// Built once per file and never modified afterwards.
type HeaderIndex map[string]int

// Row is one tokenized data line, indexed against the file's header.
type Row struct {
	Line  int      // 1-based line number in the source file
	Cells []string // trimmed cells as produced by SplitLine
	index HeaderIndex
}

// Group is a run of consecutive rows that together form one record.
type Group struct {
	Index int // 0-based position of the group in the file
	Rows  []Row
}

// First returns the first row of the group.
func (g Group) First() Row { return g.Rows[0] }

// Last returns the last row of the group.
func (g Group) Last() Row { return g.Rows[len(g.Rows)-1] }

// Line returns the source line of the group's first row, or 0 for an empty group.
func (g Group) Line() int {
	if len(g.Rows) == 0 {
		return 0
	}
	return g.Rows[0].Line
}

// KindInfo describes one record kind.
type KindInfo struct {
	Key       string   `json:"key"`        // Unique identifier: "first_preferences"
	Label     string   `json:"label"`      // Display name used in logs: "First Preference"
	FileName  string   `json:"file_name"`  // Published file name without the election code suffix
	GroupSize int      `json:"group_size"` // Raw rows per record
	Columns   []string `json:"columns"`    // Columns the decoder reads
}

// FailedGroup records one dropped group.
type FailedGroup struct {
	Group  int    `json:"group"`
	Line   int    `json:"line"`
	Reason string `json:"reason"`
	Code   string `json:"code"` // MapError code for Reason
}

// Report summarises one Process call.
type Report struct {
	Kind     string        `json:"kind"`
	Rows     int           `json:"rows"`
	Groups   int           `json:"groups"`
	Decoded  int           `json:"decoded"`
	Dropped  int           `json:"dropped"`
	Failures []FailedGroup `json:"failures,omitempty"`

	// MissingColumns lists expected columns absent from the header.
	MissingColumns []string `json:"missing_columns,omitempty"`

	// Errors holds a *DecodeError per failure, in group order.
	Errors []error `json:"-"`
}

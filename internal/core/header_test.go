package core

import (
	"reflect"
	"strings"
	"testing"
)

func TestSplitLines(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"empty", "", nil},
		{"no trailing newline", "a\nb", []string{"a", "b"}},
		{"trailing newline", "a\nb\n", []string{"a", "b"}},
		{"crlf", "a\r\nb\r\n", []string{"a", "b"}},
		{"blank line kept", "a\n\nb", []string{"a", "", "b"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SplitLines(tt.in); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SplitLines(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestResolveHeader(t *testing.T) {
	header := "DivisionNm,PartyAb,OrdinaryVotes"

	tests := []struct {
		name      string
		lines     []string
		wantCols  []string
		wantStart int
	}{
		{
			name:      "title skipped, header longer than data",
			lines:     []string{"Results Summary", header, "Bean,ALP,1", "Bean,LP,2"},
			wantCols:  []string{"DivisionNm", "PartyAb", "OrdinaryVotes"},
			wantStart: 2,
		},
		{
			name:      "title skipped, next line longer wins",
			lines:     []string{"Results Summary", "A,B", "Longer,Header,Line", "x,y,z"},
			wantCols:  []string{"Longer", "Header", "Line"},
			wantStart: 3,
		},
		{
			name:      "no title, header on line one",
			lines:     []string{header, "Bean,ALP,1"},
			wantCols:  []string{"DivisionNm", "PartyAb", "OrdinaryVotes"},
			wantStart: 1,
		},
		{
			name:      "equal length keeps candidate",
			lines:     []string{"Title", "a,b", "c,d"},
			wantCols:  []string{"a", "b"},
			wantStart: 2,
		},
		{
			name:      "title only",
			lines:     []string{"Title"},
			wantCols:  nil,
			wantStart: 1,
		},
		{
			name:      "title and header only",
			lines:     []string{"Title", header},
			wantCols:  []string{"DivisionNm", "PartyAb", "OrdinaryVotes"},
			wantStart: 2,
		},
		{
			name:      "empty file",
			lines:     nil,
			wantCols:  nil,
			wantStart: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cols, start := ResolveHeader(tt.lines)
			if !reflect.DeepEqual(cols, tt.wantCols) {
				t.Errorf("columns = %q, want %q", cols, tt.wantCols)
			}
			if start != tt.wantStart {
				t.Errorf("dataStart = %d, want %d", start, tt.wantStart)
			}
		})
	}
}

func TestResolveHeader_LengthBranches(t *testing.T) {
	title := "Results Summary"
	data := strings.Repeat("x", 10) + ",1"

	t.Run("line 2 longer than line 3", func(t *testing.T) {
		line2 := strings.Repeat("h", 20) + ",k"
		cols, _ := ResolveHeader([]string{title, line2, data})
		if len(cols) != 2 || cols[0] != strings.Repeat("h", 20) {
			t.Errorf("columns = %q, want line 2", cols)
		}
	})

	t.Run("line 3 longer than line 2", func(t *testing.T) {
		line2 := "h,k"
		cols, _ := ResolveHeader([]string{title, line2, data})
		if len(cols) != 2 || cols[0] != strings.Repeat("x", 10) {
			t.Errorf("columns = %q, want line 3", cols)
		}
	})
}

func TestMakeHeaderIndex(t *testing.T) {
	idx := MakeHeaderIndex([]string{"A", "B", "A"})
	if idx["A"] != 2 {
		t.Errorf(`idx["A"] = %d, want 2 (last wins)`, idx["A"])
	}
	if idx["B"] != 1 {
		t.Errorf(`idx["B"] = %d, want 1`, idx["B"])
	}
	if _, ok := idx["a"]; ok {
		t.Error("lookups should be case-sensitive")
	}
}

func TestMissingColumns(t *testing.T) {
	idx := MakeHeaderIndex([]string{"DivisionNm", "PartyAb", "OrdinaryVotes"})

	tests := []struct {
		name    string
		columns []string
		want    []string
	}{
		{"all present", []string{"PartyAb", "DivisionNm"}, nil},
		{"one missing", []string{"PartyAb", "Swing"}, []string{"Swing"}},
		{"case sensitive", []string{"partyab"}, []string{"partyab"}},
		{"none expected", nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MissingColumns(idx, tt.columns); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("MissingColumns() = %v, want %v", got, tt.want)
			}
		})
	}

	p := HeaderProblem{Missing: []string{"Swing", "BallotPosition"}}
	if MapError(p).Code != "VAL004" {
		t.Errorf("HeaderProblem maps to %s, want VAL004", MapError(p).Code)
	}
}

package core

import (
	"reflect"
	"testing"
)

func TestSplitLine(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"quoted comma", `Alpha, "Beta, Gamma",12`, []string{"Alpha", "Beta, Gamma", "12"}},
		{"trailing separator dropped", "A,B,", []string{"A", "B"}},
		{"trailing whitespace field kept", "A,B, ", []string{"A", "B", ""}},
		{"inner empty field kept", "A,,B", []string{"A", "", "B"}},
		{"leading empty field kept", ",A", []string{"", "A"}},
		{"fields trimmed", "  a ,\tb  ", []string{"a", "b"}},
		{"quotes removed", `"ALP","Australian Labor Party"`, []string{"ALP", "Australian Labor Party"}},
		{"doubled quote is not an escape", `"say ""hi"""`, []string{"say hi"}},
		{"unterminated quote swallows commas", `a,"b,c`, []string{"a", "b,c"}},
		{"empty line", "", nil},
		{"single comma", ",", []string{""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitLine(tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SplitLine(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

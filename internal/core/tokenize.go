package core

import "strings"

// SplitLine splits one line into trimmed fields.
//
// A double quote toggles quoting and is never copied; a comma separates
// fields only outside quotes. Doubled quotes are not an escape. The final
// field is emitted only when something (even whitespace) follows the last
// comma, so "A,B," yields ["A" "B"] while "A,B, " yields ["A" "B" ""].
func SplitLine(line string) []string {
	var (
		fields  []string
		current strings.Builder
		quoted  bool
	)

	for _, c := range line {
		switch {
		case c == '"':
			quoted = !quoted
		case c == ',' && !quoted:
			fields = append(fields, strings.TrimSpace(current.String()))
			current.Reset()
		default:
			current.WriteRune(c)
		}
	}

	if current.Len() > 0 {
		fields = append(fields, strings.TrimSpace(current.String()))
	}
	return fields
}

package forma

import "strings"

// matchStrings builds the "could be: ..." suggestion fragment appended to
// unknown attribute/bool/array/function diagnostics. Candidates are
// listed in whatever order they're handed in — this is the live, unranked
// fallback; a ranked (edit-distance) version is a future enhancement, not
// a contract (spec's suggestion ranking is explicitly left open).
func matchStrings(candidates []string) string {
	var b strings.Builder
	b.WriteString("could be: ")
	for i, c := range candidates {
		if i > 0 {
			b.WriteString(" ")
		}
		b.WriteString(c)
	}
	return b.String()
}

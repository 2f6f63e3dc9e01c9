package forma

import "strings"

// DefaultSpaceChars is the default set of characters considered whitespace
// by TrimStart, TrimEnd, and Trim.
const DefaultSpaceChars = " \t\r\n"

// TrimStart removes leading characters found in cutset (defaulting to
// DefaultSpaceChars) from s.
func TrimStart(s string, cutset ...string) string {
	return strings.TrimLeft(s, spaceArg(cutset))
}

// TrimEnd removes trailing characters found in cutset (defaulting to
// DefaultSpaceChars) from s.
func TrimEnd(s string, cutset ...string) string {
	return strings.TrimRight(s, spaceArg(cutset))
}

// Trim removes both leading and trailing characters found in cutset
// (defaulting to DefaultSpaceChars) from s.
func Trim(s string, cutset ...string) string {
	return strings.Trim(s, spaceArg(cutset))
}

func spaceArg(cutset []string) string {
	if len(cutset) > 0 {
		return cutset[0]
	}
	return DefaultSpaceChars
}

// Capitalize lowercases the whole string, then upper-cases the first letter
// of every whitespace-delimited word.
func Capitalize(s string) string {
	lower := strings.ToLower(s)
	var b strings.Builder
	b.Grow(len(lower))
	capNext := true
	for _, r := range lower {
		if capNext && r >= 'a' && r <= 'z' {
			r = r - 'a' + 'A'
			capNext = false
		}
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			capNext = true
		}
		b.WriteRune(r)
	}
	return b.String()
}

// ToLower lower-cases every character of s.
func ToLower(s string) string {
	return strings.ToLower(s)
}

// ToUpper upper-cases every character of s.
func ToUpper(s string) string {
	return strings.ToUpper(s)
}

// ToTitleCase is an alias for Capitalize: the engine's "title" transform is
// defined identically to "capitalize" (spec: title == capitalize).
func ToTitleCase(s string) string {
	return Capitalize(s)
}

// PadLeft left-pads s with c until it is at least count bytes long.
func PadLeft(s string, count int, c byte) string {
	if len(s) >= count {
		return s
	}
	return strings.Repeat(string(c), count-len(s)) + s
}

// Replace replaces every non-overlapping literal occurrence of lhs with rhs
// in arg.
func Replace(arg, lhs, rhs string) string {
	return strings.ReplaceAll(arg, lhs, rhs)
}

// Substring returns the substring of arg starting at the byte offset start
// with the given byte length. Offsets are clamped into range rather than
// panicking: out-of-range values are implementation-defined per spec, and
// this engine chooses to clamp rather than error.
func Substring(arg string, start, length int) string {
	if start < 0 {
		start = 0
	}
	if start > len(arg) {
		start = len(arg)
	}
	end := start + length
	if length < 0 || end > len(arg) {
		end = len(arg)
	}
	if end < start {
		end = start
	}
	return arg[start:end]
}

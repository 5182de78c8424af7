package token

import "strings"

// blank is the set of bytes treated as token separators. Newlines never
// reach the splitter; the line reader strips them.
const blank = " \t"

// Trim removes leading and trailing spaces and tabs.
func Trim(s string) string {
	return strings.Trim(s, blank)
}

// Fields splits line on runs of spaces and tabs with no quote handling.
func Fields(line string) []string {
	return strings.FieldsFunc(line, func(r rune) bool {
		return r == ' ' || r == '\t'
	})
}

// Strip returns s without any byte contained in drop.
func Strip(s, drop string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if !strings.ContainsRune(drop, rune(s[i])) {
			b.WriteByte(s[i])
		}
	}
	return b.String()
}

// Rest returns line with its first n whitespace-separated fields removed,
// keeping the remainder's internal spacing intact.
func Rest(line string, n int) string {
	for ; n > 0; n-- {
		line = strings.TrimLeft(line, blank)
		if i := strings.IndexAny(line, blank); i >= 0 {
			line = line[i:]
		} else {
			return ""
		}
	}
	return strings.TrimLeft(line, blank)
}

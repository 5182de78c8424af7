// Package token splits raw shell input into normalized tokens.
//
// Input is first broken on runs of spaces and tabs with no quote awareness,
// then fragments that belong to a single double-quoted literal are stitched
// back together with single spaces, delimiting quotes are stripped, and \"
// sequences become plain quotes. Single quotes have no special meaning.
package token

// Split returns the normalized tokens of line. A double-quoted literal
// becomes exactly one token no matter how many whitespace-separated
// fragments it spans. Fragments of a literal still open when the line runs
// out are discarded.
func Split(line string) []string {
	tokens, _ := normalize(Fields(line))
	return tokens
}

// Unclosed reports whether line ends inside an open double-quoted literal,
// meaning Split discarded its fragments.
func Unclosed(line string) bool {
	_, open := normalize(Fields(line))
	return open
}

// HasQuote reports whether s contains an unescaped double quote. A quote is
// escaped when the byte before it is a backslash; the first byte is never
// escaped.
func HasQuote(s string) bool {
	return quoteIndex(s) >= 0
}

// quoteIndex returns the index of the first unescaped double quote in s, or
// -1 when there is none.
func quoteIndex(s string) int {
	for i := 0; i < len(s); i++ {
		if s[i] == '"' && (i == 0 || s[i-1] != '\\') {
			return i
		}
	}
	return -1
}

// normalize merges whitespace-split fragments back into whole tokens and
// unquotes each one as it is emitted.
//
// The quote counter opens a literal at one and closes it at exactly two. A
// fragment whose first unescaped quote is followed by another unescaped
// quote counts twice, so a self-contained literal like "foo" closes without
// consuming the next fragment. Counts beyond two never close; from there
// only fragments without quotes can be emitted again, once the count turns
// even.
func normalize(fields []string) (tokens []string, open bool) {
	quotes := 0
	var arg string
	for _, f := range fields {
		if HasQuote(f) {
			if quotes == 0 {
				arg = ""
			}
			quotes++
			arg += " " + f
			if q := quoteIndex(f); len(f) > 1 && q != len(f)-1 && HasQuote(f[q+1:]) {
				quotes++
			}
			if quotes != 2 {
				continue
			}
			quotes = 0
		} else if quotes%2 == 0 {
			arg = f
		} else {
			arg += " " + f
			continue
		}
		tokens = append(tokens, unquote(Trim(arg)))
	}
	return tokens, quotes%2 == 1
}

// unquote drops unescaped quote characters, keeps quotes escaped with a
// backslash, and then removes every remaining backslash.
func unquote(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '"' {
			if i > 0 && s[i-1] == '\\' {
				out = append(out, s[i])
			}
			continue
		}
		out = append(out, s[i])
	}
	return Strip(string(out), `\`)
}

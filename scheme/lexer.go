// lexer.go: source text -> flat token sequence.
//
// The grammar is small enough that a token is just a string. Three classes
// exist: "(", ")", and atom text. Comments run from ';' to the end of the
// line. Parenthesis balance is NOT checked here; that is the parser's job,
// so Tokenize never fails.
package scheme

import "strings"

// Tokenize splits source text into tokens: left parens, right parens, and
// whitespace-separated atoms. Characters after ';' up to the next newline
// are discarded. The result contains no empty tokens.
func Tokenize(src string) []string {
	var b strings.Builder
	b.Grow(len(src) + 16)

	comment := false
	for i := 0; i < len(src); i++ {
		ch := src[i]
		if comment {
			if ch == '\n' {
				comment = false
				b.WriteByte('\n')
			}
			continue
		}
		switch ch {
		case ';':
			comment = true
		case '(':
			b.WriteString(" ( ")
		case ')':
			b.WriteString(" ) ")
		default:
			b.WriteByte(ch)
		}
	}

	// Fields splits on any whitespace (spaces, tabs, newlines) and drops
	// empty entries, so padded parens come out as single-character tokens.
	return strings.Fields(b.String())
}

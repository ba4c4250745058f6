// parser.go: token sequence -> expression tree.
//
// Expressions are S-expressions represented directly in Go:
//
//	int64   — integer literal
//	float64 — floating-point literal
//	string  — symbol
//	S       — compound ([]any of sub-expressions; empty S is the
//	          empty-list literal)
//
// The parser consumes the full result of tokenizing one logical program
// unit: exactly one atom, or exactly one balanced parenthesized group
// spanning the whole input. Anything else is a *SyntaxError. Trees are
// built once and never mutated afterwards.
package scheme

import "strconv"

// S is a compound expression: an ordered sequence of sub-expressions.
type S = []any

// Parse turns a token sequence into a single expression tree. It fails
// with *SyntaxError when the input is not exactly one atom or one balanced
// group, when parentheses do not balance, or when tokens remain after the
// first complete expression.
func Parse(tokens []string) (any, error) {
	if len(tokens) == 0 {
		return nil, &SyntaxError{Msg: "empty input", Incomplete: true}
	}
	if len(tokens) != 1 && (tokens[0] != "(" || tokens[len(tokens)-1] != ")") {
		return nil, syntaxErrf("expected a single expression")
	}

	expr, rest, err := parseExpr(tokens)
	if err != nil {
		return nil, err
	}
	if len(rest) != 0 {
		return nil, syntaxErrf("unexpected trailing tokens after expression")
	}
	return expr, nil
}

// ParseProgram splits a token sequence into consecutive top-level
// expressions and parses each. File loaders and REPLs use it to evaluate
// multi-form sources; Parse itself accepts exactly one form.
func ParseProgram(tokens []string) ([]any, error) {
	var exprs []any
	for len(tokens) > 0 {
		expr, rest, err := parseExpr(tokens)
		if err != nil {
			return nil, err
		}
		exprs = append(exprs, expr)
		tokens = rest
	}
	return exprs, nil
}

// parseExpr parses one expression from the front of tokens and returns the
// unconsumed remainder. Recursion depth equals source nesting depth.
func parseExpr(tokens []string) (any, []string, error) {
	head := tokens[0]
	switch head {
	case ")":
		return nil, nil, syntaxErrf("unexpected )")
	case "(":
		expr := S{}
		rest := tokens[1:]
		for {
			if len(rest) == 0 {
				return nil, nil, &SyntaxError{Msg: "missing )", Incomplete: true}
			}
			if rest[0] == ")" {
				return expr, rest[1:], nil
			}
			sub, r, err := parseExpr(rest)
			if err != nil {
				return nil, nil, err
			}
			expr = append(expr, sub)
			rest = r
		}
	default:
		return atom(head), tokens[1:], nil
	}
}

// atom converts token text to int64, then float64, else leaves it a symbol.
func atom(tok string) any {
	if n, err := strconv.ParseInt(tok, 10, 64); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(tok, 64); err == nil {
		return f
	}
	return tok
}

// errors.go: the interpreter's error taxonomy.
//
// Three kinds cover every failure the core can produce:
//
//   - *SyntaxError     — malformed token stream (unbalanced parentheses,
//     multiple top-level forms, trailing tokens) or an invalid name in a
//     binding position (define / lambda parameters).
//   - *NameError       — lookup, set!, or del of a name that is not bound
//     anywhere in the frame chain (or, for del, not in the exact frame).
//   - *EvaluationError — everything else: wrong arity, wrong operand type,
//     applying a non-procedure, malformed special-form shape, improper-list
//     operand to a list-only builtin.
//
// No kind recovers automatically. The first failure aborts the enclosing
// Evaluate/Parse call and propagates to the caller as a Go error; frame
// mutations performed before the failing sub-expression are kept.
package scheme

import "fmt"

// SyntaxError reports malformed source or an invalid binding name.
type SyntaxError struct {
	Msg string

	// Incomplete is set when the token stream ended before every open
	// parenthesis was closed. REPLs use it to prompt for continuation
	// lines instead of reporting the error.
	Incomplete bool
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error: %s", e.Msg)
}

// NameError reports an unbound name.
type NameError struct {
	Name string
}

func (e *NameError) Error() string {
	return fmt.Sprintf("name error: %s is not bound", e.Name)
}

// EvaluationError reports a runtime failure other than an unbound name.
type EvaluationError struct {
	Msg string
}

func (e *EvaluationError) Error() string {
	return fmt.Sprintf("evaluation error: %s", e.Msg)
}

func syntaxErrf(format string, args ...any) *SyntaxError {
	return &SyntaxError{Msg: fmt.Sprintf(format, args...)}
}

func evalErrf(format string, args ...any) *EvaluationError {
	return &EvaluationError{Msg: fmt.Sprintf(format, args...)}
}

// IsIncomplete reports whether err is a SyntaxError caused by input that
// ran out before its parentheses balanced. Interactive front ends keep
// reading lines while this holds.
func IsIncomplete(err error) bool {
	se, ok := err.(*SyntaxError)
	return ok && se.Incomplete
}

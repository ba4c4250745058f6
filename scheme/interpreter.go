// interpreter.go: the tree-walking evaluator.
//
// Evaluate is the sole execution entry point. Dispatch order for a
// compound expression: the reserved special forms are checked against the
// textual head BEFORE anything is evaluated, so each form controls which
// of its operands run and in which frame; only when the head is not a
// reserved keyword does the evaluator fall through to ordinary
// application (evaluate the head, evaluate every argument left to right
// in the current frame, invoke). User code can shadow a builtin but can
// never rebind a special form's meaning in head position.
//
// Evaluation is purely recursive and single-threaded. There is no
// tail-call elimination: deeply recursive programs consume host stack in
// proportion to call depth, which is the documented ceiling.
package scheme

import "os"

// Reserved special-form keywords, checked before general evaluation.
// Populated in init to break the initialization cycle between this map
// and the form handlers that recurse through Evaluate.
var specialForms map[string]func(args []any, frame *Frame) (Value, error)

func init() {
	specialForms = map[string]func(args []any, frame *Frame) (Value, error){
		"define": evalDefine,
		"lambda": evalLambda,
		"if":     evalIf,
		"and":    evalAnd,
		"or":     evalOr,
		"let":    evalLet,
		"set!":   evalSet,
		"begin":  evalBegin,
		"del":    evalDel,
		"list":   evalList,
		"cons":   evalCons,
	}
}

// Evaluate computes the value of a parsed expression against a frame.
//
//   - Numbers are self-evaluating.
//   - A symbol resolves through the frame chain (*NameError if unbound).
//   - An empty compound is the empty-list literal.
//   - A compound headed by a reserved keyword dispatches to that form.
//   - Any other compound is a procedure application.
//
// The same unmodified expression evaluates to the same value every time;
// the evaluator itself keeps no state between calls.
func Evaluate(expr any, frame *Frame) (Value, error) {
	switch x := expr.(type) {
	case int64:
		return Int(x), nil
	case float64:
		return Num(x), nil
	case string:
		return frame.Get(x)
	case S:
		if len(x) == 0 {
			return Empty, nil
		}
		if head, ok := x[0].(string); ok {
			if form, ok := specialForms[head]; ok {
				return form(x[1:], frame)
			}
		}
		return evalApply(x, frame)
	default:
		return Value{}, evalErrf("cannot evaluate expression of this shape")
	}
}

// evalApply handles ordinary application: head first, then every argument
// in order, all in the current frame.
func evalApply(x S, frame *Frame) (Value, error) {
	proc, err := Evaluate(x[0], frame)
	if err != nil {
		return Value{}, err
	}
	if !isCallable(proc) {
		return Value{}, evalErrf("attempt to call a non-procedure")
	}
	args := make([]Value, 0, len(x)-1)
	for _, operand := range x[1:] {
		v, err := Evaluate(operand, frame)
		if err != nil {
			return Value{}, err
		}
		args = append(args, v)
	}
	return Apply(proc, args)
}

// Apply invokes a procedure value on already-evaluated arguments.
// Builtins run natively; closures get a fresh frame parented on their
// defining frame with parameters bound positionally (exact arity). Each
// call allocates its own frame, so recursive and re-entrant invocation
// works without any shared call state.
func Apply(proc Value, args []Value) (Value, error) {
	switch proc.Tag {
	case VTBuiltin:
		return proc.Data.(*Builtin).Fn(args)
	case VTFun:
		f := proc.Data.(*Fun)
		if len(args) != len(f.Params) {
			return Value{}, evalErrf("procedure expects %d arguments, got %d", len(f.Params), len(args))
		}
		call := NewFrame(f.Env)
		for i, p := range f.Params {
			if err := call.Define(p, args[i]); err != nil {
				return Value{}, err
			}
		}
		return Evaluate(f.Body, call)
	default:
		return Value{}, evalErrf("attempt to call a non-procedure")
	}
}

// ---- special forms --------------------------------------------------------

// (define name expr) binds name in the current frame to the value of expr.
// (define (name params...) body) is sugar for (define name (lambda ...)).
// Both return the newly bound value.
func evalDefine(args []any, frame *Frame) (Value, error) {
	if len(args) != 2 {
		return Value{}, evalErrf("define expects a name and one expression")
	}
	if sig, ok := args[0].(S); ok {
		if len(sig) == 0 {
			return Value{}, evalErrf("define expects a non-empty (name params...) signature")
		}
		name, ok := sig[0].(string)
		if !ok {
			return Value{}, syntaxErrf("procedure name must be a symbol")
		}
		fn, err := evalLambda([]any{S(sig[1:]), args[1]}, frame)
		if err != nil {
			return Value{}, err
		}
		if err := frame.Define(name, fn); err != nil {
			return Value{}, err
		}
		return fn, nil
	}
	name, ok := args[0].(string)
	if !ok {
		return Value{}, syntaxErrf("variable name must be a symbol")
	}
	v, err := Evaluate(args[1], frame)
	if err != nil {
		return Value{}, err
	}
	if err := frame.Define(name, v); err != nil {
		return Value{}, err
	}
	return v, nil
}

// (lambda (params...) body) captures the parameter names, the unevaluated
// body, and the current frame by reference. The body does not run here.
func evalLambda(args []any, frame *Frame) (Value, error) {
	if len(args) != 2 {
		return Value{}, evalErrf("lambda expects a parameter list and one body expression")
	}
	plist, ok := args[0].(S)
	if !ok {
		return Value{}, evalErrf("lambda parameters must be a list")
	}
	params := make([]string, len(plist))
	for i, p := range plist {
		name, ok := p.(string)
		if !ok {
			return Value{}, syntaxErrf("lambda parameter must be a symbol")
		}
		if err := checkName(name); err != nil {
			return Value{}, err
		}
		params[i] = name
	}
	return FunVal(&Fun{Params: params, Body: args[1], Env: frame}), nil
}

// (if cond consequent alternative) evaluates exactly one branch.
func evalIf(args []any, frame *Frame) (Value, error) {
	if len(args) != 3 {
		return Value{}, evalErrf("if expects a condition and two branches")
	}
	cond, err := Evaluate(args[0], frame)
	if err != nil {
		return Value{}, err
	}
	if isTruthy(cond) {
		return Evaluate(args[1], frame)
	}
	return Evaluate(args[2], frame)
}

// (and e...) stops at the first falsy operand; later operands never run.
func evalAnd(args []any, frame *Frame) (Value, error) {
	for _, a := range args {
		v, err := Evaluate(a, frame)
		if err != nil {
			return Value{}, err
		}
		if !isTruthy(v) {
			return Bool(false), nil
		}
	}
	return Bool(true), nil
}

// (or e...) stops at the first truthy operand.
func evalOr(args []any, frame *Frame) (Value, error) {
	for _, a := range args {
		v, err := Evaluate(a, frame)
		if err != nil {
			return Value{}, err
		}
		if isTruthy(v) {
			return Bool(true), nil
		}
	}
	return Bool(false), nil
}

// (let ((name expr)...) body) evaluates every binding expression in the
// CURRENT frame — bindings do not see each other — then runs body in one
// new child frame holding all of them.
func evalLet(args []any, frame *Frame) (Value, error) {
	if len(args) != 2 {
		return Value{}, evalErrf("let expects a binding list and one body expression")
	}
	bindings, ok := args[0].(S)
	if !ok {
		return Value{}, evalErrf("let bindings must be a list of (name expr) pairs")
	}
	child := NewFrame(frame)
	for _, b := range bindings {
		pair, ok := b.(S)
		if !ok || len(pair) != 2 {
			return Value{}, evalErrf("let bindings must be a list of (name expr) pairs")
		}
		name, ok := pair[0].(string)
		if !ok {
			return Value{}, evalErrf("let binding name must be a symbol")
		}
		v, err := Evaluate(pair[1], frame)
		if err != nil {
			return Value{}, err
		}
		if err := child.Define(name, v); err != nil {
			return Value{}, err
		}
	}
	return Evaluate(args[1], child)
}

// (set! name expr) overwrites the nearest enclosing binding of name and
// returns the new value. It never creates a binding.
func evalSet(args []any, frame *Frame) (Value, error) {
	if len(args) != 2 {
		return Value{}, evalErrf("set! expects a name and one expression")
	}
	name, ok := args[0].(string)
	if !ok {
		return Value{}, evalErrf("set! target must be a symbol")
	}
	v, err := Evaluate(args[1], frame)
	if err != nil {
		return Value{}, err
	}
	if err := frame.Set(name, v); err != nil {
		return Value{}, err
	}
	return v, nil
}

// (begin e...) evaluates operands in order and returns the last value.
func evalBegin(args []any, frame *Frame) (Value, error) {
	if len(args) == 0 {
		return Value{}, evalErrf("begin expects at least one expression")
	}
	var out Value
	for _, a := range args {
		v, err := Evaluate(a, frame)
		if err != nil {
			return Value{}, err
		}
		out = v
	}
	return out, nil
}

// (del name) removes a binding from the current frame only and returns the
// value it had. Ancestor frames are never searched.
func evalDel(args []any, frame *Frame) (Value, error) {
	if len(args) != 1 {
		return Value{}, evalErrf("del expects exactly one name")
	}
	name, ok := args[0].(string)
	if !ok {
		return Value{}, evalErrf("del target must be a symbol")
	}
	return frame.Delete(name)
}

// (list e...) evaluates operands left to right and builds a fresh proper
// list of the results.
func evalList(args []any, frame *Frame) (Value, error) {
	xs := make([]Value, 0, len(args))
	for _, a := range args {
		v, err := Evaluate(a, frame)
		if err != nil {
			return Value{}, err
		}
		xs = append(xs, v)
	}
	return listFromSlice(xs), nil
}

// (cons a d) evaluates both operands and returns a new pair. An empty
// compound in tail position evaluates to the empty list, so list tails
// can be written directly as (cons 1 ()).
func evalCons(args []any, frame *Frame) (Value, error) {
	if len(args) != 2 {
		return Value{}, evalErrf("cons expects exactly two arguments")
	}
	car, err := Evaluate(args[0], frame)
	if err != nil {
		return Value{}, err
	}
	cdr, err := Evaluate(args[1], frame)
	if err != nil {
		return Value{}, err
	}
	return Cons(car, cdr), nil
}

// ---- convenience entry points ---------------------------------------------

// EvalSource tokenizes, parses, and evaluates source against frame. The
// source may hold several top-level forms; they run in order and the last
// value is returned, so sequential definitions accumulate in frame the way
// a file loader or REPL expects.
func EvalSource(src string, frame *Frame) (Value, error) {
	exprs, err := ParseProgram(Tokenize(src))
	if err != nil {
		return Value{}, err
	}
	if len(exprs) == 0 {
		return Value{}, &SyntaxError{Msg: "empty input", Incomplete: true}
	}
	var out Value
	for _, e := range exprs {
		v, err := Evaluate(e, frame)
		if err != nil {
			return Value{}, err
		}
		out = v
	}
	return out, nil
}

// EvalFile reads a file and evaluates its contents against frame.
func EvalFile(path string, frame *Frame) (Value, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return Value{}, err
	}
	return EvalSource(string(src), frame)
}

// builtin.go: the primitive procedure library.
//
// Builtins operate only on already-evaluated argument values; raw
// expressions never reach them. The table assembled by newBuiltinFrame is
// the contents of the root frame every global frame is parented on, and
// its exact set of names is part of the interpreter's compatibility
// surface:
//
//	+ - * /  equal? > >= < <=  not
//	car cdr cons list? length list-ref append
//	#t #f ()
package scheme

// newBuiltinFrame builds the root frame holding every primitive binding.
// Names that the tokenizer could never produce as a define target ("()" in
// particular) are installed directly, bypassing the binding-name check.
func newBuiltinFrame() *Frame {
	vars := map[string]Value{
		"+":        builtinVal("+", builtinAdd),
		"-":        builtinVal("-", builtinSub),
		"*":        builtinVal("*", builtinMul),
		"/":        builtinVal("/", builtinDiv),
		"equal?":   builtinVal("equal?", builtinEqual),
		">":        chainedCompare(">", func(a, b float64) bool { return a > b }),
		">=":       chainedCompare(">=", func(a, b float64) bool { return a >= b }),
		"<":        chainedCompare("<", func(a, b float64) bool { return a < b }),
		"<=":       chainedCompare("<=", func(a, b float64) bool { return a <= b }),
		"not":      builtinVal("not", builtinNot),
		"car":      builtinVal("car", builtinCar),
		"cdr":      builtinVal("cdr", builtinCdr),
		"cons":     builtinVal("cons", builtinCons),
		"list?":    builtinVal("list?", builtinIsList),
		"length":   builtinVal("length", builtinLength),
		"list-ref": builtinVal("list-ref", builtinListRef),
		"append":   builtinVal("append", builtinAppend),
		"#t":       Bool(true),
		"#f":       Bool(false),
		"()":       Empty,
	}
	return &Frame{vars: vars}
}

// ---- arithmetic -------------------------------------------------------

// numericArgs widens every argument to float64 and reports whether they
// were all integers, so integer-only arithmetic can stay integral.
func numericArgs(name string, args []Value) ([]float64, bool, error) {
	fs := make([]float64, len(args))
	allInt := true
	for i, a := range args {
		f, ok := asFloat(a)
		if !ok {
			return nil, false, evalErrf("%s expects numeric arguments", name)
		}
		fs[i] = f
		if a.Tag != VTInt {
			allInt = false
		}
	}
	return fs, allInt, nil
}

func builtinAdd(args []Value) (Value, error) {
	fs, allInt, err := numericArgs("+", args)
	if err != nil {
		return Value{}, err
	}
	if allInt {
		var sum int64
		for _, a := range args {
			sum += a.Data.(int64)
		}
		return Int(sum), nil
	}
	var sum float64
	for _, f := range fs {
		sum += f
	}
	return Num(sum), nil
}

// Unary - negates; otherwise the first argument minus the sum of the rest.
func builtinSub(args []Value) (Value, error) {
	if len(args) == 0 {
		return Value{}, evalErrf("- expects at least one argument")
	}
	fs, allInt, err := numericArgs("-", args)
	if err != nil {
		return Value{}, err
	}
	if allInt {
		if len(args) == 1 {
			return Int(-args[0].Data.(int64)), nil
		}
		out := args[0].Data.(int64)
		for _, a := range args[1:] {
			out -= a.Data.(int64)
		}
		return Int(out), nil
	}
	if len(fs) == 1 {
		return Num(-fs[0]), nil
	}
	out := fs[0]
	for _, f := range fs[1:] {
		out -= f
	}
	return Num(out), nil
}

func builtinMul(args []Value) (Value, error) {
	if len(args) == 0 {
		return Value{}, evalErrf("* expects at least one argument")
	}
	fs, allInt, err := numericArgs("*", args)
	if err != nil {
		return Value{}, err
	}
	if allInt {
		out := args[0].Data.(int64)
		for _, a := range args[1:] {
			out *= a.Data.(int64)
		}
		return Int(out), nil
	}
	out := fs[0]
	for _, f := range fs[1:] {
		out *= f
	}
	return Num(out), nil
}

// Division always computes in float64: unary / inverts, otherwise the
// first argument is divided by each of the rest in turn. Division by zero
// follows IEEE float semantics (it is not separately guarded).
func builtinDiv(args []Value) (Value, error) {
	if len(args) == 0 {
		return Value{}, evalErrf("/ expects at least one argument")
	}
	fs, _, err := numericArgs("/", args)
	if err != nil {
		return Value{}, err
	}
	if len(fs) == 1 {
		return Num(1 / fs[0]), nil
	}
	out := fs[0]
	for _, f := range fs[1:] {
		out /= f
	}
	return Num(out), nil
}

// ---- comparison & logic -------------------------------------------------

// equal? holds when every argument is structurally equal to the first.
// Numbers compare numerically across integer/float.
func builtinEqual(args []Value) (Value, error) {
	if len(args) < 2 {
		return Bool(true), nil
	}
	for _, a := range args[1:] {
		if !deepEqual(args[0], a) {
			return Bool(false), nil
		}
	}
	return Bool(true), nil
}

// chainedCompare builds a variadic numeric comparison that holds when
// every adjacent pair satisfies rel. Zero or one arguments hold trivially.
func chainedCompare(name string, rel func(a, b float64) bool) Value {
	return builtinVal(name, func(args []Value) (Value, error) {
		fs, _, err := numericArgs(name, args)
		if err != nil {
			return Value{}, err
		}
		for i := 0; i+1 < len(fs); i++ {
			if !rel(fs[i], fs[i+1]) {
				return Bool(false), nil
			}
		}
		return Bool(true), nil
	})
}

func builtinNot(args []Value) (Value, error) {
	if len(args) != 1 {
		return Value{}, evalErrf("not expects exactly one argument")
	}
	return Bool(!isTruthy(args[0])), nil
}

// ---- pairs & lists ------------------------------------------------------

func builtinCar(args []Value) (Value, error) {
	if len(args) != 1 || args[0].Tag != VTPair {
		return Value{}, evalErrf("car expects exactly one pair")
	}
	return args[0].Data.(*Pair).Car, nil
}

func builtinCdr(args []Value) (Value, error) {
	if len(args) != 1 || args[0].Tag != VTPair {
		return Value{}, evalErrf("cdr expects exactly one pair")
	}
	return args[0].Data.(*Pair).Cdr, nil
}

func builtinCons(args []Value) (Value, error) {
	if len(args) != 2 {
		return Value{}, evalErrf("cons expects exactly two arguments")
	}
	return Cons(args[0], args[1]), nil
}

// list? recognizes proper lists: chains of pairs terminated by the empty
// list, including the empty list itself.
func builtinIsList(args []Value) (Value, error) {
	if len(args) != 1 {
		return Value{}, evalErrf("list? expects exactly one argument")
	}
	return Bool(isProperList(args[0])), nil
}

func builtinLength(args []Value) (Value, error) {
	if len(args) != 1 {
		return Value{}, evalErrf("length expects exactly one argument")
	}
	xs, ok := listSlice(args[0])
	if !ok {
		return Value{}, evalErrf("length expects a proper list")
	}
	return Int(int64(len(xs))), nil
}

// list-ref fetches the element at an integer index. A lone pair whose tail
// is not itself a proper list supports index 0 only (its car).
func builtinListRef(args []Value) (Value, error) {
	if len(args) != 2 {
		return Value{}, evalErrf("list-ref expects a list and an index")
	}
	ll, idx := args[0], args[1]
	if ll.Tag == VTPair && !isProperList(ll.Data.(*Pair).Cdr) {
		if idx.Tag == VTInt && idx.Data.(int64) == 0 {
			return ll.Data.(*Pair).Car, nil
		}
		return Value{}, evalErrf("list-ref index out of range for a single pair")
	}
	xs, ok := listSlice(ll)
	if !ok {
		return Value{}, evalErrf("list-ref expects a proper list")
	}
	if idx.Tag != VTInt {
		return Value{}, evalErrf("list-ref index must be an integer")
	}
	i := idx.Data.(int64)
	if i < 0 || i >= int64(len(xs)) {
		return Value{}, evalErrf("list-ref index %d out of range for list of length %d", i, len(xs))
	}
	return xs[i], nil
}

// append concatenates proper lists into a fresh chain; the inputs are
// never mutated. With no arguments it returns the empty list.
func builtinAppend(args []Value) (Value, error) {
	var all []Value
	for _, a := range args {
		xs, ok := listSlice(a)
		if !ok {
			return Value{}, evalErrf("append expects proper lists")
		}
		all = append(all, xs...)
	}
	return listFromSlice(all), nil
}

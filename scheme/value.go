// value.go: the runtime value universe.
//
// Value is a tagged sum in the same shape the expression tree uses:
// numbers (int64 / float64), booleans, procedures (native builtins or
// user-defined closures), cons cells, and the distinguished empty list.
// Symbols never survive evaluation — a symbol expression is resolved to
// whatever value it names.
package scheme

// ValueTag enumerates the runtime kinds a Value may hold.
// The tag determines which type Value.Data holds (see Value docs).
type ValueTag int

const (
	VTInt     ValueTag = iota // int64
	VTNum                     // float64
	VTBool                    // bool
	VTPair                    // *Pair (cons cell)
	VTEmpty                   // empty list (no payload)
	VTFun                     // *Fun (user-defined closure)
	VTBuiltin                 // *Builtin (native procedure)
)

// Value is the universal runtime carrier used by the evaluator.
//
// Invariants:
//   - When Tag==VTEmpty, Data is nil. Empty is a real value, distinct from
//     "absent": list predicates stay total because the terminator is a
//     distinguished variant, never a Go nil or missing entry.
//   - When Tag==VTPair, Data is *Pair; pairs are mutable cells shared by
//     reference.
type Value struct {
	Tag  ValueTag
	Data any
}

// Empty is the singleton empty-list value, the sole inhabitant of VTEmpty.
var Empty = Value{Tag: VTEmpty}

// Primitive constructors.
func Int(n int64) Value     { return Value{Tag: VTInt, Data: n} }
func Num(f float64) Value   { return Value{Tag: VTNum, Data: f} }
func Bool(b bool) Value     { return Value{Tag: VTBool, Data: b} }
func PairVal(p *Pair) Value { return Value{Tag: VTPair, Data: p} }
func FunVal(f *Fun) Value   { return Value{Tag: VTFun, Data: f} }

func builtinVal(name string, fn builtinImpl) Value {
	return Value{Tag: VTBuiltin, Data: &Builtin{Name: name, Fn: fn}}
}

// Pair is a mutable cons cell. Chains of pairs terminated by Empty
// represent proper lists; a pair whose Cdr is neither Empty nor a pair is
// an improper (dotted) list.
type Pair struct {
	Car Value
	Cdr Value
}

// Cons allocates a fresh cell.
func Cons(car, cdr Value) Value { return PairVal(&Pair{Car: car, Cdr: cdr}) }

// Fun is a user-defined closure: parameter names in order, the unevaluated
// body expression, and the frame that was current at the lambda. The frame
// is held by reference, so a closure observes later mutations of its
// enclosing scope and keeps the frame alive past the call that created it.
type Fun struct {
	Params []string
	Body   any
	Env    *Frame
}

// builtinImpl is the implementation signature for native procedures. The
// arguments are always already evaluated; raw expressions never reach a
// builtin.
type builtinImpl func(args []Value) (Value, error)

// Builtin is a primitive procedure implemented in the host.
type Builtin struct {
	Name string
	Fn   builtinImpl
}

// isTruthy mirrors the language's condition rule: #f, integer zero,
// floating-point zero, and the empty list are falsy; everything else
// (pairs and procedures included) is truthy.
func isTruthy(v Value) bool {
	switch v.Tag {
	case VTBool:
		return v.Data.(bool)
	case VTInt:
		return v.Data.(int64) != 0
	case VTNum:
		return v.Data.(float64) != 0
	case VTEmpty:
		return false
	default:
		return true
	}
}

// isCallable reports whether v can appear in application position.
func isCallable(v Value) bool { return v.Tag == VTFun || v.Tag == VTBuiltin }

// deepEqual is structural equality over the value universe. Numbers compare
// numerically across VTInt/VTNum (1 equals 1.0); pairs compare cell-wise;
// procedures compare by identity.
func deepEqual(a, b Value) bool {
	if numA, okA := asFloat(a); okA {
		if numB, okB := asFloat(b); okB {
			return numA == numB
		}
		return false
	}
	if a.Tag != b.Tag {
		return false
	}
	switch a.Tag {
	case VTBool:
		return a.Data.(bool) == b.Data.(bool)
	case VTEmpty:
		return true
	case VTPair:
		pa := a.Data.(*Pair)
		pb := b.Data.(*Pair)
		return deepEqual(pa.Car, pb.Car) && deepEqual(pa.Cdr, pb.Cdr)
	default:
		// Procedures: identity.
		return a.Data == b.Data
	}
}

// asFloat widens a numeric value to float64 for arithmetic and comparison.
func asFloat(v Value) (float64, bool) {
	switch v.Tag {
	case VTInt:
		return float64(v.Data.(int64)), true
	case VTNum:
		return v.Data.(float64), true
	default:
		return 0, false
	}
}

// isProperList walks the cdr chain checking for an Empty terminator.
func isProperList(v Value) bool {
	for {
		switch v.Tag {
		case VTEmpty:
			return true
		case VTPair:
			v = v.Data.(*Pair).Cdr
		default:
			return false
		}
	}
}

// listSlice flattens a proper list into a Go slice. The second result is
// false when v is not a proper list.
func listSlice(v Value) ([]Value, bool) {
	var out []Value
	for {
		switch v.Tag {
		case VTEmpty:
			return out, true
		case VTPair:
			p := v.Data.(*Pair)
			out = append(out, p.Car)
			v = p.Cdr
		default:
			return nil, false
		}
	}
}

// listFromSlice builds a fresh proper list from xs.
func listFromSlice(xs []Value) Value {
	out := Empty
	for i := len(xs) - 1; i >= 0; i-- {
		out = Cons(xs[i], out)
	}
	return out
}

// printer.go: Value -> display text, the way a REPL shows results.
package scheme

import (
	"math"
	"strconv"
	"strings"
)

// FormatValue renders a runtime value for display. Proper lists print as
// (1 2 3), dotted pairs as (1 . 2), booleans as #t/#f, and procedures as
// opaque placeholders.
func FormatValue(v Value) string {
	switch v.Tag {
	case VTInt:
		return strconv.FormatInt(v.Data.(int64), 10)
	case VTNum:
		return formatNum(v.Data.(float64))
	case VTBool:
		if v.Data.(bool) {
			return "#t"
		}
		return "#f"
	case VTEmpty:
		return "()"
	case VTPair:
		return formatPair(v.Data.(*Pair))
	case VTFun:
		f := v.Data.(*Fun)
		return "#[closure (" + strings.Join(f.Params, " ") + ")]"
	case VTBuiltin:
		return "#[builtin " + v.Data.(*Builtin).Name + "]"
	default:
		return "#[unknown]"
	}
}

// formatNum keeps a decimal point on integral floats so 2.0 round-trips as
// a float literal rather than reading back as an integer.
func formatNum(f float64) string {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return s
	}
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}

// formatPair prints a cdr chain: list notation while the chain continues,
// dot notation for an improper tail.
func formatPair(p *Pair) string {
	var b strings.Builder
	b.WriteByte('(')
	b.WriteString(FormatValue(p.Car))
	tail := p.Cdr
	for {
		switch tail.Tag {
		case VTEmpty:
			b.WriteByte(')')
			return b.String()
		case VTPair:
			next := tail.Data.(*Pair)
			b.WriteByte(' ')
			b.WriteString(FormatValue(next.Car))
			tail = next.Cdr
		default:
			b.WriteString(" . ")
			b.WriteString(FormatValue(tail))
			b.WriteByte(')')
			return b.String()
		}
	}
}

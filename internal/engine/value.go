package engine

import (
	"fmt"
	"math"
)

// Kind tags the variant held by a Value. Integers and doubles are distinct
// tags deliberately — the engine never silently widens one to the other.
type Kind int

const (
	KindNull Kind = iota
	KindInt
	KindFloat
	KindBool
	KindString
	KindMacro
	KindFunction
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindBool:
		return "bool"
	case KindString:
		return "string"
	case KindMacro:
		return "macro"
	case KindFunction:
		return "function"
	case KindObject:
		return "object"
	default:
		return "unknown"
	}
}

// Callable is the sum type a FunctionLibrary or redefinition table entry
// returns: either a stack-function or a plain pushable value.
type Callable struct {
	Name    string
	StackFn StackFunc
	Value   *Value
}

func (c Callable) IsStackFunction() bool { return c.StackFn != nil }

// StackFunc is a built-in or redefined operator: it consumes/produces
// values on the top of the stack.
type StackFunc func(ex *Executor, st *Stack) error

// Value is the tagged union pushed onto the stack.
type Value struct {
	Kind Kind
	I    int64
	F    float64
	B    bool
	S    string
	M    *Macro
	Fn   *Callable
	Obj  interface{} // opaque domain object (aggregator, context snapshot, ...)
}

func Null() Value              { return Value{Kind: KindNull} }
func Int(i int64) Value        { return Value{Kind: KindInt, I: i} }
func Float(f float64) Value    { return Value{Kind: KindFloat, F: f} }
func Bool(b bool) Value        { return Value{Kind: KindBool, B: b} }
func Str(s string) Value       { return Value{Kind: KindString, S: s} }
func MacroVal(m *Macro) Value  { return Value{Kind: KindMacro, M: m} }
func FuncVal(c *Callable) Value { return Value{Kind: KindFunction, Fn: c} }
func ObjectVal(o interface{}) Value { return Value{Kind: KindObject, Obj: o} }

func (v Value) IsNull() bool { return v.Kind == KindNull }

func (v Value) IsNumeric() bool { return v.Kind == KindInt || v.Kind == KindFloat }

// AsFloat returns the value as a float64, for numeric comparisons. Only
// valid when IsNumeric() is true.
func (v Value) AsFloat() float64 {
	if v.Kind == KindInt {
		return float64(v.I)
	}
	return v.F
}

func (v Value) IsNaN() bool {
	return v.Kind == KindFloat && math.IsNaN(v.F)
}

// String renders a value for logging/debugging, never for script output
// (that is a FunctionLibrary concern).
func (v Value) String() string {
	switch v.Kind {
	case KindNull:
		return "null"
	case KindInt:
		return fmt.Sprintf("%d", v.I)
	case KindFloat:
		return fmt.Sprintf("%g", v.F)
	case KindBool:
		if v.B {
			return "true"
		}
		return "false"
	case KindString:
		return v.S
	case KindMacro:
		if v.M != nil && v.M.Name != "" {
			return fmt.Sprintf("<macro %s>", v.M.Name)
		}
		return "<macro>"
	case KindFunction:
		if v.Fn != nil {
			return fmt.Sprintf("<function %s>", v.Fn.Name)
		}
		return "<function>"
	case KindObject:
		return fmt.Sprintf("<object %T>", v.Obj)
	default:
		return "<?>"
	}
}

// Equal implements reference/value equality used internally (not the EQ
// stack-function, which has its own NaN and type rules — see ops.go).
func (v Value) Equal(o Value) bool {
	if v.Kind != o.Kind {
		return false
	}
	switch v.Kind {
	case KindNull:
		return true
	case KindInt:
		return v.I == o.I
	case KindFloat:
		return v.F == o.F
	case KindBool:
		return v.B == o.B
	case KindString:
		return v.S == o.S
	case KindMacro:
		return v.M == o.M
	case KindFunction:
		return v.Fn == o.Fn
	case KindObject:
		return v.Obj == o.Obj
	default:
		return false
	}
}

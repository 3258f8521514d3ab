package engine

import (
	"fmt"
	"math"
)

func nan() float64 { return math.NaN() }

// StandardLibrary is a minimal default FunctionLibrary: arithmetic,
// comparison, and STORE/LOAD/FORGET/EVAL, registered through the same
// FunctionLibrary interface a real external function catalog would use, so
// simple scripts run without a caller supplying one. It is itself
// overridable through the stack's redefinition table.
//
// A flat name-to-handler map registered at construction time.
type StandardLibrary struct {
	fns map[string]Callable
}

func NewStandardLibrary() *StandardLibrary {
	lib := &StandardLibrary{fns: make(map[string]Callable)}
	lib.register()
	return lib
}

func (lib *StandardLibrary) Lookup(name string) (Callable, bool) {
	c, ok := lib.fns[name]
	return c, ok
}

func (lib *StandardLibrary) add(name string, fn StackFunc) {
	lib.fns[name] = Callable{Name: name, StackFn: fn}
}

func (lib *StandardLibrary) register() {
	lib.add("+", arith(func(a, b float64) float64 { return a + b }, func(a, b int64) int64 { return a + b }))
	lib.add("-", arith(func(a, b float64) float64 { return a - b }, func(a, b int64) int64 { return a - b }))
	lib.add("*", arith(func(a, b float64) float64 { return a * b }, func(a, b int64) int64 { return a * b }))
	lib.add("/", func(ex *Executor, s *Stack) error {
		b, a, err := popPair(s)
		if err != nil {
			return err
		}
		if !a.IsNumeric() || !b.IsNumeric() {
			return newTypeError("/: operands must be numeric", nil)
		}
		if a.Kind == KindInt && b.Kind == KindInt {
			if b.I == 0 {
				return newTypeError("/: integer division by zero", nil)
			}
			return s.Push(Int(a.I / b.I))
		}
		if b.AsFloat() == 0 {
			return newTypeError("/: division by zero", nil)
		}
		return s.Push(Float(a.AsFloat() / b.AsFloat()))
	})

	lib.add("NaN", func(ex *Executor, s *Stack) error {
		return s.Push(Float(nan()))
	})

	// Default secure-wrap hook: pops the collected secure-block text and
	// pushes it back unchanged. A host wanting to gate secure-block
	// creation (e.g. a manager-secret check) overrides this name in its
	// own FunctionLibrary or via the stack's redefinition table.
	lib.add(DefaultSecureWrapFunction, func(ex *Executor, s *Stack) error {
		v, err := s.Pop()
		if err != nil {
			return err
		}
		return s.Push(v)
	})

	lib.add("EQ", cmp(relEQ, "EQ"))
	lib.add("NE", cmp(relNE, "NE"))
	lib.add("LT", cmp(relLT, "LT"))
	lib.add("LE", cmp(relLE, "LE"))
	lib.add("GT", cmp(relGT, "GT"))
	lib.add("GE", cmp(relGE, "GE"))

	lib.add("STORE", func(ex *Executor, s *Stack) error {
		name, err := popName(s)
		if err != nil {
			return err
		}
		v, err := s.Pop()
		if err != nil {
			return err
		}
		return s.Store(name, v)
	})
	lib.add("LOAD", func(ex *Executor, s *Stack) error {
		name, err := popName(s)
		if err != nil {
			return err
		}
		v, ok := s.Load(name)
		if !ok {
			return newResolutionError("unknown symbol \""+name+"\"", nil)
		}
		return s.Push(v)
	})
	lib.add("FORGET", func(ex *Executor, s *Stack) error {
		name, err := popName(s)
		if err != nil {
			return err
		}
		s.Forget(name)
		return nil
	})
	lib.add("EVAL", func(ex *Executor, s *Stack) error {
		v, err := s.Pop()
		if err != nil {
			return err
		}
		if v.Kind != KindMacro {
			return newTypeError("EVAL: top of stack is not a macro", nil)
		}
		return ex.Exec(s, v.M)
	})
}

func popName(s *Stack) (string, error) {
	v, err := s.Pop()
	if err != nil {
		return "", err
	}
	if v.Kind != KindString {
		return "", newTypeError("expected a string name", nil)
	}
	return v.S, nil
}

func popPair(s *Stack) (b, a Value, err error) {
	b, err = s.Pop()
	if err != nil {
		return
	}
	a, err = s.Pop()
	return
}

func arith(ffn func(a, b float64) float64, ifn func(a, b int64) int64) StackFunc {
	return func(ex *Executor, s *Stack) error {
		b, a, err := popPair(s)
		if err != nil {
			return err
		}
		if !a.IsNumeric() || !b.IsNumeric() {
			return newTypeError(fmt.Sprintf("arithmetic operator: operands must be numeric, got %s and %s", a.Kind, b.Kind), nil)
		}
		if a.Kind == KindInt && b.Kind == KindInt {
			return s.Push(Int(ifn(a.I, b.I)))
		}
		return s.Push(Float(ffn(a.AsFloat(), b.AsFloat())))
	}
}

func cmp(rel relation, name string) StackFunc {
	return func(ex *Executor, s *Stack) error {
		b, a, err := popPair(s)
		if err != nil {
			return err
		}
		result, err := Compare(a, b, rel, name)
		if err != nil {
			return err
		}
		return s.Push(Bool(result))
	}
}

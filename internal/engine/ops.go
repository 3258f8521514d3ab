package engine

import "strings"

// compareNumeric implements NaN-aware numeric comparison: reflexive
// relations (=, >=, <=) treat NaN==NaN as true; strict relations (<, >)
// are false whenever either operand is NaN; mixing NaN with a non-NaN
// value yields the strict-relation result for every relation.
type relation int

const (
	relEQ relation = iota
	relNE
	relLT
	relLE
	relGT
	relGE
)

func compareNumeric(a, b Value, rel relation) (bool, error) {
	if !a.IsNumeric() || !b.IsNumeric() {
		return false, newTypeError("homogeneous-types required for numeric comparison", nil)
	}
	aNaN, bNaN := a.IsNaN(), b.IsNaN()
	x, y := a.AsFloat(), b.AsFloat()

	if aNaN && bNaN {
		switch rel {
		case relEQ, relGE, relLE:
			return true, nil
		case relNE, relLT, relGT:
			return false, nil
		}
	}
	if aNaN || bNaN {
		switch rel {
		case relNE:
			return true, nil
		default:
			return false, nil
		}
	}
	switch rel {
	case relEQ:
		return x == y, nil
	case relNE:
		return x != y, nil
	case relLT:
		return x < y, nil
	case relLE:
		return x <= y, nil
	case relGT:
		return x > y, nil
	case relGE:
		return x >= y, nil
	}
	return false, nil
}

func compareStrings(a, b string, rel relation) bool {
	c := strings.Compare(a, b)
	switch rel {
	case relEQ:
		return c == 0
	case relNE:
		return c != 0
	case relLT:
		return c < 0
	case relLE:
		return c <= 0
	case relGT:
		return c > 0
	case relGE:
		return c >= 0
	}
	return false
}

// Compare implements the comparison dispatch for EQ/NE/LT/LE/GT/GE:
// numeric operands compare as numbers (with the NaN rules above), string
// operands compare lexicographically by code point, anything else fails
// with a homogeneous-types error citing the operator name.
func Compare(a, b Value, rel relation, opName string) (bool, error) {
	if a.IsNumeric() && b.IsNumeric() {
		return compareNumeric(a, b, rel)
	}
	if a.Kind == KindString && b.Kind == KindString {
		return compareStrings(a.S, b.S, rel), nil
	}
	return false, newTypeError("operator "+opName+": operands must be homogeneous numeric or string types", nil)
}

// AggregatorThreshold is the opaque object pushed by mapper/aggregator
// constructor functions (e.g. first-less-than): a typed threshold
// (integer, floating, or string).
type AggregatorThreshold struct {
	Name      string
	Threshold Value
}

// NewAggregatorConstructor builds a StackFunc that pops a threshold value,
// validates its type, and pushes an AggregatorThreshold object — the shape
// every mapper/aggregator constructor in the external function library
// shares.
func NewAggregatorConstructor(name string) StackFunc {
	return func(ex *Executor, st *Stack) error {
		v, err := st.Pop()
		if err != nil {
			return err
		}
		switch v.Kind {
		case KindInt, KindFloat, KindString:
			return st.Push(ObjectVal(&AggregatorThreshold{Name: name, Threshold: v}))
		default:
			return newTypeError(name+": threshold must be integer, floating, or string", nil)
		}
	}
}

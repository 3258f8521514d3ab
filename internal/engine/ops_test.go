package engine

import (
	"math"
	"testing"
)

func TestCompareNaNReflexive(t *testing.T) {
	nan := Float(math.NaN())
	for _, rel := range []relation{relEQ, relGE, relLE} {
		ok, err := Compare(nan, nan, rel, "cmp")
		if err != nil {
			t.Fatal(err)
		}
		if !ok {
			t.Errorf("relation %v between NaN and NaN should be true", rel)
		}
	}
	for _, rel := range []relation{relLT, relGT} {
		ok, err := Compare(nan, Int(1), rel, "cmp")
		if err != nil {
			t.Fatal(err)
		}
		if ok {
			t.Errorf("relation %v with a NaN operand should be false", rel)
		}
		ok, err = Compare(nan, nan, rel, "cmp")
		if err != nil {
			t.Fatal(err)
		}
		if ok {
			t.Errorf("relation %v between NaN and NaN should be false", rel)
		}
	}
}

func TestCompareGEEqualsNotLT(t *testing.T) {
	pairs := [][2]Value{{Int(1), Int(2)}, {Float(3.5), Float(3.5)}, {Int(9), Int(2)}}
	for _, p := range pairs {
		ge, err := Compare(p[0], p[1], relGE, "GE")
		if err != nil {
			t.Fatal(err)
		}
		lt, err := Compare(p[0], p[1], relLT, "LT")
		if err != nil {
			t.Fatal(err)
		}
		if ge != !lt {
			t.Errorf("GE(%v,%v)=%v should be ¬LT=%v", p[0], p[1], ge, !lt)
		}

		eq, err := Compare(p[0], p[1], relEQ, "EQ")
		if err != nil {
			t.Fatal(err)
		}
		le, err := Compare(p[0], p[1], relLE, "LE")
		if err != nil {
			t.Fatal(err)
		}
		if eq != (ge && le) {
			t.Errorf("EQ(%v,%v)=%v should be GE∧LE=%v", p[0], p[1], eq, ge && le)
		}
	}
}

func TestCompareHeterogeneousFails(t *testing.T) {
	if _, err := Compare(Int(1), Str("x"), relEQ, "EQ"); err == nil {
		t.Fatal("expected a homogeneous-types error for int vs string")
	}
}

func TestCompareStrings(t *testing.T) {
	ok, err := Compare(Str("abc"), Str("abd"), relLT, "LT")
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Error(`"abc" should be LT "abd"`)
	}
}

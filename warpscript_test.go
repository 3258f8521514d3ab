package warpscript_test

import (
	"context"
	"strings"
	"testing"

	warpscript "github.com/alexandrebrg/warpscript-go"
)

// Scenario 1: `1 2 +` with a built-in + stack-function -> depth 1, top = 3.
func TestScenarioArithmetic(t *testing.T) {
	ws := warpscript.New(warpscript.DefaultConfig())
	ws.RegisterLibrary(warpscript.NewStandardLibrary())

	if err := ws.ExecuteString(context.Background(), "1 2 +", "t1.mc2"); err != nil {
		t.Fatal(err)
	}
	if ws.Stack.Depth() != 1 {
		t.Fatalf("depth = %d, want 1", ws.Stack.Depth())
	}
	top, _ := ws.Stack.Peek()
	if top.I != 3 {
		t.Fatalf("top = %v, want 3", top)
	}
}

// Scenario 2: `1.0 NaN NaN GE` -> depth 2, top = true, below = 1.0.
func TestScenarioNaNComparison(t *testing.T) {
	ws := warpscript.New(warpscript.DefaultConfig())
	ws.RegisterLibrary(warpscript.NewStandardLibrary())

	if err := ws.ExecuteString(context.Background(), "1.0 NaN NaN GE", "t2.mc2"); err != nil {
		t.Fatal(err)
	}
	if ws.Stack.Depth() != 2 {
		t.Fatalf("depth = %d, want 2", ws.Stack.Depth())
	}
	top, _ := ws.Stack.Peekn(0)
	below, _ := ws.Stack.Peekn(1)
	if !top.B {
		t.Fatalf("top = %v, want true", top)
	}
	if below.F != 1.0 {
		t.Fatalf("below = %v, want 1.0", below)
	}
}

// Scenario 3: `<% 1 2 + %> 'f' STORE $f EVAL` -> depth 1, top = 3.
func TestScenarioMacroStoreEval(t *testing.T) {
	ws := warpscript.New(warpscript.DefaultConfig())
	ws.RegisterLibrary(warpscript.NewStandardLibrary())

	if err := ws.ExecuteString(context.Background(), "<% 1 2 + %> 'f' STORE $f EVAL", "t3.mc2"); err != nil {
		t.Fatal(err)
	}
	if ws.Stack.Depth() != 1 {
		t.Fatalf("depth = %d, want 1", ws.Stack.Depth())
	}
	top, _ := ws.Stack.Peek()
	if top.I != 3 {
		t.Fatalf("top = %v, want 3", top)
	}
}

// Scenario 4: a multiline string assignment: s = "line1\nline2".
func TestScenarioMultilineString(t *testing.T) {
	ws := warpscript.New(warpscript.DefaultConfig())
	ws.RegisterLibrary(warpscript.NewStandardLibrary())

	source := "<'\nline1\nline2\n'>\n's' STORE"
	if err := ws.ExecuteString(context.Background(), source, "t4.mc2"); err != nil {
		t.Fatal(err)
	}
	v, ok := ws.Stack.Load("s")
	if !ok {
		t.Fatal("expected symbol s to be stored")
	}
	if v.S != "line1\nline2" {
		t.Fatalf("s = %q, want %q", v.S, "line1\nline2")
	}
}

// Scenario 5: maxops = 3 of `1 2 3 4` fails with op-count-exceeded after the
// fourth push.
func TestScenarioOpBudgetExceeded(t *testing.T) {
	cfg := warpscript.DefaultConfig()
	cfg.MaxOps = 3
	ws := warpscript.New(cfg)
	ws.RegisterLibrary(warpscript.NewStandardLibrary())

	err := ws.ExecuteString(context.Background(), "1 2 3 4", "t5.mc2")
	if err == nil {
		t.Fatal("expected an op-count-exceeded error")
	}
}

// A string literal containing percent-escapes is percent-decoded as UTF-8
// before being pushed.
func TestStringLiteralPercentDecoded(t *testing.T) {
	ws := warpscript.New(warpscript.DefaultConfig())
	ws.RegisterLibrary(warpscript.NewStandardLibrary())

	if err := ws.ExecuteString(context.Background(), "'%41%42'", "t6.mc2"); err != nil {
		t.Fatal(err)
	}
	top, _ := ws.Stack.Peek()
	if top.S != "AB" {
		t.Fatalf("top = %q, want %q", top.S, "AB")
	}
}

// A secure block pushes the collected text through the default identity
// secure-wrap hook.
func TestSecureBlockInvokesWrapFunction(t *testing.T) {
	ws := warpscript.New(warpscript.DefaultConfig())
	ws.RegisterLibrary(warpscript.NewStandardLibrary())

	source := "<%SECURE%>\nsecretvalue\n<%/SECURE%>"
	if err := ws.ExecuteString(context.Background(), source, "t7.mc2"); err != nil {
		t.Fatal(err)
	}
	if ws.Stack.Depth() != 1 {
		t.Fatalf("depth = %d, want 1", ws.Stack.Depth())
	}
	top, _ := ws.Stack.Peek()
	if !strings.Contains(top.S, "secretvalue") {
		t.Fatalf("top = %q, want it to contain the collected secure-block text", top.S)
	}
}

// An already-cancelled context makes ExecuteString signal KILL on the stack
// and return the context's error without running the script.
func TestExecuteStringContextCancellation(t *testing.T) {
	ws := warpscript.New(warpscript.DefaultConfig())
	ws.RegisterLibrary(warpscript.NewStandardLibrary())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := ws.ExecuteString(ctx, "1 2 3", "t8.mc2")
	if err == nil {
		t.Fatal("expected an error from ExecuteString with an already-cancelled context")
	}
}

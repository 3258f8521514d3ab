package engine

import "time"

// Executor drives macro invocation: it saves and restores the caller's
// section/macro name around a call and reports outcomes through an
// ordinary Go error return rather than a sum-type result.
type Executor struct {
	Log       *Logger
	Telemetry *Telemetry
}

func NewExecutor(log *Logger, tel *Telemetry) *Executor {
	if tel == nil {
		tel = NewTelemetry(nil)
	}
	return &Executor{Log: log, Telemetry: tel}
}

// Exec runs macro on stack: budget checks, save/escalate, run, then a
// finally-equivalent that restores caller state and records call metrics.
func (ex *Executor) Exec(s *Stack, macro *Macro) error {
	start := time.Now()

	// op counter, recursion counter
	if err := s.ops.increment(1); err != nil {
		return err
	}
	if err := s.recur.enter(); err != nil {
		return err
	}

	// save caller's section/macro name/in_secure_macro
	savedSection := s.section
	savedMacroName := s.macroName
	savedSecure := s.inSecureMacro

	// monotonic escalation: secure never de-escalates
	s.inSecureMacro = savedSecure || macro.Secure
	s.macroName = macro.Name

	err := ex.run(s, macro)

	// finally-equivalent: restore caller state regardless of outcome
	s.inSecureMacro = savedSecure
	s.macroName = savedMacroName
	s.section = savedSection
	s.recur.leave()
	macro.recordCall(time.Since(start))
	if ex.Telemetry != nil {
		ex.Telemetry.RecordCall(macro.Name, time.Since(start))
	}

	return err
}

// run iterates macro's entries and classifies any exceptional exit.
func (ex *Executor) run(s *Stack, macro *Macro) error {
	for i, entry := range macro.Entries {
		if err := s.sig.check(); err != nil {
			return err // asynchronous-control: propagate unchanged
		}
		if err := s.ops.increment(1); err != nil {
			return err
		}

		if err := ex.step(s, entry); err != nil {
			return ex.classify(s, macro, i, entry, err)
		}
	}
	// normal completion; op budget already checked incrementally
	return nil
}

// step applies one macro entry: a stack-function reference is applied, a
// literal is pushed, a nested macro is pushed as a value, deferred-load/run
// markers resolve their symbol, an audit entry is a no-op statement.
func (ex *Executor) step(s *Stack, entry MacroEntry) error {
	switch entry.Kind {
	case EntryFunction:
		return entry.Fn.StackFn(ex, s)
	case EntryLiteral:
		return s.Push(entry.Literal)
	case EntryMacro:
		return s.Push(MacroVal(entry.Nested))
	case EntryDeferredLoad:
		v, ok := s.Load(entry.Symbol)
		if !ok {
			return newResolutionError("unknown symbol \""+entry.Symbol+"\"", entry.Position)
		}
		return s.Push(v)
	case EntryDeferredRun:
		v, ok := s.Load(entry.Symbol)
		if !ok {
			return newResolutionError("unknown symbol \""+entry.Symbol+"\"", entry.Position)
		}
		if v.Kind != KindMacro {
			return newTypeError("\""+entry.Symbol+"\" is not a macro", entry.Position)
		}
		return ex.Exec(s, v.M)
	case EntryAudit:
		return nil
	default:
		return nil
	}
}

// classify applies the exceptional-exit rules: control signals unwind or
// propagate, secure frames scrub diagnostic detail, and ordinary engine
// errors get the invoking statement/macro framed on.
func (ex *Executor) classify(s *Stack, macro *Macro, index int, entry MacroEntry, err error) error {
	if cs, ok := isControlSignal(err); ok {
		if cs.Kind == SignalReturn {
			if cs.Depth <= 1 {
				return nil // swallowed: normal return from macro
			}
			return &ControlSignal{Kind: SignalReturn, Depth: cs.Depth - 1}
		}
		return err // stop/kill propagate unchanged
	}

	if s.inSecureMacro {
		// secure block acts as an opaque barrier for source-level diagnostics
		if ee, ok := isEngineError(err); ok {
			return &EngineError{Kind: ee.Kind, Message: ee.Message, Raw: true}
		}
		return err
	}

	if ee, ok := isEngineError(err); ok {
		name := statementName(entry)
		ee.Position = positionOrDefault(ee.Position, entry.Position)
		ee.Macro = &MacroContext{MacroName: macro.Name, Invocation: entry.Position}
		if name != "" && ee.Message != "" {
			ee.Message = name + ": " + ee.Message
		}
		return ee
	}
	return err
}

func positionOrDefault(pos, fallback *SourcePosition) *SourcePosition {
	if pos != nil {
		return pos
	}
	return fallback
}

// statementName prefers the function's declared name for readability.
func statementName(entry MacroEntry) string {
	switch entry.Kind {
	case EntryFunction:
		if entry.Fn != nil {
			return entry.Fn.Name
		}
	case EntryDeferredLoad, EntryDeferredRun:
		return entry.Symbol
	}
	return ""
}

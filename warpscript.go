// Package warpscript provides a stack-oriented, postfix scripting language
// engine that can be embedded in Go applications.
//
// This package re-exports the public API from the implementation in
// internal/engine. For full documentation, see the implementation package.
//
// Basic usage:
//
//	ws := warpscript.New(warpscript.DefaultConfig())
//	ws.RegisterLibrary(warpscript.NewStandardLibrary())
//	err := ws.ExecuteString(context.Background(), "1 2 +", "session.mc2")
package warpscript

import (
	"context"

	impl "github.com/alexandrebrg/warpscript-go/internal/engine"
	"github.com/sirupsen/logrus"
)

// =============================================================================
// CORE TYPES
// =============================================================================

// Config holds the engine's tunable-limits configuration.
type Config = impl.Config

// Limits is the resolved set of ceilings (maxops, maxrecurse, maxdepth,
// maxsymbols, register size) a Stack enforces.
type Limits = impl.Limits

// Stack is the depth-limited value stack with its symbol table, register
// file, attribute map, and redefinition table.
type Stack = impl.Stack

// Executor drives macro invocation.
type Executor = impl.Executor

// Parser is the character-level streaming recognizer.
type Parser = impl.Parser

// Macro is an ordered, immutable sequence of statements.
type Macro = impl.Macro

// Value is the tagged union pushed onto the stack.
type Value = impl.Value

// Kind tags the variant held by a Value.
type Kind = impl.Kind

// Callable is a polymorphic function reference: either a stack-function or
// a plain pushable value.
type Callable = impl.Callable

// StackFunc is a built-in or redefined operator.
type StackFunc = impl.StackFunc

// =============================================================================
// COLLABORATOR INTERFACES
// =============================================================================

// FunctionLibrary resolves a bare name to a callable or value.
type FunctionLibrary = impl.FunctionLibrary

// MacroSource is one link in the macro resolution chain.
type MacroSource = impl.MacroSource

// MetricSink receives best-effort telemetry.
type MetricSink = impl.MetricSink

// =============================================================================
// ERROR TYPES
// =============================================================================

// EngineError is the common error type for parse/resolution/type/budget/
// capability errors.
type EngineError = impl.EngineError

// ControlSignal is the error-shaped carrier for return/stop/kill.
type ControlSignal = impl.ControlSignal

// SignalKind is a control-flow signal (return, stop, kill).
type SignalKind = impl.SignalKind

// =============================================================================
// REGISTRY AND CONTEXT
// =============================================================================

// Registry is the process-wide, thread-safe set of named stacks.
type Registry = impl.Registry

// ContextSnapshot is the opaque value pushed by save and consumed by
// restore(ctx).
type ContextSnapshot = impl.ContextSnapshot

// Telemetry accumulates per-function-call counts/elapsed-time and
// exceeded-limit counters.
type Telemetry = impl.Telemetry

// TelemetrySnapshot is a YAML-marshalable snapshot of accumulated metrics.
type TelemetrySnapshot = impl.TelemetrySnapshot

// Logger wraps a structured logger with the engine's category taxonomy.
type Logger = impl.Logger

// =============================================================================
// CONSTRUCTOR FUNCTIONS
// =============================================================================

// DefaultConfig returns a Config with the engine's default limits.
func DefaultConfig() Config {
	return impl.DefaultConfig()
}

// LoadConfig reads a YAML config file into a Config.
func LoadConfig(path string) (*Config, error) {
	return impl.LoadConfig(path)
}

// NewStack creates a root stack from a configuration snapshot.
func NewStack(limits Limits) *Stack {
	return impl.NewStack(limits)
}

// NewRegistry creates a new process-wide stack registry.
func NewRegistry() *Registry {
	return impl.NewRegistry()
}

// NewLogger wraps a logrus.FieldLogger (or nil for the standard logger).
func NewLogger(base logrus.FieldLogger) *Logger {
	return impl.NewLogger(base)
}

// NewTelemetry creates a Telemetry accumulator forwarding to an optional
// MetricSink.
func NewTelemetry(sink MetricSink) *Telemetry {
	return impl.NewTelemetry(sink)
}

// NewExecutor creates an Executor bound to a logger and telemetry sink.
func NewExecutor(log *Logger, tel *Telemetry) *Executor {
	return impl.NewExecutor(log, tel)
}

// NewResolver builds a function resolver consulting a stack's redefinition
// table first and then the given library.
func NewResolver(lib FunctionLibrary) *impl.Resolver {
	return impl.NewResolver(lib)
}

// NewParser constructs a parser bound to the stack/executor it drives.
func NewParser(s *Stack, ex *Executor, resolver *impl.Resolver, macros *impl.MacroChain, audit *impl.AuditTrail) *Parser {
	return impl.NewParser(s, ex, resolver, macros, audit)
}

// NewAuditTrail creates an audit trail that also logs demoted errors.
func NewAuditTrail(log *Logger) *impl.AuditTrail {
	return impl.NewAuditTrail(log)
}

// NewMacroChain builds an ordered macro resolution chain.
func NewMacroChain(sources ...MacroSource) *impl.MacroChain {
	return impl.NewMacroChain(sources...)
}

// NewStandardLibrary returns the engine's minimal built-in function library
// (arithmetic, comparison, STORE/LOAD/FORGET/EVAL).
func NewStandardLibrary() *impl.StandardLibrary {
	return impl.NewStandardLibrary()
}

// =============================================================================
// VALUE CONSTRUCTORS
// =============================================================================

func Null() Value             { return impl.Null() }
func Int(i int64) Value       { return impl.Int(i) }
func Float(f float64) Value   { return impl.Float(f) }
func Bool(b bool) Value       { return impl.Bool(b) }
func Str(s string) Value      { return impl.Str(s) }
func MacroVal(m *Macro) Value { return impl.MacroVal(m) }

// =============================================================================
// ENGINE FACADE
// =============================================================================

// Engine bundles a stack, executor, function library, macro chain, and
// audit trail into the embedding shape shown in the package doc comment;
// ExecuteString builds a fresh parser and resolver over them for each run.
type Engine struct {
	Stack    *Stack
	Executor *Executor
	Library  FunctionLibrary
	Macros   *impl.MacroChain
	Audit    *impl.AuditTrail
	Log      *Logger

	auditMode bool
}

// New creates an Engine from a Config, wired with the standard library and
// a default in-process macro chain (local symbol table only, until the
// caller adds more sources via Macros). cfg.Secure runs the whole script as
// though wrapped in a secure block; cfg.Audit enables audit-mode demotion
// of recoverable parse/execution errors.
func New(cfg Config) *Engine {
	log := impl.NewLogger(nil)
	tel := impl.NewTelemetry(nil)
	stack := impl.NewStack(cfg.Limits())
	stack.SetSecure(cfg.Secure)
	stack.SetTelemetry(tel)
	audit := impl.NewAuditTrail(log)
	lib := impl.NewStandardLibrary()
	ex := impl.NewExecutor(log, tel)
	macros := impl.NewMacroChain(impl.NewSymbolTableMacroSource(stack))

	return &Engine{
		Stack:     stack,
		Executor:  ex,
		Library:   lib,
		Macros:    macros,
		Audit:     audit,
		Log:       log,
		auditMode: cfg.Audit,
	}
}

// RegisterLibrary replaces the engine's function library.
func (e *Engine) RegisterLibrary(lib FunctionLibrary) {
	e.Library = lib
}

// ExecuteString parses and runs source against the engine's stack, tagging
// diagnostics with section for error messages. Cancelling ctx delivers a
// KILL signal to the stack, aborting at the next statement or parsed-token
// boundary.
func (e *Engine) ExecuteString(ctx context.Context, source, section string) error {
	if err := ctx.Err(); err != nil {
		e.Stack.Signal(impl.SignalKill)
		return err
	}

	resolver := impl.NewResolver(e.Library)
	p := impl.NewParser(e.Stack, e.Executor, resolver, e.Macros, e.Audit)
	p.Section = section
	p.AuditMode = e.auditMode

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			e.Stack.Signal(impl.SignalKill)
		case <-done:
		}
	}()

	return p.ParseSource(source)
}

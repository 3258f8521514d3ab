package engine

import (
	"github.com/sirupsen/logrus"
)

// LogCategory tags the subsystem generating a message.
type LogCategory string

const (
	LogCategoryNone     LogCategory = ""
	LogCategoryParse    LogCategory = "parse"
	LogCategoryExec     LogCategory = "exec"
	LogCategoryMacro    LogCategory = "macro"
	LogCategoryBudget   LogCategory = "budget"
	LogCategoryAudit    LogCategory = "audit"
	LogCategoryResolver LogCategory = "resolver"
)

// Logger wraps a logrus.FieldLogger, rendering position-framed messages as
// structured fields instead of hand-built strings, so the same event is
// both human-readable on a terminal and machine-parseable when the host
// redirects logrus output to JSON.
type Logger struct {
	base logrus.FieldLogger
}

func NewLogger(base logrus.FieldLogger) *Logger {
	if base == nil {
		base = logrus.StandardLogger()
	}
	return &Logger{base: base}
}

func (l *Logger) fields(cat LogCategory, pos *SourcePosition) logrus.Fields {
	f := logrus.Fields{}
	if cat != LogCategoryNone {
		f["category"] = string(cat)
	}
	if pos != nil {
		f["line"] = pos.Line
		f["column"] = pos.Column
		if pos.Section != "" {
			f["section"] = pos.Section
		}
	}
	return f
}

func (l *Logger) Debug(cat LogCategory, message string, pos *SourcePosition) {
	l.base.WithFields(l.fields(cat, pos)).Debug(message)
}

func (l *Logger) Warn(cat LogCategory, message string, pos *SourcePosition) {
	l.base.WithFields(l.fields(cat, pos)).Warn(message)
}

func (l *Logger) Error(cat LogCategory, message string, pos *SourcePosition) {
	l.base.WithFields(l.fields(cat, pos)).Error(message)
}

// WithMacro attaches the macro invocation chain to a logger call as a
// single structured field rather than an indented text block.
func (l *Logger) WithMacro(mc *MacroContext) *logrus.Entry {
	return l.base.WithField("macro_chain", mc.chain())
}

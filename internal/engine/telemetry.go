package engine

import (
	"sync"
	"time"
)

// MetricSink receives best-effort telemetry: observations must never block
// or panic the caller.
type MetricSink interface {
	ObserveCall(function string, elapsed time.Duration)
	ObserveLimitExceeded(kind string)
}

// noopSink is used when the caller doesn't supply a MetricSink, so
// RecordCall and RecordLimitExceeded never need a nil check before
// forwarding to the sink.
type noopSink struct{}

func (noopSink) ObserveCall(string, time.Duration) {}
func (noopSink) ObserveLimitExceeded(string)       {}

// Telemetry accumulates per-function-call counts/elapsed-time and
// exceeded-limit counters, and forwards each observation to an optional
// external MetricSink.
type Telemetry struct {
	mu       sync.Mutex
	calls    map[string]*callStats
	exceeded map[string]int64
	sink     MetricSink
}

type callStats struct {
	Count      int64         `yaml:"count"`
	Cumulative time.Duration `yaml:"cumulative"`
}

func NewTelemetry(sink MetricSink) *Telemetry {
	if sink == nil {
		sink = noopSink{}
	}
	return &Telemetry{
		calls:    make(map[string]*callStats),
		exceeded: make(map[string]int64),
		sink:     sink,
	}
}

func (t *Telemetry) RecordCall(function string, elapsed time.Duration) {
	t.mu.Lock()
	st, ok := t.calls[function]
	if !ok {
		st = &callStats{}
		t.calls[function] = st
	}
	st.Count++
	st.Cumulative += elapsed
	t.mu.Unlock()
	t.sink.ObserveCall(function, elapsed)
}

func (t *Telemetry) RecordLimitExceeded(kind string) {
	t.mu.Lock()
	t.exceeded[kind]++
	t.mu.Unlock()
	t.sink.ObserveLimitExceeded(kind)
}

// TelemetrySnapshot is a YAML-marshalable snapshot of accumulated metrics,
// so a host can dump it to a YAML audit file.
type TelemetrySnapshot struct {
	Calls    map[string]callStats `yaml:"calls"`
	Exceeded map[string]int64     `yaml:"exceeded_limits"`
}

func (t *Telemetry) Snapshot() TelemetrySnapshot {
	t.mu.Lock()
	defer t.mu.Unlock()
	calls := make(map[string]callStats, len(t.calls))
	for k, v := range t.calls {
		calls[k] = *v
	}
	exceeded := make(map[string]int64, len(t.exceeded))
	for k, v := range t.exceeded {
		exceeded[k] = v
	}
	return TelemetrySnapshot{Calls: calls, Exceeded: exceeded}
}

package dispatcher

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/dshills/vedit/internal/command"
)

// CommandMetrics holds statistics for one command kind.
type CommandMetrics struct {
	Kind          command.Kind
	DispatchCount uint64
	ErrorCount    uint64
	TotalDuration time.Duration
	MaxDuration   time.Duration
}

// Metrics collects dispatch statistics.
type Metrics struct {
	byKind map[command.Kind]*CommandMetrics

	totalDispatches uint64
	totalErrors     uint64
	totalPanics     uint64
	totalDuration   time.Duration
}

// NewMetrics creates a new metrics collector.
func NewMetrics() *Metrics {
	return &Metrics{byKind: make(map[command.Kind]*CommandMetrics)}
}

// RecordDispatch records one dispatch.
func (m *Metrics) RecordDispatch(kind command.Kind, d time.Duration, err error) {
	m.totalDispatches++
	m.totalDuration += d

	cm := m.byKind[kind]
	if cm == nil {
		cm = &CommandMetrics{Kind: kind}
		m.byKind[kind] = cm
	}
	cm.DispatchCount++
	cm.TotalDuration += d
	cm.MaxDuration = max(cm.MaxDuration, d)
	if err != nil {
		m.totalErrors++
		cm.ErrorCount++
	}
}

// RecordPanic records a panic recovery.
func (m *Metrics) RecordPanic(kind command.Kind) {
	m.totalPanics++
}

// TotalDispatches returns the total number of dispatches.
func (m *Metrics) TotalDispatches() uint64 {
	return m.totalDispatches
}

// TotalErrors returns the number of dispatches that reported an error.
func (m *Metrics) TotalErrors() uint64 {
	return m.totalErrors
}

// TotalPanics returns the number of panics recovered.
func (m *Metrics) TotalPanics() uint64 {
	return m.totalPanics
}

// AverageDuration returns the average dispatch duration.
func (m *Metrics) AverageDuration() time.Duration {
	if m.totalDispatches == 0 {
		return 0
	}
	return m.totalDuration / time.Duration(m.totalDispatches)
}

// CommandStats returns a copy of the statistics for kind, or nil if it was
// never dispatched.
func (m *Metrics) CommandStats(kind command.Kind) *CommandMetrics {
	cm := m.byKind[kind]
	if cm == nil {
		return nil
	}
	c := *cm
	return &c
}

// Busiest returns up to n command statistics ordered by dispatch count,
// most dispatched first.
func (m *Metrics) Busiest(n int) []CommandMetrics {
	out := make([]CommandMetrics, 0, len(m.byKind))
	for _, cm := range m.byKind {
		out = append(out, *cm)
	}
	slices.SortFunc(out, func(a, b CommandMetrics) int {
		if c := cmp.Compare(b.DispatchCount, a.DispatchCount); c != 0 {
			return c
		}
		return cmp.Compare(a.Kind, b.Kind)
	})
	return out[:min(n, len(out))]
}

// Summary formats the totals and the five busiest commands on one line.
func (m *Metrics) Summary() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d dispatches, %d errors, %d panics, avg %s",
		m.totalDispatches, m.totalErrors, m.totalPanics, m.AverageDuration())
	for i, cm := range m.Busiest(5) {
		sep := ", "
		if i == 0 {
			sep = "; "
		}
		fmt.Fprintf(&sb, "%s%s=%d", sep, cm.Kind, cm.DispatchCount)
	}
	return sb.String()
}

package main

import (
	"fmt"
	"io"
	"time"
)

// / A simple stopwatch which returns the time
// / in seconds since Restart() was called.
type Stopwatch struct {
	started time.Time
}

func NewStopwatch() *Stopwatch {
	ret := Stopwatch{}
	ret.Restart()
	return &ret
}

// / Seconds since Restart() call.
func (s *Stopwatch) Elapsed() float64 {
	return time.Since(s.started).Seconds()
}

func (s *Stopwatch) Restart() {
	s.started = time.Now()
}

// / Set by "-d stats"; nil when metrics are off.
var GMetrics *Metrics = nil

type Metric struct {
	name string
	/// Number of times we've hit the code path.
	count int
	/// Total time we've spent on the code path.
	sum time.Duration
}

type Metrics struct {
	metrics []*Metric
}

// GetMetric returns the metric called name, creating it on first use.
func (m *Metrics) GetMetric(name string) *Metric {
	for _, metric := range m.metrics {
		if metric.name == name {
			return metric
		}
	}
	metric := Metric{}
	metric.name = name
	m.metrics = append(m.metrics, &metric)
	return &metric
}

// MetricRecord runs fn, charging its time to the metric called name when
// metrics are enabled.
func MetricRecord(name string, fn func()) {
	if GMetrics == nil {
		fn()
		return
	}
	metric := GMetrics.GetMetric(name)
	start := time.Now()
	fn()
	metric.count++
	metric.sum += time.Since(start)
}

// / Print a summary report to w.
func (m *Metrics) Report(w io.Writer) {
	width := 0
	for _, metric := range m.metrics {
		width = max(len(metric.name), width)
	}

	fmt.Fprintf(w, "%-*s\t%-6s\t%-9s\t%s\n", width,
		"metric", "count", "avg (us)", "total (ms)")
	for _, metric := range m.metrics {
		micros := metric.sum.Microseconds()
		total := float64(micros) / float64(1000)
		avg := float64(micros) / float64(metric.count)
		fmt.Fprintf(w, "%-*s\t%-6d\t%-8.1f\t%.1f\n", width, metric.name, metric.count, avg, total)
	}
}

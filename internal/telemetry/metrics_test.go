package telemetry

import (
	"strings"
	"sync"
	"testing"
	"time"
)

func TestCounters(t *testing.T) {
	m := NewMetricsCollector()
	m.IncrementCounter(MetricRequests, 2)
	m.IncrementCounter(MetricRequests, 3)
	m.IncrementCounter(MetricFailurePrefix+"empty_input", 1)
	m.IncrementCounter(MetricFailurePrefix+"language_unsupported", 4)

	if got := m.GetCounter(MetricRequests); got != 5 {
		t.Errorf("GetCounter() = %d, want 5", got)
	}

	failures := m.GetCountersWithPrefix(MetricFailurePrefix)
	if len(failures) != 2 || failures["empty_input"] != 1 || failures["language_unsupported"] != 4 {
		t.Errorf("GetCountersWithPrefix() = %v", failures)
	}
}

func TestTimers(t *testing.T) {
	m := NewMetricsCollector()
	if got := m.GetTimerAverage(MetricResponseTime); got != 0 {
		t.Errorf("GetTimerAverage() on empty timer = %v, want 0", got)
	}

	for i := 1; i <= 20; i++ {
		m.RecordTimer(MetricResponseTime, time.Duration(i)*time.Millisecond)
	}

	if got, want := m.GetTimerAverage(MetricResponseTime), 10500*time.Microsecond; got != want {
		t.Errorf("GetTimerAverage() = %v, want %v", got, want)
	}
	if got, want := m.GetTimerP95(MetricResponseTime), 20*time.Millisecond; got != want {
		t.Errorf("GetTimerP95() = %v, want %v", got, want)
	}
}

func TestTimerWindow(t *testing.T) {
	m := NewMetricsCollector()
	for i := 0; i < 150; i++ {
		m.RecordTimer(MetricResponseTime, time.Second)
	}
	m.RecordTimer(MetricResponseTime, 0)

	// 100 samples are kept: 99 seconds and one zero.
	if got, want := m.GetTimerAverage(MetricResponseTime), 990*time.Millisecond; got != want {
		t.Errorf("GetTimerAverage() = %v, want %v", got, want)
	}
}

func TestReportAndReset(t *testing.T) {
	m := NewMetricsCollector()
	m.IncrementCounter(MetricRequests, 1)
	m.SetGauge(MetricSentencesIn, 7)
	m.RecordTimer(MetricResponseTime, time.Millisecond)
	m.RecordTimestamp(MetricLastRequest)

	report := m.GetReport()
	for _, want := range []string{MetricRequests, MetricSentencesIn, MetricResponseTime, MetricLastRequest} {
		if !strings.Contains(report, want) {
			t.Errorf("GetReport() does not mention %s", want)
		}
	}

	m.Reset()
	if m.GetCounter(MetricRequests) != 0 || m.GetGauge(MetricSentencesIn) != 0 || m.GetTimeSince(MetricLastRequest) != 0 {
		t.Errorf("Reset() left metrics behind")
	}
}

func TestConcurrentUpdates(t *testing.T) {
	m := NewMetricsCollector()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			m.IncrementCounter(MetricRequests, 1)
			m.RecordTimer(MetricResponseTime, time.Millisecond)
			_ = m.GetReport()
		}()
	}
	wg.Wait()

	if got := m.GetCounter(MetricRequests); got != 50 {
		t.Errorf("GetCounter() = %d, want 50", got)
	}
}

package metrics

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"
)

// Samples kept per category.
const maxSamples = 100

// Categories instrumented by the daemon loop.
const (
	AudioProcessing  = "audio_processing_time"
	VisionProcessing = "vision_processing_time"
	LLMResponse      = "llm_response_time"
	TotalResponse    = "total_response_time"
)

// Monitor is a rolling per-category buffer of stage durations. Stages record
// explicitly via Observe; nothing is wrapped implicitly.
type Monitor struct {
	mu      sync.Mutex
	samples map[string][]time.Duration
}

func NewMonitor() *Monitor {
	return &Monitor{samples: make(map[string][]time.Duration)}
}

func (m *Monitor) Observe(category string, d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s := append(m.samples[category], d)
	if len(s) > maxSamples {
		s = s[len(s)-maxSamples:]
	}
	m.samples[category] = s
}

// Since records the time elapsed from start under category.
func (m *Monitor) Since(category string, start time.Time) {
	m.Observe(category, time.Since(start))
}

type Stat struct {
	Average time.Duration
	Count   int
	Latest  time.Duration
}

func (m *Monitor) Report() map[string]Stat {
	m.mu.Lock()
	defer m.mu.Unlock()

	report := make(map[string]Stat, len(m.samples))
	for category, s := range m.samples {
		if len(s) == 0 {
			continue
		}
		var total time.Duration
		for _, d := range s {
			total += d
		}
		report[category] = Stat{
			Average: total / time.Duration(len(s)),
			Count:   len(s),
			Latest:  s[len(s)-1],
		}
	}
	return report
}

// String renders the shutdown report, one line per category.
func (m *Monitor) String() string {
	report := m.Report()

	categories := make([]string, 0, len(report))
	for c := range report {
		categories = append(categories, c)
	}
	sort.Strings(categories)

	var sb strings.Builder
	for _, c := range categories {
		s := report[c]
		fmt.Fprintf(&sb, "%s: %.3fs avg (%d calls)\n", c, s.Average.Seconds(), s.Count)
	}
	return sb.String()
}

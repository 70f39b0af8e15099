package vision

import (
	"context"
	log "log/slog"
	"sync"
	"time"
)

// UnknownApp is reported when no window metadata is available.
const UnknownApp = "Unknown"

// Inspector extracts best-effort context from the desktop.
type Inspector interface {
	CaptureText(ctx context.Context) (string, error)
	ActiveApp(ctx context.Context) (string, error)
}

// Sampler caches the last (screen text, app) pair and refreshes it at most
// once per interval. Acquisition failures substitute empty/sentinel values;
// the caller never sees an error.
type Sampler struct {
	inspector Inspector
	interval  time.Duration
	now       func() time.Time

	mu       sync.Mutex
	text     string
	app      string
	lastScan time.Time
}

func NewSampler(inspector Inspector, interval time.Duration) *Sampler {
	return &Sampler{
		inspector: inspector,
		interval:  interval,
		now:       time.Now,
		app:       UnknownApp,
	}
}

// Sample returns the current (screen text, app) pair, re-inspecting the
// desktop only when the cached pair has expired. Values are returned by copy.
func (s *Sampler) Sample(ctx context.Context) (string, string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if !s.lastScan.IsZero() && now.Sub(s.lastScan) < s.interval {
		return s.text, s.app
	}
	s.lastScan = now

	text, err := s.inspector.CaptureText(ctx)
	if err != nil {
		log.Warn("screen capture failed", "err", err)
		text = ""
	}

	app, err := s.inspector.ActiveApp(ctx)
	if err != nil || app == "" {
		if err != nil {
			log.Warn("active app lookup failed", "err", err)
		}
		app = UnknownApp
	}

	s.text, s.app = text, app
	return s.text, s.app
}

package vision

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeInspector struct {
	text     string
	app      string
	err      error
	captures int
}

func (f *fakeInspector) CaptureText(context.Context) (string, error) {
	f.captures++
	return f.text, f.err
}

func (f *fakeInspector) ActiveApp(context.Context) (string, error) {
	return f.app, f.err
}

func TestSamplerCachesWithinInterval(t *testing.T) {
	in := &fakeInspector{text: "screen text", app: "Chrome"}
	s := NewSampler(in, 10*time.Second)

	clock := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return clock }

	text, app := s.Sample(context.Background())
	assert.Equal(t, "screen text", text)
	assert.Equal(t, "Chrome", app)
	assert.Equal(t, 1, in.captures)

	// Within the interval the cached pair comes back, even if the desktop
	// changed underneath.
	in.text, in.app = "new text", "Firefox"
	clock = clock.Add(5 * time.Second)
	text, app = s.Sample(context.Background())
	assert.Equal(t, "screen text", text)
	assert.Equal(t, "Chrome", app)
	assert.Equal(t, 1, in.captures)

	// Past the interval the cache is refreshed.
	clock = clock.Add(6 * time.Second)
	text, app = s.Sample(context.Background())
	assert.Equal(t, "new text", text)
	assert.Equal(t, "Firefox", app)
	assert.Equal(t, 2, in.captures)
}

func TestSamplerSubstitutesSentinels(t *testing.T) {
	in := &fakeInspector{err: errors.New("x11 went away")}
	s := NewSampler(in, time.Second)

	text, app := s.Sample(context.Background())
	assert.Equal(t, "", text)
	assert.Equal(t, UnknownApp, app)
}

func TestSamplerReportsUnknownForEmptyApp(t *testing.T) {
	in := &fakeInspector{text: "something", app: ""}
	s := NewSampler(in, time.Second)

	_, app := s.Sample(context.Background())
	assert.Equal(t, UnknownApp, app)
}

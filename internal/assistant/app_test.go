package assistant

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cluely/internal/llm"
	"cluely/internal/metrics"
	"cluely/internal/notify"
	"cluely/internal/prompt"
	"cluely/internal/trigger"
)

type fakeHearer struct {
	utterances []string
	calls      int
}

func (f *fakeHearer) Listen(_ context.Context, _ time.Duration, _ float64) string {
	if f.calls >= len(f.utterances) {
		return ""
	}
	u := f.utterances[f.calls]
	f.calls++
	return u
}

type fakeScreen struct {
	text string
	app  string
}

func (f *fakeScreen) Sample(context.Context) (string, string) { return f.text, f.app }

type fakeGen struct {
	reply   string
	fail    bool
	prompts []string
}

func (f *fakeGen) Generate(_ context.Context, p string, _ int) string {
	f.prompts = append(f.prompts, p)
	if f.fail {
		return llm.FailurePrefix + "backend down"
	}
	return f.reply
}

type recordingNotifier struct {
	mu        sync.Mutex
	responses []notify.DisplayRequest
	errors    []string
}

func (r *recordingNotifier) Dispatch(req notify.DisplayRequest) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.responses = append(r.responses, req)
}

func (r *recordingNotifier) DispatchError(text string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.errors = append(r.errors, text)
}

func newTestApp(h Hearer, s Screen, g Generator, n Notifier) *App {
	comp := prompt.NewComposer()
	comp.Now = func() time.Time {
		return time.Date(2025, time.March, 14, 15, 9, 0, 0, time.UTC)
	}
	opts := Options{
		ListenDuration:   5 * time.Second,
		SilenceThreshold: 0.01,
		MaxTokens:        150,
		AutoDismissTime:  10,
	}
	return New(opts, trigger.NewClassifier(), comp, h, s, g, n, metrics.NewMonitor())
}

func TestCycleSocialMediaEndToEnd(t *testing.T) {
	hearer := &fakeHearer{utterances: []string{"cluely, what should I tweet about this"}}
	screen := &fakeScreen{text: "Home / Twitter - trending today", app: "Twitter"}
	gen := &fakeGen{reply: "Post a short take on the trend."}
	sink := &recordingNotifier{}

	app := newTestApp(hearer, screen, gen, sink)
	app.cycle(context.Background())

	require.Len(t, sink.responses, 1)
	resp := sink.responses[0]
	assert.Equal(t, trigger.SocialMedia, resp.Category)
	assert.Equal(t, "Post a short take on the trend.", resp.Text)
	assert.Equal(t, 10, resp.AutoDismiss)
	assert.False(t, resp.Interrupt)
	assert.Empty(t, sink.errors)

	require.Len(t, gen.prompts, 1)
	assert.Contains(t, gen.prompts[0], "trending today")
	assert.Contains(t, gen.prompts[0], "tweet")
}

func TestCycleSilenceIsNoop(t *testing.T) {
	hearer := &fakeHearer{}
	gen := &fakeGen{reply: "should never appear"}
	sink := &recordingNotifier{}

	app := newTestApp(hearer, &fakeScreen{}, gen, sink)
	app.cycle(context.Background())

	assert.Empty(t, sink.responses)
	assert.Empty(t, sink.errors)
	assert.Empty(t, gen.prompts)
}

func TestCycleIgnoredUtterance(t *testing.T) {
	hearer := &fakeHearer{utterances: []string{"just talking to a coworker"}}
	gen := &fakeGen{reply: "should never appear"}
	sink := &recordingNotifier{}

	app := newTestApp(hearer, &fakeScreen{app: "Unknown"}, gen, sink)
	app.cycle(context.Background())

	assert.Empty(t, sink.responses)
	assert.Empty(t, gen.prompts)
}

func TestCycleBackendFailureGoesToErrorPath(t *testing.T) {
	hearer := &fakeHearer{utterances: []string{"cluely suggest something"}}
	gen := &fakeGen{fail: true}
	sink := &recordingNotifier{}

	app := newTestApp(hearer, &fakeScreen{app: "Unknown"}, gen, sink)
	app.cycle(context.Background())

	assert.Empty(t, sink.responses)
	require.Len(t, sink.errors, 1)
	assert.Equal(t, "backend down", sink.errors[0])
}

func TestCycleReminderPersists(t *testing.T) {
	hearer := &fakeHearer{utterances: []string{"remind me to call mom at 3pm"}}
	gen := &fakeGen{reply: "Reminder noted: call mom at 3pm."}
	sink := &recordingNotifier{}

	app := newTestApp(hearer, &fakeScreen{app: "Unknown"}, gen, sink)
	app.cycle(context.Background())

	require.Len(t, sink.responses, 1)
	resp := sink.responses[0]
	assert.Equal(t, trigger.Reminder, resp.Category)
	assert.Equal(t, 0, resp.AutoDismiss, "reminders persist until dismissed")

	require.Len(t, gen.prompts, 1)
	assert.Contains(t, gen.prompts[0], "call mom at 3pm")
}

func TestCycleUrgentUtteranceInterrupts(t *testing.T) {
	hearer := &fakeHearer{utterances: []string{"cluely help me, this is urgent"}}
	gen := &fakeGen{reply: "On it."}
	sink := &recordingNotifier{}

	app := newTestApp(hearer, &fakeScreen{app: "Unknown"}, gen, sink)
	app.cycle(context.Background())

	require.Len(t, sink.responses, 1)
	resp := sink.responses[0]
	assert.True(t, resp.Interrupt)
	assert.Equal(t, 0, resp.AutoDismiss, "high priority persists")
}

func TestRunStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	app := newTestApp(&fakeHearer{}, &fakeScreen{}, &fakeGen{}, &recordingNotifier{})

	done := make(chan struct{})
	go func() {
		app.Run(ctx)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not stop after cancellation")
	}
}

func TestTriggerDoesNotBlock(t *testing.T) {
	app := newTestApp(&fakeHearer{}, &fakeScreen{}, &fakeGen{}, &recordingNotifier{})
	for i := 0; i < 5; i++ {
		app.Trigger()
	}
}

type panickyScreen struct{}

func (panickyScreen) Sample(context.Context) (string, string) { panic("inspector exploded") }

func TestCycleRecoversFromPanic(t *testing.T) {
	hearer := &fakeHearer{utterances: []string{"cluely suggest something", "cluely suggest something"}}
	sink := &recordingNotifier{}

	app := newTestApp(hearer, panickyScreen{}, &fakeGen{reply: "x"}, sink)
	assert.NotPanics(t, func() { app.cycle(context.Background()) })
}

func TestSelfTestReportsBackendFailure(t *testing.T) {
	app := newTestApp(&fakeHearer{}, &fakeScreen{}, &fakeGen{fail: true}, &recordingNotifier{})
	assert.Error(t, app.SelfTest(context.Background()))

	app = newTestApp(&fakeHearer{}, &fakeScreen{}, &fakeGen{reply: "ready"}, &recordingNotifier{})
	assert.NoError(t, app.SelfTest(context.Background()))
}

func TestCycleQuestionUsesScreenContext(t *testing.T) {
	hearer := &fakeHearer{utterances: []string{"cluely what is a goroutine"}}
	screen := &fakeScreen{text: strings.Repeat("runtime scheduler docs ", 3), app: "Unknown"}
	gen := &fakeGen{reply: "A goroutine is a lightweight thread."}
	sink := &recordingNotifier{}

	app := newTestApp(hearer, screen, gen, sink)
	app.cycle(context.Background())

	require.Len(t, sink.responses, 1)
	assert.Equal(t, trigger.Question, sink.responses[0].Category)
	require.Len(t, gen.prompts, 1)
	assert.Contains(t, gen.prompts[0], "runtime scheduler docs")
}

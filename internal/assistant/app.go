package assistant

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"cluely/internal/llm"
	"cluely/internal/metrics"
	"cluely/internal/notify"
	"cluely/internal/prompt"
	"cluely/internal/trigger"
)

// Hearer produces one utterance per call, or "" when nothing was said.
type Hearer interface {
	Listen(ctx context.Context, duration time.Duration, silenceThreshold float64) string
}

// Screen reports the current on-screen text and active application.
type Screen interface {
	Sample(ctx context.Context) (text, app string)
}

// Generator turns a prompt into a completion, marking failures in-band.
type Generator interface {
	Generate(ctx context.Context, prompt string, maxTokens int) string
}

// Notifier receives finished responses for display.
type Notifier interface {
	Dispatch(req notify.DisplayRequest)
	DispatchError(text string)
}

type Options struct {
	ListenDuration   time.Duration
	SilenceThreshold float64
	MaxTokens        int
	AutoDismissTime  int // seconds; applied unless the response must persist
}

// App runs the listen -> classify -> compose -> generate -> display loop.
type App struct {
	opts       Options
	classifier *trigger.Classifier
	composer   *prompt.Composer
	hearer     Hearer
	screen     Screen
	gen        Generator
	notifier   Notifier
	monitor    *metrics.Monitor

	wake chan struct{}
}

func New(opts Options, cls *trigger.Classifier, comp *prompt.Composer, h Hearer, s Screen, g Generator, n Notifier, m *metrics.Monitor) *App {
	return &App{
		opts:       opts,
		classifier: cls,
		composer:   comp,
		hearer:     h,
		screen:     s,
		gen:        g,
		notifier:   n,
		monitor:    m,
		wake:       make(chan struct{}, 1),
	}
}

// Trigger skips the pause before the next listen cycle. Safe to call from
// any goroutine; extra triggers while one is pending are dropped.
func (a *App) Trigger() {
	select {
	case a.wake <- struct{}{}:
	default:
	}
}

// Run loops until ctx is cancelled. A panic inside one cycle is logged and
// the loop continues with the next one.
func (a *App) Run(ctx context.Context) {
	slog.Info("assistant loop started",
		"listen_duration", a.opts.ListenDuration,
		"silence_threshold", a.opts.SilenceThreshold,
	)

	for {
		if ctx.Err() != nil {
			slog.Info("assistant loop stopped")
			return
		}

		a.cycle(ctx)

		select {
		case <-ctx.Done():
			slog.Info("assistant loop stopped")
			return
		case <-a.wake:
		case <-time.After(100 * time.Millisecond):
		}
	}
}

func (a *App) cycle(ctx context.Context) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("cycle panicked", "panic", r)
		}
	}()

	total := time.Now()

	t := time.Now()
	utterance := a.hearer.Listen(ctx, a.opts.ListenDuration, a.opts.SilenceThreshold)
	a.monitor.Since(metrics.AudioProcessing, t)
	if utterance == "" {
		return
	}

	t = time.Now()
	screenText, app := a.screen.Sample(ctx)
	a.monitor.Since(metrics.VisionProcessing, t)

	if !a.classifier.ShouldRespond(utterance, screenText, app) {
		slog.Debug("ignored", "utterance", utterance, "app", app)
		return
	}

	intent := a.classifier.Route(utterance, screenText, app)
	pri := trigger.PriorityFor(utterance)
	interrupt := trigger.ShouldInterrupt(utterance, pri)
	slog.Info("responding",
		"intent", intent.Descriptor(),
		"priority", pri,
		"interrupt", interrupt,
		"app", app,
	)

	var p string
	switch intent.Category {
	case trigger.Reminder:
		p = a.composer.BuildReminder(intent.Payload)
	case trigger.Question:
		p = a.composer.BuildQuestion(utterance, screenText, app)
	case trigger.Creative:
		p = a.composer.BuildCreative(utterance, screenText, app)
	default:
		p = a.composer.Build(utterance, screenText, app, intent.Category)
	}

	t = time.Now()
	out := a.gen.Generate(ctx, p, a.opts.MaxTokens)
	a.monitor.Since(metrics.LLMResponse, t)

	if llm.IsFailure(out) {
		a.notifier.DispatchError(strings.TrimPrefix(out, llm.FailurePrefix))
		return
	}

	dismiss := a.opts.AutoDismissTime
	if pri == trigger.High || intent.Category == trigger.Reminder {
		dismiss = 0
	}
	a.notifier.Dispatch(notify.NewResponse(out, intent.Category, dismiss, interrupt))
	a.monitor.Since(metrics.TotalResponse, total)
}

// SelfTest exercises each stage once and reports what worked. It returns an
// error only when the completion backend failed; a quiet mic or blank screen
// is reported but not fatal.
func (a *App) SelfTest(ctx context.Context) error {
	fmt.Println("checking microphone...")
	heard := a.hearer.Listen(ctx, a.opts.ListenDuration, a.opts.SilenceThreshold)
	if heard == "" {
		fmt.Println("  mic: silence (speak during the capture window to verify transcription)")
	} else {
		fmt.Printf("  mic: heard %q\n", heard)
	}

	fmt.Println("checking screen capture...")
	screenText, app := a.screen.Sample(ctx)
	fmt.Printf("  screen: %d chars of text, active app %q\n", len(screenText), app)

	fmt.Println("checking completion backend...")
	out := a.gen.Generate(ctx, "Reply with the single word: ready", 10)
	if llm.IsFailure(out) {
		fmt.Printf("  llm: FAILED (%s)\n", strings.TrimPrefix(out, llm.FailurePrefix))
		return fmt.Errorf("completion backend failed")
	}
	fmt.Printf("  llm: %q\n", out)

	fmt.Println("all checks done")
	return nil
}

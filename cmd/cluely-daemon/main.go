package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	cli "github.com/spf13/pflag"

	"github.com/lmittmann/tint"
	log "log/slog"

	"cluely/internal/assistant"
	"cluely/internal/audio"
	"cluely/internal/config"
	"cluely/internal/ipc"
	"cluely/internal/llm"
	"cluely/internal/metrics"
	"cluely/internal/notify"
	"cluely/internal/prompt"
	"cluely/internal/trigger"
	"cluely/internal/vision"
	"cluely/pkg/audioconv"
	"cluely/pkg/stt"
)

var logLevelMap = map[string]log.Level{
	"debug": log.LevelDebug,
	"info":  log.LevelInfo,
	"warn":  log.LevelWarn,
	"error": log.LevelError,
}

const usage = `usage: cluely-daemon [flags] <mode>

modes:
  run                     start the ambient assistant loop
  test                    exercise mic, screen and LLM once, then exit
  config                  print the active configuration
  config set <key> <val>  update one setting and save

flags:`

func main() {
	envFile := cli.StringP("env", "e", ".env", "Env file path")
	cfgPath := cli.StringP("config", "c", config.DefaultPath, "Config file path")
	logLevel := cli.StringP("log", "l", "info", "Log level")
	proxyAddr := cli.StringP("proxy", "p", "", "SOCKS proxy for the remote LLM, e.g. 127.0.0.1:8888")
	modelPath := cli.StringP("model", "m", "third_party/whisper.cpp/models/ggml-base.en.bin", "Whisper model path")
	wavFile := cli.String("wav", "", "In test mode, transcribe this WAV file instead of the mic")
	cli.Usage = func() {
		fmt.Fprintln(os.Stderr, usage)
		cli.PrintDefaults()
	}
	cli.Parse()

	log.SetDefault(log.New(tint.NewHandler(os.Stdout, &tint.Options{
		Level: logLevelMap[*logLevel],
	})))

	godotenv.Load(*envFile)

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Error("Failed to load config", "path", *cfgPath, "err", err)
		os.Exit(1)
	}

	switch cli.Arg(0) {
	case "config":
		runConfig(cfg)
	case "test":
		runTest(cfg, *modelPath, *proxyAddr, *wavFile)
	case "run", "":
		runDaemon(cfg, *modelPath, *proxyAddr)
	default:
		cli.Usage()
		os.Exit(2)
	}
}

func runConfig(cfg *config.Config) {
	if cli.Arg(1) == "set" {
		key, val := cli.Arg(2), cli.Arg(3)
		if key == "" || val == "" {
			fmt.Fprintln(os.Stderr, "usage: cluely-daemon config set <key> <value>")
			os.Exit(2)
		}
		if err := cfg.Set(key, coerce(val)); err != nil {
			log.Error("Failed to update config", "key", key, "err", err)
			os.Exit(1)
		}
		fmt.Printf("%s = %s\n", key, val)
		return
	}
	fmt.Println(cfg.Dump())
}

// coerce turns a CLI string into the JSON type it reads as, so numeric and
// boolean settings are stored as numbers and booleans.
func coerce(val string) any {
	if n, err := strconv.Atoi(val); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(val, 64); err == nil {
		return f
	}
	switch val {
	case "true":
		return true
	case "false":
		return false
	}
	return val
}

func runTest(cfg *config.Config, modelPath, proxyAddr, wavFile string) {
	log.Info("Running self test")

	app, shutdown, err := buildApp(cfg, modelPath, proxyAddr)
	if err != nil {
		log.Error("Self test setup failed", "err", err)
		os.Exit(1)
	}
	defer shutdown()

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	if wavFile != "" {
		if err := replayWAV(ctx, modelPath, wavFile); err != nil {
			log.Error("WAV replay failed", "file", wavFile, "err", err)
			os.Exit(1)
		}
	}

	if err := app.SelfTest(ctx); err != nil {
		os.Exit(1)
	}
}

// replayWAV feeds a recorded file through transcription and classification,
// printing what the daemon would have decided. Handy for tuning trigger
// phrases without talking at the mic.
func replayWAV(ctx context.Context, modelPath, path string) error {
	pcm, err := audioconv.DecodeWAV(path, 0)
	if err != nil {
		return err
	}

	tr, err := stt.NewTranscriber(modelPath, stt.Options{})
	if err != nil {
		return err
	}
	defer tr.Close()

	text, err := tr.TranscribePCM(ctx, pcm)
	if err != nil {
		return err
	}
	fmt.Printf("transcript: %q\n", text)

	cls := trigger.NewClassifier()
	if !cls.ShouldRespond(text, "", vision.UnknownApp) {
		fmt.Println("decision: ignore")
		return nil
	}
	in := cls.Route(text, "", vision.UnknownApp)
	fmt.Printf("decision: respond (%s, priority %s)\n", in.Descriptor(), trigger.PriorityFor(text))
	return nil
}

func runDaemon(cfg *config.Config, modelPath, proxyAddr string) {
	log.Info("Booting up")

	app, shutdown, err := buildApp(cfg, modelPath, proxyAddr)
	if err != nil {
		log.Error("Boot failed", "err", err)
		os.Exit(1)
	}
	defer shutdown()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := ipc.StartServer(func(msg ipc.ControlMessage) {
		switch msg.Cmd {
		case ipc.CmdTrigger:
			app.Trigger()
		case ipc.CmdStop:
			stop()
		default:
			log.Warn("Unknown command", "cmd", msg.Cmd)
		}
	}); err != nil {
		log.Error("Failed ipc server", "err", err)
		os.Exit(1)
	}

	log.Info("Boot up - successful")
	app.Run(ctx)
}

// buildApp assembles the full pipeline from configuration. The returned
// shutdown func releases audio devices and prints the timing report.
func buildApp(cfg *config.Config, modelPath, proxyAddr string) (*assistant.App, func(), error) {
	var cleanups []func()
	shutdown := func() {
		for i := len(cleanups) - 1; i >= 0; i-- {
			cleanups[i]()
		}
	}

	rec := audio.NewRecorder()
	if err := rec.Init(); err != nil {
		return nil, shutdown, fmt.Errorf("init audio: %w", err)
	}
	cleanups = append(cleanups, rec.Close)

	whisper, err := stt.NewTranscriber(modelPath, stt.Options{})
	if err != nil {
		shutdown()
		return nil, func() {}, fmt.Errorf("init whisper: %w", err)
	}
	cleanups = append(cleanups, func() { whisper.Close() })

	listener := &audio.Listener{
		Recorder: rec,
		STT:      whisper,
		DebugDir: cfg.String("audio.debug_dir", ""),
	}
	if cfg.Bool("audio.duck_playback", false) {
		listener.Ducker = audio.NewDucker([]string{"cluely"}, 20)
	}

	sampler := vision.NewSampler(
		vision.NewCommandInspector(),
		time.Duration(cfg.Int("vision.capture_interval", 10))*time.Second,
	)

	runner, err := buildRunner(cfg, proxyAddr)
	if err != nil {
		shutdown()
		return nil, func() {}, err
	}
	log.Info("Completion backend ready", "backend", runner.Backend())

	dispatcher := notify.NewDispatcher(buildSink(cfg), 8)
	cleanups = append(cleanups, dispatcher.Close)

	monitor := metrics.NewMonitor()
	cleanups = append(cleanups, func() {
		if report := monitor.String(); report != "" {
			fmt.Println(report)
		}
	})

	composer := prompt.NewComposer()
	classifier := trigger.NewClassifier(cfg.Strings("triggers.direct_activation")...)

	opts := assistant.Options{
		ListenDuration:   time.Duration(cfg.Int("audio.listen_duration", 5)) * time.Second,
		SilenceThreshold: cfg.Float("audio.silence_threshold", 0.01),
		MaxTokens:        cfg.Int("llm.max_tokens", 150),
		AutoDismissTime:  cfg.Int("ui.auto_dismiss_time", 10),
	}

	app := assistant.New(opts, classifier, composer, listener, sampler, runner, dispatcher, monitor)
	return app, shutdown, nil
}

func buildRunner(cfg *config.Config, proxyAddr string) (*llm.Runner, error) {
	var providers []llm.Provider

	if cfg.Bool("llm.use_local", true) {
		local, err := llm.NewOllama(
			cfg.String("llm.local_host", "http://localhost:11434"),
			cfg.String("llm.local_model", "llama3"),
		)
		if err != nil {
			log.Warn("Local backend unavailable", "err", err)
		} else {
			providers = append(providers, local)
		}
	}

	remote, err := llm.NewOpenAI(
		os.Getenv("OPENAI_API_KEY"),
		cfg.String("llm.model", "gpt-5-nano"),
		proxyAddr,
	)
	if err != nil {
		log.Warn("Remote backend unavailable", "err", err)
	} else {
		providers = append(providers, remote)
	}

	runner := llm.NewRunner(providers...)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := runner.Start(ctx); err != nil {
		if errors.Is(err, llm.ErrNoBackend) {
			return nil, fmt.Errorf("no completion backend: start ollama or set OPENAI_API_KEY")
		}
		return nil, err
	}
	return runner, nil
}

func buildSink(cfg *config.Config) notify.Sink {
	console := notify.NewConsoleSink(os.Stdout)
	if cfg.Bool("ui.console_only", false) {
		return console
	}

	chain := notify.Fallback{}
	if busURL := cfg.String("ui.bus_url", ""); busURL != "" {
		bus, err := notify.NewBusSink(busURL)
		if err != nil {
			log.Warn("Display bus unreachable", "url", busURL, "err", err)
		} else {
			chain = append(chain, bus)
		}
	}
	chime := notify.NewChime(cfg.String("ui.chime", ""))
	chain = append(chain, notify.NewDesktopSink(chime), console)
	return chain
}

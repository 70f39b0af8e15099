package audio

import (
	"context"
	log "log/slog"
	"strings"
	"time"
)

// Transcriber turns 16 kHz mono PCM into text.
type Transcriber interface {
	TranscribePCM(ctx context.Context, pcm []float32) (string, error)
}

// Listener is the transcription collaborator: it records one fixed window
// and returns the transcript. Silence and every acquisition failure come
// back as the empty string, never as an error.
type Listener struct {
	Recorder *Recorder
	STT      Transcriber
	Ducker   *Ducker // optional
	DebugDir string  // optional, keeps raw captures as WAV
}

func (l *Listener) Listen(ctx context.Context, duration time.Duration, silenceThreshold float64) string {
	if l.Ducker != nil {
		if err := l.Ducker.Duck(ctx); err != nil {
			log.Debug("duck failed", "err", err)
		}
		defer func() {
			if err := l.Ducker.Restore(context.WithoutCancel(ctx)); err != nil {
				log.Debug("unduck failed", "err", err)
			}
		}()
	}

	pcm, err := l.Recorder.Record(ctx, duration, silenceThreshold)
	if err != nil {
		if ctx.Err() == nil {
			log.Warn("audio capture failed", "err", err)
		}
		return ""
	}
	if len(pcm) == 0 {
		return ""
	}

	if l.DebugDir != "" {
		if err := writeDebugWAV(l.DebugDir, pcm); err != nil {
			log.Debug("debug dump failed", "err", err)
		}
	}

	text, err := l.STT.TranscribePCM(ctx, pcm)
	if err != nil {
		if ctx.Err() == nil {
			log.Warn("transcription failed", "err", err)
		}
		return ""
	}

	text = strings.TrimSpace(text)
	if text != "" {
		log.Info("heard", "text", text)
	}
	return text
}

package audio

import (
	"context"
	"math"
	"time"

	"github.com/gordonklaus/portaudio"
)

const (
	// Whisper wants mono 16 kHz float32.
	SampleRate = 16000
	frameSize  = 320 // 20ms
)

// Recorder captures fixed-duration microphone windows.
type Recorder struct{}

func NewRecorder() *Recorder { return &Recorder{} }

func (r *Recorder) Init() error {
	return portaudio.Initialize()
}

func (r *Recorder) Close() {
	portaudio.Terminate()
}

// Record captures duration worth of audio from the default input device. A
// window whose peak level stays below silenceThreshold is treated as silence
// and returned as nil samples.
func (r *Recorder) Record(ctx context.Context, duration time.Duration, silenceThreshold float64) ([]float32, error) {
	buf := make([]float32, frameSize)
	out := make([]float32, 0, int(duration.Seconds()*SampleRate))

	stream, err := portaudio.OpenDefaultStream(1, 0, SampleRate, len(buf), buf)
	if err != nil {
		return nil, err
	}
	defer stream.Close()

	if err := stream.Start(); err != nil {
		return nil, err
	}
	defer stream.Stop()

	frames := int(duration.Seconds() * SampleRate / frameSize)
	var peak float64

	for i := 0; i < frames; i++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		if err := stream.Read(); err != nil {
			return nil, err
		}
		for _, x := range buf {
			if a := math.Abs(float64(x)); a > peak {
				peak = a
			}
		}
		out = append(out, buf...)
	}

	if peak < silenceThreshold {
		return nil, nil
	}
	return out, nil
}

package audio

import (
	"context"
	"fmt"
	"os/exec"
	"regexp"
	"strconv"
	"strings"
	"sync"
)

var (
	indexRe   = regexp.MustCompile(`^Sink Input #(\d+)`)
	percentRe = regexp.MustCompile(`(\d+)\s*%`)
	appRe     = regexp.MustCompile(`application\.name = "(.*)"`)
)

type streamInfo struct {
	ID      int
	Volume  int
	AppName string
}

// Ducker lowers other applications' PulseAudio streams while the microphone
// is open, so playback does not drown out speech. Streams whose
// application.name is in selfNames are left alone.
type Ducker struct {
	mu        sync.Mutex
	active    bool
	selfNames []string
	original  map[int]int // id -> volume % before ducking
	minVolume int
}

func NewDucker(selfNames []string, minVolume int) *Ducker {
	if minVolume < 0 {
		minVolume = 0
	}
	if minVolume > 100 {
		minVolume = 100
	}
	return &Ducker{
		selfNames: append([]string(nil), selfNames...),
		original:  make(map[int]int),
		minVolume: minVolume,
	}
}

// Duck records current volumes and drops every foreign stream to minVolume.
// Calling it while already ducked is a no-op.
func (d *Ducker) Duck(ctx context.Context) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.active {
		return nil
	}

	streams, err := listStreams(ctx)
	if err != nil {
		return fmt.Errorf("list streams: %w", err)
	}

	d.original = make(map[int]int)
	for _, s := range streams {
		if d.isSelf(s) || s.Volume <= d.minVolume {
			continue
		}
		if err := setStreamVolume(ctx, s.ID, d.minVolume); err != nil {
			continue
		}
		d.original[s.ID] = s.Volume
	}

	d.active = true
	return nil
}

// Restore puts the saved volumes back.
func (d *Ducker) Restore(ctx context.Context) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.active {
		return nil
	}

	var firstErr error
	for id, vol := range d.original {
		if err := setStreamVolume(ctx, id, vol); err != nil && firstErr == nil {
			firstErr = err
		}
	}

	d.original = make(map[int]int)
	d.active = false
	return firstErr
}

func (d *Ducker) isSelf(s streamInfo) bool {
	for _, name := range d.selfNames {
		if strings.EqualFold(s.AppName, name) {
			return true
		}
	}
	return false
}

func setStreamVolume(ctx context.Context, id, percent int) error {
	return exec.CommandContext(ctx, "pactl", "set-sink-input-volume",
		strconv.Itoa(id), strconv.Itoa(percent)+"%").Run()
}

func listStreams(ctx context.Context) ([]streamInfo, error) {
	out, err := exec.CommandContext(ctx, "pactl", "list", "sink-inputs").Output()
	if err != nil {
		return nil, err
	}
	return parseStreams(string(out)), nil
}

func parseStreams(out string) []streamInfo {
	var (
		streams []streamInfo
		cur     *streamInfo
	)
	for _, line := range strings.Split(out, "\n") {
		trimmed := strings.TrimSpace(line)

		if m := indexRe.FindStringSubmatch(trimmed); m != nil {
			if cur != nil {
				streams = append(streams, *cur)
			}
			id, _ := strconv.Atoi(m[1])
			cur = &streamInfo{ID: id, Volume: 100}
			continue
		}
		if cur == nil {
			continue
		}
		if strings.HasPrefix(trimmed, "Volume:") {
			if m := percentRe.FindStringSubmatch(trimmed); m != nil {
				cur.Volume, _ = strconv.Atoi(m[1])
			}
			continue
		}
		if m := appRe.FindStringSubmatch(trimmed); m != nil {
			cur.AppName = m[1]
		}
	}
	if cur != nil {
		streams = append(streams, *cur)
	}
	return streams
}

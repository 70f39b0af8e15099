package notify

import (
	"fmt"
	log "log/slog"
	"os/exec"
	"strconv"
)

// DesktopSink renders popups through notify-send. It is expected to sit in
// front of a ConsoleSink in a Fallback chain; any exec failure surfaces as an
// error so the chain can take over.
type DesktopSink struct {
	chime *Chime // optional, nil disables the sound
}

func NewDesktopSink(chime *Chime) *DesktopSink {
	return &DesktopSink{chime: chime}
}

func (s *DesktopSink) Display(req DisplayRequest) error {
	if s.chime != nil {
		go func() {
			if err := s.chime.Play(); err != nil {
				log.Debug("chime failed", "err", err)
			}
		}()
	}

	urgency := "normal"
	if req.Interrupt || req.IsError {
		urgency = "critical"
	}

	// notify-send takes the expiry in milliseconds; 0 keeps the popup up.
	args := []string{
		"--app-name=Cluely",
		"--urgency=" + urgency,
		"--expire-time=" + strconv.Itoa(req.AutoDismiss*1000),
		req.Icon() + " " + req.Title,
		req.Text,
	}

	if err := exec.Command("notify-send", args...).Run(); err != nil {
		return fmt.Errorf("notify-send: %w", err)
	}
	return nil
}

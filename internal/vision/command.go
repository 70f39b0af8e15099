package vision

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// CommandInspector shells out to common desktop tooling: a screenshot tool
// plus tesseract for OCR, and xdotool for the focused window title. Every
// result is best effort.
type CommandInspector struct{}

func NewCommandInspector() *CommandInspector { return &CommandInspector{} }

var screenshotTools = [][]string{
	{"gnome-screenshot", "-f"},
	{"scrot", "-o"},
	{"grim"},
}

func (i *CommandInspector) CaptureText(ctx context.Context) (string, error) {
	dir, err := os.MkdirTemp("", "cluely-screen-*")
	if err != nil {
		return "", err
	}
	defer os.RemoveAll(dir)

	img := filepath.Join(dir, "screen.png")
	if err := screenshot(ctx, img); err != nil {
		return "", err
	}

	// tesseract writes <base>.txt next to its output base.
	base := filepath.Join(dir, "screen")
	if out, err := exec.CommandContext(ctx, "tesseract", img, base).CombinedOutput(); err != nil {
		return "", fmt.Errorf("tesseract: %v: %s", err, bytes.TrimSpace(out))
	}

	data, err := os.ReadFile(base + ".txt")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

func screenshot(ctx context.Context, path string) error {
	lastErr := errors.New("no screenshot tool available")
	for _, tool := range screenshotTools {
		if _, err := exec.LookPath(tool[0]); err != nil {
			continue
		}
		args := append(append([]string(nil), tool[1:]...), path)
		if err := exec.CommandContext(ctx, tool[0], args...).Run(); err != nil {
			lastErr = fmt.Errorf("%s: %w", tool[0], err)
			continue
		}
		return nil
	}
	return lastErr
}

func (i *CommandInspector) ActiveApp(ctx context.Context) (string, error) {
	out, err := exec.CommandContext(ctx, "xdotool", "getactivewindow", "getwindowname").Output()
	if err != nil {
		return "", fmt.Errorf("xdotool: %w", err)
	}
	name := strings.TrimSpace(string(out))
	if name == "" {
		return "", errors.New("empty window name")
	}
	return name, nil
}

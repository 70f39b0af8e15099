package notify

import (
	"github.com/google/uuid"

	"cluely/internal/trigger"
)

// DisplayRequest is the message the core hands off to whatever owns
// rendering. AutoDismiss is in seconds; 0 keeps the popup until dismissed.
type DisplayRequest struct {
	ID          string
	Title       string
	Text        string
	Category    trigger.Category
	AutoDismiss int
	Interrupt   bool
	IsError     bool
}

// NewResponse builds a request for generated content.
func NewResponse(text string, cat trigger.Category, autoDismiss int, interrupt bool) DisplayRequest {
	return DisplayRequest{
		ID:          uuid.NewString(),
		Title:       defaultTitle(cat),
		Text:        text,
		Category:    cat,
		AutoDismiss: autoDismiss,
		Interrupt:   interrupt,
	}
}

// NewError builds a request for the error-display path. Errors are short
// lived on screen.
func NewError(text string) DisplayRequest {
	return DisplayRequest{
		ID:          uuid.NewString(),
		Title:       "Cluely Error",
		Text:        text,
		Category:    trigger.Suggestion,
		AutoDismiss: 5,
		IsError:     true,
	}
}

func defaultTitle(cat trigger.Category) string {
	if cat == trigger.Reminder {
		return "Cluely Reminder"
	}
	return "Cluely Suggestion"
}

// Icon is the glyph shown next to the popup title.
func (r DisplayRequest) Icon() string {
	if r.IsError {
		return "❌"
	}
	switch r.Category {
	case trigger.Reminder:
		return "⏰"
	case trigger.Question:
		return "❓"
	case trigger.Action:
		return "⚡"
	case trigger.Creative:
		return "🎨"
	case trigger.SocialMedia:
		return "📱"
	case trigger.Communication:
		return "💬"
	case trigger.Writing:
		return "📝"
	case trigger.WebBrowsing:
		return "🌐"
	case trigger.Development:
		return "💻"
	default:
		return "💡"
	}
}

// Sink renders display requests. Implementations must degrade gracefully:
// the daemon runs unattended and a failed popup must not take the loop down.
type Sink interface {
	Display(req DisplayRequest) error
}

// Fallback tries each sink in order until one succeeds.
type Fallback []Sink

func (f Fallback) Display(req DisplayRequest) error {
	var err error
	for _, s := range f {
		if err = s.Display(req); err == nil {
			return nil
		}
	}
	return err
}

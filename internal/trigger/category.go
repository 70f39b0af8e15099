package trigger

// Category is the response-type label shared by the prompt composer and the
// notification sink. The set is closed; mapping tables switch over it
// exhaustively.
type Category int

const (
	Suggestion Category = iota
	SocialMedia
	Communication
	Writing
	WebBrowsing
	Development
	Reminder
	Question
	Action
	Creative
)

func (c Category) String() string {
	switch c {
	case SocialMedia:
		return "social_media"
	case Communication:
		return "communication"
	case Writing:
		return "writing"
	case WebBrowsing:
		return "web_browsing"
	case Development:
		return "development"
	case Reminder:
		return "reminder"
	case Question:
		return "question"
	case Action:
		return "action"
	case Creative:
		return "creative"
	default:
		return "suggestion"
	}
}

// Intent is a routed trigger: the category plus whatever fragment of the
// utterance justified it.
type Intent struct {
	Category Category
	Phrase   string // matched phrase or keyword, lowercase
	Payload  string // reminder text captured from the utterance, casing preserved
}

// Descriptor renders the intent as "<category>:<fragment>" for logs.
func (i Intent) Descriptor() string {
	frag := i.Phrase
	if i.Category == Reminder {
		frag = i.Payload
	}
	if frag == "" {
		return i.Category.String()
	}
	return i.Category.String() + ":" + frag
}

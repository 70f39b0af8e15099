package trigger

import "testing"

func TestPriorityFor(t *testing.T) {
	tests := []struct {
		utterance string
		want      Priority
	}{
		{"this is urgent", High},
		{"help, something broke", High},
		{"there's an error on my screen", High},
		{"please suggest a title", Medium},
		{"could you draft a reply", Medium},
		{"nice weather today", Low},
		{"", Low},
	}

	for _, tt := range tests {
		if got := PriorityFor(tt.utterance); got != tt.want {
			t.Errorf("PriorityFor(%q) = %s, want %s", tt.utterance, got, tt.want)
		}
	}
}

func TestPriorityOrderingIsStable(t *testing.T) {
	// An urgency word beats a politeness word regardless of position.
	for _, utterance := range []string{
		"please help, this is urgent",
		"urgent: can you look at this please",
	} {
		if got := PriorityFor(utterance); got != High {
			t.Errorf("PriorityFor(%q) = %s, want high", utterance, got)
		}
	}
}

func TestShouldInterrupt(t *testing.T) {
	tests := []struct {
		utterance string
		priority  Priority
		want      bool
	}{
		{"whatever you were doing", High, true},
		{"stop", Low, true},
		{"actually, never mind", Low, true},
		{"hold on a second", Medium, true},
		{"please suggest a title", Medium, false},
		{"nice weather today", Low, false},
	}

	for _, tt := range tests {
		if got := ShouldInterrupt(tt.utterance, tt.priority); got != tt.want {
			t.Errorf("ShouldInterrupt(%q, %s) = %v, want %v", tt.utterance, tt.priority, got, tt.want)
		}
	}
}

package trigger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReminderExtraction(t *testing.T) {
	tests := []struct {
		utterance string
		payload   string
	}{
		{"remind me to call mom at 3pm", "call mom at 3pm"},
		{"remind me call mom at 3pm", "call mom at 3pm"},
		{"Remind Me To Email Bob", "Email Bob"},
		{"don't forget to water the plants", "water the plants"},
		{"remember to lock the door", "lock the door"},
		{"note that the meeting moved to Friday", "the meeting moved to Friday"},
		{"make a note buy batteries", "buy batteries"},
	}

	for _, tt := range tests {
		t.Run(tt.utterance, func(t *testing.T) {
			in, ok := matchIntent(tt.utterance)
			require.True(t, ok)
			assert.Equal(t, Reminder, in.Category)
			// Payload keeps the capture group's casing, trimmed.
			assert.Equal(t, tt.payload, in.Payload)
		})
	}
}

func TestIntentOrdering(t *testing.T) {
	// Reminders are checked before the (very broad) question keywords.
	in, ok := matchIntent("remind me to ask what time the show starts")
	require.True(t, ok)
	assert.Equal(t, Reminder, in.Category)

	// Questions win over actions.
	in, ok = matchIntent("what happens if i close this")
	require.True(t, ok)
	assert.Equal(t, Question, in.Category)
}

func TestNoIntent(t *testing.T) {
	_, ok := matchIntent("just mumbling to myself")
	assert.False(t, ok)
}

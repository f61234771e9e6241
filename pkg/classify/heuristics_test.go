package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyHeuristics(t *testing.T) {
	tests := []struct {
		name      string
		chunk     RawChunk
		wantLabel Label
		wantFired bool
	}{
		{
			name:      "short chunk is noise",
			chunk:     RawChunk{CleanedText: "ok"},
			wantLabel: LabelNoise,
			wantFired: true,
		},
		{
			name:      "exactly four words is noise",
			chunk:     RawChunk{CleanedText: "let me think about"},
			wantLabel: LabelNoise,
			wantFired: true,
		},
		{
			name:      "five words passes the length rule",
			chunk:     RawChunk{CleanedText: "we should evaluate vendor proposals carefully"},
			wantFired: false,
		},
		{
			name:      "out of office reply",
			chunk:     RawChunk{CleanedText: "I am currently out of office and will respond on my return"},
			wantLabel: LabelNoise,
			wantFired: true,
		},
		{
			name:      "mailer daemon speaker",
			chunk:     RawChunk{Speaker: "MAILER-DAEMON@corp.example", CleanedText: "your message could not be delivered to the recipient below"},
			wantLabel: LabelNoise,
			wantFired: true,
		},
		{
			name:      "social noise thanks",
			chunk:     RawChunk{CleanedText: "have a great weekend everyone bye"},
			wantFired: false, // not an exact social phrase, goes to the LLM
		},
		{
			name:      "social noise exact phrase",
			chunk:     RawChunk{CleanedText: "have a great weekend"},
			wantLabel: LabelNoise,
			wantFired: true,
		},
		{
			name:      "deadline mention is a timeline reference",
			chunk:     RawChunk{CleanedText: "The deliverable deadline is next Friday."},
			wantLabel: LabelTimelineReference,
			wantFired: true,
		},
		{
			name:      "calendar invitation",
			chunk:     RawChunk{CleanedText: "You have been invited to the quarterly planning review on Thursday"},
			wantLabel: LabelTimelineReference,
			wantFired: true,
		},
		{
			name:      "substantive requirement is inconclusive",
			chunk:     RawChunk{CleanedText: "The system must support single sign-on for all enterprise customers"},
			wantFired: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			label, fired := ApplyHeuristics(tt.chunk)
			assert.Equal(t, tt.wantFired, fired)
			if tt.wantFired {
				assert.Equal(t, tt.wantLabel, label)
			}
		})
	}
}

func TestApplyHeuristicsPriority(t *testing.T) {
	// A short system-mail fragment hits the word-count rule first; both
	// paths agree on noise, the point is that evaluation is ordered.
	label, fired := ApplyHeuristics(RawChunk{CleanedText: "out of office"})
	assert.True(t, fired)
	assert.Equal(t, LabelNoise, label)

	// A system-mail chunk that also mentions a deadline is still noise:
	// the mail rule outranks the calendar rule.
	label, fired = ApplyHeuristics(RawChunk{
		CleanedText: "Automatic reply: out of office until the deadline next week, contact support meanwhile",
	})
	assert.True(t, fired)
	assert.Equal(t, LabelNoise, label)
}

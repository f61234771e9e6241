package classify

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildClassificationPrompt(t *testing.T) {
	prompt := BuildClassificationPrompt("We must support SSO", "Alice", "meeting-1")

	assert.Contains(t, prompt, "We must support SSO")
	assert.Contains(t, prompt, "Speaker: Alice")
	assert.Contains(t, prompt, "Source: meeting-1")
	for _, label := range []Label{LabelRequirement, LabelDecision, LabelStakeholderFeedback, LabelTimelineReference, LabelNoise} {
		assert.Contains(t, prompt, label.String())
	}
}

func TestBuildClassificationPromptDefaultsSpeaker(t *testing.T) {
	prompt := BuildClassificationPrompt("text", "", "ref")
	assert.Contains(t, prompt, "Speaker: Unknown")
}

func TestBuildClassificationPromptTruncates(t *testing.T) {
	long := strings.Repeat("é", 3000) // multi-byte, truncation must not split runes
	prompt := BuildClassificationPrompt(long, "Alice", "ref")

	assert.NotContains(t, prompt, strings.Repeat("é", 2001))
	assert.Contains(t, prompt, strings.Repeat("é", 2000))
}

func TestParseLabel(t *testing.T) {
	assert.Equal(t, LabelRequirement, ParseLabel("requirement"))
	assert.Equal(t, LabelDecision, ParseLabel("  DECISION  "))
	assert.Equal(t, LabelNoise, ParseLabel("irrelevant"))
	assert.Equal(t, LabelNoise, ParseLabel(""))
	assert.True(t, LabelStakeholderFeedback.Valid())
	assert.False(t, Label("banana").Valid())
}

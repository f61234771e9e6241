package classify

import (
	"regexp"
	"strings"
)

// Heuristic rules resolve the obvious cases without an API call. They run in
// priority order before any network I/O.

var systemMailPattern = regexp.MustCompile(
	`(?i)(?:delivery status notification|` +
		`out of office|` +
		`auto.?reply|` +
		`undeliverable|` +
		`mailer-daemon|` +
		`postmaster)`,
)

var calendarPattern = regexp.MustCompile(
	`(?i)(?:you have been invited|` +
		`meeting request|` +
		`calendar invitation|` +
		`please join|` +
		`\bdeadline\b|\bby (?:monday|tuesday|wednesday|thursday|friday|q[1-4])\b)`,
)

var socialNoisePattern = regexp.MustCompile(
	`(?i)^(?:thanks?(?:\s+\w+)?|` +
		`sounds good|` +
		`ok|okay|` +
		`sure|` +
		`got it|` +
		`noted|` +
		`will do|` +
		`👍|` +
		`see you|` +
		`talk soon|` +
		`have a (?:good|great|nice) (?:day|weekend))\.?$`,
)

const minWordCount = 5 // chunks shorter than this are noise

// ApplyHeuristics returns (label, true) when a rule fires, or (“”, false)
// when the chunk is inconclusive and must go to the LLM.
func ApplyHeuristics(chunk RawChunk) (Label, bool) {
	text := chunk.CleanedText
	wordCount := len(strings.Fields(text))

	// Too short
	if wordCount < minWordCount {
		return LabelNoise, true
	}

	// System-generated mail
	if systemMailPattern.MatchString(text) || systemMailPattern.MatchString(chunk.Speaker) {
		return LabelNoise, true
	}

	// Pure social noise
	if socialNoisePattern.MatchString(strings.TrimSpace(text)) {
		return LabelNoise, true
	}

	// Calendar / meeting invite → timeline reference
	if calendarPattern.MatchString(text) {
		return LabelTimelineReference, true
	}

	return "", false // inconclusive — send to LLM
}

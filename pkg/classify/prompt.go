package classify

import "fmt"

const maxPromptChars = 2000

const labelDescriptions = `
- requirement: A functional or non-functional need expressed by a stakeholder (e.g. "The system must support X").
- decision: A confirmed choice or direction agreed upon by the team (e.g. "We decided to use Y").
- stakeholder_feedback: A concern, opinion, or preference from a stakeholder (e.g. "I'm worried about Z").
- timeline_reference: A date, deadline, milestone, or scheduling reference (e.g. "We need this by Q3").
- noise: Greetings, off-topic chatter, filler, auto-generated system messages, legal disclaimers, or irrelevant content.
`

// BuildClassificationPrompt renders the structured prompt for one chunk.
// The model is instructed to answer with a single JSON object only.
func BuildClassificationPrompt(chunkText, speaker, sourceRef string) string {
	if speaker == "" {
		speaker = "Unknown"
	}
	if runes := []rune(chunkText); len(runes) > maxPromptChars {
		chunkText = string(runes[:maxPromptChars])
	}

	return fmt.Sprintf(`You are a business analyst assistant. Your job is to classify a fragment of a communication into exactly one category.

## Categories
%s
## Fragment
- Source: %s
- Speaker: %s
- Text:
"""
%s
"""

## Instructions
Respond with ONLY a valid JSON object. No explanation, no markdown, no code fences. Use this exact structure:
{
  "label": "<one of: requirement, decision, stakeholder_feedback, timeline_reference, noise>",
  "confidence": <float between 0.0 and 1.0>,
  "reasoning": "<one sentence explaining your classification>"
}

If the text is a greeting, sign-off, legal disclaimer, auto-reply, or has no business relevance, classify it as "noise".
`, labelDescriptions, sourceRef, speaker, chunkText)
}

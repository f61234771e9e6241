package textutil

import (
	"regexp"
	"strings"
)

// Boilerplate patterns stripped before chunking. Transcript markers come
// from meeting-recorder output; the whitespace rule collapses reply gaps.

var crosstalkPattern = regexp.MustCompile(
	`(?i)(?:\*crosstalk\*|cross talk|background noise|` +
		`\[laughter\]|\[pause\]|\[silence\]|\[break\])`,
)

var excessWhitespace = regexp.MustCompile(`\n{3,}`)

var paragraphBreak = regexp.MustCompile(`\n\s*\n`)

// StripBoilerplate removes crosstalk markers and excessive blank lines.
func StripBoilerplate(text string) string {
	text = crosstalkPattern.ReplaceAllString(text, "")
	text = excessWhitespace.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}

// SplitParagraphs breaks a submission into paragraph-level chunks on blank
// lines, dropping empty fragments. Oversized paragraphs are re-split with an
// overlap so no single chunk exceeds the classifier's useful window.
func SplitParagraphs(text string) []string {
	const (
		maxChunkSize = 1500
		overlap      = 200
	)

	var chunks []string
	for _, part := range paragraphBreak.Split(text, -1) {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if len([]rune(part)) <= maxChunkSize {
			chunks = append(chunks, part)
			continue
		}
		chunks = append(chunks, SplitText(part, maxChunkSize, overlap)...)
	}
	return chunks
}

// SplitText splits a long string into chunks of approximately 'chunkSize'
// characters with an 'overlap' to preserve context at boundaries. This is a
// simple character-based splitter.
func SplitText(text string, chunkSize int, overlap int) []string {
	if len(text) <= chunkSize {
		return []string{text}
	}

	var chunks []string
	runes := []rune(text)
	totalLen := len(runes)

	step := chunkSize - overlap
	if step <= 0 {
		step = chunkSize // fallback if overlap >= chunkSize
	}

	for i := 0; i < totalLen; i += step {
		end := i + chunkSize
		if end > totalLen {
			end = totalLen
		}

		chunks = append(chunks, string(runes[i:end]))

		if end == totalLen {
			break
		}
	}

	return chunks
}

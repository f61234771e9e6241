package classify

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"brd-aks-be/internal/pkg/logger"
	"brd-aks-be/pkg/llm"
)

const (
	parseRetryDelay     = 1 * time.Second
	transportRetryDelay = 2 * time.Second
	courtesyDelay       = 200 * time.Millisecond // after each LLM call, not per batch
	maxAttempts         = 2
)

// Classifier sequences heuristics → LLM → confidence gate for each chunk.
// A nil provider is allowed: heuristic-path chunks still classify normally
// and LLM-path chunks degrade to flagged noise with a diagnostic reason.
type Classifier struct {
	provider llm.LLMProvider
	log      logger.ILogger
	llmDelay time.Duration
}

func NewClassifier(provider llm.LLMProvider, log logger.ILogger) *Classifier {
	return &Classifier{
		provider: provider,
		log:      log,
		llmDelay: courtesyDelay,
	}
}

// ClassifyBatch classifies chunks in input order and returns exactly one
// result per input chunk. A single chunk failing never aborts the batch.
func (c *Classifier) ClassifyBatch(ctx context.Context, chunks []RawChunk) []Result {
	results := make([]Result, len(chunks))

	for i, chunk := range chunks {
		// Step 1: heuristics (no network)
		if label, ok := ApplyHeuristics(chunk); ok {
			results[i] = Result{
				Label:            label,
				Confidence:       1.0,
				Reasoning:        "Classified by heuristic rule.",
				FlaggedForReview: false,
			}
			continue
		}

		// Step 2: LLM, Step 3: confidence gate
		results[i] = Gate(c.classifyWithLLM(ctx, chunk))

		// Polite rate limiting on the external API; without a provider no
		// call was made, so there is nothing to pace.
		if c.provider != nil && c.llmDelay > 0 {
			time.Sleep(c.llmDelay)
		}

		if (i+1)%10 == 0 {
			c.log.Info("classifier", "batch progress", map[string]interface{}{
				"done":  i + 1,
				"total": len(chunks),
			})
		}
	}

	return results
}

type llmAnswer struct {
	Label      string  `json:"label"`
	Confidence float64 `json:"confidence"`
	Reasoning  string  `json:"reasoning"`
}

// classifyWithLLM never returns an error: every failure mode terminates in a
// well-formed noise result so one bad chunk cannot poison the batch.
func (c *Classifier) classifyWithLLM(ctx context.Context, chunk RawChunk) Result {
	if c.provider == nil {
		return noiseResult("classifier not configured: GROQ_CLOUD_API is not set")
	}

	prompt := BuildClassificationPrompt(chunk.CleanedText, chunk.Speaker, chunk.SourceRef)

	for attempt := 0; attempt < maxAttempts; attempt++ {
		raw, err := c.provider.Generate(ctx, prompt,
			llm.WithTemperature(0.0),
			llm.WithJSONResponse(),
		)
		if err != nil {
			// Transient connectivity / rate-limit / server error
			if attempt == 0 {
				time.Sleep(transportRetryDelay)
				continue
			}
			c.log.Warn("classifier", "llm call failed, falling back to noise", map[string]interface{}{
				"source_ref": chunk.SourceRef,
				"error":      err.Error(),
			})
			return noiseResult(fmt.Sprintf("LLM API error: %v", err))
		}

		result, err := parseAnswer(raw)
		if err != nil {
			if attempt == 0 {
				time.Sleep(parseRetryDelay)
				continue
			}
			c.log.Warn("classifier", "llm answer unparseable, falling back to noise", map[string]interface{}{
				"source_ref": chunk.SourceRef,
				"error":      err.Error(),
			})
			return noiseResult(fmt.Sprintf("LLM parse error: %v", err))
		}

		return result
	}

	return noiseResult("max retries exceeded")
}

func parseAnswer(raw string) (Result, error) {
	if raw == "" {
		return Result{}, fmt.Errorf("empty response from LLM")
	}

	var answer llmAnswer
	if err := json.Unmarshal([]byte(raw), &answer); err != nil {
		return Result{}, fmt.Errorf("invalid JSON: %w", err)
	}

	confidence := answer.Confidence
	if confidence < 0.0 {
		confidence = 0.0
	}
	if confidence > 1.0 {
		confidence = 1.0
	}

	return Result{
		Label:      ParseLabel(answer.Label),
		Confidence: confidence,
		Reasoning:  answer.Reasoning,
	}, nil
}

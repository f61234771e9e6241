package classify

// RawChunk is a classification candidate handed in by the ingestion facade.
// Only CleanedText is inspected by the pipeline; the rest is provenance.
type RawChunk struct {
	SourceRef   string
	Speaker     string
	RawText     string
	CleanedText string
	Subject     string
}

// Result is the single tagged outcome type produced by every path through
// the pipeline (heuristic, LLM, fallback), so callers never have to guess
// which fields are present.
type Result struct {
	Label            Label
	Confidence       float64
	Reasoning        string
	FlaggedForReview bool
}

func noiseResult(reasoning string) Result {
	return Result{
		Label:      LabelNoise,
		Confidence: 0.0,
		Reasoning:  reasoning,
	}
}

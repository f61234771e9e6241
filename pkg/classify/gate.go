package classify

// Confidence thresholds for the gate.
const (
	autoAcceptThreshold = 0.85
	reviewThreshold     = 0.60
)

// Gate applies confidence thresholding to a raw classification result:
//
//	≥ 0.85      → accept automatically
//	0.60 – 0.84 → accept but flag for review
//	< 0.60      → force to noise, always flag for review
//
// Low-confidence non-noise labels are forced into the noise bucket because a
// human can restore them later, whereas an unflagged false positive pollutes
// every downstream document.
func Gate(result Result) Result {
	result.FlaggedForReview = false

	switch {
	case result.Confidence >= autoAcceptThreshold:
		// auto-accept
	case result.Confidence >= reviewThreshold:
		result.FlaggedForReview = true
	default:
		result.Label = LabelNoise
		result.FlaggedForReview = true
	}

	return result
}

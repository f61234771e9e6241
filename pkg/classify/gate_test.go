package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGate(t *testing.T) {
	tests := []struct {
		name        string
		in          Result
		wantLabel   Label
		wantFlagged bool
	}{
		{
			name:        "high confidence auto accepts",
			in:          Result{Label: LabelRequirement, Confidence: 0.9},
			wantLabel:   LabelRequirement,
			wantFlagged: false,
		},
		{
			name:        "boundary 0.85 auto accepts",
			in:          Result{Label: LabelDecision, Confidence: 0.85},
			wantLabel:   LabelDecision,
			wantFlagged: false,
		},
		{
			name:        "mid confidence keeps label but flags",
			in:          Result{Label: LabelStakeholderFeedback, Confidence: 0.7},
			wantLabel:   LabelStakeholderFeedback,
			wantFlagged: true,
		},
		{
			name:        "boundary 0.60 keeps label but flags",
			in:          Result{Label: LabelRequirement, Confidence: 0.60},
			wantLabel:   LabelRequirement,
			wantFlagged: true,
		},
		{
			name:        "low confidence forces noise",
			in:          Result{Label: LabelRequirement, Confidence: 0.4},
			wantLabel:   LabelNoise,
			wantFlagged: true,
		},
		{
			name:        "zero confidence noise stays noise",
			in:          Result{Label: LabelNoise, Confidence: 0.0},
			wantLabel:   LabelNoise,
			wantFlagged: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := Gate(tt.in)
			assert.Equal(t, tt.wantLabel, out.Label)
			assert.Equal(t, tt.wantFlagged, out.FlaggedForReview)
			assert.Equal(t, tt.in.Confidence, out.Confidence)
		})
	}
}

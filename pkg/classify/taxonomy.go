package classify

import "strings"

// Label is one of the five signal taxonomy values assigned to every chunk.
type Label string

const (
	LabelRequirement         Label = "requirement"
	LabelDecision            Label = "decision"
	LabelStakeholderFeedback Label = "stakeholder_feedback"
	LabelTimelineReference   Label = "timeline_reference"
	LabelNoise               Label = "noise"
)

var validLabels = map[Label]struct{}{
	LabelRequirement:         {},
	LabelDecision:            {},
	LabelStakeholderFeedback: {},
	LabelTimelineReference:   {},
	LabelNoise:               {},
}

// ParseLabel normalizes a raw model answer. Anything outside the taxonomy is
// coerced to noise rather than rejected.
func ParseLabel(raw string) Label {
	l := Label(strings.ToLower(strings.TrimSpace(raw)))
	if _, ok := validLabels[l]; ok {
		return l
	}
	return LabelNoise
}

func (l Label) Valid() bool {
	_, ok := validLabels[l]
	return ok
}

func (l Label) String() string {
	return string(l)
}

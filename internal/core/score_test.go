package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScoreEmptyQuery(t *testing.T) {
	assert.Equal(t, 0.0, Score("", "fever is common"))
	assert.Equal(t, 0.0, Score("   ", "fever is common"))
}

func TestScoreFullOverlap(t *testing.T) {
	assert.Equal(t, 1.0, Score("fever management", "Fever Management tips"))
}

func TestScorePartialOverlap(t *testing.T) {
	// two of four tokens match
	s := Score("fever and broken wrist", "fever wrist pain")
	assert.InDelta(t, 0.5, s, 0.001)
}

func TestScoreBidirectionalSubstring(t *testing.T) {
	// query token contained in a document token
	assert.Equal(t, 1.0, Score("vaccin", "vaccination schedule"))
	// document token contained in the query token
	assert.Equal(t, 1.0, Score("feverish", "fever"))
}

func TestScoreCaseInsensitive(t *testing.T) {
	assert.Equal(t, 1.0, Score("FEVER", "fever"))
}

func TestScoreDoubleSpacesDoNotInflate(t *testing.T) {
	// extra whitespace must not create empty tokens that match everything
	assert.Equal(t, Score("fever  cough", "fever"), Score("fever cough", "fever"))
}

func TestScoreNoMatch(t *testing.T) {
	assert.Equal(t, 0.0, Score("qzxwv", "fever management tips"))
}

func TestScoreBounds(t *testing.T) {
	queries := []string{"fever", "i have a fever", "qzxwv", "fever qzxwv"}
	for _, q := range queries {
		s := Score(q, "Fever is a common symptom where body temperature rises.")
		assert.GreaterOrEqual(t, s, 0.0)
		assert.LessOrEqual(t, s, 1.0)
	}
}

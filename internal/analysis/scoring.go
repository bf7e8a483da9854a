package analysis

import (
	"strings"
	"unicode/utf8"

	"github.com/jonathan/jinmai-creation/internal/types"
)

// sentenceTerminator ends a sentence in the generated copy.
const sentenceTerminator = "。"

// Confidence scoring
const (
	baseConfidence    = 0.75
	maxConfidence     = 0.95
	confidenceBonus   = 0.10
	confidencePenalty = 0.10
	longContentLen    = 500
	shortContentLen   = 100
)

// Quality scoring
const (
	baseQuality          = 75
	maxQuality           = 100
	longQualityBonus     = 10
	mediumQualityBonus   = 5
	mediumContentLen     = 300
	structureBonus       = 5
	minSentencesForBonus = 3
)

var confidenceMultipliers = map[types.ContentType]float64{
	types.ContentStory:        1.0,
	types.ContentIntroduction: 0.95,
	types.ContentCraft:        0.9,
	types.ContentCulture:      0.85,
	types.ContentHistory:      0.9,
	types.ContentModern:       0.95,
}

var qualityTypeBonus = map[types.ContentType]int{
	types.ContentStory:        5,
	types.ContentIntroduction: 3,
	types.ContentCraft:        4,
	types.ContentCulture:      6,
	types.ContentHistory:      4,
	types.ContentModern:       3,
}

// Confidence scores how sure the "model" claims to be, in [0, 0.95].
func Confidence(content string, ct types.ContentType) float64 {
	n := utf8.RuneCountInString(content)

	score := baseConfidence
	if n > longContentLen {
		score += confidenceBonus
	} else if n < shortContentLen {
		score -= confidencePenalty
	}

	multiplier, ok := confidenceMultipliers[ct]
	if !ok {
		multiplier = 1.0
	}

	return clampFloat(score*multiplier, 0, maxConfidence)
}

// QualityScore rates content on a 0-100 scale from its length, sentence
// count and type.
func QualityScore(content string, ct types.ContentType) int {
	n := utf8.RuneCountInString(content)

	score := baseQuality
	switch {
	case n > longContentLen:
		score += longQualityBonus
	case n > mediumContentLen:
		score += mediumQualityBonus
	}

	if sentenceCount(content) >= minSentencesForBonus {
		score += structureBonus
	}

	score += qualityTypeBonus[ct]

	return min(max(score, 0), maxQuality)
}

func sentenceCount(content string) int {
	return strings.Count(content, sentenceTerminator)
}

func clampFloat(v, lo, hi float64) float64 {
	return min(max(v, lo), hi)
}

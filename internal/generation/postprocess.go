package generation

import (
	"regexp"
	"strings"

	"github.com/jonathan/jinmai-creation/internal/types"
)

// Embellishment probabilities, drawn independently on every render.
const (
	storyOpeningChance   = 0.3
	craftDetailChance    = 0.4
	cultureClosingChance = 0.3
)

const (
	// storyOpenedMarker starts every text that already has a narrative opener.
	storyOpenedMarker = "在"
	// craftStepMarker is the process-step word that receives an annotation.
	craftStepMarker = "工序"
	// cultureDefaultFragment stands in for the last sentence when the text has none.
	cultureDefaultFragment = "这种文化精神"
)

var (
	whitespaceRun = regexp.MustCompile(`\s+`)
	blankLines    = regexp.MustCompile(`\n\s*\n`)
)

// postProcess normalizes whitespace and applies the type-specific embellishment.
func (g *Generator) postProcess(content string, ct types.ContentType) string {
	content = whitespaceRun.ReplaceAllString(content, " ")
	content = blankLines.ReplaceAllString(content, "\n\n")

	switch ct {
	case types.ContentStory:
		content = g.addStoryOpening(content)
	case types.ContentCraft:
		content = g.annotateCraftStep(content)
	case types.ContentCulture:
		content = g.appendReflection(content)
	}

	return strings.TrimSpace(content)
}

func (g *Generator) addStoryOpening(content string) string {
	if strings.HasPrefix(content, storyOpenedMarker) || g.rng.Float64() >= storyOpeningChance {
		return content
	}
	return Pick(g.rng, g.catalog.Embellishments().StoryOpenings) + content
}

func (g *Generator) annotateCraftStep(content string) string {
	if !strings.Contains(content, craftStepMarker) || g.rng.Float64() >= craftDetailChance {
		return content
	}
	detail := Pick(g.rng, g.catalog.Embellishments().CraftDetails)
	return strings.Replace(content, craftStepMarker, craftStepMarker+"（"+detail+"）", 1)
}

func (g *Generator) appendReflection(content string) string {
	if g.rng.Float64() >= cultureClosingChance {
		return content
	}

	quote := Pick(g.rng, g.catalog.Embellishments().CulturalQuotes)
	return content + "\n\n" + quote + "，" + lastSentence(content) + "值得我们深入思考和传承发扬。"
}

// lastSentence returns the text between the last two 。 terminators, which for
// text ending in 。 is its final sentence.
func lastSentence(content string) string {
	parts := strings.Split(content, "。")
	if len(parts) < 2 {
		return cultureDefaultFragment
	}
	return parts[len(parts)-2]
}

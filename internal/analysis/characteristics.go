package analysis

import (
	"strings"
	"unicode/utf8"

	"github.com/jonathan/jinmai-creation/internal/types"
)

var styles = map[types.ContentType]string{
	types.ContentStory:        "叙述性",
	types.ContentIntroduction: "说明性",
	types.ContentCraft:        "技术性",
	types.ContentCulture:      "文化性",
	types.ContentHistory:      "历史性",
	types.ContentModern:       "现代性",
}

const defaultStyle = "综合性"

// Suggestion texts
const (
	suggestMoreDetail = "可以增加更多细节描述，让内容更加丰富"
	suggestParagraphs = "建议增加更多段落分隔，提高可读性"
	suggestPlot       = "故事类内容可以增加更多情节元素"
	suggestProcess    = "工艺类内容可以详细描述制作过程"
	suggestKeepGoing  = "内容质量良好，继续保持"
)

// CharacteristicsOf profiles style, tone, complexity and originality.
func CharacteristicsOf(content string, ct types.ContentType) types.Characteristics {
	return types.Characteristics{
		Style:       style(ct),
		Tone:        tone(ct),
		Complexity:  complexity(content),
		Originality: originality(content),
	}
}

func style(ct types.ContentType) string {
	if s, ok := styles[ct]; ok {
		return s
	}
	return defaultStyle
}

func tone(ct types.ContentType) string {
	switch ct {
	case types.ContentStory:
		return "温暖亲切"
	case types.ContentCulture:
		return "庄重典雅"
	case types.ContentModern:
		return "活力创新"
	default:
		return "专业权威"
	}
}

func complexity(content string) string {
	n := utf8.RuneCountInString(content)
	switch {
	case n > 800:
		return "高"
	case n > 400:
		return "中"
	default:
		return "低"
	}
}

// originality is high only for long text whose distinct characters make up
// more than 70% of its length.
func originality(content string) string {
	n := utf8.RuneCountInString(content)
	switch {
	case n > 600 && float64(distinctRunes(content)) > float64(n)*0.7:
		return "高"
	case n > 300:
		return "中"
	default:
		return "基础"
	}
}

func distinctRunes(content string) int {
	seen := make(map[rune]struct{})
	for _, r := range content {
		seen[r] = struct{}{}
	}
	return len(seen)
}

// Suggestions lists improvement hints, or a single encouragement when none apply.
func Suggestions(content string, ct types.ContentType) []string {
	var suggestions []string

	if utf8.RuneCountInString(content) < 200 {
		suggestions = append(suggestions, suggestMoreDetail)
	}
	if sentenceCount(content) < minSentencesForBonus {
		suggestions = append(suggestions, suggestParagraphs)
	}
	if ct == types.ContentStory && !strings.Contains(content, "故事") {
		suggestions = append(suggestions, suggestPlot)
	}
	if ct == types.ContentCraft && (!strings.Contains(content, "工艺") || !strings.Contains(content, "制作")) {
		suggestions = append(suggestions, suggestProcess)
	}

	if len(suggestions) == 0 {
		suggestions = append(suggestions, suggestKeepGoing)
	}
	return suggestions
}

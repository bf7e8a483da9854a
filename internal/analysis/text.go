package analysis

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/jinmai-creation/internal/types"
)

const (
	summaryMaxLen      = 200
	summaryMinCut      = 100
	summaryEllipsis    = "..."
	maxKeywords        = 8
	maxRelatedTopics   = 6
	readingCharsPerMin = 300
)

var baseKeywords = []string{"天津", "传统文化", "老字号", "品牌故事"}

var importantWords = []string{"传承", "创新", "历史", "文化", "工艺", "品质", "发展"}

var typeTags = map[types.ContentType][]string{
	types.ContentStory:        {"品牌故事", "历史文化", "传承发展"},
	types.ContentIntroduction: {"品牌介绍", "产品特色", "文化内涵"},
	types.ContentCraft:        {"传统工艺", "制作技艺", "工匠精神"},
	types.ContentCulture:      {"文化内涵", "非遗传承", "文化价值"},
	types.ContentHistory:      {"历史传承", "发展历程", "时代变迁"},
	types.ContentModern:       {"现代发展", "传承创新", "新时代"},
}

var typeTopics = map[types.ContentType][]string{
	types.ContentStory:        {"品牌传承故事", "创业历史", "人物传记"},
	types.ContentIntroduction: {"品牌文化", "产品特色", "市场定位"},
	types.ContentCraft:        {"传统技艺", "工匠精神", "工艺传承"},
	types.ContentCulture:      {"文化内涵", "历史价值", "文化保护"},
	types.ContentHistory:      {"历史变迁", "时代发展", "文化传承"},
	types.ContentModern:       {"创新发展", "现代转型", "品牌建设"},
}

// A cultural value containing the short form 非遗 earns the heritage tag.
// The long form 非物质文化遗产 does not contain it and is not matched.
const (
	intangibleHeritageMarker = "非遗"
	intangibleHeritageTag    = "非物质文化遗产"
)

// Summary returns the first 200 characters of content. Longer content is cut
// back to the last 。 at or after character 100, or marked with an ellipsis
// when there is none.
func Summary(content string) string {
	runes := []rune(content)
	if len(runes) <= summaryMaxLen {
		return content
	}

	cut := runes[:summaryMaxLen]
	for i := len(cut) - 1; i >= summaryMinCut; i-- {
		if cut[i] == '。' {
			return string(cut[:i+1])
		}
	}
	return string(cut) + summaryEllipsis
}

// Keywords returns the base keywords plus any important words found in
// content, capped at eight.
func Keywords(content string) []string {
	keywords := append([]string{}, baseKeywords...)
	for _, word := range importantWords {
		if strings.Contains(content, word) {
			keywords = append(keywords, word)
		}
	}
	return truncate(dedupe(keywords), maxKeywords)
}

// Tags returns the brand's category, the regional tags and the tags of ct.
func Tags(brand types.Brand, ct types.ContentType) []string {
	tags := []string{brand.Category, "天津传统文化", "老字号品牌"}
	tags = append(tags, typeTags[ct]...)

	if strings.Contains(brand.CulturalValue, intangibleHeritageMarker) {
		tags = append(tags, intangibleHeritageTag)
	}

	return dedupe(tags)
}

// RelatedTopics returns topics a reader of this content might follow up on,
// capped at six.
func RelatedTopics(brand types.Brand, ct types.ContentType) []string {
	topics := []string{
		brand.Category + "文化",
		"天津传统文化",
		"老字号品牌发展",
		"非物质文化遗产保护",
	}
	topics = append(topics, typeTopics[ct]...)
	return truncate(dedupe(topics), maxRelatedTopics)
}

// ReadingTime estimates reading time at 300 characters per minute, minimum one.
func ReadingTime(content string) string {
	minutes := max(1, utf8.RuneCountInString(content)/readingCharsPerMin)
	return strconv.Itoa(minutes) + "分钟"
}

// dedupe removes repeated entries, keeping first occurrences in order.
func dedupe(items []string) []string {
	seen := make(map[string]bool, len(items))
	out := make([]string, 0, len(items))
	for _, item := range items {
		if seen[item] {
			continue
		}
		seen[item] = true
		out = append(out, item)
	}
	return out
}

func truncate(items []string, n int) []string {
	if len(items) > n {
		return items[:n]
	}
	return items
}

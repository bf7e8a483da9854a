package analysis

import (
	"strings"
	"testing"

	"github.com/jonathan/jinmai-creation/internal/types"
	"github.com/stretchr/testify/assert"
)

// distinctText returns n characters with no repeats.
func distinctText(n int) string {
	var sb strings.Builder
	for i := 0; i < n; i++ {
		sb.WriteRune(rune(0x4E00 + i))
	}
	return sb.String()
}

func TestCharacteristicsOf_StyleAndTone(t *testing.T) {
	tests := []struct {
		ct    types.ContentType
		style string
		tone  string
	}{
		{types.ContentStory, "叙述性", "温暖亲切"},
		{types.ContentIntroduction, "说明性", "专业权威"},
		{types.ContentCraft, "技术性", "专业权威"},
		{types.ContentCulture, "文化性", "庄重典雅"},
		{types.ContentHistory, "历史性", "专业权威"},
		{types.ContentModern, "现代性", "活力创新"},
		{"FOO", "综合性", "专业权威"},
	}

	for _, tt := range tests {
		c := CharacteristicsOf("", tt.ct)
		assert.Equal(t, tt.style, c.Style, tt.ct)
		assert.Equal(t, tt.tone, c.Tone, tt.ct)
	}
}

func TestComplexity(t *testing.T) {
	assert.Equal(t, "低", complexity(chars(400)))
	assert.Equal(t, "中", complexity(chars(401)))
	assert.Equal(t, "中", complexity(chars(800)))
	assert.Equal(t, "高", complexity(chars(801)))
}

func TestOriginality(t *testing.T) {
	assert.Equal(t, "基础", originality(chars(300)))
	assert.Equal(t, "中", originality(chars(301)))
	assert.Equal(t, "中", originality(chars(700)), "long but repetitive")
	assert.Equal(t, "高", originality(distinctText(601)))
	assert.Equal(t, "中", originality(distinctText(600)))
}

func TestSuggestions(t *testing.T) {
	tests := []struct {
		name    string
		content string
		ct      types.ContentType
		want    []string
	}{
		{
			name:    "short unstructured story",
			content: "一段话。",
			ct:      types.ContentStory,
			want:    []string{suggestMoreDetail, suggestParagraphs, suggestPlot},
		},
		{
			name:    "story mentioning story",
			content: chars(200) + "故事。一。二。",
			ct:      types.ContentStory,
			want:    []string{suggestKeepGoing},
		},
		{
			name:    "craft missing making",
			content: chars(200) + "工艺。一。二。",
			ct:      types.ContentCraft,
			want:    []string{suggestProcess},
		},
		{
			name:    "craft with both terms",
			content: chars(200) + "工艺制作。一。二。",
			ct:      types.ContentCraft,
			want:    []string{suggestKeepGoing},
		},
		{
			name:    "long but flat",
			content: chars(300),
			ct:      types.ContentModern,
			want:    []string{suggestParagraphs},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Suggestions(tt.content, tt.ct))
		})
	}
}

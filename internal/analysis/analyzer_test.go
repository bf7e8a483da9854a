package analysis

import (
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/jonathan/jinmai-creation/internal/catalog"
	"github.com/jonathan/jinmai-creation/internal/generation"
	"github.com/jonathan/jinmai-creation/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedRand struct {
	index int
}

func (f fixedRand) Intn(n int) int { return f.index % n }
func (f fixedRand) Float64() float64 { return 0.5 }

func goubuli(t *testing.T) types.Brand {
	t.Helper()
	b, ok := catalog.MustDefault().BrandByID(1)
	require.True(t, ok)
	return b
}

func TestTitle_PerType(t *testing.T) {
	b := goubuli(t)

	tests := []struct {
		ct    types.ContentType
		index int
		want  string
	}{
		{types.ContentStory, 0, "狗不理包子的传奇故事：传承百年的文化记忆"},
		{types.ContentStory, 1, "穿越时光的狗不理包子：高贵友的创业传奇"},
		{types.ContentStory, 2, "狗不理包子的故事：清朝时期的文化印记"},
		{types.ContentIntroduction, 0, "狗不理包子：传统美食的璀璨明珠"},
		{types.ContentCraft, 1, "狗不理包子制作技艺：传统手工制作工艺的精髓"},
		{types.ContentCulture, 2, "狗不理包子：国家级非物质文化遗产的生动体现"},
		{types.ContentHistory, 0, "狗不理包子的历史传承：从1858年走来的文化记忆"},
		{types.ContentHistory, 1, "岁月如歌：狗不理包子清朝时期的历史印记"},
		{types.ContentModern, 2, "狗不理包子：传统技艺与现代理念的完美结合"},
		{"FOO", 0, "狗不理包子：精彩内容"},
	}

	for _, tt := range tests {
		t.Run(string(tt.ct), func(t *testing.T) {
			a := New(catalog.MustDefault(), fixedRand{index: tt.index})
			title, err := a.Title(b, tt.ct)
			require.NoError(t, err)
			assert.Equal(t, tt.want, title)
		})
	}
}

func TestAnalyze_StructuralProperties(t *testing.T) {
	cat := catalog.MustDefault()
	rng := generation.NewLockedRand(1)
	gen := generation.New(cat, rng)
	a := New(cat, rng)

	contentTypes := append(types.AllContentTypes(), "FOO")
	for _, b := range cat.Brands() {
		for _, ct := range contentTypes {
			for i := 0; i < 10; i++ {
				content, err := gen.Generate(b, ct, "")
				require.NoError(t, err)

				m, err := a.Analyze(b, ct, content)
				require.NoError(t, err)

				assert.Contains(t, m.Title, b.Name)
				assert.GreaterOrEqual(t, m.Confidence, 0.0)
				assert.LessOrEqual(t, m.Confidence, 0.95)
				assert.GreaterOrEqual(t, m.QualityScore, 0)
				assert.LessOrEqual(t, m.QualityScore, 100)
				assert.LessOrEqual(t, len(m.Keywords), 8)
				assert.Subset(t, m.Keywords, baseKeywords)
				assert.LessOrEqual(t, len(m.RelatedTopics), 6)
				assert.Equal(t, utf8.RuneCountInString(content), m.WordCount)
				assert.True(t, strings.HasPrefix(content, strings.TrimSuffix(m.Summary, summaryEllipsis)))
				assert.LessOrEqual(t, utf8.RuneCountInString(m.Summary), 203)
				assert.NotEmpty(t, m.Suggestions)
				assertUnique(t, m.Tags)
				assertUnique(t, m.Keywords)
				assertUnique(t, m.RelatedTopics)
			}
		}
	}
}

func assertUnique(t *testing.T, items []string) {
	t.Helper()
	seen := map[string]bool{}
	for _, item := range items {
		assert.False(t, seen[item], "duplicate %q", item)
		seen[item] = true
	}
}

func TestWithClock(t *testing.T) {
	fixed := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
	a := New(catalog.MustDefault(), fixedRand{}, WithClock(func() time.Time { return fixed }))
	assert.Equal(t, fixed, a.now())

	slots := generation.BrandSlots(a.catalog, goubuli(t), a.now())
	assert.Equal(t, "172", slots["years"])

	assert.NotNil(t, New(catalog.MustDefault(), fixedRand{}).now)
}

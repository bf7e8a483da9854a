package observability

import (
	"bytes"
	"strings"
	"testing"

	"github.com/jonathan/jinmai-creation/internal/catalog"
	"github.com/jonathan/jinmai-creation/internal/pipeline"
	"github.com/jonathan/jinmai-creation/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestPrintCreation(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	resp := &types.CreationResponse{
		TaskID:         "task_1_abcdef12",
		Status:         types.StatusCompleted,
		ProcessingTime: 2.13,
		QualityScore:   90,
		BrandInfo:      types.BrandInfo{ID: 5, Name: "泥人张", Category: "传统艺术"},
		Result: types.CreationResult{
			Title:       "泥人张的传奇故事",
			Content:     "泥人张始创于1826年。",
			Type:        types.ContentStory,
			AIModel:     "text-generator-v2",
			Confidence:  0.85,
			Keywords:    []string{"传统文化", "非遗传承"},
			ReadingTime: "1分钟",
			WordCount:   12,
			Suggestions: []string{"可以增加更多具体的历史细节和人物故事"},
		},
	}

	p.PrintCreation(resp)
	output := buf.String()

	assert.Contains(t, output, "泥人张的传奇故事")
	assert.Contains(t, output, "task_1_abcdef12")
	assert.Contains(t, output, "泥人张 (#5, 传统艺术)")
	assert.Contains(t, output, "Quality:    90")
	assert.Contains(t, output, "传统文化、非遗传承")
	assert.Contains(t, output, "• 可以增加更多具体的历史细节和人物故事")
	assert.Contains(t, output, "泥人张始创于1826年。")
	assert.Contains(t, output, "2.13s")
}

func TestPrintCreation_Nil(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintCreation(nil)
	assert.Empty(t, buf.String())
}

func TestPrintBrands(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintBrands(catalog.MustDefault().Brands())
	output := buf.String()

	assert.Contains(t, output, "BRANDS (5)")
	assert.Contains(t, output, "#1  狗不理包子")
	assert.Contains(t, output, "杨柳青年画")
}

func TestPrintModels(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintModels(catalog.MustDefault().Models())
	output := buf.String()

	assert.Contains(t, output, "AI MODELS (4)")
	assert.Contains(t, output, "text-generator-v2")
	assert.Contains(t, output, "max_tokens=")
}

func TestPrintProgress(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintProgress(pipeline.ProgressEvent{
		Step:     "lookup_brand",
		Category: "input",
		Message:  "brand 1: 狗不理包子",
	})

	assert.Contains(t, buf.String(), "lookup_brand")
	assert.Contains(t, buf.String(), "brand 1: 狗不理包子")
}

func TestTruncateRunes(t *testing.T) {
	assert.Equal(t, "短句", truncateRunes("短句", 10))
	long := strings.Repeat("津", 80)
	out := truncateRunes(long, 56)
	assert.Equal(t, 56, len([]rune(out)))
	assert.True(t, strings.HasSuffix(out, "..."))
}

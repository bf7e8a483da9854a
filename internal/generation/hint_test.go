package generation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnalyzeHint(t *testing.T) {
	tests := []struct {
		name   string
		hint   string
		active []string
	}{
		{"empty", "", nil},
		{"detail and history", "请详细介绍它的历史", []string{"detailed", "history"}},
		{"simple craft", "简洁地说说制作过程", []string{"simple", "craft"}},
		{"professional culture", "有深度的文化内涵解读", []string{"professional", "culture"}},
		{"story modern", "讲一个现代的故事", []string{"story", "modern"}},
		{"english is case-insensitive", "A Simple STORY", []string{"simple", "story"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.active, AnalyzeHint(tt.hint).Active())
		})
	}
}

func TestLockedRand_Deterministic(t *testing.T) {
	a := NewLockedRand(7)
	b := NewLockedRand(7)
	for i := 0; i < 10; i++ {
		assert.Equal(t, a.Intn(100), b.Intn(100))
		assert.Equal(t, a.Float64(), b.Float64())
	}
}

func TestPick(t *testing.T) {
	assert.Empty(t, Pick(fixedRand{}, nil))
	assert.Equal(t, "b", Pick(fixedRand{index: 1}, []string{"a", "b", "c"}))
}

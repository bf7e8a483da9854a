package main

import (
	"encoding/json"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/jinmai-creation/internal/types"
)

func TestGenerate_JSON(t *testing.T) {
	out, err := execute(t, "generate", "--brand", "1", "--type", "STORY", "--seed", "7", "--no-delay", "--json")
	require.NoError(t, err)

	var resp types.CreationResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))

	assert.Equal(t, types.StatusCompleted, resp.Status)
	assert.Equal(t, 1, resp.BrandInfo.ID)
	assert.Equal(t, "狗不理包子", resp.BrandInfo.Name)
	assert.Equal(t, types.ContentStory, resp.Result.Type)
	assert.Equal(t, "text-generator-v2", resp.Result.AIModel)
	assert.Contains(t, resp.Result.Title, "狗不理包子")
	assert.Equal(t, utf8.RuneCountInString(resp.Result.Content), resp.Result.WordCount)
	assert.True(t, strings.HasPrefix(resp.TaskID, "task_"))
}

func TestGenerate_SeedIsReproducible(t *testing.T) {
	args := []string{"generate", "--brand", "4", "--type", "CRAFT", "--prompt", "讲讲工艺", "--seed", "99", "--no-delay", "--json"}

	first, err := execute(t, args...)
	require.NoError(t, err)
	second, err := execute(t, args...)
	require.NoError(t, err)

	var a, b types.CreationResponse
	require.NoError(t, json.Unmarshal([]byte(first), &a))
	require.NoError(t, json.Unmarshal([]byte(second), &b))

	assert.Equal(t, a.Result.Content, b.Result.Content)
	assert.Equal(t, a.Result.Title, b.Result.Title)
	assert.Equal(t, a.ProcessingTime, b.ProcessingTime)
}

func TestGenerate_All(t *testing.T) {
	out, err := execute(t, "generate", "--all", "--type", "INTRODUCTION", "--seed", "3", "--no-delay", "--json")
	require.NoError(t, err)

	var responses []types.CreationResponse
	require.NoError(t, json.Unmarshal([]byte(out), &responses))
	require.Len(t, responses, 5)
	for i, resp := range responses {
		assert.Equal(t, i+1, resp.BrandInfo.ID)
		assert.Equal(t, types.ContentIntroduction, resp.Result.Type)
	}
}

func TestGenerate_Text(t *testing.T) {
	out, err := execute(t, "generate", "--brand", "2", "--seed", "1", "--no-delay")
	require.NoError(t, err)

	assert.Contains(t, out, "Task:")
	assert.Contains(t, out, "Quality:")
	assert.Contains(t, out, "(#2,")
}

func TestGenerate_UnknownBrand(t *testing.T) {
	_, err := execute(t, "generate", "--brand", "42", "--no-delay")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "brand not found: 42")
}

func TestGenerate_InvalidLogLevel(t *testing.T) {
	_, err := execute(t, "generate", "--no-delay", "--log-level", "loud")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "log_level")
}

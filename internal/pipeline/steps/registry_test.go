package steps

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStepRegistry(t *testing.T) {
	for _, stepName := range Order {
		def, ok := StepRegistry[stepName]
		require.True(t, ok, "Step %s should be in registry", stepName)
		assert.Equal(t, stepName, def.Name)
		assert.NotEmpty(t, def.Category)
	}
	assert.Len(t, StepRegistry, len(Order))
}

func TestCategoryOf(t *testing.T) {
	assert.Equal(t, CategoryInput, CategoryOf(LookupBrand))
	assert.Equal(t, CategoryCreation, CategoryOf(Generate))
	assert.Equal(t, CategoryOutput, CategoryOf(Assemble))
	assert.Empty(t, CategoryOf("unknown_step"))
}

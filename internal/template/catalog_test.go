package template

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllReturnsCopy(t *testing.T) {
	first := All()
	require.NotEmpty(t, first)
	first[0].Name = "mutated"
	assert.NotEqual(t, "mutated", All()[0].Name)
}

func TestCatalogIsWellFormed(t *testing.T) {
	for _, tmpl := range All() {
		assert.NotEmpty(t, tmpl.Name)
		assert.NotEmpty(t, tmpl.Category)
		assert.Greater(t, tmpl.Target, 0.0, tmpl.Name)
	}
}

func TestFind(t *testing.T) {
	got, ok := Find("drink water")
	require.True(t, ok)
	assert.Equal(t, "Drink Water", got.Name)

	_, ok = Find("does not exist")
	assert.False(t, ok)
}

func TestByCategory(t *testing.T) {
	fitness := ByCategory("Fitness")
	require.NotEmpty(t, fitness)
	for _, tmpl := range fitness {
		assert.Equal(t, "Fitness", tmpl.Category)
	}

	assert.Empty(t, ByCategory("Nope"))
}

func TestCategoriesSortedUnique(t *testing.T) {
	categories := Categories()
	require.NotEmpty(t, categories)
	for i := 1; i < len(categories); i++ {
		assert.Less(t, categories[i-1], categories[i])
	}
}

package catalog_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devtushar001/ietark/app/catalog"
)

func TestAll(t *testing.T) {
	tools := catalog.All()
	require.Len(t, tools, 22)

	seen := map[string]bool{}
	for _, tool := range tools {
		assert.NotEmpty(t, tool.ID)
		assert.NotEmpty(t, tool.Name)
		assert.Contains(t, catalog.Categories, tool.Category)
		assert.True(t, strings.HasPrefix(tool.Icon, "http"), "icon should resolve to a public URL: %s", tool.Icon)

		assert.False(t, seen[tool.ID], "duplicate tool id %s", tool.ID)
		seen[tool.ID] = true
	}
}

func TestByID(t *testing.T) {
	tool, ok := catalog.ByID("17")
	require.True(t, ok)
	assert.Equal(t, "Razorpay payment gateway", tool.Name)
	assert.Equal(t, "advanced", tool.Category)
	assert.True(t, strings.HasSuffix(tool.Icon, "/icons/shopping-cart.png"))

	_, ok = catalog.ByID("999")
	assert.False(t, ok)
}

func TestByCategory(t *testing.T) {
	advanced := catalog.ByCategory("advanced")
	require.Len(t, advanced, 3)
	for _, tool := range advanced {
		assert.Equal(t, "advanced", tool.Category)
	}

	assert.Nil(t, catalog.ByCategory("expert"))

	total := 0
	for _, c := range catalog.Categories {
		total += len(catalog.ByCategory(c))
	}
	assert.Equal(t, len(catalog.All()), total)
}

func TestCategoriesOrder(t *testing.T) {
	assert.Equal(t, []string{"basic", "intermediate", "advanced"}, catalog.Categories)
}

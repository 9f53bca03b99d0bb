package memory_test

import (
	"context"
	"testing"

	"github.com/aretw0/spark/pkg/adapters/memory"
	"github.com/aretw0/spark/pkg/domain"
	"github.com/aretw0/spark/pkg/ports"
	"github.com/aretw0/spark/pkg/tree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSource_Contract(t *testing.T) {
	themes := map[string]*domain.Theme{
		"base": {Name: "base", Tokens: tree.Of("color", tree.Of("text", "#111"), "gap", 8)},
		"dark": {Name: "dark", Extends: "base", Tokens: tree.Of("color", tree.Of("text", "#eee"))},
	}

	source, err := memory.NewSource(themes["base"], themes["dark"])
	require.NoError(t, err)

	ports.RunTokenSourceContract(t, source, themes)
}

func TestSource_ReturnsCopies(t *testing.T) {
	source, err := memory.NewSource(&domain.Theme{Name: "base", Tokens: tree.Of("gap", 8)})
	require.NoError(t, err)

	loaded, err := source.LoadTheme(context.Background(), "base")
	require.NoError(t, err)
	loaded.Tokens.Set("gap", 99)

	again, err := source.LoadTheme(context.Background(), "base")
	require.NoError(t, err)
	gap, _ := again.Tokens.Get("gap")
	assert.Equal(t, 8, gap)
}

func TestSource_RejectsUnnamed(t *testing.T) {
	_, err := memory.NewSource(&domain.Theme{})
	assert.Error(t, err)
}

func TestCache_Contract(t *testing.T) {
	ports.RunStylesheetCacheContract(t, memory.NewCache())
}

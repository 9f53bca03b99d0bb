package ports

import (
	"context"
	"testing"
	"time"

	"github.com/aretw0/spark/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunTokenSourceContract verifies that a TokenSource implementation adheres to
// the interface contract. The source must contain exactly the themes in expected.
func RunTokenSourceContract(t *testing.T, source TokenSource, expected map[string]*domain.Theme) {
	t.Helper()
	ctx := context.Background()

	t.Run("ListThemes", func(t *testing.T) {
		names, err := source.ListThemes(ctx)
		require.NoError(t, err)
		assert.Len(t, names, len(expected))
		for name := range expected {
			assert.Contains(t, names, name)
		}
	})

	t.Run("LoadTheme", func(t *testing.T) {
		for name, want := range expected {
			got, err := source.LoadTheme(ctx, name)
			require.NoError(t, err, "LoadTheme(%q)", name)
			assert.Equal(t, name, got.Name)
			assert.Equal(t, want.Extends, got.Extends)
			assert.Equal(t, want.Selector, got.Selector)
			require.NotNil(t, got.Tokens)
			assert.Equal(t, want.Tokens.Keys(), got.Tokens.Keys(), "token order of %q", name)
		}
	})

	t.Run("LoadTheme Non-Existent", func(t *testing.T) {
		_, err := source.LoadTheme(ctx, "non-existent-theme")
		assert.ErrorIs(t, err, domain.ErrThemeNotFound)
	})
}

// RunStylesheetCacheContract verifies that a StylesheetCache implementation
// adheres to the interface contract.
func RunStylesheetCacheContract(t *testing.T, cache StylesheetCache) {
	t.Helper()
	ctx := context.Background()
	key := "contract-test-" + time.Now().Format("20060102150405")

	t.Run("Set and Get", func(t *testing.T) {
		css := ":root {\n  --spark-gap: 8;\n}\n"
		require.NoError(t, cache.Set(ctx, key, css))

		got, err := cache.Get(ctx, key)
		require.NoError(t, err)
		assert.Equal(t, css, got)
	})

	t.Run("Overwrite", func(t *testing.T) {
		require.NoError(t, cache.Set(ctx, key, "a"))
		require.NoError(t, cache.Set(ctx, key, "b"))

		got, err := cache.Get(ctx, key)
		require.NoError(t, err)
		assert.Equal(t, "b", got)
	})

	t.Run("Get Non-Existent", func(t *testing.T) {
		_, err := cache.Get(ctx, "non-existent-"+key)
		assert.ErrorIs(t, err, domain.ErrCacheMiss)
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, cache.Set(ctx, key, "x"))
		require.NoError(t, cache.Delete(ctx, key))

		_, err := cache.Get(ctx, key)
		assert.ErrorIs(t, err, domain.ErrCacheMiss)

		assert.NoError(t, cache.Delete(ctx, key), "deleting twice is not an error")
	})
}

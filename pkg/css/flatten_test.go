package css

import (
	"testing"

	"github.com/aretw0/spark/pkg/tree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func declarations(props []*CustomProperty) []string {
	out := make([]string, len(props))
	for i, p := range props {
		out[i] = p.Declaration()
	}
	return out
}

func TestFlatten_DocumentOrder(t *testing.T) {
	tokens := tree.Of(
		"color", tree.Of("textPrimary", "#111", "surface", "#fff"),
		"radius", 4,
		"fontFamily", []any{"Inter", "sans-serif"},
	)

	got := declarations(Flatten("spark", tokens))

	assert.Equal(t, []string{
		"--spark-color-text-primary: #111;",
		"--spark-color-surface: #fff;",
		"--spark-radius: 4;",
		"--spark-font-family: Inter, sans-serif;",
	}, got)
}

func TestFlatten_Empty(t *testing.T) {
	assert.Empty(t, Flatten("spark", nil))
	assert.Empty(t, Flatten("spark", tree.New()))
	assert.Empty(t, Flatten("spark", tree.Of("group", tree.New())))
}

func TestReferences(t *testing.T) {
	tokens := tree.Of(
		"color", tree.Of("textPrimary", "#111"),
		"radius", 4,
	)

	refs := References("spark", tokens)

	text, ok := refs.Lookup("color", "textPrimary")
	require.True(t, ok)
	assert.Equal(t, "var(--spark-color-text-primary)", text)
	radius, _ := refs.Get("radius")
	assert.Equal(t, "var(--spark-radius)", radius)

	// source left untouched
	original, _ := tokens.Get("radius")
	assert.Equal(t, 4, original)
	assert.Equal(t, []string{"color", "radius"}, refs.Keys())
}

func TestRender(t *testing.T) {
	sheet := Render(
		Rule{Selector: ":root", Declarations: Flatten("spark", tree.Of("gap", 8, "text", "#111"))},
		Rule{Selector: ".empty"},
		Rule{Selector: `[data-theme="dark"]`, Declarations: Flatten("spark", tree.Of("text", "#eee"))},
	)

	assert.Equal(t, `:root {
  --spark-gap: 8;
  --spark-text: #111;
}

[data-theme="dark"] {
  --spark-text: #eee;
}
`, sheet)
}

package tui_test

import (
	"testing"

	"github.com/aretw0/spark/internal/presentation/tui"
	"github.com/aretw0/spark/pkg/css"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
)

func TestIsColor(t *testing.T) {
	assert.True(t, tui.IsColor("#fff"))
	assert.True(t, tui.IsColor("#1E293B"))
	assert.False(t, tui.IsColor("#ffff"))
	assert.False(t, tui.IsColor("red"))
	assert.False(t, tui.IsColor("4px"))
}

func TestSwatch(t *testing.T) {
	assert.NotEmpty(t, tui.Swatch(termenv.TrueColor, "#1e293b"))
	assert.NotEmpty(t, tui.Swatch(termenv.ANSI256, "#FFF"))
	assert.Empty(t, tui.Swatch(termenv.TrueColor, "transparent"))
	assert.Empty(t, tui.Swatch(termenv.Ascii, "#fff"))
}

func TestTokenTable(t *testing.T) {
	props := []*css.CustomProperty{
		css.NewProperty("spark", []string{"color", "text"}, "#111"),
		css.NewProperty("spark", []string{"font", "family"}, []any{"a|b", "serif"}),
	}

	got := tui.TokenTable("base", "Default palette", props)
	assert.Equal(t, "# base\n\nDefault palette\n\n"+
		"| Property | Value | Reference |\n"+
		"| --- | --- | --- |\n"+
		"| `--spark-color-text` | #111 | `var(--spark-color-text)` |\n"+
		"| `--spark-font-family` | a\\|b, serif | `var(--spark-font-family)` |\n", got)

	assert.Equal(t, "# empty\n\n_No tokens._\n", tui.TokenTable("empty", "", nil))
}

func TestSwatchList(t *testing.T) {
	props := []*css.CustomProperty{
		css.NewProperty("", []string{"bg"}, "#000000"),
		css.NewProperty("", []string{"gap"}, "4px"),
	}

	assert.Empty(t, tui.SwatchList(termenv.Ascii, props))

	got := tui.SwatchList(termenv.TrueColor, props)
	assert.Contains(t, got, "--bg #000000")
	assert.NotContains(t, got, "--gap")
}

package css

import (
	"testing"

	"github.com/aretw0/spark/pkg/tree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateValue(t *testing.T) {
	valid := []string{
		"#4f46e5",
		"1.5rem",
		"0 1px 2px rgba(0, 0, 0, 0.05)",
		`"Inter", sans-serif`,
		"calc(100% - var(--spark-gap))",
		"",
	}
	for _, v := range valid {
		assert.NoError(t, ValidateValue(v), "value %q", v)
	}

	invalid := []string{
		"red; background: url(evil)",
		"red } body { color: blue",
		"{",
		"rgba(0, 0, 0",
		"0)",
		"<!-- x",
	}
	for _, v := range invalid {
		assert.ErrorIs(t, ValidateValue(v), ErrUnsafeValue, "value %q", v)
	}
}

func TestValidateStylesheet(t *testing.T) {
	sheet := Render(Rule{Selector: ":root", Declarations: Flatten("spark", tree.Of("gap", 8))})
	require.NoError(t, ValidateStylesheet(sheet))

	names, err := Declared(sheet, ":root")
	require.NoError(t, err)
	assert.Equal(t, []string{"--spark-gap"}, names)
}

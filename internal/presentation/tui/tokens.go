package tui

import (
	"fmt"
	"strings"

	"github.com/aretw0/spark/pkg/css"
	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/termenv"
)

// IsColor reports whether v is a hex color such as #fff or #1e293b.
func IsColor(v string) bool {
	_, err := colorful.Hex(v)
	return err == nil
}

// Swatch returns a colored block for hex color values and "" otherwise.
// Profiles without color support also yield "".
func Swatch(profile termenv.Profile, value string) string {
	c, err := colorful.Hex(value)
	if err != nil || profile == termenv.Ascii {
		return ""
	}
	return termenv.String("  ").Background(profile.FromColor(c)).String()
}

// TokenTable renders the properties of a theme as a markdown table.
func TokenTable(theme, description string, props []*css.CustomProperty) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s\n\n", theme)
	if description != "" {
		fmt.Fprintf(&sb, "%s\n\n", description)
	}
	if len(props) == 0 {
		sb.WriteString("_No tokens._\n")
		return sb.String()
	}

	sb.WriteString("| Property | Value | Reference |\n")
	sb.WriteString("| --- | --- | --- |\n")
	for _, p := range props {
		fmt.Fprintf(&sb, "| `%s` | %s | `%s` |\n",
			p.Name(), escapeCell(css.FormatValue(p.Value)), p.Var())
	}
	return sb.String()
}

// SwatchList renders one line per color token: swatch, name and value.
func SwatchList(profile termenv.Profile, props []*css.CustomProperty) string {
	var sb strings.Builder
	for _, p := range props {
		value := css.FormatValue(p.Value)
		swatch := Swatch(profile, value)
		if swatch == "" {
			continue
		}
		fmt.Fprintf(&sb, "%s %s %s\n", swatch, p.Name(), value)
	}
	return sb.String()
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}

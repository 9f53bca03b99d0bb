package css

import (
	"strings"
)

// Rule is a selector with its custom property declarations.
type Rule struct {
	Selector     string
	Declarations []*CustomProperty
}

// Render writes the rules as a stylesheet. Rules without declarations are skipped.
func Render(rules ...Rule) string {
	var b strings.Builder
	for _, rule := range rules {
		if len(rule.Declarations) == 0 {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(rule.Selector)
		b.WriteString(" {\n")
		for _, decl := range rule.Declarations {
			b.WriteString("  ")
			b.WriteString(decl.Declaration())
			b.WriteByte('\n')
		}
		b.WriteString("}\n")
	}
	return b.String()
}

package css

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/aretw0/spark/pkg/tree"
)

// DashCase converts a key to lower kebab-case: every uppercase letter starts a
// new word, hyphens separate words, and whitespace runs collapse to a single
// hyphen.
func DashCase(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 4)
	for _, r := range s {
		switch {
		case unicode.IsUpper(r):
			b.WriteByte(' ')
			b.WriteRune(r)
		case r == '-':
			b.WriteByte(' ')
		default:
			b.WriteRune(r)
		}
	}
	return strings.ToLower(strings.Join(strings.Fields(b.String()), "-"))
}

// CustomProperty is a CSS custom property derived from a token.
type CustomProperty struct {
	Prefix   string
	Key      string
	Value    any
	Fallback any
}

// NewProperty creates a property for the token at path.
func NewProperty(prefix string, path []string, value any) *CustomProperty {
	return &CustomProperty{
		Prefix: prefix,
		Key:    strings.Join(path, "-"),
		Value:  value,
	}
}

// Name returns the property name, e.g. "--spark-background-color".
func (p *CustomProperty) Name() string {
	key := DashCase(p.Key)
	if p.Prefix == "" {
		return "--" + key
	}
	return "--" + DashCase(p.Prefix) + "-" + key
}

// Declaration returns "<name>: <value>;".
func (p *CustomProperty) Declaration() string {
	return p.Name() + ": " + FormatValue(p.Value) + ";"
}

// Var returns "var(<name>)", or "var(<name>, <fallback>)" when a fallback is set.
func (p *CustomProperty) Var() string {
	if p.Fallback == nil {
		return "var(" + p.Name() + ")"
	}
	return "var(" + p.Name() + ", " + FormatValue(p.Fallback) + ")"
}

// WithFallback returns a copy of p using fallback in its var() reference.
func (p *CustomProperty) WithFallback(fallback any) *CustomProperty {
	out := *p
	out.Fallback = fallback
	return &out
}

// String returns the var() reference, so a property can be used wherever a
// value is expected.
func (p *CustomProperty) String() string {
	return p.Var()
}

// FormatValue renders a token value for use in a declaration.
func FormatValue(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case bool:
		if val {
			return "true"
		}
		return "false"
	case *CustomProperty:
		return val.Var()
	}
	if n, ok := tree.Number(v); ok {
		return tree.FormatNumber(n)
	}
	if seq, ok := tree.AsSequence(v); ok {
		parts := make([]string, 0, len(seq))
		for _, item := range seq {
			parts = append(parts, FormatValue(item))
		}
		return strings.Join(parts, ", ")
	}
	if s, ok := v.(fmt.Stringer); ok {
		return s.String()
	}
	return ""
}

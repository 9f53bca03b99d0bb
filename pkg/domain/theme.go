package domain

import (
	"fmt"

	"github.com/aretw0/spark/pkg/tree"
)

// DefaultSelector is used for themes that extend nothing.
const DefaultSelector = ":root"

// Theme is a named token document.
type Theme struct {
	// Name identifies the theme.
	Name string `json:"name"`
	// Extends names the parent theme whose tokens this theme overrides.
	Extends string `json:"extends,omitempty"`
	// Selector scopes the theme's stylesheet rule. See SelectorOrDefault.
	Selector string `json:"selector,omitempty"`
	// Description is free text for tooling.
	Description string `json:"description,omitempty"`
	// Tokens holds the theme's own token layer.
	Tokens *tree.Object `json:"tokens"`
}

// IsRoot reports whether the theme extends no other theme.
func (t *Theme) IsRoot() bool {
	return t.Extends == ""
}

// SelectorOrDefault returns the configured selector, ":root" for root themes,
// or a data-theme attribute selector otherwise.
func (t *Theme) SelectorOrDefault() string {
	if t.Selector != "" {
		return t.Selector
	}
	if t.IsRoot() {
		return DefaultSelector
	}
	return fmt.Sprintf("[data-theme=%q]", t.Name)
}

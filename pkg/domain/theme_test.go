package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTheme_SelectorOrDefault(t *testing.T) {
	assert.Equal(t, ":root", (&Theme{Name: "base"}).SelectorOrDefault())
	assert.Equal(t, `[data-theme="dark"]`, (&Theme{Name: "dark", Extends: "base"}).SelectorOrDefault())
	assert.Equal(t, ".brand", (&Theme{Name: "brand", Extends: "base", Selector: ".brand"}).SelectorOrDefault())
}

func TestValidationError(t *testing.T) {
	single := &ValidationError{Issues: []Issue{{Theme: "dark", Reason: "extends unknown theme"}}}
	assert.Equal(t, `theme "dark": extends unknown theme`, single.Error())

	multi := &ValidationError{Issues: []Issue{
		{Theme: "a", Path: "color.text", Reason: "unsafe value"},
		{Theme: "b", Reason: "cycle"},
	}}
	assert.Contains(t, multi.Error(), "2 validation issues")
	assert.Contains(t, multi.Error(), `theme "a", token "color.text": unsafe value`)

	wrapped := fmt.Errorf("check: %w", multi)
	assert.Len(t, Issues(wrapped), 2)
	assert.Nil(t, Issues(errors.New("plain")))
}

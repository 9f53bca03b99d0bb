package classnames

import (
	"math"
	"testing"

	"github.com/aretw0/spark/pkg/tree"
	"github.com/stretchr/testify/assert"
)

type badge string

func (b badge) String() string { return "badge-" + string(b) }

func TestJoin(t *testing.T) {
	tests := []struct {
		name  string
		items []any
		want  string
	}{
		{"strings skip nil", []any{"a", nil, "b"}, "a b"},
		{"no items", nil, ""},
		{"falsy values", []any{false, 0, "", nil, math.NaN()}, ""},
		{"numbers", []any{"col", 3, 1.5}, "col 3 1.5"},
		{"nested sequences", []any{[]any{"a", []any{"b", "c"}}}, "a b c"},
		{"typed sequence", []any{[]string{"x", "y"}}, "x y"},
		{"empty sequence adds nothing", []any{"a", []any{}, []any{nil, false}, "b"}, "a b"},
		{"condition object", []any{tree.Of("x", true, "y", false)}, "x"},
		{"condition object keeps order", []any{tree.Of("z", 1, "a", "yes", "m", 0)}, "z a"},
		{"ordered cond", []any{Cond{{"first", true}, {"skip", false}, {"last", 1}}}, "first last"},
		{"bool map sorted", []any{map[string]bool{"b": true, "a": true, "c": false}}, "a b"},
		{"any map sorted", []any{map[string]any{"b": "on", "a": 0}}, "b"},
		{"stringer", []any{"x", badge("new")}, "x badge-new"},
		{"true is ignored", []any{true, "a"}, "a"},
		{"unsupported ignored", []any{struct{}{}, "a"}, "a"},
		{"mixed", []any{"btn", []any{"btn--lg", nil}, tree.Of("btn--active", true), 2}, "btn btn--lg btn--active 2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Join(tt.items...))
		})
	}
}

func TestJoin_Deterministic(t *testing.T) {
	items := []any{"a", map[string]bool{"q": true, "p": true, "r": true}, tree.Of("k", true)}
	first := Join(items...)
	for i := 0; i < 20; i++ {
		assert.Equal(t, first, Join(items...))
	}
}

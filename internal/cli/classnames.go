package cli

import (
	"strconv"
	"strings"

	"github.com/aretw0/spark/pkg/classnames"
)

// ParseItems turns command-line arguments into class name items.
// "name" is a plain class; "name=bool" toggles name on or off.
// Consecutive toggles share one condition list.
func ParseItems(args []string) []any {
	var items []any
	var cond classnames.Cond
	flush := func() {
		if len(cond) > 0 {
			items = append(items, cond)
			cond = nil
		}
	}

	for _, arg := range args {
		name, raw, ok := strings.Cut(arg, "=")
		if !ok || name == "" {
			flush()
			items = append(items, arg)
			continue
		}
		on, err := strconv.ParseBool(raw)
		if err != nil {
			on = raw != ""
		}
		cond = append(cond, classnames.Toggle{Name: name, On: on})
	}
	flush()
	return items
}

package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/aretw0/spark"
	"github.com/aretw0/spark/pkg/css"
	"github.com/aretw0/spark/pkg/tokens"
)

// Diff writes the token changes between two themes, one per line:
// "+ path value", "- path value" or "~ path old -> new".
// It returns the number of changes.
func Diff(ctx context.Context, eng *spark.Engine, from, to string, w io.Writer) (int, error) {
	older, err := eng.Tokens(ctx, from)
	if err != nil {
		return 0, err
	}
	newer, err := eng.Tokens(ctx, to)
	if err != nil {
		return 0, err
	}

	changes := tokens.Diff(older, newer)
	for _, c := range changes {
		switch c.Kind {
		case tokens.Added:
			fmt.Fprintf(w, "+ %s %s\n", c.Path, css.FormatValue(c.New))
		case tokens.Removed:
			fmt.Fprintf(w, "- %s %s\n", c.Path, css.FormatValue(c.Old))
		case tokens.Changed:
			fmt.Fprintf(w, "~ %s %s -> %s\n", c.Path, css.FormatValue(c.Old), css.FormatValue(c.New))
		}
	}
	return len(changes), nil
}

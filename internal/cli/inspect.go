package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/aretw0/spark"
	"github.com/aretw0/spark/internal/presentation/tui"
	"github.com/aretw0/spark/pkg/css"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// IsTerminal reports whether w is an interactive terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// Inspect writes a token table for a theme. On a terminal the table is
// rendered with glamour and followed by color swatches; otherwise the raw
// markdown is written.
func Inspect(ctx context.Context, eng *spark.Engine, name string, w io.Writer) error {
	theme, err := eng.Theme(ctx, name)
	if err != nil {
		return err
	}
	resolved, err := eng.Tokens(ctx, name)
	if err != nil {
		return err
	}
	props := css.Flatten(eng.Prefix(), resolved)
	markdown := tui.TokenTable(name, theme.Description, props)

	if !IsTerminal(w) {
		_, err := io.WriteString(w, markdown)
		return err
	}

	width, _, err := term.GetSize(int(w.(*os.File).Fd()))
	if err != nil || width <= 0 {
		width = 100
	}
	rendered, err := tui.NewRenderer(width)(markdown)
	if err != nil {
		return fmt.Errorf("render failed: %w", err)
	}
	fmt.Fprint(w, rendered)
	fmt.Fprint(w, tui.SwatchList(termenv.ColorProfile(), props))
	return nil
}

package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// PrintBanner writes the Spark banner and version to w.
func PrintBanner(w io.Writer, version string) {
	p := termenv.ColorProfile()
	// Warm gradient, amber to rose
	lines := []struct {
		text  string
		color string
	}{
		{"   ___                  _   ", "#fbbf24"},
		{"  / __|_ __  __ _ _ _ | |__", "#fb923c"},
		{"  \\__ \\ '_ \\/ _` | '_|| / /", "#f87171"},
		{"  |___/ .__/\\__,_|_|  |_\\_\\", "#fb7185"},
		{"      |_|                   ", "#f472b6"},
	}

	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(w, termenv.String(l.text).Foreground(p.Color(l.color)))
	}
	fmt.Fprintln(w, termenv.String("  design tokens "+version).Faint())
	fmt.Fprintln(w)
}

package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/aretw0/spark"
	"github.com/aretw0/spark/pkg/adapters/file"
)

// Build renders the stylesheet of one theme, or of all themes when theme is
// empty, and writes it to out. An empty out or "-" writes to w.
func Build(ctx context.Context, eng *spark.Engine, theme, out string, w io.Writer) error {
	var (
		sheet string
		err   error
	)
	if theme == "" {
		sheet, err = eng.Build(ctx)
	} else {
		sheet, err = eng.Stylesheet(ctx, theme)
	}
	if err != nil {
		return err
	}

	if out == "" || out == "-" {
		_, err = io.WriteString(w, sheet)
		return err
	}
	return file.WriteAtomic(out, []byte(sheet))
}

// WatchBuild builds once and rebuilds whenever a theme changes, until ctx is done.
// Failed rebuilds are logged and the previous output is left in place.
func WatchBuild(ctx context.Context, eng *spark.Engine, theme, out string, w io.Writer, logger *slog.Logger) error {
	changes, err := eng.Watch(ctx)
	if err != nil {
		return err
	}

	if err := Build(ctx, eng, theme, out, w); err != nil {
		logger.Error("Build failed", "error", err)
	} else {
		logger.Info("Built", "out", out)
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case name, ok := <-changes:
			if !ok {
				return nil
			}
			start := time.Now()
			if err := Build(ctx, eng, theme, out, w); err != nil {
				logger.Error("Rebuild failed", "theme", name, "error", err)
				continue
			}
			logger.Info("Rebuilt", "theme", name, "out", out, "took", time.Since(start))
		}
	}
}

// ValidateReport validates every theme and writes a human readable report.
// It returns the validation error, if any.
func ValidateReport(ctx context.Context, eng *spark.Engine, w io.Writer) error {
	err := eng.Validate(ctx)
	if err != nil {
		return err
	}
	names, listErr := eng.Themes(ctx)
	if listErr != nil {
		return listErr
	}
	fmt.Fprintf(w, "%d themes are valid! ✅\n", len(names))
	return nil
}

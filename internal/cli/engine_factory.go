package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/aretw0/spark"
	"github.com/aretw0/spark/internal/logging"
	"github.com/aretw0/spark/pkg/adapters/redis"
	"github.com/aretw0/spark/pkg/domain"
	"github.com/aretw0/spark/pkg/observability"
)

var stderr io.Writer = os.Stderr

// CreateLogger builds the application logger from the config.
func CreateLogger(opts Options) *slog.Logger {
	level, err := logging.ParseLevel(opts.Config.Log.Level)
	logger := logging.NewWithWriter(stderr, level, opts.Config.Log.Format)
	if err != nil {
		logger.Warn("falling back to info level", "error", err)
	}
	return logger
}

// CreateEngine initializes a Spark engine with standard CLI conventions.
// The returned closer releases the stylesheet cache, if any.
// Extra hooks are combined with the debug hooks.
func CreateEngine(ctx context.Context, opts Options, logger *slog.Logger, hooks ...domain.Hooks) (*spark.Engine, io.Closer, error) {
	cfg := opts.Config
	engineOpts := []spark.Option{
		spark.WithLogger(logger),
		spark.WithPrefix(cfg.Prefix),
	}

	if opts.Debug {
		hooks = append([]domain.Hooks{createDebugHooks(logger)}, hooks...)
	}
	if len(hooks) > 0 {
		engineOpts = append(engineOpts, spark.WithHooks(observability.Combine(hooks...)))
	}

	var closer io.Closer = nopCloser{}
	if cfg.Redis.Addr != "" {
		cache := redis.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB,
			redis.WithPrefix(cfg.Redis.Prefix),
			redis.WithTTL(cfg.Redis.TTL),
		)
		if err := cache.Ping(ctx); err != nil {
			_ = cache.Close()
			return nil, nil, fmt.Errorf("redis unavailable at %s: %w", cfg.Redis.Addr, err)
		}
		logger.Info("Using redis stylesheet cache", "addr", cfg.Redis.Addr)
		engineOpts = append(engineOpts, spark.WithCache(cache))
		closer = cache
	}

	engine, err := spark.New(cfg.Dir, engineOpts...)
	if err != nil {
		_ = closer.Close()
		return nil, nil, fmt.Errorf("error initializing engine: %w", err)
	}
	return engine, closer, nil
}

func createDebugHooks(logger *slog.Logger) domain.Hooks {
	return domain.Hooks{
		OnThemeResolved: func(ctx context.Context, e *domain.ResolveEvent) {
			logger.Debug("Theme Resolved", "theme", e.Theme, "layers", e.Layers, "took", e.Took)
		},
		OnStylesheetRendered: func(ctx context.Context, e *domain.RenderEvent) {
			logger.Debug("Stylesheet Rendered", "theme", e.Theme, "declarations", e.Declarations, "cached", e.Cached)
		},
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

package spark

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/aretw0/spark/pkg/adapters/file"
	"github.com/aretw0/spark/pkg/css"
	"github.com/aretw0/spark/pkg/domain"
	"github.com/aretw0/spark/pkg/ports"
	"github.com/aretw0/spark/pkg/tokens"
	"github.com/aretw0/spark/pkg/tree"
)

// DefaultPrefix is prepended to every custom property name.
const DefaultPrefix = "spark"

// Engine is the high-level entry point for the Spark library.
// It loads themes from a TokenSource, resolves their extends chains into
// layered token stores and renders them as custom property stylesheets.
type Engine struct {
	source ports.TokenSource
	cache  ports.StylesheetCache
	hooks  domain.Hooks
	logger *slog.Logger
	prefix string
	Name   string
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithSource injects a custom TokenSource, bypassing the default file source.
func WithSource(s ports.TokenSource) Option {
	return func(e *Engine) {
		e.source = s
	}
}

// WithCache stores rendered stylesheets in c.
func WithCache(c ports.StylesheetCache) Option {
	return func(e *Engine) {
		e.cache = c
	}
}

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithPrefix sets the custom property prefix. An empty prefix yields bare
// names such as --color-text.
func WithPrefix(prefix string) Option {
	return func(e *Engine) {
		e.prefix = prefix
	}
}

// WithHooks registers observability hooks.
func WithHooks(hooks domain.Hooks) Option {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// New initializes a new Spark Engine.
// By default, it reads theme documents from dir.
// If WithSource is provided, dir can be empty and is only used as a label.
func New(dir string, opts ...Option) (*Engine, error) {
	eng := &Engine{prefix: DefaultPrefix}

	for _, opt := range opts {
		opt(eng)
	}

	if eng.source == nil {
		if dir == "" {
			return nil, fmt.Errorf("dir is required when no custom source is provided")
		}
		absPath, err := filepath.Abs(dir)
		if err != nil {
			return nil, fmt.Errorf("invalid path: %w", err)
		}
		eng.Name = filepath.Base(absPath)
		eng.source = file.New(absPath)
	} else if dir != "" {
		eng.Name = filepath.Base(dir)
	}

	if eng.logger == nil {
		eng.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if eng.Name != "" {
		eng.logger = eng.logger.With("themes", eng.Name)
	}

	return eng, nil
}

// Prefix returns the custom property prefix.
func (e *Engine) Prefix() string {
	return e.prefix
}

// Source returns the underlying TokenSource.
func (e *Engine) Source() ports.TokenSource {
	return e.source
}

// Themes returns the sorted theme names.
func (e *Engine) Themes(ctx context.Context) ([]string, error) {
	names, err := e.source.ListThemes(ctx)
	if err != nil {
		return nil, err
	}
	sort.Strings(names)
	return names, nil
}

// Theme loads a single theme document without resolving it.
func (e *Engine) Theme(ctx context.Context, name string) (*domain.Theme, error) {
	return e.source.LoadTheme(ctx, name)
}

// Chain returns the theme followed by its ancestors, ending at a root theme.
func (e *Engine) Chain(ctx context.Context, name string) ([]*domain.Theme, error) {
	var chain []*domain.Theme
	seen := make(map[string]bool)

	for current := name; current != ""; {
		if seen[current] {
			return nil, fmt.Errorf("%w: %s", domain.ErrCyclicExtends, describeCycle(chain, current))
		}
		seen[current] = true

		theme, err := e.source.LoadTheme(ctx, current)
		if err != nil {
			if len(chain) > 0 && errors.Is(err, domain.ErrThemeNotFound) {
				return nil, fmt.Errorf("%w: %s extends %s", domain.ErrBrokenExtends, chain[len(chain)-1].Name, current)
			}
			return nil, err
		}
		chain = append(chain, theme)
		current = theme.Extends
	}
	return chain, nil
}

func describeCycle(chain []*domain.Theme, repeat string) string {
	names := make([]string, 0, len(chain)+1)
	for _, t := range chain {
		names = append(names, t.Name)
	}
	return strings.Join(append(names, repeat), " -> ")
}

// Store builds the frozen token store of a theme. The root of the extends
// chain is the base layer and each descendant is a fork on top of it.
func (e *Engine) Store(ctx context.Context, name string) (*tokens.Store, error) {
	_, store, err := e.resolve(ctx, name)
	return store, err
}

func (e *Engine) resolve(ctx context.Context, name string) ([]*domain.Theme, *tokens.Store, error) {
	start := time.Now()

	chain, err := e.Chain(ctx, name)
	if err != nil {
		return nil, nil, err
	}

	root := chain[len(chain)-1]
	store := tokens.New(root.Tokens)
	for i := len(chain) - 2; i >= 0; i-- {
		store = store.Fork(chain[i].Tokens)
	}
	store.Freeze()

	e.logger.Debug("theme resolved", "theme", name, "layers", len(chain))
	if e.hooks.OnThemeResolved != nil {
		e.hooks.OnThemeResolved(ctx, &domain.ResolveEvent{
			EventBase: domain.EventBase{Timestamp: time.Now(), Type: domain.EventThemeResolved},
			Theme:     name,
			Layers:    len(chain),
			Took:      time.Since(start),
		})
	}
	return chain, store, nil
}

// Tokens returns the resolved tokens of a theme.
func (e *Engine) Tokens(ctx context.Context, name string) (*tree.Object, error) {
	store, err := e.Store(ctx, name)
	if err != nil {
		return nil, err
	}
	return store.Resolve(), nil
}

// References returns the resolved tokens of a theme with every leaf replaced
// by its var() reference.
func (e *Engine) References(ctx context.Context, name string) (*tree.Object, error) {
	resolved, err := e.Tokens(ctx, name)
	if err != nil {
		return nil, err
	}
	return css.References(e.prefix, resolved), nil
}

// Rule returns the custom property rule of a theme.
func (e *Engine) Rule(ctx context.Context, name string) (css.Rule, error) {
	chain, store, err := e.resolve(ctx, name)
	if err != nil {
		return css.Rule{}, err
	}
	return css.Rule{
		Selector:     chain[0].SelectorOrDefault(),
		Declarations: css.Flatten(e.prefix, store.Resolve()),
	}, nil
}

// Stylesheet renders the custom property rule of a theme, consulting the
// cache when one is configured.
func (e *Engine) Stylesheet(ctx context.Context, name string) (string, error) {
	start := time.Now()

	if e.cache != nil {
		cached, err := e.cache.Get(ctx, name)
		switch {
		case err == nil:
			e.logger.Debug("stylesheet cache hit", "theme", name)
			e.emitRender(ctx, name, 0, true, start)
			return cached, nil
		case !errors.Is(err, domain.ErrCacheMiss):
			e.logger.Warn("stylesheet cache read failed", "theme", name, "error", err)
		}
	}

	rule, err := e.Rule(ctx, name)
	if err != nil {
		return "", err
	}
	out := css.Render(rule)

	if e.cache != nil {
		if err := e.cache.Set(ctx, name, out); err != nil {
			e.logger.Warn("stylesheet cache write failed", "theme", name, "error", err)
		}
	}

	e.emitRender(ctx, name, len(rule.Declarations), false, start)
	return out, nil
}

func (e *Engine) emitRender(ctx context.Context, name string, decls int, cached bool, start time.Time) {
	if e.hooks.OnStylesheetRendered == nil {
		return
	}
	e.hooks.OnStylesheetRendered(ctx, &domain.RenderEvent{
		EventBase:    domain.EventBase{Timestamp: time.Now(), Type: domain.EventStylesheetRendered},
		Theme:        name,
		Declarations: decls,
		Cached:       cached,
		Took:         time.Since(start),
	})
}

// Build renders the stylesheet of every theme: root themes first, then the
// rest, each group ordered by name.
func (e *Engine) Build(ctx context.Context) (string, error) {
	ordered, err := e.buildOrder(ctx)
	if err != nil {
		return "", err
	}

	rules := make([]css.Rule, 0, len(ordered))
	for _, name := range ordered {
		rule, err := e.Rule(ctx, name)
		if err != nil {
			return "", err
		}
		rules = append(rules, rule)
	}
	return css.Render(rules...), nil
}

func (e *Engine) buildOrder(ctx context.Context) ([]string, error) {
	names, err := e.Themes(ctx)
	if err != nil {
		return nil, err
	}

	var roots, rest []string
	for _, name := range names {
		theme, err := e.source.LoadTheme(ctx, name)
		if err != nil {
			return nil, err
		}
		if theme.IsRoot() {
			roots = append(roots, name)
		} else {
			rest = append(rest, name)
		}
	}
	return append(roots, rest...), nil
}

// Validate checks that every theme resolves, every token value is a safe
// CSS value, and the built stylesheet parses.
// Problems are reported together as a *domain.ValidationError.
func (e *Engine) Validate(ctx context.Context) error {
	names, err := e.Themes(ctx)
	if err != nil {
		return err
	}

	var issues []domain.Issue
	resolvable := true
	for _, name := range names {
		resolved, err := e.Tokens(ctx, name)
		if err != nil {
			resolvable = false
			issues = append(issues, domain.Issue{Theme: name, Reason: err.Error()})
			continue
		}
		issues = append(issues, validateTokens(name, resolved)...)
	}

	if resolvable && len(issues) == 0 {
		sheet, err := e.Build(ctx)
		if err != nil {
			return err
		}
		if err := css.ValidateStylesheet(sheet); err != nil {
			issues = append(issues, domain.Issue{Theme: "*", Reason: err.Error()})
		}
	}

	if len(issues) > 0 {
		return &domain.ValidationError{Issues: issues}
	}
	return nil
}

func validateTokens(theme string, resolved *tree.Object) []domain.Issue {
	var issues []domain.Issue
	tree.Walk(resolved, func(item tree.StackItem) {
		if tree.IsObject(item.Node) {
			return
		}
		if err := css.ValidateValue(css.FormatValue(item.Node)); err != nil {
			issues = append(issues, domain.Issue{
				Theme:  theme,
				Path:   strings.Join(item.Path, "."),
				Reason: err.Error(),
			})
		}
	})
	// leaves arrive last-first
	for i, j := 0, len(issues)-1; i < j; i, j = i+1, j-1 {
		issues[i], issues[j] = issues[j], issues[i]
	}
	return issues
}

// Invalidate drops the cached stylesheet of a theme and of every theme that
// extends it.
func (e *Engine) Invalidate(ctx context.Context, name string) error {
	if e.cache == nil {
		return nil
	}

	names, err := e.Themes(ctx)
	if err != nil {
		return err
	}

	var errs []error
	for _, candidate := range names {
		if candidate == name || !e.extends(ctx, candidate, name) {
			continue
		}
		if err := e.cache.Delete(ctx, candidate); err != nil {
			errs = append(errs, fmt.Errorf("invalidate %s: %w", candidate, err))
		}
	}
	if err := e.cache.Delete(ctx, name); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

func (e *Engine) extends(ctx context.Context, theme, ancestor string) bool {
	chain, err := e.Chain(ctx, theme)
	if err != nil {
		return false
	}
	for _, t := range chain[1:] {
		if t.Name == ancestor {
			return true
		}
	}
	return false
}

// Watch returns a channel that receives the names of changed themes.
// Cached stylesheets of changed themes and their descendants are dropped
// before the name is delivered.
// Returns an error if the source does not support watching.
func (e *Engine) Watch(ctx context.Context) (<-chan string, error) {
	w, ok := e.source.(ports.Watchable)
	if !ok {
		return nil, fmt.Errorf("current source does not support watching")
	}
	changes, err := w.Watch(ctx)
	if err != nil {
		return nil, err
	}

	out := make(chan string, 1)
	go func() {
		defer close(out)
		for name := range changes {
			if err := e.Invalidate(ctx, name); err != nil {
				e.logger.Warn("cache invalidation failed", "theme", name, "error", err)
			}
			select {
			case out <- name:
			case <-ctx.Done():
				return
			}
		}
	}()
	return out, nil
}

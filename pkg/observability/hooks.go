package observability

import (
	"context"
	"strconv"

	"github.com/aretw0/spark/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
)

// Collector records theme resolution and stylesheet rendering metrics.
type Collector struct {
	resolved     *prometheus.CounterVec
	resolveTime  prometheus.Histogram
	rendered     *prometheus.CounterVec
	declarations *prometheus.GaugeVec
}

// NewCollector creates an unregistered Collector.
func NewCollector() *Collector {
	return &Collector{
		resolved: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "spark_theme_resolutions_total",
				Help: "Total number of theme resolutions",
			},
			[]string{"theme"},
		),
		resolveTime: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "spark_theme_resolve_seconds",
				Help:    "Duration of theme resolutions",
				Buckets: prometheus.ExponentialBuckets(0.0001, 4, 8),
			},
		),
		rendered: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "spark_stylesheets_rendered_total",
				Help: "Total number of stylesheets served, by cache hit",
			},
			[]string{"theme", "cached"},
		),
		declarations: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "spark_stylesheet_declarations",
				Help: "Custom properties in the last rendered stylesheet",
			},
			[]string{"theme"},
		),
	}
}

// Register adds the collector's metrics to reg.
func (c *Collector) Register(reg prometheus.Registerer) error {
	for _, m := range []prometheus.Collector{c.resolved, c.resolveTime, c.rendered, c.declarations} {
		if err := reg.Register(m); err != nil {
			return err
		}
	}
	return nil
}

// Hooks returns engine hooks that feed the collector.
func (c *Collector) Hooks() domain.Hooks {
	return domain.Hooks{
		OnThemeResolved: func(ctx context.Context, e *domain.ResolveEvent) {
			c.resolved.WithLabelValues(e.Theme).Inc()
			c.resolveTime.Observe(e.Took.Seconds())
		},
		OnStylesheetRendered: func(ctx context.Context, e *domain.RenderEvent) {
			c.rendered.WithLabelValues(e.Theme, strconv.FormatBool(e.Cached)).Inc()
			if !e.Cached {
				c.declarations.WithLabelValues(e.Theme).Set(float64(e.Declarations))
			}
		},
	}
}

// Combine returns hooks that call each of the given hooks in order.
// Nil callbacks are skipped.
func Combine(all ...domain.Hooks) domain.Hooks {
	var resolved []func(context.Context, *domain.ResolveEvent)
	var rendered []func(context.Context, *domain.RenderEvent)
	for _, h := range all {
		if h.OnThemeResolved != nil {
			resolved = append(resolved, h.OnThemeResolved)
		}
		if h.OnStylesheetRendered != nil {
			rendered = append(rendered, h.OnStylesheetRendered)
		}
	}

	var out domain.Hooks
	if len(resolved) > 0 {
		out.OnThemeResolved = func(ctx context.Context, e *domain.ResolveEvent) {
			for _, fn := range resolved {
				fn(ctx, e)
			}
		}
	}
	if len(rendered) > 0 {
		out.OnStylesheetRendered = func(ctx context.Context, e *domain.RenderEvent) {
			for _, fn := range rendered {
				fn(ctx, e)
			}
		}
	}
	return out
}

package observability

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/aretw0/najia/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the cast collectors.
type Metrics struct {
	casts    *prometheus.CounterVec
	failures *prometheus.CounterVec
	moving   prometheus.Histogram
	duration *prometheus.HistogramVec
	gatherer prometheus.Gatherer
}

// NewMetrics creates the collectors and registers them on reg. A nil reg
// uses a fresh private registry.
func NewMetrics(reg *prometheus.Registry) *Metrics {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	m := &Metrics{
		casts: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "najia_casts_total",
				Help: "Total number of completed casts",
			},
			[]string{"method", "verdict"},
		),
		failures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "najia_cast_failures_total",
				Help: "Total number of rejected casts",
			},
			[]string{"method"},
		),
		moving: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "najia_moving_lines",
				Help:    "Number of moving lines per cast",
				Buckets: []float64{0, 1, 2, 3, 4, 5, 6},
			},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "najia_cast_duration_seconds",
				Help:    "Duration of the casting pipeline",
				Buckets: prometheus.ExponentialBuckets(0.00001, 4, 8),
			},
			[]string{"method"},
		),
		gatherer: reg,
	}
	reg.MustRegister(m.casts, m.failures, m.moving, m.duration)
	return m
}

// Hooks returns lifecycle hooks that record every cast.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnCast: func(ctx context.Context, e *domain.CastEvent) {
			c := e.Reading.Case
			m.casts.WithLabelValues(string(c.Method), string(e.Reading.Analysis.Evaluation.Verdict)).Inc()
			m.moving.Observe(float64(len(c.Original.Moving())))
			m.duration.WithLabelValues(string(c.Method)).Observe(e.Duration.Seconds())
		},
		OnError: func(ctx context.Context, e *domain.ErrorEvent) {
			m.failures.WithLabelValues(string(e.Method)).Inc()
		},
	}
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}

// LogHooks returns hooks that log every cast at Info and every rejection at Warn.
func LogHooks(logger *slog.Logger) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnCast: func(ctx context.Context, e *domain.CastEvent) {
			c := e.Reading.Case
			logger.InfoContext(ctx, "cast",
				"id", c.ID,
				"method", c.Method,
				"hexagram", c.Original.Number,
				"verdict", e.Reading.Analysis.Evaluation.Verdict,
				"duration", e.Duration,
			)
		},
		OnError: func(ctx context.Context, e *domain.ErrorEvent) {
			logger.WarnContext(ctx, "cast rejected", "method", e.Method, "error", e.Err)
		},
	}
}

// Chain combines hooks; each callback runs in the order given.
func Chain(hooks ...domain.LifecycleHooks) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnCast: func(ctx context.Context, e *domain.CastEvent) {
			for _, h := range hooks {
				if h.OnCast != nil {
					h.OnCast(ctx, e)
				}
			}
		},
		OnError: func(ctx context.Context, e *domain.ErrorEvent) {
			for _, h := range hooks {
				if h.OnError != nil {
					h.OnError(ctx, e)
				}
			}
		},
	}
}

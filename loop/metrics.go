package loop

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	tickDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "snake",
			Subsystem: "loop",
			Name:      "tick_seconds",
			Help:      "Time spent running and rendering a tick.",
		},
	)
	sessionsStarted = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "snake",
			Subsystem: "loop",
			Name:      "sessions_total",
			Help:      "Sessions started, including restarts.",
		},
	)
	sessionsEnded = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "snake",
			Subsystem: "loop",
			Name:      "sessions_ended_total",
			Help:      "Sessions ended, by status and death cause.",
		},
		[]string{"status", "cause"},
	)
	bitsEaten = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "snake",
			Subsystem: "loop",
			Name:      "bits_eaten_total",
			Help:      "Bits eaten across all sessions.",
		},
	)
)

func instrumentTick() func() {
	t := prometheus.NewTimer(tickDuration)
	return func() { t.ObserveDuration() }
}

func init() {
	prometheus.MustRegister(tickDuration, sessionsStarted, sessionsEnded, bitsEaten)
}

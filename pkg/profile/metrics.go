package profile

import (
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
)

type direction string

const (
	directionStateFromHandler   direction = "state_from_handler"
	directionCommandFromHandler direction = "command_from_handler"
	directionCommandFromItem    direction = "command_from_item"
	directionStateFromItem      direction = "state_from_item"
)

type outcome string

const (
	outcomeForwarded  outcome = "forwarded"
	outcomeSuppressed outcome = "suppressed"
	outcomeUndef      outcome = "undef"
	outcomeIgnored    outcome = "ignored"
)

// Metrics counts the events routed by profiles.
type Metrics struct {
	events        *prometheus.CounterVec
	chainDuration *prometheus.HistogramVec
}

// NewMetrics creates the profile metrics and registers them with reg. A nil reg skips the registration.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		events: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "chain_profile_events_total",
				Help: "Total number of events handled by chain profiles",
			},
			[]string{"direction", "outcome"},
		),
		chainDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "chain_profile_chain_duration_seconds",
				Help:    "Duration of chain executions",
				Buckets: prometheus.ExponentialBuckets(0.00001, 4, 8),
			},
			[]string{"direction"},
		),
	}
	if reg == nil {
		return m, nil
	}
	for _, c := range []prometheus.Collector{m.events, m.chainDuration} {
		if err := reg.Register(c); err != nil {
			return nil, errors.Wrap(err, "unable to register profile metrics")
		}
	}

	return m, nil
}

func (m *Metrics) observeEvent(d direction, o outcome) {
	if m == nil {
		return
	}
	m.events.WithLabelValues(string(d), string(o)).Inc()
}

func (m *Metrics) observeChain(d direction, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.chainDuration.WithLabelValues(string(d)).Observe(elapsed.Seconds())
}

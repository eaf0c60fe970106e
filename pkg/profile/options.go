package profile

import (
	"log/slog"

	"github.com/askiada/go-chain-profile/pkg/chain"
)

type Option func(p *Profile)

// WithLogger sets the logger of the profile.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Profile) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// WithMetrics records the routed events in m.
func WithMetrics(m *Metrics) Option {
	return func(p *Profile) {
		p.metrics = m
	}
}

// WithExecutorOptions configures the chain executor of the profile.
func WithExecutorOptions(opts ...chain.ExecutorOption) Option {
	return func(p *Profile) {
		p.executorOpts = append(p.executorOpts, opts...)
	}
}

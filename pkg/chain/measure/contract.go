package measure

import "time"

type Measure interface {
	AddMetric(name string) Metric
	GetMetric(name string) Metric
	AllMetrics() map[string]Metric
}

type Metric interface {
	AddDuration(elapsed time.Duration)
	AddFailure()
	AddTransportDuration(inputStepName string, elapsed time.Duration)
	AVGDuration() time.Duration
	Total() int64
	Failures() int64
	SetTotalDuration(endDuration time.Duration)
	GetTotalDuration() time.Duration
	AllTransports() map[string]*TransportInfo
}

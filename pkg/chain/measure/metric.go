package measure

import (
	"sync"
	"time"
)

type TransportInfo struct {
	Elapsed time.Duration
	total   int64
}

// AVG returns the average elapsed time of the link.
func (ti *TransportInfo) AVG() time.Duration {
	if ti.total == 0 {
		return 0
	}
	return round(time.Duration(float64(ti.Elapsed) / float64(ti.total)))
}

type DefaultMetric struct {
	allTransports map[string]*TransportInfo
	mu            sync.Mutex
	EndDuration   time.Duration
	stepElapsed   time.Duration
	total         int64
	failures      int64
}

func (mt *DefaultMetric) AddDuration(elapsed time.Duration) {
	mt.mu.Lock()
	defer mt.mu.Unlock()
	mt.total++
	mt.stepElapsed += elapsed
}

func (mt *DefaultMetric) AddFailure() {
	mt.mu.Lock()
	defer mt.mu.Unlock()
	mt.failures++
}

func (mt *DefaultMetric) Total() int64 {
	mt.mu.Lock()
	defer mt.mu.Unlock()

	return mt.total
}

func (mt *DefaultMetric) Failures() int64 {
	mt.mu.Lock()
	defer mt.mu.Unlock()

	return mt.failures
}

// SetTotalDuration accumulates the duration of whole chain runs.
func (mt *DefaultMetric) SetTotalDuration(endDuration time.Duration) {
	mt.mu.Lock()
	defer mt.mu.Unlock()
	mt.EndDuration += endDuration
}

func (mt *DefaultMetric) GetTotalDuration() time.Duration {
	mt.mu.Lock()
	defer mt.mu.Unlock()

	return mt.EndDuration
}

func (mt *DefaultMetric) AddTransportDuration(inputStepName string, elapsed time.Duration) {
	mt.mu.Lock()
	defer mt.mu.Unlock()
	if mt.allTransports[inputStepName] == nil {
		mt.allTransports[inputStepName] = &TransportInfo{}
	}
	ch := mt.allTransports[inputStepName]
	ch.Elapsed += elapsed
	ch.total++
}

func (mt *DefaultMetric) AVGDuration() time.Duration {
	mt.mu.Lock()
	defer mt.mu.Unlock()
	if mt.total == 0 {
		return time.Duration(0)
	}

	return round(time.Duration(float64(mt.stepElapsed) / float64(mt.total)))
}

// AllTransports returns a snapshot of the incoming links of the step.
func (mt *DefaultMetric) AllTransports() map[string]*TransportInfo {
	mt.mu.Lock()
	defer mt.mu.Unlock()

	all := make(map[string]*TransportInfo, len(mt.allTransports))
	for name, info := range mt.allTransports {
		all[name] = &TransportInfo{Elapsed: info.Elapsed, total: info.total}
	}

	return all
}

func round(d time.Duration) time.Duration {
	switch {
	case d > time.Hour:
		d = d.Round(time.Minute)
	case d > time.Minute:
		d = d.Round(time.Second)
	case d > time.Second:
		d = d.Round(time.Millisecond)
	case d > time.Millisecond:
		d = d.Round(time.Microsecond)
	}

	return d
}

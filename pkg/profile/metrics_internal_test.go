package profile

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := NewMetrics(reg)
	require.NoError(t, err)

	p, _ := newTestProfile(t, Config{ToItem: "APPEND:x", ToChannel: "FAIL", UndefOnError: true}, WithMetrics(m))
	p.OnStateUpdateFromHandler(StringType("a"))
	p.OnCommandFromHandler(StringType("a"))
	p.OnCommandFromItem(StringType("a"))
	p.OnStateUpdateFromItem(StringType("a"))

	assert.Equal(t, 1.0, testutil.ToFloat64(m.events.WithLabelValues(string(directionStateFromHandler), string(outcomeForwarded))))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.events.WithLabelValues(string(directionCommandFromHandler), string(outcomeForwarded))))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.events.WithLabelValues(string(directionCommandFromItem), string(outcomeUndef))))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.events.WithLabelValues(string(directionStateFromItem), string(outcomeIgnored))))
	assert.Equal(t, 3, testutil.CollectAndCount(m.chainDuration))
}

func TestMetricsSuppressed(t *testing.T) {
	m, err := NewMetrics(nil)
	require.NoError(t, err)

	p, callback := newTestProfile(t, Config{ToItem: "FAIL"}, WithMetrics(m))
	p.OnStateUpdateFromHandler(StringType("a"))

	assert.Empty(t, callback.emissions())
	assert.Equal(t, 1.0, testutil.ToFloat64(m.events.WithLabelValues(string(directionStateFromHandler), string(outcomeSuppressed))))
}

func TestMetricsRegisterTwice(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := NewMetrics(reg)
	require.NoError(t, err)

	_, err = NewMetrics(reg)
	assert.Error(t, err)
}

func TestNilMetrics(t *testing.T) {
	p, callback := newTestProfile(t, Config{ToItem: "APPEND:x"})
	p.OnStateUpdateFromHandler(StringType("a"))

	assert.Equal(t, []emission{{method: "SendUpdate", value: StringType("ax")}}, callback.emissions())
}

package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/askiada/go-chain-profile/internal/log"
	"github.com/askiada/go-chain-profile/pkg/profile"
	"github.com/askiada/go-chain-profile/pkg/transform"
)

func newTestRunner(t *testing.T, concurrency int) *runner {
	t.Helper()
	cfg, err := parseConfig(strings.NewReader(testConfig))
	require.NoError(t, err)
	factory, err := profile.NewFactory(transform.NewDefaultRegistry())
	require.NoError(t, err)
	r, err := newRunner(cfg, factory, concurrency)
	require.NoError(t, err)
	return r
}

func TestParseEvent(t *testing.T) {
	tcs := map[string]struct {
		line     string
		expected event
	}{
		"handler state":   {line: "handler-state start", expected: event{kind: kindHandlerState, value: "start"}},
		"handler command": {line: "handler-command ON", expected: event{kind: kindHandlerCommand, value: "ON"}},
		"item command":    {line: "item-command a b", expected: event{kind: kindItemCommand, value: "a b"}},
		"item state":      {line: "item-state x", expected: event{kind: kindItemState, value: "x"}},
		"empty value":     {line: "handler-state", expected: event{kind: kindHandlerState}},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			got, err := parseEvent(tc.line)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, got)
		})
	}

	_, err := parseEvent("handler-update x")
	assert.ErrorIs(t, err, errUnknownEventKind)
}

func TestToState(t *testing.T) {
	assert.Equal(t, profile.UNDEF, toState("UNDEF"))
	assert.Equal(t, profile.NULL, toState("NULL"))
	assert.Equal(t, profile.StringType("undef"), toState("undef"))
}

func TestRunnerRun(t *testing.T) {
	for _, concurrency := range []int{0, 1, 2} {
		r := newTestRunner(t, concurrency)

		in := strings.NewReader(`# comment

handler-state start
handler-command start
item-command start
item-state start
handler-state UNDEF
`)
		var out bytes.Buffer
		require.NoError(t, r.run(context.Background(), in, &out))

		assert.Equal(t, strings.Join([]string{
			"suffix\tsendUpdate\tstartfoobarstartfoobar",
			"broken\tsendUpdate\tUNDEF",
			"suffix\tsendCommand\tstartfoobarstartfoobar",
			"broken\tsendUpdate\tUNDEF",
			"suffix\thandleCommand\tstart",
			"broken\tsendUpdate\tUNDEF",
			"suffix\tsendUpdate\tUNDEFfoobarUNDEFfoobar",
			"broken\tsendUpdate\tUNDEF",
		}, "\n")+"\n", out.String())
	}
}

func TestRunnerRunInvalidEvent(t *testing.T) {
	r := newTestRunner(t, 0)

	var out bytes.Buffer
	err := r.run(context.Background(), strings.NewReader("handler-state a\nbogus a\n"), &out)
	assert.ErrorIs(t, err, errUnknownEventKind)
	assert.Contains(t, err.Error(), "line 2")
	assert.Equal(t, "suffix\tsendUpdate\tafoobarafoobar\nbroken\tsendUpdate\tUNDEF\n", out.String())
}

func TestRunnerCanceled(t *testing.T) {
	r := newTestRunner(t, 1)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var out bytes.Buffer
	err := r.run(ctx, strings.NewReader("handler-state a\n"), &out)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, out.String())
}

func TestNewRunnerUnsupportedType(t *testing.T) {
	cfg, err := parseConfig(strings.NewReader("profiles:\n  - name: a\n    type: transform:MAP\n"))
	require.NoError(t, err)
	factory, err := profile.NewFactory(transform.NewDefaultRegistry())
	require.NoError(t, err)

	_, err = newRunner(cfg, factory, 0)
	assert.ErrorIs(t, err, profile.ErrUnsupportedProfileType)
}

func TestRunnerLogsProfileName(t *testing.T) {
	var logs bytes.Buffer
	log.SetupWithWriter(&logs, "warn", "json")
	t.Cleanup(func() { log.Setup("info", "json") })

	r := newTestRunner(t, 0)
	var out bytes.Buffer
	require.NoError(t, r.run(context.Background(), strings.NewReader("handler-state a\n"), &out))

	assert.Contains(t, logs.String(), `"msg":"chain transformation failed"`)
	assert.Contains(t, logs.String(), `"profile":"broken"`)
	assert.NotContains(t, logs.String(), `"profile":"suffix"`)
}

package profile

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/askiada/go-chain-profile/pkg/chain"
)

type emission struct {
	method string
	value  Type
}

type recordingCallback struct {
	mu    sync.Mutex
	calls []emission
}

func (r *recordingCallback) record(method string, value Type) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, emission{method: method, value: value})
}

func (r *recordingCallback) SendUpdate(state State)        { r.record("SendUpdate", state) }
func (r *recordingCallback) SendCommand(command Command)   { r.record("SendCommand", command) }
func (r *recordingCallback) HandleCommand(command Command) { r.record("HandleCommand", command) }

func (r *recordingCallback) emissions() []emission {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := make([]emission, len(r.calls))
	copy(cp, r.calls)
	return cp
}

func testResolver() chain.Resolver {
	return chain.ResolverFunc(func(typeName string) (chain.Transformation, bool) {
		switch typeName {
		case "APPEND":
			return chain.TransformationFunc(func(param, input string) (string, error) {
				return input + param, nil
			}), true
		case "FAIL":
			return chain.TransformationFunc(func(param, input string) (string, error) {
				return "", chain.ErrTransformationFailed
			}), true
		}
		return nil, false
	})
}

func newTestProfile(t *testing.T, cfg Config, opts ...Option) (*Profile, *recordingCallback) {
	t.Helper()
	callback := &recordingCallback{}
	p, err := New(callback, cfg, testResolver(), opts...)
	require.NoError(t, err)
	return p, callback
}

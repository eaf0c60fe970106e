package chain_test

import (
	"strings"
	"sync"

	"github.com/stretchr/testify/assert"

	"github.com/askiada/go-chain-profile/pkg/chain"
)

// countingResolver resolves APPEND, DUPLICATE, UPPER, FAIL and PANIC and counts the invocations per type.
// Resolving BROKEN panics.
type countingResolver struct {
	mu    sync.Mutex
	calls map[string]int
	order []string
}

func newCountingResolver() *countingResolver {
	return &countingResolver{calls: make(map[string]int)}
}

func (r *countingResolver) count(typeName, param string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls[typeName]++
	r.order = append(r.order, typeName+":"+param)
}

func (r *countingResolver) invocations(typeName string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.calls[typeName]
}

func (r *countingResolver) Resolve(typeName string) (chain.Transformation, bool) {
	var fn func(param, input string) (string, error)
	switch typeName {
	case "APPEND":
		fn = func(param, input string) (string, error) { return input + param, nil }
	case "DUPLICATE":
		fn = func(_, input string) (string, error) { return input + input, nil }
	case "UPPER":
		fn = func(_, input string) (string, error) { return strings.ToUpper(input), nil }
	case "FAIL":
		fn = func(_, _ string) (string, error) { return "", assert.AnError }
	case "PANIC":
		fn = func(_, _ string) (string, error) { panic("boom") }
	case "BROKEN":
		panic("resolver failure")
	default:
		return nil, false
	}

	return chain.TransformationFunc(func(param, input string) (string, error) {
		r.count(typeName, param)
		return fn(param, input)
	}), true
}

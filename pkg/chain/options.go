package chain

import "github.com/askiada/go-chain-profile/pkg/chain/model"

type ExecutorOption func(e *Executor)

// WithExecutionOptions registers options observing every execution.
func WithExecutionOptions(opts ...model.ExecutionOption) ExecutorOption {
	return func(e *Executor) {
		e.opts = append(e.opts, opts...)
	}
}

package chain

import (
	"fmt"
	"time"

	"github.com/pkg/errors"

	"github.com/askiada/go-chain-profile/pkg/chain/model"
)

// Executor runs chains against a resolver.
// It holds no state between two executions and can be used concurrently.
type Executor struct {
	resolver Resolver
	opts     []model.ExecutionOption
}

// NewExecutor creates a new executor.
func NewExecutor(resolver Resolver, opts ...ExecutorOption) (*Executor, error) {
	if resolver == nil {
		return nil, ErrResolverMustBeSet
	}
	exec := &Executor{
		resolver: resolver,
	}
	for _, opt := range opts {
		opt(exec)
	}

	return exec, nil
}

// Execute threads input through every step of the chain and returns the output of the last one.
// It stops on the first failing step and returns a *StepError.
func (e *Executor) Execute(c Chain, input string) (string, error) {
	start := time.Now()
	pattern := c.String()

	infos := make([]*model.StepInfo, len(c.steps))
	for i, step := range c.steps {
		infos[i] = model.NewStepInfo(i, step.Type, step.Param)
	}
	for _, opt := range e.opts {
		opt.BeforeChain(pattern, infos)
	}

	value, err := e.run(c, infos, input)
	for _, opt := range e.opts {
		opt.AfterChain(pattern, time.Since(start), err)
	}
	if err != nil {
		return "", err
	}

	return value, nil
}

func (e *Executor) run(c Chain, infos []*model.StepInfo, input string) (string, error) {
	value := input
	parent := model.StartStep
	for i, step := range c.steps {
		startFn := time.Now()
		out, err := e.apply(step, value)
		if err != nil {
			stepErr := &StepError{Index: i, Step: step, Err: err}
			for _, opt := range e.opts {
				opt.OnStepError(parent, infos[i], stepErr)
			}
			return "", stepErr
		}
		endFn := time.Since(startFn)
		for _, opt := range e.opts {
			opt.OnStepOutput(parent, infos[i], endFn)
		}
		value = out
		parent = infos[i]
	}

	return value, nil
}

func (e *Executor) apply(step Step, input string) (out string, err error) {
	// Resolvers and transformations are user supplied, a panic in either fails the step.
	defer func() {
		if r := recover(); r != nil {
			out, err = "", &transformationError{err: fmt.Errorf("panic: %v", r)}
		}
	}()

	transformation, ok := e.resolver.Resolve(step.Type)
	if !ok || transformation == nil {
		return "", errors.Wrapf(ErrTransformationNotFound, "type %q", step.Type)
	}

	out, err = transformation.Transform(step.Param, input)
	if err != nil {
		return "", &transformationError{err: err}
	}

	return out, nil
}

package model

import "time"

// ExecutionOption defines the interface for options observing a chain execution.
// All the methods are called synchronously by the executor.
type ExecutionOption interface {
	// BeforeChain runs before the first step of a chain is executed.
	BeforeChain(pattern string, steps []*StepInfo)
	// OnStepOutput runs everytime a step produced a value.
	OnStepOutput(parentStep, step *StepInfo, computationDuration time.Duration)
	// OnStepError runs when a step failed. No later step is executed.
	OnStepError(parentStep, step *StepInfo, err error)
	// AfterChain runs once the chain is finished, err is the failure of the chain if any.
	AfterChain(pattern string, totalDuration time.Duration, err error)
}

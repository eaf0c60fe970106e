package chain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/askiada/go-chain-profile/pkg/chain"
	"github.com/askiada/go-chain-profile/pkg/chain/model"
)

type recordingOption struct {
	events []string
	err    error
}

func (r *recordingOption) BeforeChain(pattern string, steps []*model.StepInfo) {
	r.events = append(r.events, "before "+pattern)
}

func (r *recordingOption) OnStepOutput(parentStep, step *model.StepInfo, _ time.Duration) {
	r.events = append(r.events, "output "+parentStep.Key()+" -> "+step.Key())
}

func (r *recordingOption) OnStepError(parentStep, step *model.StepInfo, err error) {
	r.events = append(r.events, "error "+parentStep.Key()+" -> "+step.Key())
}

func (r *recordingOption) AfterChain(pattern string, _ time.Duration, err error) {
	r.events = append(r.events, "after "+pattern)
	r.err = err
}

func TestWithExecutionOptions(t *testing.T) {
	t.Parallel()

	opt := &recordingOption{}
	exec, err := chain.NewExecutor(newCountingResolver(), chain.WithExecutionOptions(opt))
	require.NoError(t, err)

	_, err = exec.Execute(chain.Parse("APPEND:a∩DUPLICATE"), "x")
	require.NoError(t, err)
	assert.Equal(t, []string{
		"before APPEND:a∩DUPLICATE",
		"output start -> 0:APPEND",
		"output 0:APPEND -> 1:DUPLICATE",
		"after APPEND:a∩DUPLICATE",
	}, opt.events)
	assert.NoError(t, opt.err)
}

func TestWithExecutionOptionsFailure(t *testing.T) {
	t.Parallel()

	opt := &recordingOption{}
	exec, err := chain.NewExecutor(newCountingResolver(), chain.WithExecutionOptions(opt))
	require.NoError(t, err)

	_, err = exec.Execute(chain.Parse("APPEND:a∩FAIL∩DUPLICATE"), "x")
	require.Error(t, err)
	assert.Equal(t, []string{
		"before APPEND:a∩FAIL∩DUPLICATE",
		"output start -> 0:APPEND",
		"error 0:APPEND -> 1:FAIL",
		"after APPEND:a∩FAIL∩DUPLICATE",
	}, opt.events)
	assert.ErrorIs(t, opt.err, chain.ErrTransformationFailed)
}

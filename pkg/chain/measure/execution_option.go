package measure

import (
	"time"

	"github.com/askiada/go-chain-profile/pkg/chain/model"
)

type chainMeasure struct {
	Measure
}

func (cm *chainMeasure) BeforeChain(pattern string, steps []*model.StepInfo) {
	cm.AddMetric(model.StartStep.Key())
	for _, step := range steps {
		cm.AddMetric(step.Key())
	}
	cm.AddMetric(model.EndStep.Key())
}

func (cm *chainMeasure) OnStepOutput(parentStep, step *model.StepInfo, computationDuration time.Duration) {
	mt := cm.AddMetric(step.Key())
	mt.AddDuration(computationDuration)
	mt.AddTransportDuration(parentStep.Key(), computationDuration)
}

func (cm *chainMeasure) OnStepError(parentStep, step *model.StepInfo, err error) {
	cm.AddMetric(step.Key()).AddFailure()
}

func (cm *chainMeasure) AfterChain(pattern string, totalDuration time.Duration, err error) {
	mt := cm.AddMetric(model.EndStep.Key())
	if err != nil {
		mt.AddFailure()
		return
	}
	mt.AddDuration(totalDuration)
	mt.SetTotalDuration(totalDuration)
}

// ChainMeasure returns an execution option recording the metrics of every step into measure.
func ChainMeasure(measure Measure) model.ExecutionOption {
	return &chainMeasure{measure}
}

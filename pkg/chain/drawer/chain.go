package drawer

import (
	"github.com/pkg/errors"

	"github.com/askiada/go-chain-profile/pkg/chain"
	"github.com/askiada/go-chain-profile/pkg/chain/model"
)

// AddChain adds the steps of c to the drawer, linked from the start step to the end step.
func AddChain(d Drawer, c chain.Chain) error {
	err := d.AddStep(model.StartStep.Key())
	if err != nil {
		return errors.Wrap(err, "unable to add start step to drawer")
	}
	err = d.AddStep(model.EndStep.Key())
	if err != nil {
		return errors.Wrap(err, "unable to add end step to drawer")
	}

	parent := model.StartStep
	for i, step := range c.Steps() {
		info := model.NewStepInfo(i, step.Type, step.Param)
		err = d.AddStep(info.Key())
		if err != nil {
			return err
		}
		err = d.AddLink(parent.Key(), info.Key())
		if err != nil {
			return err
		}
		parent = info
	}

	err = d.AddLink(parent.Key(), model.EndStep.Key())
	if err != nil {
		return err
	}

	return nil
}

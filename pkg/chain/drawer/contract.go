package drawer

import (
	"io"

	"github.com/askiada/go-chain-profile/pkg/chain/measure"
)

// Drawer is an interface that defines the methods for drawing a chain.
type Drawer interface {
	// AddStep adds a step to the chain drawer.
	AddStep(stepName string) error
	// AddLink adds a link between parent and children steps.
	AddLink(parentStepName, childrenStepName string) error
	// AddMeasure decorates the steps and links with the metrics of measure.
	AddMeasure(measure measure.Measure) error
	// Draw writes the graph of the chain to w.
	Draw(w io.Writer) error
}

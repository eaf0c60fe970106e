package model

import "strconv"

type stepType string

const (
	StartStepType     stepType = "start"
	TransformStepType stepType = "transform"
	EndStepType       stepType = "end"
)

// StepInfo describes one step of a chain while it is executed.
type StepInfo struct {
	Type  stepType
	Index int
	Name  string
	Param string
}

// Key returns the identifier of the step inside its chain, e.g. "1:APPEND".
func (s *StepInfo) Key() string {
	if s.Type != TransformStepType {
		return s.Name
	}
	return strconv.Itoa(s.Index) + ":" + s.Name
}

var (
	StartStep = &StepInfo{Type: StartStepType, Index: -1, Name: "start"}
	EndStep   = &StepInfo{Type: EndStepType, Index: -1, Name: "end"}
)

// NewStepInfo creates the info of the transformation step at the given position.
func NewStepInfo(index int, name, param string) *StepInfo {
	return &StepInfo{
		Type:  TransformStepType,
		Index: index,
		Name:  name,
		Param: param,
	}
}

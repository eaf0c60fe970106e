package chain

import (
	"strings"
)

// Delimiter separates the steps of a chain pattern.
const Delimiter = "∩"

const paramSeparator = ":"

// Step is a single transformation of a chain.
type Step struct {
	// Type selects the transformation in the resolver.
	Type string
	// Param is passed verbatim to the transformation.
	Param string
}

func (s Step) String() string {
	if s.Param == "" {
		return s.Type
	}
	return s.Type + paramSeparator + s.Param
}

// Chain is an ordered list of steps. The zero value is the identity chain.
type Chain struct {
	steps []Step
}

// New creates a chain from the given steps.
func New(steps ...Step) Chain {
	if len(steps) == 0 {
		return Chain{}
	}
	cp := make([]Step, len(steps))
	copy(cp, steps)
	return Chain{steps: cp}
}

// Parse splits a pattern into a chain. It never fails: blank segments are skipped and unknown types
// are only detected when the chain is executed.
func Parse(pattern string) Chain {
	if strings.TrimSpace(pattern) == "" {
		return Chain{}
	}

	var steps []Step
	for _, segment := range strings.Split(pattern, Delimiter) {
		if strings.TrimSpace(segment) == "" {
			continue
		}
		typeName, param, _ := strings.Cut(segment, paramSeparator)
		steps = append(steps, Step{Type: typeName, Param: param})
	}

	return Chain{steps: steps}
}

// Steps returns a copy of the steps of the chain.
func (c Chain) Steps() []Step {
	if len(c.steps) == 0 {
		return nil
	}
	cp := make([]Step, len(c.steps))
	copy(cp, c.steps)
	return cp
}

// Len returns the number of steps.
func (c Chain) Len() int {
	return len(c.steps)
}

// IsIdentity reports whether the chain has no step.
func (c Chain) IsIdentity() bool {
	return len(c.steps) == 0
}

// String returns the canonical pattern of the chain.
func (c Chain) String() string {
	parts := make([]string, len(c.steps))
	for i, step := range c.steps {
		parts[i] = step.String()
	}
	return strings.Join(parts, Delimiter)
}

package transform

import (
	"github.com/pkg/errors"

	"github.com/askiada/go-chain-profile/pkg/chain"
)

const (
	AppendType    = "APPEND"
	DuplicateType = "DUPLICATE"
	FailType      = "FAIL"
)

var ErrAlwaysFails = errors.New("transformation always fails")

// Append appends param to the input.
func Append(param, input string) (string, error) {
	return input + param, nil
}

// Duplicate repeats the input twice, param is ignored.
func Duplicate(_, input string) (string, error) {
	return input + input, nil
}

// Fail always returns ErrAlwaysFails.
func Fail(param, _ string) (string, error) {
	return "", errors.Wrapf(ErrAlwaysFails, "param %q", param)
}

// Builtins returns the built-in transformations keyed by type name.
func Builtins() map[string]chain.Transformation {
	return map[string]chain.Transformation{
		AppendType:    chain.TransformationFunc(Append),
		DuplicateType: chain.TransformationFunc(Duplicate),
		FailType:      chain.TransformationFunc(Fail),
	}
}

// Package chain provides the parsing and the execution of transformation chains.
//
// A chain is an ordered list of named transformation steps described by a compact pattern such as
// "APPEND:foo∩APPEND:bar∩DUPLICATE". Steps are separated by the Delimiter rune and each step is made of a
// transformation type and an optional parameter separated by the first colon.
//
// The executor threads a string value through every step from left to right, the output of a step being the
// input of the next one. The execution stops on the first failure: either the transformation type cannot be
// resolved or the transformation itself reports an error. No partial result is returned in that case.
//
// Transformations are looked up by name through a Resolver on every execution, so services can be added or
// removed between two calls without rebuilding the chain.
//
// A chain parameter cannot contain the Delimiter, there are no escaping rules.
package chain

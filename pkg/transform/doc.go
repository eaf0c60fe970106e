// Package transform provides a dynamic registry of named transformations and a few built-in ones.
//
// The registry can be modified while chains are executed: services register and unregister at runtime and
// every chain execution resolves its steps again.
package transform

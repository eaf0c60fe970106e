// Package model provides the data structures shared by the chain package and its options.
// It defines the information describing a step while a chain is executed,
// and the interface that execution options implement to observe a chain run.
package model

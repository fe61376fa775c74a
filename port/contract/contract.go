// Package contract defines the shape of reusable test suites.
package contract

import (
	"testing"

	"go.llib.dev/testcase"
)

// Make creates a fresh subject for a single test.
type Make[Subject any] func(tb testing.TB) Subject

// Contract is a suite of tests that any implementation of a behaviour must pass.
// It can be run on its own with Test, or mounted into a testcase.Spec.
type Contract interface {
	testcase.Suite
	Test(*testing.T)
	Benchmark(*testing.B)
}

// Package calc demonstrates faking a pure function that a computation calls
// more than once.
package calc

import (
	"github.com/jakob-rzeppa/fnmock/double"
	"github.com/jakob-rzeppa/fnmock/double/registry"
)

const addTwoFuncName = "calc.addTwo"

// AddTwoFunc is the signature of the fakeable helper.
type AddTwoFunc func(x int) int

// Calculator combines results of a swappable helper function.
type Calculator struct {
	addTwo func() AddTwoFunc
}

// NewCalculator wires the calculator's fakeable helper against the doubles of
// the given execution context.
func NewCalculator(mode double.Mode, store *registry.Store) (*Calculator, error) {
	fake, err := registry.FakeFor[AddTwoFunc](store, addTwoFuncName)
	if err != nil {
		return nil, err
	}

	return &Calculator{
		addTwo: double.WireFake(mode, fake, addTwo),
	}, nil
}

// Calc sums two applications of the helper.
func (c *Calculator) Calc(x int) int {
	addTwo := c.addTwo()

	return addTwo(x) + addTwo(x)
}

// addTwo is the real implementation.
func addTwo(x int) int {
	return x + 2
}

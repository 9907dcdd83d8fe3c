// SPDX-License-Identifier: MIT
// Package: lvtrain/train
//
// train.go — Train facade over sequence, validate and reorder.

package train

import (
	"fmt"

	"github.com/katalvlaran/lvtrain/car"
	"github.com/katalvlaran/lvtrain/reorder"
	"github.com/katalvlaran/lvtrain/sequence"
	"github.com/katalvlaran/lvtrain/validate"
)

// Train is an ordered sequence of cars. The zero value is an empty train.
type Train struct {
	cars sequence.Sequence
}

// New returns an empty train.
func New() *Train {
	return &Train{}
}

// FromClasses builds a train with one car per class, in order.
// Returns an error wrapping car.ErrInvalidClass on the first unknown class;
// no train is returned in that case.
func FromClasses(classes ...car.Class) (*Train, error) {
	t := &Train{cars: *sequence.New(len(classes))}
	for i, c := range classes {
		cc, err := car.New(c)
		if err != nil {
			return nil, fmt.Errorf("car %d: %w", i, err)
		}
		t.AddCart(cc)
	}

	return t, nil
}

// AddCart appends c at the rear of the train.
func (t *Train) AddCart(c car.Car) {
	t.cars.Append(c)
}

// IsValid reports whether the train satisfies every composition rule.
func (t *Train) IsValid() bool {
	return validate.IsValid(&t.cars)
}

// Violation returns the first broken rule, or nil for a valid train.
func (t *Train) Violation() *validate.Violation {
	return validate.Check(&t.cars)
}

// Sort rearranges the train in place into a valid one; see package reorder.
func (t *Train) Sort(opts ...reorder.Option) {
	reorder.Sort(&t.cars, opts...)
}

// Classes returns a snapshot of the car classes from front to rear.
func (t *Train) Classes() []car.Class {
	return t.cars.Classes()
}

// Len returns the number of cars.
func (t *Train) Len() int {
	return t.cars.Len()
}

// String renders the train as "[locomotive seating freight]".
func (t *Train) String() string {
	return t.cars.String()
}

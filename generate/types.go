// SPDX-License-Identifier: MIT
// Package: lvtrain/generate
//
// types.go — sentinel errors and functional options.
//
// Option constructors panic on meaningless inputs (nil RNG); values that are
// only wrong in combination (every weight zero) surface as ErrOptionViolation
// when Cars runs.

package generate

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/katalvlaran/lvtrain/car"
)

var (
	// ErrBadSize indicates a negative number of cars.
	ErrBadSize = errors.New("generate: invalid size")

	// ErrOptionViolation indicates options that cannot produce any car.
	ErrOptionViolation = errors.New("generate: invalid option value")
)

// defaultSeed is used when neither WithSeed nor WithRand is given.
const defaultSeed int64 = 1

// Option customizes a generator.
type Option func(*config)

type config struct {
	rng     *rand.Rand
	weights map[car.Class]int
	err     error
}

func defaultConfig() config {
	w := make(map[car.Class]int, 5)
	for _, c := range car.AllClasses() {
		w[c] = 1
	}

	return config{weights: w}
}

// WithSeed seeds a private RNG; the same seed reproduces the same stream.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand uses r as the random source. Panics on nil.
// r is not safe for concurrent use; do not share it across goroutines.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("generate: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// WithWeight sets the relative frequency of a class (default 1 each).
// Zero removes the class from the stream; a negative weight or an unknown
// class is recorded and reported as ErrOptionViolation.
func WithWeight(class car.Class, weight int) Option {
	return func(c *config) {
		switch {
		case !class.Valid():
			c.err = fmt.Errorf("%w: %w", ErrOptionViolation, car.ErrInvalidClass)
		case weight < 0:
			c.err = fmt.Errorf("%w: weight of %s is negative (%d)", ErrOptionViolation, class, weight)
		default:
			c.weights[class] = weight
		}
	}
}

// SPDX-License-Identifier: MIT
// Package: lvtrain/generate
//
// generate.go — weighted random car draws.

package generate

import (
	"fmt"

	"github.com/katalvlaran/lvtrain/car"
)

// Cars draws n cars according to the configured weights.
// n == 0 yields an empty, non-nil slice.
// Complexity: O(n) time and space.
func Cars(n int, opts ...Option) ([]car.Car, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: n=%d", ErrBadSize, n)
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}
	if cfg.rng == nil {
		WithSeed(defaultSeed)(&cfg)
	}

	// Cumulative weights in class declaration order keep draws reproducible
	// regardless of map iteration order.
	classes := car.AllClasses()
	cum := make([]int, len(classes))
	total := 0
	for i, c := range classes {
		total += cfg.weights[c]
		cum[i] = total
	}
	if total == 0 {
		return nil, fmt.Errorf("%w: all weights are zero", ErrOptionViolation)
	}

	out := make([]car.Car, 0, n)
	for len(out) < n {
		x := cfg.rng.Intn(total)
		for i, bound := range cum {
			if x < bound {
				out = append(out, car.Must(classes[i]))
				break
			}
		}
	}

	return out, nil
}

// Classes is Cars reduced to the class of every car.
func Classes(n int, opts ...Option) ([]car.Class, error) {
	cars, err := Cars(n, opts...)
	if err != nil {
		return nil, err
	}
	out := make([]car.Class, len(cars))
	for i, c := range cars {
		out[i] = c.Class()
	}

	return out, nil
}

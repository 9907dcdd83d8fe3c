// Package reorder_test holds fixtures and structural predicates for Sort.
package reorder_test

import (
	"testing"

	"github.com/katalvlaran/lvtrain/car"
	"github.com/katalvlaran/lvtrain/sequence"
	"github.com/stretchr/testify/require"
)

const (
	L = car.Locomotive
	S = car.Seating
	Z = car.Sleeping
	D = car.Dining
	F = car.Freight
)

// seq builds a sequence from classes.
func seq(classes ...car.Class) *sequence.Sequence {
	s := sequence.New(len(classes) + 2)
	for _, c := range classes {
		s.Append(car.Must(c))
	}
	return s
}

// passengersBeforeFreight reports whether no passenger car trails a freight car.
func passengersBeforeFreight(cs []car.Class) bool {
	freight := false
	for _, c := range cs {
		if c == F {
			freight = true
		}
		if c.IsPassenger() && freight {
			return false
		}
	}
	return true
}

// sleepingConsecutive reports whether all sleeping cars form one run.
func sleepingConsecutive(cs []car.Class) bool {
	runs, in := 0, false
	for _, c := range cs {
		switch {
		case c == Z && !in:
			runs++
			in = true
		case c != Z:
			in = false
		}
	}
	return runs <= 1
}

// diningReachable reports whether no sleeping car lies between any seating
// car and any dining car. Quadratic on purpose: independent of the validator.
func diningReachable(cs []car.Class) bool {
	for i, a := range cs {
		for j := i + 1; j < len(cs); j++ {
			b := cs[j]
			if !(a == S && b == D) && !(a == D && b == S) {
				continue
			}
			for k := i + 1; k < j; k++ {
				if cs[k] == Z {
					return false
				}
			}
		}
	}
	return true
}

// only keeps the cars of class c.
func only(cs []car.Class, c car.Class) []car.Class {
	var out []car.Class
	for _, x := range cs {
		if x == c {
			out = append(out, x)
		}
	}
	return out
}

// count returns how many cars of class c appear in cs.
func count(cs []car.Class, c car.Class) int {
	return len(only(cs, c))
}

// requireSorted asserts every structural postcondition of Sort on out,
// given the classes the train had before sorting.
func requireSorted(t *testing.T, in []car.Class, s *sequence.Sequence) {
	t.Helper()
	require.NoError(t, s.CheckInvariants())
	out := s.Classes()

	require.True(t, passengersBeforeFreight(out), "freight before passenger: %v", out)
	require.True(t, sleepingConsecutive(out), "sleeping split: %v", out)
	require.True(t, diningReachable(out), "dining blocked: %v", out)

	require.Equal(t, L, out[0], "front locomotive: %v", out)
	locos := 1
	if len(out) > 10 {
		locos = 2
		require.Equal(t, L, out[len(out)-1], "rear locomotive: %v", out)
	}
	require.Equal(t, locos, count(out, L), "locomotive count: %v", out)

	for _, c := range []car.Class{S, Z, D, F} {
		require.Equal(t, count(in, c), count(out, c), "%s cars must survive: %v -> %v", c, in, out)
	}
}

// Package sequence_test contains fixtures shared by the sequence tests.
package sequence_test

import (
	"testing"

	"github.com/katalvlaran/lvtrain/car"
	"github.com/katalvlaran/lvtrain/sequence"
	"github.com/stretchr/testify/require"
)

// Short aliases keep table rows readable.
const (
	L = car.Locomotive
	S = car.Seating
	Z = car.Sleeping
	D = car.Dining
	F = car.Freight
)

// build appends one car per class and returns the sequence with its handles in order.
func build(t *testing.T, classes ...car.Class) (*sequence.Sequence, []sequence.Handle) {
	t.Helper()
	s := sequence.New(len(classes))
	hs := make([]sequence.Handle, 0, len(classes))
	for _, c := range classes {
		hs = append(hs, s.Append(car.Must(c)))
	}
	requireSound(t, s)

	return s, hs
}

// requireSound fails the test when the sequence invariants do not hold.
func requireSound(t *testing.T, s *sequence.Sequence) {
	t.Helper()
	require.NoError(t, s.CheckInvariants())
}

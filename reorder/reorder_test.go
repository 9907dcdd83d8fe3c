package reorder_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/katalvlaran/lvtrain/car"
	"github.com/katalvlaran/lvtrain/generate"
	"github.com/katalvlaran/lvtrain/reorder"
	"github.com/katalvlaran/lvtrain/sequence"
	"github.com/katalvlaran/lvtrain/validate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSort_ScenarioMixed fixes freight in front, a blocked dining car and a
// locomotive in the middle of a short train.
func TestSort_ScenarioMixed(t *testing.T) {
	in := []car.Class{S, F, Z, D, L, S, F}
	s := seq(in...)
	require.False(t, validate.IsValid(s))

	reorder.Sort(s)

	// The input locomotive is discarded and one fresh one leads the train.
	assert.Equal(t, 7, s.Len())
	assert.True(t, validate.IsValid(s), "sorted: %v", s)
	requireSorted(t, in, s)
	if diff := cmp.Diff([]car.Class{L, S, S, D, Z, F, F}, s.Classes()); diff != "" {
		t.Errorf("layout mismatch (-want +got):\n%s", diff)
	}
}

// TestSort_ScenarioLong puts locomotives at both ends of an eleven-car
// train that had none.
func TestSort_ScenarioLong(t *testing.T) {
	in := []car.Class{S, Z, F, D, S, F, Z, S, F, S, F}
	s := seq(in...)

	reorder.Sort(s)

	out := s.Classes()
	assert.Equal(t, 13, len(out))
	assert.Equal(t, L, out[0])
	assert.Equal(t, L, out[len(out)-1])
	assert.True(t, validate.IsValid(s), "sorted: %v", s)
	requireSorted(t, in, s)
}

// TestSort_ScenarioBlockedDining removes the sleeping barrier between
// seating and dining.
func TestSort_ScenarioBlockedDining(t *testing.T) {
	in := []car.Class{L, S, Z, D, F}
	s := seq(in...)
	v := validate.Check(s)
	require.NotNil(t, v)
	assert.Equal(t, validate.RuleDiningBlocked, v.Rule)

	reorder.Sort(s)

	assert.True(t, validate.IsValid(s), "sorted: %v", s)
	assert.True(t, diningReachable(s.Classes()))
	assert.Equal(t, []car.Class{L, S, D, Z, F}, s.Classes())
}

// TestSort_ScenarioNoDining keeps passengers ahead of freight and sleeping together.
func TestSort_ScenarioNoDining(t *testing.T) {
	in := []car.Class{F, Z, S, Z, L, F, S}
	s := seq(in...)
	reorder.Sort(s)
	assert.True(t, validate.IsValid(s), "sorted: %v", s)
	requireSorted(t, in, s)
}

// TestSort_SmallTrains leaves trains of at most one car untouched.
func TestSort_SmallTrains(t *testing.T) {
	loco := seq(L)
	reorder.Sort(loco)
	assert.Equal(t, []car.Class{L}, loco.Classes())
	assert.True(t, validate.IsValid(loco))

	// A lone non-locomotive stays invalid: nothing is fabricated around it.
	lone := seq(S)
	reorder.Sort(lone)
	assert.Equal(t, []car.Class{S}, lone.Classes())
	assert.False(t, validate.IsValid(lone))

	empty := seq()
	reorder.Sort(empty)
	assert.True(t, empty.IsEmpty())

	reorder.Sort(nil)
}

// TestSort_TwoCars checks the smallest train that is actually rebuilt.
func TestSort_TwoCars(t *testing.T) {
	s := seq(L, S)
	reorder.Sort(s)
	assert.Equal(t, []car.Class{L, S}, s.Classes())
	assert.True(t, validate.IsValid(s))

	s = seq(S, L)
	reorder.Sort(s)
	assert.Equal(t, []car.Class{L, S}, s.Classes())
}

// TestSort_OnlyLocomotives collapses many locomotives into one.
func TestSort_OnlyLocomotives(t *testing.T) {
	s := seq(L, L, L, L)
	reorder.Sort(s)
	assert.Equal(t, []car.Class{L}, s.Classes())
	assert.True(t, validate.IsValid(s))
	require.NoError(t, s.CheckInvariants())
}

// TestSort_LongThreshold pins when the rear locomotive appears.
func TestSort_LongThreshold(t *testing.T) {
	nine := seq(S, S, S, S, S, S, S, S, S)
	reorder.Sort(nine)
	assert.Equal(t, 10, nine.Len())
	assert.Equal(t, 1, count(nine.Classes(), L))
	assert.True(t, validate.IsValid(nine))

	ten := seq(S, S, S, S, S, S, S, S, S, S)
	reorder.Sort(ten)
	assert.Equal(t, 12, ten.Len())
	assert.Equal(t, 2, count(ten.Classes(), L))
	assert.True(t, validate.IsValid(ten))
}

// TestSort_SeatingOrderPreserved tracks seating cars by handle.
func TestSort_SeatingOrderPreserved(t *testing.T) {
	s := sequence.New(8)
	var seats []sequence.Handle
	for _, c := range []car.Class{F, S, D, S, Z, L, S, F} {
		h := s.Append(car.Must(c))
		if c == S {
			seats = append(seats, h)
		}
	}

	reorder.Sort(s)

	var got []sequence.Handle
	for h, c := range s.All() {
		if c.Class() == S {
			got = append(got, h)
		}
	}
	assert.Equal(t, seats, got)
}

// TestSort_AlreadyValid re-sorts a canonical train.
func TestSort_AlreadyValid(t *testing.T) {
	in := []car.Class{L, S, S, Z, Z, D, F, F}
	s := seq(in...)
	reorder.Sort(s)
	assert.True(t, validate.IsValid(s), "sorted: %v", s)
	requireSorted(t, in, s)
	assert.Equal(t, []car.Class{L, S, S, D, Z, Z, F, F}, s.Classes())
}

// TestSort_OnMove reports every car in pass order plus the inserted locomotives.
func TestSort_OnMove(t *testing.T) {
	var moves []reorder.Move
	s := seq(S, F, L, D)
	reorder.Sort(s, reorder.WithOnMove(func(m reorder.Move) { moves = append(moves, m) }))

	want := []reorder.Move{
		{Class: S, Position: 0, Action: reorder.Kept},
		{Class: F, Position: 1, Action: reorder.Relocated},
		{Class: L, Position: 2, Action: reorder.Discarded},
		{Class: D, Position: 3, Action: reorder.Relocated},
		{Class: L, Position: -1, Action: reorder.Inserted},
	}
	assert.Equal(t, want, moves)
	assert.Equal(t, []car.Class{L, S, D, F}, s.Classes())

	assert.Panics(t, func() { reorder.WithOnMove(nil) })
	assert.Equal(t, "relocated", reorder.Relocated.String())
}

// TestSort_Properties sorts generated trains of many sizes and seeds, twice.
func TestSort_Properties(t *testing.T) {
	for seed := int64(1); seed <= 25; seed++ {
		for n := 2; n <= 40; n += 3 {
			in, err := generate.Classes(n, generate.WithSeed(seed))
			require.NoError(t, err)

			s := seq(in...)
			reorder.Sort(s)
			require.True(t, validate.IsValid(s), "seed=%d n=%d in=%v out=%v", seed, n, in, s)
			requireSorted(t, in, s)

			once := s.Classes()
			reorder.Sort(s)
			require.True(t, validate.IsValid(s), "second sort: seed=%d n=%d out=%v", seed, n, s)
			requireSorted(t, once, s)
		}
	}
}

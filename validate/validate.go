// SPDX-License-Identifier: MIT
// Package: lvtrain/validate
//
// validate.go — the single-pass rule checker.

package validate

import (
	"github.com/katalvlaran/lvtrain/car"
	"github.com/katalvlaran/lvtrain/sequence"
)

// IsValid reports whether s satisfies every composition rule.
// Identical input always yields the identical verdict.
// Complexity: O(n) time, O(1) space.
func IsValid(s *sequence.Sequence) bool {
	return Check(s) == nil
}

// Check returns the first broken rule of s, or nil when s is valid.
// A nil sequence is treated as empty.
// Complexity: O(n) time, O(1) space.
func Check(s *sequence.Sequence) *Violation {
	if s == nil || s.IsEmpty() {
		return &Violation{Rule: RuleEmpty, Position: -1}
	}

	n := s.Len()
	head, tail := s.Head(), s.Tail()
	headCar, _ := s.Car(head)
	tailCar, _ := s.Car(tail)

	// A lone locomotive is a complete train.
	if n == 1 && headCar.Class() == car.Locomotive {
		return nil
	}

	if headCar.Class() != car.Locomotive {
		return &Violation{Rule: RuleFrontLocomotive, Position: 0, Class: headCar.Class()}
	}
	tailIsLoco := tailCar.Class() == car.Locomotive
	if (n <= LongTrain && tailIsLoco) || (n > LongTrain && !tailIsLoco) {
		return &Violation{Rule: RuleRearLocomotive, Position: n - 1, Class: tailCar.Class()}
	}

	var st scan
	pos := 1
	for h := s.Next(head); h != sequence.None; h = s.Next(h) {
		c, _ := s.Car(h)
		if rule := st.step(c.Class(), h == tail); rule != 0 {
			return &Violation{Rule: rule, Position: pos, Class: c.Class()}
		}
		pos++
	}

	return nil
}

// scan holds the flags of the forward pass. The zero value is the start state.
type scan struct {
	freightSeen bool

	sleepingRuns int  // sleeping blocks started so far
	inSleeping   bool // previous car was sleeping

	seatingSeen           bool
	diningSeen            bool
	seatingBeforeSleeping bool // a sleeping car followed some seating car
	diningBeforeSleeping  bool // a sleeping car followed some dining car
}

// step consumes one car and returns the rule it breaks, or 0.
func (st *scan) step(c car.Class, isTail bool) Rule {
	if c.IsPassenger() && st.freightSeen {
		return RulePassengerAfterFreight
	}

	switch c {
	case car.Locomotive:
		if !isTail {
			return RuleInteriorLocomotive
		}

	case car.Sleeping:
		if st.sleepingRuns > 0 && !st.inSleeping {
			return RuleSleepingSplit
		}
		if !st.inSleeping {
			st.sleepingRuns++
		}
		st.inSleeping = true
		if st.seatingSeen {
			st.seatingBeforeSleeping = true
		}
		if st.diningSeen {
			st.diningBeforeSleeping = true
		}

	case car.Dining:
		if st.seatingBeforeSleeping {
			return RuleDiningBlocked
		}
		st.diningSeen = true
		st.inSleeping = false

	case car.Seating:
		if st.diningBeforeSleeping {
			return RuleDiningBlocked
		}
		st.seatingSeen = true
		st.inSleeping = false

	case car.Freight:
		st.freightSeen = true
		st.inSleeping = false
	}

	return 0
}

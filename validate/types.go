// SPDX-License-Identifier: MIT
// Package: lvtrain/validate
//
// types.go — rule identifiers and the Violation value.

package validate

import (
	"fmt"

	"github.com/katalvlaran/lvtrain/car"
)

// LongTrain is the largest size that needs only a front locomotive.
// Longer trains need a locomotive at both ends.
const LongTrain = 10

// Rule identifies one composition rule.
type Rule uint8

const (
	// RuleEmpty: a train needs at least one car.
	RuleEmpty Rule = iota + 1
	// RuleFrontLocomotive: the head must be a locomotive.
	RuleFrontLocomotive
	// RuleRearLocomotive: the tail must be a locomotive iff the train is long.
	RuleRearLocomotive
	// RuleInteriorLocomotive: locomotives only at head or tail.
	RuleInteriorLocomotive
	// RulePassengerAfterFreight: passenger cars precede every freight car.
	RulePassengerAfterFreight
	// RuleSleepingSplit: sleeping cars are consecutive.
	RuleSleepingSplit
	// RuleDiningBlocked: no sleeping car between seating and dining.
	RuleDiningBlocked
)

func (r Rule) String() string {
	switch r {
	case RuleEmpty:
		return "empty train"
	case RuleFrontLocomotive:
		return "front locomotive"
	case RuleRearLocomotive:
		return "rear locomotive"
	case RuleInteriorLocomotive:
		return "interior locomotive"
	case RulePassengerAfterFreight:
		return "passenger after freight"
	case RuleSleepingSplit:
		return "sleeping cars split"
	case RuleDiningBlocked:
		return "dining blocked by sleeping"
	default:
		return fmt.Sprintf("rule(%d)", uint8(r))
	}
}

// Violation describes the first rule a train breaks.
//
// Position is the 0-based index of the offending car (-1 for an empty train)
// and Class its class (zero for an empty train).
type Violation struct {
	Rule     Rule
	Position int
	Class    car.Class
}

// Error implements error so a Violation can be returned or wrapped by callers.
func (v *Violation) Error() string {
	if v.Position < 0 {
		return "validate: " + v.Rule.String()
	}

	return fmt.Sprintf("validate: %s at position %d (%s)", v.Rule, v.Position, v.Class)
}

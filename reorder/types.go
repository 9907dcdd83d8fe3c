// Package reorder defines options and move notifications for Sort.
package reorder

import (
	"fmt"

	"github.com/katalvlaran/lvtrain/car"
)

// Action tells what Sort did with one car.
type Action uint8

const (
	// Kept: a seating car left in place.
	Kept Action = iota + 1
	// Relocated: a dining, sleeping or freight car moved behind the boundary.
	Relocated
	// Discarded: an input locomotive removed from the train.
	Discarded
	// Inserted: a fresh locomotive added at the front or rear.
	Inserted
)

func (a Action) String() string {
	switch a {
	case Kept:
		return "kept"
	case Relocated:
		return "relocated"
	case Discarded:
		return "discarded"
	case Inserted:
		return "inserted"
	default:
		return fmt.Sprintf("action(%d)", uint8(a))
	}
}

// Move describes one step of Sort.
// Position is the 0-based index of the car in the input train,
// or -1 for inserted locomotives.
type Move struct {
	Class    car.Class
	Position int
	Action   Action
}

// Option configures Sort via functional arguments.
type Option func(*Options)

// Options holds the hooks Sort invokes.
type Options struct {
	// OnMove observes every step in pass order. It must not touch the sequence.
	OnMove func(Move)
}

// DefaultOptions returns Options with a no-op OnMove hook.
func DefaultOptions() Options {
	return Options{
		OnMove: func(Move) {},
	}
}

// WithOnMove registers a hook called for every car Sort handles.
// Panics on nil to surface programmer error early.
func WithOnMove(fn func(Move)) Option {
	if fn == nil {
		panic("reorder: WithOnMove(nil)")
	}
	return func(o *Options) {
		o.OnMove = fn
	}
}

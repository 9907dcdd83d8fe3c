// SPDX-License-Identifier: MIT
// Package: lvtrain/reorder
//
// reorder.go — the in-place single-pass Sort.

package reorder

import (
	"fmt"

	"github.com/katalvlaran/lvtrain/car"
	"github.com/katalvlaran/lvtrain/sequence"
	"github.com/katalvlaran/lvtrain/validate"
)

// block indexes the regions collected behind the boundary, front to back.
type block int

const (
	diningBlock block = iota
	sleepingBlock
	freightBlock
	numBlocks
)

// Sort rearranges s in place into a train that passes validate.IsValid.
// Trains of zero or one car are left untouched. A nil s is ignored.
// Complexity: O(n) time, O(1) extra space.
func Sort(s *sequence.Sequence, opts ...Option) {
	if s == nil || s.Len() <= 1 {
		return
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	r := &reorderer{s: s, onMove: o.OnMove}
	r.run()
}

// reorderer carries the state of one Sort pass.
type reorderer struct {
	s      *sequence.Sequence
	onMove func(Move)

	boundary sequence.Handle
	last     [numBlocks]sequence.Handle // tail of each block, None while empty
	previous sequence.Handle            // last car kept in front of the boundary
}

func (r *reorderer) run() {
	r.boundary = r.s.Append(car.Must(car.Locomotive))

	pos := 0
	for h := r.s.Head(); h != r.boundary; pos++ {
		next := r.s.Next(h) // read before h can move
		c, _ := r.s.Car(h)

		switch c.Class() {
		case car.Freight:
			r.place(h, r.endAnchor(), freightBlock)
			r.emit(c.Class(), pos, Relocated)
		case car.Sleeping:
			r.place(h, r.preFreightAnchor(), sleepingBlock)
			r.emit(c.Class(), pos, Relocated)
		case car.Dining:
			r.place(h, r.preSleepingAnchor(), diningBlock)
			r.emit(c.Class(), pos, Relocated)
		case car.Seating:
			r.previous = h
			r.emit(c.Class(), pos, Kept)
		case car.Locomotive:
			r.must(r.s.Unlink(h, r.previous))
			r.emit(c.Class(), pos, Discarded)
		}

		h = next
	}

	r.must(r.s.Unlink(r.boundary, r.previous))

	r.s.Prepend(car.Must(car.Locomotive))
	r.emit(car.Locomotive, -1, Inserted)
	if r.s.Len() > validate.LongTrain {
		r.s.Append(car.Must(car.Locomotive))
		r.emit(car.Locomotive, -1, Inserted)
	}
}

// place relocates h after anchor and makes it the new tail of block b.
// h follows r.previous, which stays unchanged since h left that position.
func (r *reorderer) place(h, anchor sequence.Handle, b block) {
	r.must(r.s.RelocateAfter(h, r.previous, anchor))
	r.last[b] = h
}

// anchor returns the node a car of block b goes after: the tail of the
// nearest non-empty block at or in front of b, else the boundary.
func (r *reorderer) anchor(b block) sequence.Handle {
	for i := b; i >= 0; i-- {
		if r.last[i] != sequence.None {
			return r.last[i]
		}
	}

	return r.boundary
}

// preSleepingAnchor is where the next dining car goes.
func (r *reorderer) preSleepingAnchor() sequence.Handle { return r.anchor(diningBlock) }

// preFreightAnchor is where the next sleeping car goes.
func (r *reorderer) preFreightAnchor() sequence.Handle { return r.anchor(sleepingBlock) }

// endAnchor is where the next freight car goes.
func (r *reorderer) endAnchor() sequence.Handle { return r.anchor(freightBlock) }

func (r *reorderer) emit(c car.Class, pos int, a Action) {
	r.onMove(Move{Class: c, Position: pos, Action: a})
}

func (r *reorderer) must(err error) {
	if err != nil {
		panic(fmt.Errorf("reorder: %w", err))
	}
}

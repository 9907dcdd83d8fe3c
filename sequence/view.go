// SPDX-License-Identifier: MIT
// Package: lvtrain/sequence
//
// view.go — read-only views and the invariant checker.

package sequence

import (
	"fmt"
	"iter"
	"strings"

	"github.com/katalvlaran/lvtrain/car"
)

// All yields every linked node and its car from head to tail.
// The sequence must not be mutated while iterating.
func (s *Sequence) All() iter.Seq2[Handle, car.Car] {
	return func(yield func(Handle, car.Car) bool) {
		for h := s.head; h != None; h = s.slot(h).next {
			if !yield(h, s.slot(h).car) {
				return
			}
		}
	}
}

// Classes returns a snapshot of the car classes from head to tail.
func (s *Sequence) Classes() []car.Class {
	out := make([]car.Class, 0, s.size)
	for _, c := range s.All() {
		out = append(out, c.Class())
	}

	return out
}

// String renders the classes as "[locomotive seating freight]".
func (s *Sequence) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for h, c := range s.All() {
		if h != s.head {
			b.WriteByte(' ')
		}
		b.WriteString(c.String())
	}
	b.WriteByte(']')

	return b.String()
}

// CheckInvariants walks the chain and verifies head/tail/size bookkeeping,
// the absence of cycles and that every reachable node is marked linked.
// Returns an error wrapping ErrInvariant on the first inconsistency.
// Complexity: O(n) time, O(n) space for the visited set.
func (s *Sequence) CheckInvariants() error {
	if (s.size == 0) != (s.head == None) || (s.head == None) != (s.tail == None) {
		return fmt.Errorf("%w: size=%d head=%d tail=%d", ErrInvariant, s.size, s.head, s.tail)
	}

	seen := make(map[Handle]struct{}, s.size)
	var last Handle
	for h := s.head; h != None; h = s.nodes[h-1].next {
		if int(h) > len(s.nodes) {
			return fmt.Errorf("%w: handle %d outside arena", ErrInvariant, h)
		}
		if !s.nodes[h-1].linked {
			return fmt.Errorf("%w: unlinked node %d reachable", ErrInvariant, h)
		}
		if _, dup := seen[h]; dup {
			return fmt.Errorf("%w: cycle at node %d", ErrInvariant, h)
		}
		seen[h] = struct{}{}
		last = h
	}

	if len(seen) != s.size {
		return fmt.Errorf("%w: walked %d nodes, size is %d", ErrInvariant, len(seen), s.size)
	}
	if last != s.tail {
		return fmt.Errorf("%w: walk ends at %d, tail is %d", ErrInvariant, last, s.tail)
	}

	return nil
}

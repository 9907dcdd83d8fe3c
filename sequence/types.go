// SPDX-License-Identifier: MIT
// Package: lvtrain/sequence
//
// types.go — Handle, node, Sequence and sentinel errors.

package sequence

import (
	"errors"

	"github.com/katalvlaran/lvtrain/car"
)

// Sentinel errors. Both splice errors signal an internal invariant breach.
var (
	// ErrNodeNotFound indicates a handle that does not name a linked node.
	ErrNodeNotFound = errors.New("sequence: node not found")

	// ErrPredecessorMismatch indicates the stated predecessor does not link to the node.
	ErrPredecessorMismatch = errors.New("sequence: predecessor does not precede node")

	// ErrInvariant is wrapped by CheckInvariants when the chain is corrupt.
	ErrInvariant = errors.New("sequence: invariant violated")
)

// IsInvariantBreach reports whether err stems from a splice call
// made with a stale handle or a wrong predecessor.
func IsInvariantBreach(err error) bool {
	return errors.Is(err, ErrNodeNotFound) || errors.Is(err, ErrPredecessorMismatch)
}

// Handle addresses a node inside its Sequence. None is the zero Handle.
type Handle uint32

// None is the absent node: the predecessor of the head and the successor of the tail.
const None Handle = 0

// node is one arena slot.
type node struct {
	car    car.Car
	next   Handle
	linked bool // false once unlinked; the slot is never reused before Clear
}

// Sequence is an ordered chain of cars. The zero value is an empty sequence.
type Sequence struct {
	nodes []node // arena; Handle h lives at nodes[h-1]
	head  Handle
	tail  Handle
	size  int
}

// New returns an empty sequence with room for capacity nodes.
func New(capacity int) *Sequence {
	if capacity < 0 {
		capacity = 0
	}

	return &Sequence{nodes: make([]node, 0, capacity)}
}

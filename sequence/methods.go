// SPDX-License-Identifier: MIT
// Package: lvtrain/sequence
//
// methods.go — structural mutation primitives.
//
// Every primitive keeps the package invariants at both endpoints, including
// the aliasing cases node==anchor, node==tail, anchor==tail and pred==None.

package sequence

import (
	"fmt"

	"github.com/katalvlaran/lvtrain/car"
)

// Append links a new node holding c after the current tail and returns its handle.
// Complexity: O(1) amortized.
func (s *Sequence) Append(c car.Car) Handle {
	h := s.alloc(c)
	if s.tail == None {
		s.head = h
	} else {
		s.slot(s.tail).next = h
	}
	s.tail = h
	s.size++

	return h
}

// Prepend links a new node holding c before the current head and returns its handle.
// Complexity: O(1) amortized.
func (s *Sequence) Prepend(c car.Car) Handle {
	h := s.alloc(c)
	s.slot(h).next = s.head
	if s.head == None {
		s.tail = h
	}
	s.head = h
	s.size++

	return h
}

// Unlink removes node from the chain. pred must be the node's current
// predecessor, or None when node is the head.
// The slot stays allocated but no longer counts as linked.
// Complexity: O(1).
func (s *Sequence) Unlink(node, pred Handle) error {
	if err := s.checkLink(node, pred); err != nil {
		return fmt.Errorf("Unlink(%d, %d): %w", node, pred, err)
	}
	s.detach(node, pred)
	n := s.slot(node)
	n.next = None
	n.linked = false
	s.size--

	return nil
}

// RelocateAfter moves node so that it immediately follows anchor.
// pred is node's current predecessor (None when node is the head).
// It is a no-op when node already follows anchor or node==anchor.
// Relocation never produces a new head: anchor is always a linked node.
// Complexity: O(1).
func (s *Sequence) RelocateAfter(node, pred, anchor Handle) error {
	if err := s.checkLink(node, pred); err != nil {
		return fmt.Errorf("RelocateAfter(%d, %d, %d): %w", node, pred, anchor, err)
	}
	if !s.linked(anchor) {
		return fmt.Errorf("RelocateAfter(%d, %d, %d): anchor: %w", node, pred, anchor, ErrNodeNotFound)
	}
	if node == anchor || pred == anchor {
		return nil
	}

	s.detach(node, pred)

	a := s.slot(anchor)
	s.slot(node).next = a.next
	a.next = node
	if s.tail == anchor {
		s.tail = node
	}

	return nil
}

// Clear drops every node and invalidates all handles.
// Complexity: O(1); the arena keeps its capacity.
func (s *Sequence) Clear() {
	s.nodes = s.nodes[:0]
	s.head, s.tail = None, None
	s.size = 0
}

// FindFirst returns the first node whose car satisfies match, or None.
// Complexity: O(n).
func (s *Sequence) FindFirst(match func(car.Car) bool) Handle {
	for h := s.head; h != None; h = s.slot(h).next {
		if match(s.slot(h).car) {
			return h
		}
	}

	return None
}

// IsEmpty reports whether the sequence holds no cars.
func (s *Sequence) IsEmpty() bool { return s.size == 0 }

// Len returns the number of linked cars.
func (s *Sequence) Len() int { return s.size }

// Head returns the first node, or None when empty.
func (s *Sequence) Head() Handle { return s.head }

// Tail returns the last node, or None when empty.
func (s *Sequence) Tail() Handle { return s.tail }

// Next returns the successor of h, or None for the tail and unknown handles.
func (s *Sequence) Next(h Handle) Handle {
	if !s.linked(h) {
		return None
	}

	return s.slot(h).next
}

// Car returns the car stored at h; ok is false for unknown or unlinked handles.
func (s *Sequence) Car(h Handle) (c car.Car, ok bool) {
	if !s.linked(h) {
		return car.Car{}, false
	}

	return s.slot(h).car, true
}

// alloc appends a fresh linked slot holding c and returns its handle.
func (s *Sequence) alloc(c car.Car) Handle {
	s.nodes = append(s.nodes, node{car: c, linked: true})

	return Handle(len(s.nodes))
}

// slot returns the arena entry for a handle already known to be in range.
func (s *Sequence) slot(h Handle) *node { return &s.nodes[h-1] }

// linked reports whether h names a node currently in the chain.
func (s *Sequence) linked(h Handle) bool {
	return h != None && int(h) <= len(s.nodes) && s.nodes[h-1].linked
}

// checkLink verifies that node is linked and that pred is its predecessor.
func (s *Sequence) checkLink(node, pred Handle) error {
	if !s.linked(node) {
		return ErrNodeNotFound
	}
	if pred == None {
		if s.head != node {
			return ErrPredecessorMismatch
		}

		return nil
	}
	if !s.linked(pred) {
		return fmt.Errorf("predecessor: %w", ErrNodeNotFound)
	}
	if s.slot(pred).next != node {
		return ErrPredecessorMismatch
	}

	return nil
}

// detach bypasses node, fixing head and tail. node's own link is left stale.
func (s *Sequence) detach(node, pred Handle) {
	next := s.slot(node).next
	if pred == None {
		s.head = next
	} else {
		s.slot(pred).next = next
	}
	if s.tail == node {
		s.tail = pred
	}
}

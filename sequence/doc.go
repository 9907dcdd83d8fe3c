// Package sequence implements the ordered chain of cars a train is made of:
// a singly-linked list whose nodes live in an arena owned by the Sequence.
//
// Representation:
//
//	Nodes are stored in a slice; a Handle is a 1-based index into it and
//	None (the zero Handle) means "no node". Head, tail and every anchor a
//	caller keeps are plain Handles, so splicing never dangles:
//
//	    head ──► [loco] ──► [seat] ──► [dine] ──► [frei] ◄── tail
//	               1          4          2          3        (arena slots)
//
// Invariants (hold before and after every public operation):
//   - Len()==0 ⇔ Head()==None ⇔ Tail()==None
//   - walking Next from Head visits exactly Len() nodes and ends at Tail()
//   - Next(Tail())==None; no node has two predecessors; no cycles
//
// Complexity:
//
//	Append, Prepend, Unlink, RelocateAfter, Clear, Len, IsEmpty: O(1)
//	FindFirst, Classes, String, CheckInvariants:                 O(n)
//
// Errors:
//
//	Unlink and RelocateAfter require the caller to state the node's current
//	predecessor. A wrong predecessor yields ErrPredecessorMismatch, an
//	unknown or unlinked handle yields ErrNodeNotFound. Both indicate a bug in
//	the caller, never a malformed train; see IsInvariantBreach.
//
// Concurrency:
//
//	A Sequence is not safe for concurrent use; callers serialize access.
package sequence

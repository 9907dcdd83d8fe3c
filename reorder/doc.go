// Package reorder rearranges a train in place so that it satisfies every
// rule checked by package validate.
//
// Layout produced by Sort:
//
//	[loco] seating… dining… sleeping… freight… [loco if more than LongTrain cars]
//
// Algorithm (single left-to-right pass, O(n) time, O(1) extra space):
//
//  1. Append a temporary boundary node behind the tail. Everything in front
//     of it is still to be visited; relocated cars are collected behind it in
//     three blocks: dining, sleeping, freight.
//  2. Visit the original cars in order, reading each successor before the
//     current car can move:
//     • Seating    — stays; becomes the predecessor of the next visited car.
//     • Dining     — relocated behind the dining block (preSleepingAnchor).
//     • Sleeping   — relocated behind the sleeping block (preFreightAnchor).
//     • Freight    — relocated behind the freight block (endAnchor).
//     • Locomotive — unlinked and discarded.
//     An empty block anchors on the tail of the nearest block in front of it,
//     or on the boundary.
//  3. Unlink the boundary, prepend a fresh locomotive, and append another when
//     the train now has more than validate.LongTrain cars.
//
// Every locomotive of the input is discarded and rebuilt, so several or
// misplaced locomotives never survive. Seating cars keep their relative
// order. Trains of zero or one car are left untouched.
//
// Sorting a train never fails. The splice primitives are called with
// predecessors the pass tracks itself; a rejected splice is a bug and panics.
package reorder

// Package validate decides whether a train satisfies the composition rules.
//
// Rules (checked in this priority; the first broken rule decides):
//
//  1. An empty train is invalid.
//  2. A train made of a single locomotive is valid.
//  3. Up to LongTrain cars: the head is a locomotive, the tail is not.
//  4. More than LongTrain cars: head and tail are both locomotives.
//  5. No locomotive between head and tail.
//  6. No passenger car behind a freight car.
//  7. All sleeping cars form one unbroken block.
//  8. No sleeping car separates a seating car from a dining car,
//     in either direction.
//
// Algorithm:
//
//	One forward pass over the sequence with a handful of flags:
//	freight seen, sleeping runs started and "inside a run", seating/dining
//	seen, and whether a sleeping car appeared after a seating (resp. dining)
//	car. A dining car after "seating then sleeping", or a seating car after
//	"dining then sleeping", breaks rule 8.
//
// Complexity: O(n) time, O(1) extra space.
//
// IsValid returns only the verdict. Check returns the first *Violation with
// the rule, position and class of the offending car; a nil *Violation means
// the train is valid. A violation is an ordinary outcome, not a failure.
package validate

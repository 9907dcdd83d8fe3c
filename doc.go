// Package lvtrain models a train as an ordered chain of typed cars, checks it
// against a fixed set of composition rules and rearranges invalid trains in
// place.
//
// What is in the box?
//
//	car/       — the closed Class enumeration and the immutable Car value
//	sequence/  — arena-backed singly-linked chain with O(1) splicing
//	validate/  — single-pass rule checker (IsValid, Check → *Violation)
//	reorder/   — single-pass in-place Sort
//	train/     — facade: AddCart, IsValid, Violation, Sort, Classes
//	generate/  — seeded random car streams
//	manifest/  — YAML train manifests
//	cmd/lvtrain — command-line driver
//
// Rules in one picture (short train, at most ten cars):
//
//	[loco] seating… dining… sleeping… freight…
//
// Longer trains carry a second locomotive at the rear.
//
// Quick start:
//
//	tr, _ := train.FromClasses(car.Seating, car.Freight, car.Dining)
//	tr.IsValid() // false: no front locomotive
//	tr.Sort()
//	fmt.Println(tr) // [locomotive seating dining freight]
//
//	go get github.com/katalvlaran/lvtrain
package lvtrain

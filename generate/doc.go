// Package generate produces deterministic pseudo-random streams of cars,
// for demos, fuzz-style property tests and benchmarks of validate/reorder.
//
// Usage:
//
//	cars, err := generate.Cars(15, generate.WithSeed(42))
//
//	// freight-heavy stream, no locomotives
//	cars, err = generate.Cars(30,
//		generate.WithSeed(7),
//		generate.WithWeight(car.Freight, 5),
//		generate.WithWeight(car.Locomotive, 0),
//	)
//
// Determinism: the same options and size always yield the same cars.
// Without WithSeed or WithRand a fixed default seed is used; nothing is ever
// seeded from the clock.
package generate

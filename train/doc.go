// Package train is the public face of lvtrain: a single train that callers
// fill car by car, validate and sort in place.
//
// Usage:
//
//	tr := train.New()
//	for _, name := range []string{"seating", "freight", "locomotive"} {
//		c, err := car.Parse(name)
//		if err != nil {
//			return err // errors.Is(err, car.ErrInvalidClass)
//		}
//		tr.AddCart(c)
//	}
//	if !tr.IsValid() {
//		fmt.Println("rejected:", tr.Violation())
//		tr.Sort()
//	}
//	fmt.Println(tr) // [locomotive seating freight]
//
// A Train is not safe for concurrent use.
package train

// Package car defines the closed set of car classes a train is composed of
// and the immutable Car value carried by every node of a train.
//
// What is a car?
//
//	A car is a typed unit of a train. There are exactly five classes:
//	  • Locomotive – pulls the train; only at the front (and rear when long)
//	  • Seating    – passenger car, no special placement rules
//	  • Sleeping   – passenger car, all sleeping cars form one block
//	  • Dining     – passenger car, reachable from every seating car
//	  • Freight    – goods, always behind every passenger car
//
//	Seating, Sleeping and Dining together are the passenger classes.
//
// Usage:
//
//	c, err := car.Parse("sleeping")
//	if err != nil {
//		// errors.Is(err, car.ErrInvalidClass)
//	}
//	fmt.Println(c.Class(), c.Class().IsPassenger()) // sleeping true
//
// Class implements encoding.TextMarshaler and encoding.TextUnmarshaler, so
// class names decode directly from YAML manifests and command-line flags.
package car

// SPDX-License-Identifier: MIT
// Package: lvtrain/car
//
// types.go — Class enumeration, Car value and sentinel errors.

package car

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidClass indicates a class tag outside the five recognized classes.
// Construction fails; no existing train is touched.
var ErrInvalidClass = errors.New("car: invalid class")

// Class is the closed enumeration of car classes.
// The zero value is not a class and is rejected by New.
type Class uint8

const (
	// Locomotive pulls the train.
	Locomotive Class = iota + 1
	// Seating is a passenger car without placement rules of its own.
	Seating
	// Sleeping is a passenger car; all sleeping cars must be consecutive.
	Sleeping
	// Dining is a passenger car reachable from every seating car.
	Dining
	// Freight carries goods and trails every passenger car.
	Freight
)

// classNames holds the canonical lower-case name of each class, indexed by Class.
var classNames = [...]string{
	Locomotive: "locomotive",
	Seating:    "seating",
	Sleeping:   "sleeping",
	Dining:     "dining",
	Freight:    "freight",
}

// AllClasses returns every class in declaration order.
func AllClasses() []Class {
	return []Class{Locomotive, Seating, Sleeping, Dining, Freight}
}

// Valid reports whether c is one of the five recognized classes.
func (c Class) Valid() bool {
	return c >= Locomotive && c <= Freight
}

// IsPassenger reports whether c is Seating, Sleeping or Dining.
func (c Class) IsPassenger() bool {
	switch c {
	case Seating, Sleeping, Dining:
		return true
	case Locomotive, Freight:
		return false
	default:
		return false
	}
}

// String returns the canonical lower-case class name,
// or "class(N)" for values outside the enumeration.
func (c Class) String() string {
	if !c.Valid() {
		return fmt.Sprintf("class(%d)", uint8(c))
	}

	return classNames[c]
}

// MarshalText encodes the class as its canonical name.
func (c Class) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidClass, uint8(c))
	}

	return []byte(classNames[c]), nil
}

// UnmarshalText decodes a class name (case-insensitive, surrounding blanks ignored).
func (c *Class) UnmarshalText(text []byte) error {
	parsed, err := ParseClass(string(text))
	if err != nil {
		return err
	}
	*c = parsed

	return nil
}

// ParseClass maps a class name to its Class.
// Matching is case-insensitive and ignores surrounding whitespace.
func ParseClass(name string) (Class, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for _, c := range AllClasses() {
		if classNames[c] == key {
			return c, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrInvalidClass, name)
}

// Car is an immutable typed unit of a train.
// The zero Car has no class; obtain cars through New, Parse or Must.
type Car struct {
	class Class
}

// New constructs a car of the given class.
// Returns ErrInvalidClass for any value outside the enumeration.
func New(c Class) (Car, error) {
	if !c.Valid() {
		return Car{}, fmt.Errorf("%w: %d", ErrInvalidClass, uint8(c))
	}

	return Car{class: c}, nil
}

// Parse constructs a car from a class name, see ParseClass.
func Parse(name string) (Car, error) {
	c, err := ParseClass(name)
	if err != nil {
		return Car{}, err
	}

	return Car{class: c}, nil
}

// Must is like New but panics on an invalid class.
// Intended for constants known to be valid.
func Must(c Class) Car {
	out, err := New(c)
	if err != nil {
		panic(err)
	}

	return out
}

// Class returns the class of the car.
func (c Car) Class() Class { return c.class }

// String returns the class name of the car.
func (c Car) String() string { return c.class.String() }

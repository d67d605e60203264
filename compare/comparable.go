// Package compare provides equality interfaces used by the dictionary key types.
package compare

// Comparable is a generic interface for types that can compare themselves for equality.
// Types implementing this interface must provide their own Equals method that determines
// whether two values are equal according to the type's semantics.
type Comparable[T any] interface {
	Equals(other T) bool
}

// Equal compares two values using the Comparable interface.
// It delegates to the Equals method of the first argument.
func Equal[T any](a Comparable[T], b T) bool {
	return a.Equals(b)
}

// Native returns an equality function for any type supporting the == operator.
// It is a convenience for APIs that take an equality function argument,
// such as Dict.Equals.
func Native[T comparable]() func(T, T) bool {
	return func(a, b T) bool {
		return a == b
	}
}

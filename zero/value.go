// Package zero provides helpers for zero values of generic type parameters.
package zero

// Value returns the zero value for type T.
// Useful when a generic function needs to return "nothing" for a missing entry.
func Value[T any]() T {
	var zeroVal T

	return zeroVal
}

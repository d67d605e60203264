// Package optional provides a type-safe Optional type for values that may or
// may not be present. It models presence explicitly instead of relying on
// pointers or sentinel values, and is the result type of dictionary lookups
// that can miss (a miss is a value-level outcome, never an error).
package optional

import (
	"encoding/json"
	"errors"
	"fmt"
)

var errMissingValueField = errors.New("expected a \"value\" field")

// Value represents a value of type T that may or may not be present.
// Use Some to construct a present value and None for an absent one.
// The zero Value is None.
type Value[T any] struct {
	value T
	isSet bool
}

// Some creates a Value containing the given value.
func Some[T any](value T) Value[T] {
	return Value[T]{value: value, isSet: true}
}

// None creates an empty Value.
func None[T any]() Value[T] {
	return Value[T]{}
}

// Of converts Go's (value, ok) idiom into a Value: Some(value) when ok,
// None otherwise.
func Of[T any](value T, ok bool) Value[T] {
	if ok {
		return Some(value)
	}

	return None[T]()
}

// Get returns the value and a boolean indicating whether the value is present.
func (o Value[T]) Get() (T, bool) {
	return o.value, o.isSet
}

// GetOrElse returns the value if present, or defaultValue otherwise.
func (o Value[T]) GetOrElse(defaultValue T) T {
	if o.isSet {
		return o.value
	}

	return defaultValue
}

// NonEmpty returns true if the Value contains a value.
func (o Value[T]) NonEmpty() bool {
	return o.isSet
}

// Empty returns true if the Value does not contain a value.
func (o Value[T]) Empty() bool {
	return !o.isSet
}

// Filter returns this Value if it contains a value satisfying the predicate,
// or None otherwise.
func (o Value[T]) Filter(predicate func(T) bool) Value[T] {
	if o.isSet && predicate(o.value) {
		return o
	}

	return None[T]()
}

// Equals compares this Value with another using the provided equality function.
// Two Values are equal if both are empty, or both contain equal values.
func (o Value[T]) Equals(other Value[T], eq func(T, T) bool) bool {
	if o.isSet != other.isSet {
		return false
	}

	if !o.isSet {
		return true
	}

	return eq(o.value, other.value)
}

// String returns "Some(value)" if present, or "None" if empty.
func (o Value[T]) String() string {
	if o.isSet {
		return fmt.Sprintf("Some(%v)", o.value)
	}

	return "None"
}

// MarshalJSON implements json.Marshaler.
// None is marshaled as null, Some(value) as {"value": ...}. The wrapper
// object keeps Some(nil-like values) distinguishable from None.
func (o Value[T]) MarshalJSON() ([]byte, error) {
	if !o.isSet {
		return []byte("null"), nil
	}

	return json.Marshal(map[string]T{"value": o.value})
}

// UnmarshalJSON implements json.Unmarshaler.
// null is unmarshaled as None, {"value": ...} as Some(value).
func (o *Value[T]) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*o = None[T]()

		return nil
	}

	var wrapper map[string]T
	if err := json.Unmarshal(data, &wrapper); err != nil {
		return err
	}

	value, ok := wrapper["value"]
	if !ok {
		return errMissingValueField
	}

	*o = Some(value)

	return nil
}

// Map transforms the value inside the Value using the provided function.
// Returns Some(f(value)) if present, None otherwise.
func Map[T any, U any](o Value[T], f func(T) U) Value[U] {
	if o.isSet {
		return Some(f(o.value))
	}

	return None[U]()
}

// FlatMap transforms the value using a function that itself returns a Value.
// Returns f(value) if present, None otherwise.
func FlatMap[T any, U any](o Value[T], f func(T) Value[U]) Value[U] {
	if o.isSet {
		return f(o.value)
	}

	return None[U]()
}

// Package sortable defines the total-order interface used for dictionary
// sort keys, along with ready-made wrapper types for common primitives.
//
// A Sortable type provides both equality (via compare.Comparable) and a
// strict ordering (LessThan). Sorted containers such as ordmap.Map require
// their keys to implement this interface, and dict.Dict requires its
// projected sort keys to implement it.
//
// Custom sortable types only need the two methods:
//
//	type Version struct{ Major, Minor int }
//
//	func (v Version) Equals(other Version) bool {
//	    return v == other
//	}
//
//	func (v Version) LessThan(other Version) bool {
//	    if v.Major != other.Major {
//	        return v.Major < other.Major
//	    }
//	    return v.Minor < other.Minor
//	}
package sortable

import (
	"github.com/turboMaCk/any-dict/compare"
)

// Sortable is implemented by types with a total order.
// LessThan must be a strict ordering consistent with Equals:
// for any a and b exactly one of a.LessThan(b), b.LessThan(a),
// and a.Equals(b) holds.
type Sortable[T any] interface {
	compare.Comparable[T]

	LessThan(other T) bool
}

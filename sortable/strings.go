package sortable

import (
	"bytes"

	"facette.io/natsort"
)

// String is a sortable wrapper for the built-in string type,
// ordered lexicographically by byte value.
type String string

var _ Sortable[String] = (*String)(nil)

// Equals returns true if both strings are identical.
func (s String) Equals(other String) bool {
	return string(s) == string(other)
}

// LessThan returns true if this String sorts before the other lexicographically.
func (s String) LessThan(other String) bool {
	return string(s) < string(other)
}

// Natural is a string wrapper ordered using natural sort: digit runs inside
// the strings compare numerically, so "file2" sorts before "file10".
type Natural string

var _ Sortable[Natural] = (*Natural)(nil)

// Equals returns true if both strings are identical.
func (n Natural) Equals(other Natural) bool {
	return string(n) == string(other)
}

// LessThan returns true if this string sorts before the other in natural order.
func (n Natural) LessThan(other Natural) bool {
	return natsort.Compare(string(n), string(other))
}

// Bytes is a sortable wrapper for byte slices, ordered lexicographically.
// It is the sort key produced by collation-style projections that emit
// binary sort keys.
type Bytes []byte

var _ Sortable[Bytes] = (*Bytes)(nil)

// Equals returns true if both slices hold the same bytes.
func (b Bytes) Equals(other Bytes) bool {
	return bytes.Equal(b, other)
}

// LessThan returns true if this slice sorts before the other lexicographically.
func (b Bytes) LessThan(other Bytes) bool {
	return bytes.Compare(b, other) < 0
}

package sortable

// Int is a sortable wrapper for the built-in int type.
type Int int

var _ Sortable[Int] = (*Int)(nil)

// Equals returns true if this Int has the same value as the other Int.
func (i Int) Equals(other Int) bool {
	return int(i) == int(other)
}

// LessThan returns true if this Int is numerically less than the other Int.
func (i Int) LessThan(other Int) bool {
	return int(i) < int(other)
}

// Int64 is a sortable wrapper for the built-in int64 type.
type Int64 int64

var _ Sortable[Int64] = (*Int64)(nil)

// Equals returns true if this Int64 has the same value as the other Int64.
func (i Int64) Equals(other Int64) bool {
	return int64(i) == int64(other)
}

// LessThan returns true if this Int64 is numerically less than the other Int64.
func (i Int64) LessThan(other Int64) bool {
	return int64(i) < int64(other)
}

// Uint64 is a sortable wrapper for the built-in uint64 type.
// It is the natural sort key for hash-derived orderings (see project.Hash64).
type Uint64 uint64

var _ Sortable[Uint64] = (*Uint64)(nil)

// Equals returns true if this Uint64 has the same value as the other Uint64.
func (u Uint64) Equals(other Uint64) bool {
	return uint64(u) == uint64(other)
}

// LessThan returns true if this Uint64 is numerically less than the other Uint64.
func (u Uint64) LessThan(other Uint64) bool {
	return uint64(u) < uint64(other)
}

// Float64 is a sortable wrapper for the built-in float64 type.
// NaN values violate the total-order contract (NaN is neither less than,
// greater than, nor equal to anything, including itself) and must not be
// used as sort keys.
type Float64 float64

var _ Sortable[Float64] = (*Float64)(nil)

// Equals returns true if this Float64 has the same value as the other Float64.
func (f Float64) Equals(other Float64) bool {
	return float64(f) == float64(other)
}

// LessThan returns true if this Float64 is numerically less than the other Float64.
func (f Float64) LessThan(other Float64) bool {
	return float64(f) < float64(other)
}

// Package dict provides an ordered dictionary over arbitrary key types.
//
// A Dict stores keys of any type K by projecting each key to a sortable
// sort key C with a caller-supplied function. The original key is kept
// alongside its value, indexed internally by the projected sort key, so
// the container works for key types that have no natural order of their
// own (structs, enums, identifiers). Iteration always visits entries in
// ascending sort-key order, never in insertion order.
//
// The projection must be injective over the keys actually used: if two
// distinct keys project to the same sort key, the later insert silently
// replaces the earlier entry (both its key and its value). This is a
// documented caller responsibility and is not checked at runtime.
//
// The projection function is data owned by the dictionary. It is carried
// forward unchanged by every operation, including the ones that change
// the value type (Map, Collect, EmptyLike). Because functions cannot be
// compared, dictionary equality compares storage only - use Equals, never
// reflect.DeepEqual, on dictionaries.
package dict

import (
	"iter"

	"github.com/turboMaCk/any-dict/optional"
	"github.com/turboMaCk/any-dict/ordmap"
	"github.com/turboMaCk/any-dict/sortable"
	"github.com/turboMaCk/any-dict/zero"
)

// Pair is a key-value pair, used for association-list construction and
// enumeration.
type Pair[K any, V any] struct {
	Key   K
	Value V
}

// entry is what the dictionary stores at each sort key: the original key
// together with its value. Keeping the key lets GetKey recover the stored
// canonical form even when the projection discards information.
type entry[K any, V any] struct {
	key   K
	value V
}

// Dict is an ordered dictionary from K to V, ordered by the sort keys
// produced by its projection function.
//
// Add, Update, Remove and Clear mutate the receiver; structural operations
// (Filter, Partition, Union, Intersect, Diff and the package-level transform
// functions) leave the receiver untouched and return new dictionaries that
// carry the same projection. Dict is not safe for concurrent use; wrap it in
// Safe when sharing across goroutines.
type Dict[K any, C sortable.Sortable[C], V any] struct {
	storage *ordmap.Map[C, entry[K, V]]
	project func(K) C
}

// New creates an empty dictionary using project to derive sort keys.
func New[K any, C sortable.Sortable[C], V any](project func(K) C) *Dict[K, C, V] {
	return &Dict[K, C, V]{
		storage: ordmap.New[C, entry[K, V]](),
		project: project,
	}
}

// Singleton creates a dictionary holding a single entry.
func Singleton[K any, C sortable.Sortable[C], V any](project func(K) C, key K, value V) *Dict[K, C, V] {
	d := New[K, C, V](project)
	d.Add(key, value)

	return d
}

// FromPairs builds a dictionary from an association list. When several pairs
// project to the same sort key, the last one wins, matching Add semantics.
func FromPairs[K any, C sortable.Sortable[C], V any](project func(K) C, pairs []Pair[K, V]) *Dict[K, C, V] {
	d := New[K, C, V](project)

	for _, p := range pairs {
		d.Add(p.Key, p.Value)
	}

	return d
}

// EmptyLike returns an empty dictionary that reuses d's projection with a new
// value type. Use it to carry a projection over to a dictionary of different
// values without re-stating it.
func EmptyLike[K any, C sortable.Sortable[C], V any, V2 any](d *Dict[K, C, V]) *Dict[K, C, V2] {
	return New[K, C, V2](d.project)
}

// Add inserts or replaces the entry for key. When the projected sort key is
// already occupied, the stored key and value are both replaced: the key given
// here, not the previously stored one, becomes the retrievable key.
func (d *Dict[K, C, V]) Add(key K, value V) {
	d.storage.Add(d.project(key), entry[K, V]{key: key, value: value})
}

// Update adjusts the entry at key's sort key through fn. fn receives the
// current value (None when absent) and decides the outcome: Some stores the
// result under the key given to Update, None removes the entry.
func (d *Dict[K, C, V]) Update(key K, fn func(optional.Value[V]) optional.Value[V]) {
	sortKey := d.project(key)

	current := optional.None[V]()
	if e, ok := d.storage.Get(sortKey); ok {
		current = optional.Some(e.value)
	}

	if next, ok := fn(current).Get(); ok {
		d.storage.Add(sortKey, entry[K, V]{key: key, value: next})
	} else {
		d.storage.Remove(sortKey)
	}
}

// Remove deletes the entry at key's sort key. No-op when absent.
func (d *Dict[K, C, V]) Remove(key K) {
	d.storage.Remove(d.project(key))
}

// Clear removes all entries, keeping the projection.
func (d *Dict[K, C, V]) Clear() {
	d.storage.Clear()
}

// IsEmpty reports whether the dictionary has no entries.
func (d *Dict[K, C, V]) IsEmpty() bool {
	return d.storage.IsEmpty()
}

// Size returns the number of entries.
func (d *Dict[K, C, V]) Size() int {
	return d.storage.Size()
}

// Contains reports whether an entry exists at key's sort key.
func (d *Dict[K, C, V]) Contains(key K) bool {
	return d.storage.Contains(d.project(key))
}

// Get returns the value stored at key's sort key.
func (d *Dict[K, C, V]) Get(key K) (V, bool) {
	if e, ok := d.storage.Get(d.project(key)); ok {
		return e.value, true
	}

	return zero.Value[V](), false
}

// GetOrElse returns the value stored at key's sort key, or defaultValue.
func (d *Dict[K, C, V]) GetOrElse(key K, defaultValue V) V {
	if v, ok := d.Get(key); ok {
		return v
	}

	return defaultValue
}

// GetKey returns the key actually stored at key's sort key. When the
// projection discards information this may differ from the queried key,
// which lets callers recover a canonical or normalized key form.
func (d *Dict[K, C, V]) GetKey(key K) (K, bool) {
	if e, ok := d.storage.Get(d.project(key)); ok {
		return e.key, true
	}

	return zero.Value[K](), false
}

// Exists reports whether the predicate holds for at least one entry.
// Returns false for an empty dictionary.
func (d *Dict[K, C, V]) Exists(predicate func(key K, value V) bool) bool {
	return d.storage.Exists(func(_ C, e entry[K, V]) bool {
		return predicate(e.key, e.value)
	})
}

// ForAll reports whether the predicate holds for every entry.
// Returns true for an empty dictionary.
func (d *Dict[K, C, V]) ForAll(predicate func(key K, value V) bool) bool {
	return d.storage.ForAll(func(_ C, e entry[K, V]) bool {
		return predicate(e.key, e.value)
	})
}

// ForEach applies f to every entry in ascending sort-key order.
func (d *Dict[K, C, V]) ForEach(f func(key K, value V)) {
	for k, v := range d.Seq() {
		f(k, v)
	}
}

// Seq returns an iterator over entries in ascending sort-key order.
func (d *Dict[K, C, V]) Seq() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, e := range d.storage.Seq() {
			if !yield(e.key, e.value) {
				return
			}
		}
	}
}

// SeqBack returns an iterator over entries in descending sort-key order.
func (d *Dict[K, C, V]) SeqBack() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, e := range d.storage.SeqBack() {
			if !yield(e.key, e.value) {
				return
			}
		}
	}
}

// Keys returns all keys in ascending sort-key order.
func (d *Dict[K, C, V]) Keys() []K {
	keys := make([]K, 0, d.Size())

	for k := range d.Seq() {
		keys = append(keys, k)
	}

	return keys
}

// Values returns all values in ascending sort-key order.
func (d *Dict[K, C, V]) Values() []V {
	values := make([]V, 0, d.Size())

	for _, v := range d.Seq() {
		values = append(values, v)
	}

	return values
}

// Pairs returns the association list in ascending sort-key order.
func (d *Dict[K, C, V]) Pairs() []Pair[K, V] {
	pairs := make([]Pair[K, V], 0, d.Size())

	for k, v := range d.Seq() {
		pairs = append(pairs, Pair[K, V]{Key: k, Value: v})
	}

	return pairs
}

// ToOrdered flattens the dictionary into a plain ordered map from sort key to
// value, discarding the original keys. The sort keys already carry a total
// order, so the result needs no projection.
func (d *Dict[K, C, V]) ToOrdered() *ordmap.Map[C, V] {
	out := ordmap.New[C, V]()

	for c, e := range d.storage.Seq() {
		out.Add(c, e.value)
	}

	return out
}

// Equals reports whether both dictionaries hold the same entries: same size,
// pairwise-equal sort keys and values in ascending order. The projection
// functions are deliberately not compared - functions have no equality - so
// two dictionaries built with different but pointwise-identical projections
// can still be equal. With an injective projection, sort-key equality stands
// in for key equality.
func (d *Dict[K, C, V]) Equals(other *Dict[K, C, V], valueEq func(V, V) bool) bool {
	if d.Size() != other.Size() {
		return false
	}

	next, stop := iter.Pull2(other.storage.Seq())
	defer stop()

	for c, e := range d.storage.Seq() {
		otherC, otherE, ok := next()
		if !ok || !c.Equals(otherC) || !valueEq(e.value, otherE.value) {
			return false
		}
	}

	return true
}

// clone returns a copy of d sharing no storage with it.
func (d *Dict[K, C, V]) clone() *Dict[K, C, V] {
	return &Dict[K, C, V]{
		storage: d.storage.Clone(),
		project: d.project,
	}
}

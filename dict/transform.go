package dict

import (
	"github.com/turboMaCk/any-dict/optional"
	"github.com/turboMaCk/any-dict/sortable"
)

// MapValues returns a new dictionary with f applied to every value.
// Keys, sort keys and the projection are preserved. Use the package-level
// Map function when the transformation changes the value type.
func (d *Dict[K, C, V]) MapValues(f func(key K, value V) V) *Dict[K, C, V] {
	out := New[K, C, V](d.project)

	for c, e := range d.storage.Seq() {
		out.storage.Add(c, entry[K, V]{key: e.key, value: f(e.key, e.value)})
	}

	return out
}

// Filter returns a new dictionary with the entries for which the predicate
// holds. The projection is carried forward.
func (d *Dict[K, C, V]) Filter(predicate func(key K, value V) bool) *Dict[K, C, V] {
	out := New[K, C, V](d.project)

	for c, e := range d.storage.Seq() {
		if predicate(e.key, e.value) {
			out.storage.Add(c, e)
		}
	}

	return out
}

// Partition splits the dictionary in two: entries satisfying the predicate
// and entries that don't. Both results carry the projection.
func (d *Dict[K, C, V]) Partition(predicate func(key K, value V) bool) (*Dict[K, C, V], *Dict[K, C, V]) {
	matching := New[K, C, V](d.project)
	rest := New[K, C, V](d.project)

	for c, e := range d.storage.Seq() {
		if predicate(e.key, e.value) {
			matching.storage.Add(c, e)
		} else {
			rest.storage.Add(c, e)
		}
	}

	return matching, rest
}

// Map returns a new dictionary with f applied to every value, changing the
// value type. Keys, sort keys and the projection are preserved.
func Map[K any, C sortable.Sortable[C], V any, V2 any](
	d *Dict[K, C, V],
	f func(key K, value V) V2,
) *Dict[K, C, V2] {
	out := New[K, C, V2](d.project)

	for c, e := range d.storage.Seq() {
		out.storage.Add(c, entry[K, V2]{key: e.key, value: f(e.key, e.value)})
	}

	return out
}

// Collect applies f to every entry and keeps only the Some results, replacing
// each value with the one inside the option. Entries mapped to None are
// dropped. Collect with a function that always returns Some is equivalent to
// Map.
func Collect[K any, C sortable.Sortable[C], V any, V2 any](
	d *Dict[K, C, V],
	f func(key K, value V) optional.Value[V2],
) *Dict[K, C, V2] {
	out := New[K, C, V2](d.project)

	for c, e := range d.storage.Seq() {
		if v2, ok := f(e.key, e.value).Get(); ok {
			out.storage.Add(c, entry[K, V2]{key: e.key, value: v2})
		}
	}

	return out
}

// Fold reduces the dictionary in ascending sort-key order.
func Fold[K any, C sortable.Sortable[C], V any, A any](
	d *Dict[K, C, V],
	init A,
	f func(key K, value V, acc A) A,
) A {
	acc := init

	for k, v := range d.Seq() {
		acc = f(k, v, acc)
	}

	return acc
}

// FoldBack reduces the dictionary in descending sort-key order.
func FoldBack[K any, C sortable.Sortable[C], V any, A any](
	d *Dict[K, C, V],
	init A,
	f func(key K, value V, acc A) A,
) A {
	acc := init

	for k, v := range d.SeqBack() {
		acc = f(k, v, acc)
	}

	return acc
}

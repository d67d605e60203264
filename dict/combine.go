package dict

import (
	"iter"

	"github.com/turboMaCk/any-dict/sortable"
)

// Union returns a new dictionary with the entries of both dictionaries.
// When a sort key is present in both, the receiver's entry wins (key and
// value). The receiver's projection is carried forward. Both dictionaries
// must project into the same sort-key domain.
func (d *Dict[K, C, V]) Union(other *Dict[K, C, V]) *Dict[K, C, V] {
	out := d.clone()

	for c, e := range other.storage.Seq() {
		if !out.storage.Contains(c) {
			out.storage.Add(c, e)
		}
	}

	return out
}

// Intersect returns a new dictionary with the receiver's entries whose sort
// keys are also present in other. Keys and values come from the receiver.
func (d *Dict[K, C, V]) Intersect(other *Dict[K, C, V]) *Dict[K, C, V] {
	out := New[K, C, V](d.project)

	for c, e := range d.storage.Seq() {
		if other.storage.Contains(c) {
			out.storage.Add(c, e)
		}
	}

	return out
}

// Diff returns a new dictionary with the receiver's entries whose sort keys
// are not present in other.
func (d *Dict[K, C, V]) Diff(other *Dict[K, C, V]) *Dict[K, C, V] {
	out := New[K, C, V](d.project)

	for c, e := range d.storage.Seq() {
		if !other.storage.Contains(c) {
			out.storage.Add(c, e)
		}
	}

	return out
}

// Merge folds over two dictionaries simultaneously in strictly ascending
// sort-key order, visiting every sort key present in either dictionary
// exactly once. Sort keys present only in a call onLeft, keys present only
// in b call onRight, and keys present in both call onBoth with a's stored
// key and both values. This is a merge-join over two sorted sequences; the
// dictionaries may hold different value types but must share the sort-key
// domain.
func Merge[K any, C sortable.Sortable[C], VA any, VB any, A any](
	a *Dict[K, C, VA],
	b *Dict[K, C, VB],
	onLeft func(key K, value VA, acc A) A,
	onBoth func(key K, left VA, right VB, acc A) A,
	onRight func(key K, value VB, acc A) A,
	init A,
) A {
	nextA, stopA := iter.Pull2(a.storage.Seq())
	defer stopA()

	nextB, stopB := iter.Pull2(b.storage.Seq())
	defer stopB()

	keyA, entA, okA := nextA()
	keyB, entB, okB := nextB()

	acc := init

	for {
		switch {
		case okA && okB:
			switch {
			case keyA.LessThan(keyB):
				acc = onLeft(entA.key, entA.value, acc)
				keyA, entA, okA = nextA()
			case keyB.LessThan(keyA):
				acc = onRight(entB.key, entB.value, acc)
				keyB, entB, okB = nextB()
			default:
				acc = onBoth(entA.key, entA.value, entB.value, acc)
				keyA, entA, okA = nextA()
				keyB, entB, okB = nextB()
			}
		case okA:
			acc = onLeft(entA.key, entA.value, acc)
			keyA, entA, okA = nextA()
		case okB:
			acc = onRight(entB.key, entB.value, acc)
			keyB, entB, okB = nextB()
		default:
			return acc
		}
	}
}

// GroupBy buckets items by a derived key, producing a dictionary from key to
// the items sharing that key's sort key. Within each group the items keep
// their relative order from the input slice. The key stored for a group is
// the one derived from the group's first item.
func GroupBy[T any, K any, C sortable.Sortable[C]](
	project func(K) C,
	toKey func(item T) K,
	items []T,
) *Dict[K, C, []T] {
	out := New[K, C, []T](project)

	for _, item := range items {
		key := toKey(item)
		sortKey := project(key)

		if cur, ok := out.storage.Get(sortKey); ok {
			cur.value = append(cur.value, item)
			out.storage.Add(sortKey, cur)
		} else {
			out.storage.Add(sortKey, entry[K, []T]{key: key, value: []T{item}})
		}
	}

	return out
}

// Package ordmap provides an ordered map keyed by sortable values, backed by
// a red-black tree. It is the storage primitive underneath dict.Dict: keys
// are kept in ascending order and every operation is O(log n).
//
// Red-black trees enforce the following properties to maintain balance:
//  1. Every node is either red or black
//  2. The root is always black
//  3. All leaves (nil nodes) are considered black
//  4. Red nodes cannot have red children
//  5. Every path from root to leaf contains the same number of black nodes
package ordmap

import (
	"iter"

	"github.com/turboMaCk/any-dict/sortable"
	"github.com/turboMaCk/any-dict/zero"
)

// nodeColor represents the color of a red-black tree node.
// Red is the zero value so that freshly inserted nodes start red.
type nodeColor bool

const (
	red   nodeColor = false
	black nodeColor = true
)

// node is a single red-black tree node holding one key-value pair.
type node[K sortable.Sortable[K], V any] struct {
	key    K
	value  V
	color  nodeColor
	left   *node[K, V]
	right  *node[K, V]
	parent *node[K, V]
}

// Map is an ordered map from K to V. Iteration visits entries in ascending
// key order as defined by K's LessThan.
//
// Map is not safe for concurrent use; callers that share a Map across
// goroutines must synchronize access themselves.
type Map[K sortable.Sortable[K], V any] struct {
	root  *node[K, V]
	count int
}

// New creates a new empty ordered map.
func New[K sortable.Sortable[K], V any]() *Map[K, V] {
	return &Map[K, V]{}
}

// find walks the tree looking for the node holding key.
func (m *Map[K, V]) find(key K) *node[K, V] {
	cur := m.root
	for cur != nil {
		switch {
		case key.Equals(cur.key):
			return cur
		case key.LessThan(cur.key):
			cur = cur.left
		default:
			cur = cur.right
		}
	}

	return nil
}

// Get retrieves the value stored at key.
// Returns (value, true) if present, (zero, false) otherwise.
func (m *Map[K, V]) Get(key K) (V, bool) {
	if n := m.find(key); n != nil {
		return n.value, true
	}

	return zero.Value[V](), false
}

// GetOrElse retrieves the value stored at key, or defaultValue if absent.
func (m *Map[K, V]) GetOrElse(key K, defaultValue V) V {
	if n := m.find(key); n != nil {
		return n.value
	}

	return defaultValue
}

// Contains reports whether key is present.
func (m *Map[K, V]) Contains(key K) bool {
	return m.find(key) != nil
}

// Size returns the number of entries. It is O(1).
func (m *Map[K, V]) Size() int {
	return m.count
}

// IsEmpty reports whether the map has no entries.
func (m *Map[K, V]) IsEmpty() bool {
	return m.count == 0
}

// Clear removes all entries, resetting the map to empty.
func (m *Map[K, V]) Clear() {
	m.root = nil
	m.count = 0
}

// Add inserts or replaces the entry at key. When the key is already present
// both the stored key and the value are replaced with the arguments: two keys
// that compare Equals may still be distinguishable to the caller, and the
// most recently added one wins.
func (m *Map[K, V]) Add(key K, value V) {
	var parent *node[K, V]

	cur := m.root
	for cur != nil {
		parent = cur

		switch {
		case key.Equals(cur.key):
			cur.key = key
			cur.value = value

			return
		case key.LessThan(cur.key):
			cur = cur.left
		default:
			cur = cur.right
		}
	}

	inserted := &node[K, V]{key: key, value: value, color: red, parent: parent}

	switch {
	case parent == nil:
		m.root = inserted
	case key.LessThan(parent.key):
		parent.left = inserted
	default:
		parent.right = inserted
	}

	m.count++
	m.fixupAdd(inserted)
}

// Remove deletes the entry at key. No-op when the key is absent.
func (m *Map[K, V]) Remove(key K) {
	target := m.find(key)
	if target == nil {
		return
	}

	m.count--
	m.removeNode(target)
}

// Seq returns an iterator over entries in ascending key order.
// Compatible with range-over-func: for k, v := range m.Seq() { ... }.
func (m *Map[K, V]) Seq() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		walkAsc(m.root, yield)
	}
}

// SeqBack returns an iterator over entries in descending key order.
func (m *Map[K, V]) SeqBack() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		walkDesc(m.root, yield)
	}
}

// walkAsc performs an in-order traversal (left, node, right).
// Returns false if the yield function requested an early stop.
func walkAsc[K sortable.Sortable[K], V any](n *node[K, V], yield func(K, V) bool) bool {
	if n == nil {
		return true
	}

	if !walkAsc(n.left, yield) {
		return false
	}

	if !yield(n.key, n.value) {
		return false
	}

	return walkAsc(n.right, yield)
}

// walkDesc performs a reverse in-order traversal (right, node, left).
func walkDesc[K sortable.Sortable[K], V any](n *node[K, V], yield func(K, V) bool) bool {
	if n == nil {
		return true
	}

	if !walkDesc(n.right, yield) {
		return false
	}

	if !yield(n.key, n.value) {
		return false
	}

	return walkDesc(n.left, yield)
}

// Keys returns all keys in ascending order.
func (m *Map[K, V]) Keys() []K {
	keys := make([]K, 0, m.count)

	for k := range m.Seq() {
		keys = append(keys, k)
	}

	return keys
}

// Values returns all values in ascending key order.
func (m *Map[K, V]) Values() []V {
	values := make([]V, 0, m.count)

	for _, v := range m.Seq() {
		values = append(values, v)
	}

	return values
}

// ForEach applies f to every entry in ascending key order.
func (m *Map[K, V]) ForEach(f func(key K, value V)) {
	for k, v := range m.Seq() {
		f(k, v)
	}
}

// ForAll reports whether the predicate holds for every entry.
// Returns true for an empty map.
func (m *Map[K, V]) ForAll(predicate func(key K, value V) bool) bool {
	for k, v := range m.Seq() {
		if !predicate(k, v) {
			return false
		}
	}

	return true
}

// Exists reports whether the predicate holds for at least one entry.
// Returns false for an empty map.
func (m *Map[K, V]) Exists(predicate func(key K, value V) bool) bool {
	for k, v := range m.Seq() {
		if predicate(k, v) {
			return true
		}
	}

	return false
}

// Filter returns a new map with the entries for which the predicate holds.
func (m *Map[K, V]) Filter(predicate func(key K, value V) bool) *Map[K, V] {
	out := New[K, V]()

	for k, v := range m.Seq() {
		if predicate(k, v) {
			out.Add(k, v)
		}
	}

	return out
}

// Clone returns a shallow copy of the map. Keys and values are referenced
// as-is, not deep-copied.
func (m *Map[K, V]) Clone() *Map[K, V] {
	out := New[K, V]()

	for k, v := range m.Seq() {
		out.Add(k, v)
	}

	return out
}

// Union returns a new map containing the entries of both maps.
// When a key is present in both, the receiver's entry wins.
func (m *Map[K, V]) Union(other *Map[K, V]) *Map[K, V] {
	out := m.Clone()

	for k, v := range other.Seq() {
		if !out.Contains(k) {
			out.Add(k, v)
		}
	}

	return out
}

// Intersection returns a new map with the receiver's entries whose keys are
// also present in other. Values come from the receiver.
func (m *Map[K, V]) Intersection(other *Map[K, V]) *Map[K, V] {
	return m.Filter(func(k K, _ V) bool {
		return other.Contains(k)
	})
}

// Difference returns a new map with the receiver's entries whose keys are
// not present in other.
func (m *Map[K, V]) Difference(other *Map[K, V]) *Map[K, V] {
	return m.Filter(func(k K, _ V) bool {
		return !other.Contains(k)
	})
}

// Package project provides ready-made projection functions for common key
// shapes. Each function maps a key to a sortable sort key and can be passed
// directly to dict.New and friends.
//
// As with any projection, injectivity over the actual key set is the
// caller's responsibility: keys that project to the same sort key occupy
// the same dictionary slot.
package project

import (
	"fmt"

	"github.com/turboMaCk/any-dict/sortable"
	"github.com/zeebo/xxh3"
	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// Fold projects a string caselessly: the input is NFC-normalized and Unicode
// case-folded, so "Straße", "STRASSE" and "strasse" share a sort key. Use it
// for case-insensitive dictionaries; GetKey recovers the spelling that was
// stored.
func Fold(s string) sortable.String {
	// cases.Caser carries internal state and is not safe for reuse
	// across goroutines, so build one per call.
	return sortable.String(cases.Fold().String(norm.NFC.String(s)))
}

// Norm projects a string through NFC normalization only, collapsing
// equivalent Unicode representations (composed vs decomposed accents)
// while remaining case-sensitive.
func Norm(s string) sortable.String {
	return sortable.String(norm.NFC.String(s))
}

// Text projects any fmt.Stringer through its string form.
func Text(v fmt.Stringer) sortable.String {
	return sortable.String(v.String())
}

// Hash64 projects arbitrary bytes to a 64-bit hash, giving keys a stable but
// arbitrary total order. Useful when keys have no meaningful order and only
// deterministic iteration matters. Hash collisions break injectivity, with
// the usual silent-overwrite consequence; at 64 bits this is vanishingly
// unlikely but not impossible.
func Hash64(data []byte) sortable.Uint64 {
	return sortable.Uint64(xxh3.Hash(data))
}

// Hash64String is Hash64 for strings, avoiding the []byte conversion.
func Hash64String(s string) sortable.Uint64 {
	return sortable.Uint64(xxh3.HashString(s))
}

package internal

import (
	"cmp"
	"iter"
	"maps"
	"slices"
)

// Concat2 yields the pairs of each sequence in turn.
func Concat2[K any, V any](seqs ...iter.Seq2[K, V]) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, seq := range seqs {
			for k, v := range seq {
				if !yield(k, v) {
					return
				}
			}
		}
	}
}

// Sorted yields the entries of a map in ascending key order.
func Sorted[K cmp.Ordered, V any](m map[K]V) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, k := range slices.Sorted(maps.Keys(m)) {
			if !yield(k, m[k]) {
				return
			}
		}
	}
}

// MapKeys rewrites the keys of a sequence with fn.
func MapKeys[K any, K2 any, V any](seq iter.Seq2[K, V], fn func(K) K2) iter.Seq2[K2, V] {
	return func(yield func(K2, V) bool) {
		for k, v := range seq {
			if !yield(fn(k), v) {
				return
			}
		}
	}
}

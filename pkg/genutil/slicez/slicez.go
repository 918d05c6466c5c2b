// Package slicez provides small generic slice helpers used by the map
// collections, chiefly for maintaining and projecting storage-key slices.
package slicez

// Filter returns a new slice holding the elements for which the predicate
// returned true, preserving their relative order. The input is not mutated.
func Filter[T any, Slice ~[]T](items Slice, pred func(T) bool) Slice {
	kept := make(Slice, 0, len(items))
	for _, item := range items {
		if pred(item) {
			kept = append(kept, item)
		}
	}
	return kept
}

// Map returns a new slice with fn applied to each element, in order.
func Map[T any, R any](items []T, fn func(T) R) []R {
	mapped := make([]R, len(items))
	for index, item := range items {
		mapped[index] = fn(item)
	}
	return mapped
}

// Unique returns a new slice with duplicates removed, keeping the first
// occurrence of each element in its original position.
func Unique[T comparable, Slice ~[]T](items Slice) Slice {
	seen := make(map[T]struct{}, len(items))
	distinct := make(Slice, 0, len(items))
	for _, item := range items {
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		distinct = append(distinct, item)
	}
	return distinct
}

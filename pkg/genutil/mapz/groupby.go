package mapz

import (
	"github.com/mapkit/mapkit/pkg/genutil"
	"github.com/mapkit/mapkit/pkg/genutil/slicez"
)

// GroupBy collects items into a MultiMap keyed by keyFn, retaining every
// item in the order seen per key.
func GroupBy[T any, K comparable](items []T, keyFn func(item T) K) *MultiMap[K, T] {
	grouped := NewMultiMapWithCap[K, T](genutil.MustEnsureUInt32(len(items)))
	for _, item := range items {
		grouped.Add(keyFn(item), item)
	}
	return grouped
}

// GroupByUnique collects items into a HashMap keyed by keyFn, holding a
// single item per key. When two items share a key the later one wins,
// matching the map's overwrite semantics.
func GroupByUnique[T any, K comparable](items []T, keyFn func(item T) K) *HashMap[K, K, T] {
	entries := slicez.Map(items, func(item T) Entry[K, T] {
		return Entry[K, T]{Key: keyFn(item), Value: item}
	})
	return NewHashMapFromEntries(entries, WithCapacity(genutil.MustEnsureUInt32(len(items))))
}

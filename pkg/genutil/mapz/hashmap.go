// Package mapz provides generic map collections, centered on HashMap, an
// insertion-ordered map that derives the storage key for each entry from a
// caller-supplied transform over the logical key.
package mapz

import (
	"iter"
	"slices"

	"github.com/mapkit/mapkit/pkg/genutil"
	"github.com/mapkit/mapkit/pkg/genutil/slicez"
	"github.com/mapkit/mapkit/pkg/kiterrors"
)

// TransformFunc derives the storage key under which a logical key's entry is
// kept. It must be a pure function of its input: the same logical key must
// always yield the same storage key. Distinct logical keys may yield the
// same storage key, in which case they alias to a single entry.
type TransformFunc[K any, S comparable] func(key K) S

// Entry is a single key-value pair, used both to pre-populate maps and to
// collect iterated entries.
type Entry[K any, V any] struct {
	Key   K
	Value V
}

// HashMap is a map from a logical key type K to values of type V, indexed
// internally by the storage key of type S computed by its transform.
//
// Entries iterate in insertion order; deleting a key and setting it again
// moves it to the end. HashMap is not safe for concurrent use.
type HashMap[K any, S comparable, V any] struct {
	entries   map[S]V
	order     []S
	transform TransformFunc[K, S]
	name      string
}

// NewHashMap initializes a new empty HashMap whose logical keys are stored
// as-is.
func NewHashMap[K comparable, V any](opts ...Option) *HashMap[K, K, V] {
	return NewTransformedHashMap[K, K, V](genutil.Identity[K], opts...)
}

// NewTransformedHashMap initializes a new empty HashMap that stores each
// entry under transform(logical key).
func NewTransformedHashMap[K any, S comparable, V any](transform TransformFunc[K, S], opts ...Option) *HashMap[K, S, V] {
	config := applyOptions(opts)
	return &HashMap[K, S, V]{
		entries:   make(map[S]V, config.capacity),
		transform: transform,
		name:      config.name,
	}
}

// NewHashMapFromEntries initializes a HashMap pre-populated from the given
// entries, in order. Logical keys are stored as-is.
func NewHashMapFromEntries[K comparable, V any](entries []Entry[K, V], opts ...Option) *HashMap[K, K, V] {
	return NewTransformedHashMapFromEntries[K, K, V](genutil.Identity[K], entries, opts...)
}

// NewTransformedHashMapFromEntries initializes a HashMap pre-populated from
// the given entries, in order, applying the transform to each key. If two
// entries' keys transform to the same storage key, the later value wins.
func NewTransformedHashMapFromEntries[K any, S comparable, V any](transform TransformFunc[K, S], entries []Entry[K, V], opts ...Option) *HashMap[K, S, V] {
	m := NewTransformedHashMap[K, S, V](transform, opts...)
	for _, entry := range entries {
		m.Set(entry.Key, entry.Value)
	}
	return m
}

// Name returns the diagnostic name of the map.
func (m *HashMap[K, S, V]) Name() string { return m.name }

// Get returns the value stored for the given key.
//
// Returns a MissingKeyError if no entry exists for the key's storage key.
// Presence is decided by entry existence: a stored zero value is returned
// as-is, not treated as missing.
func (m *HashMap[K, S, V]) Get(key K) (V, error) {
	value, ok := m.entries[m.transform(key)]
	if !ok {
		var zero V
		return zero, NewMissingKeyErr(key, m.name)
	}
	return value, nil
}

// GetOr returns the value stored for the given key, or the fallback if no
// entry exists. Never fails.
func (m *HashMap[K, S, V]) GetOr(key K, fallback V) V {
	value, ok := m.entries[m.transform(key)]
	if !ok {
		return fallback
	}
	return value
}

// Has returns true if an entry exists for the given key.
func (m *HashMap[K, S, V]) Has(key K) bool {
	_, ok := m.entries[m.transform(key)]
	return ok
}

// Set inserts or overwrites the entry for the given key. Overwriting a live
// key keeps its iteration position.
func (m *HashMap[K, S, V]) Set(key K, value V) {
	m.setStorageKey(m.transform(key), value)
}

func (m *HashMap[K, S, V]) setStorageKey(storageKey S, value V) {
	if _, ok := m.entries[storageKey]; !ok {
		m.order = append(m.order, storageKey)
	}
	m.entries[storageKey] = value
}

// Delete removes the entry for the given key. Returns a MissingKeyError if
// no entry exists.
func (m *HashMap[K, S, V]) Delete(key K) error {
	if !m.deleteStorageKey(m.transform(key)) {
		return NewMissingKeyErr(key, m.name)
	}
	return nil
}

// DeleteIfExists removes the entry for the given key if present, returning
// whether an entry was removed. Never fails.
func (m *HashMap[K, S, V]) DeleteIfExists(key K) bool {
	return m.deleteStorageKey(m.transform(key))
}

func (m *HashMap[K, S, V]) deleteStorageKey(storageKey S) bool {
	if _, ok := m.entries[storageKey]; !ok {
		return false
	}

	delete(m.entries, storageKey)
	remaining := slicez.Filter(m.order, func(existing S) bool {
		return existing != storageKey
	})
	kiterrors.DebugAssertf(func() bool {
		return len(remaining) == len(m.order)-1
	}, "storage key order out of sync with entries in map `%s`", m.name)
	m.order = remaining
	return true
}

// Clear removes all entries. Idempotent.
func (m *HashMap[K, S, V]) Clear() {
	m.entries = map[S]V{}
	m.order = nil
}

// Len returns the number of entries in the map.
func (m *HashMap[K, S, V]) Len() int { return len(m.entries) }

// IsEmpty returns true if the map holds no entries.
func (m *HashMap[K, S, V]) IsEmpty() bool { return len(m.entries) == 0 }

// Entries returns an iterator over (storage key, value) pairs in insertion
// order. Each range over the returned sequence is a fresh traversal that
// snapshots the key order at its start: entries deleted mid-traversal are
// skipped and entries added mid-traversal do not appear, but mutations are
// visible to subsequent traversals.
//
// The yielded key is the storage key; the transform is one-directional, so
// callers needing the original logical key must track it themselves.
func (m *HashMap[K, S, V]) Entries() iter.Seq2[S, V] {
	return func(yield func(S, V) bool) {
		for _, storageKey := range slices.Clone(m.order) {
			value, ok := m.entries[storageKey]
			if !ok {
				continue
			}
			if !yield(storageKey, value) {
				return
			}
		}
	}
}

// Keys returns an iterator over storage keys in insertion order.
func (m *HashMap[K, S, V]) Keys() iter.Seq[S] {
	return func(yield func(S) bool) {
		for storageKey := range m.Entries() {
			if !yield(storageKey) {
				return
			}
		}
	}
}

// Values returns an iterator over values in insertion order.
func (m *HashMap[K, S, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, value := range m.Entries() {
			if !yield(value) {
				return
			}
		}
	}
}

// derived returns a new empty map carrying this map's transform and name,
// the shared basis of all derivation operations.
func (m *HashMap[K, S, V]) derived() *HashMap[K, S, V] {
	return &HashMap[K, S, V]{
		entries:   make(map[S]V, len(m.entries)),
		order:     make([]S, 0, len(m.order)),
		transform: m.transform,
		name:      m.name,
	}
}

// Filter returns a new HashMap holding the entries for which the predicate
// returns true. The index and receiver passed to the predicate reflect the
// pre-filter traversal. Does not mutate the receiver.
func (m *HashMap[K, S, V]) Filter(pred func(value V, key S, index int, source *HashMap[K, S, V]) bool) *HashMap[K, S, V] {
	filtered := m.derived()
	index := 0
	for storageKey, value := range m.Entries() {
		if pred(value, storageKey, index, m) {
			filtered.setStorageKey(storageKey, value)
		}
		index++
	}
	return filtered
}

// Map returns a new HashMap built by inserting, in traversal order, the
// (storage key, value) pair the function returns for each entry. Pairs
// returned with duplicate storage keys overwrite earlier ones. Does not
// mutate the receiver.
func (m *HashMap[K, S, V]) Map(fn func(value V, key S, index int, source *HashMap[K, S, V]) (S, V)) *HashMap[K, S, V] {
	mapped := m.derived()
	index := 0
	for storageKey, value := range m.Entries() {
		newKey, newValue := fn(value, storageKey, index, m)
		mapped.setStorageKey(newKey, newValue)
		index++
	}
	return mapped
}

// MapKeys returns a new HashMap with each entry's storage key replaced by
// the function's result and its value held fixed.
func (m *HashMap[K, S, V]) MapKeys(fn func(value V, key S, index int, source *HashMap[K, S, V]) S) *HashMap[K, S, V] {
	return m.Map(func(value V, key S, index int, source *HashMap[K, S, V]) (S, V) {
		return fn(value, key, index, source), value
	})
}

// MapValues returns a new HashMap with each entry's value replaced by the
// function's result and its storage key held fixed.
func (m *HashMap[K, S, V]) MapValues(fn func(value V, key S, index int, source *HashMap[K, S, V]) V) *HashMap[K, S, V] {
	return m.Map(func(value V, key S, index int, source *HashMap[K, S, V]) (S, V) {
		return key, fn(value, key, index, source)
	})
}

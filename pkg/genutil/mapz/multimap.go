package mapz

import (
	"golang.org/x/exp/maps"

	"github.com/mapkit/mapkit/pkg/genutil/slicez"
)

// ReadOnlyMultiMap is a read-only view over a multimap.
type ReadOnlyMultiMap[K comparable, V any] interface {
	// Has returns true if the key is found in the map.
	Has(key K) bool

	// Get returns the values for the given key in the map and whether the
	// key existed. If the key does not exist, an empty slice is returned.
	Get(key K) ([]V, bool)

	// IsEmpty returns true if the map is currently empty.
	IsEmpty() bool

	// Len returns the number of keys present.
	Len() int

	// Keys returns the keys of the map.
	Keys() []K

	// Values returns all values in the map.
	Values() []V
}

// MultiMap represents a map that can contain one or more values for each
// key.
type MultiMap[K comparable, V any] struct {
	items map[K][]V
}

// NewMultiMap initializes a new MultiMap.
func NewMultiMap[K comparable, V any]() *MultiMap[K, V] {
	return &MultiMap[K, V]{items: map[K][]V{}}
}

// NewMultiMapWithCap initializes with the provided capacity for the
// top-level map.
func NewMultiMapWithCap[K comparable, V any](capacity uint32) *MultiMap[K, V] {
	return &MultiMap[K, V]{items: make(map[K][]V, capacity)}
}

// Add appends the value to those stored at the given key, without
// comparison: adding the same value twice stores it twice.
func (m *MultiMap[K, V]) Add(key K, value V) {
	m.items[key] = append(m.items[key], value)
}

// Set replaces the values stored at the given key with those provided.
func (m *MultiMap[K, V]) Set(key K, values []V) {
	m.items[key] = values
}

// RemoveKey removes the given key and all its values from the map.
func (m *MultiMap[K, V]) RemoveKey(key K) {
	delete(m.items, key)
}

// Clear removes all entries in the map.
func (m *MultiMap[K, V]) Clear() {
	m.items = map[K][]V{}
}

// Has returns true if the key is found in the map.
func (m *MultiMap[K, V]) Has(key K) bool {
	_, ok := m.items[key]
	return ok
}

// Get returns the values stored in the map for the provided key and whether
// the key existed. If the key does not exist, an empty slice is returned.
func (m *MultiMap[K, V]) Get(key K) ([]V, bool) {
	found, ok := m.items[key]
	if !ok {
		return []V{}, false
	}
	return found, true
}

// CountOf returns the number of values stored for the given key.
func (m *MultiMap[K, V]) CountOf(key K) int {
	return len(m.items[key])
}

// IsEmpty returns true if the map is currently empty.
func (m *MultiMap[K, V]) IsEmpty() bool { return len(m.items) == 0 }

// Len returns the number of keys present.
func (m *MultiMap[K, V]) Len() int { return len(m.items) }

// Keys returns the keys of the map.
func (m *MultiMap[K, V]) Keys() []K { return maps.Keys(m.items) }

// Values returns all values in the map.
func (m *MultiMap[K, V]) Values() []V {
	values := make([]V, 0, len(m.items))
	for _, valueSlice := range maps.Values(m.items) {
		values = append(values, valueSlice...)
	}
	return values
}

// DistinctValues returns the values across all keys of the multimap with
// duplicates removed.
func DistinctValues[K comparable, V comparable](mm *MultiMap[K, V]) []V {
	return slicez.Unique(mm.Values())
}

// Clone returns a clone of the map.
func (m *MultiMap[K, V]) Clone() *MultiMap[K, V] {
	return &MultiMap[K, V]{maps.Clone(m.items)}
}

// AsReadOnly returns a read-only *copy* of the multimap, immune to later
// mutation of the source.
func (m *MultiMap[K, V]) AsReadOnly() ReadOnlyMultiMap[K, V] {
	return readOnlyMultiMap[K, V]{
		maps.Clone(m.items),
	}
}

type readOnlyMultiMap[K comparable, V any] struct {
	items map[K][]V
}

func (m readOnlyMultiMap[K, V]) Has(key K) bool {
	_, ok := m.items[key]
	return ok
}

func (m readOnlyMultiMap[K, V]) Get(key K) ([]V, bool) {
	found, ok := m.items[key]
	if !ok {
		return []V{}, false
	}
	return found, true
}

func (m readOnlyMultiMap[K, V]) IsEmpty() bool { return len(m.items) == 0 }

func (m readOnlyMultiMap[K, V]) Len() int { return len(m.items) }

func (m readOnlyMultiMap[K, V]) Keys() []K { return maps.Keys(m.items) }

func (m readOnlyMultiMap[K, V]) Values() []V {
	values := make([]V, 0, len(m.items))
	for _, valueSlice := range maps.Values(m.items) {
		values = append(values, valueSlice...)
	}
	return values
}

package mapz

import (
	"github.com/mapkit/mapkit/pkg/genutil"
)

// DefaultMap is a HashMap whose Get never fails: when a key has no entry,
// the configured DefaultValue is synthesized, inserted, and returned.
//
// The insert-on-miss is observable: after a missed Get the entry exists for
// every subsequent operation, and the freshly defaulted key iterates last.
type DefaultMap[K any, S comparable, V any] struct {
	HashMap[K, S, V]

	defaultValue DefaultValue[K, V]
}

// NewDefaultMap initializes a new empty DefaultMap whose logical keys are
// stored as-is.
func NewDefaultMap[K comparable, V any](defaultValue DefaultValue[K, V], opts ...Option) *DefaultMap[K, K, V] {
	return NewTransformedDefaultMap[K, K, V](genutil.Identity[K], defaultValue, opts...)
}

// NewTransformedDefaultMap initializes a new empty DefaultMap that stores
// each entry under transform(logical key).
func NewTransformedDefaultMap[K any, S comparable, V any](transform TransformFunc[K, S], defaultValue DefaultValue[K, V], opts ...Option) *DefaultMap[K, S, V] {
	return &DefaultMap[K, S, V]{
		HashMap:      *NewTransformedHashMap[K, S, V](transform, opts...),
		defaultValue: defaultValue,
	}
}

// NewDefaultMapFromEntries initializes a DefaultMap pre-populated from the
// given entries, in order. Logical keys are stored as-is.
func NewDefaultMapFromEntries[K comparable, V any](entries []Entry[K, V], defaultValue DefaultValue[K, V], opts ...Option) *DefaultMap[K, K, V] {
	return NewTransformedDefaultMapFromEntries[K, K, V](genutil.Identity[K], entries, defaultValue, opts...)
}

// NewTransformedDefaultMapFromEntries initializes a DefaultMap pre-populated
// from the given entries, in order, applying the transform to each key.
func NewTransformedDefaultMapFromEntries[K any, S comparable, V any](transform TransformFunc[K, S], entries []Entry[K, V], defaultValue DefaultValue[K, V], opts ...Option) *DefaultMap[K, S, V] {
	m := NewTransformedDefaultMap[K, S, V](transform, defaultValue, opts...)
	for _, entry := range entries {
		m.Set(entry.Key, entry.Value)
	}
	return m
}

// Get returns the value stored for the given key. When no entry exists, the
// configured default is synthesized, inserted under the key, and returned.
// Never fails; a MissingKeyError cannot surface from this method.
func (m *DefaultMap[K, S, V]) Get(key K) V {
	storageKey := m.transform(key)
	if value, ok := m.entries[storageKey]; ok {
		return value
	}

	value := m.defaultValue.produce(key)
	m.setStorageKey(storageKey, value)
	return value
}

// rederived wraps a derived base map into a DefaultMap carrying this map's
// DefaultValue forward, the shared basis of all derivation operations.
func (m *DefaultMap[K, S, V]) rederived(base *HashMap[K, S, V]) *DefaultMap[K, S, V] {
	return &DefaultMap[K, S, V]{
		HashMap:      *base,
		defaultValue: m.defaultValue,
	}
}

// Filter returns a new DefaultMap holding the entries for which the
// predicate returns true, carrying the DefaultValue forward.
func (m *DefaultMap[K, S, V]) Filter(pred func(value V, key S, index int, source *HashMap[K, S, V]) bool) *DefaultMap[K, S, V] {
	return m.rederived(m.HashMap.Filter(pred))
}

// Map returns a new DefaultMap built from the pairs the function returns,
// carrying the DefaultValue forward.
func (m *DefaultMap[K, S, V]) Map(fn func(value V, key S, index int, source *HashMap[K, S, V]) (S, V)) *DefaultMap[K, S, V] {
	return m.rederived(m.HashMap.Map(fn))
}

// MapKeys returns a new DefaultMap with storage keys replaced by the
// function's result, carrying the DefaultValue forward.
func (m *DefaultMap[K, S, V]) MapKeys(fn func(value V, key S, index int, source *HashMap[K, S, V]) S) *DefaultMap[K, S, V] {
	return m.rederived(m.HashMap.MapKeys(fn))
}

// MapValues returns a new DefaultMap with values replaced by the function's
// result, carrying the DefaultValue forward.
func (m *DefaultMap[K, S, V]) MapValues(fn func(value V, key S, index int, source *HashMap[K, S, V]) V) *DefaultMap[K, S, V] {
	return m.rederived(m.HashMap.MapValues(fn))
}

package mapz

// DefaultValue describes how a DefaultMap synthesizes the value for a key
// that has no entry: either a static value, or a generator computed from the
// missing logical key.
type DefaultValue[K any, V any] struct {
	static   V
	generate func(key K) V
}

// StaticDefault returns a DefaultValue that supplies the given value for
// every missing key.
func StaticDefault[K any, V any](value V) DefaultValue[K, V] {
	return DefaultValue[K, V]{static: value}
}

// ComputedDefault returns a DefaultValue that derives the value from the
// missing logical key.
func ComputedDefault[K any, V any](generate func(key K) V) DefaultValue[K, V] {
	return DefaultValue[K, V]{generate: generate}
}

func (d DefaultValue[K, V]) produce(key K) V {
	if d.generate != nil {
		return d.generate(key)
	}
	return d.static
}

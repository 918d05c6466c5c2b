package mapz

// defaultMapName is the diagnostic name used when none is configured.
const defaultMapName = "unknown"

type mapConfig struct {
	name     string
	capacity uint32
}

// Option configures a map at construction time.
type Option func(*mapConfig)

// WithName sets the diagnostic name of the map, used in error messages.
func WithName(name string) Option {
	return func(config *mapConfig) {
		config.name = name
	}
}

// WithCapacity pre-sizes the internal store for the expected entry count.
func WithCapacity(capacity uint32) Option {
	return func(config *mapConfig) {
		config.capacity = capacity
	}
}

func applyOptions(opts []Option) mapConfig {
	config := mapConfig{name: defaultMapName}
	for _, opt := range opts {
		opt(&config)
	}
	return config
}

package genutil

// Identity returns its argument unchanged. It is the transform used by the
// mapz constructors that store logical keys as-is.
func Identity[T any](value T) T {
	return value
}

// Constant returns a function that ignores its invocation and always returns
// the given value.
func Constant[T any](value T) func() T {
	return func() T {
		return value
	}
}

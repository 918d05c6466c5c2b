package slicez

import (
	"github.com/mapkit/mapkit/internal/logging"
)

const fallbackChunkSize = 100

// ForEachChunk executes the given handler for each chunk of items in the slice.
func ForEachChunk[T any](data []T, chunkSize uint16, handler func(items []T)) {
	_, _ = ForEachChunkUntil(data, chunkSize, func(items []T) (bool, error) {
		handler(items)
		return true, nil
	})
}

// ForEachChunkUntil executes the given handler for each chunk of items in the
// slice, stopping early if the handler returns false or an error.
func ForEachChunkUntil[T any](data []T, chunkSize uint16, handler func(items []T) (bool, error)) (bool, error) {
	if chunkSize == 0 {
		logging.Warn().Int("invalid-chunk-size", int(chunkSize)).Msg("ForEachChunkUntil got an invalid chunk size; defaulting to 100")
		chunkSize = fallbackChunkSize
	}

	size := int(chunkSize)
	for start := 0; start < len(data); start += size {
		end := min(start+size, len(data))

		ok, err := handler(data[start:end])
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
	}

	return true, nil
}

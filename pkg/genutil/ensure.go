package genutil

import (
	safecast "github.com/ccoveille/go-safecast/v2"

	"github.com/mapkit/mapkit/pkg/kiterrors"
)

// MustEnsureUInt32 is a helper function that calls EnsureUInt32 and panics on error.
func MustEnsureUInt32(value int) uint32 {
	ret, err := EnsureUInt32(value)
	if err != nil {
		panic(err)
	}
	return ret
}

// EnsureUInt32 ensures that the specified value can be represented as a uint32.
func EnsureUInt32(value int) (uint32, error) {
	ret, err := safecast.Convert[uint32](value)
	if err != nil {
		return 0, kiterrors.MustBugf("specified value cannot be represented as a uint32")
	}
	return ret, nil
}

// EnsureUInt8 ensures that the specified value can be represented as a uint8.
func EnsureUInt8(value int) (uint8, error) {
	ret, err := safecast.Convert[uint8](value)
	if err != nil {
		return 0, kiterrors.MustBugf("specified value cannot be represented as a uint8")
	}
	return ret, nil
}

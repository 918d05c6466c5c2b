package mapz

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"
)

// MissingKeyError occurs when a strict accessor addresses a key that has no
// entry in the map.
type MissingKeyError struct {
	error
	key     any
	mapName string
}

// MissingKey returns the logical key for which no entry was found.
func (err MissingKeyError) MissingKey() any {
	return err.key
}

// MapName returns the diagnostic name of the map that raised the error.
func (err MissingKeyError) MapName() string {
	return err.mapName
}

// MarshalZerologObject implements zerolog object marshalling.
func (err MissingKeyError) MarshalZerologObject(e *zerolog.Event) {
	e.Err(err.error).Interface("key", err.key).Str("map", err.mapName)
}

// DetailsMetadata returns the metadata for details for this error.
func (err MissingKeyError) DetailsMetadata() map[string]string {
	return map[string]string{
		"key":      fmt.Sprintf("%v", err.key),
		"map_name": err.mapName,
	}
}

// NewMissingKeyErr constructs an error indicating the given logical key has
// no entry in the named map.
func NewMissingKeyErr(key any, mapName string) error {
	return MissingKeyError{
		fmt.Errorf("key `%v` not found in map `%s`", key, mapName),
		key,
		mapName,
	}
}

// AsMissingKeyError returns the error as a MissingKeyError, if applicable.
func AsMissingKeyError(err error) (MissingKeyError, bool) {
	var mkerr MissingKeyError
	if errors.As(err, &mkerr) {
		return mkerr, true
	}
	return MissingKeyError{}, false
}

package mapz

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestMissingKeyError(t *testing.T) {
	err := NewMissingKeyErr("some-key", "some-map")
	require.EqualError(t, err, "key `some-key` not found in map `some-map`")

	mkerr, ok := AsMissingKeyError(err)
	require.True(t, ok)
	require.Equal(t, "some-key", mkerr.MissingKey())
	require.Equal(t, "some-map", mkerr.MapName())
}

func TestMissingKeyErrorWrapped(t *testing.T) {
	wrapped := fmt.Errorf("lookup failed: %w", NewMissingKeyErr(42, "numbers"))

	mkerr, ok := AsMissingKeyError(wrapped)
	require.True(t, ok)
	require.Equal(t, 42, mkerr.MissingKey())

	_, ok = AsMissingKeyError(errors.New("unrelated"))
	require.False(t, ok)
}

func TestMissingKeyErrorDetailsMetadata(t *testing.T) {
	err := NewMissingKeyErr("k1", "m1")

	mkerr, ok := AsMissingKeyError(err)
	require.True(t, ok)
	require.Equal(t, map[string]string{
		"key":      "k1",
		"map_name": "m1",
	}, mkerr.DetailsMetadata())
}

func TestMissingKeyErrorZerologMarshalling(t *testing.T) {
	mkerr, ok := AsMissingKeyError(NewMissingKeyErr("k1", "m1"))
	require.True(t, ok)

	var buf bytes.Buffer
	logger := zerolog.New(&buf)
	logger.Error().EmbedObject(mkerr).Msg("lookup miss")

	require.Contains(t, buf.String(), `"key":"k1"`)
	require.Contains(t, buf.String(), `"map":"m1"`)
	require.Contains(t, buf.String(), "lookup miss")
}

package slicez

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type keyedValue struct {
	key   string
	value int
}

func TestFilter(t *testing.T) {
	tcs := []struct {
		name     string
		keys     []string
		pred     func(string) bool
		expected []string
	}{
		{
			name:     "drop a single storage key",
			keys:     []string{"a", "b", "c"},
			pred:     func(key string) bool { return key != "b" },
			expected: []string{"a", "c"},
		},
		{
			name:     "keep keys under a prefix",
			keys:     []string{"user:1", "order:7", "user:2", "order:9"},
			pred:     func(key string) bool { return strings.HasPrefix(key, "user:") },
			expected: []string{"user:1", "user:2"},
		},
		{
			name:     "keep everything",
			keys:     []string{"a", "b"},
			pred:     func(string) bool { return true },
			expected: []string{"a", "b"},
		},
		{
			name:     "drop everything",
			keys:     []string{"a", "b"},
			pred:     func(string) bool { return false },
			expected: []string{},
		},
		{
			name:     "empty input",
			keys:     []string{},
			pred:     func(string) bool { return true },
			expected: []string{},
		},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expected, Filter(tc.keys, tc.pred))
		})
	}
}

func TestFilterDoesNotMutateInput(t *testing.T) {
	keys := []string{"a", "b", "c"}
	_ = Filter(keys, func(key string) bool { return key == "b" })
	require.Equal(t, []string{"a", "b", "c"}, keys)
}

func TestMapProjectsKeys(t *testing.T) {
	entries := []keyedValue{
		{"a", 1},
		{"b", 2},
		{"c", 3},
	}

	keys := Map(entries, func(kv keyedValue) string { return kv.key })
	require.Equal(t, []string{"a", "b", "c"}, keys)

	values := Map(entries, func(kv keyedValue) int { return kv.value })
	require.Equal(t, []int{1, 2, 3}, values)
}

func TestMapNormalizesKeys(t *testing.T) {
	require.Equal(t,
		[]string{"alpha", "beta"},
		Map([]string{"Alpha", "BETA"}, strings.ToLower))

	require.Equal(t, []string{}, Map([]string{}, strings.ToLower))
}

func TestUnique(t *testing.T) {
	tcs := []struct {
		name     string
		keys     []string
		expected []string
	}{
		{
			name:     "aliased day keys collapse",
			keys:     []string{"2024-03-15", "2024-03-16", "2024-03-15", "2024-03-15"},
			expected: []string{"2024-03-15", "2024-03-16"},
		},
		{
			name:     "already distinct",
			keys:     []string{"a", "b", "c"},
			expected: []string{"a", "b", "c"},
		},
		{
			name:     "first occurrence keeps its position",
			keys:     []string{"b", "a", "b", "c", "a"},
			expected: []string{"b", "a", "c"},
		},
		{
			name:     "all the same",
			keys:     []string{"x", "x", "x"},
			expected: []string{"x"},
		},
		{
			name:     "empty input",
			keys:     []string{},
			expected: []string{},
		},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expected, Unique(tc.keys))
		})
	}
}

func TestUniqueInts(t *testing.T) {
	require.Equal(t, []int{3, 1, 2}, Unique([]int{3, 1, 3, 2, 1}))
}

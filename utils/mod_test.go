package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFindIndex(t *testing.T) {
	require.Equal(t, 1, FindIndex([]int{4, 5, 5}, 5), "Should return the first match")
	require.Equal(t, -1, FindIndex([]string{"a"}, "b"))
	require.Equal(t, -1, FindIndex(nil, 0))
}

func TestRemove(t *testing.T) {
	t.Run("keeps order", func(t *testing.T) {
		src := []int{1, 2, 3, 2}

		result, ok := Remove(src, 2)

		require.True(t, ok)
		require.Equal(t, []int{1, 3, 2}, result)
		require.Equal(t, []int{1, 2, 3, 2}, src, "Source should not be modified")
	})

	t.Run("missing item", func(t *testing.T) {
		result, ok := Remove([]int{1}, 7)

		require.False(t, ok)
		require.Equal(t, []int{1}, result)
	})

	t.Run("pointers", func(t *testing.T) {
		a, b := new(int), new(int)

		result, ok := Remove([]*int{a, b}, a)

		require.True(t, ok)
		require.Len(t, result, 1)
		require.Same(t, b, result[0])
	})
}

func TestContains(t *testing.T) {
	require.True(t, Contains([]string{"x", "y"}, "y"))
	require.False(t, Contains([]string{"x"}, "z"))
}

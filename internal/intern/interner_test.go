package intern

import (
	"strings"
	"testing"

	"github.com/arloliu/binowl/errs"
	"github.com/stretchr/testify/require"
)

func TestInterner_Intern_AssignsSequentialIndices(t *testing.T) {
	in := New[string](0)

	for i, key := range []string{"X", "Y", "Z"} {
		idx, added, err := in.Intern(key)
		require.NoError(t, err)
		require.True(t, added)
		require.Equal(t, i, idx)
	}

	require.Equal(t, 3, in.Len())
	require.Equal(t, []string{"X", "Y", "Z"}, in.Values())
}

func TestInterner_Intern_Idempotent(t *testing.T) {
	in := New[string](4)

	first, _, err := in.Intern("owl:Thing")
	require.NoError(t, err)

	again, added, err := in.Intern("owl:Thing")
	require.NoError(t, err)
	require.False(t, added)
	require.Equal(t, first, again)
	require.Equal(t, 1, in.Len())
}

func TestInterner_IndexOf_Miss(t *testing.T) {
	in := New[string](0)
	_, _, _ = in.Intern("a")

	idx, ok := in.IndexOf("b")
	require.False(t, ok)
	require.Equal(t, 0, idx)
	require.Equal(t, 1, in.Len())
}

func TestInterner_At(t *testing.T) {
	in := New[int](0)
	_, _, _ = in.Intern(42)

	v, ok := in.At(0)
	require.True(t, ok)
	require.Equal(t, 42, v)

	_, ok = in.At(1)
	require.False(t, ok)
	_, ok = in.At(-1)
	require.False(t, ok)
}

func TestInterner_Full(t *testing.T) {
	in := New[int](0)
	in.limit = 2

	_, _, err := in.Intern(1)
	require.NoError(t, err)
	_, _, err = in.Intern(2)
	require.NoError(t, err)

	_, _, err = in.Intern(3)
	require.ErrorIs(t, err, errs.ErrTableFull)

	// existing keys still resolve
	idx, _, err := in.Intern(2)
	require.NoError(t, err)
	require.Equal(t, 1, idx)
}

func TestInterner_Renumber(t *testing.T) {
	in := New[string](0)
	for _, k := range []string{"c", "a", "b"} {
		_, _, _ = in.Intern(k)
	}

	in.Renumber(strings.Compare)

	require.Equal(t, []string{"a", "b", "c"}, in.Values())
	for i, k := range in.Values() {
		idx, ok := in.IndexOf(k)
		require.True(t, ok)
		require.Equal(t, i, idx)
	}
}

func TestInterner_Reset(t *testing.T) {
	in := New[string](0)
	_, _, _ = in.Intern("a")
	in.Reset()

	require.Equal(t, 0, in.Len())
	_, ok := in.IndexOf("a")
	require.False(t, ok)

	idx, added, err := in.Intern("b")
	require.NoError(t, err)
	require.True(t, added)
	require.Equal(t, 0, idx)
}

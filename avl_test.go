package avl

import (
	"errors"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMap(t *testing.T) {
	assertEq := func(t *testing.T, exp, got int) {
		t.Helper()
		if exp != got {
			t.Fatalf("expected %d, got %d", exp, got)
		}
	}

	m := New[int, struct{}]()
	m.Insert(2, struct{}{})
	m.Insert(12, struct{}{})
	m.Insert(1, struct{}{})

	iter := m.Iterator()
	iter.First()
	for _, exp := range []int{1, 2, 12} {
		assertEq(t, exp, iter.Cur())
		iter.Next()
	}
	if iter.Valid() {
		t.Fatal("expected invalid")
	}
}

func TestScenarios(t *testing.T) {
	for _, tc := range []struct {
		order []int
		exp   string
	}{
		{[]int{1, 2, 3}, "(1:a)2:b(3:c)"},
		{[]int{3, 2, 1}, "(1:a)2:b(3:c)"},
		{[]int{1, 3, 2}, "(1:a)2:b(3:c)"},
	} {
		m := New[int, string]()
		for _, k := range tc.order {
			m.Insert(k, string(rune('a'+k-1)))
		}
		require.NoError(t, m.Verify())
		require.Equal(t, tc.exp, m.String())
	}
}

func TestRemove(t *testing.T) {
	m := New[int, int]()
	for i := 1; i <= 7; i++ {
		m.Insert(i, i*i)
	}
	m.Remove(1)
	m.Remove(100)
	require.NoError(t, m.Verify())
	require.Equal(t, 6, m.Len())
	require.False(t, m.Has(1))

	var got []int
	it := m.Iterator()
	for it.First(); it.Valid(); it.Next() {
		got = append(got, it.Cur())
		require.Equal(t, it.Cur()*it.Cur(), it.Value())
	}
	require.Equal(t, []int{2, 3, 4, 5, 6, 7}, got)

	_, err := m.At(1)
	var ke *KeyError
	require.True(t, errors.As(err, &ke))
	v, err := m.At(3)
	require.NoError(t, err)
	require.Equal(t, 9, v)
}

func TestCustomOrder(t *testing.T) {
	m := MakeMap[string, int](func(a, b string) int {
		return strings.Compare(strings.ToLower(a), strings.ToLower(b))
	})
	m.Insert("b", 1)
	m.Insert("A", 2)
	m.Insert("B", 3)
	require.Equal(t, 2, m.Len())
	v, ok := m.Get("b")
	require.True(t, ok)
	require.Equal(t, 3, v)

	it := m.Iterator()
	it.SeekGE("a")
	require.Equal(t, "A", it.Cur())
	it.SeekLT("a")
	require.False(t, it.Valid())
	it.Last()
	require.Equal(t, "b", it.Cur())
	it.Prev()
	require.Equal(t, "A", it.Cur())
}

func TestCloneReset(t *testing.T) {
	m := New[int, int]()
	for _, k := range rand.Perm(100) {
		m.Insert(k, k)
	}
	c := m.Clone()
	m.Reset()
	require.Equal(t, 0, m.Len())
	require.Equal(t, 100, c.Len())
	require.NoError(t, c.Verify())
	require.LessOrEqual(t, c.Height(), 9)
}

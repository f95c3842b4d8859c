package bst

import (
	"cmp"
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

type intTree = Tree[int, string, int8]

func build(keys ...int) *intTree {
	t := MakeTree[int, string, int8](cmp.Compare[int])
	for _, k := range keys {
		t.Insert(k, "")
	}
	return &t
}

// checkLinks verifies ordering and the consistency of parent and child
// links, returning the keys in order.
func checkLinks(t *testing.T, tr *intTree) []int {
	t.Helper()
	var keys []int
	var walk func(h, parent Handle)
	walk = func(h, parent Handle) {
		if h == Nil {
			return
		}
		require.Equal(t, parent, tr.Parent(h), "parent of %d", tr.Key(h))
		walk(tr.Left(h), h)
		keys = append(keys, tr.Key(h))
		walk(tr.Right(h), h)
	}
	walk(tr.Root(), Nil)
	require.Len(t, keys, tr.Len())
	return keys
}

func inOrder(tr *intTree) []int {
	var keys []int
	it := tr.MakeIter()
	for it.First(); it.Valid(); it.Next() {
		keys = append(keys, it.Key())
	}
	return keys
}

func TestInsertFind(t *testing.T) {
	tr := build(5, 3, 8, 1, 4, 7, 9)
	require.Equal(t, []int{1, 3, 4, 5, 7, 8, 9}, checkLinks(t, tr))
	require.Equal(t, 7, tr.Len())
	require.Equal(t, 3, tr.Height())
	require.Equal(t, Nil, tr.Find(6))
	h := tr.Find(4)
	require.NotEqual(t, Nil, h)
	require.Equal(t, 4, tr.Key(h))

	shape := tr.String()
	got, old, inserted := tr.Insert(4, "four")
	require.False(t, inserted)
	require.Equal(t, "", old)
	require.Equal(t, h, got)
	require.Equal(t, "four", tr.Value(h))
	require.Equal(t, 7, tr.Len())
	require.NotEqual(t, shape, tr.String())
	require.Equal(t, "((1:)3:(4:four))5:((7:)8:(9:))", tr.String())
}

func TestPredecessorSuccessor(t *testing.T) {
	tr := build(5, 3, 8, 1, 4, 7, 9)
	for _, tc := range []struct {
		key, pred, succ int
	}{
		{1, 0, 3},
		{3, 1, 4},
		{4, 3, 5},
		{5, 4, 7},
		{7, 5, 8},
		{9, 8, 0},
	} {
		h := tr.Find(tc.key)
		p, s := tr.Predecessor(h), tr.Successor(h)
		if tc.pred == 0 {
			require.Equal(t, Nil, p, "pred of %d", tc.key)
		} else {
			require.Equal(t, tc.pred, tr.Key(p), "pred of %d", tc.key)
		}
		if tc.succ == 0 {
			require.Equal(t, Nil, s, "succ of %d", tc.key)
		} else {
			require.Equal(t, tc.succ, tr.Key(s), "succ of %d", tc.key)
		}
	}
}

func TestSeek(t *testing.T) {
	tr := build(10, 20, 30, 40)
	it := tr.MakeIter()
	for _, tc := range []struct {
		key     int
		ge, lt  int
		geValid bool
		ltValid bool
	}{
		{5, 10, 0, true, false},
		{10, 10, 0, true, false},
		{15, 20, 10, true, true},
		{40, 40, 30, true, true},
		{45, 0, 40, false, true},
	} {
		it.SeekGE(tc.key)
		require.Equal(t, tc.geValid, it.Valid(), "SeekGE(%d)", tc.key)
		if tc.geValid {
			require.Equal(t, tc.ge, it.Key())
		}
		it.SeekLT(tc.key)
		require.Equal(t, tc.ltValid, it.Valid(), "SeekLT(%d)", tc.key)
		if tc.ltValid {
			require.Equal(t, tc.lt, it.Key())
		}
	}
	var rev []int
	for it.Last(); it.Valid(); it.Prev() {
		rev = append(rev, it.Key())
	}
	require.Equal(t, []int{40, 30, 20, 10}, rev)
}

func TestSwap(t *testing.T) {
	// 5 is the root; 3 and 8 are its children; 4 is the predecessor of 5
	// and 3 is adjacent to 5.
	for _, tc := range []struct {
		name string
		a, b int
	}{
		{"non-adjacent", 5, 4},
		{"parent-left-child", 5, 3},
		{"child-parent", 8, 5},
		{"leaves", 1, 9},
		{"grandparent", 3, 5},
		{"inner", 3, 9},
	} {
		t.Run(tc.name, func(t *testing.T) {
			tr := build(5, 3, 8, 1, 4, 7, 9)
			ha, hb := tr.Find(tc.a), tr.Find(tc.b)
			parentA, leftA, rightA := tr.Parent(ha), tr.Left(ha), tr.Right(ha)
			tr.Swap(ha, hb)
			checkLinks(t, tr)
			// hb now occupies the former position of ha.
			expParent := parentA
			if expParent == hb {
				expParent = ha
			}
			require.Equal(t, expParent, tr.Parent(hb))
			fix := func(h Handle) Handle {
				if h == hb {
					return ha
				}
				return h
			}
			require.Equal(t, fix(leftA), tr.Left(hb))
			require.Equal(t, fix(rightA), tr.Right(hb))
			// Swapping again restores the original order.
			tr.Swap(ha, hb)
			require.Equal(t, []int{1, 3, 4, 5, 7, 8, 9}, checkLinks(t, tr))
		})
	}
}

func TestSplice(t *testing.T) {
	tr := build(5, 3, 8, 1, 7)
	h := tr.Find(3)
	require.Panics(t, func() { tr.Splice(tr.Find(5)) })
	parent, wasLeft := tr.Splice(h)
	require.Equal(t, 5, tr.Key(parent))
	require.True(t, wasLeft)
	require.Equal(t, []int{1, 5, 7, 8}, checkLinks(t, tr))
	require.Panics(t, func() { tr.Key(h) })

	// The released handle is reused.
	got, _, inserted := tr.Insert(6, "")
	require.True(t, inserted)
	require.Equal(t, h, got)
	require.Equal(t, []int{1, 5, 6, 7, 8}, checkLinks(t, tr))

	parent, wasLeft = tr.Splice(tr.Find(8))
	require.Equal(t, 5, tr.Key(parent))
	require.False(t, wasLeft)
	parent, wasLeft = tr.Splice(tr.Find(1))
	require.Equal(t, 5, tr.Key(parent))
	require.True(t, wasLeft)
	parent, _ = tr.Splice(tr.Find(5))
	require.Equal(t, Nil, parent)
	require.Equal(t, []int{6, 7}, checkLinks(t, tr))
	require.Equal(t, 7, tr.Key(tr.Root()))
}

func TestCloneReset(t *testing.T) {
	tr := build(2, 1, 3)
	c := tr.Clone()
	c.Insert(4, "")
	c.SetValue(c.Find(1), "one")
	require.Equal(t, []int{1, 2, 3}, inOrder(tr))
	require.Equal(t, "", tr.Value(tr.Find(1)))
	require.Equal(t, []int{1, 2, 3, 4}, inOrder(&c))

	tr.Reset()
	require.Equal(t, 0, tr.Len())
	require.Equal(t, ";", tr.String())
	it := tr.MakeIter()
	it.First()
	require.False(t, it.Valid())
	tr.Insert(1, "")
	require.Equal(t, []int{1}, checkLinks(t, tr))
}

func TestRandomSpliceSwap(t *testing.T) {
	seed := rand.Int63()
	t.Logf("seed %d", seed)
	rng := rand.New(rand.NewSource(seed))
	tr := build()
	present := map[int]bool{}
	for i := 0; i < 2000; i++ {
		k := rng.Intn(200)
		if present[k] {
			h := tr.Find(k)
			if tr.Left(h) != Nil && tr.Right(h) != Nil {
				tr.Swap(h, tr.Predecessor(h))
			}
			tr.Splice(h)
			delete(present, k)
		} else {
			tr.Insert(k, "")
			present[k] = true
		}
	}
	exp := make([]int, 0, len(present))
	for k := range present {
		exp = append(exp, k)
	}
	sort.Ints(exp)
	if len(exp) == 0 {
		exp = nil
	}
	require.Equal(t, exp, checkLinks(t, tr))
}

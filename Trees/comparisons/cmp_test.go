package comparisons

import (
	"errors"
	"math/rand"
	"slices"
	"testing"

	"github.com/alphadose/haxmap"
	"github.com/cornelk/hashmap"
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/g-m-twostay/go-bst/Trees"
	"github.com/google/btree"
	"github.com/petar/GoLLRB/llrb"
	"github.com/stretchr/testify/require"
)

// Cross checks Trees.BST against established ordered containers:
// https://github.com/emirpasic/gods treeset, https://github.com/google/btree
// and https://github.com/petar/GoLLRB. https://github.com/alphadose/haxmap
// only serves as an unordered benchmark baseline: it can lose keys that are
// deleted and set again, so it can't be a membership reference.

const (
	cOpsN      = 20000
	cValRange  = 4000
	cCheckStep = 500
)

type references struct {
	set *treeset.Set
	bt  *btree.BTreeG[int]
	rb  *llrb.LLRB
}

func newReferences() *references {
	return &references{
		set: treeset.NewWithIntComparator(),
		bt:  btree.NewOrderedG[int](16),
		rb:  llrb.New(),
	}
}

func (r *references) insert(v int) bool {
	_, had := r.bt.ReplaceOrInsert(v)
	r.set.Add(v)
	r.rb.ReplaceOrInsert(llrb.Int(v))
	return !had
}

func (r *references) delete(v int) bool {
	_, had := r.bt.Delete(v)
	r.set.Remove(v)
	r.rb.Delete(llrb.Int(v))
	return had
}

func checkAgainst(t *testing.T, tree *Trees.BST[int], r *references) {
	t.Helper()
	in := tree.InOrder()

	var fromSet []int
	for _, v := range r.set.Values() {
		fromSet = append(fromSet, v.(int))
	}
	require.Equal(t, len(fromSet), len(in))
	require.True(t, slices.Equal(fromSet, in), "treeset order differs")

	var fromBt []int
	r.bt.Ascend(func(v int) bool {
		fromBt = append(fromBt, v)
		return true
	})
	require.True(t, slices.Equal(fromBt, in), "btree order differs")

	var fromRb []int
	r.rb.AscendGreaterOrEqual(r.rb.Min(), func(i llrb.Item) bool {
		fromRb = append(fromRb, int(i.(llrb.Int)))
		return true
	})
	require.True(t, slices.Equal(fromRb, in), "llrb order differs")

	require.Equal(t, uint(r.bt.Len()), tree.Size())
	require.Equal(t, r.rb.Len(), r.set.Size())

	lo, ok := tree.Minimum()
	btMin, btOk := r.bt.Min()
	require.Equal(t, btOk, ok)
	hi, _ := tree.Maximum()
	btMax, _ := r.bt.Max()
	if ok {
		require.Equal(t, btMin, lo)
		require.Equal(t, btMax, hi)
		require.Equal(t, llrb.Int(lo), r.rb.Min())
		require.Equal(t, llrb.Int(hi), r.rb.Max())
		it := r.set.Iterator()
		require.True(t, it.First())
		require.Equal(t, lo, it.Value())
		require.True(t, it.Last())
		require.Equal(t, hi, it.Value())
	}
	require.False(t, tree.Corrupt())
}

func TestBST_AgainstReferences(t *testing.T) {
	rg := rand.New(rand.NewSource(1))
	tree := Trees.New[int]()
	refs := newReferences()
	for i := range cOpsN {
		v := rg.Intn(cValRange)
		if rg.Intn(3) == 0 {
			want := refs.delete(v)
			err := tree.Delete(v)
			require.Equal(t, want, err == nil, "delete %d", v)
			if !want {
				require.True(t, errors.Is(err, Trees.ErrValueNotFound))
			}
		} else {
			want := refs.insert(v)
			err := tree.Insert(v)
			require.Equal(t, want, err == nil, "insert %d", v)
			if !want {
				require.True(t, errors.Is(err, Trees.ErrDuplicateValue))
			}
		}
		if i%cCheckStep == 0 {
			checkAgainst(t, tree, refs)
		}
	}
	checkAgainst(t, tree, refs)
	for v := range cValRange {
		require.Equal(t, refs.bt.Has(v), tree.Search(v), "search %d", v)
		require.Equal(t, refs.rb.Has(llrb.Int(v)), tree.Search(v))
		require.Equal(t, refs.set.Contains(v), tree.Search(v))
	}
	t.Logf("size: %d, height: %d.\n", tree.Size(), tree.Height())
}

// Values cycle through delete and insert many times, the pattern that makes
// haxmap drop keys.
func TestBST_ReinsertAfterDelete(t *testing.T) {
	rg := rand.New(rand.NewSource(1))
	tree := Trees.New[int]()
	refs := newReferences()
	for _, v := range rg.Perm(cValRange) {
		require.NoError(t, tree.Insert(v))
		refs.insert(v)
	}
	for round := range 20 {
		for _, v := range rg.Perm(cValRange)[:cValRange/2] {
			require.NoError(t, tree.Delete(v))
			refs.delete(v)
			require.False(t, tree.Search(v))
		}
		checkAgainst(t, tree, refs)
		for v := range cValRange {
			if err := tree.Insert(v); err == nil {
				require.True(t, refs.insert(v), "round %d: insert %d", round, v)
			} else {
				require.True(t, errors.Is(err, Trees.ErrDuplicateValue))
			}
		}
		require.Equal(t, uint(cValRange), tree.Size())
		checkAgainst(t, tree, refs)
	}
}

const (
	bSize = 1 << 15
)

var sideEff bool

func BenchmarkSearch_BST(b *testing.B) {
	tree := Trees.New[int]()
	for _, v := range rand.Perm(bSize) {
		tree.Insert(v)
	}
	b.ResetTimer()
	for i := range b.N {
		sideEff = tree.Search(i % (2 * bSize))
	}
}

func BenchmarkSearch_BTree(b *testing.B) {
	bt := btree.NewOrderedG[int](32)
	for _, v := range rand.Perm(bSize) {
		bt.ReplaceOrInsert(v)
	}
	b.ResetTimer()
	for i := range b.N {
		sideEff = bt.Has(i % (2 * bSize))
	}
}

func BenchmarkSearch_LLRB(b *testing.B) {
	rb := llrb.New()
	for _, v := range rand.Perm(bSize) {
		rb.ReplaceOrInsert(llrb.Int(v))
	}
	b.ResetTimer()
	for i := range b.N {
		sideEff = rb.Has(llrb.Int(i % (2 * bSize)))
	}
}

func BenchmarkSearch_TreeSet(b *testing.B) {
	set := treeset.NewWithIntComparator()
	for _, v := range rand.Perm(bSize) {
		set.Add(v)
	}
	b.ResetTimer()
	for i := range b.N {
		sideEff = set.Contains(i % (2 * bSize))
	}
}

// Unordered baselines.
func BenchmarkSearch_HashMap(b *testing.B) {
	m := hashmap.New[int, struct{}]()
	for _, v := range rand.Perm(bSize) {
		m.Set(v, struct{}{})
	}
	b.ResetTimer()
	for i := range b.N {
		_, sideEff = m.Get(i % (2 * bSize))
	}
}

func BenchmarkSearch_HaxMap(b *testing.B) {
	m := haxmap.New[int, struct{}]()
	for _, v := range rand.Perm(bSize) {
		m.Set(v, struct{}{})
	}
	b.ResetTimer()
	for i := range b.N {
		_, sideEff = m.Get(i % (2 * bSize))
	}
}

func BenchmarkInsertDelete_BST(b *testing.B) {
	perm := rand.Perm(bSize)
	for range b.N {
		tree := Trees.New[int]()
		for _, v := range perm {
			tree.Insert(v)
		}
		for _, v := range perm {
			tree.Delete(v)
		}
	}
}

func BenchmarkInsertDelete_BTree(b *testing.B) {
	perm := rand.Perm(bSize)
	for range b.N {
		bt := btree.NewOrderedG[int](32)
		for _, v := range perm {
			bt.ReplaceOrInsert(v)
		}
		for _, v := range perm {
			bt.Delete(v)
		}
	}
}

func BenchmarkInsertDelete_LLRB(b *testing.B) {
	perm := rand.Perm(bSize)
	for range b.N {
		rb := llrb.New()
		for _, v := range perm {
			rb.ReplaceOrInsert(llrb.Int(v))
		}
		for _, v := range perm {
			rb.Delete(llrb.Int(v))
		}
	}
}

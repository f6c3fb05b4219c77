package main

import (
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/g-m-twostay/go-bst/Trees"
)

// Times deleting a growing share of a random BST followed by lookups of
// both present and random values, then reports the mean and spread.

var (
	bAddN uint32 = 100000
	bRmvN uint32 = bAddN
	bQryN uint32 = bRmvN
)
var _R rand.Rand = *rand.New(rand.NewSource(0))

func create(b *testing.B, all []int) (*Trees.BST[int], []int) {
	b.Helper()
	tree := Trees.New[int]()
	for range bAddN {
		a := _R.Int()
		if tree.Insert(a) == nil {
			all = append(all, a)
		}
	}
	return tree, all
}

var __r1 bool

func BenchmarkDelQry(b *testing.B) {
	all := make([]int, 0, bAddN)
	b.ResetTimer()
	for range b.N {
		b.StopTimer()
		var tree *Trees.BST[int]
		tree, all = create(b, all[:0])
		rmv := min(int(bRmvN), len(all))
		b.StartTimer()
		for _, v := range all[:rmv] {
			tree.Delete(v)
		}
		for _, v := range all[rmv:] {
			__r1 = tree.Search(v)
		}
		for range bQryN {
			__r1 = tree.Search(_R.Int())
		}
	}
}

const bNumSteps uint32 = 20

func main() {
	testing.Init()
	var cs []float64 // ms/op of each step
	for i := uint32(1); i < bNumSteps; i++ {
		bRmvN = bAddN / bNumSteps * i
		bQryN = bRmvN
		br := testing.Benchmark(BenchmarkDelQry)
		cs = append(cs, float64(br.T.Microseconds())/1000/float64(br.N))
		fmt.Printf("step %d: removed %d, %fms/op\n", i, bRmvN, cs[len(cs)-1])
	}
	var sum float64 = 0
	for _, v := range cs {
		sum += v
	}
	avg := sum / float64(len(cs))
	fmt.Printf("average: %fms/op\n", avg)
	sum = 0
	for _, v := range cs {
		a := v - avg
		sum += a * a
	}
	fmt.Printf("stddev: %fms/op\n", math.Sqrt(sum/float64(len(cs))))
}

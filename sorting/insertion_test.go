package sorting

import (
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"

	"sizedsort/internal/rawmem"
	"sizedsort/sizedvalue"
)

// 测试用例结构
type testCase struct {
	name   string
	sizes  []int
	shifts int
}

var testCases = []testCase{
	{name: "empty", sizes: []int{}, shifts: 0},
	{name: "single", sizes: []int{4}, shifts: 0},
	{name: "unsorted", sizes: []int{5, 3, 8, 1}, shifts: 4},
	{name: "already sorted", sizes: []int{1, 2, 3}, shifts: 0},
	{name: "reversed", sizes: []int{4, 3, 2, 1, 0}, shifts: 10},
	{name: "duplicates", sizes: []int{2, 0, 2, 1, 0}, shifts: 6},
}

func managedOf(sizes []int) []sizedvalue.Managed[int] {
	vals := make([]sizedvalue.Managed[int], len(sizes))
	for i, n := range sizes {
		vals[i] = sizedvalue.NewManaged[int](n)
	}
	return vals
}

func manualOf(sizes []int) []sizedvalue.Manual[int] {
	vals := make([]sizedvalue.Manual[int], len(sizes))
	for i, n := range sizes {
		vals[i] = sizedvalue.NewManual[int](n)
	}
	return vals
}

func releaseAll(vals []sizedvalue.Manual[int]) {
	for i := range vals {
		vals[i].Release()
	}
}

func sizesOf[T any, PT interface {
	*T
	Size() int
}](vals []T) []int {
	sizes := make([]int, len(vals))
	for i := range vals {
		sizes[i] = PT(&vals[i]).Size()
	}
	return sizes
}

// sortedSizes 返回排好序的副本，空输入得到 []int{} 而不是 nil
func sortedSizes(sizes []int) []int {
	out := append([]int{}, sizes...)
	slices.Sort(out)
	return out
}

func TestInsertionSortManaged(t *testing.T) {
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			vals := managedOf(tc.sizes)
			shifts := InsertionSort(vals)
			assert.Equal(t, sortedSizes(tc.sizes), sizesOf(vals))
			assert.Equal(t, tc.shifts, shifts)
		})
	}
}

func TestInsertionSortManual(t *testing.T) {
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			before := rawmem.Live()
			vals := manualOf(tc.sizes)

			allocated := rawmem.Live()
			shifts := InsertionSort(vals)
			assert.Equal(t, allocated, rawmem.Live(), "sort must not allocate or free")

			assert.Equal(t, sortedSizes(tc.sizes), sizesOf(vals))
			assert.Equal(t, tc.shifts, shifts)

			releaseAll(vals)
			assert.Equal(t, before, rawmem.Live())
		})
	}
}

func TestInsertionSortByCopy(t *testing.T) {
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			managed := managedOf(tc.sizes)
			assert.Equal(t, tc.shifts, InsertionSortByCopy(managed))
			assert.Equal(t, sortedSizes(tc.sizes), sizesOf(managed))

			before := rawmem.Live()
			manual := manualOf(tc.sizes)
			assert.Equal(t, tc.shifts, InsertionSortByCopy(manual))
			assert.Equal(t, sortedSizes(tc.sizes), sizesOf(manual))
			releaseAll(manual)
			assert.Equal(t, before, rawmem.Live())
		})
	}
}

// 元素的内容要跟着元素一起移动，而不仅仅是大小
func TestInsertionSortKeepsContents(t *testing.T) {
	vals := manualOf([]int{3, 1, 2})
	defer releaseAll(vals)
	for i := range vals {
		for j := range vals[i].Elems() {
			vals[i].Elems()[j] = vals[i].Size() * 10
		}
	}

	InsertionSort(vals)
	for i := range vals {
		for _, v := range vals[i].Elems() {
			assert.Equal(t, vals[i].Size()*10, v)
		}
	}
}

func TestInsertionSortNilAndEmpty(t *testing.T) {
	assert.NotPanics(t, func() {
		assert.Zero(t, InsertionSort[sizedvalue.Managed[int]](nil))
		assert.Zero(t, InsertionSort([]sizedvalue.Manual[int]{}))
		assert.Zero(t, InsertionSortByCopy[sizedvalue.Manual[int]](nil))
	})
}

func TestInsertionSortRandom(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	sizes := make([]int, 500)
	for i := range sizes {
		sizes[i] = r.IntN(1000)
	}

	managed := managedOf(sizes)
	manual := manualOf(sizes)
	defer releaseAll(manual)

	InsertionSort(managed)
	InsertionSort(manual)

	want := sortedSizes(sizes)
	assert.Equal(t, want, sizesOf(managed))
	assert.Equal(t, want, sizesOf(manual))
}

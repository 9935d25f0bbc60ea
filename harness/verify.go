package harness

import (
	"fmt"
	"slices"

	"github.com/pkg/errors"
)

// UnsortedError 表示排序之后集合中仍然存在逆序的相邻元素。
type UnsortedError struct {
	Variant Variant
	Index   int // 逆序对中后一个元素的下标
	Prev    int
	Next    int
}

func (e *UnsortedError) Error() string {
	return fmt.Sprintf("%v collection not sorted at index %d: size %d follows size %d",
		e.Variant, e.Index, e.Next, e.Prev)
}

type sized[T any] interface {
	*T
	Size() int
}

func sizesOf[T any, PT sized[T]](vals []T) []int {
	sizes := make([]int, len(vals))
	for i := range vals {
		sizes[i] = PT(&vals[i]).Size()
	}
	return sizes
}

// checkSorted 要求 vals 按大小非递减，并且大小的多重集合与 workload 一致。
func checkSorted[T any, PT sized[T]](variant Variant, vals []T, workload Workload) error {
	sizes := sizesOf[T, PT](vals)
	for i := 1; i < len(sizes); i++ {
		if sizes[i-1] > sizes[i] {
			return &UnsortedError{Variant: variant, Index: i, Prev: sizes[i-1], Next: sizes[i]}
		}
	}

	want := slices.Sorted(slices.Values(workload.Sizes))
	if !slices.Equal(sizes, want) {
		return errors.Errorf("%v collection lost or duplicated elements during sort", variant)
	}

	return nil
}

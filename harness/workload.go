package harness

import (
	"math/rand/v2"
	"unsafe"

	"sizedsort/sizedvalue"
)

// Variant 标识被测的值类型。
type Variant int

const (
	VariantManaged Variant = iota
	VariantManual
)

func (v Variant) String() string {
	switch v {
	case VariantManaged:
		return "Managed"
	case VariantManual:
		return "Manual"
	default:
		return "Unknown"
	}
}

// Workload 是一组随机大小，两个变体按同样的大小构造，保证对比公平。
type Workload struct {
	Sizes []int
}

// NewWorkload 从 r 中抽取 count 个 [0, maxSize) 之间的大小。
func NewWorkload(r *rand.Rand, count, maxSize int) Workload {
	sizes := make([]int, count)
	for i := range sizes {
		sizes[i] = r.IntN(maxSize)
	}
	return Workload{Sizes: sizes}
}

func (w Workload) Managed() []sizedvalue.Managed[int] {
	vals := make([]sizedvalue.Managed[int], len(w.Sizes))
	for i, n := range w.Sizes {
		vals[i] = sizedvalue.NewManaged[int](n)
	}
	return vals
}

// Manual 构造的每个元素都必须通过 ReleaseManual 释放。
func (w Workload) Manual() []sizedvalue.Manual[int] {
	vals := make([]sizedvalue.Manual[int], len(w.Sizes))
	for i, n := range w.Sizes {
		vals[i] = sizedvalue.NewManual[int](n)
	}
	return vals
}

// ReleaseManual 释放 vals 中所有元素持有的内存。
func ReleaseManual(vals []sizedvalue.Manual[int]) {
	for i := range vals {
		vals[i].Release()
	}
}

// manualFootprint 计算值本身加上裸内存的总字节数。
func manualFootprint(vals []sizedvalue.Manual[int]) int {
	total := len(vals) * int(unsafe.Sizeof(sizedvalue.Manual[int]{}))
	for i := range vals {
		total += vals[i].Bytes()
	}
	return total
}

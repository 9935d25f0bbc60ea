package sizedvalue

import (
	"fmt"
	"unsafe"

	"sizedsort/internal/rawmem"
)

// Manual 独占一块由 rawmem 分配的内存，生命周期完全手动管理：
//   - 每个 Manual 最终都要调用一次 Release；
//   - Clone/CopyFrom 分配新内存并逐个元素拷贝；
//   - Relocate/RelocateFrom 只转移指针，源对象的指针置空，避免重复释放。
//
// Manual 不能用 = 直接赋值，那样两个值会共享同一块内存。
type Manual[T Element] struct {
	size int
	buf  unsafe.Pointer
}

// NewManual 分配 size 个零值元素。
func NewManual[T Element](size int) Manual[T] {
	if size < 0 {
		panic(fmt.Sprintf("sizedvalue: negative size %d", size))
	}
	return Manual[T]{size: size, buf: allocElems[T](size)}
}

func allocElems[T Element](n int) unsafe.Pointer {
	var zero T
	return rawmem.New(n * int(unsafe.Sizeof(zero)))
}

func (m *Manual[T]) Size() int { return m.size }

// Less 按元素个数比较。
func (m *Manual[T]) Less(other *Manual[T]) bool {
	return m.size < other.size
}

// Elems 返回指向裸内存的切片视图，Release 之后不能再使用。
func (m *Manual[T]) Elems() []T {
	if m.buf == nil {
		return nil
	}
	return unsafe.Slice((*T)(m.buf), m.size)
}

// Clone 分配一块同样大小的新内存并逐个元素拷贝。
func (m *Manual[T]) Clone() Manual[T] {
	out := Manual[T]{size: m.size, buf: allocElems[T](m.size)}
	copy(out.Elems(), m.Elems())
	return out
}

// Relocate 常数时间转移所有权，m 变为空值。
func (m *Manual[T]) Relocate() Manual[T] {
	out := Manual[T]{size: m.size, buf: m.buf}
	m.size, m.buf = 0, nil
	return out
}

// CopyFrom 先释放 m 原有的内存，再深拷贝 src。自我赋值直接返回。
func (m *Manual[T]) CopyFrom(src *Manual[T]) {
	if m == src {
		return
	}
	rawmem.Free(m.buf)
	m.size = src.size
	m.buf = allocElems[T](src.size)
	copy(m.Elems(), src.Elems())
}

// RelocateFrom 先释放 m 原有的内存，再接管 src 的内存。自我移动直接返回。
func (m *Manual[T]) RelocateFrom(src *Manual[T]) {
	if m == src {
		return
	}
	rawmem.Free(m.buf)
	m.size, m.buf = src.size, src.buf
	src.size, src.buf = 0, nil
}

// Release 释放内存并把 m 置为空值，重复调用是安全的。
func (m *Manual[T]) Release() {
	rawmem.Free(m.buf)
	m.size, m.buf = 0, nil
}

// Bytes 返回 m 持有的裸内存字节数。
func (m *Manual[T]) Bytes() int {
	var zero T
	return m.size * int(unsafe.Sizeof(zero))
}

package sizedvalue

import (
	"fmt"
	"slices"
)

// Managed 的缓冲区是一个普通切片，分配、复制和回收都交给运行时。
type Managed[T Element] struct {
	elems []T
}

// NewManaged 创建含 size 个零值元素的 Managed。
func NewManaged[T Element](size int) Managed[T] {
	if size < 0 {
		panic(fmt.Sprintf("sizedvalue: negative size %d", size))
	}
	return Managed[T]{elems: make([]T, size)}
}

func (m *Managed[T]) Size() int { return len(m.elems) }

// Less 按元素个数比较。
func (m *Managed[T]) Less(other *Managed[T]) bool {
	return len(m.elems) < len(other.elems)
}

// Elems 返回底层元素，修改它会修改 m 本身。
func (m *Managed[T]) Elems() []T { return m.elems }

// Clone 深拷贝一份独立的 Managed。
func (m *Managed[T]) Clone() Managed[T] {
	return Managed[T]{elems: slices.Clone(m.elems)}
}

// Relocate 把缓冲区的所有权转移给返回值，m 变为空值。
func (m *Managed[T]) Relocate() Managed[T] {
	out := Managed[T]{elems: m.elems}
	m.elems = nil
	return out
}

// CopyFrom 用 src 的深拷贝替换 m 当前的内容。
func (m *Managed[T]) CopyFrom(src *Managed[T]) {
	if m == src {
		return
	}
	m.elems = slices.Clone(src.elems)
}

// RelocateFrom 接管 src 的缓冲区，src 变为空值。
// 自我移动必须跳过，否则会把自己清空。
func (m *Managed[T]) RelocateFrom(src *Managed[T]) {
	if m == src {
		return
	}
	m.elems = src.elems
	src.elems = nil
}

// Release 丢弃缓冲区，剩下的交给 GC。
func (m *Managed[T]) Release() {
	m.elems = nil
}

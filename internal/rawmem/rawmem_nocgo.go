//go:build !cgo

package rawmem

import "unsafe"

// 没有 cgo 时从 Go 堆分配按 8 字节对齐的内存，
// pinned 持有每个块的引用直到 Free。
var pinned = make(map[uintptr][]uint64)

func alloc(n int) unsafe.Pointer {
	words := make([]uint64, (n+7)/8)
	p := unsafe.Pointer(&words[0])
	pinned[uintptr(p)] = words
	return p
}

func free(p unsafe.Pointer, _ int) {
	delete(pinned, uintptr(p))
}

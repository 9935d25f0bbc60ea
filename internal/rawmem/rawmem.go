// Package rawmem 提供绕开 Go GC 的手动内存分配，每一块内存必须且只能被 Free 一次。
//
// 启用 cgo 时内存来自 C 堆（calloc/free），GC 完全看不到这些内存；
// 关闭 cgo 时退化为 Go 堆上的 []uint64，但记账与所有权规则保持一致。
package rawmem

import (
	"fmt"
	"unsafe"
)

// 所有存活块的记账，key 为块首地址，value 为块字节数。
// 整个程序是单线程的，因此这里不加锁。
var live = make(map[uintptr]int)

var liveBytes int

// New 分配 n 字节清零的内存。n 为 0 时返回 nil，不产生任何分配。
// 分配失败属于致命错误，直接 panic。
func New(n int) unsafe.Pointer {
	if n < 0 {
		panic(fmt.Sprintf("rawmem: negative allocation size %d", n))
	}
	if n == 0 {
		return nil
	}
	p := alloc(n)
	if p == nil {
		panic(fmt.Sprintf("rawmem: out of memory allocating %d bytes", n))
	}
	live[uintptr(p)] = n
	liveBytes += n
	return p
}

// Free 释放 New 返回的内存。p 为 nil 时什么也不做。
// 释放一个不属于 rawmem 或已经释放过的块会 panic。
func Free(p unsafe.Pointer) {
	if p == nil {
		return
	}
	n, ok := live[uintptr(p)]
	if !ok {
		panic(fmt.Sprintf("rawmem: free of unowned or already freed block %#x", uintptr(p)))
	}
	delete(live, uintptr(p))
	liveBytes -= n
	free(p, n)
}

// Stats 描述当前仍未释放的内存。
type Stats struct {
	Blocks int
	Bytes  int
}

// Live 返回当前存活块的数量和总字节数。
func Live() Stats {
	return Stats{Blocks: len(live), Bytes: liveBytes}
}

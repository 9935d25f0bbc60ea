// Package sizedvalue 实现两种可比较大小的值类型：
// Managed 把存储交给 Go 切片和 GC，Manual 自己持有一块手动分配的裸内存。
// 两者对外的语义完全一致：按元素个数排序，支持复制（Clone）和移动（Relocate）。
package sizedvalue

import "golang.org/x/exp/constraints"

// DefaultSize 是未指定大小时缓冲区的元素个数。
const DefaultSize = 10

// Element 限定缓冲区的元素类型。Manual 的内存不在 Go 堆上，
// 所以元素里不能含有指针，只允许数值类型。
type Element interface {
	constraints.Integer | constraints.Float
}

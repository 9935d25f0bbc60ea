// Package sorting 提供对 sizedvalue 这类“昂贵值”的原地插入排序。
package sorting

// Relocatable 约束 *T 可以比较大小，并且可以在常数时间内转移所有权。
type Relocatable[T any] interface {
	*T
	Less(other *T) bool
	Relocate() T
	RelocateFrom(src *T)
}

// Duplicable 约束 *T 可以深拷贝和显式释放。
type Duplicable[T any] interface {
	*T
	Less(other *T) bool
	Clone() T
	CopyFrom(src *T)
	Release()
}

// InsertionSort 原地把 s 排成非递减序，返回元素右移的次数。
//
// 取出 s[j]、右移更大的元素、放回 s[j] 全部通过移动完成，
// 每一步都是常数时间，与元素内部缓冲区的大小无关。
// 除了当前取出的一个元素之外不使用额外空间。
func InsertionSort[T any, PT Relocatable[T]](s []T) int {
	shifts := 0
	for j := 1; j < len(s); j++ {
		key := PT(&s[j]).Relocate()
		i := j - 1
		for i >= 0 && PT(&key).Less(&s[i]) {
			PT(&s[i+1]).RelocateFrom(&s[i])
			shifts++
			i--
		}
		PT(&s[i+1]).RelocateFrom(&key)
	}
	return shifts
}

// InsertionSortByCopy 与 InsertionSort 的算法相同，但取出、右移和放回都用深拷贝完成，
// 每一步的开销与元素缓冲区大小成正比，用来和 InsertionSort 做对比。
func InsertionSortByCopy[T any, PT Duplicable[T]](s []T) int {
	shifts := 0
	for j := 1; j < len(s); j++ {
		key := PT(&s[j]).Clone()
		i := j - 1
		for i >= 0 && PT(&key).Less(&s[i]) {
			PT(&s[i+1]).CopyFrom(&s[i])
			shifts++
			i--
		}
		PT(&s[i+1]).CopyFrom(&key)
		PT(&key).Release()
	}
	return shifts
}

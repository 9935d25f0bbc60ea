package sizedvalue

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sizedsort/internal/rawmem"
)

// 每个用例结束时 rawmem 中不能残留本用例分配的内存
func checkNoLeak(t *testing.T) {
	before := rawmem.Live()
	t.Cleanup(func() {
		assert.Equal(t, before, rawmem.Live(), "raw memory leaked")
	})
}

func TestManualSize(t *testing.T) {
	checkNoLeak(t)

	for _, n := range []int{0, 1, DefaultSize, 999} {
		m := NewManual[int](n)
		assert.Equal(t, n, m.Size())
		assert.Len(t, m.Elems(), n)
		for _, v := range m.Elems() {
			assert.Zero(t, v)
		}
		m.Release()
	}
	assert.Panics(t, func() { NewManual[int](-1) })
}

func TestManualZeroSizeOwnsNothing(t *testing.T) {
	checkNoLeak(t)

	before := rawmem.Live()
	m := NewManual[int](0)
	assert.Equal(t, before, rawmem.Live())
	assert.Nil(t, m.Elems())
	m.Release()
}

func TestManualLess(t *testing.T) {
	checkNoLeak(t)

	a, b := NewManual[int32](3), NewManual[int32](5)
	defer a.Release()
	defer b.Release()

	assert.True(t, a.Less(&b))
	assert.False(t, b.Less(&a))
	assert.False(t, a.Less(&a))
}

func TestManualClone(t *testing.T) {
	checkNoLeak(t)

	src := NewManual[int](4)
	defer src.Release()
	for i := range src.Elems() {
		src.Elems()[i] = i + 1
	}

	before := rawmem.Live()
	dup := src.Clone()
	defer dup.Release()

	assert.Equal(t, before.Blocks+1, rawmem.Live().Blocks)
	assert.Equal(t, src.Size(), dup.Size())
	assert.Equal(t, src.Elems(), dup.Elems())

	dup.Elems()[0] = 100
	assert.Equal(t, []int{1, 2, 3, 4}, src.Elems())
}

func TestManualRelocate(t *testing.T) {
	checkNoLeak(t)

	src := NewManual[uint8](7)
	src.Elems()[6] = 9

	before := rawmem.Live()
	dst := src.Relocate()
	assert.Equal(t, before, rawmem.Live(), "relocate must not allocate")

	assert.Equal(t, 7, dst.Size())
	assert.Equal(t, uint8(9), dst.Elems()[6])
	assert.Zero(t, src.Size())
	assert.Nil(t, src.Elems())

	// 释放移动后的源不能影响目标
	src.Release()
	assert.Equal(t, before, rawmem.Live())
	assert.Equal(t, uint8(9), dst.Elems()[6])

	dst.Release()
}

func TestManualCopyAssign(t *testing.T) {
	checkNoLeak(t)

	a, b := NewManual[int64](2), NewManual[int64](9)
	defer a.Release()
	defer b.Release()
	b.Elems()[8] = 42

	before := rawmem.Live()
	a.CopyFrom(&b)
	// 旧的 2 个元素被释放，新分配 9 个元素
	assert.Equal(t, before.Blocks, rawmem.Live().Blocks)
	assert.Equal(t, before.Bytes+7*8, rawmem.Live().Bytes)

	assert.Equal(t, 9, a.Size())
	assert.Equal(t, int64(42), a.Elems()[8])
	a.Elems()[8] = 0
	assert.Equal(t, int64(42), b.Elems()[8])
}

func TestManualRelocateAssign(t *testing.T) {
	checkNoLeak(t)

	a, b := NewManual[int](2), NewManual[int](9)
	b.Elems()[0] = 5

	before := rawmem.Live()
	a.RelocateFrom(&b)
	assert.Equal(t, before.Blocks-1, rawmem.Live().Blocks)

	assert.Equal(t, 9, a.Size())
	assert.Equal(t, 5, a.Elems()[0])
	assert.Zero(t, b.Size())

	b.Release()
	a.Release()
}

func TestManualSelfAssign(t *testing.T) {
	checkNoLeak(t)

	m := NewManual[int](5)
	defer m.Release()
	m.Elems()[2] = 7

	before := rawmem.Live()
	m.CopyFrom(&m)
	m.RelocateFrom(&m)

	assert.Equal(t, before, rawmem.Live())
	assert.Equal(t, 5, m.Size())
	require.Len(t, m.Elems(), 5)
	assert.Equal(t, 7, m.Elems()[2])
}

func TestManualReleaseTwice(t *testing.T) {
	checkNoLeak(t)

	m := NewManual[float32](3)
	m.Release()
	assert.NotPanics(t, m.Release)
	assert.Zero(t, m.Size())
}

func TestManualBytes(t *testing.T) {
	checkNoLeak(t)

	m := NewManual[int16](10)
	defer m.Release()
	assert.Equal(t, 20, m.Bytes())
}

package harness

import (
	"github.com/pkg/errors"
	"github.com/zeromicro/go-zero/core/logx"

	"sizedsort/internal/rawmem"
	"sizedsort/sizedvalue"
)

// LifecycleStep 记录生命周期演示中的一步操作及其之后四个值的大小。
type LifecycleStep struct {
	Op         string
	Sizes      [4]int // l1 ~ l4
	LiveBlocks int    // 相对演示开始时新增的存活内存块
}

// Lifecycle 依次演示 Manual 的构造、复制、移动、复制赋值、移动赋值以及自我赋值，
// 最后释放所有值。如果演示结束后仍有内存块未释放则返回错误。
func Lifecycle() ([]LifecycleStep, error) {
	baseline := rawmem.Live().Blocks

	var l [4]sizedvalue.Manual[int]
	var steps []LifecycleStep
	record := func(op string) {
		step := LifecycleStep{Op: op, LiveBlocks: rawmem.Live().Blocks - baseline}
		for i := range l {
			step.Sizes[i] = l[i].Size()
		}
		steps = append(steps, step)
		logx.Infow(op,
			logx.Field("sizes", step.Sizes),
			logx.Field("liveBlocks", step.LiveBlocks))
	}

	l[0] = sizedvalue.NewManual[int](5)
	record("construct l1(5)")
	l[1] = sizedvalue.NewManual[int](10)
	record("construct l2(10)")
	l[2] = l[0].Clone()
	record("copy construct l3 = l1")
	l[3] = l[0].Relocate()
	record("move construct l4 = move(l1)")
	l[1].CopyFrom(&l[3])
	record("copy assign l2 = l4")
	l[2].RelocateFrom(&l[1])
	record("move assign l3 = move(l2)")
	l[2].CopyFrom(&l[2])
	record("self copy assign l3 = l3")
	l[3].RelocateFrom(&l[3])
	record("self move assign l4 = move(l4)")

	for i := range l {
		l[i].Release()
	}
	record("release all")

	if leaked := rawmem.Live().Blocks - baseline; leaked != 0 {
		return steps, errors.Errorf("%d raw blocks still live after releasing all values", leaked)
	}
	return steps, nil
}

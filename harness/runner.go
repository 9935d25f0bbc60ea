package harness

import (
	"math/rand/v2"
	"time"

	"github.com/DmitriyVTitov/size"
	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/core/timex"

	"sizedsort/sizedvalue"
	"sizedsort/sorting"
)

type sortable[T any] interface {
	sorting.Relocatable[T]
	sorting.Duplicable[T]
}

func sortWith[T any, PT sortable[T]](vals []T, strategy Strategy) int {
	if strategy == StrategyDuplicate {
		return sorting.InsertionSortByCopy[T, PT](vals)
	}
	return sorting.InsertionSort[T, PT](vals)
}

// Runner 在同一份随机 workload 上依次对两个变体排序、计时并校验结果。
type Runner struct {
	config  Config
	metrics *Metrics

	sortManaged func([]sizedvalue.Managed[int]) int
	sortManual  func([]sizedvalue.Manual[int]) int
}

// RunnerOption 是函数选项类型，用于定制 Runner
type RunnerOption func(*Runner)

// WithSorters 替换两个变体使用的排序函数，函数返回右移次数
func WithSorters(managed func([]sizedvalue.Managed[int]) int, manual func([]sizedvalue.Manual[int]) int) RunnerOption {
	return func(r *Runner) {
		r.sortManaged = managed
		r.sortManual = manual
	}
}

// NewRunner 默认按 config.Strategy 选择排序方式
func NewRunner(config Config, metrics *Metrics, opts ...RunnerOption) *Runner {
	r := &Runner{
		config:  config,
		metrics: metrics,
		sortManaged: func(vals []sizedvalue.Managed[int]) int {
			return sortWith(vals, config.Strategy)
		},
		sortManual: func(vals []sizedvalue.Manual[int]) int {
			return sortWith(vals, config.Strategy)
		},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run 执行一次完整的基准测试。校验失败时同时返回报告和错误。
func (r *Runner) Run(rng *rand.Rand) (*Report, error) {
	workload := NewWorkload(rng, r.config.Count, r.config.MaxSize)
	managed := workload.Managed()
	manual := workload.Manual()
	defer ReleaseManual(manual)

	logx.Infow("workload built",
		logx.Field("count", r.config.Count),
		logx.Field("maxSize", r.config.MaxSize),
		logx.Field("strategy", r.config.Strategy))

	report := &Report{
		Count:    r.config.Count,
		MaxSize:  r.config.MaxSize,
		Seed:     RandomSeed(),
		Strategy: r.config.Strategy,
	}

	report.Results = append(report.Results,
		r.measure(VariantManaged, size.Of(managed), func() int {
			return r.sortManaged(managed)
		}),
		r.measure(VariantManual, manualFootprint(manual), func() int {
			return r.sortManual(manual)
		}),
	)

	if err := checkSorted(VariantManaged, managed, workload); err != nil {
		return report, err
	}
	if err := checkSorted(VariantManual, manual, workload); err != nil {
		return report, err
	}

	return report, nil
}

func (r *Runner) measure(variant Variant, footprint int, sortFn func() int) VariantResult {
	start := timex.Now()
	shifts := sortFn()
	elapsed := timex.Since(start)

	r.metrics.SortTime(variant).Update(elapsed)
	r.metrics.Shifts(variant).Update(int64(shifts))
	r.metrics.Footprint(variant).Update(int64(footprint))

	logx.Infow("collection sorted",
		logx.Field("variant", variant.String()),
		logx.Field("elapsed", elapsed.Round(time.Microsecond).String()),
		logx.Field("shifts", shifts))

	return VariantResult{
		Variant:        variant.String(),
		ElapsedMs:      elapsed.Milliseconds(),
		Shifts:         shifts,
		FootprintBytes: footprint,
	}
}

package harness

import (
	"github.com/mcuadros/go-defaults"
	"github.com/pkg/errors"
)

// Strategy 决定插入排序右移元素的方式。
type Strategy string

const (
	// StrategyRelocate 通过移动右移元素，每次右移都是常数时间。
	StrategyRelocate Strategy = "relocate"
	// StrategyDuplicate 通过深拷贝右移元素，开销与元素大小成正比。
	StrategyDuplicate Strategy = "duplicate"
)

// 报告输出格式
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Config holds the configurations of a benchmark run.
type Config struct {
	// 两个集合各自的元素个数
	Count int `default:"50000" mapstructure:"count"`

	// 随机大小的上界（不含）
	MaxSize int `default:"1000" mapstructure:"max-size"`

	// 进程级随机源的种子，0 表示使用当前时间
	Seed uint64 `mapstructure:"seed"`

	Strategy Strategy `default:"relocate" mapstructure:"strategy"`

	Format string `default:"text" mapstructure:"format"`
}

func DefaultConfig() (config Config) {
	defaults.SetDefaults(&config)
	return
}

// Validate 检查配置是否合法。
func (c Config) Validate() error {
	if c.Count < 0 {
		return errors.Errorf("count must not be negative, got %v", c.Count)
	}
	if c.MaxSize <= 0 {
		return errors.Errorf("max-size must be positive, got %v", c.MaxSize)
	}
	switch c.Strategy {
	case StrategyRelocate, StrategyDuplicate:
	default:
		return errors.Errorf("unknown strategy %q", c.Strategy)
	}
	switch c.Format {
	case FormatText, FormatJSON:
	default:
		return errors.Errorf("unknown format %q", c.Format)
	}
	return nil
}

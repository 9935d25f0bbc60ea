package harness

import (
	"fmt"
	"io"

	"github.com/bytedance/sonic"
	"github.com/pkg/errors"
)

// VariantResult 是单个变体的测量结果。
type VariantResult struct {
	Variant        string `json:"variant"`
	ElapsedMs      int64  `json:"elapsedMs"`
	Shifts         int    `json:"shifts"`
	FootprintBytes int    `json:"footprintBytes"`
}

// Report 汇总一次运行的配置和各变体的结果。
type Report struct {
	Count    int             `json:"count"`
	MaxSize  int             `json:"maxSize"`
	Seed     uint64          `json:"seed"`
	Strategy Strategy        `json:"strategy"`
	Results  []VariantResult `json:"results"`
}

// Write 按 format 输出报告。text 格式每个变体一行：Time for <Variant>: <ms> ms。
func (r *Report) Write(w io.Writer, format string) error {
	switch format {
	case FormatJSON:
		data, err := sonic.Marshal(r)
		if err != nil {
			return errors.WithMessage(err, "Failed to marshal report")
		}
		if _, err = w.Write(append(data, '\n')); err != nil {
			return errors.WithMessage(err, "Failed to write report")
		}
	case FormatText:
		for _, res := range r.Results {
			if _, err := fmt.Fprintf(w, "Time for %v: %d ms\n", res.Variant, res.ElapsedMs); err != nil {
				return errors.WithMessage(err, "Failed to write report")
			}
		}
	default:
		return errors.Errorf("unknown format %q", format)
	}
	return nil
}

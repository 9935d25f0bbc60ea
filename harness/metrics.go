package harness

import (
	"fmt"
	"io"
	"strings"

	"github.com/rcrowley/go-metrics"
)

// Metrics 记录每个变体的排序耗时、右移次数和内存占用。
type Metrics struct {
	registry metrics.Registry
}

func NewMetrics() *Metrics {
	return &Metrics{registry: metrics.NewRegistry()}
}

func metricName(format string, v Variant) string {
	return fmt.Sprintf(format, strings.ToLower(v.String()))
}

// SortTime returns a timer for measuring the duration of a full sort pass.
func (m *Metrics) SortTime(v Variant) metrics.Timer {
	return metrics.GetOrRegisterTimer(metricName("sort/%v/time", v), m.registry)
}

// Shifts returns a gauge for the number of element shifts of the last sort.
func (m *Metrics) Shifts(v Variant) metrics.Gauge {
	return metrics.GetOrRegisterGauge(metricName("sort/%v/shifts", v), m.registry)
}

// Footprint returns a gauge for the memory held by a collection in bytes.
func (m *Metrics) Footprint(v Variant) metrics.Gauge {
	return metrics.GetOrRegisterGauge(metricName("collection/%v/bytes", v), m.registry)
}

// Dump 把所有指标以文本形式输出到 w。
func (m *Metrics) Dump(w io.Writer) {
	metrics.WriteOnce(m.registry, w)
}

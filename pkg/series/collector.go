package series

import (
	"github.com/gridio/gridframe/pkg/dataframe"
	"github.com/gridio/gridframe/pkg/logger"
	"github.com/gridio/gridframe/pkg/metrics"
	"go.uber.org/zap"
)

// Collector accumulates emitted columns into Series values in arrival
// order, which the mapper guarantees to be declaration order. A
// Collector is single-use: one per dataframe call.
type Collector struct {
	series []Series
}

// NewCollector creates an empty collector
func NewCollector() *Collector {
	return &Collector{}
}

// Series returns the collected series in emission order
func (c *Collector) Series() []Series {
	return c.series
}

// StringSeries implements dataframe.Handler
func (c *Collector) StringSeries(name string, index bool, values []string) error {
	c.series = append(c.series, Series{Name: name, Kind: dataframe.KindString, Index: index, strings: values})
	return nil
}

// DoubleSeries implements dataframe.Handler
func (c *Collector) DoubleSeries(name string, index bool, values []float64) error {
	c.series = append(c.series, Series{Name: name, Kind: dataframe.KindDouble, Index: index, doubles: values})
	return nil
}

// IntSeries implements dataframe.Handler
func (c *Collector) IntSeries(name string, index bool, values []int32) error {
	c.series = append(c.series, Series{Name: name, Kind: dataframe.KindInt, Index: index, ints: values})
	return nil
}

// BooleanSeries implements dataframe.Handler
func (c *Collector) BooleanSeries(name string, index bool, values []bool) error {
	c.series = append(c.series, Series{Name: name, Kind: dataframe.KindBoolean, Index: index, booleans: values})
	return nil
}

// EnumSeries implements dataframe.Handler
func (c *Collector) EnumSeries(name string, index bool, values []string) error {
	c.series = append(c.series, Series{Name: name, Kind: dataframe.KindEnum, Index: index, strings: values})
	return nil
}

// Extract maps a source object to series using the given mapper. On
// failure no partial result is returned.
func Extract[S, T any](m *dataframe.Mapper[S, T], source S) ([]Series, error) {
	c := NewCollector()
	err := m.CreateDataframe(source, c)
	metrics.RecordDataframe("series", err)
	if err != nil {
		return nil, err
	}

	rows := 0
	if len(c.series) > 0 {
		rows = c.series[0].Len()
	}
	metrics.CellsEmitted.WithLabelValues("series").Add(float64(rows * len(c.series)))
	logger.Debug("dataframe collected",
		zap.Int("columns", len(c.series)),
		zap.Int("rows", rows),
	)
	return c.Series(), nil
}

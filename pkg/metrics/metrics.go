// Package metrics provides Prometheus metrics for gridframe. The
// native-memory counters exist because the C-ABI backend hands raw
// pointers across the process boundary: a drifting live gauge is the
// first symptom of a consumer that stopped calling release.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// DataframesCreated counts dataframe calls by backend and status
	DataframesCreated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gridframe_dataframes_created_total",
			Help: "Total number of dataframe creations",
		},
		[]string{"backend", "status"},
	)

	// CellsEmitted counts materialized cells (columns x rows) by backend
	CellsEmitted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gridframe_cells_emitted_total",
			Help: "Total number of cells materialized into columns",
		},
		[]string{"backend"},
	)

	// NativeBytesAllocated counts bytes allocated by the C-ABI marshaler
	NativeBytesAllocated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "gridframe_native_bytes_allocated_total",
			Help: "Total native bytes allocated for marshaled dataframes",
		},
	)

	// NativeDataframesLive tracks marshaled dataframes not yet released
	NativeDataframesLive = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "gridframe_native_dataframes_live",
			Help: "Marshaled dataframes currently owned by callers",
		},
	)
)

// RecordDataframe records one dataframe call outcome
func RecordDataframe(backend string, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	DataframesCreated.WithLabelValues(backend, status).Inc()
}

package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gridio/gridframe/pkg/series"
)

func TestBranchValidationsMapper(t *testing.T) {
	w := NewWriter[BranchData]()
	w.Write(BranchData{
		BranchID: "NHV1_NHV2_1", P1: 302.4, P1Calc: 302.4, Q1: 98.7, Q1Calc: 98.7,
		PhaseAngleClock: 11, Connected1: true, Connected2: true,
		MainComponent1: true, MainComponent2: true, Validated: true,
	})
	w.Write(BranchData{BranchID: "NHV1_NHV2_2", P1: 12.5, P1Calc: 13.1})

	cols, err := series.Extract(BranchValidationsMapper(), w)
	require.NoError(t, err)
	require.Len(t, cols, 32)

	assert.Equal(t, "id", cols[0].Name)
	assert.True(t, cols[0].Index)
	assert.Equal(t, []string{"NHV1_NHV2_1", "NHV1_NHV2_2"}, cols[0].Strings())
	assert.Equal(t, "p1", cols[1].Name)
	assert.Equal(t, []float64{302.4, 12.5}, cols[1].Doubles())
	assert.Equal(t, "p1Calc", cols[2].Name)
	assert.Equal(t, []float64{302.4, 13.1}, cols[2].Doubles())
	assert.Equal(t, "phaseAngleClock", cols[26].Name)
	assert.Equal(t, []int32{11, 0}, cols[26].Ints())
	assert.Equal(t, "validated", cols[31].Name)
	assert.Equal(t, []bool{true, false}, cols[31].Booleans())
}

func TestBusValidationsMapper(t *testing.T) {
	w := NewWriter[BusData]()
	w.Write(BusData{ID: "NHV1", IncomingP: 600.2, LoadP: 600, MainComponent: true, Validated: true})

	cols, err := series.Extract(BusValidationsMapper(), w)
	require.NoError(t, err)
	require.Len(t, cols, 25)

	assert.Equal(t, []string{"NHV1"}, cols[0].Strings())
	assert.Equal(t, "incoming_p", cols[1].Name)
	assert.Equal(t, []float64{600.2}, cols[1].Doubles())
	assert.Equal(t, "validated", cols[24].Name)
	assert.Equal(t, []bool{true}, cols[24].Booleans())
}

func TestGeneratorValidationsMapper(t *testing.T) {
	w := NewWriter[GeneratorData]()
	w.Write(GeneratorData{
		ID: "GEN", P: 607, Q: 301, V: 24.5, TargetP: 607, TargetQ: 301, TargetV: 24.5,
		Connected: true, VoltageRegulatorOn: true, MinP: -9999, MaxP: 9999,
		MainComponent: true, Validated: true,
	})

	cols, err := series.Extract(GeneratorValidationsMapper(), w)
	require.NoError(t, err)
	require.Len(t, cols, 16)

	assert.Equal(t, []string{"GEN"}, cols[0].Strings())
	assert.Equal(t, "voltageRegulatorOn", cols[9].Name)
	assert.Equal(t, []bool{true}, cols[9].Booleans())
	assert.Equal(t, "minP", cols[10].Name)
	assert.Equal(t, []float64{-9999}, cols[10].Doubles())
}

func TestEmptyWriter(t *testing.T) {
	cols, err := series.Extract(GeneratorValidationsMapper(), NewWriter[GeneratorData]())
	require.NoError(t, err)
	require.Len(t, cols, 16)
	for _, col := range cols {
		assert.Equal(t, 0, col.Len())
	}
}

func TestWriterPreservesWriteOrder(t *testing.T) {
	w := NewWriter[GeneratorData]()
	w.Write(GeneratorData{ID: "B"})
	w.Write(GeneratorData{ID: "A"})
	w.Write(GeneratorData{ID: "C"})

	cols, err := series.Extract(GeneratorValidationsMapper(), w)
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "A", "C"}, cols[0].Strings())
}

package InputParameters

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCaptureParameters(t *testing.T) {
	fileInput := []byte(`
Title: Boiler Retrofit
FlowRate: 0.25
CO2Fraction: 0.12
InletConcentration: 41.6
CaptureEfficiency: 0.85
TargetCycleTime: 3600.
Catalog:
  - Name: Custom
    Length: 3.0
    Cylinders: 500
    MaxFlow: 0.25
`)
	params := DefaultParameters()
	require.NoError(t, params.Parse(fileInput))
	assert.Equal(t, "Boiler Retrofit", params.Title)
	assert.Equal(t, 0.25, params.FlowRate)
	assert.Equal(t, 0.12, params.CO2Fraction)
	assert.Equal(t, 0.85, params.CaptureEfficiency)
	assert.Equal(t, 3600., params.TargetCycleTime)
	// unset fields keep their defaults
	assert.Equal(t, 0.05, params.Dz)
	assert.Equal(t, 60000., params.MaxSimTime)
	require.Len(t, params.Catalog, 1)
	assert.Equal(t, "Custom", params.Catalog[0].Name)
	assert.Equal(t, 500, params.Catalog[0].Cylinders)
	params.Print()
	require.NoError(t, params.Validate())
}

func TestValidate(t *testing.T) {
	// CO2 fraction outside the validated range
	{
		params := DefaultParameters()
		params.CO2Fraction = 0.2
		require.ErrorIs(t, params.Validate(), ErrCO2FractionRange)
		params.CO2Fraction = 0.05
		require.ErrorIs(t, params.Validate(), ErrCO2FractionRange)
	}
	{
		params := DefaultParameters()
		params.FlowRate = 0
		require.Error(t, params.Validate())
	}
	{
		params := DefaultParameters()
		params.CaptureEfficiency = 1.2
		require.Error(t, params.Validate())
	}
	// defaults themselves are valid
	require.NoError(t, DefaultParameters().Validate())
}

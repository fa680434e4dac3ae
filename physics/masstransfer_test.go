package physics

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultKLInput() KLInput {
	return KLInput{
		SuperficialVelocity: 0.05,
		EquilibriumCapacity: 0.1,
		MoleFraction:        0.11,
		Gas:                 DefaultFlueGas(),
		Material:            DefaultMaterial(),
	}
}

func TestCalcKL(t *testing.T) {
	// Positive and finite at the reference inputs
	{
		kl, err := CalcKL(defaultKLInput())
		require.NoError(t, err)
		fmt.Printf("K_L = %12.6e 1/s\n", kl)
		require.Greater(t, kl, 0.)
		require.False(t, math.IsNaN(kl) || math.IsInf(kl, 0))
	}
	// Non-decreasing in superficial velocity: faster flow thins the film
	{
		var last float64
		for _, u := range []float64{0.005, 0.01, 0.05, 0.1, 0.5, 1.0} {
			in := defaultKLInput()
			in.SuperficialVelocity = u
			kl, err := CalcKL(in)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, kl, last)
			last = kl
		}
	}
	// The composition edge C0=1 is valid
	{
		in := defaultKLInput()
		in.MoleFraction = 1.0
		kl, err := CalcKL(in)
		require.NoError(t, err)
		assert.Greater(t, kl, 0.)
	}
}

func TestCalcKLDomainErrors(t *testing.T) {
	// Each violation fails before any correlation can produce NaN
	{
		in := defaultKLInput()
		in.Gas.Temperature = 0
		_, err := CalcKL(in)
		require.ErrorIs(t, err, ErrNonPositiveTemperature)
	}
	{
		in := defaultKLInput()
		in.Gas.CO2.MolecularWeight = -1
		_, err := CalcKL(in)
		require.ErrorIs(t, err, ErrNonPositiveMolecularWeight)
	}
	{
		in := defaultKLInput()
		in.Gas.N2.Sigma = 0
		_, err := CalcKL(in)
		require.ErrorIs(t, err, ErrNonPositiveDiameter)
	}
	{
		in := defaultKLInput()
		in.Gas.Density = 0
		_, err := CalcKL(in)
		require.ErrorIs(t, err, ErrNonPositiveDensity)
	}
	{
		in := defaultKLInput()
		in.MoleFraction = 0
		_, err := CalcKL(in)
		require.ErrorIs(t, err, ErrMoleFractionRange)
	}
	{
		in := defaultKLInput()
		in.MoleFraction = 1.01
		_, err := CalcKL(in)
		require.ErrorIs(t, err, ErrMoleFractionRange)
	}
	{
		in := defaultKLInput()
		in.SuperficialVelocity = 0
		_, err := CalcKL(in)
		require.ErrorIs(t, err, ErrNonPositiveVelocity)
	}
	{
		in := defaultKLInput()
		in.EquilibriumCapacity = 0
		_, err := CalcKL(in)
		require.ErrorIs(t, err, ErrNonPositiveCapacity)
	}
	{
		in := defaultKLInput()
		in.Material.Tortuosity = 0.5
		_, err := CalcKL(in)
		require.ErrorIs(t, err, ErrBadMaterial)
	}
}

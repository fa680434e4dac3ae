package physics

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestViscosity(t *testing.T) {
	gs := DefaultFlueGas()
	// Pure species
	{
		muCO2 := PureViscosity(gs.Temperature, gs.CO2)
		muN2 := PureViscosity(gs.Temperature, gs.N2)
		fmt.Printf("muCO2, muN2 = %12.6e, %12.6e Pa·s\n", muCO2, muN2)
		require.Greater(t, muCO2, 0.)
		require.Greater(t, muN2, 0.)
		// gas viscosities at 313 K sit in the 1e-5 Pa·s decade
		assert.InDelta(t, 1.7e-5, muN2, 1.0e-5)
		assert.InDelta(t, 1.5e-5, muCO2, 1.0e-5)
	}
	// Self interaction factor is exactly 1
	{
		mu := PureViscosity(gs.Temperature, gs.N2)
		m := gs.N2.MolecularWeight
		assert.InDelta(t, 1.0, wilkePhi(mu, mu, m, m), 1.e-12)
	}
	// Wilke reduces to the pure species at the composition edges
	{
		muCO2 := PureViscosity(gs.Temperature, gs.CO2)
		muN2 := PureViscosity(gs.Temperature, gs.N2)
		assert.InDelta(t, muCO2, MixtureViscosity(gs, 1.0), 1.e-12)
		assert.InDelta(t, muN2, MixtureViscosity(gs, 0.0), 1.e-12)
	}
	// Phi is not symmetric in general
	{
		muCO2 := PureViscosity(gs.Temperature, gs.CO2)
		muN2 := PureViscosity(gs.Temperature, gs.N2)
		pAB := wilkePhi(muCO2, muN2, gs.CO2.MolecularWeight, gs.N2.MolecularWeight)
		pBA := wilkePhi(muN2, muCO2, gs.N2.MolecularWeight, gs.CO2.MolecularWeight)
		assert.Greater(t, math.Abs(pAB-pBA), 1.e-6)
	}
	// Mixture viscosity is positive and finite across the valid range
	{
		for x := 0.05; x <= 1.0; x += 0.05 {
			mu := MixtureViscosity(gs, x)
			require.Greater(t, mu, 0.)
			require.False(t, math.IsNaN(mu) || math.IsInf(mu, 0))
		}
	}
}

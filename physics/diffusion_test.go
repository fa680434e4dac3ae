package physics

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiffusivities(t *testing.T) {
	var (
		gs = DefaultFlueGas()
		am = DefaultMaterial()
	)
	// Chapman-Enskog molecular diffusivity, CO2/N2 at 313 K and 1 atm
	{
		dM := MolecularDiffusivity(gs)
		fmt.Printf("Dm = %12.6e m²/s\n", dM)
		require.Greater(t, dM, 0.)
		// literature value sits near 0.17 cm²/s
		assert.InDelta(t, 1.7e-5, dM, 0.5e-5)
	}
	// Dm grows with temperature
	{
		cold := MolecularDiffusivity(gs)
		hot := gs
		hot.Temperature = 500.0
		assert.Greater(t, MolecularDiffusivity(hot), cold)
	}
	// Knudsen diffusivity scales as sqrt(T)
	{
		d1 := KnudsenDiffusivity(300.0, gs.CO2.MolecularWeight, am.PoreRadius)
		d4 := KnudsenDiffusivity(1200.0, gs.CO2.MolecularWeight, am.PoreRadius)
		assert.InDelta(t, 2.0, d4/d1, 1.e-12)
	}
	// Pore resistances in series: De below both contributing
	// diffusivities reduced by tortuosity
	{
		dM := MolecularDiffusivity(gs)
		dK := KnudsenDiffusivity(gs.Temperature, gs.CO2.MolecularWeight, am.PoreRadius)
		dE := EffectiveDiffusivity(dM, dK, am.Tortuosity)
		assert.Less(t, dE, dM/am.Tortuosity)
		assert.Less(t, dE, dK/am.Tortuosity)
		assert.Greater(t, dE, 0.)
	}
	// Arrhenius micropore rate grows with temperature and the combined
	// rate lies between the species rates
	{
		rCold := MicroporeRate(300.0, gs.CO2, am.CrystalRadius)
		rHot := MicroporeRate(400.0, gs.CO2, am.CrystalRadius)
		assert.Greater(t, rHot, rCold)

		dCO2 := MicroporeRate(gs.Temperature, gs.CO2, am.CrystalRadius)
		dN2 := MicroporeRate(gs.Temperature, gs.N2, am.CrystalRadius)
		dc := CombinedMicroporeRate(gs, am, 0.11)
		lo, hi := dCO2, dN2
		if lo > hi {
			lo, hi = hi, lo
		}
		assert.Greater(t, dc, lo)
		assert.Less(t, dc, hi)
	}
}

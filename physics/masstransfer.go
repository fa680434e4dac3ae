package physics

import (
	"fmt"
	"math"
)

// KLInput collects everything the overall mass-transfer coefficient
// depends on: flow, adsorption scale and stream/material descriptions.
type KLInput struct {
	SuperficialVelocity float64 // u, m/s
	EquilibriumCapacity float64 // q0, reference adsorption scale
	MoleFraction        float64 // C0, CO₂ mole fraction in (0,1]
	Gas                 GasStream
	Material            AdsorbentMaterial
}

func (in KLInput) Validate() error {
	if err := in.Gas.Validate(); err != nil {
		return err
	}
	if err := in.Material.Validate(); err != nil {
		return err
	}
	if in.SuperficialVelocity <= 0 {
		return ErrNonPositiveVelocity
	}
	if in.EquilibriumCapacity <= 0 {
		return ErrNonPositiveCapacity
	}
	if in.MoleFraction <= 0 || in.MoleFraction > 1 {
		return ErrMoleFractionRange
	}
	return nil
}

/*
FilmCoefficient computes the external film mass-transfer coefficient
k_f from the Sherwood correlation

	Sh = 1.09 * Re^0.27 * Sc^(1/3),   k_f = Sh * D_m / (2*r_p)

with Re built on the particle diameter and the Wilke mixture viscosity.
*/
func FilmCoefficient(in KLInput, dM float64) float64 {
	var (
		dP = 2.0 * in.Material.ParticleRadius
		mu = MixtureViscosity(in.Gas, in.MoleFraction)
		re = in.Gas.Density * in.SuperficialVelocity * dP / mu
		sc = mu / (in.Gas.Density * dM)
		sh = 1.09 * math.Pow(re, 0.27) * math.Cbrt(sc)
	)
	return sh * dM / dP
}

/*
CalcKL evaluates the overall mass-transfer coefficient as three
resistances in series, 1/s:

	1/K_L = r_p*q0/(3*k_f*C0) + r_p²*q0/(15*eps*D_e*C0) + 1/(15*D_c)

film, macropore and micropore respectively.
*/
func CalcKL(in KLInput) (float64, error) {
	if err := in.Validate(); err != nil {
		return 0, fmt.Errorf("mass transfer input: %w", err)
	}
	var (
		am = in.Material
		dM = MolecularDiffusivity(in.Gas)
		dK = KnudsenDiffusivity(in.Gas.Temperature, in.Gas.CO2.MolecularWeight, am.PoreRadius)
		dE = EffectiveDiffusivity(dM, dK, am.Tortuosity)
		dC = CombinedMicroporeRate(in.Gas, am, in.MoleFraction)
		kF = FilmCoefficient(in, dM)
	)
	rFilm := am.ParticleRadius * in.EquilibriumCapacity / (3.0 * kF * in.MoleFraction)
	rMacro := am.ParticleRadius * am.ParticleRadius * in.EquilibriumCapacity /
		(15.0 * am.Porosity * dE * in.MoleFraction)
	rMicro := 1.0 / (15.0 * dC)
	return 1.0 / (rFilm + rMacro + rMicro), nil
}

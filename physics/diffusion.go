package physics

import "math"

/*
Binary molecular diffusivity from the Chapman-Enskog correlation:

	D_AB = 0.0018583 * sqrt(T³ * (1/M_A + 1/M_B)) / (P * sigma_AB² * Omega_D)  [cm²/s]

with P in atm, sigma_AB = (sigma_A+sigma_B)/2 in Angstrom, and the
diffusion collision integral Omega_D from the Neufeld fit in the reduced
temperature T* = T/sqrt((eps_A/k)*(eps_B/k)). Returned in m²/s.
*/
func MolecularDiffusivity(gs GasStream) float64 {
	var (
		a, b    = gs.CO2, gs.N2
		sigmaAB = 0.5 * (a.Sigma + b.Sigma)
		epsAB   = math.Sqrt(a.EpsOverK * b.EpsOverK)
		tStar   = gs.Temperature / epsAB
	)
	dCm2 := 0.0018583 * math.Sqrt(math.Pow(gs.Temperature, 3)*(1.0/a.MolecularWeight+1.0/b.MolecularWeight)) /
		(gs.Pressure * sigmaAB * sigmaAB * omegaD(tStar))
	return dCm2 * 1.0e-4 // cm²/s -> m²/s
}

// Neufeld collision integral fit for diffusion.
func omegaD(tStar float64) float64 {
	const (
		a = 1.06036
		b = 0.15610
		c = 0.19300
		d = 0.47635
		e = 1.03587
		f = 1.52996
		g = 1.76474
		h = 3.89411
	)
	return a/math.Pow(tStar, b) + c/math.Exp(d*tStar) + e/math.Exp(f*tStar) + g/math.Exp(h*tStar)
}

/*
Knudsen diffusivity D_K = 9700 * r0 * sqrt(T/M), with the pore radius in
cm yielding cm²/s. r0 is taken in meters and the result returned in
m²/s.
*/
func KnudsenDiffusivity(T, molecularWeight, poreRadius float64) float64 {
	r0Cm := poreRadius * 100.0
	return 9700.0 * r0Cm * math.Sqrt(T/molecularWeight) * 1.0e-4
}

// EffectiveDiffusivity combines the molecular and Knudsen resistances in
// series inside the pore, corrected by the tortuosity factor:
// 1/D_e = tau * (1/D_m + 1/D_K).
func EffectiveDiffusivity(dM, dK, tortuosity float64) float64 {
	return 1.0 / (tortuosity * (1.0/dM + 1.0/dK))
}

// MicroporeRate is the Arrhenius micropore diffusional rate
// D0*exp(-E/(R*T))/r_c², in 1/s. The crystal radius converts the
// diffusivity into the rate constant entering the K_L resistance sum.
func MicroporeRate(T float64, sp Species, crystalRadius float64) float64 {
	return sp.D0 * math.Exp(-sp.ActivationEnergy/(GasConstant*T)) / (crystalRadius * crystalRadius)
}

// CombinedMicroporeRate is the composition-weighted harmonic mean of the
// per-species micropore rates: 1/D_c = C0/D_CO2 + (1-C0)/D_N2.
func CombinedMicroporeRate(gs GasStream, am AdsorbentMaterial, xCO2 float64) float64 {
	var (
		dCO2 = MicroporeRate(gs.Temperature, gs.CO2, am.CrystalRadius)
		dN2  = MicroporeRate(gs.Temperature, gs.N2, am.CrystalRadius)
	)
	return 1.0 / (xCO2/dCO2 + (1.0-xCO2)/dN2)
}

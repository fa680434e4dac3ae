package physics

import "math"

/*
Pure-species viscosity from Chapman-Enskog kinetic theory:

	mu = 2.6693e-5 * sqrt(M*T) / (sigma² * Omega_v)   [poise]

with the collision integral Omega_v evaluated by the Neufeld fit in the
reduced temperature T* = T/(eps/k). Output converted to Pa·s.
*/
func PureViscosity(T float64, sp Species) float64 {
	tStar := T / sp.EpsOverK
	muPoise := 2.6693e-5 * math.Sqrt(sp.MolecularWeight*T) / (sp.Sigma * sp.Sigma * omegaV(tStar))
	return muPoise * 0.1 // poise -> Pa·s
}

// Neufeld collision integral fit for viscosity.
func omegaV(tStar float64) float64 {
	const (
		a = 1.16145
		b = 0.14874
		c = 0.52487
		d = 0.77320
		e = 2.16178
		f = 2.43787
	)
	return a/math.Pow(tStar, b) + c/math.Exp(d*tStar) + e/math.Exp(f*tStar)
}

/*
Wilke mixing rule for the binary viscosity. For species alpha,

	contribution = x_alpha*mu_alpha / sum_beta(x_beta*Phi_alpha_beta)

Phi is not symmetric in its arguments, so every pair is evaluated
explicitly. xCO2 is the CO₂ mole fraction; N₂ takes the balance.
*/
func MixtureViscosity(gs GasStream, xCO2 float64) float64 {
	var (
		x  = [2]float64{xCO2, 1.0 - xCO2}
		sp = [2]Species{gs.CO2, gs.N2}
		mu [2]float64
	)
	for i := range sp {
		mu[i] = PureViscosity(gs.Temperature, sp[i])
	}
	var muMix float64
	for a := range sp {
		if x[a] == 0 {
			continue
		}
		var denom float64
		for b := range sp {
			denom += x[b] * wilkePhi(mu[a], mu[b], sp[a].MolecularWeight, sp[b].MolecularWeight)
		}
		muMix += x[a] * mu[a] / denom
	}
	return muMix
}

// Interaction factor Phi_ab of the Wilke rule.
func wilkePhi(muA, muB, mA, mB float64) float64 {
	t := 1.0 + math.Sqrt(muA/muB)*math.Pow(mB/mA, 0.25)
	return (1.0 / math.Sqrt(8.0)) / math.Sqrt(1.0+mA/mB) * t * t
}

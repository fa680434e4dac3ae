package Adsorption1D

// Isotherm is the dual-site Langmuir equilibrium model: two independent
// saturating site populations. Monotonically increasing in c and bounded
// above by QMax1+QMax2.
type Isotherm struct {
	QMax1, B1 float64 // site-1 capacity (kg/kg) and affinity (m³/mol)
	QMax2, B2 float64 // site-2 capacity and affinity
}

// QStar is the equilibrium loading q*(c) for gas-phase concentration c
// in mol/m³.
func (iso Isotherm) QStar(c float64) float64 {
	return iso.QMax1*iso.B1*c/(1.0+iso.B1*c) + iso.QMax2*iso.B2*c/(1.0+iso.B2*c)
}

// DefaultIsotherm is a CO₂-on-activated-carbon dual-site fit.
func DefaultIsotherm() Isotherm {
	return Isotherm{
		QMax1: 0.12,
		B1:    0.05,
		QMax2: 0.05,
		B2:    0.01,
	}
}

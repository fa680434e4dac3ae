package physics

import "errors"

// Universal gas constant, J/(mol·K)
const GasConstant = 8.314

// Domain errors for correlation inputs. All validation runs before any
// correlation is evaluated so invalid inputs can never surface as NaN
// or Inf results.
var (
	ErrNonPositiveTemperature     = errors.New("physics: temperature must be positive")
	ErrNonPositivePressure        = errors.New("physics: pressure must be positive")
	ErrNonPositiveDensity         = errors.New("physics: gas density must be positive")
	ErrNonPositiveMolecularWeight = errors.New("physics: molecular weight must be positive")
	ErrNonPositiveDiameter        = errors.New("physics: Lennard-Jones diameter must be positive")
	ErrMoleFractionRange          = errors.New("physics: mole fraction must lie in (0,1]")
	ErrNonPositiveVelocity        = errors.New("physics: superficial velocity must be positive")
	ErrNonPositiveCapacity        = errors.New("physics: equilibrium capacity must be positive")
	ErrBadMaterial                = errors.New("physics: adsorbent material parameters out of range")
)

// Species holds the per-gas constants entering the kinetic-theory
// correlations: molecular weight (g/mol), Lennard-Jones characteristic
// diameter sigma (Angstrom), well depth over Boltzmann constant (K),
// and the Arrhenius micropore diffusion parameters (m²/s, J/mol).
type Species struct {
	Name             string
	MolecularWeight  float64
	Sigma            float64
	EpsOverK         float64
	D0               float64
	ActivationEnergy float64
}

func (sp Species) Validate() error {
	if sp.MolecularWeight <= 0 {
		return ErrNonPositiveMolecularWeight
	}
	if sp.Sigma <= 0 || sp.EpsOverK <= 0 {
		return ErrNonPositiveDiameter
	}
	return nil
}

// GasStream is the immutable description of the flue gas upstream of
// the bed: a CO₂/N₂ binary at a fixed temperature, pressure and density.
type GasStream struct {
	Temperature float64 // K
	Pressure    float64 // atm
	Density     float64 // kg/m³
	CO2, N2     Species
}

func (gs GasStream) Validate() error {
	if gs.Temperature <= 0 {
		return ErrNonPositiveTemperature
	}
	if gs.Pressure <= 0 {
		return ErrNonPositivePressure
	}
	if gs.Density <= 0 {
		return ErrNonPositiveDensity
	}
	if err := gs.CO2.Validate(); err != nil {
		return err
	}
	return gs.N2.Validate()
}

// AdsorbentMaterial is the immutable description of the packed
// activated carbon: macroscopic particle, microporous crystal and mean
// pore radii (m), pore tortuosity factor (>1) and particle porosity.
type AdsorbentMaterial struct {
	ParticleRadius float64
	CrystalRadius  float64
	PoreRadius     float64
	Tortuosity     float64
	Porosity       float64
}

func (am AdsorbentMaterial) Validate() error {
	if am.ParticleRadius <= 0 || am.CrystalRadius <= 0 || am.PoreRadius <= 0 {
		return ErrBadMaterial
	}
	if am.Tortuosity <= 1 || am.Porosity <= 0 || am.Porosity >= 1 {
		return ErrBadMaterial
	}
	return nil
}

// DefaultFlueGas is a post-boiler CO₂/N₂ stream at 40 C and 1 atm.
// Lennard-Jones parameters from the standard Bird-Stewart-Lightfoot
// tables; Arrhenius micropore parameters for activated carbon.
func DefaultFlueGas() GasStream {
	return GasStream{
		Temperature: 313.15,
		Pressure:    1.0,
		Density:     1.15,
		CO2: Species{
			Name:             "CO2",
			MolecularWeight:  44.01,
			Sigma:            3.941,
			EpsOverK:         195.2,
			D0:               1.0e-11,
			ActivationEnergy: 20000.0,
		},
		N2: Species{
			Name:             "N2",
			MolecularWeight:  28.013,
			Sigma:            3.798,
			EpsOverK:         71.4,
			D0:               5.0e-12,
			ActivationEnergy: 15000.0,
		},
	}
}

// DefaultMaterial is a 1 mm granular activated carbon pellet.
func DefaultMaterial() AdsorbentMaterial {
	return AdsorbentMaterial{
		ParticleRadius: 1.0e-3,
		CrystalRadius:  1.0e-6,
		PoreRadius:     2.0e-9,
		Tortuosity:     3.0,
		Porosity:       0.6,
	}
}

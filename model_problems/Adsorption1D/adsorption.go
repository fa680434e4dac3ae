package Adsorption1D

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/avocado-lion/JEMM-Carbon-Scalibility-Tool/utils"
)

var (
	ErrBadConfig      = errors.New("Adsorption1D: bed configuration out of range")
	ErrUnstableScheme = errors.New("Adsorption1D: Courant condition violated, reduce Dt or refine Dz")
)

// BedConfig is the full named parameter set of one bed simulation. All
// scattered physical constants live here so a run's inputs are a single
// auditable value.
type BedConfig struct {
	Length             float64 // total bed length, m
	Dz                 float64 // spatial step, m
	Dt                 float64 // time step, s
	MaxSimTime         float64 // simulated horizon, s
	CylinderRadius     float64 // per-cylinder channel radius, m
	Cylinders          int     // parallel cylinders in one bed
	BulkDensity        float64 // packed adsorbent density, kg/m³
	FlowRate           float64 // per-bed volumetric flow, m³/s
	InletConcentration float64 // CO₂ inlet concentration c_in, mol/m³
	TotalConcentration float64 // total inlet gas concentration, mol/m³
	CaptureEfficiency  float64 // fraction of the driving force transferred, [0,1]
	KL                 float64 // overall mass-transfer coefficient, 1/s
	Iso                Isotherm
}

// CylinderArea is the cross-sectional area of one cylinder, m².
func (cfg BedConfig) CylinderArea() float64 {
	return math.Pi * cfg.CylinderRadius * cfg.CylinderRadius
}

// CylinderFlow is the volumetric flow through one cylinder, m³/s.
func (cfg BedConfig) CylinderFlow() float64 {
	return cfg.FlowRate / float64(cfg.Cylinders)
}

// SuperficialVelocity is the empty-channel gas velocity, m/s.
func (cfg BedConfig) SuperficialVelocity() float64 {
	return cfg.CylinderFlow() / cfg.CylinderArea()
}

func (cfg BedConfig) validate() error {
	switch {
	case cfg.Length <= 0, cfg.Dz <= 0, cfg.Dt <= 0, cfg.MaxSimTime <= 0:
		return ErrBadConfig
	case cfg.CylinderRadius <= 0, cfg.Cylinders <= 0, cfg.BulkDensity <= 0, cfg.FlowRate <= 0:
		return ErrBadConfig
	case cfg.InletConcentration < 0, cfg.TotalConcentration <= 0, cfg.KL <= 0:
		return ErrBadConfig
	case cfg.CaptureEfficiency < 0, cfg.CaptureEfficiency > 1:
		return ErrBadConfig
	}
	if int(math.Floor(cfg.Length/cfg.Dz)) < 2 {
		return ErrBadConfig
	}
	return nil
}

// DefaultBedConfig is one Small catalog bed at the reference inlet
// conditions. KL carries a typical magnitude only and is normally
// replaced by the physics.CalcKL result.
func DefaultBedConfig() BedConfig {
	return BedConfig{
		Length:             2.2,
		Dz:                 0.05,
		Dt:                 0.05,
		MaxSimTime:         60000.0,
		CylinderRadius:     0.05,
		Cylinders:          418,
		BulkDensity:        500.0,
		FlowRate:           0.168,
		InletConcentration: 0.11 * 41.6,
		TotalConcentration: 41.6,
		CaptureEfficiency:  0.9,
		KL:                 0.005,
		Iso:                DefaultIsotherm(),
	}
}

// AdsorptionBed marches the coupled gas-phase advection /
// adsorption-rate system over a uniform 1D grid with first-order upwind
// differencing and explicit time stepping.
type AdsorptionBed struct {
	cfg      BedConfig
	N        int // spatial node count, floor(Length/Dz)
	NSteps   int // time step count, floor(MaxSimTime/Dt)
	area     float64
	qCyl     float64
	X        utils.Vector // node coordinates, for plotting
	C, Q     utils.Vector // gas-phase (mol/m³) and adsorbed-phase (kg/kg) profiles
	adv      utils.CSR    // upwind advection update operator
	plotData plotState
}

// RunOptions tune one run without touching the bed configuration.
// MaxSteps > 0 caps the step budget below the configured horizon;
// StopAtBreakthrough truncates the run once the outlet crosses the
// threshold (BreakthroughThreshold when Threshold is zero).
type RunOptions struct {
	MaxSteps           int
	StopAtBreakthrough bool
	Threshold          float64
}

func NewAdsorptionBed(cfg BedConfig) (*AdsorptionBed, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	bed := &AdsorptionBed{
		cfg:    cfg,
		NSteps: int(math.Floor(cfg.MaxSimTime / cfg.Dt)),
		area:   cfg.CylinderArea(),
		qCyl:   cfg.CylinderFlow(),
	}
	courant := bed.qCyl * cfg.Dt / (bed.area * cfg.Dz)
	if courant > 1 {
		return nil, fmt.Errorf("%w: Q*Dt/(A*Dz) = %8.4f", ErrUnstableScheme, courant)
	}
	bed.allocate(cfg.Length)
	return bed, nil
}

func (bed *AdsorptionBed) Config() BedConfig { return bed.cfg }
func (bed *AdsorptionBed) Nodes() int        { return bed.N }
func (bed *AdsorptionBed) Steps() int        { return bed.NSteps }

// allocate sizes the spatial state to a (possibly new) total length.
// Profiles are reallocated, never resized in place.
func (bed *AdsorptionBed) allocate(length float64) {
	bed.cfg.Length = length
	bed.N = int(math.Floor(length / bed.cfg.Dz))
	bed.C = utils.NewVector(bed.N)
	bed.Q = utils.NewVector(bed.N)
	x := make([]float64, bed.N)
	for i := range x {
		x[i] = float64(i) * bed.cfg.Dz
	}
	bed.X = utils.NewVector(bed.N, x)
	bed.adv = buildAdvectionOperator(bed.N, bed.qCyl*bed.cfg.Dt/bed.cfg.Dz)
}

// Rebuild discards the spatial state and reconstructs it cold over a new
// total length. Each sizing iteration restarts the integration from a
// zero profile over the longer domain; the previous run's profile is
// deliberately not carried forward.
func (bed *AdsorptionBed) Rebuild(totalLength float64) error {
	if int(math.Floor(totalLength/bed.cfg.Dz)) < 2 {
		return ErrBadConfig
	}
	bed.allocate(totalLength)
	return nil
}

// The gas-phase update for nodes 1..N-1 is
//
//	c[i] -= (Q*Dt/Dz)*(c[i]-c[i-1])
//
// which is the matrix-vector product of a lower-bidiagonal operator.
// Row 0 is identity; the Dirichlet inlet overwrite happens after the
// product.
func buildAdvectionOperator(n int, coef float64) utils.CSR {
	dok := utils.NewDOK(n, n)
	dok.Set(0, 0, 1.0)
	for i := 1; i < n; i++ {
		dok.Set(i, i, 1.0-coef)
		dok.Set(i, i-1, coef)
	}
	return dok.ToCSR()
}

// Run integrates the full configured horizon.
func (bed *AdsorptionBed) Run(showGraph bool, graphDelay ...time.Duration) *SimulationResult {
	return bed.RunWith(RunOptions{}, showGraph, graphDelay...)
}

// RunWith integrates from a fresh zero state and records the outlet and
// total-mass series plus the full space-time tables. Identical inputs
// produce bit-identical results.
func (bed *AdsorptionBed) RunWith(opts RunOptions, showGraph bool, graphDelay ...time.Duration) *SimulationResult {
	var (
		cfg          = bed.cfg
		logFrequency = 20000
		nSteps       = bed.NSteps
	)
	if opts.MaxSteps > 0 && opts.MaxSteps < nSteps {
		nSteps = opts.MaxSteps
	}
	threshold := opts.Threshold
	if threshold == 0 {
		threshold = BreakthroughThreshold
	}
	// cold start
	bed.C.Set(0)
	bed.Q.Set(0)

	var (
		res       = newSimulationResult(nSteps, bed.N, cfg.Dt)
		cNew      = utils.NewVector(bed.N)
		dqdt      = utils.NewVector(bed.N)
		massScale = cfg.BulkDensity * bed.area * cfg.Dz * float64(cfg.Cylinders)
	)
	for n := 0; n < nSteps; n++ {
		bed.step(cNew, dqdt)
		outlet := bed.C.AtVec(bed.N - 1)
		res.Outlet[n] = outlet
		res.TotalMass[n] = bed.Q.Sum() * massScale
		res.CHistory.SetRow(n, bed.C.DataP())
		res.QHistory.SetRow(n, bed.Q.DataP())
		bed.Plot(showGraph, graphDelay)
		if n%logFrequency == 0 {
			fmt.Printf("t = %10.2f s, outlet = %10.6f mol/m³, captured = %10.4f kg\n",
				float64(n)*cfg.Dt, outlet, res.TotalMass[n])
		}
		if opts.StopAtBreakthrough && outlet/cfg.TotalConcentration >= threshold {
			res.truncate(n + 1)
			break
		}
	}
	return res
}

// step advances one Dt: adsorbed phase first over all nodes, then the
// upwind gas-phase update, then the Dirichlet inlet.
func (bed *AdsorptionBed) step(cNew, dqdt utils.Vector) {
	var (
		cfg  = bed.cfg
		c    = bed.C.DataP()
		q    = bed.Q.DataP()
		rate = dqdt.DataP()
	)
	for i := range rate {
		rate[i] = cfg.KL * (cfg.Iso.QStar(c[i]) - q[i]) * cfg.CaptureEfficiency
	}
	bed.Q.AddScaled(cfg.Dt, dqdt)

	bed.adv.MulVec(bed.C, cNew)
	var (
		out  = cNew.DataP()
		sink = cfg.Dt * cfg.BulkDensity * bed.area
	)
	for i := 1; i < bed.N; i++ {
		out[i] -= sink * rate[i]
		if out[i] < 0 {
			out[i] = 0
		}
	}
	out[0] = cfg.InletConcentration
	copy(c, out)
}

package Adsorption1D

import (
	"gonum.org/v1/gonum/mat"

	"github.com/avocado-lion/JEMM-Carbon-Scalibility-Tool/utils"
)

// SimulationResult holds one run's recorded output: per-timestep outlet
// concentration and cumulative captured mass, plus the full space-time
// concentration and loading tables (step count x node count). Immutable
// once returned.
type SimulationResult struct {
	Dt        float64
	Outlet    []float64 // mol/m³ at the last node
	TotalMass []float64 // kg adsorbate over the whole bed
	CHistory  utils.Matrix
	QHistory  utils.Matrix
}

func newSimulationResult(nSteps, n int, dt float64) *SimulationResult {
	return &SimulationResult{
		Dt:        dt,
		Outlet:    make([]float64, nSteps),
		TotalMass: make([]float64, nSteps),
		CHistory:  utils.NewMatrix(nSteps, n),
		QHistory:  utils.NewMatrix(nSteps, n),
	}
}

func (res *SimulationResult) Steps() int { return len(res.Outlet) }

// truncate shortens all recorded series to the first n steps, used when
// a run stops early at breakthrough.
func (res *SimulationResult) truncate(n int) {
	if n >= len(res.Outlet) {
		return
	}
	_, nc := res.CHistory.Dims()
	res.Outlet = res.Outlet[:n]
	res.TotalMass = res.TotalMass[:n]
	res.CHistory = utils.Matrix{M: mat.DenseCopyOf(res.CHistory.M.Slice(0, n, 0, nc))}
	res.QHistory = utils.Matrix{M: mat.DenseCopyOf(res.QHistory.M.Slice(0, n, 0, nc))}
}

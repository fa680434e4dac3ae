package sizing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avocado-lion/JEMM-Carbon-Scalibility-Tool/model_problems/Adsorption1D"
)

// fakeBed scripts one outlet series per run so the growth loop can be
// exercised without integrating a real bed.
type fakeBed struct {
	dt       float64
	outs     [][]float64
	runs     int
	rebuilds []float64
}

func (f *fakeBed) Rebuild(totalLength float64) error {
	f.rebuilds = append(f.rebuilds, totalLength)
	return nil
}

func (f *fakeBed) Run(showGraph bool, graphDelay ...time.Duration) *Adsorption1D.SimulationResult {
	out := f.outs[f.runs]
	if f.runs < len(f.outs)-1 {
		f.runs++
	}
	return &Adsorption1D.SimulationResult{
		Dt:        f.dt,
		Outlet:    out,
		TotalMass: make([]float64, len(out)),
	}
}

// crossingAt builds a series that stays clean until step i, then jumps
// above the 5% threshold of cInTotal = 41.6.
func crossingAt(i, n int) []float64 {
	out := make([]float64, n)
	for j := i; j < n; j++ {
		out[j] = 3.0 // 3.0/41.6 > 0.05
	}
	return out
}

func TestOptimize(t *testing.T) {
	cfg := DefaultOptimizerConfig() // target 7200 s, cap 2, c_in_total 41.6
	const unit = 2.2

	// First run already meets the target: no growth, no advisories
	{
		bed := &fakeBed{dt: 100.0, outs: [][]float64{crossingAt(80, 100)}} // 8000 s
		sr, err := Optimize(bed, unit, cfg)
		require.NoError(t, err)
		assert.Equal(t, 1, sr.SeriesCount)
		assert.Equal(t, unit, sr.TotalLength)
		assert.True(t, sr.Breakthrough.Reached)
		assert.Equal(t, 8000.0, sr.Breakthrough.Seconds)
		assert.Empty(t, sr.Advisories)
		assert.Empty(t, bed.rebuilds)
	}
	// One growth step reaches the target
	{
		bed := &fakeBed{dt: 100.0, outs: [][]float64{
			crossingAt(30, 100), // 3000 s, below target
			crossingAt(90, 100), // 9000 s
		}}
		sr, err := Optimize(bed, unit, cfg)
		require.NoError(t, err)
		assert.Equal(t, 2, sr.SeriesCount)
		assert.InDelta(t, 2*unit, sr.TotalLength, 1.e-12)
		assert.InDeltaSlice(t, []float64{2 * unit}, bed.rebuilds, 1.e-12)
		assert.True(t, sr.Breakthrough.Reached)
		assert.Equal(t, 9000.0, sr.Breakthrough.Seconds)
		require.Len(t, sr.Advisories, 1)
		assert.Equal(t, AdvisoryColdRestart, sr.Advisories[0].Kind)
	}
	// Cap exhaustion: last result returned, flagged non-convergent, and
	// three beds in series triggers the expert-review advisory
	{
		bed := &fakeBed{dt: 100.0, outs: [][]float64{
			crossingAt(10, 100),
			crossingAt(20, 100),
			crossingAt(30, 100),
		}}
		sr, err := Optimize(bed, unit, cfg)
		require.NoError(t, err)
		assert.Equal(t, 3, sr.SeriesCount)
		assert.InDeltaSlice(t, []float64{2 * unit, 3 * unit}, bed.rebuilds, 1.e-12)
		assert.True(t, sr.Breakthrough.Reached)
		assert.Equal(t, 3000.0, sr.Breakthrough.Seconds)
		kinds := make([]AdvisoryKind, len(sr.Advisories))
		for i, a := range sr.Advisories {
			kinds[i] = a.Kind
		}
		assert.Contains(t, kinds, AdvisoryColdRestart)
		assert.Contains(t, kinds, AdvisoryExpertReview)
		assert.Contains(t, kinds, AdvisoryNonConvergence)
		require.NotNil(t, sr.Result)
	}
	// The not-reached sentinel ends the loop as a normal outcome
	{
		bed := &fakeBed{dt: 100.0, outs: [][]float64{make([]float64, 100)}}
		sr, err := Optimize(bed, unit, cfg)
		require.NoError(t, err)
		assert.Equal(t, 1, sr.SeriesCount)
		assert.False(t, sr.Breakthrough.Reached)
		assert.Empty(t, sr.Advisories)
	}
	// Invalid inputs
	{
		bed := &fakeBed{dt: 100.0, outs: [][]float64{crossingAt(80, 100)}}
		_, err := Optimize(bed, 0, cfg)
		require.ErrorIs(t, err, ErrBadOptimizerInput)

		bad := cfg
		bad.TotalConcentration = 0
		_, err = Optimize(bed, unit, bad)
		require.ErrorIs(t, err, ErrBadOptimizerInput)
	}
}

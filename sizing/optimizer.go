package sizing

import (
	"errors"
	"fmt"
	"time"

	"github.com/avocado-lion/JEMM-Carbon-Scalibility-Tool/model_problems/Adsorption1D"
)

var ErrBadOptimizerInput = errors.New("sizing: optimizer needs a positive unit length and inlet concentration")

// Simulator is the slice of the bed model the optimizer drives:
// reconstruct cold at a new total length, then integrate.
type Simulator interface {
	Rebuild(totalLength float64) error
	Run(showGraph bool, graphDelay ...time.Duration) *Adsorption1D.SimulationResult
}

// OptimizerConfig bounds the series-growth loop.
type OptimizerConfig struct {
	TargetCycleTime    float64 // minimum acceptable breakthrough time, s
	MaxIterations      int     // growth steps before giving up
	TotalConcentration float64 // c_in_total for breakthrough normalization, mol/m³
	Graph              bool    // live-plot each run
	GraphDelay         time.Duration
}

func DefaultOptimizerConfig() OptimizerConfig {
	return OptimizerConfig{
		TargetCycleTime:    7200.0,
		MaxIterations:      2,
		TotalConcentration: 41.6,
	}
}

// SizingResult is the optimizer's answer: the series configuration it
// settled on, the last run's breakthrough evaluation and recorded
// output, and any advisories raised along the way.
type SizingResult struct {
	SeriesCount  int
	TotalLength  float64
	Breakthrough Adsorption1D.BreakthroughTime
	Result       *Adsorption1D.SimulationResult
	Advisories   []Advisory
}

// Optimize grows the bed in series until the breakthrough time meets the
// target cycle time, the sentinel "not reached" appears, or the
// iteration cap is hit. Every growth step rebuilds the simulator cold
// over the new, longer domain: the previous run's profile is discarded,
// which biases breakthrough times and is surfaced as an advisory rather
// than silently changed. On cap exhaustion the last result is still
// returned, flagged non-convergent.
func Optimize(bed Simulator, unitLength float64, cfg OptimizerConfig) (*SizingResult, error) {
	if unitLength <= 0 || cfg.MaxIterations < 0 || cfg.TotalConcentration <= 0 {
		return nil, ErrBadOptimizerInput
	}
	sr := &SizingResult{SeriesCount: 1, TotalLength: unitLength}

	res := bed.Run(cfg.Graph, cfg.GraphDelay)
	bt, err := Adsorption1D.EvaluateBreakthrough(res.Outlet, cfg.TotalConcentration, res.Dt)
	if err != nil {
		return nil, err
	}

	var iter int
	for bt.Reached && bt.Seconds < cfg.TargetCycleTime && iter < cfg.MaxIterations {
		sr.SeriesCount++
		sr.TotalLength += unitLength
		if err = bed.Rebuild(sr.TotalLength); err != nil {
			return nil, err
		}
		if sr.SeriesCount == 2 {
			sr.Advisories = append(sr.Advisories, Advisory{
				Kind: AdvisoryColdRestart,
				Message: "series growth restarts the integration from a zero profile over the longer domain; " +
					"breakthrough times do not carry the previous run's loading",
			})
		}
		fmt.Printf("growing bed: series count = %d, total length = %8.3f m\n", sr.SeriesCount, sr.TotalLength)
		res = bed.Run(cfg.Graph, cfg.GraphDelay)
		if bt, err = Adsorption1D.EvaluateBreakthrough(res.Outlet, cfg.TotalConcentration, res.Dt); err != nil {
			return nil, err
		}
		iter++
		if sr.SeriesCount == 3 {
			sr.Advisories = append(sr.Advisories, Advisory{
				Kind:    AdvisoryExpertReview,
				Message: "three or more beds in series, consult a process engineer before committing to this train",
			})
		}
	}
	if bt.Reached && bt.Seconds < cfg.TargetCycleTime {
		sr.Advisories = append(sr.Advisories, Advisory{
			Kind: AdvisoryNonConvergence,
			Message: fmt.Sprintf("iteration cap %d hit with breakthrough at %s, below the %.0f s cycle target",
				cfg.MaxIterations, bt, cfg.TargetCycleTime),
		})
	}
	sr.Breakthrough = bt
	sr.Result = res
	return sr, nil
}

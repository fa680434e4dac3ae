package Adsorption1D

import (
	"errors"
	"fmt"
)

// BreakthroughThreshold is the normalized outlet concentration at which
// a bed counts as broken through.
const BreakthroughThreshold = 0.05

var ErrNonPositiveInlet = errors.New("Adsorption1D: total inlet concentration must be positive")

// BreakthroughTime is either the elapsed seconds until the outlet first
// crossed the threshold, or the not-reached sentinel. Not reaching
// breakthrough within the horizon is a normal outcome, not an error.
type BreakthroughTime struct {
	Reached bool
	Seconds float64
}

func (bt BreakthroughTime) String() string {
	if !bt.Reached {
		return "not reached"
	}
	return fmt.Sprintf("%.1f s", bt.Seconds)
}

// EvaluateBreakthrough scans an outlet series for the first step where
// outlet/cInTotal >= BreakthroughThreshold and converts its index to
// elapsed time.
func EvaluateBreakthrough(outlet []float64, cInTotal, dt float64) (BreakthroughTime, error) {
	if cInTotal <= 0 {
		return BreakthroughTime{}, ErrNonPositiveInlet
	}
	for i, c := range outlet {
		if c/cInTotal >= BreakthroughThreshold {
			return BreakthroughTime{Reached: true, Seconds: float64(i) * dt}, nil
		}
	}
	return BreakthroughTime{}, nil
}

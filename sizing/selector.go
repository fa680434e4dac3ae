package sizing

import (
	"errors"
	"fmt"
)

var (
	ErrBadSelectorInput = errors.New("sizing: selector needs a positive flow, a catalog and a positive parallel cap")
	ErrNoCatalogFit     = errors.New("sizing: no catalog bed fits the per-bed flow within the parallel cap")
)

// Selection is the parallel-train answer: which bed type, how many
// identical beds side by side, and the flow each one carries.
type Selection struct {
	Bed           BedType
	ParallelCount int
	PerBedFlow    float64
}

// SelectParallel splits the total flow over 1..maxParallel identical
// beds and picks the smallest catalog entry whose rating covers the
// per-bed share. Exhausting the cap is a configuration failure needing
// external action, not a condition to retry with relaxed constraints.
func SelectParallel(totalFlow float64, catalog []BedType, maxParallel int) (Selection, error) {
	if totalFlow <= 0 || len(catalog) == 0 || maxParallel <= 0 {
		return Selection{}, ErrBadSelectorInput
	}
	for p := 1; p <= maxParallel; p++ {
		perBed := totalFlow / float64(p)
		for _, b := range catalog {
			if b.MaxFlow >= perBed {
				return Selection{Bed: b, ParallelCount: p, PerBedFlow: perBed}, nil
			}
		}
	}
	return Selection{}, fmt.Errorf("%w: total flow %g m³/s over %d beds", ErrNoCatalogFit, totalFlow, maxParallel)
}

// Package output writes simulation results to CSV for downstream
// plotting and reporting. Serialization is layered on top of the
// in-memory result structures and is not part of the core model.
package output

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/gocarina/gocsv"

	"github.com/avocado-lion/JEMM-Carbon-Scalibility-Tool/model_problems/Adsorption1D"
	"github.com/avocado-lion/JEMM-Carbon-Scalibility-Tool/utils"
)

// SeriesRow is one timestep of the per-run summary series.
type SeriesRow struct {
	Step      int     `csv:"step"`
	Time      float64 `csv:"time_s"`
	Outlet    float64 `csv:"outlet_mol_m3"`
	TotalMass float64 `csv:"captured_kg"`
}

type Recorder struct {
	Dir string
}

func NewRecorder(dir string) *Recorder {
	return &Recorder{Dir: dir}
}

// Export writes the summary series plus both space-time tables into the
// recorder's directory: series.csv, c_history.csv, q_history.csv.
func (r *Recorder) Export(res *Adsorption1D.SimulationResult) error {
	if err := os.MkdirAll(r.Dir, 0o755); err != nil {
		return fmt.Errorf("recorder: %w", err)
	}
	if err := r.exportSeries(res); err != nil {
		return err
	}
	if err := r.exportTable("c_history.csv", res.CHistory); err != nil {
		return err
	}
	return r.exportTable("q_history.csv", res.QHistory)
}

func (r *Recorder) exportSeries(res *Adsorption1D.SimulationResult) error {
	rows := make([]*SeriesRow, res.Steps())
	for i := range rows {
		rows[i] = &SeriesRow{
			Step:      i,
			Time:      float64(i) * res.Dt,
			Outlet:    res.Outlet[i],
			TotalMass: res.TotalMass[i],
		}
	}
	f, err := os.Create(filepath.Join(r.Dir, "series.csv"))
	if err != nil {
		return fmt.Errorf("recorder: %w", err)
	}
	defer f.Close()
	if err = gocsv.MarshalFile(&rows, f); err != nil {
		return fmt.Errorf("recorder: %w", err)
	}
	return nil
}

// exportTable writes one space-time table, one row per timestep and one
// column per spatial node. Tables have run-dependent width, so they go
// through the plain csv writer rather than a struct mapping.
func (r *Recorder) exportTable(name string, m utils.Matrix) error {
	f, err := os.Create(filepath.Join(r.Dir, name))
	if err != nil {
		return fmt.Errorf("recorder: %w", err)
	}
	defer f.Close()
	var (
		w      = csv.NewWriter(f)
		nr, nc = m.Dims()
		record = make([]string, nc)
	)
	for j := 0; j < nc; j++ {
		record[j] = fmt.Sprintf("node_%d", j)
	}
	if err = w.Write(record); err != nil {
		return fmt.Errorf("recorder: %w", err)
	}
	for i := 0; i < nr; i++ {
		for j := 0; j < nc; j++ {
			record[j] = strconv.FormatFloat(m.At(i, j), 'g', -1, 64)
		}
		if err = w.Write(record); err != nil {
			return fmt.Errorf("recorder: %w", err)
		}
	}
	w.Flush()
	return w.Error()
}

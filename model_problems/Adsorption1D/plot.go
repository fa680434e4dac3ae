package Adsorption1D

import (
	"sync"
	"time"

	"github.com/notargets/avs/chart2d"
	utils2 "github.com/notargets/avs/utils"
)

type plotState struct {
	once     sync.Once
	chart    *chart2d.Chart2D
	colorMap *utils2.ColorMap
}

// Plot renders the current gas-phase concentration profile while the
// run is marching.
func (bed *AdsorptionBed) Plot(showGraph bool, graphDelay []time.Duration) {
	if !showGraph {
		return
	}
	bed.plotData.once.Do(func() {
		bed.plotData.chart = chart2d.NewChart2D(1280, 1024,
			float32(bed.X.Min()), float32(bed.X.Max()),
			0, float32(bed.cfg.InletConcentration))
		bed.plotData.colorMap = utils2.NewColorMap(-1, 1, 1)
		go bed.plotData.chart.Plot()
	})

	if err := bed.plotData.chart.AddSeries("C", bed.X.DataP(), bed.C.DataP(),
		chart2d.NoGlyph, chart2d.Solid, bed.plotData.colorMap.GetRGB(0)); err != nil {
		panic("unable to add graph series")
	}
	if len(graphDelay) != 0 {
		time.Sleep(graphDelay[0])
	}
}

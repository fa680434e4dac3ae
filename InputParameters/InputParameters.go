package InputParameters

import (
	"errors"
	"fmt"

	"github.com/ghodss/yaml"
)

var ErrCO2FractionRange = errors.New("InputParameters: CO2 fraction must lie in [0.09, 0.15]")

// CatalogEntry mirrors one bed catalog record when the input file
// overrides the built-in table.
type CatalogEntry struct {
	Name      string  `yaml:"Name"`
	Length    float64 `yaml:"Length"`
	Cylinders int     `yaml:"Cylinders"`
	MaxFlow   float64 `yaml:"MaxFlow"`
}

// Parameters obtained from the YAML input file
type CaptureParameters struct {
	Title               string         `yaml:"Title"`
	FlowRate            float64        `yaml:"FlowRate"`            // total flue gas flow, m³/s
	CO2Fraction         float64        `yaml:"CO2Fraction"`         // mole fraction, validated [0.09,0.15]
	InletConcentration  float64        `yaml:"InletConcentration"`  // total inlet gas concentration, mol/m³
	CaptureEfficiency   float64        `yaml:"CaptureEfficiency"`   // driving-force utilization, [0,1]
	EquilibriumCapacity float64        `yaml:"EquilibriumCapacity"` // q0 reference scale
	Dz                  float64        `yaml:"Dz"`                  // m
	Dt                  float64        `yaml:"Dt"`                  // s
	MaxSimTime          float64        `yaml:"MaxSimTime"`          // s
	TargetCycleTime     float64        `yaml:"TargetCycleTime"`     // s
	MaxGrowthIterations int            `yaml:"MaxGrowthIterations"`
	MaxParallelBeds     int            `yaml:"MaxParallelBeds"`
	Catalog             []CatalogEntry `yaml:"Catalog"`
}

// DefaultParameters carries the reference run conditions; file and flag
// values override fields individually.
func DefaultParameters() *CaptureParameters {
	return &CaptureParameters{
		Title:               "CO2 Capture Estimate",
		FlowRate:            0.168,
		CO2Fraction:         0.11,
		InletConcentration:  41.6,
		CaptureEfficiency:   0.9,
		EquilibriumCapacity: 0.1,
		Dz:                  0.05,
		Dt:                  0.05,
		MaxSimTime:          60000.0,
		TargetCycleTime:     7200.0,
		MaxGrowthIterations: 2,
		MaxParallelBeds:     10,
	}
}

func (cp *CaptureParameters) Parse(data []byte) error {
	return yaml.Unmarshal(data, cp)
}

func (cp *CaptureParameters) Validate() error {
	if cp.CO2Fraction < 0.09 || cp.CO2Fraction > 0.15 {
		return fmt.Errorf("%w: got %g", ErrCO2FractionRange, cp.CO2Fraction)
	}
	if cp.FlowRate <= 0 || cp.InletConcentration <= 0 {
		return fmt.Errorf("InputParameters: flow rate and inlet concentration must be positive")
	}
	if cp.CaptureEfficiency < 0 || cp.CaptureEfficiency > 1 {
		return fmt.Errorf("InputParameters: capture efficiency must lie in [0,1]")
	}
	return nil
}

func (cp *CaptureParameters) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", cp.Title)
	fmt.Printf("%8.5f\t\t= Flow Rate (m³/s)\n", cp.FlowRate)
	fmt.Printf("%8.5f\t\t= CO2 Mole Fraction\n", cp.CO2Fraction)
	fmt.Printf("%8.5f\t\t= Inlet Concentration (mol/m³)\n", cp.InletConcentration)
	fmt.Printf("%8.5f\t\t= Capture Efficiency\n", cp.CaptureEfficiency)
	fmt.Printf("%8.5f\t\t= Dz (m)\n", cp.Dz)
	fmt.Printf("%8.5f\t\t= Dt (s)\n", cp.Dt)
	fmt.Printf("%8.1f\t\t= Max Simulation Time (s)\n", cp.MaxSimTime)
	fmt.Printf("%8.1f\t\t= Target Cycle Time (s)\n", cp.TargetCycleTime)
	for _, entry := range cp.Catalog {
		fmt.Printf("Catalog[%s] = %v\n", entry.Name, entry)
	}
}

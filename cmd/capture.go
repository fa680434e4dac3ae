/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"io/ioutil"
	"os"
	"time"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"github.com/avocado-lion/JEMM-Carbon-Scalibility-Tool/InputParameters"
	"github.com/avocado-lion/JEMM-Carbon-Scalibility-Tool/model_problems/Adsorption1D"
	"github.com/avocado-lion/JEMM-Carbon-Scalibility-Tool/output"
	"github.com/avocado-lion/JEMM-Carbon-Scalibility-Tool/physics"
	"github.com/avocado-lion/JEMM-Carbon-Scalibility-Tool/sizing"
)

type CaptureRun struct {
	ParamsFile string
	CSVDir     string
	Graph      bool
	Delay      time.Duration
	Profile    bool
}

// CaptureCmd represents the capture command
var CaptureCmd = &cobra.Command{
	Use:   "capture",
	Short: "Size a CO2 capture bed train and simulate breakthrough",
	Long: `
Selects the parallel bed train for the requested flue gas flow,
estimates the overall mass-transfer coefficient, marches the adsorption
bed model to breakthrough and grows the train in series until the
target cycle time is met.

jemm capture -f 0.168 -c 0.11`,
	Run: func(cmd *cobra.Command, args []string) {
		cr := &CaptureRun{}
		cr.ParamsFile, _ = cmd.Flags().GetString("paramsFile")
		cr.CSVDir, _ = cmd.Flags().GetString("csvDir")
		cr.Graph, _ = cmd.Flags().GetBool("graph")
		dr, _ := cmd.Flags().GetInt("delay")
		cr.Delay = time.Duration(dr) * time.Millisecond
		cr.Profile, _ = cmd.Flags().GetBool("profile")

		params := processCaptureInput(cmd, cr)
		if cr.Profile {
			defer profile.Start(profile.CPUProfile).Stop()
		}
		if err := RunCapture(cr, params); err != nil {
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(CaptureCmd)
	CaptureCmd.Flags().StringP("paramsFile", "I", "", "YAML file for run parameters like:\n\t- FlowRate\n\t- CO2Fraction\n\t- TargetCycleTime")
	CaptureCmd.Flags().Float64P("flowRate", "f", 0.168, "total flue gas flow rate, m³/s")
	CaptureCmd.Flags().Float64P("co2", "c", 0.11, "CO2 mole fraction, valid range 0.09-0.15")
	CaptureCmd.Flags().StringP("csvDir", "o", "", "directory for CSV export of the series and space-time tables")
	CaptureCmd.Flags().BoolP("graph", "g", false, "display the concentration profile while computing the solution")
	CaptureCmd.Flags().IntP("delay", "d", 0, "milliseconds of delay for plotting")
	CaptureCmd.Flags().Bool("profile", false, "write a CPU profile of the run")
}

func processCaptureInput(cmd *cobra.Command, cr *CaptureRun) (params *InputParameters.CaptureParameters) {
	var err error
	params = InputParameters.DefaultParameters()
	if len(cr.ParamsFile) != 0 {
		var data []byte
		if data, err = ioutil.ReadFile(cr.ParamsFile); err != nil {
			panic(err)
		}
		if err = params.Parse(data); err != nil {
			panic(err)
		}
	}
	if cmd.Flags().Changed("flowRate") {
		params.FlowRate, _ = cmd.Flags().GetFloat64("flowRate")
	}
	if cmd.Flags().Changed("co2") {
		params.CO2Fraction, _ = cmd.Flags().GetFloat64("co2")
	}
	if err = params.Validate(); err != nil {
		fmt.Printf("error: %s\n", err.Error())
		exampleFile := `
########################################
Title: "Boiler Retrofit"
FlowRate: 0.168
CO2Fraction: 0.11
InletConcentration: 41.6
CaptureEfficiency: 0.9
TargetCycleTime: 7200
########################################
`
		fmt.Printf("Example File:%s\n", exampleFile)
		os.Exit(1)
	}
	return
}

// RunCapture drives the whole estimation chain: parallel train
// selection, K_L estimation, breakthrough simulation and series sizing.
func RunCapture(cr *CaptureRun, params *InputParameters.CaptureParameters) error {
	params.Print()

	catalog := sizing.DefaultCatalog()
	if len(params.Catalog) != 0 {
		catalog = make([]sizing.BedType, 0, len(params.Catalog))
		for _, e := range params.Catalog {
			catalog = append(catalog, sizing.BedType{
				Name: e.Name, Length: e.Length, Cylinders: e.Cylinders, MaxFlow: e.MaxFlow,
			})
		}
	}
	sel, err := sizing.SelectParallel(params.FlowRate, catalog, params.MaxParallelBeds)
	if err != nil {
		return err
	}
	fmt.Printf("selected %d parallel [%s] bed(s), per bed flow = %8.5f m³/s\n",
		sel.ParallelCount, sel.Bed.Name, sel.PerBedFlow)

	bedCfg := Adsorption1D.DefaultBedConfig()
	bedCfg.Length = sel.Bed.Length
	bedCfg.Cylinders = sel.Bed.Cylinders
	bedCfg.FlowRate = sel.PerBedFlow
	bedCfg.Dz = params.Dz
	bedCfg.Dt = params.Dt
	bedCfg.MaxSimTime = params.MaxSimTime
	bedCfg.InletConcentration = params.CO2Fraction * params.InletConcentration
	bedCfg.TotalConcentration = params.InletConcentration
	bedCfg.CaptureEfficiency = params.CaptureEfficiency

	kl, err := physics.CalcKL(physics.KLInput{
		SuperficialVelocity: bedCfg.SuperficialVelocity(),
		EquilibriumCapacity: params.EquilibriumCapacity,
		MoleFraction:        params.CO2Fraction,
		Gas:                 physics.DefaultFlueGas(),
		Material:            physics.DefaultMaterial(),
	})
	if err != nil {
		return err
	}
	bedCfg.KL = kl
	fmt.Printf("K_L = %12.6e 1/s\n", kl)

	bed, err := Adsorption1D.NewAdsorptionBed(bedCfg)
	if err != nil {
		return err
	}
	sr, err := sizing.Optimize(bed, sel.Bed.Length, sizing.OptimizerConfig{
		TargetCycleTime:    params.TargetCycleTime,
		MaxIterations:      params.MaxGrowthIterations,
		TotalConcentration: params.InletConcentration,
		Graph:              cr.Graph,
		GraphDelay:         cr.Delay,
	})
	if err != nil {
		return err
	}

	rec := sizing.NewRecommendation(sel, sr, kl)
	rec.Print()

	if len(cr.CSVDir) != 0 {
		if err = output.NewRecorder(cr.CSVDir).Export(sr.Result); err != nil {
			return err
		}
		fmt.Printf("results written to %s\n", cr.CSVDir)
	}
	return nil
}

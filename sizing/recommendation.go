package sizing

import (
	"fmt"

	"github.com/avocado-lion/JEMM-Carbon-Scalibility-Tool/model_problems/Adsorption1D"
)

type AdvisoryKind uint8

const (
	AdvisoryColdRestart AdvisoryKind = iota
	AdvisoryExpertReview
	AdvisoryNonConvergence
)

var advisoryNames = []string{
	"ColdRestart",
	"ExpertReview",
	"NonConvergence",
}

func (k AdvisoryKind) String() string { return advisoryNames[k] }

// Advisory is a non-fatal flag on an otherwise usable result.
type Advisory struct {
	Kind    AdvisoryKind
	Message string
}

// Recommendation is the structured record handed to downstream
// consumers: the selected bed type and train layout plus the advisories
// accumulated while sizing.
type Recommendation struct {
	BedType       string
	ParallelCount int
	SeriesCount   int
	PerBedFlow    float64 // m³/s
	KL            float64 // 1/s
	Breakthrough  Adsorption1D.BreakthroughTime
	Advisories    []Advisory
}

func NewRecommendation(sel Selection, sr *SizingResult, kl float64) Recommendation {
	return Recommendation{
		BedType:       sel.Bed.Name,
		ParallelCount: sel.ParallelCount,
		SeriesCount:   sr.SeriesCount,
		PerBedFlow:    sel.PerBedFlow,
		KL:            kl,
		Breakthrough:  sr.Breakthrough,
		Advisories:    sr.Advisories,
	}
}

func (r Recommendation) Print() {
	fmt.Printf("[%s]\t\t\t= Bed Type\n", r.BedType)
	fmt.Printf("[%d]\t\t\t\t= Parallel Beds\n", r.ParallelCount)
	fmt.Printf("[%d]\t\t\t\t= Series Beds\n", r.SeriesCount)
	fmt.Printf("%8.5f\t\t= Per Bed Flow (m³/s)\n", r.PerBedFlow)
	fmt.Printf("%12.6e\t= K_L (1/s)\n", r.KL)
	fmt.Printf("[%s]\t\t= Breakthrough Time\n", r.Breakthrough)
	for _, a := range r.Advisories {
		fmt.Printf("advisory[%s] = %s\n", a.Kind, a.Message)
	}
}

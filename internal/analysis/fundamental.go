package analysis

import (
	"math"

	"github.com/wonny/robosector/internal/contracts"
)

// Grader classifies valuation metrics and computes growth figures
type Grader struct {
	cfg Config
}

// NewGrader creates a fundamental grader with the given bounds
func NewGrader(cfg Config) *Grader {
	return &Grader{cfg: cfg}
}

// Grade builds the fundamental snapshot from the latest valuation point
// and the annual financial history. Both inputs may be nil or empty;
// absent metrics simply stay nil and grade UNDETERMINED.
func (g *Grader) Grade(fundamentals *contracts.FundamentalSeries, financials *contracts.FinancialSeries) contracts.FundamentalSnapshot {
	snap := contracts.FundamentalSnapshot{
		PERGrade: contracts.GradeUndetermined,
		PBRGrade: contracts.GradeUndetermined,
		Overall:  contracts.GradeUndetermined,
	}

	if fundamentals != nil {
		if latest := fundamentals.Latest(); latest != nil {
			if latest.PER > 0 {
				per := latest.PER
				snap.PER = &per
				snap.PERGrade = g.gradePER(per)
			}
			if latest.PBR > 0 {
				pbr := latest.PBR
				snap.PBR = &pbr
				snap.PBRGrade = g.gradePBR(pbr)
			}
			if latest.EPS != 0 {
				eps := latest.EPS
				snap.EPS = &eps
			}
			if latest.BPS != 0 {
				bps := latest.BPS
				snap.BPS = &bps
			}
			if latest.DIV != 0 {
				div := latest.DIV
				snap.DividendYield = &div
			}
		}
	}

	snap.Overall = overallGrade(snap.PERGrade, snap.PBRGrade)

	if financials != nil {
		g.growth(&snap, financials.Periods)
	}

	return snap
}

func (g *Grader) gradePER(per float64) contracts.ValuationGrade {
	switch {
	case per < g.cfg.PERUndervalued:
		return contracts.GradeUndervalued
	case per > g.cfg.PEROvervalued:
		return contracts.GradeOvervalued
	default:
		return contracts.GradeFair
	}
}

func (g *Grader) gradePBR(pbr float64) contracts.ValuationGrade {
	switch {
	case pbr < g.cfg.PBRUndervalued:
		return contracts.GradeUndervalued
	case pbr > g.cfg.PBROvervalued:
		return contracts.GradeOvervalued
	default:
		return contracts.GradeFair
	}
}

// overallGrade combines the individual metric grades: no metrics means
// UNDETERMINED, unanimous verdicts carry over, anything mixed is FAIR
func overallGrade(grades ...contracts.ValuationGrade) contracts.ValuationGrade {
	var present []contracts.ValuationGrade
	for _, g := range grades {
		if g != contracts.GradeUndetermined {
			present = append(present, g)
		}
	}
	if len(present) == 0 {
		return contracts.GradeUndetermined
	}

	allUnder, allOver := true, true
	for _, g := range present {
		if g != contracts.GradeUndervalued {
			allUnder = false
		}
		if g != contracts.GradeOvervalued {
			allOver = false
		}
	}
	switch {
	case allUnder:
		return contracts.GradeUndervalued
	case allOver:
		return contracts.GradeOvervalued
	default:
		return contracts.GradeFair
	}
}

// growth fills YoY and 3-year CAGR figures from annual periods
func (g *Grader) growth(snap *contracts.FundamentalSnapshot, periods []contracts.FinancialPeriod) {
	n := len(periods)
	if n >= 2 {
		cur, prev := periods[n-1], periods[n-2]
		if prev.Revenue != 0 {
			v := (float64(cur.Revenue) - float64(prev.Revenue)) / float64(prev.Revenue) * 100
			snap.RevenueGrowthYoY = &v
		}
		if prev.OperatingProfit != 0 {
			v := (float64(cur.OperatingProfit) - float64(prev.OperatingProfit)) / float64(prev.OperatingProfit) * 100
			snap.OperatingProfitGrowthYoY = &v
		}
	}

	// 3년 CAGR: 4개 연도 구간의 양 끝이 모두 양수일 때만
	if n >= 4 {
		start := periods[n-4].Revenue
		end := periods[n-1].Revenue
		if start > 0 && end > 0 {
			v := (math.Pow(float64(end)/float64(start), 1.0/3.0) - 1) * 100
			snap.RevenueCAGR3Y = &v
		}
	}
}

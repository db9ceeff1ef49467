package flow

import (
	"sort"
	"time"

	"github.com/wonny/robosector/internal/contracts"
)

// sectorThresholdMultiple scales the per-stock threshold up to sector level
const sectorThresholdMultiple = 10

// topN bounds the leaderboard sizes
const topN = 5

// AnalyzeSector aggregates per-stock flow results into the sector view.
// An empty input produces a zero summary with empty leaderboards.
func (a *Analyzer) AnalyzeSector(results []*contracts.FlowAnalysisResult, asOf time.Time) contracts.SectorFlowSummary {
	summary := contracts.SectorFlowSummary{
		AnalyzedAt:           asOf,
		Signal:               contracts.SectorNeutral,
		TopForeignBuyers:     []contracts.FlowRankedStock{},
		TopInstitutionBuyers: []contracts.FlowRankedStock{},
		FlowLeaders:          []contracts.FlowRankedStock{},
	}
	if len(results) == 0 {
		return summary
	}

	var scoreSum int
	for _, r := range results {
		summary.ForeignNet20D += r.Foreign20D
		summary.InstitutionNet20D += r.Institution20D
		scoreSum += r.Score

		switch r.Signal {
		case contracts.FlowAccumulation, contracts.FlowStrongAccumulation:
			summary.AccumulationCount++
		case contracts.FlowDistribution, contracts.FlowStrongDistribution:
			summary.DistributionCount++
		}
	}
	summary.AvgFlowScore = float64(scoreSum) / float64(len(results))

	summary.Signal = a.sectorSignal(summary.ForeignNet20D, summary.InstitutionNet20D)

	summary.TopForeignBuyers = leaderboard(results, func(x, y *contracts.FlowAnalysisResult) bool {
		return x.Foreign20D > y.Foreign20D
	})
	summary.TopInstitutionBuyers = leaderboard(results, func(x, y *contracts.FlowAnalysisResult) bool {
		return x.Institution20D > y.Institution20D
	})

	// 쌍끌이 매수: 외국인과 기관이 20일 기준 동반 순매수한 종목
	var leaders []*contracts.FlowAnalysisResult
	for _, r := range results {
		if r.Foreign20D > 0 && r.Institution20D > 0 {
			leaders = append(leaders, r)
		}
	}
	summary.FlowLeaders = leaderboard(leaders, func(x, y *contracts.FlowAnalysisResult) bool {
		return x.Score > y.Score
	})

	return summary
}

// sectorSignal classifies the 20-day sector totals; thresholds are the
// per-stock thresholds scaled by the sector multiple
func (a *Analyzer) sectorSignal(foreign, institution int64) contracts.SectorFlowSignal {
	foreignThr := a.cfg.ForeignBuyThreshold * sectorThresholdMultiple
	instThr := a.cfg.InstitutionBuyThreshold * sectorThresholdMultiple

	switch {
	case foreign > foreignThr && institution > instThr:
		return contracts.SectorAccumulation
	case foreign < -foreignThr && institution < -instThr:
		return contracts.SectorDistribution
	case foreign > foreignThr:
		return contracts.SectorForeignInflow
	case institution > instThr:
		return contracts.SectorInstitutionInflow
	case foreign < -foreignThr:
		return contracts.SectorForeignOutflow
	case institution < -instThr:
		return contracts.SectorInstitutionOutflow
	default:
		return contracts.SectorNeutral
	}
}

// leaderboard sorts a copy of the results and takes the top rows
func leaderboard(results []*contracts.FlowAnalysisResult, less func(x, y *contracts.FlowAnalysisResult) bool) []contracts.FlowRankedStock {
	sorted := make([]*contracts.FlowAnalysisResult, len(results))
	copy(sorted, results)
	sort.SliceStable(sorted, func(i, j int) bool {
		return less(sorted[i], sorted[j])
	})

	n := topN
	if len(sorted) < n {
		n = len(sorted)
	}

	rows := make([]contracts.FlowRankedStock, 0, n)
	for _, r := range sorted[:n] {
		rows = append(rows, contracts.FlowRankedStock{
			Ticker:         r.Ticker,
			Name:           r.Name,
			Foreign20D:     r.Foreign20D,
			Institution20D: r.Institution20D,
			Score:          r.Score,
			Signal:         r.Signal,
		})
	}
	return rows
}

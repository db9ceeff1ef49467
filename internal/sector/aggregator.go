package sector

import (
	"sort"
	"time"

	"github.com/wonny/robosector/internal/contracts"
	"github.com/wonny/robosector/pkg/logger"
)

// topN bounds the pick and watchlist sizes
const topN = 5

// Watchlist score bounds: HOLD territory worth monitoring
const (
	watchlistMin = 40
	watchlistMax = 70 // exclusive
)

// Aggregator rolls per-stock results up into the sector summary
type Aggregator struct {
	log *logger.Logger
}

// NewAggregator creates a sector aggregator
func NewAggregator(log *logger.Logger) *Aggregator {
	return &Aggregator{log: log}
}

// Summarize counts ratings, averages scores and returns, ranks the
// stocks by score and selects top picks and the watchlist. An empty
// input produces a valid zero summary.
func (a *Aggregator) Summarize(results []*contracts.StockAnalysisResult, asOf time.Time) contracts.SectorSummary {
	summary := contracts.SectorSummary{
		AnalyzedAt: asOf,
		StockCount: len(results),
		Rankings:   []contracts.RankedStock{},
		TopPicks:   []contracts.RankedStock{},
		Watchlist:  []contracts.RankedStock{},
	}
	if len(results) == 0 {
		return summary
	}

	var scoreSum int
	var returnSum float64
	var returnCount int
	for _, r := range results {
		switch r.Rating {
		case contracts.RatingBuy:
			summary.BuyCount++
		case contracts.RatingHold:
			summary.HoldCount++
		case contracts.RatingSell:
			summary.SellCount++
		}

		scoreSum += r.Score

		// 1개월 수익률이 없는(0) 종목은 평균에서 제외
		if ret := r.Return1M(); ret != 0 {
			returnSum += ret
			returnCount++
		}

		if r.MarketCap != nil {
			summary.TotalMarketCap += *r.MarketCap
		}
	}

	summary.AvgScore = float64(scoreSum) / float64(len(results))
	if returnCount > 0 {
		summary.AvgReturn1M = returnSum / float64(returnCount)
	}

	summary.Rankings = rank(results)
	summary.TopPicks = head(summary.Rankings, topN)
	summary.Watchlist = watchlist(summary.Rankings)

	a.log.WithFields(map[string]interface{}{
		"stocks":    summary.StockCount,
		"buy":       summary.BuyCount,
		"hold":      summary.HoldCount,
		"sell":      summary.SellCount,
		"avg_score": summary.AvgScore,
	}).Info("sector summarized")

	return summary
}

// rank sorts a copy of the results by score descending and assigns
// 1-based ranks; the sort is stable so equal scores keep input order
func rank(results []*contracts.StockAnalysisResult) []contracts.RankedStock {
	sorted := make([]*contracts.StockAnalysisResult, len(results))
	copy(sorted, results)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Score > sorted[j].Score
	})

	ranked := make([]contracts.RankedStock, len(sorted))
	for i, r := range sorted {
		ranked[i] = contracts.RankedStock{
			Rank:     i + 1,
			Ticker:   r.Ticker,
			Name:     r.Name,
			Score:    r.Score,
			Rating:   r.Rating,
			Return1M: r.Return1M(),
		}
	}
	return ranked
}

// watchlist takes the first rows in HOLD territory from the ranked list
func watchlist(ranked []contracts.RankedStock) []contracts.RankedStock {
	out := []contracts.RankedStock{}
	for _, r := range ranked {
		if r.Score >= watchlistMin && r.Score < watchlistMax {
			out = append(out, r)
			if len(out) == topN {
				break
			}
		}
	}
	return out
}

func head(ranked []contracts.RankedStock, n int) []contracts.RankedStock {
	if len(ranked) < n {
		n = len(ranked)
	}
	out := make([]contracts.RankedStock, n)
	copy(out, ranked[:n])
	return out
}

package analysis

import (
	"fmt"
	"time"

	"github.com/wonny/robosector/internal/contracts"
	"github.com/wonny/robosector/pkg/logger"
)

// Analyzer produces the full per-stock analysis result
type Analyzer struct {
	engine *Engine
	grader *Grader
	scorer *Scorer
	log    *logger.Logger
}

// NewAnalyzer wires the engine, grader and scorer together
func NewAnalyzer(cfg Config, log *logger.Logger) *Analyzer {
	return &Analyzer{
		engine: NewEngine(cfg),
		grader: NewGrader(cfg),
		scorer: NewScorer(),
		log:    log,
	}
}

// AnalyzeStock runs the technical and fundamental analysis for one
// bundle and assembles the immutable result. asOf anchors the YTD
// return and is stamped on the result.
func (a *Analyzer) AnalyzeStock(bundle *contracts.StockBundle, asOf time.Time) (*contracts.StockAnalysisResult, error) {
	if bundle.Prices == nil || bundle.Prices.Len() == 0 {
		return nil, fmt.Errorf("no price history for %s", bundle.Ticker)
	}

	tech, err := a.engine.Snapshot(bundle.Prices, asOf)
	if err != nil {
		return nil, fmt.Errorf("technical analysis failed for %s: %w", bundle.Ticker, err)
	}

	fund := a.grader.Grade(bundle.Fundamentals, bundle.Financials)

	score := a.scorer.Score(tech, fund)
	rating := RatingFor(score)

	result := &contracts.StockAnalysisResult{
		Ticker:       bundle.Ticker,
		Name:         bundle.Name,
		Category:     bundle.Category,
		Market:       bundle.Market,
		AnalyzedAt:   asOf,
		CurrentPrice: bundle.Prices.Points[bundle.Prices.Len()-1].Close,
		MarketCap:    bundle.MarketCap,
		Technical:    tech,
		Fundamental:  fund,
		Score:        score,
		Rating:       rating,
	}

	a.log.WithFields(map[string]interface{}{
		"ticker": bundle.Ticker,
		"score":  score,
		"rating": string(rating),
		"trend":  string(tech.Trend),
	}).Debug("stock analyzed")

	return result, nil
}

package flow

import (
	"github.com/wonny/robosector/internal/contracts"
	"github.com/wonny/robosector/pkg/logger"
)

// Analyzer classifies per-stock investor flow (수급)
type Analyzer struct {
	cfg Config
	log *logger.Logger
}

// NewAnalyzer creates a flow analyzer with the given thresholds
func NewAnalyzer(cfg Config, log *logger.Logger) *Analyzer {
	return &Analyzer{cfg: cfg, log: log}
}

// sumLast sums the extracted values over the last n points; shorter
// histories sum what exists
func sumLast(points []contracts.FlowPoint, n int, value func(contracts.FlowPoint) int64) int64 {
	start := len(points) - n
	if start < 0 {
		start = 0
	}
	var sum int64
	for _, p := range points[start:] {
		sum += value(p)
	}
	return sum
}

// contribution scores one window against its threshold: decisive moves
// beyond the threshold count ±25, same-signed moves below it ±10
func contribution(v, threshold int64) int {
	switch {
	case v > threshold:
		return 25
	case v > 0:
		return 10
	case v < -threshold:
		return -25
	case v < 0:
		return -10
	default:
		return 0
	}
}

// AnalyzeStock computes rolling net-buy windows, the flow score and
// signal, and the flow momentum for one stock. An empty series yields
// zero sums and a NEUTRAL signal; it never fails.
func (a *Analyzer) AnalyzeStock(ticker, name string, series *contracts.FlowSeries) *contracts.FlowAnalysisResult {
	var points []contracts.FlowPoint
	if series != nil {
		points = series.Points
	}

	foreignNet := func(p contracts.FlowPoint) int64 { return p.ForeignNet }
	instNet := func(p contracts.FlowPoint) int64 { return p.InstitutionNet }
	indivNet := func(p contracts.FlowPoint) int64 { return p.IndividualNet }

	result := &contracts.FlowAnalysisResult{
		Ticker:         ticker,
		Name:           name,
		Foreign1D:      sumLast(points, 1, foreignNet),
		Foreign5D:      sumLast(points, 5, foreignNet),
		Foreign20D:     sumLast(points, 20, foreignNet),
		Institution1D:  sumLast(points, 1, instNet),
		Institution5D:  sumLast(points, 5, instNet),
		Institution20D: sumLast(points, 20, instNet),
		Individual1D:   sumLast(points, 1, indivNet),
		Individual5D:   sumLast(points, 5, indivNet),
		Individual20D:  sumLast(points, 20, indivNet),
	}

	// 20일 창은 5일 창의 3배 기준으로 평가
	result.Score = contribution(result.Foreign5D, a.cfg.ForeignBuyThreshold) +
		contribution(result.Foreign20D, a.cfg.ForeignBuyThreshold*3) +
		contribution(result.Institution5D, a.cfg.InstitutionBuyThreshold) +
		contribution(result.Institution20D, a.cfg.InstitutionBuyThreshold*3)

	result.Signal = classify(result)
	result.ForeignMomentum = Momentum(points, foreignNet)
	result.InstitutionMomentum = Momentum(points, instNet)

	return result
}

// classify maps the flow score and 5-day windows onto the signal ladder
func classify(r *contracts.FlowAnalysisResult) contracts.FlowSignal {
	switch {
	case r.Score >= 50:
		return contracts.FlowStrongAccumulation
	case r.Score >= 20:
		return contracts.FlowAccumulation
	case r.Score <= -50:
		return contracts.FlowStrongDistribution
	case r.Score <= -20:
		return contracts.FlowDistribution
	case r.Foreign5D > 0 && r.Institution5D < 0:
		return contracts.FlowForeignLed
	case r.Foreign5D < 0 && r.Institution5D > 0:
		return contracts.FlowInstitutionLed
	default:
		return contracts.FlowNeutral
	}
}

package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/wonny/robosector/internal/analysis"
	"github.com/wonny/robosector/internal/contracts"
	"github.com/wonny/robosector/internal/flow"
	"github.com/wonny/robosector/internal/sector"
	"github.com/wonny/robosector/internal/universe"
	"github.com/wonny/robosector/pkg/logger"
	"github.com/wonny/robosector/pkg/redis"
)

// financialYears is how many annual periods are loaded per stock; the
// growth metrics need at most a 4-period window
const financialYears = 5

// Repositories bundles the read-side data dependencies
type Repositories struct {
	Prices       contracts.PriceRepository
	Fundamentals contracts.FundamentalRepository
	Financials   contracts.FinancialRepository
	Flows        contracts.InvestorFlowRepository
	Masters      contracts.StockMasterRepository
}

// Runner orchestrates one full analysis run: universe -> bundles ->
// per-stock analysis -> sector aggregation -> cached report
type Runner struct {
	repos        Repositories
	universe     *universe.Universe
	analyzer     *analysis.Analyzer
	flowAnalyzer *flow.Analyzer
	aggregator   *sector.Aggregator
	cache        *redis.Cache
	cacheTTL     time.Duration
	lookbackDays int
	log          *logger.Logger
}

// Options configures a Runner
type Options struct {
	Repos        Repositories
	Universe     *universe.Universe
	Analysis     analysis.Config
	Flow         flow.Config
	Cache        *redis.Cache // nil disables report caching
	CacheTTL     time.Duration
	LookbackDays int
}

// NewRunner wires the analyzers and aggregators together
func NewRunner(opts Options, log *logger.Logger) *Runner {
	return &Runner{
		repos:        opts.Repos,
		universe:     opts.Universe,
		analyzer:     analysis.NewAnalyzer(opts.Analysis, log),
		flowAnalyzer: flow.NewAnalyzer(opts.Flow, log),
		aggregator:   sector.NewAggregator(log),
		cache:        opts.Cache,
		cacheTTL:     opts.CacheTTL,
		lookbackDays: opts.LookbackDays,
		log:          log,
	}
}

// Run analyzes every stock in the universe and assembles the sector
// report. Per-stock failures are logged and skipped; the batch always
// completes.
func (r *Runner) Run(ctx context.Context) (*contracts.SectorReport, error) {
	if r.universe == nil || r.universe.Size() == 0 {
		return nil, fmt.Errorf("universe is empty")
	}

	asOf := time.Now()
	from := asOf.AddDate(0, 0, -r.lookbackDays)

	r.log.WithFields(map[string]interface{}{
		"stocks":   r.universe.Size(),
		"from":     from.Format("2006-01-02"),
		"lookback": r.lookbackDays,
	}).Info("analysis run started")

	var stocks []*contracts.StockAnalysisResult
	var flows []*contracts.FlowAnalysisResult

	for _, s := range r.universe.Stocks {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		bundle, err := r.loadBundle(ctx, s, from, asOf)
		if err != nil {
			r.log.WithError(err).WithField("ticker", s.Ticker).Warn("stock skipped: load failed")
			continue
		}

		// 수급 분석은 가격 분석과 독립된 스트림
		flows = append(flows, r.flowAnalyzer.AnalyzeStock(s.Ticker, s.Name, bundle.Flows))

		result, err := r.analyzer.AnalyzeStock(bundle, asOf)
		if err != nil {
			r.log.WithError(err).WithField("ticker", s.Ticker).Warn("stock skipped: analysis failed")
			continue
		}
		stocks = append(stocks, result)
	}

	report := &contracts.SectorReport{
		GeneratedAt: asOf,
		Sector:      r.aggregator.Summarize(stocks, asOf),
		Flow:        r.flowAnalyzer.AnalyzeSector(flows, asOf),
		Stocks:      stocks,
		Flows:       flows,
	}

	r.cacheReport(ctx, report)

	r.log.WithFields(map[string]interface{}{
		"analyzed": len(stocks),
		"skipped":  r.universe.Size() - len(stocks),
		"signal":   string(report.Flow.Signal),
	}).Info("analysis run finished")

	return report, nil
}

// loadBundle fetches everything the analyzers need for one stock.
// Price history is mandatory; the other series degrade to nil so a
// stock without fundamentals still gets a technical-only analysis.
func (r *Runner) loadBundle(ctx context.Context, s universe.Stock, from, to time.Time) (*contracts.StockBundle, error) {
	prices, err := r.repos.Prices.GetSeries(ctx, s.Ticker, from, to)
	if err != nil {
		return nil, fmt.Errorf("load prices: %w", err)
	}

	bundle := &contracts.StockBundle{
		Ticker:   s.Ticker,
		Name:     s.Name,
		Category: s.Category,
		Market:   s.Market,
		Prices:   prices,
	}

	if master, err := r.repos.Masters.Get(ctx, s.Ticker); err != nil {
		r.log.WithError(err).WithField("ticker", s.Ticker).Debug("no stock master row")
	} else {
		bundle.MarketCap = master.MarketCap
	}

	if fundamentals, err := r.repos.Fundamentals.GetSeries(ctx, s.Ticker, from, to); err != nil {
		r.log.WithError(err).WithField("ticker", s.Ticker).Debug("no fundamental history")
	} else {
		bundle.Fundamentals = fundamentals
	}

	if financials, err := r.repos.Financials.GetAnnual(ctx, s.Ticker, financialYears); err != nil {
		r.log.WithError(err).WithField("ticker", s.Ticker).Debug("no annual financials")
	} else {
		bundle.Financials = financials
	}

	if flows, err := r.repos.Flows.GetSeries(ctx, s.Ticker, from, to); err != nil {
		r.log.WithError(err).WithField("ticker", s.Ticker).Debug("no investor flow history")
	} else {
		bundle.Flows = flows
	}

	return bundle, nil
}

// cacheReport stores the report for the API to serve; cache failures
// are logged, never fatal
func (r *Runner) cacheReport(ctx context.Context, report *contracts.SectorReport) {
	if r.cache == nil {
		return
	}
	if err := r.cache.Set(ctx, redis.ReportKey(), report, r.cacheTTL); err != nil {
		r.log.WithError(err).Warn("failed to cache sector report")
	}

	// 이전 리포트에서 파생된 수급 뷰 제거 (종목별 뷰는 짧은 TTL로 만료)
	if err := r.cache.Delete(ctx, redis.FlowReportKey()); err != nil {
		r.log.WithError(err).Warn("failed to drop stale flow view")
	}
}

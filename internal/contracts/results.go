package contracts

import "time"

// ⭐ SSOT: 분석 결과 타입 정의는 여기서만

// TrendSignal classifies the moving-average alignment of a stock
type TrendSignal string

const (
	TrendStrongUp         TrendSignal = "STRONG_UP"
	TrendUp               TrendSignal = "UP"
	TrendWeakUp           TrendSignal = "WEAK_UP"
	TrendNeutral          TrendSignal = "NEUTRAL"
	TrendWeakDown         TrendSignal = "WEAK_DOWN"
	TrendDown             TrendSignal = "DOWN"
	TrendStrongDown       TrendSignal = "STRONG_DOWN"
	TrendInsufficientData TrendSignal = "INSUFFICIENT_DATA"
)

// Strength returns the signed trend strength (+3 .. -3)
func (t TrendSignal) Strength() int {
	switch t {
	case TrendStrongUp:
		return 3
	case TrendUp:
		return 2
	case TrendWeakUp:
		return 1
	case TrendWeakDown:
		return -1
	case TrendDown:
		return -2
	case TrendStrongDown:
		return -3
	default:
		return 0
	}
}

// VolumeSignal classifies recent volume versus the trailing baseline
type VolumeSignal string

const (
	VolumeSurge            VolumeSignal = "SURGE"
	VolumeIncrease         VolumeSignal = "INCREASE"
	VolumeAverage          VolumeSignal = "AVERAGE"
	VolumeDecrease         VolumeSignal = "DECREASE"
	VolumeInsufficientData VolumeSignal = "INSUFFICIENT_DATA"
)

// ValuationGrade classifies a stock's valuation
type ValuationGrade string

const (
	GradeUndervalued  ValuationGrade = "UNDERVALUED"
	GradeFair         ValuationGrade = "FAIR"
	GradeOvervalued   ValuationGrade = "OVERVALUED"
	GradeUndetermined ValuationGrade = "UNDETERMINED"
)

// Rating is the final investment call derived from the 0-100 score
type Rating string

const (
	RatingBuy  Rating = "BUY"
	RatingHold Rating = "HOLD"
	RatingSell Rating = "SELL"
)

// FlowSignal classifies per-stock investor flow (수급)
type FlowSignal string

const (
	FlowStrongAccumulation FlowSignal = "STRONG_ACCUMULATION"
	FlowAccumulation       FlowSignal = "ACCUMULATION"
	FlowStrongDistribution FlowSignal = "STRONG_DISTRIBUTION"
	FlowDistribution       FlowSignal = "DISTRIBUTION"
	FlowForeignLed         FlowSignal = "FOREIGN_LED"
	FlowInstitutionLed     FlowSignal = "INSTITUTION_LED"
	FlowNeutral            FlowSignal = "NEUTRAL"
)

// MomentumSignal classifies the direction of recent flow change
type MomentumSignal string

const (
	MomentumBuyAccelerating  MomentumSignal = "BUY_ACCELERATING"
	MomentumBuySlowing       MomentumSignal = "BUY_SLOWING"
	MomentumSellAccelerating MomentumSignal = "SELL_ACCELERATING"
	MomentumSellSlowing      MomentumSignal = "SELL_SLOWING"
	MomentumNeutral          MomentumSignal = "NEUTRAL"
)

// SectorFlowSignal classifies sector-level aggregate flow
type SectorFlowSignal string

const (
	SectorAccumulation       SectorFlowSignal = "SECTOR_ACCUMULATION"
	SectorDistribution       SectorFlowSignal = "SECTOR_DISTRIBUTION"
	SectorForeignInflow      SectorFlowSignal = "FOREIGN_INFLOW"
	SectorInstitutionInflow  SectorFlowSignal = "INSTITUTION_INFLOW"
	SectorForeignOutflow     SectorFlowSignal = "FOREIGN_OUTFLOW"
	SectorInstitutionOutflow SectorFlowSignal = "INSTITUTION_OUTFLOW"
	SectorNeutral            SectorFlowSignal = "NEUTRAL"
)

// BollingerSnapshot holds the latest Bollinger band values
type BollingerSnapshot struct {
	Upper     float64 `json:"upper"`
	Middle    float64 `json:"middle"`
	Lower     float64 `json:"lower"`
	Bandwidth float64 `json:"bandwidth"` // (upper-lower)/middle * 100
}

// MACDSnapshot holds the latest MACD values
type MACDSnapshot struct {
	MACD      float64 `json:"macd"`
	Signal    float64 `json:"signal"`
	Histogram float64 `json:"histogram"`
}

// TechnicalSnapshot holds the computed technical indicators for one stock
type TechnicalSnapshot struct {
	// Returns by window key: 1d, 1w, 1m, 3m, 6m, 1y, ytd.
	// A key is absent when the history is too short for its window.
	Returns map[string]float64 `json:"returns"`

	// Latest moving averages by window key: ma5, ma20, ma60, ma120.
	// A key is absent until the window is full.
	MA map[string]float64 `json:"ma"`

	RSI           *float64           `json:"rsi,omitempty"`
	Bollinger     *BollingerSnapshot `json:"bollinger,omitempty"`
	MACD          *MACDSnapshot      `json:"macd,omitempty"`
	Trend         TrendSignal        `json:"trend"`
	TrendStrength int                `json:"trend_strength"`
	VolumeRatio   float64            `json:"volume_ratio"`
	VolumeSignal  VolumeSignal       `json:"volume_signal"`
}

// FundamentalSnapshot holds valuation grades and growth metrics
type FundamentalSnapshot struct {
	PER           *float64 `json:"per,omitempty"`
	PBR           *float64 `json:"pbr,omitempty"`
	EPS           *float64 `json:"eps,omitempty"`
	BPS           *float64 `json:"bps,omitempty"`
	DividendYield *float64 `json:"dividend_yield,omitempty"`

	PERGrade ValuationGrade `json:"per_grade"`
	PBRGrade ValuationGrade `json:"pbr_grade"`
	Overall  ValuationGrade `json:"overall"`

	RevenueGrowthYoY         *float64 `json:"revenue_growth_yoy,omitempty"`          // %
	OperatingProfitGrowthYoY *float64 `json:"operating_profit_growth_yoy,omitempty"` // %
	RevenueCAGR3Y            *float64 `json:"revenue_cagr_3y,omitempty"`             // %
}

// StockAnalysisResult is the per-stock analysis output, built once per run
type StockAnalysisResult struct {
	Ticker       string              `json:"ticker"`
	Name         string              `json:"name"`
	Category     string              `json:"category"`
	Market       string              `json:"market"`
	AnalyzedAt   time.Time           `json:"analyzed_at"`
	CurrentPrice float64             `json:"current_price"`
	MarketCap    *int64              `json:"market_cap,omitempty"`
	Technical    TechnicalSnapshot   `json:"technical"`
	Fundamental  FundamentalSnapshot `json:"fundamental"`
	Score        int                 `json:"score"` // 0-100
	Rating       Rating              `json:"rating"`
}

// Return1M returns the 1-month return, or 0 when the history is too short
func (r *StockAnalysisResult) Return1M() float64 {
	return r.Technical.Returns["1m"]
}

// FlowMomentum describes the direction of recent flow change
type FlowMomentum struct {
	Recent5D     int64          `json:"recent_5d"` // 최근 5일 합산
	Prev5D       int64          `json:"prev_5d"`   // 직전 5일 합산
	Signal       MomentumSignal `json:"signal"`
	TurningPoint bool           `json:"turning_point"`
	Streak       int            `json:"streak"` // 부호 있는 연속일수
}

// FlowAnalysisResult is the per-stock investor-flow output
type FlowAnalysisResult struct {
	Ticker string `json:"ticker"`
	Name   string `json:"name"`

	Foreign1D      int64 `json:"foreign_1d"`
	Foreign5D      int64 `json:"foreign_5d"`
	Foreign20D     int64 `json:"foreign_20d"`
	Institution1D  int64 `json:"institution_1d"`
	Institution5D  int64 `json:"institution_5d"`
	Institution20D int64 `json:"institution_20d"`
	Individual1D   int64 `json:"individual_1d"`
	Individual5D   int64 `json:"individual_5d"`
	Individual20D  int64 `json:"individual_20d"`

	// 외국인 보유비중: 별도 데이터 소스가 필요해 현재는 항상 nil
	ForeignHoldingRatio *float64 `json:"foreign_holding_ratio,omitempty"`

	Score  int        `json:"score"` // -100 .. 100
	Signal FlowSignal `json:"signal"`

	// Momentum is tracked per investor class; netting the two classes
	// against each other would hide a one-sided streak
	ForeignMomentum     FlowMomentum `json:"foreign_momentum"`
	InstitutionMomentum FlowMomentum `json:"institution_momentum"`
}

// RankedStock is one row of the sector ranking
type RankedStock struct {
	Rank     int     `json:"rank"`
	Ticker   string  `json:"ticker"`
	Name     string  `json:"name"`
	Score    int     `json:"score"`
	Rating   Rating  `json:"rating"`
	Return1M float64 `json:"return_1m"`
}

// SectorSummary aggregates the per-stock results for the whole sector
type SectorSummary struct {
	AnalyzedAt     time.Time     `json:"analyzed_at"`
	StockCount     int           `json:"stock_count"`
	BuyCount       int           `json:"buy_count"`
	HoldCount      int           `json:"hold_count"`
	SellCount      int           `json:"sell_count"`
	AvgScore       float64       `json:"avg_score"`
	AvgReturn1M    float64       `json:"avg_return_1m"`
	TotalMarketCap int64         `json:"total_market_cap"`
	Rankings       []RankedStock `json:"rankings"`
	TopPicks       []RankedStock `json:"top_picks"`
	Watchlist      []RankedStock `json:"watchlist"`
}

// FlowRankedStock is one row of a sector flow leaderboard
type FlowRankedStock struct {
	Ticker         string     `json:"ticker"`
	Name           string     `json:"name"`
	Foreign20D     int64      `json:"foreign_20d"`
	Institution20D int64      `json:"institution_20d"`
	Score          int        `json:"score"`
	Signal         FlowSignal `json:"signal"`
}

// SectorFlowSummary aggregates investor flow across the sector
type SectorFlowSummary struct {
	AnalyzedAt           time.Time         `json:"analyzed_at"`
	ForeignNet20D        int64             `json:"foreign_net_20d"`
	InstitutionNet20D    int64             `json:"institution_net_20d"`
	AvgFlowScore         float64           `json:"avg_flow_score"`
	AccumulationCount    int               `json:"accumulation_count"`
	DistributionCount    int               `json:"distribution_count"`
	Signal               SectorFlowSignal  `json:"signal"`
	TopForeignBuyers     []FlowRankedStock `json:"top_foreign_buyers"`
	TopInstitutionBuyers []FlowRankedStock `json:"top_institution_buyers"`
	FlowLeaders          []FlowRankedStock `json:"flow_leaders"`
}

// SectorReport is the top-level output of one analysis run
type SectorReport struct {
	GeneratedAt time.Time              `json:"generated_at"`
	Sector      SectorSummary          `json:"sector"`
	Flow        SectorFlowSummary      `json:"flow"`
	Stocks      []*StockAnalysisResult `json:"stocks"`
	Flows       []*FlowAnalysisResult  `json:"flows"`
}

// Stock returns the analysis result for a ticker, or nil
func (r *SectorReport) Stock(ticker string) *StockAnalysisResult {
	for _, s := range r.Stocks {
		if s.Ticker == ticker {
			return s
		}
	}
	return nil
}

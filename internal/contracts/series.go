package contracts

import (
	"fmt"
	"time"
)

// ⭐ SSOT: 시계열 입력 타입 정의는 여기서만

// PricePoint represents one daily OHLCV bar
type PricePoint struct {
	Date   time.Time `json:"date"`
	Open   float64   `json:"open"`
	High   float64   `json:"high"`
	Low    float64   `json:"low"`
	Close  float64   `json:"close"`
	Volume int64     `json:"volume"`
}

// PriceSeries is a daily price history, ascending by date
type PriceSeries struct {
	Ticker string       `json:"ticker"`
	Points []PricePoint `json:"points"`
}

// Len returns the number of observations
func (s *PriceSeries) Len() int {
	return len(s.Points)
}

// Closes returns the close prices in series order
func (s *PriceSeries) Closes() []float64 {
	closes := make([]float64, len(s.Points))
	for i, p := range s.Points {
		closes[i] = p.Close
	}
	return closes
}

// Volumes returns the traded volumes in series order
func (s *PriceSeries) Volumes() []int64 {
	volumes := make([]int64, len(s.Points))
	for i, p := range s.Points {
		volumes[i] = p.Volume
	}
	return volumes
}

// Validate checks that dates are strictly increasing
func (s *PriceSeries) Validate() error {
	for i := 1; i < len(s.Points); i++ {
		if !s.Points[i].Date.After(s.Points[i-1].Date) {
			return fmt.Errorf("price series for %s out of order at index %d (%s then %s)",
				s.Ticker, i,
				s.Points[i-1].Date.Format("2006-01-02"),
				s.Points[i].Date.Format("2006-01-02"))
		}
	}
	return nil
}

// FundamentalPoint represents daily per-share valuation metrics.
// A zero value means the field was absent on that day.
type FundamentalPoint struct {
	Date time.Time `json:"date"`
	BPS  float64   `json:"bps"`
	PER  float64   `json:"per"`
	PBR  float64   `json:"pbr"`
	EPS  float64   `json:"eps"`
	DIV  float64   `json:"div"` // 배당수익률 (%)
	DPS  float64   `json:"dps"`
}

// FundamentalSeries is a daily valuation history, ascending by date
type FundamentalSeries struct {
	Ticker string             `json:"ticker"`
	Points []FundamentalPoint `json:"points"`
}

// Latest returns the most recent point, or nil when empty
func (s *FundamentalSeries) Latest() *FundamentalPoint {
	if len(s.Points) == 0 {
		return nil
	}
	return &s.Points[len(s.Points)-1]
}

// FinancialPeriod represents one annual income statement summary (KRW)
type FinancialPeriod struct {
	Year            int   `json:"year"`
	Revenue         int64 `json:"revenue"`          // 매출액
	OperatingProfit int64 `json:"operating_profit"` // 영업이익
	NetIncome       int64 `json:"net_income"`       // 당기순이익
}

// FinancialSeries holds annual periods, ascending by year
type FinancialSeries struct {
	Ticker  string            `json:"ticker"`
	Periods []FinancialPeriod `json:"periods"`
}

// FlowPoint represents one day of investor net buying (수급), signed KRW
type FlowPoint struct {
	Date           time.Time `json:"date"`
	ForeignNet     int64     `json:"foreign_net"`     // 외국인 순매수
	InstitutionNet int64     `json:"institution_net"` // 기관 순매수
	IndividualNet  int64     `json:"individual_net"`  // 개인 순매수
	CorpNet        int64     `json:"corp_net"`        // 기타법인 순매수
}

// FlowSeries is a daily investor-flow history, ascending by date
type FlowSeries struct {
	Ticker string      `json:"ticker"`
	Points []FlowPoint `json:"points"`
}

// Len returns the number of observations
func (s *FlowSeries) Len() int {
	return len(s.Points)
}

// StockMaster represents the listing-level facts for one stock
type StockMaster struct {
	Ticker    string `json:"ticker"`
	Name      string `json:"name"`
	Market    string `json:"market"` // KOSPI, KOSDAQ
	MarketCap *int64 `json:"market_cap,omitempty"`
}

// StockBundle is the per-stock input boundary: everything the analyzers
// need for a single ticker, already loaded and ordered
type StockBundle struct {
	Ticker       string             `json:"ticker"`
	Name         string             `json:"name"`
	Category     string             `json:"category"`
	Market       string             `json:"market"`
	MarketCap    *int64             `json:"market_cap,omitempty"`
	Prices       *PriceSeries       `json:"prices"`
	Fundamentals *FundamentalSeries `json:"fundamentals"`
	Financials   *FinancialSeries   `json:"financials"`
	Flows        *FlowSeries        `json:"flows"`
}

package contracts

import (
	"context"
	"time"
)

// ⭐ SSOT: Repository 인터페이스 정의는 여기서만

// PriceRepository loads daily OHLCV history
type PriceRepository interface {
	GetSeries(ctx context.Context, ticker string, from, to time.Time) (*PriceSeries, error)
}

// FundamentalRepository loads daily per-share valuation history
type FundamentalRepository interface {
	GetSeries(ctx context.Context, ticker string, from, to time.Time) (*FundamentalSeries, error)
}

// FinancialRepository loads annual income statement summaries
type FinancialRepository interface {
	GetAnnual(ctx context.Context, ticker string, years int) (*FinancialSeries, error)
}

// InvestorFlowRepository loads daily investor net-buy (수급) history
type InvestorFlowRepository interface {
	GetSeries(ctx context.Context, ticker string, from, to time.Time) (*FlowSeries, error)
}

// StockMasterRepository loads listing-level facts
type StockMasterRepository interface {
	Get(ctx context.Context, ticker string) (*StockMaster, error)
}

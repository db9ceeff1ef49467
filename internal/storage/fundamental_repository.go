package storage

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/wonny/robosector/internal/contracts"
)

// FundamentalRepository implements contracts.FundamentalRepository
// ⭐ SSOT: 밸류에이션 데이터 조회는 여기서만
type FundamentalRepository struct {
	pool *pgxpool.Pool
}

// NewFundamentalRepository creates a new fundamental repository
func NewFundamentalRepository(pool *pgxpool.Pool) *FundamentalRepository {
	return &FundamentalRepository{pool: pool}
}

// GetSeries retrieves the daily valuation history for a ticker,
// ascending by trade date. Absent metrics are stored as zero.
func (r *FundamentalRepository) GetSeries(ctx context.Context, ticker string, from, to time.Time) (*contracts.FundamentalSeries, error) {
	query := `
		SELECT trade_date, bps, per, pbr, eps, div_yield, dps
		FROM market.daily_fundamental
		WHERE ticker = $1 AND trade_date BETWEEN $2 AND $3
		ORDER BY trade_date ASC
	`

	rows, err := r.pool.Query(ctx, query, ticker, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	series := &contracts.FundamentalSeries{Ticker: ticker}
	for rows.Next() {
		var p contracts.FundamentalPoint
		if err := rows.Scan(&p.Date, &p.BPS, &p.PER, &p.PBR, &p.EPS, &p.DIV, &p.DPS); err != nil {
			return nil, err
		}
		series.Points = append(series.Points, p)
	}
	return series, rows.Err()
}

package storage

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/wonny/robosector/internal/contracts"
)

// FinancialRepository implements contracts.FinancialRepository
// ⭐ SSOT: 연간 재무 데이터 조회는 여기서만
type FinancialRepository struct {
	pool *pgxpool.Pool
}

// NewFinancialRepository creates a new financial repository
func NewFinancialRepository(pool *pgxpool.Pool) *FinancialRepository {
	return &FinancialRepository{pool: pool}
}

// GetAnnual retrieves the most recent annual periods for a ticker,
// ascending by year
func (r *FinancialRepository) GetAnnual(ctx context.Context, ticker string, years int) (*contracts.FinancialSeries, error) {
	query := `
		SELECT fiscal_year, revenue, operating_profit, net_income
		FROM market.annual_financial
		WHERE ticker = $1
		ORDER BY fiscal_year DESC
		LIMIT $2
	`

	rows, err := r.pool.Query(ctx, query, ticker, years)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var periods []contracts.FinancialPeriod
	for rows.Next() {
		var p contracts.FinancialPeriod
		if err := rows.Scan(&p.Year, &p.Revenue, &p.OperatingProfit, &p.NetIncome); err != nil {
			return nil, err
		}
		periods = append(periods, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// 최신순으로 읽었으므로 연도 오름차순으로 뒤집음
	for i, j := 0, len(periods)-1; i < j; i, j = i+1, j-1 {
		periods[i], periods[j] = periods[j], periods[i]
	}

	return &contracts.FinancialSeries{Ticker: ticker, Periods: periods}, nil
}

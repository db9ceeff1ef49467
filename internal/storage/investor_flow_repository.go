package storage

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/wonny/robosector/internal/contracts"
)

// InvestorFlowRepository implements contracts.InvestorFlowRepository
// ⭐ SSOT: 수급 데이터 조회는 여기서만
type InvestorFlowRepository struct {
	pool *pgxpool.Pool
}

// NewInvestorFlowRepository creates a new investor flow repository
func NewInvestorFlowRepository(pool *pgxpool.Pool) *InvestorFlowRepository {
	return &InvestorFlowRepository{pool: pool}
}

// GetSeries retrieves the daily investor net-buy history for a ticker,
// ascending by trade date
func (r *InvestorFlowRepository) GetSeries(ctx context.Context, ticker string, from, to time.Time) (*contracts.FlowSeries, error) {
	query := `
		SELECT trade_date, foreign_net_value, inst_net_value, indiv_net_value, corp_net_value
		FROM market.investor_flow
		WHERE ticker = $1 AND trade_date BETWEEN $2 AND $3
		ORDER BY trade_date ASC
	`

	rows, err := r.pool.Query(ctx, query, ticker, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	series := &contracts.FlowSeries{Ticker: ticker}
	for rows.Next() {
		var p contracts.FlowPoint
		if err := rows.Scan(&p.Date, &p.ForeignNet, &p.InstitutionNet, &p.IndividualNet, &p.CorpNet); err != nil {
			return nil, err
		}
		series.Points = append(series.Points, p)
	}
	return series, rows.Err()
}

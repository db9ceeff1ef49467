package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/wonny/robosector/internal/contracts"
)

// StockMasterRepository implements contracts.StockMasterRepository
// ⭐ SSOT: 종목 마스터 조회는 여기서만
type StockMasterRepository struct {
	pool *pgxpool.Pool
}

// NewStockMasterRepository creates a new stock master repository
func NewStockMasterRepository(pool *pgxpool.Pool) *StockMasterRepository {
	return &StockMasterRepository{pool: pool}
}

// Get retrieves listing-level facts for a ticker
func (r *StockMasterRepository) Get(ctx context.Context, ticker string) (*contracts.StockMaster, error) {
	query := `
		SELECT ticker, name, market, market_cap
		FROM market.stock_master
		WHERE ticker = $1
	`

	var m contracts.StockMaster
	err := r.pool.QueryRow(ctx, query, ticker).Scan(&m.Ticker, &m.Name, &m.Market, &m.MarketCap)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("stock master not found for %s", ticker)
		}
		return nil, err
	}
	return &m, nil
}

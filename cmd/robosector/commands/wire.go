package commands

import (
	"fmt"

	"github.com/wonny/robosector/internal/pipeline"
	"github.com/wonny/robosector/internal/storage"
	"github.com/wonny/robosector/internal/universe"
	"github.com/wonny/robosector/pkg/config"
	"github.com/wonny/robosector/pkg/database"
	"github.com/wonny/robosector/pkg/logger"
	"github.com/wonny/robosector/pkg/redis"

	"github.com/wonny/robosector/internal/analysis"
	"github.com/wonny/robosector/internal/flow"
)

// deps holds the shared runtime dependencies of every command
type deps struct {
	cfg    *config.Config
	log    *logger.Logger
	db     *database.DB
	rdb    *redis.Client
	cache  *redis.Cache
	runner *pipeline.Runner
}

// close releases all held connections
func (d *deps) close() {
	if d.rdb != nil {
		d.rdb.Close()
	}
	if d.db != nil {
		d.db.Close()
	}
}

// initDeps wires config, logger, storage and the analysis pipeline
// ⭐ SSOT: 의존성 조립은 이 함수에서만
func initDeps() (*deps, error) {
	// 1. Load config
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	if verbose {
		cfg.LogLevel = "debug"
	}

	// 2. Initialize logger
	log := logger.New(cfg)

	// 3. Connect to database
	db, err := database.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	log.Info("Connected to database")

	// 4. Connect to Redis (optional)
	rdb, err := redis.New(cfg)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("connect to redis: %w", err)
	}

	var cache *redis.Cache
	if rdb.Enabled() {
		cache = redis.NewCache(rdb, "robosector")
		log.Info("Report caching enabled")
	}

	// 5. Create repositories
	repos := pipeline.Repositories{
		Prices:       storage.NewPriceRepository(db.Pool),
		Fundamentals: storage.NewFundamentalRepository(db.Pool),
		Financials:   storage.NewFinancialRepository(db.Pool),
		Flows:        storage.NewInvestorFlowRepository(db.Pool),
		Masters:      storage.NewStockMasterRepository(db.Pool),
	}

	// 6. Load universe
	uni, err := universe.LoadOrDefault(cfg.UniverseFile)
	if err != nil {
		rdb.Close()
		db.Close()
		return nil, fmt.Errorf("load universe: %w", err)
	}

	log.WithField("stocks", uni.Size()).Info("Universe loaded")

	// 7. Create pipeline runner
	runner := pipeline.NewRunner(pipeline.Options{
		Repos:        repos,
		Universe:     uni,
		Analysis:     analysis.DefaultConfig(),
		Flow:         flow.DefaultConfig(),
		Cache:        cache,
		CacheTTL:     cfg.ReportCacheTTL,
		LookbackDays: cfg.LookbackDays,
	}, log)

	return &deps{
		cfg:    cfg,
		log:    log,
		db:     db,
		rdb:    rdb,
		cache:  cache,
		runner: runner,
	}, nil
}

package sector

import (
	"testing"
	"time"

	"github.com/wonny/robosector/internal/contracts"
	"github.com/wonny/robosector/pkg/config"
	"github.com/wonny/robosector/pkg/logger"
)

func testLogger() *logger.Logger {
	return logger.New(&config.Config{Env: "test", LogLevel: "error", LogFormat: "json"})
}

func stock(ticker string, score int, return1M float64, marketCap *int64) *contracts.StockAnalysisResult {
	var rating contracts.Rating
	switch {
	case score >= 70:
		rating = contracts.RatingBuy
	case score >= 40:
		rating = contracts.RatingHold
	default:
		rating = contracts.RatingSell
	}

	returns := map[string]float64{}
	if return1M != 0 {
		returns["1m"] = return1M
	}

	return &contracts.StockAnalysisResult{
		Ticker:    ticker,
		Name:      ticker,
		Score:     score,
		Rating:    rating,
		MarketCap: marketCap,
		Technical: contracts.TechnicalSnapshot{Returns: returns},
	}
}

func int64Ptr(v int64) *int64 { return &v }

func TestSummarizeEmpty(t *testing.T) {
	agg := NewAggregator(testLogger())
	asOf := time.Date(2025, 6, 2, 18, 10, 0, 0, time.UTC)

	got := agg.Summarize(nil, asOf)

	if got.StockCount != 0 || got.AvgScore != 0 || got.TotalMarketCap != 0 {
		t.Errorf("Expected zero summary, got %+v", got)
	}
	if got.Rankings == nil || len(got.Rankings) != 0 {
		t.Error("Expected empty, non-nil rankings")
	}
	if !got.AnalyzedAt.Equal(asOf) {
		t.Errorf("Expected AnalyzedAt %v, got %v", asOf, got.AnalyzedAt)
	}
}

func TestSummarizeCountsAndAverages(t *testing.T) {
	agg := NewAggregator(testLogger())

	results := []*contracts.StockAnalysisResult{
		stock("A", 80, 10, int64Ptr(1000)),
		stock("B", 60, -4, int64Ptr(2000)),
		stock("C", 30, 0, nil), // no 1m return, no market cap
		stock("D", 50, 6, int64Ptr(3000)),
	}

	got := agg.Summarize(results, time.Now())

	if got.BuyCount != 1 || got.HoldCount != 2 || got.SellCount != 1 {
		t.Errorf("Counts = %d/%d/%d, want 1/2/1", got.BuyCount, got.HoldCount, got.SellCount)
	}
	if got.AvgScore != 55 {
		t.Errorf("AvgScore = %.2f, want 55", got.AvgScore)
	}
	// C has no 1m return and is excluded from the average
	want := (10.0 - 4.0 + 6.0) / 3
	if got.AvgReturn1M != want {
		t.Errorf("AvgReturn1M = %.4f, want %.4f", got.AvgReturn1M, want)
	}
	if got.TotalMarketCap != 6000 {
		t.Errorf("TotalMarketCap = %d, want 6000", got.TotalMarketCap)
	}
}

func TestRankingOrder(t *testing.T) {
	agg := NewAggregator(testLogger())

	results := []*contracts.StockAnalysisResult{
		stock("A", 60, 0, nil),
		stock("B", 80, 0, nil),
		stock("C", 60, 0, nil), // equal score: stays after A
		stock("D", 40, 0, nil),
	}

	got := agg.Summarize(results, time.Now())

	wantOrder := []string{"B", "A", "C", "D"}
	for i, want := range wantOrder {
		r := got.Rankings[i]
		if r.Ticker != want {
			t.Errorf("Rankings[%d] = %s, want %s", i, r.Ticker, want)
		}
		if r.Rank != i+1 {
			t.Errorf("Rankings[%d].Rank = %d, want %d", i, r.Rank, i+1)
		}
	}
}

func TestTopPicksAndWatchlist(t *testing.T) {
	agg := NewAggregator(testLogger())

	results := []*contracts.StockAnalysisResult{
		stock("A", 90, 0, nil),
		stock("B", 85, 0, nil),
		stock("C", 72, 0, nil),
		stock("D", 65, 0, nil),
		stock("E", 55, 0, nil),
		stock("F", 45, 0, nil),
		stock("G", 42, 0, nil),
		stock("H", 41, 0, nil),
		stock("I", 40, 0, nil),
		stock("J", 30, 0, nil),
	}

	got := agg.Summarize(results, time.Now())

	if len(got.TopPicks) != 5 {
		t.Fatalf("Expected 5 top picks, got %d", len(got.TopPicks))
	}
	if got.TopPicks[0].Ticker != "A" || got.TopPicks[4].Ticker != "E" {
		t.Errorf("TopPicks out of order: %v", got.TopPicks)
	}

	// watchlist: first five ranked stocks with score in [40,70)
	wantWatch := []string{"D", "E", "F", "G", "H"}
	if len(got.Watchlist) != len(wantWatch) {
		t.Fatalf("Expected %d watchlist rows, got %d", len(wantWatch), len(got.Watchlist))
	}
	for i, want := range wantWatch {
		if got.Watchlist[i].Ticker != want {
			t.Errorf("Watchlist[%d] = %s, want %s", i, got.Watchlist[i].Ticker, want)
		}
	}
}

func TestWatchlistBoundaries(t *testing.T) {
	agg := NewAggregator(testLogger())

	results := []*contracts.StockAnalysisResult{
		stock("A", 70, 0, nil), // BUY boundary: excluded
		stock("B", 69, 0, nil),
		stock("C", 40, 0, nil),
		stock("D", 39, 0, nil), // below HOLD: excluded
	}

	got := agg.Summarize(results, time.Now())

	wantWatch := []string{"B", "C"}
	if len(got.Watchlist) != len(wantWatch) {
		t.Fatalf("Expected %d watchlist rows, got %d", len(wantWatch), len(got.Watchlist))
	}
	for i, want := range wantWatch {
		if got.Watchlist[i].Ticker != want {
			t.Errorf("Watchlist[%d] = %s, want %s", i, got.Watchlist[i].Ticker, want)
		}
	}
}

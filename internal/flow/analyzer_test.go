package flow

import (
	"testing"
	"time"

	"github.com/wonny/robosector/internal/contracts"
	"github.com/wonny/robosector/pkg/config"
	"github.com/wonny/robosector/pkg/logger"
)

const krwBillion = int64(1_000_000_000)

func testLogger() *logger.Logger {
	return logger.New(&config.Config{Env: "test", LogLevel: "error", LogFormat: "json"})
}

func makeFlowSeries(ticker string, foreign, institution []int64) *contracts.FlowSeries {
	start := time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC)
	points := make([]contracts.FlowPoint, len(foreign))
	for i := range foreign {
		points[i] = contracts.FlowPoint{
			Date:           start.AddDate(0, 0, i),
			ForeignNet:     foreign[i],
			InstitutionNet: institution[i],
		}
	}
	return &contracts.FlowSeries{Ticker: ticker, Points: points}
}

func repeat(v int64, n int) []int64 {
	out := make([]int64, n)
	for i := range out {
		out[i] = v
	}
	return out
}

func TestAnalyzeStockEmptySeries(t *testing.T) {
	analyzer := NewAnalyzer(DefaultConfig(), testLogger())

	tests := []struct {
		name   string
		series *contracts.FlowSeries
	}{
		{"nil series", nil},
		{"empty series", &contracts.FlowSeries{Ticker: "277810"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := analyzer.AnalyzeStock("277810", "레인보우로보틱스", tt.series)
			if got.Score != 0 {
				t.Errorf("Expected score 0, got %d", got.Score)
			}
			if got.Signal != contracts.FlowNeutral {
				t.Errorf("Expected NEUTRAL, got %s", got.Signal)
			}
			if got.Foreign20D != 0 || got.Institution5D != 0 {
				t.Error("Expected zero window sums")
			}
		})
	}
}

func TestAnalyzeStockWindows(t *testing.T) {
	analyzer := NewAnalyzer(DefaultConfig(), testLogger())

	// 25 days of steady buying: windows must sum exactly 1, 5 and 20 days
	series := makeFlowSeries("277810", repeat(100, 25), repeat(-50, 25))
	got := analyzer.AnalyzeStock("277810", "레인보우로보틱스", series)

	if got.Foreign1D != 100 || got.Foreign5D != 500 || got.Foreign20D != 2000 {
		t.Errorf("Foreign windows = %d/%d/%d, want 100/500/2000",
			got.Foreign1D, got.Foreign5D, got.Foreign20D)
	}
	if got.Institution1D != -50 || got.Institution5D != -250 || got.Institution20D != -1000 {
		t.Errorf("Institution windows = %d/%d/%d, want -50/-250/-1000",
			got.Institution1D, got.Institution5D, got.Institution20D)
	}
}

func TestAnalyzeStockIndividualWindows(t *testing.T) {
	analyzer := NewAnalyzer(DefaultConfig(), testLogger())

	// 개인은 외국인+기관의 반대편: 전 구간 순매도
	series := makeFlowSeries("277810", repeat(100, 25), repeat(50, 25))
	for i := range series.Points {
		series.Points[i].IndividualNet = -150
	}
	got := analyzer.AnalyzeStock("277810", "레인보우로보틱스", series)

	if got.Individual1D != -150 || got.Individual5D != -750 || got.Individual20D != -3000 {
		t.Errorf("Individual windows = %d/%d/%d, want -150/-750/-3000",
			got.Individual1D, got.Individual5D, got.Individual20D)
	}
	if got.ForeignHoldingRatio != nil {
		t.Errorf("Expected nil holding ratio, got %v", *got.ForeignHoldingRatio)
	}
}

func TestAnalyzeStockPartialWindows(t *testing.T) {
	analyzer := NewAnalyzer(DefaultConfig(), testLogger())

	// only 3 days of history: the 5d and 20d windows sum what exists
	series := makeFlowSeries("277810", []int64{100, 200, 300}, repeat(0, 3))
	got := analyzer.AnalyzeStock("277810", "레인보우로보틱스", series)

	if got.Foreign5D != 600 || got.Foreign20D != 600 {
		t.Errorf("Foreign windows = %d/%d, want 600/600", got.Foreign5D, got.Foreign20D)
	}
}

func TestContribution(t *testing.T) {
	thr := krwBillion

	tests := []struct {
		name string
		v    int64
		want int
	}{
		{"beyond threshold", 2 * thr, 25},
		{"exactly threshold stays small", thr, 10},
		{"positive below threshold", thr / 2, 10},
		{"zero", 0, 0},
		{"negative below threshold", -thr / 2, -10},
		{"beyond negative threshold", -2 * thr, -25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := contribution(tt.v, thr); got != tt.want {
				t.Errorf("contribution(%d) = %d, want %d", tt.v, got, tt.want)
			}
		})
	}
}

func TestAnalyzeStockStrongAccumulation(t *testing.T) {
	analyzer := NewAnalyzer(DefaultConfig(), testLogger())

	// 20 days of foreign buying at 4억원/일: 5d = 2x threshold, 20d = 8x,
	// well past the 3x 20d threshold. Institutions flat.
	daily := 2 * krwBillion / 5
	series := makeFlowSeries("277810", repeat(daily, 20), repeat(0, 20))
	got := analyzer.AnalyzeStock("277810", "레인보우로보틱스", series)

	if got.Score != 50 {
		t.Errorf("Expected score 50 (25 + 25), got %d", got.Score)
	}
	if got.Signal != contracts.FlowStrongAccumulation {
		t.Errorf("Expected STRONG_ACCUMULATION, got %s", got.Signal)
	}
}

func TestFlowSignalLadder(t *testing.T) {
	tests := []struct {
		name string
		r    contracts.FlowAnalysisResult
		want contracts.FlowSignal
	}{
		{"strong accumulation at 50", contracts.FlowAnalysisResult{Score: 50}, contracts.FlowStrongAccumulation},
		{"accumulation at 20", contracts.FlowAnalysisResult{Score: 20}, contracts.FlowAccumulation},
		{"strong distribution at -50", contracts.FlowAnalysisResult{Score: -50}, contracts.FlowStrongDistribution},
		{"distribution at -20", contracts.FlowAnalysisResult{Score: -20}, contracts.FlowDistribution},
		{
			"foreign led",
			contracts.FlowAnalysisResult{Score: 0, Foreign5D: 100, Institution5D: -100},
			contracts.FlowForeignLed,
		},
		{
			"institution led",
			contracts.FlowAnalysisResult{Score: 0, Foreign5D: -100, Institution5D: 100},
			contracts.FlowInstitutionLed,
		},
		{"neutral", contracts.FlowAnalysisResult{Score: 10}, contracts.FlowNeutral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := classify(&tt.r); got != tt.want {
				t.Errorf("classify() = %s, want %s", got, tt.want)
			}
		})
	}
}

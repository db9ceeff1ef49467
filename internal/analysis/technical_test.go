package analysis

import (
	"math"
	"testing"
	"time"

	"github.com/wonny/robosector/internal/contracts"
)

func makeSeries(ticker string, start time.Time, closes []float64, volumes []int64) *contracts.PriceSeries {
	points := make([]contracts.PricePoint, len(closes))
	for i, c := range closes {
		var vol int64 = 1000
		if volumes != nil {
			vol = volumes[i]
		}
		points[i] = contracts.PricePoint{
			Date:   start.AddDate(0, 0, i),
			Open:   c,
			High:   c,
			Low:    c,
			Close:  c,
			Volume: vol,
		}
	}
	return &contracts.PriceSeries{Ticker: ticker, Points: points}
}

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestReturnsShortHistory(t *testing.T) {
	start := time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		closes []float64
	}{
		{"empty", nil},
		{"single observation", []float64{100}},
	}

	engine := NewEngine(DefaultConfig())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			series := makeSeries("277810", start, tt.closes, nil)
			got := engine.Returns(series, start)
			if len(got) != 0 {
				t.Errorf("Expected no returns, got %v", got)
			}
		})
	}
}

func TestReturnsFiveObservations(t *testing.T) {
	// 5 bars: a 1-day return exists, a 1-week return (5 bars back) does not
	start := time.Date(2025, 2, 3, 0, 0, 0, 0, time.UTC)
	series := makeSeries("277810", start, []float64{100, 101, 103, 99, 98}, nil)

	engine := NewEngine(DefaultConfig())
	got := engine.Returns(series, start.AddDate(0, 0, 4))

	r1d, ok := got["1d"]
	if !ok {
		t.Fatal("Expected 1d return to be present")
	}
	want := (98.0/99.0 - 1) * 100
	if !almostEqual(r1d, want, 1e-9) {
		t.Errorf("Expected 1d return %.6f, got %.6f", want, r1d)
	}

	if _, ok := got["1w"]; ok {
		t.Error("Expected no 1w return with only 5 observations")
	}
}

func TestReturnsExactWindow(t *testing.T) {
	// 6 bars: the 1-week window (5 bars back) becomes available
	start := time.Date(2025, 2, 3, 0, 0, 0, 0, time.UTC)
	series := makeSeries("277810", start, []float64{100, 101, 103, 99, 98, 110}, nil)

	engine := NewEngine(DefaultConfig())
	got := engine.Returns(series, start.AddDate(0, 0, 5))

	r1w, ok := got["1w"]
	if !ok {
		t.Fatal("Expected 1w return to be present with 6 observations")
	}
	want := (110.0/100.0 - 1) * 100
	if !almostEqual(r1w, want, 1e-9) {
		t.Errorf("Expected 1w return %.6f, got %.6f", want, r1w)
	}
}

func TestReturnsYTD(t *testing.T) {
	// one bar in 2024, two bars in 2025: YTD anchors on the first 2025 bar
	series := &contracts.PriceSeries{
		Ticker: "277810",
		Points: []contracts.PricePoint{
			{Date: time.Date(2024, 12, 30, 0, 0, 0, 0, time.UTC), Close: 100, Volume: 1},
			{Date: time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC), Close: 110, Volume: 1},
			{Date: time.Date(2025, 1, 3, 0, 0, 0, 0, time.UTC), Close: 120, Volume: 1},
		},
	}

	engine := NewEngine(DefaultConfig())
	asOf := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	got := engine.Returns(series, asOf)

	ytd, ok := got["ytd"]
	if !ok {
		t.Fatal("Expected ytd return to be present")
	}
	want := (120.0/110.0 - 1) * 100
	if !almostEqual(ytd, want, 1e-9) {
		t.Errorf("Expected ytd return %.6f, got %.6f", want, ytd)
	}
}

func TestSMA(t *testing.T) {
	values := []float64{1, 2, 3, 4, 5}
	got := SMA(values, 3)

	if !math.IsNaN(got[0]) || !math.IsNaN(got[1]) {
		t.Error("Expected NaN before the window is full")
	}

	wants := []float64{2, 3, 4}
	for i, want := range wants {
		if !almostEqual(got[i+2], want, 1e-9) {
			t.Errorf("SMA[%d] = %.4f, want %.4f", i+2, got[i+2], want)
		}
	}
}

func TestRSI(t *testing.T) {
	tests := []struct {
		name   string
		closes []float64
		period int
		want   float64
	}{
		{"all gains saturate at 100", []float64{10, 11, 12}, 2, 100},
		{"all losses floor at 0", []float64{12, 11, 10}, 2, 0},
		{"balanced moves give 50", []float64{10, 11, 10}, 2, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RSI(tt.closes, tt.period)
			latest := got[len(got)-1]
			if !almostEqual(latest, tt.want, 1e-9) {
				t.Errorf("RSI = %.4f, want %.4f", latest, tt.want)
			}
		})
	}
}

func TestRSIBounds(t *testing.T) {
	closes := []float64{100, 102, 99, 105, 103, 108, 101, 110, 107, 112,
		109, 115, 111, 118, 114, 120, 116, 122, 119, 125}

	got := RSI(closes, 14)
	for i, v := range got {
		if math.IsNaN(v) {
			if i >= 14 {
				t.Errorf("Expected RSI at index %d, got NaN", i)
			}
			continue
		}
		if v < 0 || v > 100 {
			t.Errorf("RSI[%d] = %.4f outside [0,100]", i, v)
		}
	}
}

func TestBollingerFlatSeries(t *testing.T) {
	closes := make([]float64, 20)
	for i := range closes {
		closes[i] = 100
	}

	upper, middle, lower := Bollinger(closes, 20, 2.0)
	u, m, l := upper[19], middle[19], lower[19]

	if !almostEqual(m, 100, 1e-9) || !almostEqual(u, 100, 1e-9) || !almostEqual(l, 100, 1e-9) {
		t.Errorf("Flat series should collapse the bands, got u=%.2f m=%.2f l=%.2f", u, m, l)
	}
}

func TestBollingerSampleStd(t *testing.T) {
	closes := make([]float64, 20)
	for i := range closes {
		closes[i] = float64(i + 1)
	}

	upper, middle, _ := Bollinger(closes, 20, 2.0)

	// mean 10.5, sample std sqrt(665/19)
	sd := math.Sqrt(665.0 / 19.0)
	if !almostEqual(middle[19], 10.5, 1e-9) {
		t.Errorf("Expected middle 10.5, got %.4f", middle[19])
	}
	if !almostEqual(upper[19], 10.5+2*sd, 1e-9) {
		t.Errorf("Expected upper %.4f, got %.4f", 10.5+2*sd, upper[19])
	}
}

func TestMACDConstantSeries(t *testing.T) {
	closes := make([]float64, 40)
	for i := range closes {
		closes[i] = 50
	}

	engine := NewEngine(DefaultConfig())
	macd, signal, hist := engine.MACD(closes)

	n := len(closes) - 1
	if !almostEqual(macd[n], 0, 1e-9) || !almostEqual(signal[n], 0, 1e-9) || !almostEqual(hist[n], 0, 1e-9) {
		t.Errorf("Constant series should give zero MACD, got macd=%.4f signal=%.4f hist=%.4f",
			macd[n], signal[n], hist[n])
	}
}

func TestMACDRisingSeries(t *testing.T) {
	closes := make([]float64, 60)
	for i := range closes {
		closes[i] = 100 + float64(i)*2
	}

	engine := NewEngine(DefaultConfig())
	macd, _, _ := engine.MACD(closes)

	if macd[len(macd)-1] <= 0 {
		t.Errorf("Rising series should give positive MACD, got %.4f", macd[len(macd)-1])
	}
}

func TestTrendInsufficientData(t *testing.T) {
	closes := make([]float64, 119)
	for i := range closes {
		closes[i] = 100
	}

	engine := NewEngine(DefaultConfig())
	signal, strength := engine.Trend(closes)

	if signal != contracts.TrendInsufficientData {
		t.Errorf("Expected INSUFFICIENT_DATA, got %s", signal)
	}
	if strength != 0 {
		t.Errorf("Expected strength 0, got %d", strength)
	}
}

func TestTrendLadder(t *testing.T) {
	engine := NewEngine(DefaultConfig())

	rising := make([]float64, 130)
	falling := make([]float64, 130)
	for i := range rising {
		rising[i] = 100 + float64(i)
		falling[i] = 300 - float64(i)
	}

	tests := []struct {
		name         string
		closes       []float64
		wantSignal   contracts.TrendSignal
		wantStrength int
	}{
		{"monotonic rise", rising, contracts.TrendStrongUp, 3},
		{"monotonic fall", falling, contracts.TrendStrongDown, -3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			signal, strength := engine.Trend(tt.closes)
			if signal != tt.wantSignal {
				t.Errorf("Expected %s, got %s", tt.wantSignal, signal)
			}
			if strength != tt.wantStrength {
				t.Errorf("Expected strength %d, got %d", tt.wantStrength, strength)
			}
		})
	}
}

func TestVolumeSignal(t *testing.T) {
	engine := NewEngine(DefaultConfig())

	makeVolumes := func(baseline, recent int64) []int64 {
		volumes := make([]int64, 20)
		for i := 0; i < 15; i++ {
			volumes[i] = baseline
		}
		for i := 15; i < 20; i++ {
			volumes[i] = recent
		}
		return volumes
	}

	tests := []struct {
		name       string
		volumes    []int64
		wantRatio  float64
		wantSignal contracts.VolumeSignal
	}{
		{"surge", makeVolumes(1000, 2500), 2.5, contracts.VolumeSurge},
		{"increase", makeVolumes(1000, 1600), 1.6, contracts.VolumeIncrease},
		{"average", makeVolumes(1000, 1000), 1.0, contracts.VolumeAverage},
		{"decrease", makeVolumes(1000, 500), 0.5, contracts.VolumeDecrease},
		{"zero baseline defaults to average", makeVolumes(0, 500), 1.0, contracts.VolumeAverage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ratio, signal := engine.Volume(tt.volumes)
			if !almostEqual(ratio, tt.wantRatio, 1e-9) {
				t.Errorf("Expected ratio %.2f, got %.2f", tt.wantRatio, ratio)
			}
			if signal != tt.wantSignal {
				t.Errorf("Expected %s, got %s", tt.wantSignal, signal)
			}
		})
	}
}

func TestVolumeInsufficientData(t *testing.T) {
	engine := NewEngine(DefaultConfig())
	volumes := make([]int64, 19)

	_, signal := engine.Volume(volumes)
	if signal != contracts.VolumeInsufficientData {
		t.Errorf("Expected INSUFFICIENT_DATA, got %s", signal)
	}
}

func TestSnapshotRejectsUnorderedSeries(t *testing.T) {
	series := &contracts.PriceSeries{
		Ticker: "277810",
		Points: []contracts.PricePoint{
			{Date: time.Date(2025, 1, 3, 0, 0, 0, 0, time.UTC), Close: 100},
			{Date: time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC), Close: 101},
		},
	}

	engine := NewEngine(DefaultConfig())
	_, err := engine.Snapshot(series, time.Now())
	if err == nil {
		t.Error("Expected error for out-of-order series, got nil")
	}
}

func TestSnapshotShortHistory(t *testing.T) {
	// 10 bars: no RSI, no Bollinger, no trend, but MACD and ma5 exist
	start := time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC)
	closes := []float64{100, 101, 102, 101, 103, 104, 103, 105, 106, 107}
	series := makeSeries("277810", start, closes, nil)

	engine := NewEngine(DefaultConfig())
	snap, err := engine.Snapshot(series, start.AddDate(0, 0, 9))
	if err != nil {
		t.Fatalf("Snapshot() failed: %v", err)
	}

	if snap.RSI != nil {
		t.Error("Expected nil RSI with 10 observations")
	}
	if snap.Bollinger != nil {
		t.Error("Expected nil Bollinger with 10 observations")
	}
	if snap.Trend != contracts.TrendInsufficientData {
		t.Errorf("Expected INSUFFICIENT_DATA trend, got %s", snap.Trend)
	}
	if snap.MACD == nil {
		t.Error("Expected MACD snapshot")
	}
	if _, ok := snap.MA["ma5"]; !ok {
		t.Error("Expected ma5 with 10 observations")
	}
	if _, ok := snap.MA["ma20"]; ok {
		t.Error("Expected no ma20 with 10 observations")
	}
}

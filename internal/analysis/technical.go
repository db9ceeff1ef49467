package analysis

import (
	"fmt"
	"math"
	"time"

	"github.com/wonny/robosector/internal/contracts"
)

// Engine computes technical indicators from a daily price series.
// All methods are pure; series must be ascending by date.
type Engine struct {
	cfg Config
}

// NewEngine creates a technical engine with the given thresholds
func NewEngine(cfg Config) *Engine {
	return &Engine{cfg: cfg}
}

// returnWindows maps output keys to bar offsets
var returnWindows = []struct {
	key  string
	bars int
}{
	{"1d", 1},
	{"1w", 5},
	{"1m", 20},
	{"3m", 60},
	{"6m", 120},
	{"1y", 252},
}

// Returns computes percentage returns over the standard windows.
// A window of N bars compares the latest close against the close N bars
// back and therefore needs N+1 observations; shorter histories simply
// omit the key. "ytd" compares against the first observation of the
// asOf year.
func (e *Engine) Returns(series *contracts.PriceSeries, asOf time.Time) map[string]float64 {
	out := make(map[string]float64)
	n := series.Len()
	if n < 2 {
		return out
	}

	closes := series.Closes()
	current := closes[n-1]

	for _, w := range returnWindows {
		if n < w.bars+1 {
			continue
		}
		base := closes[n-1-w.bars]
		if base == 0 {
			continue
		}
		out[w.key] = (current/base - 1) * 100
	}

	// YTD: first observation dated in the asOf year
	for i, p := range series.Points {
		if p.Date.Year() == asOf.Year() {
			if closes[i] != 0 {
				out["ytd"] = (current/closes[i] - 1) * 100
			}
			break
		}
	}

	return out
}

// SMA computes a simple moving average, NaN until the window is full
func SMA(values []float64, window int) []float64 {
	out := make([]float64, len(values))
	for i := range out {
		out[i] = math.NaN()
	}
	if window <= 0 || len(values) < window {
		return out
	}

	sum := 0.0
	for i, v := range values {
		sum += v
		if i >= window {
			sum -= values[i-window]
		}
		if i >= window-1 {
			out[i] = sum / float64(window)
		}
	}
	return out
}

// RSI computes the rolling-mean relative strength index.
// Values are NaN until `period` price changes exist; a zero average loss
// saturates at 100.
func RSI(closes []float64, period int) []float64 {
	out := make([]float64, len(closes))
	for i := range out {
		out[i] = math.NaN()
	}
	if period <= 0 || len(closes) < period+1 {
		return out
	}

	gains := make([]float64, len(closes))
	losses := make([]float64, len(closes))
	for i := 1; i < len(closes); i++ {
		delta := closes[i] - closes[i-1]
		if delta > 0 {
			gains[i] = delta
		} else {
			losses[i] = -delta
		}
	}

	for i := period; i < len(closes); i++ {
		var gainSum, lossSum float64
		for j := i - period + 1; j <= i; j++ {
			gainSum += gains[j]
			lossSum += losses[j]
		}
		avgGain := gainSum / float64(period)
		avgLoss := lossSum / float64(period)

		if avgLoss == 0 {
			out[i] = 100
			continue
		}
		rs := avgGain / avgLoss
		out[i] = 100 - 100/(1+rs)
	}
	return out
}

// Bollinger computes Bollinger bands with a sample standard deviation
func Bollinger(closes []float64, period int, k float64) (upper, middle, lower []float64) {
	middle = SMA(closes, period)
	upper = make([]float64, len(closes))
	lower = make([]float64, len(closes))
	for i := range closes {
		upper[i] = math.NaN()
		lower[i] = math.NaN()
	}
	if period < 2 || len(closes) < period {
		return upper, middle, lower
	}

	for i := period - 1; i < len(closes); i++ {
		mean := middle[i]
		var sq float64
		for j := i - period + 1; j <= i; j++ {
			d := closes[j] - mean
			sq += d * d
		}
		sd := math.Sqrt(sq / float64(period-1))
		upper[i] = mean + k*sd
		lower[i] = mean - k*sd
	}
	return upper, middle, lower
}

// ema computes a recursive EMA seeded with the first observation
func ema(values []float64, span int) []float64 {
	out := make([]float64, len(values))
	if len(values) == 0 {
		return out
	}
	alpha := 2.0 / float64(span+1)
	out[0] = values[0]
	for i := 1; i < len(values); i++ {
		out[i] = alpha*values[i] + (1-alpha)*out[i-1]
	}
	return out
}

// MACD computes the MACD line, signal line and histogram
func (e *Engine) MACD(closes []float64) (macd, signal, hist []float64) {
	fast := ema(closes, e.cfg.MACDFast)
	slow := ema(closes, e.cfg.MACDSlow)

	macd = make([]float64, len(closes))
	for i := range closes {
		macd[i] = fast[i] - slow[i]
	}
	signal = ema(macd, e.cfg.MACDSignal)
	hist = make([]float64, len(closes))
	for i := range closes {
		hist[i] = macd[i] - signal[i]
	}
	return macd, signal, hist
}

// Trend classifies the moving-average alignment.
// Needs at least 120 observations, otherwise INSUFFICIENT_DATA.
func (e *Engine) Trend(closes []float64) (contracts.TrendSignal, int) {
	if len(closes) < 120 {
		return contracts.TrendInsufficientData, 0
	}

	price := closes[len(closes)-1]
	ma20 := last(SMA(closes, 20))
	ma60 := last(SMA(closes, 60))
	ma120 := last(SMA(closes, 120))

	var signal contracts.TrendSignal
	switch {
	case price > ma20 && ma20 > ma60 && ma60 > ma120:
		signal = contracts.TrendStrongUp
	case price > ma20 && ma20 > ma60:
		signal = contracts.TrendUp
	case price > ma20:
		signal = contracts.TrendWeakUp
	case price < ma20 && ma20 < ma60 && ma60 < ma120:
		signal = contracts.TrendStrongDown
	case price < ma20 && ma20 < ma60:
		signal = contracts.TrendDown
	case price < ma20:
		signal = contracts.TrendWeakDown
	default:
		signal = contracts.TrendNeutral
	}
	return signal, signal.Strength()
}

// Volume compares the last 5 days of volume against the trailing
// baseline mean([-lookback, -5)). A flat baseline yields ratio 1.0.
func (e *Engine) Volume(volumes []int64) (float64, contracts.VolumeSignal) {
	lookback := e.cfg.VolumeLookback
	if len(volumes) < lookback {
		return 0, contracts.VolumeInsufficientData
	}

	n := len(volumes)
	var recentSum int64
	for _, v := range volumes[n-5:] {
		recentSum += v
	}
	recent := float64(recentSum) / 5

	var histSum int64
	histLen := lookback - 5
	for _, v := range volumes[n-lookback : n-5] {
		histSum += v
	}
	hist := float64(histSum) / float64(histLen)

	ratio := 1.0
	if hist > 0 {
		ratio = recent / hist
	}

	var signal contracts.VolumeSignal
	switch {
	case ratio > 2.0:
		signal = contracts.VolumeSurge
	case ratio > 1.5:
		signal = contracts.VolumeIncrease
	case ratio > 0.7:
		signal = contracts.VolumeAverage
	default:
		signal = contracts.VolumeDecrease
	}
	return ratio, signal
}

// Snapshot runs all indicators and assembles the latest values
func (e *Engine) Snapshot(series *contracts.PriceSeries, asOf time.Time) (contracts.TechnicalSnapshot, error) {
	if err := series.Validate(); err != nil {
		return contracts.TechnicalSnapshot{}, err
	}
	if series.Len() == 0 {
		return contracts.TechnicalSnapshot{}, fmt.Errorf("no price history for %s", series.Ticker)
	}

	closes := series.Closes()
	snap := contracts.TechnicalSnapshot{
		Returns: e.Returns(series, asOf),
		MA:      make(map[string]float64),
	}

	for _, period := range e.cfg.MAPeriods {
		if v := last(SMA(closes, period)); !math.IsNaN(v) {
			snap.MA[fmt.Sprintf("ma%d", period)] = v
		}
	}

	if v := last(RSI(closes, e.cfg.RSIPeriod)); !math.IsNaN(v) {
		snap.RSI = &v
	}

	upper, middle, lower := Bollinger(closes, e.cfg.BollingerPeriod, e.cfg.BollingerK)
	if u, m, l := last(upper), last(middle), last(lower); !math.IsNaN(m) {
		bb := &contracts.BollingerSnapshot{Upper: u, Middle: m, Lower: l}
		if m != 0 {
			bb.Bandwidth = (u - l) / m * 100
		}
		snap.Bollinger = bb
	}

	macd, signal, hist := e.MACD(closes)
	snap.MACD = &contracts.MACDSnapshot{
		MACD:      last(macd),
		Signal:    last(signal),
		Histogram: last(hist),
	}

	snap.Trend, snap.TrendStrength = e.Trend(closes)
	snap.VolumeRatio, snap.VolumeSignal = e.Volume(series.Volumes())

	return snap, nil
}

func last(values []float64) float64 {
	if len(values) == 0 {
		return math.NaN()
	}
	return values[len(values)-1]
}

package analysis

// Config holds the tunable thresholds of the analysis engine
// ⭐ SSOT: 분석 임계값은 여기서만 정의
type Config struct {
	// Technical indicators
	MAPeriods       []int // moving average windows
	RSIPeriod       int
	BollingerPeriod int
	BollingerK      float64
	MACDFast        int
	MACDSlow        int
	MACDSignal      int
	VolumeLookback  int // trailing window for the volume baseline

	// Valuation grading bounds
	PERUndervalued float64 // PER below this grades UNDERVALUED
	PEROvervalued  float64 // PER above this grades OVERVALUED
	PBRUndervalued float64
	PBROvervalued  float64

	// History
	LookbackBars int // price bars loaded per stock (약 1년 거래일)
}

// DefaultConfig returns the production thresholds
func DefaultConfig() Config {
	return Config{
		MAPeriods:       []int{5, 20, 60, 120},
		RSIPeriod:       14,
		BollingerPeriod: 20,
		BollingerK:      2.0,
		MACDFast:        12,
		MACDSlow:        26,
		MACDSignal:      9,
		VolumeLookback:  20,
		PERUndervalued:  10.0,
		PEROvervalued:   30.0,
		PBRUndervalued:  1.0,
		PBROvervalued:   3.0,
		LookbackBars:    252,
	}
}

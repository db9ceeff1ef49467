package flow

// Config holds the net-buy thresholds for flow classification (KRW)
// ⭐ SSOT: 수급 임계값은 여기서만 정의
type Config struct {
	ForeignBuyThreshold     int64 // 외국인 순매수 기준
	InstitutionBuyThreshold int64 // 기관 순매수 기준
}

// DefaultConfig returns the production thresholds (10억원)
func DefaultConfig() Config {
	return Config{
		ForeignBuyThreshold:     1_000_000_000,
		InstitutionBuyThreshold: 1_000_000_000,
	}
}

package analysis

import "github.com/wonny/robosector/internal/contracts"

// Scorer turns a technical and fundamental snapshot into a 0-100
// investment score and a BUY/HOLD/SELL rating. Missing inputs
// contribute zero points; scoring never fails.
type Scorer struct{}

// NewScorer creates a scorer
func NewScorer() *Scorer {
	return &Scorer{}
}

// band is one row of an ordered scoring table; the first matching
// band wins and the rest are skipped
type band struct {
	match  func(v float64) bool
	points int
}

func applyBands(bands []band, v float64) int {
	for _, b := range bands {
		if b.match(v) {
			return b.points
		}
	}
	return 0
}

// Ordered scoring tables. 순서가 의미를 가짐: 위에서부터 첫 매치만 적용.
var (
	return1MBands = []band{
		{func(v float64) bool { return v > 10 }, 10},
		{func(v float64) bool { return v > 5 }, 5},
		{func(v float64) bool { return v < -10 }, -10},
		{func(v float64) bool { return v < -5 }, -5},
	}

	perBands = []band{
		{func(v float64) bool { return v > 0 && v < 15 }, 10},
		{func(v float64) bool { return v > 50 }, -10},
	}

	pbrBands = []band{
		{func(v float64) bool { return v > 0 && v < 1 }, 5},
		{func(v float64) bool { return v > 5 }, -5},
	}

	rsiBands = []band{
		{func(v float64) bool { return v < 30 }, 10},
		{func(v float64) bool { return v > 70 }, -5},
		{func(v float64) bool { return true }, 5}, // 30-70 구간
	}

	trendPoints = map[contracts.TrendSignal]int{
		contracts.TrendStrongUp:   15,
		contracts.TrendUp:         10,
		contracts.TrendWeakUp:     5,
		contracts.TrendNeutral:    0,
		contracts.TrendWeakDown:   -5,
		contracts.TrendDown:       -10,
		contracts.TrendStrongDown: -15,
	}

	volumePoints = map[contracts.VolumeSignal]int{
		contracts.VolumeSurge:    5,
		contracts.VolumeIncrease: 2,
	}
)

// Score computes the composite score starting from a neutral base of 50
func (s *Scorer) Score(tech contracts.TechnicalSnapshot, fund contracts.FundamentalSnapshot) int {
	score := 50

	score += applyBands(return1MBands, tech.Returns["1m"])

	if fund.PER != nil {
		score += applyBands(perBands, *fund.PER)
	}
	if fund.PBR != nil {
		score += applyBands(pbrBands, *fund.PBR)
	}
	if tech.RSI != nil {
		score += applyBands(rsiBands, *tech.RSI)
	}

	score += trendPoints[tech.Trend]
	score += volumePoints[tech.VolumeSignal]

	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return score
}

// RatingFor maps a score onto the investment call
func RatingFor(score int) contracts.Rating {
	switch {
	case score >= 70:
		return contracts.RatingBuy
	case score >= 40:
		return contracts.RatingHold
	default:
		return contracts.RatingSell
	}
}

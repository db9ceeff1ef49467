package flow

import "github.com/wonny/robosector/internal/contracts"

// maxStreakDays bounds the backward scan for the streak counter
const maxStreakDays = 30

// Momentum compares the last 5 days of one investor class's net buying
// against the preceding 5 days. The class is selected by the net
// extractor; foreign and institution are tracked separately because
// offsetting flows between them would cancel a one-sided streak.
// Either window summing to exactly zero classifies as NEUTRAL since
// there is no direction to compare.
func Momentum(points []contracts.FlowPoint, net func(contracts.FlowPoint) int64) contracts.FlowMomentum {
	n := len(points)

	var recent, prev int64
	for _, p := range points[clampIndex(n-5, n):] {
		recent += net(p)
	}
	for _, p := range points[clampIndex(n-10, n):clampIndex(n-5, n)] {
		prev += net(p)
	}

	m := contracts.FlowMomentum{
		Recent5D: recent,
		Prev5D:   prev,
		Signal:   momentumSignal(recent, prev),
		Streak:   streak(points, net),
	}

	// 전환점: 직전 5일과 최근 5일의 부호가 뒤집힌 경우
	m.TurningPoint = prev != 0 && recent != 0 && (prev > 0) != (recent > 0)

	return m
}

func momentumSignal(recent, prev int64) contracts.MomentumSignal {
	if recent == 0 || prev == 0 {
		return contracts.MomentumNeutral
	}
	switch {
	case recent > 0 && recent > prev:
		return contracts.MomentumBuyAccelerating
	case recent > 0 && recent < prev:
		return contracts.MomentumBuySlowing
	case recent < 0 && recent < prev:
		return contracts.MomentumSellAccelerating
	case recent < 0 && recent > prev:
		return contracts.MomentumSellSlowing
	default:
		return contracts.MomentumNeutral
	}
}

// streak counts consecutive same-signed days of one class's net buying
// from the most recent day backwards, negative for selling streaks.
// A flat most-recent day means no streak.
func streak(points []contracts.FlowPoint, net func(contracts.FlowPoint) int64) int {
	n := len(points)
	if n == 0 {
		return 0
	}

	latest := net(points[n-1])
	if latest == 0 {
		return 0
	}
	positive := latest > 0

	count := 0
	for i := n - 1; i >= 0 && count < maxStreakDays; i-- {
		v := net(points[i])
		if v == 0 || (v > 0) != positive {
			break
		}
		count++
	}

	if positive {
		return count
	}
	return -count
}

func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i > n {
		return n
	}
	return i
}

package flow

import (
	"testing"

	"github.com/wonny/robosector/internal/contracts"
)

func momentumFromDaily(values []int64) contracts.FlowMomentum {
	points := make([]contracts.FlowPoint, len(values))
	for i, v := range values {
		points[i].ForeignNet = v
	}
	return Momentum(points, func(p contracts.FlowPoint) int64 { return p.ForeignNet })
}

func TestMomentumSignal(t *testing.T) {
	tests := []struct {
		name       string
		daily      []int64
		wantSignal contracts.MomentumSignal
	}{
		{
			"buying accelerating",
			[]int64{10, 10, 10, 10, 10, 50, 50, 50, 50, 50},
			contracts.MomentumBuyAccelerating,
		},
		{
			"buying slowing",
			[]int64{50, 50, 50, 50, 50, 10, 10, 10, 10, 10},
			contracts.MomentumBuySlowing,
		},
		{
			"selling accelerating",
			[]int64{-10, -10, -10, -10, -10, -50, -50, -50, -50, -50},
			contracts.MomentumSellAccelerating,
		},
		{
			"selling slowing",
			[]int64{-50, -50, -50, -50, -50, -10, -10, -10, -10, -10},
			contracts.MomentumSellSlowing,
		},
		{
			"flat recent window is neutral",
			[]int64{10, 10, 10, 10, 10, 0, 0, 0, 0, 0},
			contracts.MomentumNeutral,
		},
		{
			"flat prior window is neutral",
			[]int64{0, 0, 0, 0, 0, 10, 10, 10, 10, 10},
			contracts.MomentumNeutral,
		},
		{
			"no history",
			nil,
			contracts.MomentumNeutral,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := momentumFromDaily(tt.daily)
			if got.Signal != tt.wantSignal {
				t.Errorf("Signal = %s, want %s", got.Signal, tt.wantSignal)
			}
		})
	}
}

func TestMomentumWindows(t *testing.T) {
	got := momentumFromDaily([]int64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10})

	if got.Prev5D != 15 {
		t.Errorf("Prev5D = %d, want 15", got.Prev5D)
	}
	if got.Recent5D != 40 {
		t.Errorf("Recent5D = %d, want 40", got.Recent5D)
	}
}

func TestMomentumTurningPoint(t *testing.T) {
	tests := []struct {
		name  string
		daily []int64
		want  bool
	}{
		{
			"sell flips to buy",
			[]int64{-10, -10, -10, -10, -10, 20, 20, 20, 20, 20},
			true,
		},
		{
			"buy flips to sell",
			[]int64{10, 10, 10, 10, 10, -20, -20, -20, -20, -20},
			true,
		},
		{
			"same direction",
			[]int64{10, 10, 10, 10, 10, 20, 20, 20, 20, 20},
			false,
		},
		{
			"flat prior window is not a turn",
			[]int64{0, 0, 0, 0, 0, 20, 20, 20, 20, 20},
			false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := momentumFromDaily(tt.daily)
			if got.TurningPoint != tt.want {
				t.Errorf("TurningPoint = %v, want %v", got.TurningPoint, tt.want)
			}
		})
	}
}

func TestStreak(t *testing.T) {
	tests := []struct {
		name  string
		daily []int64
		want  int
	}{
		{"three day buying streak", []int64{-5, 10, 20, 30}, 3},
		{"two day selling streak", []int64{5, -10, -20}, -2},
		{"flat last day breaks the streak", []int64{10, 10, 0}, 0},
		{"zero inside history stops the scan", []int64{10, 0, 10, 10}, 2},
		{"empty history", nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := momentumFromDaily(tt.daily)
			if got.Streak != tt.want {
				t.Errorf("Streak = %d, want %d", got.Streak, tt.want)
			}
		})
	}
}

func TestMomentumPerClass(t *testing.T) {
	// 10 days of foreign buying fully offset by institution selling:
	// each class keeps its own streak and direction
	points := make([]contracts.FlowPoint, 10)
	for i := range points {
		points[i].ForeignNet = krwBillion
		points[i].InstitutionNet = -krwBillion
	}

	foreign := Momentum(points, func(p contracts.FlowPoint) int64 { return p.ForeignNet })
	inst := Momentum(points, func(p contracts.FlowPoint) int64 { return p.InstitutionNet })

	if foreign.Streak != 10 {
		t.Errorf("Foreign streak = %d, want 10", foreign.Streak)
	}
	if foreign.Recent5D != 5*krwBillion || foreign.Prev5D != 5*krwBillion {
		t.Errorf("Foreign windows = %d/%d, want %d/%d",
			foreign.Recent5D, foreign.Prev5D, 5*krwBillion, 5*krwBillion)
	}

	if inst.Streak != -10 {
		t.Errorf("Institution streak = %d, want -10", inst.Streak)
	}
	// equal windows carry no acceleration either way
	if inst.Signal != contracts.MomentumNeutral {
		t.Errorf("Institution signal = %s, want NEUTRAL", inst.Signal)
	}
	if inst.Recent5D != -5*krwBillion {
		t.Errorf("Institution Recent5D = %d, want %d", inst.Recent5D, -5*krwBillion)
	}
}

func TestStreakCap(t *testing.T) {
	daily := make([]int64, 40)
	for i := range daily {
		daily[i] = 100
	}

	got := momentumFromDaily(daily)
	if got.Streak != maxStreakDays {
		t.Errorf("Streak = %d, want cap %d", got.Streak, maxStreakDays)
	}
}

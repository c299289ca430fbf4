package runrate

import (
	"errors"
	"testing"
)

func TestDerive_MidChase(t *testing.T) {
	got := Derive(Snapshot{Target: 180, CurrentScore: 100, OversCompleted: 10.2, WicketsLost: 3}, T20)

	want := Metrics{
		BallsCompleted:  62,
		RunsLeft:        80,
		BallsLeft:       58,
		CurrentRunRate:  9.68,
		RequiredRunRate: 8.28,
		Outcome:         OutcomeInProgress,
	}
	if got != want {
		t.Fatalf("got %+v want %+v", got, want)
	}
}

func TestDerive_Boundaries(t *testing.T) {
	tests := []struct {
		name     string
		snapshot Snapshot
		format   Format
		check    func(t *testing.T, m Metrics)
	}{
		{
			name:     "not started has zero current rate",
			snapshot: Snapshot{Target: 150, OversCompleted: 0},
			format:   T20,
			check: func(t *testing.T, m Metrics) {
				if m.CurrentRunRate != 0 || m.Outcome != OutcomeNotStarted || m.BallsLeft != 120 {
					t.Fatalf("unexpected metrics: %+v", m)
				}
				if m.RequiredRunRate != 7.5 {
					t.Fatalf("expected rrr 7.5, got %v", m.RequiredRunRate)
				}
			},
		},
		{
			name:     "no balls left reports sentinel",
			snapshot: Snapshot{Target: 150, CurrentScore: 140, OversCompleted: 20.0},
			format:   T20,
			check: func(t *testing.T, m Metrics) {
				if m.BallsLeft != 0 || m.RequiredRunRate != RequiredRateSentinel || !m.Sentinel {
					t.Fatalf("expected sentinel, got %+v", m)
				}
				if m.Outcome != OutcomeInningsComplete {
					t.Fatalf("expected innings complete, got %s", m.Outcome)
				}
			},
		},
		{
			name:     "chase complete keeps negative runs left",
			snapshot: Snapshot{Target: 150, CurrentScore: 155, OversCompleted: 18.3},
			format:   T20,
			check: func(t *testing.T, m Metrics) {
				if m.RunsLeft != -5 || m.Outcome != OutcomeChaseComplete || m.Sentinel {
					t.Fatalf("unexpected metrics: %+v", m)
				}
			},
		},
		{
			name:     "odi format",
			snapshot: Snapshot{Target: 300, CurrentScore: 150, OversCompleted: 25.0},
			format:   ODI,
			check: func(t *testing.T, m Metrics) {
				if m.BallsLeft != 150 || m.RequiredRunRate != 6 || m.CurrentRunRate != 6 {
					t.Fatalf("unexpected metrics: %+v", m)
				}
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.check(t, Derive(tc.snapshot, tc.format))
		})
	}
}

func TestDerive_BallsAndRunsInvariant(t *testing.T) {
	for over := 0; over < 20; over++ {
		for ball := 0; ball <= 5; ball++ {
			overs := float64(over) + float64(ball)/10
			m := Derive(Snapshot{Target: 200, CurrentScore: 90, OversCompleted: overs}, T20)
			if m.BallsCompleted != over*6+ball {
				t.Fatalf("overs %.1f: balls %d", overs, m.BallsCompleted)
			}
			if m.BallsCompleted < 0 || m.BallsCompleted > 119 {
				t.Fatalf("balls out of range: %d", m.BallsCompleted)
			}
			if m.RunsLeft+90 != 200 {
				t.Fatalf("runs left does not reconcile: %d", m.RunsLeft)
			}
		}
	}
}

func TestValidateSnapshot(t *testing.T) {
	tests := []struct {
		name      string
		snapshot  Snapshot
		targetErr error
	}{
		{name: "valid", snapshot: Snapshot{Target: 180, CurrentScore: 100, OversCompleted: 10.2, WicketsLost: 3}},
		{name: "ball digit six", snapshot: Snapshot{Target: 180, OversCompleted: 10.6}, targetErr: ErrInvalidOvers},
		{name: "two decimals", snapshot: Snapshot{Target: 180, OversCompleted: 10.25}, targetErr: ErrInvalidOvers},
		{name: "negative overs", snapshot: Snapshot{Target: 180, OversCompleted: -1}, targetErr: ErrInvalidOvers},
		{name: "innings over", snapshot: Snapshot{Target: 180, OversCompleted: 20.0}, targetErr: ErrOversExceeded},
		{name: "wickets", snapshot: Snapshot{Target: 180, WicketsLost: 11}, targetErr: ErrInvalidWickets},
		{name: "score", snapshot: Snapshot{Target: 180, CurrentScore: -1}, targetErr: ErrInvalidScore},
		{name: "target", snapshot: Snapshot{Target: 0}, targetErr: ErrInvalidTarget},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateSnapshot(tc.snapshot, T20)
			if tc.targetErr == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tc.targetErr) {
				t.Fatalf("expected %v, got %v", tc.targetErr, err)
			}
		})
	}
}

func TestFormatForOvers(t *testing.T) {
	if FormatForOvers(50) != ODI || FormatForOvers(20) != T20 {
		t.Fatalf("expected named formats")
	}
	if got := FormatForOvers(15); got.Name != "15-over" || got.TotalBalls() != 90 {
		t.Fatalf("unexpected custom format: %+v", got)
	}
	if OversFromBalls(62) != 10.2 {
		t.Fatalf("unexpected overs from balls: %v", OversFromBalls(62))
	}
}

// Package runrate derives chase projections from a partial-innings snapshot.
package runrate

import (
	"errors"
	"fmt"
	"math"
)

// RequiredRateSentinel is reported as the required rate once no balls remain.
// It is a reserved marker, not a realistic rate; Metrics.Sentinel flags it.
const RequiredRateSentinel = 99.99

const BallsPerOver = 6

// Format fixes the number of overs per innings.
type Format struct {
	Name            string
	OversPerInnings int
}

var (
	T20 = Format{Name: "T20", OversPerInnings: 20}
	ODI = Format{Name: "ODI", OversPerInnings: 50}
	T10 = Format{Name: "T10", OversPerInnings: 10}
)

// FormatForOvers returns the named format for overs, or a custom one.
func FormatForOvers(overs int) Format {
	for _, f := range []Format{T20, ODI, T10} {
		if f.OversPerInnings == overs {
			return f
		}
	}
	return Format{Name: fmt.Sprintf("%d-over", overs), OversPerInnings: overs}
}

func (f Format) TotalBalls() int {
	return f.OversPerInnings * BallsPerOver
}

// Snapshot is a caller-supplied point in a chase. OversCompleted uses N.B
// notation where B is balls 0..5 of the current over.
type Snapshot struct {
	Target         int
	CurrentScore   int
	OversCompleted float64
	WicketsLost    int
}

type Outcome string

const (
	OutcomeNotStarted      Outcome = "not_started"
	OutcomeInProgress      Outcome = "in_progress"
	OutcomeChaseComplete   Outcome = "chase_complete"
	OutcomeInningsComplete Outcome = "innings_complete"
)

type Metrics struct {
	BallsCompleted  int
	RunsLeft        int
	BallsLeft       int
	CurrentRunRate  float64
	RequiredRunRate float64
	Outcome         Outcome
	// Sentinel is set when RequiredRunRate holds RequiredRateSentinel.
	Sentinel bool
}

// BallsFromOvers converts N.B overs to balls bowled.
func BallsFromOvers(overs float64) int {
	whole := math.Floor(overs)
	return int(whole)*BallsPerOver + int(math.Round((overs-whole)*10))
}

// OversFromBalls is the inverse of BallsFromOvers.
func OversFromBalls(balls int) float64 {
	return float64(balls/BallsPerOver) + float64(balls%BallsPerOver)/10
}

// Derive computes the chase metrics. It is total: out-of-domain snapshots still
// produce values, so callers validate first with ValidateSnapshot.
func Derive(s Snapshot, f Format) Metrics {
	balls := BallsFromOvers(s.OversCompleted)
	runsLeft := s.Target - s.CurrentScore
	ballsLeft := f.TotalBalls() - balls

	m := Metrics{
		BallsCompleted: balls,
		RunsLeft:       runsLeft,
		BallsLeft:      ballsLeft,
	}

	if balls > 0 {
		m.CurrentRunRate = round2(float64(s.CurrentScore) / float64(balls) * BallsPerOver)
	}
	if ballsLeft > 0 {
		m.RequiredRunRate = round2(float64(runsLeft) / float64(ballsLeft) * BallsPerOver)
	} else {
		m.RequiredRunRate = RequiredRateSentinel
		m.Sentinel = true
	}

	switch {
	case runsLeft <= 0:
		m.Outcome = OutcomeChaseComplete
	case ballsLeft <= 0:
		m.Outcome = OutcomeInningsComplete
	case balls == 0:
		m.Outcome = OutcomeNotStarted
	default:
		m.Outcome = OutcomeInProgress
	}

	return m
}

var (
	ErrInvalidOvers   = errors.New("overs must use N.B notation with balls 0-5")
	ErrOversExceeded  = errors.New("overs exceed the innings")
	ErrInvalidWickets = errors.New("wickets must be between 0 and 10")
	ErrInvalidScore   = errors.New("score must be non-negative")
	ErrInvalidTarget  = errors.New("target must be positive")
)

// ValidateSnapshot enforces Derive's preconditions for format f.
func ValidateSnapshot(s Snapshot, f Format) error {
	if s.Target <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidTarget, s.Target)
	}
	if s.CurrentScore < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidScore, s.CurrentScore)
	}
	if s.WicketsLost < 0 || s.WicketsLost > 10 {
		return fmt.Errorf("%w: %d", ErrInvalidWickets, s.WicketsLost)
	}
	if err := validateOvers(s.OversCompleted); err != nil {
		return err
	}
	if s.OversCompleted >= float64(f.OversPerInnings) {
		return fmt.Errorf("%w: %.1f >= %d", ErrOversExceeded, s.OversCompleted, f.OversPerInnings)
	}
	return nil
}

func validateOvers(overs float64) error {
	if math.IsNaN(overs) || math.IsInf(overs, 0) || overs < 0 {
		return fmt.Errorf("%w: %v", ErrInvalidOvers, overs)
	}
	tenths := overs * 10
	if math.Abs(tenths-math.Round(tenths)) > 1e-6 {
		return fmt.Errorf("%w: %v has more than one decimal", ErrInvalidOvers, overs)
	}
	if ball := int(math.Round(tenths)) % 10; ball > 5 {
		return fmt.Errorf("%w: ball digit %d", ErrInvalidOvers, ball)
	}
	return nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

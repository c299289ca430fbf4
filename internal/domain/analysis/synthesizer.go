// Package analysis builds reproducible per-match chart data from a scoreline.
//
// Every draw comes from a PCG generator seeded by the caller, so the same seed
// and inputs always produce the same bundle. Batting, partnerships, overs and
// phases are allocated so that they sum exactly to the team score.
package analysis

import (
	"fmt"
	"hash/fnv"
	"math"
	"math/rand/v2"
	"strings"

	"github.com/riskibarqy/cricket-analytics/internal/domain/cricket"
)

const (
	battingSlots      = 6
	partnershipCount  = 5
	bowlerCount       = 5
	performanceCount  = 6
	maxRunsPerOver    = 15
	wicketProbability = 0.8
)

var wagonWheelDirections = []string{
	"Fine Leg", "Square Leg", "Mid Wicket", "Mid On", "Cover", "Point", "Third Man",
}

var phaseLabels = [3]string{"Powerplay (1-6)", "Middle (7-15)", "Death (16-20)"}

// TeamInput identifies one side. A nil Innings, or one with no runs, yields an
// empty team analysis.
type TeamInput struct {
	Name    string
	Code    string
	Innings *cricket.InningsScore
}

// SeedFor derives a stable seed from a match id.
func SeedFor(matchID string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(matchID))
	return h.Sum64()
}

// Synthesize is pure and safe for concurrent use.
func Synthesize(seed uint64, team1, team2 TeamInput) MatchAnalysis {
	rng := newRand(seed)

	team1 = withPlaceholders(team1, cricket.PlaceholderTeam1, cricket.PlaceholderTeam1Short)
	team2 = withPlaceholders(team2, cricket.PlaceholderTeam2, cricket.PlaceholderTeam2Short)

	out := MatchAnalysis{
		Team1: synthesizeTeam(rng, team1),
		Team2: synthesizeTeam(rng, team2),
	}
	out.Info.Result = resultLine(team1, team2)
	if rng.Float64() > 0.5 {
		out.Info.Toss = team1.Name + " won the toss and elected to bat"
	} else {
		out.Info.Toss = team2.Name + " won the toss and elected to field"
	}
	return out
}

func withPlaceholders(in TeamInput, name, code string) TeamInput {
	if strings.TrimSpace(in.Name) == "" {
		in.Name = name
	}
	if strings.TrimSpace(in.Code) == "" {
		in.Code = code
	}
	return in
}

func synthesizeTeam(rng *rand.Rand, in TeamInput) TeamAnalysis {
	line := Scoreline{Name: in.Name, Code: in.Code}
	if in.Innings == nil || in.Innings.Runs <= 0 {
		return TeamAnalysis{
			Scoreline:   line,
			Batting:     []BattingEntry{},
			Bowling:     []BowlingEntry{},
			Partnership: []Partnership{},
			Overs:       []OverEntry{{Over: 1, Runs: 0}},
			Phases:      []PhaseSplit{},
			Performance: []PlayerPerformance{},
			WagonWheel:  []WagonWheelEntry{},
		}
	}

	line.Score = in.Innings.Runs
	line.Wickets = in.Innings.Wickets
	line.Overs = in.Innings.Overs
	// Draws happen unconditionally so the stream stays aligned whether or not
	// upstream supplied overs and wickets.
	drawnBalls := 60 + rng.IntN(60)
	drawnWickets := rng.IntN(10)
	if line.Overs < 1 {
		line.Overs = float64(drawnBalls/6) + float64(drawnBalls%6)/10
		line.Wickets = drawnWickets
	}

	score := line.Score
	return TeamAnalysis{
		Scoreline:   line,
		Batting:     battingSplit(rng, score),
		Bowling:     bowlingFigures(rng),
		Partnership: partnershipSplit(rng, score),
		Overs:       overByOver(rng, score, int(math.Floor(line.Overs))),
		Phases:      phaseSplit(rng, score),
		Performance: playerPerformance(rng),
		WagonWheel:  wagonWheel(rng, score),
	}
}

func battingSplit(rng *rand.Rand, score int) []BattingEntry {
	entries := make([]BattingEntry, 0, battingSlots)
	remaining := score
	for i := 0; i < battingSlots && remaining > 0; i++ {
		runs := remaining
		if i < battingSlots-1 {
			runs = int(rng.Float64() * float64(remaining) / 2)
		}
		balls := ballsFaced(rng, runs)
		entries = append(entries, BattingEntry{
			Name:       fmt.Sprintf("Player %d", i+1),
			Runs:       runs,
			Balls:      balls,
			StrikeRate: round2(float64(runs) / float64(balls) * 100),
			Fours:      runs / 10,
			Sixes:      runs / 20,
		})
		remaining -= runs
	}
	return entries
}

func partnershipSplit(rng *rand.Rand, score int) []Partnership {
	entries := make([]Partnership, 0, partnershipCount)
	total := 0
	for wicket := 1; wicket <= partnershipCount; wicket++ {
		runs := score - total
		if wicket < partnershipCount {
			runs = int(rng.Float64() * float64(score) / 6)
		}
		entries = append(entries, Partnership{
			Wicket:  wicket,
			Players: fmt.Sprintf("Player %d & Player %d", wicket, wicket+1),
			Runs:    runs,
			Balls:   ballsFaced(rng, runs),
		})
		total += runs
	}
	return entries
}

// overByOver spreads score across n overs. Each over before the last draws up to
// 14 runs but leaves at least one run for every later over; once only that
// reserve is left each remaining over takes a single filler run, and the last
// over absorbs whatever is left.
func overByOver(rng *rand.Rand, score, n int) []OverEntry {
	if n < 1 {
		n = 1
	}

	entries := make([]OverEntry, 0, n)
	remaining := score
	for over := 1; over <= n; over++ {
		draw := rng.IntN(maxRunsPerOver)
		wicket := 0
		if rng.Float64() > wicketProbability {
			wicket = 1
		}

		later := n - over
		entry := OverEntry{Over: over, Wickets: wicket}
		switch {
		case later == 0:
			entry.Runs = remaining
		case remaining <= later:
			entry.Runs = min(1, remaining)
			entry.Wickets = 0
			entry.Filler = true
		default:
			entry.Runs = min(draw, remaining-later)
		}
		remaining -= entry.Runs
		entries = append(entries, entry)
	}
	return entries
}

func phaseSplit(rng *rand.Rand, score int) []PhaseSplit {
	powerplay := int(float64(score) * (0.25 + 0.1*rng.Float64()))
	middle := int(float64(score) * (0.35 + 0.1*rng.Float64()))
	return []PhaseSplit{
		{Phase: phaseLabels[0], Runs: powerplay},
		{Phase: phaseLabels[1], Runs: middle},
		{Phase: phaseLabels[2], Runs: score - powerplay - middle},
	}
}

func bowlingFigures(rng *rand.Rand) []BowlingEntry {
	entries := make([]BowlingEntry, 0, bowlerCount)
	for i := 0; i < bowlerCount; i++ {
		balls := 6 + rng.IntN(19)
		runs := 10 + rng.IntN(40)
		entries = append(entries, BowlingEntry{
			Name:    fmt.Sprintf("Bowler %d", i+1),
			Overs:   float64(balls/6) + float64(balls%6)/10,
			Maidens: rng.IntN(2),
			Runs:    runs,
			Wickets: rng.IntN(3),
			Economy: round2(float64(runs) / (float64(balls) / 6)),
		})
	}
	return entries
}

func playerPerformance(rng *rand.Rand) []PlayerPerformance {
	entries := make([]PlayerPerformance, 0, performanceCount)
	for i := 0; i < performanceCount; i++ {
		entries = append(entries, PlayerPerformance{
			Name:    fmt.Sprintf("Player %d", i+1),
			Runs:    10 + rng.IntN(50),
			Wickets: rng.IntN(3),
		})
	}
	return entries
}

func wagonWheel(rng *rand.Rand, score int) []WagonWheelEntry {
	entries := make([]WagonWheelEntry, 0, len(wagonWheelDirections))
	for _, direction := range wagonWheelDirections {
		entries = append(entries, WagonWheelEntry{
			Direction: direction,
			Runs:      int(rng.Float64() * float64(score) / float64(len(wagonWheelDirections))),
		})
	}
	return entries
}

func ballsFaced(rng *rand.Rand, runs int) int {
	return max(1, int(float64(runs)*(0.7+0.5*rng.Float64())))
}

func resultLine(team1, team2 TeamInput) string {
	if team1.Innings == nil || team2.Innings == nil {
		return "Result unavailable"
	}
	s1, s2 := team1.Innings.Runs, team2.Innings.Runs
	switch {
	case s1 == s2:
		return "Match tied"
	case s1 > s2:
		return fmt.Sprintf("%s won by %d runs", team1.Name, s1-s2)
	default:
		return fmt.Sprintf("%s won by %d runs", team2.Name, s2-s1)
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func newRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

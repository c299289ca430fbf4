package analysis

// MatchAnalysis is the charting bundle for one selected match.
type MatchAnalysis struct {
	Info  Info
	Team1 TeamAnalysis
	Team2 TeamAnalysis
}

type Info struct {
	Date   string
	Venue  string
	Result string
	Toss   string
}

type TeamAnalysis struct {
	Scoreline   Scoreline
	Batting     []BattingEntry
	Bowling     []BowlingEntry
	Partnership []Partnership
	Overs       []OverEntry
	Phases      []PhaseSplit
	Performance []PlayerPerformance
	WagonWheel  []WagonWheelEntry
}

type Scoreline struct {
	Name    string
	Code    string
	Score   int
	Wickets int
	// Overs in N.B notation.
	Overs float64
}

type BattingEntry struct {
	Name       string
	Runs       int
	Balls      int
	StrikeRate float64
	Fours      int
	Sixes      int
}

type BowlingEntry struct {
	Name    string
	Overs   float64
	Maidens int
	Runs    int
	Wickets int
	Economy float64
}

type Partnership struct {
	Wicket  int
	Players string
	Runs    int
	Balls   int
}

type OverEntry struct {
	Over    int
	Runs    int
	Wickets int
	// Filler marks overs padded with a single run once the total was nearly spent.
	Filler bool
}

type PhaseSplit struct {
	Phase string
	Runs  int
}

type PlayerPerformance struct {
	Name    string
	Runs    int
	Wickets int
}

type WagonWheelEntry struct {
	Direction string
	Runs      int
}

func sumBatting(entries []BattingEntry) int {
	total := 0
	for _, e := range entries {
		total += e.Runs
	}
	return total
}

// Reconciles reports whether batting, overs, phases and partnerships all sum
// to the scoreline.
func (t TeamAnalysis) Reconciles() bool {
	score := t.Scoreline.Score
	if score <= 0 {
		return len(t.Batting) == 0 && len(t.Phases) == 0
	}

	overs, phases, partnerships := 0, 0, 0
	for _, o := range t.Overs {
		overs += o.Runs
	}
	for _, p := range t.Phases {
		phases += p.Runs
	}
	for _, p := range t.Partnership {
		partnerships += p.Runs
	}
	return sumBatting(t.Batting) == score && overs == score && phases == score && partnerships == score
}

package prediction

import "context"

// Backend is the local win-probability model and natural-language query service.
type Backend interface {
	Predict(ctx context.Context, req Request) (Result, error)
	Query(ctx context.Context, query string) (string, error)
}

// Request is the chase state sent to the model.
type Request struct {
	BattingTeam string
	BowlingTeam string
	City        string
	RunsLeft    int
	BallsLeft   int
	Wickets     int
	Target      int
	CRR         float64
	RRR         float64
}

type Result struct {
	BattingTeamWinProbability float64
	BowlingTeamWinProbability float64
	Summary                   string
}

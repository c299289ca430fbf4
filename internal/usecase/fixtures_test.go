package usecase

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/riskibarqy/cricket-analytics/internal/domain/cricket"
)

func anyCtx() any {
	return mock.MatchedBy(func(context.Context) bool { return true })
}

func playedMatch(id, team1, short1, team2, short2, status string, runs1, runs2 int) cricket.NestedMatch {
	return cricket.NestedMatch{Info: &cricket.MatchInfo{
		MatchID:   id,
		StartDate: "1680962400000",
		Ground:    "Wankhede Stadium",
		Team1:     cricket.RawTeam{Name: team1, ShortName: short1},
		Team2:     cricket.RawTeam{Name: team2, ShortName: short2},
		Status:    status,
		Score1:    &cricket.InningsScore{Runs: runs1, Wickets: 6, Overs: 20},
		Score2:    &cricket.InningsScore{Runs: runs2, Wickets: 8, Overs: 19.4},
	}}
}

func nestedPayload(items ...cricket.NestedMatch) cricket.RawMatchPayload {
	return cricket.RawMatchPayload{Details: []cricket.MatchDetail{{Shape: cricket.ShapeNested, Nested: items}}}
}

func flatPayload(ids ...string) cricket.RawMatchPayload {
	payload := cricket.RawMatchPayload{}
	for _, id := range ids {
		payload.Details = append(payload.Details, cricket.MatchDetail{
			Shape: cricket.ShapeFlat,
			Flat: cricket.FlatMatch{
				ID:    id,
				Key:   "2024-04-01",
				Team1: cricket.RawTeam{Name: "Mumbai Indians", ShortName: "MI"},
				Team2: cricket.RawTeam{Name: "Chennai Super Kings", ShortName: "CSK"},
			},
		})
	}
	return payload
}

func ipl2023Payload() cricket.RawMatchPayload {
	return nestedPayload(
		playedMatch("101", "Mumbai Indians", "MI", "Chennai Super Kings", "CSK", "Chennai Super Kings won by 7 wkts", 157, 159),
		playedMatch("102", "Gujarat Titans", "GT", "Kolkata Knight Riders", "KKR", "Kolkata Knight Riders won by 3 wkts", 204, 207),
		playedMatch("103", "Chennai Super Kings", "CSK", "Mumbai Indians", "MI", "Chennai Super Kings won by 6 runs", 172, 166),
		cricket.NestedMatch{},
	)
}

package cricket

import (
	"reflect"
	"testing"
)

func fixtureMatches() []Match {
	return []Match{
		{ID: "1", Team1: TeamRef{Name: "Chennai Super Kings", ShortName: "CSK"}, Team2: TeamRef{Name: "Mumbai Indians", ShortName: "MI"}},
		{ID: "2", Team1: TeamRef{Name: "Gujarat Titans", ShortName: "GT"}, Team2: TeamRef{Name: "Rajasthan Royals", ShortName: "RR"}},
		{ID: "3", Team1: TeamRef{Name: "Mumbai Indians", ShortName: "MI"}, Team2: TeamRef{Name: "Chennai Super Kings", ShortName: "CSK"}},
	}
}

func ids(matches []Match) []string {
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		out = append(out, m.ID)
	}
	return out
}

func TestFilterByTeams(t *testing.T) {
	tests := []struct {
		name   string
		q1, q2 string
		want   []string
	}{
		{name: "short names", q1: "csk", q2: "mi", want: []string{"1", "3"}},
		{name: "swapped order", q1: "mi", q2: "csk", want: []string{"1", "3"}},
		{name: "full name substring", q1: "super kings", q2: "MUMBAI", want: []string{"1", "3"}},
		{name: "no match", q1: "csk", q2: "gt", want: []string{}},
		{name: "blank first passes through", q1: "  ", q2: "mi", want: []string{"1", "2", "3"}},
		{name: "blank second passes through", q1: "csk", q2: "", want: []string{"1", "2", "3"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := ids(FilterByTeams(fixtureMatches(), tc.q1, tc.q2))
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("got %v want %v", got, tc.want)
			}
		})
	}
}

func TestFilterByTeams_Symmetric(t *testing.T) {
	a := FilterByTeams(fixtureMatches(), "csk", "mi")
	b := FilterByTeams(fixtureMatches(), "mi", "csk")
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("filter must be symmetric: %v vs %v", ids(a), ids(b))
	}
}

func TestTeamRef_Matches(t *testing.T) {
	team := TeamRef{Name: "Gujarat Titans", ShortName: "GT"}
	if !team.Matches("titans") || !team.Matches(" gt ") || team.Matches("csk") || team.Matches("") {
		t.Fatalf("unexpected Matches results for %+v", team)
	}
}

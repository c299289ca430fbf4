package cricket

import "strings"

// FilterByTeams keeps matches between the two queried teams in either order.
// A query matches a team when it is a case-insensitive substring of the team's
// name or short name. A blank query on either side disables filtering.
func FilterByTeams(matches []Match, query1, query2 string) []Match {
	q1 := strings.ToLower(strings.TrimSpace(query1))
	q2 := strings.ToLower(strings.TrimSpace(query2))
	if q1 == "" || q2 == "" {
		return matches
	}

	out := make([]Match, 0, len(matches))
	for _, match := range matches {
		straight := teamMatches(match.Team1, q1) && teamMatches(match.Team2, q2)
		swapped := teamMatches(match.Team1, q2) && teamMatches(match.Team2, q1)
		if straight || swapped {
			out = append(out, match)
		}
	}
	return out
}

// Matches applies the team filter rule to a single team. A blank query never matches.
func (t TeamRef) Matches(query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return false
	}
	return teamMatches(t, q)
}

func teamMatches(team TeamRef, lowered string) bool {
	return strings.Contains(strings.ToLower(team.Name), lowered) ||
		strings.Contains(strings.ToLower(team.ShortName), lowered)
}

package cricket

import "strings"

// Winner reads the winning side from a finished match's status line, e.g.
// "Mumbai Indians won by 7 wkts". It reports false for no result, ties and
// matches still in progress.
func Winner(match Match) (TeamRef, bool) {
	status := strings.ToLower(strings.TrimSpace(match.Status))
	if status == "" || !strings.Contains(status, " won") {
		return TeamRef{}, false
	}

	for _, team := range []TeamRef{match.Team1, match.Team2} {
		for _, label := range []string{team.Name, team.ShortName} {
			label = strings.ToLower(strings.TrimSpace(label))
			if label != "" && strings.HasPrefix(status, label+" won") {
				return team, true
			}
		}
	}
	return TeamRef{}, false
}

package cricket

import (
	"fmt"
	"hash/fnv"
	"strconv"
	"strings"
	"time"
)

// NormalizationGap records a field that was missing upstream and defaulted.
// Item is -1 for gaps that concern the whole detail entry.
type NormalizationGap struct {
	Detail int
	Item   int
	Field  string
}

const dateLayout = "2006-01-02"

// Normalize flattens every detail entry into canonical matches, in encounter
// order, without deduplication. It never fails: missing fields take their
// placeholder and are reported as gaps.
func Normalize(payload RawMatchPayload) ([]Match, []NormalizationGap) {
	matches := make([]Match, 0, len(payload.Details))
	var gaps []NormalizationGap

	for detailIdx, detail := range payload.Details {
		switch detail.Shape {
		case ShapeNested:
			for itemIdx, item := range detail.Nested {
				if item.Info == nil {
					gaps = append(gaps, NormalizationGap{Detail: detailIdx, Item: itemIdx, Field: "matchInfo"})
					continue
				}
				g := gapSink{detail: detailIdx, item: itemIdx, gaps: &gaps}
				matches = append(matches, normalizeNested(*item.Info, g))
			}
		case ShapeFlat:
			g := gapSink{detail: detailIdx, item: -1, gaps: &gaps}
			matches = append(matches, normalizeFlat(detail.Flat, g))
		default:
			gaps = append(gaps, NormalizationGap{Detail: detailIdx, Item: -1, Field: "matchDetailsMap"})
		}
	}

	return matches, gaps
}

type gapSink struct {
	detail int
	item   int
	gaps   *[]NormalizationGap
}

func (g gapSink) add(field string) {
	*g.gaps = append(*g.gaps, NormalizationGap{Detail: g.detail, Item: g.item, Field: field})
}

func normalizeNested(info MatchInfo, g gapSink) Match {
	match := Match{
		ID:     strings.TrimSpace(info.MatchID),
		Date:   epochMillisToDate(info.StartDate),
		Venue:  strings.TrimSpace(info.Ground),
		Team1:  teamOrPlaceholder(info.Team1, PlaceholderTeam1, PlaceholderTeam1Short, "team1", g),
		Team2:  teamOrPlaceholder(info.Team2, PlaceholderTeam2, PlaceholderTeam2Short, "team2", g),
		Status: strings.TrimSpace(info.Status),
		Score1: copyScore(info.Score1),
		Score2: copyScore(info.Score2),
	}
	if match.ID == "" {
		match.ID = fallbackID(info.Team1.Name, info.Team2.Name, info.StartDate)
		g.add("matchId")
	}
	if match.Date == "" {
		match.Date = UnknownDate
		g.add("startDate")
	}
	if match.Venue == "" {
		match.Venue = UnknownVenue
		g.add("venueInfo.ground")
	}
	return match
}

func normalizeFlat(flat FlatMatch, g gapSink) Match {
	match := Match{
		ID:    strings.TrimSpace(flat.ID),
		Date:  strings.TrimSpace(flat.Key),
		Venue: UnknownVenue,
		Team1: teamOrPlaceholder(flat.Team1, PlaceholderTeam1, PlaceholderTeam1Short, "team1", g),
		Team2: teamOrPlaceholder(flat.Team2, PlaceholderTeam2, PlaceholderTeam2Short, "team2", g),
	}
	if match.ID == "" {
		match.ID = fallbackID(flat.Team1.Name, flat.Team2.Name, flat.Key)
		g.add("id")
	}
	if match.Date == "" {
		match.Date = UnknownDate
		g.add("key")
	}
	return match
}

func teamOrPlaceholder(raw RawTeam, name, short, field string, g gapSink) TeamRef {
	ref := TeamRef{
		Name:      strings.TrimSpace(raw.Name),
		ShortName: strings.TrimSpace(raw.ShortName),
	}
	if ref.Name == "" {
		ref.Name = name
		g.add(field + ".name")
	}
	if ref.ShortName == "" {
		ref.ShortName = short
		g.add(field + ".shortName")
	}
	return ref
}

func epochMillisToDate(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}
	ms, err := strconv.ParseInt(value, 10, 64)
	if err != nil || ms <= 0 {
		return ""
	}
	return time.UnixMilli(ms).UTC().Format(dateLayout)
}

// fallbackID derives a stable id from the raw team names and date key so that
// normalizing the same payload twice yields the same ids.
func fallbackID(team1, team2, key string) string {
	h := fnv.New64a()
	_, _ = h.Write([]byte(team1 + "|" + team2 + "|" + key))
	return fmt.Sprintf("gen-%016x", h.Sum64())
}

func copyScore(score *InningsScore) *InningsScore {
	if score == nil {
		return nil
	}
	out := *score
	return &out
}

package cricket

import (
	"reflect"
	"strconv"
	"testing"
	"time"
)

func epochMillis(t time.Time) string {
	return strconv.FormatInt(t.UnixMilli(), 10)
}

func samplePayload() RawMatchPayload {
	return RawMatchPayload{Details: []MatchDetail{
		{
			Shape: ShapeNested,
			Nested: []NestedMatch{
				{Info: &MatchInfo{
					MatchID:   "66169",
					StartDate: epochMillis(time.Date(2023, 4, 8, 14, 0, 0, 0, time.UTC)),
					Ground:    "Wankhede Stadium",
					Team1:     RawTeam{Name: "Mumbai Indians", ShortName: "MI"},
					Team2:     RawTeam{Name: "Chennai Super Kings", ShortName: "CSK"},
					Status:    "Chennai Super Kings won by 7 wkts",
					Score1:    &InningsScore{Runs: 157, Wickets: 8, Overs: 19.6},
					Score2:    &InningsScore{Runs: 159, Wickets: 3, Overs: 18.1},
				}},
				{Info: nil},
				{Info: &MatchInfo{MatchID: "66170"}},
			},
		},
		{Shape: ShapeMissing},
		{
			Shape: ShapeFlat,
			Flat: FlatMatch{
				Key:   "Apr 09, 2023",
				Team1: RawTeam{Name: "Gujarat Titans", ShortName: "GT"},
				Team2: RawTeam{Name: "Kolkata Knight Riders"},
			},
		},
	}}
}

func TestNormalize_NestedShape(t *testing.T) {
	matches, _ := Normalize(samplePayload())
	if len(matches) != 3 {
		t.Fatalf("expected 3 matches, got %d", len(matches))
	}

	got := matches[0]
	if got.ID != "66169" || got.Date != "2023-04-08" || got.Venue != "Wankhede Stadium" {
		t.Fatalf("unexpected nested match: %+v", got)
	}
	if got.Team1.Name != "Mumbai Indians" || got.Team2.ShortName != "CSK" {
		t.Fatalf("unexpected teams: %+v vs %+v", got.Team1, got.Team2)
	}
	if got.Score1 == nil || got.Score1.Runs != 157 || got.Score2 == nil || got.Score2.Wickets != 3 {
		t.Fatalf("unexpected scores: %+v %+v", got.Score1, got.Score2)
	}
}

func TestNormalize_PlaceholdersForMissingFields(t *testing.T) {
	matches, gaps := Normalize(samplePayload())

	sparse := matches[1]
	if sparse.Team1 != (TeamRef{Name: PlaceholderTeam1, ShortName: PlaceholderTeam1Short}) {
		t.Fatalf("unexpected team1 placeholder: %+v", sparse.Team1)
	}
	if sparse.Team2 != (TeamRef{Name: PlaceholderTeam2, ShortName: PlaceholderTeam2Short}) {
		t.Fatalf("unexpected team2 placeholder: %+v", sparse.Team2)
	}
	if sparse.Venue != UnknownVenue || sparse.Date != UnknownDate {
		t.Fatalf("expected unknown venue/date, got %q/%q", sparse.Venue, sparse.Date)
	}
	if sparse.Score1 != nil || sparse.Score2 != nil {
		t.Fatalf("expected absent scores, got %+v %+v", sparse.Score1, sparse.Score2)
	}

	flat := matches[2]
	if flat.Date != "Apr 09, 2023" || flat.Venue != UnknownVenue {
		t.Fatalf("unexpected flat metadata: %+v", flat)
	}
	if flat.Team2.Name != "Kolkata Knight Riders" || flat.Team2.ShortName != PlaceholderTeam2Short {
		t.Fatalf("unexpected flat team2: %+v", flat.Team2)
	}

	wantFields := map[string]bool{"matchInfo": false, "matchDetailsMap": false, "id": false, "team2.shortName": false}
	for _, gap := range gaps {
		if _, ok := wantFields[gap.Field]; ok {
			wantFields[gap.Field] = true
		}
	}
	for field, seen := range wantFields {
		if !seen {
			t.Fatalf("expected gap for %s in %+v", field, gaps)
		}
	}
}

func TestNormalize_NeverBothTeamNamesEmpty(t *testing.T) {
	payload := RawMatchPayload{Details: []MatchDetail{
		{Shape: ShapeFlat},
		{Shape: ShapeNested, Nested: []NestedMatch{{Info: &MatchInfo{}}}},
	}}

	matches, _ := Normalize(payload)
	for _, m := range matches {
		if m.Team1.Name == "" || m.Team2.Name == "" {
			t.Fatalf("team names must be filled: %+v", m)
		}
	}
}

func TestNormalize_IsIdempotent(t *testing.T) {
	first, firstGaps := Normalize(samplePayload())
	second, secondGaps := Normalize(samplePayload())

	if !reflect.DeepEqual(first, second) || !reflect.DeepEqual(firstGaps, secondGaps) {
		t.Fatalf("normalize must be deterministic")
	}
	if first[2].ID == "" || first[2].ID[:4] != "gen-" {
		t.Fatalf("expected generated fallback id, got %q", first[2].ID)
	}
}

func TestNormalize_KeepsDuplicatesInOrder(t *testing.T) {
	info := &MatchInfo{MatchID: "1", Team1: RawTeam{Name: "A"}, Team2: RawTeam{Name: "B"}}
	payload := RawMatchPayload{Details: []MatchDetail{
		{Shape: ShapeNested, Nested: []NestedMatch{{Info: info}, {Info: &MatchInfo{MatchID: "2"}}}},
		{Shape: ShapeNested, Nested: []NestedMatch{{Info: info}}},
	}}

	matches, _ := Normalize(payload)
	ids := []string{matches[0].ID, matches[1].ID, matches[2].ID}
	if !reflect.DeepEqual(ids, []string{"1", "2", "1"}) {
		t.Fatalf("unexpected order: %v", ids)
	}
}

func TestNormalize_DoesNotAliasScores(t *testing.T) {
	score := &InningsScore{Runs: 100}
	payload := RawMatchPayload{Details: []MatchDetail{
		{Shape: ShapeNested, Nested: []NestedMatch{{Info: &MatchInfo{MatchID: "1", Score1: score}}}},
	}}

	matches, _ := Normalize(payload)
	matches[0].Score1.Runs = 1
	if score.Runs != 100 {
		t.Fatalf("normalized match must not share score with payload")
	}
}

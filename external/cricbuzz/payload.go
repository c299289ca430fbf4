package cricbuzz

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"

	"github.com/riskibarqy/cricket-analytics/internal/domain/cricket"
)

// flexString accepts a JSON string or number; upstream ids and epoch dates
// arrive as either.
type flexString string

func (f *flexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*f = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := sonic.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = flexString(strings.TrimSpace(s))
		return nil
	}
	if _, err := strconv.ParseFloat(string(data), 64); err != nil {
		return err
	}
	*f = flexString(data)
	return nil
}

func (f flexString) String() string {
	return string(f)
}

func (f flexString) Int64() int64 {
	v, err := strconv.ParseInt(string(f), 10, 64)
	if err != nil {
		return 0
	}
	return v
}

type seriesArchiveEnvelope struct {
	SeriesMapProto []seriesYearBucket `json:"seriesMapProto"`
}

type seriesYearBucket struct {
	Date   string       `json:"date"`
	Series []seriesItem `json:"series"`
}

type seriesItem struct {
	ID      flexString `json:"id"`
	Name    string     `json:"name"`
	StartDt flexString `json:"startDt"`
	EndDt   flexString `json:"endDt"`
}

type seriesMatchesEnvelope struct {
	MatchDetails []matchDetailItem `json:"matchDetails"`
}

// matchDetailItem keeps the map raw so one malformed entry cannot fail the
// whole series decode.
type matchDetailItem struct {
	MatchDetailsMap json.RawMessage `json:"matchDetailsMap"`
}

// matchDetailsMap holds both layouts; Match is probed for an array to decide
// which one the entry uses.
type matchDetailsMap struct {
	Match json.RawMessage `json:"match"`
	ID    flexString      `json:"id"`
	Key   string          `json:"key"`
	Team1 *flatTeam       `json:"team1"`
	Team2 *flatTeam       `json:"team2"`
}

type flatTeam struct {
	Name      string `json:"name"`
	ShortName string `json:"shortName"`
}

type nestedMatchItem struct {
	MatchInfo  *matchInfoDTO  `json:"matchInfo"`
	MatchScore *matchScoreDTO `json:"matchScore"`
}

type matchInfoDTO struct {
	MatchID    flexString     `json:"matchId"`
	StartDate  flexString     `json:"startDate"`
	Status     string         `json:"status"`
	VenueInfo  *venueInfoDTO  `json:"venueInfo"`
	Team1      *teamInfoDTO   `json:"team1"`
	Team2      *teamInfoDTO   `json:"team2"`
	MatchScore *matchScoreDTO `json:"matchScore"`
}

type venueInfoDTO struct {
	Ground string `json:"ground"`
	City   string `json:"city"`
}

type teamInfoDTO struct {
	TeamName  string `json:"teamName"`
	TeamSName string `json:"teamSName"`
}

type matchScoreDTO struct {
	Team1Score *teamScoreDTO `json:"team1Score"`
	Team2Score *teamScoreDTO `json:"team2Score"`
}

type teamScoreDTO struct {
	Inngs1 *inningsDTO `json:"inngs1"`
}

type inningsDTO struct {
	Runs    int     `json:"runs"`
	Wickets int     `json:"wickets"`
	Overs   float64 `json:"overs"`
}

func (e seriesArchiveEnvelope) seriesForYear(year int) []cricket.Series {
	wanted := strconv.Itoa(year)
	for _, bucket := range e.SeriesMapProto {
		if strings.TrimSpace(bucket.Date) != wanted {
			continue
		}
		out := make([]cricket.Series, 0, len(bucket.Series))
		for _, item := range bucket.Series {
			id := item.ID.Int64()
			if id <= 0 {
				continue
			}
			out = append(out, cricket.Series{
				ID:        id,
				Name:      strings.TrimSpace(item.Name),
				StartDate: epochDate(item.StartDt),
				EndDate:   epochDate(item.EndDt),
			})
		}
		return out
	}
	return []cricket.Series{}
}

// toRawPayload maps the wire envelope onto the domain tagged union. Entries
// that do not decode become ShapeMissing details, and match[] elements that do
// not decode lose their matchInfo; both surface later as normalization gaps.
func (e seriesMatchesEnvelope) toRawPayload() cricket.RawMatchPayload {
	payload := cricket.RawMatchPayload{Details: make([]cricket.MatchDetail, 0, len(e.MatchDetails))}
	for _, item := range e.MatchDetails {
		detailsMap, ok := decodeDetailsMap(item.MatchDetailsMap)
		if !ok {
			payload.Details = append(payload.Details, cricket.MatchDetail{Shape: cricket.ShapeMissing})
			continue
		}

		if isJSONArray(detailsMap.Match) {
			payload.Details = append(payload.Details, decodeNested(detailsMap.Match))
			continue
		}

		payload.Details = append(payload.Details, cricket.MatchDetail{
			Shape: cricket.ShapeFlat,
			Flat: cricket.FlatMatch{
				ID:    detailsMap.ID.String(),
				Key:   strings.TrimSpace(detailsMap.Key),
				Team1: detailsMap.Team1.toRaw(),
				Team2: detailsMap.Team2.toRaw(),
			},
		})
	}
	return payload
}

func decodeDetailsMap(raw json.RawMessage) (matchDetailsMap, bool) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return matchDetailsMap{}, false
	}
	var out matchDetailsMap
	if err := sonic.Unmarshal(trimmed, &out); err != nil {
		return matchDetailsMap{}, false
	}
	return out, true
}

func decodeNested(raw json.RawMessage) cricket.MatchDetail {
	detail := cricket.MatchDetail{Shape: cricket.ShapeNested}

	var elements []json.RawMessage
	if err := sonic.Unmarshal(raw, &elements); err != nil {
		return detail
	}
	detail.Nested = make([]cricket.NestedMatch, 0, len(elements))
	for _, element := range elements {
		var n nestedMatchItem
		if err := sonic.Unmarshal(element, &n); err != nil {
			detail.Nested = append(detail.Nested, cricket.NestedMatch{})
			continue
		}
		detail.Nested = append(detail.Nested, cricket.NestedMatch{Info: n.toMatchInfo()})
	}
	return detail
}

func (n nestedMatchItem) toMatchInfo() *cricket.MatchInfo {
	if n.MatchInfo == nil {
		return nil
	}
	info := n.MatchInfo
	out := &cricket.MatchInfo{
		MatchID:   info.MatchID.String(),
		StartDate: info.StartDate.String(),
		Status:    strings.TrimSpace(info.Status),
		Team1:     info.Team1.toRaw(),
		Team2:     info.Team2.toRaw(),
	}
	if info.VenueInfo != nil {
		out.Ground = info.VenueInfo.Ground
	}

	// Older payloads nest the score inside matchInfo, newer ones beside it.
	score := info.MatchScore
	if score == nil {
		score = n.MatchScore
	}
	if score != nil {
		out.Score1 = score.Team1Score.firstInnings()
		out.Score2 = score.Team2Score.firstInnings()
	}
	return out
}

func (t *teamInfoDTO) toRaw() cricket.RawTeam {
	if t == nil {
		return cricket.RawTeam{}
	}
	return cricket.RawTeam{Name: t.TeamName, ShortName: t.TeamSName}
}

func (t *flatTeam) toRaw() cricket.RawTeam {
	if t == nil {
		return cricket.RawTeam{}
	}
	return cricket.RawTeam{Name: t.Name, ShortName: t.ShortName}
}

func (s *teamScoreDTO) firstInnings() *cricket.InningsScore {
	if s == nil || s.Inngs1 == nil {
		return nil
	}
	return &cricket.InningsScore{Runs: s.Inngs1.Runs, Wickets: s.Inngs1.Wickets, Overs: s.Inngs1.Overs}
}

func isJSONArray(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && trimmed[0] == '['
}

func epochDate(value flexString) string {
	ms := value.Int64()
	if ms <= 0 {
		return ""
	}
	return time.UnixMilli(ms).UTC().Format("2006-01-02")
}

package cricket

import (
	"errors"
	"fmt"
	"strings"
)

// Kind is the tournament family a series belongs to.
type Kind string

const (
	KindLeague        Kind = "league"
	KindInternational Kind = "international"
)

var (
	ErrUnknownKind      = errors.New("unknown tournament kind")
	ErrYearOutOfRange   = errors.New("year out of supported range")
	ErrInvalidSeriesID  = errors.New("series id must be a positive integer")
	ErrTeamsNotDistinct = errors.New("teams must be different")
)

func ParseKind(value string) (Kind, error) {
	switch Kind(strings.ToLower(strings.TrimSpace(value))) {
	case KindLeague:
		return KindLeague, nil
	case KindInternational:
		return KindInternational, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, value)
	}
}

// Tournament is static reference data; one tournament per kind and year.
type Tournament struct {
	ID   string
	Name string
	Kind Kind
	Year int
}

type Series struct {
	ID        int64
	Name      string
	StartDate string
	EndDate   string
}

type TeamRef struct {
	Name      string
	ShortName string
}

// InningsScore is one team's first-innings total; Overs uses N.B notation.
type InningsScore struct {
	Runs    int
	Wickets int
	Overs   float64
}

// Match is the canonical record produced by Normalize.
type Match struct {
	ID     string
	Date   string
	Venue  string
	Team1  TeamRef
	Team2  TeamRef
	Status string
	Score1 *InningsScore
	Score2 *InningsScore
}

const (
	PlaceholderTeam1      = "Team 1"
	PlaceholderTeam1Short = "T1"
	PlaceholderTeam2      = "Team 2"
	PlaceholderTeam2Short = "T2"
	UnknownVenue          = "Unknown venue"
	UnknownDate           = "Unknown date"
)

// Shape discriminates the two payload layouts the series endpoint returns.
type Shape int

const (
	// ShapeMissing marks a detail entry without a matchDetailsMap.
	ShapeMissing Shape = iota
	// ShapeNested carries a match[] array of rich matchInfo objects.
	ShapeNested
	// ShapeFlat carries team fields directly on the map.
	ShapeFlat
)

func (s Shape) String() string {
	switch s {
	case ShapeNested:
		return "nested"
	case ShapeFlat:
		return "flat"
	default:
		return "missing"
	}
}

// RawMatchPayload is the decoded, still unnormalized series response.
type RawMatchPayload struct {
	Details []MatchDetail
}

// MatchDetail is a tagged union; only the field matching Shape is set.
type MatchDetail struct {
	Shape  Shape
	Nested []NestedMatch
	Flat   FlatMatch
}

type RawTeam struct {
	Name      string
	ShortName string
}

// NestedMatch is one element of matchDetailsMap.match[]. Info is nil when the
// element carried no matchInfo.
type NestedMatch struct {
	Info *MatchInfo
}

type MatchInfo struct {
	MatchID string
	// StartDate is epoch milliseconds as text; empty when absent.
	StartDate string
	Ground    string
	Team1     RawTeam
	Team2     RawTeam
	Status    string
	Score1    *InningsScore
	Score2    *InningsScore
}

type FlatMatch struct {
	ID    string
	Key   string
	Team1 RawTeam
	Team2 RawTeam
}

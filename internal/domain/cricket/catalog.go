package cricket

import (
	"fmt"
	"strings"
)

const (
	DefaultMinYear       = 2010
	DefaultMaxYear       = 2025
	DefaultLeagueKeyword = "Indian Premier League"
)

// Team is a selectable side in the dashboard filters.
type Team struct {
	Name string
	Code string
	Kind Kind
}

var franchiseTeams = []Team{
	{Name: "Mumbai Indians", Code: "MI", Kind: KindLeague},
	{Name: "Chennai Super Kings", Code: "CSK", Kind: KindLeague},
	{Name: "Royal Challengers Bangalore", Code: "RCB", Kind: KindLeague},
	{Name: "Kolkata Knight Riders", Code: "KKR", Kind: KindLeague},
	{Name: "Delhi Capitals", Code: "DC", Kind: KindLeague},
	{Name: "Punjab Kings", Code: "PBKS", Kind: KindLeague},
	{Name: "Rajasthan Royals", Code: "RR", Kind: KindLeague},
	{Name: "Sunrisers Hyderabad", Code: "SRH", Kind: KindLeague},
	{Name: "Gujarat Titans", Code: "GT", Kind: KindLeague},
	{Name: "Lucknow Super Giants", Code: "LSG", Kind: KindLeague},
}

var nationalTeams = []Team{
	{Name: "India", Code: "IND", Kind: KindInternational},
	{Name: "Australia", Code: "AUS", Kind: KindInternational},
	{Name: "England", Code: "ENG", Kind: KindInternational},
	{Name: "Pakistan", Code: "PAK", Kind: KindInternational},
	{Name: "New Zealand", Code: "NZ", Kind: KindInternational},
	{Name: "South Africa", Code: "SA", Kind: KindInternational},
	{Name: "West Indies", Code: "WI", Kind: KindInternational},
	{Name: "Sri Lanka", Code: "SL", Kind: KindInternational},
	{Name: "Bangladesh", Code: "BAN", Kind: KindInternational},
	{Name: "Afghanistan", Code: "AFG", Kind: KindInternational},
}

// Cities the win-probability model was trained on.
var predictionCities = []string{
	"Hyderabad", "Bangalore", "Mumbai", "Indore", "Kolkata", "Delhi",
	"Chandigarh", "Jaipur", "Chennai", "Cape Town", "Port Elizabeth",
	"Durban", "Centurion", "East London", "Johannesburg", "Kimberley",
	"Bloemfontein", "Ahmedabad", "Cuttack", "Nagpur", "Dharamsala",
	"Visakhapatnam", "Pune", "Raipur", "Ranchi", "Abu Dhabi",
	"Sharjah", "Mohali", "Bengaluru",
}

// Catalog is the static reference data behind the tournament and team pickers.
type Catalog struct {
	MinYear       int
	MaxYear       int
	LeagueKeyword string
}

func DefaultCatalog() Catalog {
	return Catalog{
		MinYear:       DefaultMinYear,
		MaxYear:       DefaultMaxYear,
		LeagueKeyword: DefaultLeagueKeyword,
	}
}

// ValidateFilter checks a (kind, year) selection before any upstream call.
func (c Catalog) ValidateFilter(kind string, year int) (Kind, error) {
	parsed, err := ParseKind(kind)
	if err != nil {
		return "", err
	}
	if err := c.ValidateYear(year); err != nil {
		return "", err
	}
	return parsed, nil
}

func (c Catalog) ValidateYear(year int) error {
	if year < 1000 || year > 9999 {
		return fmt.Errorf("%w: %d is not a 4-digit year", ErrYearOutOfRange, year)
	}
	if year < c.MinYear || year > c.MaxYear {
		return fmt.Errorf("%w: %d not in [%d, %d]", ErrYearOutOfRange, year, c.MinYear, c.MaxYear)
	}
	return nil
}

// Years lists supported years newest first.
func (c Catalog) Years() []int {
	if c.MaxYear < c.MinYear {
		return nil
	}
	out := make([]int, 0, c.MaxYear-c.MinYear+1)
	for y := c.MaxYear; y >= c.MinYear; y-- {
		out = append(out, y)
	}
	return out
}

func (c Catalog) Tournaments(year int) ([]Tournament, error) {
	if err := c.ValidateYear(year); err != nil {
		return nil, err
	}
	return []Tournament{
		{ID: fmt.Sprintf("%s-%d", KindLeague, year), Name: c.LeagueKeyword, Kind: KindLeague, Year: year},
		{ID: fmt.Sprintf("%s-%d", KindInternational, year), Name: "International", Kind: KindInternational, Year: year},
	}, nil
}

// Teams returns the teams for kind, or every team when kind is empty.
func (c Catalog) Teams(kind Kind) []Team {
	switch kind {
	case KindLeague:
		return append([]Team(nil), franchiseTeams...)
	case KindInternational:
		return append([]Team(nil), nationalTeams...)
	default:
		out := make([]Team, 0, len(franchiseTeams)+len(nationalTeams))
		out = append(out, franchiseTeams...)
		return append(out, nationalTeams...)
	}
}

func (c Catalog) Cities() []string {
	return append([]string(nil), predictionCities...)
}

// KeepSeries reports whether a series listed for kind belongs to the tournament.
// League listings are narrowed to the configured league; international ones pass.
func (c Catalog) KeepSeries(kind Kind, series Series) bool {
	if kind != KindLeague || c.LeagueKeyword == "" {
		return true
	}
	return strings.Contains(series.Name, c.LeagueKeyword)
}

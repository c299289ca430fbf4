package player

import (
	"strconv"
	"strings"
)

// MinSearchChars is the shortest query forwarded to the upstream search.
const MinSearchChars = 3

// Formats in the order the career tables list them.
var Formats = []string{"Test", "ODI", "T20", "IPL"}

// Summary is one player search hit.
type Summary struct {
	ID          string
	Name        string
	TeamName    string
	FaceImageID string
	DateOfBirth string
}

type Info struct {
	ID           string
	Name         string
	NickName     string
	Role         string
	BattingStyle string
	BowlingStyle string
	IntlTeam     string
	BirthPlace   string
	DateOfBirth  string
	ImageURL     string
	Teams        string
}

// StatsTable is a career grid: Headers name the columns (first is the row label
// header), each row carries a label followed by one value per format.
type StatsTable struct {
	Headers []string
	Rows    []StatRow
}

type StatRow struct {
	Label  string
	Values []string
}

// Value looks up the cell for row label and column format, case-insensitively.
func (t StatsTable) Value(label, format string) string {
	col := -1
	for i, header := range t.Headers {
		if strings.EqualFold(strings.TrimSpace(header), format) {
			col = i
			break
		}
	}
	if col < 0 {
		return ""
	}

	for _, row := range t.Rows {
		if !strings.EqualFold(strings.TrimSpace(row.Label), label) {
			continue
		}
		// Values[0] repeats the label, so column indexes line up with Headers.
		if col < len(row.Values) {
			return strings.TrimSpace(row.Values[col])
		}
		return ""
	}
	return ""
}

func (t StatsTable) Int(label, format string) int {
	v, err := strconv.Atoi(t.Value(label, format))
	if err != nil {
		return 0
	}
	return v
}

func (t StatsTable) Float(label, format string) float64 {
	v, err := strconv.ParseFloat(t.Value(label, format), 64)
	if err != nil {
		return 0
	}
	return v
}

// FormatLine is the per-format career summary the player page charts.
type FormatLine struct {
	Format         string
	Matches        int
	Runs           int
	BattingAverage float64
	HighestScore   string
	Fifties        int
	Hundreds       int
	Wickets        int
	Economy        float64
}

type Profile struct {
	Info    Info
	Batting StatsTable
	Bowling StatsTable
	Career  []FormatLine
}

// Summarize folds the batting and bowling grids into one line per format.
func Summarize(batting, bowling StatsTable) []FormatLine {
	lines := make([]FormatLine, 0, len(Formats))
	for _, format := range Formats {
		lines = append(lines, FormatLine{
			Format:         format,
			Matches:        batting.Int("Matches", format),
			Runs:           batting.Int("Runs", format),
			BattingAverage: batting.Float("Average", format),
			HighestScore:   batting.Value("Highest", format),
			Fifties:        batting.Int("50s", format),
			Hundreds:       batting.Int("100s", format),
			Wickets:        bowling.Int("Wickets", format),
			Economy:        bowling.Float("Eco", format),
		})
	}
	return lines
}

// NormalizeQuery trims a search query and reports whether it is long enough to search.
func NormalizeQuery(query string, minChars int) (string, bool) {
	if minChars <= 0 {
		minChars = MinSearchChars
	}
	q := strings.TrimSpace(query)
	return q, len([]rune(q)) >= minChars
}

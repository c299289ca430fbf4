package player

import "testing"

func careerTables() (StatsTable, StatsTable) {
	batting := StatsTable{
		Headers: []string{"ROWHEADER", "Test", "ODI", "T20", "IPL"},
		Rows: []StatRow{
			{Label: "Matches", Values: []string{"Matches", "113", "292", "117", "252"}},
			{Label: "Runs", Values: []string{"Runs", "8848", "13848", "4037", "8004"}},
			{Label: "Highest", Values: []string{"Highest", "254", "183", "122", "113"}},
			{Label: "Average", Values: []string{"Average", "49.15", "58.18", "48.69", "38.67"}},
			{Label: "50s", Values: []string{"50s", "29", "72", "38", "55"}},
			{Label: "100s", Values: []string{"100s", "29", "50", "1", "8"}},
		},
	}
	bowling := StatsTable{
		Headers: []string{"ROWHEADER", "Test", "ODI", "T20", "IPL"},
		Rows: []StatRow{
			{Label: "Wickets", Values: []string{"Wickets", "0", "5", "4", "4"}},
			{Label: "Eco", Values: []string{"Eco", "2.71", "6.18", "8.05", "8.8"}},
		},
	}
	return batting, bowling
}

func TestStatsTable_Value(t *testing.T) {
	batting, _ := careerTables()
	if got := batting.Value("runs", "odi"); got != "13848" {
		t.Fatalf("expected 13848, got %q", got)
	}
	if got := batting.Value("Runs", "Hundred"); got != "" {
		t.Fatalf("unknown column must be empty, got %q", got)
	}
	if got := batting.Int("Sixes", "Test"); got != 0 {
		t.Fatalf("unknown row must be zero, got %d", got)
	}
}

func TestSummarize(t *testing.T) {
	lines := Summarize(careerTables())
	if len(lines) != len(Formats) {
		t.Fatalf("expected %d lines, got %d", len(Formats), len(lines))
	}

	ipl := lines[3]
	if ipl.Format != "IPL" || ipl.Runs != 8004 || ipl.BattingAverage != 38.67 || ipl.Wickets != 4 || ipl.Economy != 8.8 {
		t.Fatalf("unexpected IPL line: %+v", ipl)
	}
	if lines[0].HighestScore != "254" || lines[1].Hundreds != 50 {
		t.Fatalf("unexpected lines: %+v", lines)
	}
}

func TestNormalizeQuery(t *testing.T) {
	if q, ok := NormalizeQuery("  vi ", 0); ok || q != "vi" {
		t.Fatalf("expected short query to be rejected, got %q ok=%t", q, ok)
	}
	if q, ok := NormalizeQuery("Virat", 3); !ok || q != "Virat" {
		t.Fatalf("expected query to pass, got %q ok=%t", q, ok)
	}
}

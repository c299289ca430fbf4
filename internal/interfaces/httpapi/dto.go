package httpapi

import (
	"context"
	"time"

	"github.com/riskibarqy/cricket-analytics/internal/domain/admin"
	"github.com/riskibarqy/cricket-analytics/internal/domain/analysis"
	"github.com/riskibarqy/cricket-analytics/internal/domain/cricket"
	"github.com/riskibarqy/cricket-analytics/internal/domain/player"
	"github.com/riskibarqy/cricket-analytics/internal/domain/runrate"
	"github.com/riskibarqy/cricket-analytics/internal/usecase"
)

type tournamentDTO struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Kind string `json:"kind"`
	Year int    `json:"year"`
}

type tournamentListDTO struct {
	Years       []int           `json:"years"`
	Tournaments []tournamentDTO `json:"tournaments"`
}

type teamDTO struct {
	Name string `json:"name"`
	Code string `json:"code"`
	Kind string `json:"kind"`
}

type seriesDTO struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

type teamRefDTO struct {
	Name      string `json:"name"`
	ShortName string `json:"shortName"`
}

type inningsDTO struct {
	Runs    int     `json:"runs"`
	Wickets int     `json:"wickets"`
	Overs   float64 `json:"overs"`
}

type matchDTO struct {
	ID     string      `json:"id"`
	Date   string      `json:"date"`
	Venue  string      `json:"venue"`
	Team1  teamRefDTO  `json:"team1"`
	Team2  teamRefDTO  `json:"team2"`
	Status string      `json:"status"`
	Score1 *inningsDTO `json:"score1,omitempty"`
	Score2 *inningsDTO `json:"score2,omitempty"`
}

type analysisDTO struct {
	Info  analysisInfoDTO `json:"matchInfo"`
	Team1 teamAnalysisDTO `json:"team1"`
	Team2 teamAnalysisDTO `json:"team2"`
}

type analysisInfoDTO struct {
	Date   string `json:"date"`
	Venue  string `json:"venue"`
	Result string `json:"result"`
	Toss   string `json:"toss"`
}

type teamAnalysisDTO struct {
	Name        string           `json:"name"`
	Code        string           `json:"code"`
	Score       int              `json:"score"`
	Wickets     int              `json:"wickets"`
	Overs       float64          `json:"overs"`
	Batting     []battingDTO     `json:"batting"`
	Bowling     []bowlingDTO     `json:"bowling"`
	Partnership []partnershipDTO `json:"partnership"`
	Overwise    []overDTO        `json:"overwise"`
	Phases      []phaseDTO       `json:"phases"`
	Performance []performanceDTO `json:"performance"`
	WagonWheel  []wagonWheelDTO  `json:"wagonWheel"`
}

type battingDTO struct {
	Name       string  `json:"name"`
	Runs       int     `json:"runs"`
	Balls      int     `json:"balls"`
	StrikeRate float64 `json:"strikeRate"`
	Fours      int     `json:"fours"`
	Sixes      int     `json:"sixes"`
}

type bowlingDTO struct {
	Name    string  `json:"name"`
	Overs   float64 `json:"overs"`
	Maidens int     `json:"maidens"`
	Runs    int     `json:"runs"`
	Wickets int     `json:"wickets"`
	Economy float64 `json:"economy"`
}

type partnershipDTO struct {
	Wicket  int    `json:"wicket"`
	Players string `json:"players"`
	Runs    int    `json:"runs"`
	Balls   int    `json:"balls"`
}

type overDTO struct {
	Over    int `json:"over"`
	Runs    int `json:"runs"`
	Wickets int `json:"wickets"`
}

type phaseDTO struct {
	Phase string `json:"phase"`
	Runs  int    `json:"runs"`
}

type performanceDTO struct {
	Name    string `json:"name"`
	Runs    int    `json:"runs"`
	Wickets int    `json:"wickets"`
}

type wagonWheelDTO struct {
	Direction string `json:"direction"`
	Runs      int    `json:"runs"`
}

type matchOverviewDTO struct {
	Match    matchDTO    `json:"match"`
	Analysis analysisDTO `json:"analysis"`
}

type teamStandingDTO struct {
	Name         string `json:"name"`
	ShortName    string `json:"shortName"`
	Played       int    `json:"played"`
	Wins         int    `json:"wins"`
	Runs         int    `json:"runs"`
	HighestScore int    `json:"highestScore"`
}

type seriesOverviewDTO struct {
	SeriesID int64              `json:"seriesId"`
	Matches  []matchOverviewDTO `json:"matches"`
	Teams    []teamStandingDTO  `json:"teams"`
}

type headToHeadDTO struct {
	Team1         string     `json:"team1"`
	Team2         string     `json:"team2"`
	SeriesScanned int        `json:"seriesScanned"`
	Matches       []matchDTO `json:"matches"`
	Team1Wins     int        `json:"team1Wins"`
	Team2Wins     int        `json:"team2Wins"`
	NoResult      int        `json:"noResult"`
}

type playerSummaryDTO struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	TeamName    string `json:"teamName"`
	FaceImageID string `json:"faceImageId,omitempty"`
	DateOfBirth string `json:"dateOfBirth,omitempty"`
}

type playerInfoDTO struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	NickName     string `json:"nickName,omitempty"`
	Role         string `json:"role"`
	BattingStyle string `json:"battingStyle"`
	BowlingStyle string `json:"bowlingStyle"`
	IntlTeam     string `json:"intlTeam"`
	BirthPlace   string `json:"birthPlace,omitempty"`
	DateOfBirth  string `json:"dateOfBirth,omitempty"`
	ImageURL     string `json:"imageUrl,omitempty"`
	Teams        string `json:"teams,omitempty"`
}

type statsTableDTO struct {
	Headers []string      `json:"headers"`
	Rows    []statsRowDTO `json:"rows"`
}

type statsRowDTO struct {
	Label  string   `json:"label"`
	Values []string `json:"values"`
}

type formatLineDTO struct {
	Format         string  `json:"format"`
	Matches        int     `json:"matches"`
	Runs           int     `json:"runs"`
	BattingAverage float64 `json:"battingAverage"`
	HighestScore   string  `json:"highestScore"`
	Fifties        int     `json:"fifties"`
	Hundreds       int     `json:"hundreds"`
	Wickets        int     `json:"wickets"`
	Economy        float64 `json:"economy"`
}

type playerProfileDTO struct {
	Info    playerInfoDTO   `json:"info"`
	Batting statsTableDTO   `json:"batting"`
	Bowling statsTableDTO   `json:"bowling"`
	Career  []formatLineDTO `json:"career"`
}

type snapshotDTO struct {
	Target         int     `json:"target"`
	CurrentScore   int     `json:"currentScore"`
	OversCompleted float64 `json:"oversCompleted"`
	WicketsLost    int     `json:"wicketsLost"`
}

type runRateDTO struct {
	Format          string  `json:"format"`
	OversPerInnings int     `json:"oversPerInnings"`
	BallsCompleted  int     `json:"ballsCompleted"`
	RunsLeft        int     `json:"runsLeft"`
	BallsLeft       int     `json:"ballsLeft"`
	CurrentRunRate  float64 `json:"crr"`
	RequiredRunRate float64 `json:"rrr"`
	RRRSentinel     bool    `json:"rrrSentinel"`
	Outcome         string  `json:"outcome"`
}

type predictionDTO struct {
	Metrics                   runRateDTO `json:"metrics"`
	BattingTeamWinProbability float64    `json:"battingTeamWinProbability"`
	BowlingTeamWinProbability float64    `json:"bowlingTeamWinProbability"`
	Summary                   string     `json:"predictionSummary"`
}

type chatDTO struct {
	Response string `json:"response"`
}

type adminDTO struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Role       string `json:"role"`
	Status     string `json:"status"`
	AvatarURL  string `json:"avatarUrl"`
	JoinedDate string `json:"joinedDate"`
	UpdatedAt  string `json:"updatedAt"`
}

type adminStatisticsDTO struct {
	TotalEmails     int    `json:"totalEmails"`
	AutoReplied     int    `json:"autoReplied"`
	ManualReplies   int    `json:"manualReplies"`
	AvgResponseTime string `json:"avgResponseTime"`
	SuccessRate     string `json:"successRate"`
	LastActive      string `json:"lastActive"`
}

type sessionDTO struct {
	ID               string             `json:"id"`
	Version          uint64             `json:"version"`
	Kind             string             `json:"kind"`
	Year             int                `json:"year"`
	Series           []seriesDTO        `json:"series"`
	SelectedSeriesID int64              `json:"selectedSeriesId,omitempty"`
	Matches          []matchDTO         `json:"matches"`
	Team1Query       string             `json:"team1Query"`
	Team2Query       string             `json:"team2Query"`
	FilteredMatches  []matchDTO         `json:"filteredMatches"`
	SelectedMatchID  string             `json:"selectedMatchId,omitempty"`
	Analysis         *analysisDTO       `json:"analysis,omitempty"`
	Snapshot         *snapshotDTO       `json:"snapshot,omitempty"`
	Metrics          *runRateDTO        `json:"metrics,omitempty"`
	PlayerQuery      string             `json:"playerQuery"`
	Players          []playerSummaryDTO `json:"players"`
	LoadingSeries    bool               `json:"loadingSeries"`
	LoadingMatches   bool               `json:"loadingMatches"`
	SearchingPlayers bool               `json:"searchingPlayers"`
	LastError        string             `json:"lastError,omitempty"`
	UpdatedAt        string             `json:"updatedAt"`
}

func seriesToDTOs(items []cricket.Series) []seriesDTO {
	out := make([]seriesDTO, 0, len(items))
	for _, s := range items {
		out = append(out, seriesDTO{ID: s.ID, Name: s.Name, StartDate: s.StartDate, EndDate: s.EndDate})
	}
	return out
}

func matchToDTO(ctx context.Context, m cricket.Match) matchDTO {
	_, span := startSpan(ctx, "httpapi.matchToDTO")
	defer span.End()

	return matchDTO{
		ID:     m.ID,
		Date:   m.Date,
		Venue:  m.Venue,
		Team1:  teamRefDTO{Name: m.Team1.Name, ShortName: m.Team1.ShortName},
		Team2:  teamRefDTO{Name: m.Team2.Name, ShortName: m.Team2.ShortName},
		Status: m.Status,
		Score1: inningsToDTO(m.Score1),
		Score2: inningsToDTO(m.Score2),
	}
}

func matchesToDTOs(ctx context.Context, items []cricket.Match) []matchDTO {
	out := make([]matchDTO, 0, len(items))
	for _, m := range items {
		out = append(out, matchToDTO(ctx, m))
	}
	return out
}

func inningsToDTO(v *cricket.InningsScore) *inningsDTO {
	if v == nil {
		return nil
	}
	return &inningsDTO{Runs: v.Runs, Wickets: v.Wickets, Overs: v.Overs}
}

func analysisToDTO(ctx context.Context, v analysis.MatchAnalysis) analysisDTO {
	_, span := startSpan(ctx, "httpapi.analysisToDTO")
	defer span.End()

	return analysisDTO{
		Info: analysisInfoDTO{
			Date:   v.Info.Date,
			Venue:  v.Info.Venue,
			Result: v.Info.Result,
			Toss:   v.Info.Toss,
		},
		Team1: teamAnalysisToDTO(v.Team1),
		Team2: teamAnalysisToDTO(v.Team2),
	}
}

func teamAnalysisToDTO(v analysis.TeamAnalysis) teamAnalysisDTO {
	out := teamAnalysisDTO{
		Name:        v.Scoreline.Name,
		Code:        v.Scoreline.Code,
		Score:       v.Scoreline.Score,
		Wickets:     v.Scoreline.Wickets,
		Overs:       v.Scoreline.Overs,
		Batting:     make([]battingDTO, 0, len(v.Batting)),
		Bowling:     make([]bowlingDTO, 0, len(v.Bowling)),
		Partnership: make([]partnershipDTO, 0, len(v.Partnership)),
		Overwise:    make([]overDTO, 0, len(v.Overs)),
		Phases:      make([]phaseDTO, 0, len(v.Phases)),
		Performance: make([]performanceDTO, 0, len(v.Performance)),
		WagonWheel:  make([]wagonWheelDTO, 0, len(v.WagonWheel)),
	}
	for _, e := range v.Batting {
		out.Batting = append(out.Batting, battingDTO(e))
	}
	for _, e := range v.Bowling {
		out.Bowling = append(out.Bowling, bowlingDTO(e))
	}
	for _, e := range v.Partnership {
		out.Partnership = append(out.Partnership, partnershipDTO(e))
	}
	for _, e := range v.Overs {
		out.Overwise = append(out.Overwise, overDTO{Over: e.Over, Runs: e.Runs, Wickets: e.Wickets})
	}
	for _, e := range v.Phases {
		out.Phases = append(out.Phases, phaseDTO(e))
	}
	for _, e := range v.Performance {
		out.Performance = append(out.Performance, performanceDTO(e))
	}
	for _, e := range v.WagonWheel {
		out.WagonWheel = append(out.WagonWheel, wagonWheelDTO(e))
	}
	return out
}

func seriesOverviewToDTO(ctx context.Context, v usecase.SeriesOverview) seriesOverviewDTO {
	out := seriesOverviewDTO{
		SeriesID: v.SeriesID,
		Matches:  make([]matchOverviewDTO, 0, len(v.Matches)),
		Teams:    make([]teamStandingDTO, 0, len(v.Teams)),
	}
	for _, m := range v.Matches {
		out.Matches = append(out.Matches, matchOverviewDTO{
			Match:    matchToDTO(ctx, m.Match),
			Analysis: analysisToDTO(ctx, m.Analysis),
		})
	}
	for _, t := range v.Teams {
		out.Teams = append(out.Teams, teamStandingDTO(t))
	}
	return out
}

func headToHeadToDTO(ctx context.Context, v usecase.HeadToHead) headToHeadDTO {
	return headToHeadDTO{
		Team1:         v.Team1,
		Team2:         v.Team2,
		SeriesScanned: v.SeriesScanned,
		Matches:       matchesToDTOs(ctx, v.Matches),
		Team1Wins:     v.Team1Wins,
		Team2Wins:     v.Team2Wins,
		NoResult:      v.NoResult,
	}
}

func playerSummariesToDTOs(items []player.Summary) []playerSummaryDTO {
	out := make([]playerSummaryDTO, 0, len(items))
	for _, p := range items {
		out = append(out, playerSummaryDTO(p))
	}
	return out
}

func playerProfileToDTO(v player.Profile) playerProfileDTO {
	career := make([]formatLineDTO, 0, len(v.Career))
	for _, line := range v.Career {
		career = append(career, formatLineDTO(line))
	}
	return playerProfileDTO{
		Info:    playerInfoDTO(v.Info),
		Batting: statsTableToDTO(v.Batting),
		Bowling: statsTableToDTO(v.Bowling),
		Career:  career,
	}
}

func statsTableToDTO(v player.StatsTable) statsTableDTO {
	rows := make([]statsRowDTO, 0, len(v.Rows))
	for _, row := range v.Rows {
		rows = append(rows, statsRowDTO{Label: row.Label, Values: append([]string(nil), row.Values...)})
	}
	headers := append([]string{}, v.Headers...)
	return statsTableDTO{Headers: headers, Rows: rows}
}

func snapshotToDTO(v runrate.Snapshot) snapshotDTO {
	return snapshotDTO(v)
}

func runRateToDTO(format runrate.Format, v runrate.Metrics) runRateDTO {
	return runRateDTO{
		Format:          format.Name,
		OversPerInnings: format.OversPerInnings,
		BallsCompleted:  v.BallsCompleted,
		RunsLeft:        v.RunsLeft,
		BallsLeft:       v.BallsLeft,
		CurrentRunRate:  v.CurrentRunRate,
		RequiredRunRate: v.RequiredRunRate,
		RRRSentinel:     v.Sentinel,
		Outcome:         string(v.Outcome),
	}
}

func adminToDTO(v admin.Admin) adminDTO {
	return adminDTO{
		ID:         v.ID,
		Name:       v.Name,
		Email:      v.Email,
		Role:       v.Role(),
		Status:     v.Status,
		AvatarURL:  v.AvatarURL,
		JoinedDate: v.JoinedDate(),
		UpdatedAt:  v.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func sessionToDTO(ctx context.Context, v usecase.SessionState, format runrate.Format) sessionDTO {
	out := sessionDTO{
		ID:               v.ID,
		Version:          v.Version,
		Kind:             string(v.Kind),
		Year:             v.Year,
		Series:           seriesToDTOs(v.Series),
		SelectedSeriesID: v.SelectedSeriesID,
		Matches:          matchesToDTOs(ctx, v.Matches),
		Team1Query:       v.Team1Query,
		Team2Query:       v.Team2Query,
		FilteredMatches:  matchesToDTOs(ctx, v.FilteredMatches),
		SelectedMatchID:  v.SelectedMatchID,
		PlayerQuery:      v.PlayerQuery,
		Players:          playerSummariesToDTOs(v.Players),
		LoadingSeries:    v.LoadingSeries,
		LoadingMatches:   v.LoadingMatches,
		SearchingPlayers: v.SearchingPlayers,
		LastError:        v.LastError,
		UpdatedAt:        v.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
	if v.Analysis != nil {
		a := analysisToDTO(ctx, *v.Analysis)
		out.Analysis = &a
	}
	if v.Snapshot != nil {
		s := snapshotToDTO(*v.Snapshot)
		out.Snapshot = &s
	}
	if v.Metrics != nil {
		m := runRateToDTO(format, *v.Metrics)
		out.Metrics = &m
	}
	return out
}

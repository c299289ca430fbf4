package usecase

import (
	"context"
	"fmt"
	"strings"

	"go.opentelemetry.io/otel/attribute"

	"github.com/riskibarqy/cricket-analytics/internal/domain/analysis"
	"github.com/riskibarqy/cricket-analytics/internal/domain/cricket"
	"github.com/riskibarqy/cricket-analytics/internal/platform/logging"
)

// MatchService fetches series and matches for a tournament selection and turns
// them into canonical matches and analyses.
type MatchService struct {
	provider cricket.Provider
	catalog  cricket.Catalog
	logger   *logging.Logger
}

func NewMatchService(provider cricket.Provider, catalog cricket.Catalog, logger *logging.Logger) *MatchService {
	if logger == nil {
		logger = logging.Default()
	}
	return &MatchService{
		provider: provider,
		catalog:  catalog,
		logger:   logger,
	}
}

func (s *MatchService) Catalog() cricket.Catalog {
	return s.catalog
}

func (s *MatchService) Tournaments(year int) ([]cricket.Tournament, error) {
	items, err := s.catalog.Tournaments(year)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFilter, err)
	}
	return items, nil
}

// Teams lists the picker teams for kind; a blank kind lists every team.
func (s *MatchService) Teams(kind string) ([]cricket.Team, error) {
	if strings.TrimSpace(kind) == "" {
		return s.catalog.Teams(""), nil
	}
	parsed, err := cricket.ParseKind(kind)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFilter, err)
	}
	return s.catalog.Teams(parsed), nil
}

// ListSeries validates the selection before touching the network, then returns
// the series of that kind and year. League listings keep only the configured
// competition.
func (s *MatchService) ListSeries(ctx context.Context, kind string, year int) (_ []cricket.Series, err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.ListSeries",
		attribute.String("cricket.kind", kind),
		attribute.Int("cricket.year", year),
	)
	defer func() { endUsecaseSpan(span, err) }()

	parsed, err := s.catalog.ValidateFilter(kind, year)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFilter, err)
	}

	series, err := s.provider.ListSeries(ctx, parsed, year)
	if err != nil {
		return nil, fmt.Errorf("list series kind=%s year=%d: %w", parsed, year, err)
	}

	out := make([]cricket.Series, 0, len(series))
	for _, item := range series {
		if s.catalog.KeepSeries(parsed, item) {
			out = append(out, item)
		}
	}
	return out, nil
}

// ListMatches fetches and normalizes every match of a series.
func (s *MatchService) ListMatches(ctx context.Context, seriesID int64) (_ []cricket.Match, err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.ListMatches", attribute.Int64("cricket.series_id", seriesID))
	defer func() { endUsecaseSpan(span, err) }()

	if seriesID <= 0 {
		return nil, fmt.Errorf("%w: %v: %d", ErrInvalidFilter, cricket.ErrInvalidSeriesID, seriesID)
	}

	payload, err := s.provider.ListMatches(ctx, seriesID)
	if err != nil {
		return nil, fmt.Errorf("list matches series=%d: %w", seriesID, err)
	}

	matches, gaps := cricket.Normalize(payload)
	if len(gaps) > 0 {
		s.logger.DebugContext(ctx, "match payload normalized with defaults",
			"series_id", seriesID,
			"matches", len(matches),
			"gaps", len(gaps),
			"fields", gapFields(gaps),
		)
	}
	return matches, nil
}

// ListMatchesForTeams is ListMatches narrowed to fixtures between two teams.
func (s *MatchService) ListMatchesForTeams(ctx context.Context, seriesID int64, team1, team2 string) ([]cricket.Match, error) {
	matches, err := s.ListMatches(ctx, seriesID)
	if err != nil {
		return nil, err
	}
	return cricket.FilterByTeams(matches, team1, team2), nil
}

// GetMatchAnalysis finds one match of a series and synthesizes its analysis.
func (s *MatchService) GetMatchAnalysis(ctx context.Context, seriesID int64, matchID string) (analysis.MatchAnalysis, error) {
	matchID = strings.TrimSpace(matchID)
	if matchID == "" {
		return analysis.MatchAnalysis{}, fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}

	matches, err := s.ListMatches(ctx, seriesID)
	if err != nil {
		return analysis.MatchAnalysis{}, err
	}
	for _, m := range matches {
		if m.ID == matchID {
			return Analyze(m, nil), nil
		}
	}
	return analysis.MatchAnalysis{}, fmt.Errorf("%w: match=%s series=%d", ErrNotFound, matchID, seriesID)
}

// Analyze synthesizes a match analysis. The seed defaults to one derived from
// the match id so the same match always renders the same figures.
func Analyze(match cricket.Match, seed *uint64) analysis.MatchAnalysis {
	s := analysis.SeedFor(match.ID)
	if seed != nil {
		s = *seed
	}

	out := analysis.Synthesize(s,
		analysis.TeamInput{Name: match.Team1.Name, Code: match.Team1.ShortName, Innings: match.Score1},
		analysis.TeamInput{Name: match.Team2.Name, Code: match.Team2.ShortName, Innings: match.Score2},
	)
	out.Info.Date = match.Date
	out.Info.Venue = match.Venue
	return out
}

func gapFields(gaps []cricket.NormalizationGap) map[string]int {
	out := make(map[string]int, len(gaps))
	for _, gap := range gaps {
		out[gap.Field]++
	}
	return out
}

package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/sourcegraph/conc/pool"
	"go.opentelemetry.io/otel/attribute"

	"github.com/riskibarqy/cricket-analytics/internal/domain/analysis"
	"github.com/riskibarqy/cricket-analytics/internal/domain/cricket"
	"github.com/riskibarqy/cricket-analytics/internal/platform/logging"
)

const (
	defaultOverviewWorkers       = 8
	defaultHeadToHeadConcurrency = 4
)

type MatchOverview struct {
	Match    cricket.Match
	Analysis analysis.MatchAnalysis
}

// TeamStanding aggregates a team's results across one series.
type TeamStanding struct {
	Name         string
	ShortName    string
	Played       int
	Wins         int
	Runs         int
	HighestScore int
}

type SeriesOverview struct {
	SeriesID int64
	Matches  []MatchOverview
	Teams    []TeamStanding
}

type HeadToHeadInput struct {
	Kind  string
	Year  int
	Team1 string
	Team2 string
}

type HeadToHead struct {
	Team1         string
	Team2         string
	SeriesScanned int
	Matches       []cricket.Match
	Team1Wins     int
	Team2Wins     int
	NoResult      int
}

type OverviewServiceConfig struct {
	Workers               int
	HeadToHeadConcurrency int
}

// OverviewService builds series-wide summaries on top of MatchService.
type OverviewService struct {
	matches     *MatchService
	workers     int
	concurrency int
	logger      *logging.Logger
}

func NewOverviewService(matches *MatchService, cfg OverviewServiceConfig, logger *logging.Logger) *OverviewService {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.Workers <= 0 {
		cfg.Workers = defaultOverviewWorkers
	}
	if cfg.HeadToHeadConcurrency <= 0 {
		cfg.HeadToHeadConcurrency = defaultHeadToHeadConcurrency
	}
	return &OverviewService{
		matches:     matches,
		workers:     cfg.Workers,
		concurrency: cfg.HeadToHeadConcurrency,
		logger:      logger,
	}
}

// SeriesOverview synthesizes an analysis for every match of a series on a
// bounded worker pool and tabulates per-team results.
func (s *OverviewService) SeriesOverview(ctx context.Context, seriesID int64) (_ SeriesOverview, err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.OverviewService.SeriesOverview", attribute.Int64("cricket.series_id", seriesID))
	defer func() { endUsecaseSpan(span, err) }()

	matches, err := s.matches.ListMatches(ctx, seriesID)
	if err != nil {
		return SeriesOverview{}, err
	}

	items := make([]MatchOverview, len(matches))
	if len(matches) > 0 {
		workerCount := s.workers
		if workerCount > len(matches) {
			workerCount = len(matches)
		}
		workers, err := ants.NewPool(workerCount)
		if err != nil {
			return SeriesOverview{}, fmt.Errorf("create worker pool: %w", err)
		}
		defer workers.Release()

		var wg sync.WaitGroup
		for i, match := range matches {
			i, match := i, match
			wg.Add(1)
			if err := workers.Submit(func() {
				defer wg.Done()
				items[i] = MatchOverview{Match: match, Analysis: Analyze(match, nil)}
			}); err != nil {
				wg.Done()
				wg.Wait()
				return SeriesOverview{}, fmt.Errorf("submit analysis to worker pool: %w", err)
			}
		}
		wg.Wait()
	}

	return SeriesOverview{
		SeriesID: seriesID,
		Matches:  items,
		Teams:    standings(matches),
	}, nil
}

func standings(matches []cricket.Match) []TeamStanding {
	byName := make(map[string]*TeamStanding)
	order := make([]string, 0)

	touch := func(team cricket.TeamRef) *TeamStanding {
		key := strings.ToLower(team.Name)
		row, ok := byName[key]
		if !ok {
			row = &TeamStanding{Name: team.Name, ShortName: team.ShortName}
			byName[key] = row
			order = append(order, key)
		}
		return row
	}

	for _, match := range matches {
		sides := []struct {
			team  cricket.TeamRef
			score *cricket.InningsScore
		}{
			{match.Team1, match.Score1},
			{match.Team2, match.Score2},
		}
		for _, side := range sides {
			row := touch(side.team)
			row.Played++
			if side.score != nil {
				row.Runs += side.score.Runs
				if side.score.Runs > row.HighestScore {
					row.HighestScore = side.score.Runs
				}
			}
		}
		if winner, ok := cricket.Winner(match); ok {
			touch(winner).Wins++
		}
	}

	out := make([]TeamStanding, 0, len(order))
	for _, key := range order {
		out = append(out, *byName[key])
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Wins != out[j].Wins {
			return out[i].Wins > out[j].Wins
		}
		return out[i].Runs > out[j].Runs
	})
	return out
}

// HeadToHead scans every series of a (kind, year) selection for fixtures
// between two teams. Series are fetched concurrently up to the configured
// limit; the first failure cancels the rest and fails the call.
func (s *OverviewService) HeadToHead(ctx context.Context, in HeadToHeadInput) (_ HeadToHead, err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.OverviewService.HeadToHead",
		attribute.String("cricket.kind", in.Kind),
		attribute.Int("cricket.year", in.Year),
	)
	defer func() { endUsecaseSpan(span, err) }()

	in.Team1 = strings.TrimSpace(in.Team1)
	in.Team2 = strings.TrimSpace(in.Team2)
	if in.Team1 == "" || in.Team2 == "" {
		return HeadToHead{}, fmt.Errorf("%w: both teams are required", ErrInvalidInput)
	}
	if strings.EqualFold(in.Team1, in.Team2) {
		return HeadToHead{}, fmt.Errorf("%w: %v", ErrInvalidInput, cricket.ErrTeamsNotDistinct)
	}

	series, err := s.matches.ListSeries(ctx, in.Kind, in.Year)
	if err != nil {
		return HeadToHead{}, err
	}

	perSeries := make([][]cricket.Match, len(series))
	p := pool.New().WithContext(ctx).WithCancelOnError().WithFirstError().WithMaxGoroutines(s.concurrency)
	for i, item := range series {
		i, item := i, item
		p.Go(func(ctx context.Context) error {
			matches, err := s.matches.ListMatchesForTeams(ctx, item.ID, in.Team1, in.Team2)
			if err != nil {
				return err
			}
			perSeries[i] = matches
			return nil
		})
	}
	if err := p.Wait(); err != nil {
		return HeadToHead{}, err
	}

	out := HeadToHead{Team1: in.Team1, Team2: in.Team2, SeriesScanned: len(series), Matches: []cricket.Match{}}
	for _, matches := range perSeries {
		out.Matches = append(out.Matches, matches...)
	}
	for _, match := range out.Matches {
		winner, ok := cricket.Winner(match)
		switch {
		case !ok:
			out.NoResult++
		case winner.Matches(in.Team1):
			out.Team1Wins++
		case winner.Matches(in.Team2):
			out.Team2Wins++
		default:
			out.NoResult++
		}
	}

	s.logger.InfoContext(ctx, "head to head computed",
		"team1", in.Team1,
		"team2", in.Team2,
		"series", len(series),
		"matches", len(out.Matches),
	)
	return out, nil
}

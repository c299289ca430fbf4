package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/sourcegraph/conc/pool"

	"github.com/riskibarqy/cricket-analytics/internal/domain/player"
)

// PlayerService serves player search and the per-player career page.
type PlayerService struct {
	provider player.Provider
	minChars int
}

func NewPlayerService(provider player.Provider, minChars int) *PlayerService {
	if minChars <= 0 {
		minChars = player.MinSearchChars
	}
	return &PlayerService{provider: provider, minChars: minChars}
}

// Search looks players up by name. Queries shorter than the minimum return an
// empty list without calling the provider.
func (s *PlayerService) Search(ctx context.Context, query string) (_ []player.Summary, err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.Search")
	defer func() { endUsecaseSpan(span, err) }()

	normalized, ok := player.NormalizeQuery(query, s.minChars)
	if !ok {
		return []player.Summary{}, nil
	}

	items, err := s.provider.SearchPlayers(ctx, normalized)
	if err != nil {
		return nil, fmt.Errorf("search players query=%q: %w", normalized, err)
	}
	if items == nil {
		items = []player.Summary{}
	}
	return items, nil
}

// GetProfile loads info, batting and bowling concurrently. Any failure fails
// the whole profile and cancels the other requests.
func (s *PlayerService) GetProfile(ctx context.Context, playerID string) (_ player.Profile, err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.GetProfile")
	defer func() { endUsecaseSpan(span, err) }()

	playerID = strings.TrimSpace(playerID)
	if playerID == "" {
		return player.Profile{}, fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}

	var (
		info    player.Info
		batting player.StatsTable
		bowling player.StatsTable
	)

	p := pool.New().WithContext(ctx).WithCancelOnError().WithFirstError()
	p.Go(func(ctx context.Context) error {
		v, err := s.provider.GetPlayerInfo(ctx, playerID)
		if err != nil {
			return fmt.Errorf("get player info: %w", err)
		}
		info = v
		return nil
	})
	p.Go(func(ctx context.Context) error {
		v, err := s.provider.GetPlayerBatting(ctx, playerID)
		if err != nil {
			return fmt.Errorf("get player batting: %w", err)
		}
		batting = v
		return nil
	})
	p.Go(func(ctx context.Context) error {
		v, err := s.provider.GetPlayerBowling(ctx, playerID)
		if err != nil {
			return fmt.Errorf("get player bowling: %w", err)
		}
		bowling = v
		return nil
	})
	if err := p.Wait(); err != nil {
		return player.Profile{}, fmt.Errorf("player=%s: %w", playerID, err)
	}

	return player.Profile{
		Info:    info,
		Batting: batting,
		Bowling: bowling,
		Career:  player.Summarize(batting, bowling),
	}, nil
}

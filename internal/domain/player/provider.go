package player

import "context"

type Provider interface {
	SearchPlayers(ctx context.Context, query string) ([]Summary, error)
	GetPlayerInfo(ctx context.Context, playerID string) (Info, error)
	GetPlayerBatting(ctx context.Context, playerID string) (StatsTable, error)
	GetPlayerBowling(ctx context.Context, playerID string) (StatsTable, error)
}

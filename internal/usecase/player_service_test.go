package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/riskibarqy/cricket-analytics/internal/domain/player"
	playermock "github.com/riskibarqy/cricket-analytics/internal/mocks/domain/player"
)

func battingTable() player.StatsTable {
	return player.StatsTable{
		Headers: []string{"ROWHEADER", "Test", "ODI", "T20", "IPL"},
		Rows: []player.StatRow{
			{Label: "Matches", Values: []string{"Matches", "113", "295", "125", "252"}},
			{Label: "Runs", Values: []string{"Runs", "8848", "13906", "4188", "8004"}},
		},
	}
}

func TestPlayerService_Search_ShortQuerySkipsProvider(t *testing.T) {
	t.Parallel()

	service := NewPlayerService(playermock.NewProvider(t), 3)

	got, err := service.Search(context.Background(), " ko ")
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestPlayerService_Search(t *testing.T) {
	t.Parallel()

	provider := playermock.NewProvider(t)
	service := NewPlayerService(provider, 0)

	provider.On("SearchPlayers", anyCtx(), "Kohli").Return([]player.Summary{{ID: "1413", Name: "Virat Kohli"}}, nil).Once()

	got, err := service.Search(context.Background(), "  Kohli")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "1413", got[0].ID)
}

func TestPlayerService_GetProfile_FansOut(t *testing.T) {
	t.Parallel()

	provider := playermock.NewProvider(t)
	service := NewPlayerService(provider, 3)

	provider.On("GetPlayerInfo", anyCtx(), "1413").Return(player.Info{ID: "1413", Name: "Virat Kohli"}, nil).Once()
	provider.On("GetPlayerBatting", anyCtx(), "1413").Return(battingTable(), nil).Once()
	provider.On("GetPlayerBowling", anyCtx(), "1413").Return(player.StatsTable{}, nil).Once()

	got, err := service.GetProfile(context.Background(), "1413")
	require.NoError(t, err)
	assert.Equal(t, "Virat Kohli", got.Info.Name)
	require.Len(t, got.Career, 4)
	assert.Equal(t, "IPL", got.Career[3].Format)
	assert.Equal(t, 8004, got.Career[3].Runs)
}

func TestPlayerService_GetProfile_AnyFailureFailsProfile(t *testing.T) {
	t.Parallel()

	provider := playermock.NewProvider(t)
	service := NewPlayerService(provider, 3)
	fetchErr := &FetchError{Op: "player_bowling", StatusCode: 404, Err: errors.New("not found")}

	provider.On("GetPlayerInfo", anyCtx(), "1413").Return(player.Info{ID: "1413"}, nil).Maybe()
	provider.On("GetPlayerBatting", anyCtx(), "1413").Return(battingTable(), nil).Maybe()
	provider.On("GetPlayerBowling", mock.Anything, "1413").Return(player.StatsTable{}, fetchErr).Once()

	_, err := service.GetProfile(context.Background(), "1413")
	require.ErrorIs(t, err, ErrFetchFailed)
	got, ok := AsFetchError(err)
	require.True(t, ok)
	assert.Equal(t, 404, got.StatusCode)

	_, err = service.GetProfile(context.Background(), " ")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

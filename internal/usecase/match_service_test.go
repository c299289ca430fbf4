package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riskibarqy/cricket-analytics/internal/domain/cricket"
	cricketmock "github.com/riskibarqy/cricket-analytics/internal/mocks/domain/cricket"
	"github.com/riskibarqy/cricket-analytics/internal/platform/logging"
)

func TestMatchService_ListSeries_InvalidFilterSkipsProvider(t *testing.T) {
	t.Parallel()

	provider := cricketmock.NewProvider(t)
	service := NewMatchService(provider, cricket.DefaultCatalog(), logging.NewNop())

	cases := []struct {
		kind string
		year int
	}{
		{kind: "domestic", year: 2023},
		{kind: "league", year: 2009},
		{kind: "league", year: 20231},
		{kind: "", year: 2023},
	}
	for _, tc := range cases {
		_, err := service.ListSeries(context.Background(), tc.kind, tc.year)
		if !errors.Is(err, ErrInvalidFilter) {
			t.Fatalf("kind=%q year=%d: expected ErrInvalidFilter, got %v", tc.kind, tc.year, err)
		}
	}
}

func TestMatchService_ListSeries_KeepsLeagueSeriesOnly(t *testing.T) {
	t.Parallel()

	provider := cricketmock.NewProvider(t)
	service := NewMatchService(provider, cricket.DefaultCatalog(), logging.NewNop())

	provider.
		On("ListSeries", anyCtx(), cricket.KindLeague, 2023).
		Return([]cricket.Series{
			{ID: 5945, Name: "Indian Premier League 2023"},
			{ID: 6006, Name: "Lanka Premier League 2023"},
		}, nil).
		Once()

	got, err := service.ListSeries(context.Background(), "League", 2023)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, int64(5945), got[0].ID)
}

func TestMatchService_ListSeries_InternationalKeepsEverything(t *testing.T) {
	t.Parallel()

	provider := cricketmock.NewProvider(t)
	service := NewMatchService(provider, cricket.DefaultCatalog(), logging.NewNop())

	provider.
		On("ListSeries", anyCtx(), cricket.KindInternational, 2019).
		Return([]cricket.Series{{ID: 1, Name: "ICC Cricket World Cup 2019"}, {ID: 2, Name: "India tour of West Indies"}}, nil).
		Once()

	got, err := service.ListSeries(context.Background(), "international", 2019)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestMatchService_ListSeries_PropagatesFetchFailure(t *testing.T) {
	t.Parallel()

	provider := cricketmock.NewProvider(t)
	service := NewMatchService(provider, cricket.DefaultCatalog(), logging.NewNop())

	provider.
		On("ListSeries", anyCtx(), cricket.KindLeague, 2023).
		Return(nil, &FetchError{Op: "list_series", StatusCode: 503, Err: errors.New("provider status=503")}).
		Once()

	_, err := service.ListSeries(context.Background(), "league", 2023)
	require.ErrorIs(t, err, ErrFetchFailed)
	fetchErr, ok := AsFetchError(err)
	require.True(t, ok)
	assert.Equal(t, 503, fetchErr.StatusCode)
}

func TestMatchService_ListMatches_RejectsNonPositiveSeries(t *testing.T) {
	t.Parallel()

	service := NewMatchService(cricketmock.NewProvider(t), cricket.DefaultCatalog(), logging.NewNop())

	for _, id := range []int64{0, -7} {
		if _, err := service.ListMatches(context.Background(), id); !errors.Is(err, ErrInvalidFilter) {
			t.Fatalf("series=%d: expected ErrInvalidFilter, got %v", id, err)
		}
	}
}

func TestMatchService_ListMatchesForTeams_NormalizesAndFilters(t *testing.T) {
	t.Parallel()

	provider := cricketmock.NewProvider(t)
	service := NewMatchService(provider, cricket.DefaultCatalog(), logging.NewNop())

	provider.On("ListMatches", anyCtx(), int64(5945)).Return(ipl2023Payload(), nil).Twice()

	all, err := service.ListMatches(context.Background(), 5945)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "2023-04-08", all[0].Date)
	assert.Equal(t, "Wankhede Stadium", all[0].Venue)

	got, err := service.ListMatchesForTeams(context.Background(), 5945, "csk", "mumbai")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "101", got[0].ID)
	assert.Equal(t, "103", got[1].ID)
}

func TestMatchService_GetMatchAnalysis(t *testing.T) {
	t.Parallel()

	provider := cricketmock.NewProvider(t)
	service := NewMatchService(provider, cricket.DefaultCatalog(), logging.NewNop())

	provider.On("ListMatches", anyCtx(), int64(5945)).Return(ipl2023Payload(), nil).Twice()

	got, err := service.GetMatchAnalysis(context.Background(), 5945, "102")
	require.NoError(t, err)
	assert.Equal(t, "Gujarat Titans", got.Team1.Scoreline.Name)
	assert.Equal(t, 204, got.Team1.Scoreline.Score)
	assert.Equal(t, "Wankhede Stadium", got.Info.Venue)
	assert.True(t, got.Team1.Reconciles())
	assert.True(t, got.Team2.Reconciles())

	_, err = service.GetMatchAnalysis(context.Background(), 5945, "999")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAnalyze_IsStablePerMatch(t *testing.T) {
	t.Parallel()

	matches, _ := cricket.Normalize(ipl2023Payload())
	first := Analyze(matches[0], nil)
	second := Analyze(matches[0], nil)
	assert.Equal(t, first, second)

	seed := uint64(42)
	seeded := Analyze(matches[0], &seed)
	assert.Equal(t, first.Team1.Scoreline.Score, seeded.Team1.Scoreline.Score)
	assert.Equal(t, "2023-04-08", seeded.Info.Date)
}

func TestMatchService_TournamentsAndTeams(t *testing.T) {
	t.Parallel()

	service := NewMatchService(cricketmock.NewProvider(t), cricket.DefaultCatalog(), logging.NewNop())

	items, err := service.Tournaments(2024)
	require.NoError(t, err)
	assert.Len(t, items, 2)

	_, err = service.Tournaments(1999)
	assert.ErrorIs(t, err, ErrInvalidFilter)

	teams, err := service.Teams("league")
	require.NoError(t, err)
	assert.Len(t, teams, 10)

	all, err := service.Teams(" ")
	require.NoError(t, err)
	assert.Len(t, all, 20)

	_, err = service.Teams("county")
	assert.ErrorIs(t, err, ErrInvalidFilter)
}

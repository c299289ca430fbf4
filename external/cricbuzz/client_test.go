package cricbuzz

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/riskibarqy/cricket-analytics/internal/domain/cricket"
	"github.com/riskibarqy/cricket-analytics/internal/platform/logging"
	"github.com/riskibarqy/cricket-analytics/internal/platform/resilience"
	"github.com/riskibarqy/cricket-analytics/internal/usecase"
)

const seriesArchiveBody = `{
  "seriesMapProto": [
    {"date": "2024", "series": [{"id": 7607, "name": "Indian Premier League 2024", "startDt": "1711065600000", "endDt": "1716681600000"}]},
    {"date": "2023", "series": [
      {"id": "5945", "name": "Indian Premier League 2023", "startDt": "1680220800000", "endDt": "1685404800000"},
      {"id": 6006, "name": "Lanka Premier League 2023", "startDt": 1690502400000}
    ]}
  ]
}`

const seriesMatchesBody = `{
  "matchDetails": [
    {"matchDetailsMap": {"key": "Sat, 08 Apr 2023", "match": [
      {"matchInfo": {
        "matchId": 66169,
        "startDate": "1680962400000",
        "status": "Chennai Super Kings won by 7 wkts",
        "venueInfo": {"ground": "Wankhede Stadium", "city": "Mumbai"},
        "team1": {"teamName": "Mumbai Indians", "teamSName": "MI"},
        "team2": {"teamName": "Chennai Super Kings", "teamSName": "CSK"}
      },
      "matchScore": {
        "team1Score": {"inngs1": {"runs": 157, "wickets": 8, "overs": 19.6}},
        "team2Score": {"inngs1": {"runs": 159, "wickets": 3, "overs": 18.1}}
      }},
      {"adDetail": {"name": "native"}}
    ]}},
    {"adDetail": {"name": "banner"}},
    {"matchDetailsMap": {"id": "9001", "key": "2023-04-09", "team1": {"name": "Gujarat Titans", "shortName": "GT"}, "team2": {"name": "Kolkata Knight Riders", "shortName": "KKR"}}}
  ]
}`

func newTestClient(t *testing.T, handler http.Handler, breaker resilience.CircuitBreakerConfig) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return NewClient(ClientConfig{
		HTTPClient:     server.Client(),
		BaseURL:        server.URL,
		APIKey:         "secret-key",
		Timeout:        time.Second,
		RateLimit:      1000,
		RateBurst:      1000,
		Logger:         logging.NewNop(),
		CircuitBreaker: breaker,
	})
}

func TestClient_ListSeries_UsesYearBucket(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/series/v1/archives/league" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.URL.Query().Get("year") != "2023" {
			t.Errorf("unexpected year %q", r.URL.Query().Get("year"))
		}
		if r.Header.Get("x-rapidapi-key") != "secret-key" || r.Header.Get("x-rapidapi-host") != defaultAPIHost {
			t.Errorf("missing rapidapi headers: %v", r.Header)
		}
		_, _ = w.Write([]byte(seriesArchiveBody))
	}), resilience.CircuitBreakerConfig{})

	series, err := client.ListSeries(context.Background(), cricket.KindLeague, 2023)
	if err != nil {
		t.Fatalf("list series: %v", err)
	}
	if len(series) != 2 {
		t.Fatalf("expected 2 series for 2023, got %d", len(series))
	}
	if series[0].ID != 5945 || series[0].StartDate != "2023-03-31" {
		t.Fatalf("unexpected first series: %+v", series[0])
	}
	if series[1].ID != 6006 || series[1].EndDate != "" {
		t.Fatalf("unexpected second series: %+v", series[1])
	}
}

func TestClient_ListSeries_MissingYearIsEmpty(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(seriesArchiveBody))
	}), resilience.CircuitBreakerConfig{})

	series, err := client.ListSeries(context.Background(), cricket.KindInternational, 2015)
	if err != nil {
		t.Fatalf("list series: %v", err)
	}
	if series == nil || len(series) != 0 {
		t.Fatalf("expected empty non-nil list, got %#v", series)
	}
}

func TestClient_ListMatches_ProbesBothShapes(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/series/v1/5945" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		_, _ = w.Write([]byte(seriesMatchesBody))
	}), resilience.CircuitBreakerConfig{})

	payload, err := client.ListMatches(context.Background(), 5945)
	if err != nil {
		t.Fatalf("list matches: %v", err)
	}
	if len(payload.Details) != 3 {
		t.Fatalf("expected 3 detail entries, got %d", len(payload.Details))
	}

	nested := payload.Details[0]
	if nested.Shape != cricket.ShapeNested || len(nested.Nested) != 2 {
		t.Fatalf("unexpected nested detail: %+v", nested)
	}
	info := nested.Nested[0].Info
	if info == nil || info.MatchID != "66169" || info.Ground != "Wankhede Stadium" || info.Score2 == nil || info.Score2.Runs != 159 {
		t.Fatalf("unexpected match info: %+v", info)
	}
	if nested.Nested[1].Info != nil {
		t.Fatalf("expected ad entry without matchInfo")
	}
	if payload.Details[1].Shape != cricket.ShapeMissing {
		t.Fatalf("expected missing shape for ad wrapper")
	}
	flat := payload.Details[2]
	if flat.Shape != cricket.ShapeFlat || flat.Flat.ID != "9001" || flat.Flat.Team2.ShortName != "KKR" {
		t.Fatalf("unexpected flat detail: %+v", flat)
	}

	matches, _ := cricket.Normalize(payload)
	if len(matches) != 2 || matches[0].Date != "2023-04-08" {
		t.Fatalf("unexpected normalized matches: %+v", matches)
	}
}

func TestClient_ListMatches_KeepsListWhenOneEntryIsMalformed(t *testing.T) {
	t.Parallel()

	body := `{
  "matchDetails": [
    {"matchDetailsMap": {"key": "Sat, 08 Apr 2023", "match": [
      {"matchInfo": {"matchId": 66169, "startDate": "1680962400000",
        "team1": {"teamName": "Mumbai Indians", "teamSName": "MI"},
        "team2": {"teamName": "Chennai Super Kings", "teamSName": "CSK"}}},
      {"matchInfo": {"matchId": {"bad": true}, "team1": "GT"}},
      {"matchInfo": {"matchId": 66170, "startDate": "1681048800000",
        "team1": {"teamName": "Gujarat Titans", "teamSName": "GT"},
        "team2": {"teamName": "Kolkata Knight Riders", "teamSName": "KKR"}}}
    ]}},
    {"matchDetailsMap": "unavailable"},
    {"matchDetailsMap": {"id": 9001, "key": "2023-04-10", "team1": {"name": "Delhi Capitals", "shortName": "DC"}, "team2": {"name": "Punjab Kings", "shortName": "PBKS"}}}
  ]
}`
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(body))
	}), resilience.CircuitBreakerConfig{})

	payload, err := client.ListMatches(context.Background(), 5945)
	if err != nil {
		t.Fatalf("list matches: %v", err)
	}
	if len(payload.Details) != 3 {
		t.Fatalf("expected 3 detail entries, got %d", len(payload.Details))
	}
	nested := payload.Details[0]
	if nested.Shape != cricket.ShapeNested || len(nested.Nested) != 3 {
		t.Fatalf("unexpected nested detail: %+v", nested)
	}
	if nested.Nested[1].Info != nil {
		t.Fatalf("expected malformed element without matchInfo, got %+v", nested.Nested[1].Info)
	}
	if payload.Details[1].Shape != cricket.ShapeMissing {
		t.Fatalf("expected missing shape for malformed matchDetailsMap")
	}

	matches, gaps := cricket.Normalize(payload)
	if len(matches) != 3 || matches[0].ID != "66169" || matches[1].ID != "66170" || matches[2].ID != "9001" {
		t.Fatalf("unexpected normalized matches: %+v", matches)
	}
	var sawElementGap, sawEntryGap bool
	for _, gap := range gaps {
		if gap.Detail == 0 && gap.Item == 1 && gap.Field == "matchInfo" {
			sawElementGap = true
		}
		if gap.Detail == 1 && gap.Item == -1 && gap.Field == "matchDetailsMap" {
			sawEntryGap = true
		}
	}
	if !sawElementGap || !sawEntryGap {
		t.Fatalf("expected gaps for both malformed entries, got %+v", gaps)
	}
}

func TestClient_FetchFailedCarriesStatus_NoRetry(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"message":"You have exceeded the rate limit"}`))
	}), resilience.CircuitBreakerConfig{})

	_, err := client.ListMatches(context.Background(), 1)
	if !errors.Is(err, usecase.ErrFetchFailed) {
		t.Fatalf("expected ErrFetchFailed, got %v", err)
	}
	fetchErr, ok := usecase.AsFetchError(err)
	if !ok || fetchErr.StatusCode != http.StatusTooManyRequests || fetchErr.Op != "list_matches" {
		t.Fatalf("unexpected fetch error: %+v", fetchErr)
	}
	if got := calls.Load(); got != 1 {
		t.Fatalf("expected exactly one upstream call, got %d", got)
	}
}

func TestClient_UndecodableBodyIsFetchFailed(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`<html>gateway</html>`))
	}), resilience.CircuitBreakerConfig{})

	_, err := client.ListSeries(context.Background(), cricket.KindLeague, 2023)
	fetchErr, ok := usecase.AsFetchError(err)
	if !ok || fetchErr.StatusCode != http.StatusOK {
		t.Fatalf("expected fetch error with status 200, got %v", err)
	}
}

func TestClient_CircuitOpensOnServerErrors(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	}), resilience.CircuitBreakerConfig{Enabled: true, FailureThreshold: 2, OpenTimeout: time.Minute, HalfOpenMaxReq: 1})

	for i := 0; i < 2; i++ {
		if _, err := client.ListMatches(context.Background(), 1); !errors.Is(err, usecase.ErrFetchFailed) {
			t.Fatalf("attempt %d: expected fetch failure, got %v", i, err)
		}
	}

	_, err := client.ListMatches(context.Background(), 1)
	if !errors.Is(err, usecase.ErrDependencyUnavailable) {
		t.Fatalf("expected open circuit, got %v", err)
	}
	if got := calls.Load(); got != 2 {
		t.Fatalf("open circuit must not reach upstream, got %d calls", got)
	}
}

func TestClient_ClientErrorsDoNotTripCircuit(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}), resilience.CircuitBreakerConfig{Enabled: true, FailureThreshold: 1, OpenTimeout: time.Minute, HalfOpenMaxReq: 1})

	for i := 0; i < 3; i++ {
		_, err := client.GetPlayerInfo(context.Background(), "1413")
		if fetchErr, ok := usecase.AsFetchError(err); !ok || fetchErr.StatusCode != http.StatusNotFound {
			t.Fatalf("attempt %d: expected 404 fetch error, got %v", i, err)
		}
	}
}

func TestClient_PlayerEndpoints(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("/stats/v1/player/search", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("plrN") != "Kohli" {
			t.Errorf("unexpected query %q", r.URL.RawQuery)
		}
		_, _ = w.Write([]byte(`{"player":[{"id":"1413","name":"Virat Kohli","teamName":"India","faceImageId":"332891","dob":"1988-11-05"},{"name":"no id"}]}`))
	})
	mux.HandleFunc("/stats/v1/player/1413", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"id":"1413","name":"Virat Kohli","nickName":"Chiku","role":"Batsman","bat":"Right Handed Bat","intlTeam":"India","DoB":"November 05, 1988"}`))
	})
	mux.HandleFunc("/stats/v1/player/1413/batting", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"headers":["ROWHEADER","Test","ODI","T20","IPL"],"values":[{"values":["Runs","8848","13848","4037","8004"]},{"values":[]}]}`))
	})

	client := newTestClient(t, mux, resilience.CircuitBreakerConfig{})

	hits, err := client.SearchPlayers(context.Background(), "Kohli")
	if err != nil {
		t.Fatalf("search players: %v", err)
	}
	if len(hits) != 1 || hits[0].ID != "1413" || hits[0].FaceImageID != "332891" {
		t.Fatalf("unexpected hits: %+v", hits)
	}

	info, err := client.GetPlayerInfo(context.Background(), "1413")
	if err != nil {
		t.Fatalf("player info: %v", err)
	}
	if info.NickName != "Chiku" || info.BattingStyle != "Right Handed Bat" {
		t.Fatalf("unexpected info: %+v", info)
	}

	batting, err := client.GetPlayerBatting(context.Background(), "1413")
	if err != nil {
		t.Fatalf("batting: %v", err)
	}
	if len(batting.Rows) != 1 || batting.Int("Runs", "IPL") != 8004 {
		t.Fatalf("unexpected batting table: %+v", batting)
	}
}

package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/riskibarqy/cricket-analytics/internal/domain/analysis"
	"github.com/riskibarqy/cricket-analytics/internal/domain/cricket"
	"github.com/riskibarqy/cricket-analytics/internal/domain/player"
	"github.com/riskibarqy/cricket-analytics/internal/domain/runrate"
	"github.com/riskibarqy/cricket-analytics/internal/platform/cache"
	"github.com/riskibarqy/cricket-analytics/internal/platform/debounce"
	"github.com/riskibarqy/cricket-analytics/internal/platform/generation"
	"github.com/riskibarqy/cricket-analytics/internal/platform/id"
	"github.com/riskibarqy/cricket-analytics/internal/platform/logging"
)

const (
	keySeries  = "series"
	keyMatches = "matches"
	keyPlayers = "players"

	defaultSessionTTL    = 30 * time.Minute
	playerSearchTimeout  = 15 * time.Second
	subscriberBufferSize = 1
)

// SessionState is what one dashboard renders. Slices are replaced wholesale on
// every change and never mutated in place, so a copy of the struct is safe to
// hand out.
type SessionState struct {
	ID               string
	Owner            string
	Version          uint64
	Kind             cricket.Kind
	Year             int
	Series           []cricket.Series
	SelectedSeriesID int64
	Matches          []cricket.Match
	Team1Query       string
	Team2Query       string
	FilteredMatches  []cricket.Match
	SelectedMatchID  string
	Analysis         *analysis.MatchAnalysis
	Snapshot         *runrate.Snapshot
	Metrics          *runrate.Metrics
	PlayerQuery      string
	Players          []player.Summary
	LoadingSeries    bool
	LoadingMatches   bool
	SearchingPlayers bool
	LastError        string
	UpdatedAt        time.Time
}

type dashboardSession struct {
	mu          sync.Mutex
	state       SessionState
	gens        *generation.Tracker
	subscribers map[uint64]chan SessionState
	nextSub     uint64
	closed      bool
}

type SessionServiceConfig struct {
	TTL            time.Duration
	SearchDebounce time.Duration
}

// SessionService keeps per-user dashboard state on the server. Every request
// for series, matches or players takes a generation token; a response is
// applied only if no newer request for the same key was issued meanwhile.
type SessionService struct {
	matches     *MatchService
	players     *PlayerService
	predictions *PredictionService
	store       *cache.Store[*dashboardSession]
	debouncer   *debounce.Debouncer
	ids         id.Generator
	logger      *logging.Logger
	now         func() time.Time
}

func NewSessionService(
	matches *MatchService,
	players *PlayerService,
	predictions *PredictionService,
	ids id.Generator,
	cfg SessionServiceConfig,
	logger *logging.Logger,
) *SessionService {
	if logger == nil {
		logger = logging.Default()
	}
	if ids == nil {
		ids = id.NewUUIDGenerator()
	}
	if cfg.TTL <= 0 {
		cfg.TTL = defaultSessionTTL
	}

	return &SessionService{
		matches:     matches,
		players:     players,
		predictions: predictions,
		store:       cache.NewStore[*dashboardSession](cfg.TTL),
		debouncer:   debounce.New(cfg.SearchDebounce),
		ids:         ids,
		logger:      logger.With("component", "dashboard_session"),
		now:         time.Now,
	}
}

// Create opens a session on the newest league season and loads it the way the
// dashboard does on first render: series, then the first series' matches,
// then the first match's analysis. A failed load is recorded on the session.
func (s *SessionService) Create(ctx context.Context, sc SessionContext) (SessionState, error) {
	if !sc.Authenticated() {
		return SessionState{}, fmt.Errorf("%w: session is required", ErrUnauthorized)
	}

	sessionID, err := s.ids.NewID()
	if err != nil {
		return SessionState{}, fmt.Errorf("generate session id: %w", err)
	}

	catalog := s.matches.Catalog()
	sess := &dashboardSession{
		gens:        generation.NewTracker(),
		subscribers: make(map[uint64]chan SessionState),
		state: SessionState{
			ID:        sessionID,
			Owner:     sc.UserID,
			Kind:      cricket.KindLeague,
			Year:      catalog.MaxYear,
			UpdatedAt: s.now().UTC(),
		},
	}
	s.store.Set(ctx, sessionID, sess)
	s.logger.InfoContext(ctx, "dashboard session created", "session_id", sessionID, "user_id", sc.UserID)

	state, err := s.loadSeries(ctx, sess, string(cricket.KindLeague), catalog.MaxYear)
	if err != nil {
		s.logger.WarnContext(ctx, "initial dashboard load failed", "session_id", sessionID, "error", err)
	}
	return state, nil
}

func (s *SessionService) Get(ctx context.Context, sc SessionContext, sessionID string) (SessionState, error) {
	sess, err := s.lookup(ctx, sc, sessionID)
	if err != nil {
		return SessionState{}, err
	}
	return sess.snapshot(), nil
}

func (s *SessionService) Delete(ctx context.Context, sc SessionContext, sessionID string) error {
	sess, err := s.lookup(ctx, sc, sessionID)
	if err != nil {
		return err
	}
	s.store.Delete(ctx, sessionID)
	s.debouncer.Cancel(sessionID)
	sess.close()
	return nil
}

// SetFilter replaces the tournament selection. An invalid selection is
// rejected before any fetch and leaves the session untouched.
func (s *SessionService) SetFilter(ctx context.Context, sc SessionContext, sessionID, kind string, year int) (SessionState, error) {
	sess, err := s.lookup(ctx, sc, sessionID)
	if err != nil {
		return SessionState{}, err
	}
	if _, err := s.matches.Catalog().ValidateFilter(kind, year); err != nil {
		return SessionState{}, fmt.Errorf("%w: %v", ErrInvalidFilter, err)
	}
	return s.loadSeries(ctx, sess, kind, year)
}

func (s *SessionService) SelectSeries(ctx context.Context, sc SessionContext, sessionID string, seriesID int64) (SessionState, error) {
	sess, err := s.lookup(ctx, sc, sessionID)
	if err != nil {
		return SessionState{}, err
	}
	if seriesID <= 0 {
		return SessionState{}, fmt.Errorf("%w: %v: %d", ErrInvalidFilter, cricket.ErrInvalidSeriesID, seriesID)
	}
	return s.loadMatches(ctx, sess, seriesID)
}

// SetTeams narrows the loaded matches to fixtures between two teams. It works
// on the matches already loaded and makes no upstream call.
func (s *SessionService) SetTeams(ctx context.Context, sc SessionContext, sessionID, team1, team2 string) (SessionState, error) {
	sess, err := s.lookup(ctx, sc, sessionID)
	if err != nil {
		return SessionState{}, err
	}

	return sess.update(s.now(), func(st *SessionState) {
		st.Team1Query = strings.TrimSpace(team1)
		st.Team2Query = strings.TrimSpace(team2)
		st.FilteredMatches = cricket.FilterByTeams(st.Matches, st.Team1Query, st.Team2Query)
		if _, ok := findMatch(st.FilteredMatches, st.SelectedMatchID); !ok {
			selectFirstMatch(st)
		}
	}), nil
}

func (s *SessionService) SelectMatch(ctx context.Context, sc SessionContext, sessionID, matchID string) (SessionState, error) {
	sess, err := s.lookup(ctx, sc, sessionID)
	if err != nil {
		return SessionState{}, err
	}

	matchID = strings.TrimSpace(matchID)
	// The lookup runs under the session lock so a series switch landing
	// concurrently can never leave a selection outside the loaded matches.
	state, ok := sess.updateIf(s.now(), func(st *SessionState) bool {
		match, found := findMatch(st.Matches, matchID)
		if !found {
			return false
		}
		result := Analyze(match, nil)
		st.SelectedMatchID = match.ID
		st.Analysis = &result
		return true
	})
	if !ok {
		return SessionState{}, fmt.Errorf("%w: match=%s is not loaded in session=%s", ErrNotFound, matchID, sessionID)
	}
	return state, nil
}

// SetSnapshot records a live chase state and its derived run-rate metrics.
func (s *SessionService) SetSnapshot(ctx context.Context, sc SessionContext, sessionID string, snapshot runrate.Snapshot) (SessionState, error) {
	sess, err := s.lookup(ctx, sc, sessionID)
	if err != nil {
		return SessionState{}, err
	}

	metrics, err := s.predictions.DeriveRunRate(snapshot)
	if err != nil {
		return SessionState{}, err
	}

	return sess.update(s.now(), func(st *SessionState) {
		st.Snapshot = &snapshot
		st.Metrics = &metrics
	}), nil
}

// SearchPlayers records the query and schedules the search after the debounce
// period. Typing bursts collapse into one upstream call; queries below the
// minimum length clear the results immediately.
func (s *SessionService) SearchPlayers(ctx context.Context, sc SessionContext, sessionID, query string) (SessionState, error) {
	sess, err := s.lookup(ctx, sc, sessionID)
	if err != nil {
		return SessionState{}, err
	}

	normalized, ok := player.NormalizeQuery(query, s.players.minChars)
	if !ok {
		s.debouncer.Cancel(sessionID)
		sess.gens.Invalidate(keyPlayers)
		return sess.update(s.now(), func(st *SessionState) {
			st.PlayerQuery = normalized
			st.Players = []player.Summary{}
			st.SearchingPlayers = false
		}), nil
	}

	state := sess.update(s.now(), func(st *SessionState) {
		st.PlayerQuery = normalized
		st.SearchingPlayers = true
	})

	searchCtx := context.WithoutCancel(ctx)
	s.debouncer.Trigger(sessionID, func() {
		s.runPlayerSearch(searchCtx, sess, normalized)
	})
	return state, nil
}

// Subscribe streams state changes. The channel keeps only the latest state;
// it is closed when the session ends or cancel is called.
func (s *SessionService) Subscribe(ctx context.Context, sc SessionContext, sessionID string) (SessionState, <-chan SessionState, func(), error) {
	sess, err := s.lookup(ctx, sc, sessionID)
	if err != nil {
		return SessionState{}, nil, nil, err
	}
	state, ch, cancel := sess.subscribe()
	return state, ch, cancel, nil
}

// RunJanitor evicts idle sessions every interval until ctx is done.
func (s *SessionService) RunJanitor(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.SweepExpired(ctx)
		}
	}
}

// SweepExpired evicts idle sessions now and returns how many were removed.
func (s *SessionService) SweepExpired(ctx context.Context) int {
	evicted := s.store.Sweep(ctx)
	for _, sess := range evicted {
		s.debouncer.Cancel(sess.snapshot().ID)
		sess.close()
	}
	if len(evicted) > 0 {
		s.logger.InfoContext(ctx, "dashboard sessions expired", "count", len(evicted))
	}
	return len(evicted)
}

// Close stops pending debounced work.
func (s *SessionService) Close() {
	s.debouncer.Stop()
}

func (s *SessionService) lookup(ctx context.Context, sc SessionContext, sessionID string) (*dashboardSession, error) {
	if !sc.Authenticated() {
		return nil, fmt.Errorf("%w: session is required", ErrUnauthorized)
	}
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return nil, fmt.Errorf("%w: session id is required", ErrInvalidInput)
	}

	sess, ok := s.store.Get(ctx, sessionID)
	if !ok {
		return nil, fmt.Errorf("%w: session=%s", ErrNotFound, sessionID)
	}
	if owner := sess.snapshot().Owner; owner != sc.UserID {
		return nil, fmt.Errorf("%w: session=%s belongs to another user", ErrForbidden, sessionID)
	}
	return sess, nil
}

func (s *SessionService) loadSeries(ctx context.Context, sess *dashboardSession, kind string, year int) (SessionState, error) {
	token := sess.gens.Begin(keySeries)
	sess.gens.Invalidate(keyMatches)

	sess.commit(token, s.now(), func(st *SessionState) {
		st.Kind = cricket.Kind(strings.ToLower(strings.TrimSpace(kind)))
		st.Year = year
		st.LoadingSeries = true
		clearSeries(st)
	})

	series, fetchErr := s.matches.ListSeries(ctx, kind, year)

	var firstSeries int64
	applied := sess.commit(token, s.now(), func(st *SessionState) {
		st.LoadingSeries = false
		if fetchErr != nil {
			clearSeries(st)
			st.LastError = fetchErr.Error()
			return
		}
		st.LastError = ""
		st.Series = series
		if len(series) > 0 {
			firstSeries = series[0].ID
		}
	})
	if !applied {
		return sess.snapshot(), nil
	}
	if fetchErr != nil {
		return sess.snapshot(), fetchErr
	}
	if firstSeries == 0 {
		return sess.snapshot(), nil
	}
	return s.loadMatches(ctx, sess, firstSeries)
}

func (s *SessionService) loadMatches(ctx context.Context, sess *dashboardSession, seriesID int64) (SessionState, error) {
	token := sess.gens.Begin(keyMatches)

	sess.commit(token, s.now(), func(st *SessionState) {
		st.SelectedSeriesID = seriesID
		st.LoadingMatches = true
		clearMatches(st)
	})

	matches, fetchErr := s.matches.ListMatches(ctx, seriesID)

	applied := sess.commit(token, s.now(), func(st *SessionState) {
		st.LoadingMatches = false
		if fetchErr != nil {
			clearMatches(st)
			st.LastError = fetchErr.Error()
			return
		}
		st.LastError = ""
		st.Matches = matches
		st.FilteredMatches = cricket.FilterByTeams(matches, st.Team1Query, st.Team2Query)
		selectFirstMatch(st)
	})
	if !applied {
		return sess.snapshot(), nil
	}
	return sess.snapshot(), fetchErr
}

func (s *SessionService) runPlayerSearch(ctx context.Context, sess *dashboardSession, query string) {
	token := sess.gens.Begin(keyPlayers)

	ctx, cancel := context.WithTimeout(ctx, playerSearchTimeout)
	defer cancel()

	results, err := s.players.Search(ctx, query)
	sess.commit(token, s.now(), func(st *SessionState) {
		st.SearchingPlayers = false
		if err != nil {
			st.Players = []player.Summary{}
			st.LastError = err.Error()
			return
		}
		st.Players = results
	})
	if err != nil {
		s.logger.WarnContext(ctx, "player search failed", "session_id", sess.snapshot().ID, "error", err)
	}
}

func clearSeries(st *SessionState) {
	st.Series = nil
	st.SelectedSeriesID = 0
	clearMatches(st)
}

func clearMatches(st *SessionState) {
	st.Matches = nil
	st.FilteredMatches = nil
	st.SelectedMatchID = ""
	st.Analysis = nil
}

func selectFirstMatch(st *SessionState) {
	if len(st.FilteredMatches) == 0 {
		st.SelectedMatchID = ""
		st.Analysis = nil
		return
	}
	first := st.FilteredMatches[0]
	result := Analyze(first, nil)
	st.SelectedMatchID = first.ID
	st.Analysis = &result
}

func findMatch(matches []cricket.Match, matchID string) (cricket.Match, bool) {
	if matchID == "" {
		return cricket.Match{}, false
	}
	for _, m := range matches {
		if m.ID == matchID {
			return m, true
		}
	}
	return cricket.Match{}, false
}

func (d *dashboardSession) snapshot() SessionState {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.state
}

// commit applies mutate only while token is the newest for its key.
func (d *dashboardSession) commit(token generation.Token, now time.Time, mutate func(*SessionState)) bool {
	return d.gens.Commit(token, func() {
		d.update(now, mutate)
	})
}

func (d *dashboardSession) update(now time.Time, mutate func(*SessionState)) SessionState {
	d.mu.Lock()
	defer d.mu.Unlock()

	mutate(&d.state)
	d.state.Version++
	d.state.UpdatedAt = now.UTC()
	d.publishLocked()
	return d.state
}

// updateIf is update for mutations that validate against the current state;
// nothing changes and no version is published when mutate returns false.
func (d *dashboardSession) updateIf(now time.Time, mutate func(*SessionState) bool) (SessionState, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !mutate(&d.state) {
		return d.state, false
	}
	d.state.Version++
	d.state.UpdatedAt = now.UTC()
	d.publishLocked()
	return d.state, true
}

func (d *dashboardSession) publishLocked() {
	for _, ch := range d.subscribers {
		select {
		case ch <- d.state:
		default:
			select {
			case <-ch:
			default:
			}
			ch <- d.state
		}
	}
}

func (d *dashboardSession) subscribe() (SessionState, <-chan SessionState, func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	ch := make(chan SessionState, subscriberBufferSize)
	if d.closed {
		close(ch)
		return d.state, ch, func() {}
	}

	d.nextSub++
	subID := d.nextSub
	d.subscribers[subID] = ch

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			d.mu.Lock()
			defer d.mu.Unlock()
			if existing, ok := d.subscribers[subID]; ok {
				delete(d.subscribers, subID)
				close(existing)
			}
		})
	}
	return d.state, ch, cancel
}

func (d *dashboardSession) close() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		return
	}
	d.closed = true
	for subID, ch := range d.subscribers {
		delete(d.subscribers, subID)
		close(ch)
	}
}

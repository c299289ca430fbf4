// Package generation guards state against stale asynchronous responses.
//
// Each key carries a monotonically increasing counter. A caller takes a Token
// before issuing a request and commits the response with it; the commit only
// applies while no newer token has been issued for the same key, so the last
// request issued wins regardless of the order responses arrive in.
package generation

import "sync"

type Token struct {
	Key string
	Gen uint64
}

type Tracker struct {
	mu      sync.Mutex
	current map[string]uint64
}

func NewTracker() *Tracker {
	return &Tracker{current: make(map[string]uint64)}
}

// Begin issues a new token for key and invalidates every earlier token for it.
func (t *Tracker) Begin(key string) Token {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.current[key]++
	return Token{Key: key, Gen: t.current[key]}
}

func (t *Tracker) IsCurrent(token Token) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	return token.Gen != 0 && t.current[token.Key] == token.Gen
}

// Commit runs apply while holding the tracker lock if token is still current.
// It reports whether apply ran.
func (t *Tracker) Commit(token Token, apply func()) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if token.Gen == 0 || t.current[token.Key] != token.Gen {
		return false
	}
	if apply != nil {
		apply()
	}
	return true
}

// Invalidate bumps the generation of key without issuing a token, discarding
// whatever is in flight for it.
func (t *Tracker) Invalidate(keys ...string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	for _, key := range keys {
		t.current[key]++
	}
}

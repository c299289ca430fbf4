package httpapi

import (
	"context"

	"github.com/riskibarqy/cricket-analytics/internal/usecase"
)

type contextKey string

const sessionContextKey contextKey = "session_context"

func withSessionContext(ctx context.Context, sc usecase.SessionContext) context.Context {
	return context.WithValue(ctx, sessionContextKey, sc)
}

// sessionFromContext returns the caller identity attached by WithSession. The
// zero value means an anonymous caller; services decide whether that is enough.
func sessionFromContext(ctx context.Context) usecase.SessionContext {
	sc, _ := ctx.Value(sessionContextKey).(usecase.SessionContext)
	return sc
}

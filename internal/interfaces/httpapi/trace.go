package httpapi

import (
	"context"
	"net/http"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var apiTracer = otel.Tracer("cricket-analytics/internal/interfaces/httpapi")
var noopSpan = trace.SpanFromContext(context.Background())

// routeParams are the path wildcards copied onto handler spans.
var routeParams = []struct {
	name string
	key  attribute.Key
}{
	{name: "seriesID", key: "cricket.series_id"},
	{name: "matchID", key: "cricket.match_id"},
	{name: "playerID", key: "cricket.player_id"},
	{name: "adminID", key: "cricket.admin_id"},
	{name: "sessionID", key: "cricket.session_id"},
}

func startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	parent := trace.SpanFromContext(ctx)
	if !parent.SpanContext().IsValid() || !shouldCreateHTTPAPISpan(name) {
		// Untraced routes such as /healthz and internal helpers get no span.
		return ctx, noopSpan
	}
	return apiTracer.Start(ctx, name)
}

// startHandlerSpan starts a handler span tagged with the route's ids.
func startHandlerSpan(r *http.Request, name string) (context.Context, trace.Span) {
	ctx, span := startSpan(r.Context(), name)
	if span.IsRecording() {
		if attrs := routeAttributes(r); len(attrs) > 0 {
			span.SetAttributes(attrs...)
		}
	}
	return ctx, span
}

func routeAttributes(r *http.Request) []attribute.KeyValue {
	var attrs []attribute.KeyValue
	for _, param := range routeParams {
		if value := strings.TrimSpace(r.PathValue(param.name)); value != "" {
			attrs = append(attrs, param.key.String(value))
		}
	}
	return attrs
}

func shouldCreateHTTPAPISpan(name string) bool {
	return strings.HasPrefix(name, "httpapi.Handler.")
}

package httpapi

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/riskibarqy/cricket-analytics/internal/usecase"
)

func TestShouldTraceRequest_HealthPaths(t *testing.T) {
	paths := []string{"/healthz", "/health", "/livez", "/readyz", " /healthz "}
	for _, path := range paths {
		if shouldTraceRequest(path) {
			t.Fatalf("expected no tracing for path %q", path)
		}
	}
}

func TestShouldTraceRequest_NonHealthPaths(t *testing.T) {
	paths := []string{"/v1/series", "/v1/sessions/sess-1/stream", "/", "/docs"}
	for _, path := range paths {
		if !shouldTraceRequest(path) {
			t.Fatalf("expected tracing for path %q", path)
		}
	}
}

func TestSessionFromRequest(t *testing.T) {
	tests := []struct {
		name    string
		target  string
		headers map[string]string
		want    usecase.SessionContext
		wantErr bool
	}{
		{name: "anonymous", target: "/v1/series"},
		{
			name:    "headers",
			target:  "/v1/sessions",
			headers: map[string]string{headerUserID: " u-1 ", headerAuthorization: "bearer tok"},
			want:    usecase.SessionContext{UserID: "u-1", Token: "tok"},
		},
		{
			name:    "malformed authorization",
			target:  "/v1/sessions",
			headers: map[string]string{headerAuthorization: "Basic dTpw"},
			wantErr: true,
		},
		{
			name:    "websocket query fallback",
			target:  "/v1/sessions/sess-1/stream?user_id=u-1&access_token=tok",
			headers: map[string]string{"Upgrade": "websocket"},
			want:    usecase.SessionContext{UserID: "u-1", Token: "tok"},
		},
		{
			name:   "query ignored without upgrade",
			target: "/v1/sessions/sess-1?user_id=u-1&access_token=tok",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			got, err := sessionFromRequest(req)
			if tt.wantErr {
				if !errors.Is(err, usecase.ErrUnauthorized) {
					t.Fatalf("expected unauthorized, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("sessionFromRequest()=%+v want=%+v", got, tt.want)
			}
		})
	}
}

package httpapi

import (
	"context"
	"net/http"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/gorilla/websocket"

	"github.com/riskibarqy/cricket-analytics/internal/usecase"
)

const (
	streamWriteDeadline = 5 * time.Second
	streamPongWait      = 30 * time.Second
	streamPingInterval  = 20 * time.Second
)

var streamUpgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 4096,
	// Callers are authenticated by their SessionContext, not by origin.
	CheckOrigin: func(_ *http.Request) bool { return true },
}

type streamFrame struct {
	Type string     `json:"type"`
	Data sessionDTO `json:"data"`
}

// StreamSession upgrades to a WebSocket and pushes the session state after
// every change. Intermediate states may be skipped; the last one always arrives.
func (h *Handler) StreamSession(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "httpapi.Handler.StreamSession")
	defer span.End()

	sessionID := pathSessionID(r)
	state, updates, cancel, err := h.sessionService.Subscribe(ctx, sessionFromContext(ctx), sessionID)
	if err != nil {
		h.logger.WarnContext(ctx, "session stream rejected", "session_id", sessionID, "error", err)
		writeError(ctx, w, err)
		return
	}
	defer cancel()

	conn, err := streamUpgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already replied to the client.
		h.logger.WarnContext(ctx, "session stream upgrade failed", "session_id", sessionID, "error", err)
		return
	}
	defer conn.Close()

	h.logger.InfoContext(ctx, "session stream connected", "session_id", sessionID)
	done := make(chan struct{})
	go readStream(conn, done)

	if err := h.writeStreamFrame(ctx, conn, state); err != nil {
		return
	}

	ticker := time.NewTicker(streamPingInterval)
	defer ticker.Stop()

	for {
		select {
		case next, ok := <-updates:
			if !ok {
				_ = conn.SetWriteDeadline(time.Now().Add(streamWriteDeadline))
				_ = conn.WriteMessage(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseNormalClosure, "session closed"))
				h.logger.InfoContext(ctx, "session stream closed by session end", "session_id", sessionID)
				return
			}
			if err := h.writeStreamFrame(ctx, conn, next); err != nil {
				h.logger.WarnContext(ctx, "session stream write failed", "session_id", sessionID, "error", err)
				return
			}
		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(streamWriteDeadline))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-done:
			h.logger.InfoContext(ctx, "session stream disconnected", "session_id", sessionID)
			return
		case <-ctx.Done():
			return
		}
	}
}

func (h *Handler) writeStreamFrame(ctx context.Context, conn *websocket.Conn, state usecase.SessionState) error {
	payload, err := sonic.Marshal(streamFrame{
		Type: "state",
		Data: sessionToDTO(ctx, state, h.predictionService.Format()),
	})
	if err != nil {
		return err
	}
	_ = conn.SetWriteDeadline(time.Now().Add(streamWriteDeadline))
	return conn.WriteMessage(websocket.TextMessage, payload)
}

// readStream consumes control frames until the peer goes away. Clients are not
// expected to send data.
func readStream(conn *websocket.Conn, done chan<- struct{}) {
	defer close(done)

	conn.SetReadLimit(512)
	_ = conn.SetReadDeadline(time.Now().Add(streamPongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(streamPongWait))
	})
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

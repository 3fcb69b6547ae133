package api

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/coder/websocket"
	"github.com/google/uuid"

	"github.com/DevkarSakshi/ai-resume-and-career-assistant/internal/domain"
)

type wsInbound struct {
	Message string `json:"message"`
	Intent  string `json:"intent,omitempty"`
}

type wsOutbound struct {
	Response       string `json:"response"`
	SessionID      string `json:"session_id"`
	Intent         string `json:"intent"`
	ResumeComplete bool   `json:"resume_complete"`
	CareerComplete bool   `json:"career_complete"`
	CurrentState   string `json:"current_state"`
	CurrentField   string `json:"current_field,omitempty"`
}

// ChatSocket serves the WebSocket chat channel. Each connection gets its own
// session; the connection carries one JSON message per chat turn.
func (h *Handler) ChatSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: []string{"*"},
	})
	if err != nil {
		slog.Error("WebSocket accept failed", "error", err)
		return
	}
	defer conn.Close(websocket.StatusInternalError, "connection closed")

	sessionID := uuid.NewString()
	ctx := r.Context()
	slog.Info("WebSocket chat connected", "session_id", sessionID)

	for {
		_, data, err := conn.Read(ctx)
		if err != nil {
			status := websocket.CloseStatus(err)
			if status == websocket.StatusNormalClosure || status == websocket.StatusGoingAway || errors.Is(err, ctx.Err()) {
				slog.Info("WebSocket chat disconnected", "session_id", sessionID)
			} else {
				slog.Debug("WebSocket read error", "session_id", sessionID, "error", err)
			}
			h.engine.Sessions().Delete(sessionID)
			h.metrics.Forget(sessionID)
			conn.Close(websocket.StatusNormalClosure, "")
			return
		}

		var in wsInbound
		if err := json.Unmarshal(data, &in); err != nil || in.Message == "" {
			writeSocketJSON(ctx, conn, map[string]string{"error": "message is required"})
			continue
		}

		turn, err := h.engine.ProcessMessage(ctx, sessionID, in.Message, domain.Intent(in.Intent))
		if err != nil {
			slog.Error("WebSocket chat turn failed", "session_id", sessionID, "error", err)
			writeSocketJSON(ctx, conn, map[string]string{"error": "failed to process message"})
			continue
		}
		h.metrics.RecordTurn(sessionID, turn)

		writeSocketJSON(ctx, conn, wsOutbound{
			Response:       turn.Message,
			SessionID:      sessionID,
			Intent:         string(turn.Intent),
			ResumeComplete: turn.ResumeComplete,
			CareerComplete: turn.CareerComplete,
			CurrentState:   string(turn.State),
			CurrentField:   turn.CurrentField,
		})
	}
}

func writeSocketJSON(ctx context.Context, conn *websocket.Conn, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		slog.Error("Failed to encode WebSocket reply", "error", err)
		return
	}
	if err := conn.Write(ctx, websocket.MessageText, data); err != nil {
		slog.Debug("WebSocket write error", "error", err)
	}
}

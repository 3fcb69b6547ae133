package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/DevkarSakshi/ai-resume-and-career-assistant/internal/domain"
)

type chatRequest struct {
	Message   string `json:"message"`
	SessionID string `json:"session_id"`
	Intent    string `json:"intent"`
}

type chatResponse struct {
	Response       string `json:"response"`
	SessionID      string `json:"session_id"`
	Intent         string `json:"intent"`
	ResumeComplete bool   `json:"resume_complete"`
	CareerComplete bool   `json:"career_complete"`
	CurrentState   string `json:"current_state"`
	CurrentField   string `json:"current_field,omitempty"`
}

// Chat advances a conversation by one message. A missing session id mints a
// fresh session.
func (h *Handler) Chat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Message == "" {
		Error(w, http.StatusBadRequest, "message is required")
		return
	}

	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	turn, err := h.engine.ProcessMessage(r.Context(), sessionID, req.Message, domain.Intent(req.Intent))
	if err != nil {
		slog.Error("Chat turn failed", "session_id", sessionID, "error", err)
		Error(w, http.StatusInternalServerError, "failed to process message")
		return
	}

	h.metrics.RecordTurn(sessionID, turn)

	JSON(w, http.StatusOK, chatResponse{
		Response:       turn.Message,
		SessionID:      sessionID,
		Intent:         string(turn.Intent),
		ResumeComplete: turn.ResumeComplete,
		CareerComplete: turn.CareerComplete,
		CurrentState:   string(turn.State),
		CurrentField:   turn.CurrentField,
	})
}

// ClearSession discards a conversation's state.
func (h *Handler) ClearSession(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")
	if sessionID == "" {
		Error(w, http.StatusBadRequest, "session id is required")
		return
	}
	h.engine.Sessions().Delete(sessionID)
	h.metrics.Forget(sessionID)
	JSON(w, http.StatusOK, map[string]string{
		"message":    "Session cleared successfully",
		"session_id": sessionID,
	})
}

package api

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
)

type webhookRequest struct {
	SessionID string         `json:"session_id"`
	Answers   map[string]any `json:"answers"`
}

// ResumeSubmitted accepts a completed submission from an external form and
// kicks off the analysis pipeline in the background. The webhook replies as
// soon as the submission is accepted.
func (h *Handler) ResumeSubmitted(w http.ResponseWriter, r *http.Request) {
	var req webhookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if len(req.Answers) == 0 {
		Error(w, http.StatusBadRequest, "answers are required")
		return
	}
	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	if h.sink != nil {
		if err := h.sink.SaveAnswers(r.Context(), sessionID, req.Answers); err != nil {
			slog.Error("Failed to persist webhook answers", "session_id", sessionID, "error", err)
		}
	}

	// The request context dies with this handler; the pipeline gets its own.
	go h.runner.Run(context.Background(), sessionID, req.Answers)

	JSON(w, http.StatusAccepted, map[string]string{
		"status":     "accepted",
		"session_id": sessionID,
	})
}

package api

import (
	"encoding/json"
	"net/http"

	"github.com/DevkarSakshi/ai-resume-and-career-assistant/internal/career"
)

type guidanceRequest struct {
	SessionID string   `json:"session_id"`
	Skills    []string `json:"skills"`
	Interests []string `json:"interests"`
	Education string   `json:"education"`
}

// CareerGuidance ranks career paths for a profile. When a session id refers
// to a finished career conversation, the collected profile takes precedence
// over the request body.
func (h *Handler) CareerGuidance(w http.ResponseWriter, r *http.Request) {
	var req guidanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	skills, interests, education := req.Skills, req.Interests, req.Education
	if req.SessionID != "" {
		if s, release, ok := h.engine.Sessions().Get(req.SessionID); ok {
			if s.CareerComplete {
				skills = s.Career.Skills
				interests = s.Career.Interests
				education = s.Career.Education
			}
			release()
		}
	}
	if len(skills) == 0 && len(interests) == 0 && education == "" {
		Error(w, http.StatusBadRequest, "skills, interests or education are required")
		return
	}

	matches := h.matcher.Match(skills, interests, education)
	var top *career.Match
	if len(matches) > 0 {
		top = &matches[0]
	}

	JSON(w, http.StatusOK, map[string]any{
		"recommendations": matches,
		"advice":          career.Advise(skills, top),
	})
}

// Package api provides the HTTP surface of the assistant: the chat endpoint,
// resume and career retrieval, document downloads, the submission webhook,
// and the WebSocket chat channel.
package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/DevkarSakshi/ai-resume-and-career-assistant/internal/pipeline"
	"github.com/DevkarSakshi/ai-resume-and-career-assistant/internal/store"
	"github.com/DevkarSakshi/ai-resume-and-career-assistant/internal/workflow"
)

// Handler provides common handler utilities and dependencies.
type Handler struct {
	engine    *workflow.Engine
	renderer  workflow.Renderer
	matcher   workflow.Matcher
	runner    *pipeline.Runner
	sink      store.Sink // nil = persistence disabled
	outputDir string
	metrics   *Metrics
}

// NewHandler creates a new Handler with common dependencies.
func NewHandler(engine *workflow.Engine, renderer workflow.Renderer, matcher workflow.Matcher, runner *pipeline.Runner, sink store.Sink, outputDir string) *Handler {
	return &Handler{
		engine:    engine,
		renderer:  renderer,
		matcher:   matcher,
		runner:    runner,
		sink:      sink,
		outputDir: outputDir,
		metrics:   NewMetrics(),
	}
}

// JSON writes a JSON response with the given status code.
func JSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, `{"error": "failed to encode response"}`, http.StatusInternalServerError)
	}
}

// Error writes a JSON error response.
func Error(w http.ResponseWriter, status int, message string) {
	JSON(w, status, map[string]string{"error": message})
}

// RegisterRoutes wires all endpoints onto the router.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.Root)
	r.Get("/healthz", h.Healthz)

	r.Post("/api/chat", h.Chat)
	r.Delete("/api/session/{sessionID}", h.ClearSession)

	r.Get("/api/resume/{sessionID}", h.GetResume)
	r.Post("/api/resume/generate", h.GenerateResume)
	r.Post("/api/resume/import", h.ImportResume)
	r.Get("/download_resume/{sessionID}", h.DownloadResumePDF)
	r.Get("/download_resume_docx/{sessionID}", h.DownloadResumeDOCX)

	r.Post("/api/career/guidance", h.CareerGuidance)
	r.Post("/webhook/resume-submitted", h.ResumeSubmitted)

	r.Get("/api/metrics", h.GetMetrics)
	r.Get("/ws/chat", h.ChatSocket)
}

// Root returns a service banner so a browser hitting the API root sees
// something other than a 404.
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	JSON(w, http.StatusOK, map[string]string{
		"message": "AI Resume & Career Assistant API",
		"status":  "running",
		"docs":    "/healthz",
	})
}

// Healthz reports service health, including database connectivity when
// persistence is enabled.
func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	resp := map[string]any{
		"status":   "ok",
		"sessions": h.engine.Sessions().Len(),
	}
	if h.sink != nil {
		if err := h.sink.Ping(r.Context()); err != nil {
			resp["status"] = "degraded"
			resp["database"] = "unreachable"
			JSON(w, http.StatusServiceUnavailable, resp)
			return
		}
		resp["database"] = "ok"
	}
	JSON(w, http.StatusOK, resp)
}

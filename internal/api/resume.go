package api

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/DevkarSakshi/ai-resume-and-career-assistant/internal/importer"
	"github.com/DevkarSakshi/ai-resume-and-career-assistant/internal/pipeline"
)

// GetResume returns the collected resume data for a session.
func (h *Handler) GetResume(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")
	s, release, ok := h.engine.Sessions().Get(sessionID)
	if !ok {
		Error(w, http.StatusNotFound, "session not found")
		return
	}
	record := s.Resume
	complete := s.ResumeComplete
	artifact := s.ArtifactPath
	release()

	JSON(w, http.StatusOK, map[string]any{
		"session_id":      sessionID,
		"resume_data":     record,
		"resume_complete": complete,
		"file_path":       artifact,
	})
}

// GenerateResume renders documents from a posted answer map without running
// the chat flow, returning the analysis alongside the file paths.
func (h *Handler) GenerateResume(w http.ResponseWriter, r *http.Request) {
	var req struct {
		SessionID string         `json:"session_id"`
		Answers   map[string]any `json:"answers"`
	}
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

	record := pipeline.BuildRecord(req.Answers)
	score := pipeline.Analyze(record)
	gaps := pipeline.SkillGaps(record)
	roadmap := pipeline.BuildRoadmap(score, gaps)

	if err := os.MkdirAll(h.outputDir, 0o755); err != nil {
		slog.Error("Failed to create output directory", "dir", h.outputDir, "error", err)
		Error(w, http.StatusInternalServerError, "failed to prepare output directory")
		return
	}
	pdfPath := filepath.Join(h.outputDir, sessionID+"_resume.pdf")
	if err := h.renderer.RenderPDF(record, pdfPath); err != nil {
		slog.Error("Resume PDF render failed", "session_id", sessionID, "error", err)
		Error(w, http.StatusInternalServerError, "failed to render resume")
		return
	}
	docxPath := filepath.Join(h.outputDir, sessionID+"_resume.docx")
	if err := h.renderer.RenderDOCX(record, docxPath); err != nil {
		slog.Error("Resume DOCX render failed", "session_id", sessionID, "error", err)
		docxPath = ""
	}

	if h.sink != nil {
		if err := h.sink.SaveResults(r.Context(), sessionID, record, score, gaps, roadmap); err != nil {
			slog.Error("Failed to persist resume results", "session_id", sessionID, "error", err)
		}
	}

	JSON(w, http.StatusOK, map[string]any{
		"session_id": sessionID,
		"score":      score,
		"skill_gaps": gaps,
		"roadmap":    roadmap,
		"pdf_path":   pdfPath,
		"docx_path":  docxPath,
	})
}

// ImportResume extracts plain text from an uploaded resume file (PDF, DOCX,
// or plain text) so a client can prefill answers from an existing document.
func (h *Handler) ImportResume(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(importer.MaxUploadSize); err != nil {
		Error(w, http.StatusBadRequest, "invalid multipart form")
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		Error(w, http.StatusBadRequest, "file field is required")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, importer.MaxUploadSize+1))
	if err != nil {
		Error(w, http.StatusBadRequest, "failed to read upload")
		return
	}
	if len(data) > importer.MaxUploadSize {
		Error(w, http.StatusRequestEntityTooLarge, "file too large")
		return
	}

	text, err := importer.Extract(header.Header.Get("Content-Type"), data)
	if err != nil {
		Error(w, http.StatusUnsupportedMediaType, err.Error())
		return
	}

	JSON(w, http.StatusOK, map[string]any{
		"filename": header.Filename,
		"text":     text,
	})
}

// DownloadResumePDF serves a generated PDF resume.
func (h *Handler) DownloadResumePDF(w http.ResponseWriter, r *http.Request) {
	h.serveArtifact(w, r, "_resume.pdf")
}

// DownloadResumeDOCX serves a generated DOCX resume.
func (h *Handler) DownloadResumeDOCX(w http.ResponseWriter, r *http.Request) {
	h.serveArtifact(w, r, "_resume.docx")
}

func (h *Handler) serveArtifact(w http.ResponseWriter, r *http.Request, suffix string) {
	sessionID := chi.URLParam(r, "sessionID")
	if sessionID == "" || sessionID != filepath.Base(sessionID) {
		Error(w, http.StatusBadRequest, "invalid session id")
		return
	}
	path := filepath.Join(h.outputDir, sessionID+suffix)
	if _, err := os.Stat(path); err != nil {
		Error(w, http.StatusNotFound, "resume file not found")
		return
	}
	w.Header().Set("Content-Disposition", `attachment; filename="`+sessionID+suffix+`"`)
	http.ServeFile(w, r, path)
}

// Package store provides best-effort persistence for collected answers,
// pipeline results, and generated artifacts.
package store

import (
	"context"

	"github.com/DevkarSakshi/ai-resume-and-career-assistant/internal/domain"
)

// Sink persists workflow outputs. Every call is best-effort: callers log
// failures and carry on, and a nil Sink is treated as disabled persistence.
type Sink interface {
	// SaveAnswers persists the raw answers collected for a session.
	SaveAnswers(ctx context.Context, sessionID string, answers map[string]any) error

	// SaveResults upserts the structured pipeline outputs for a session.
	SaveResults(ctx context.Context, sessionID string, record domain.ResumeRecord, score int, gaps []string, roadmap domain.Roadmap) error

	// SaveArtifact records a generated resume file for a session.
	SaveArtifact(ctx context.Context, sessionID, filePath, contentType string) error

	// Ping verifies connectivity to the backing database.
	Ping(ctx context.Context) error

	// Close releases the backing database.
	Close() error
}

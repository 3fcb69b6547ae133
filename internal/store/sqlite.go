package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/DevkarSakshi/ai-resume-and-career-assistant/internal/domain"
	_ "modernc.org/sqlite"
)

// SQLiteStore implements Sink using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLite creates a new SQLite-backed sink.
func NewSQLite(dbPath string) (Sink, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create database directory: %w", err)
	}

	// Open database with WAL mode for better concurrency.
	dsn := dbPath + "?_journal=WAL&_sync=NORMAL&_busy_timeout=5000"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}

	store := &SQLiteStore{db: db}
	if err := store.initSchema(); err != nil {
		return nil, fmt.Errorf("initialize schema: %w", err)
	}

	return store, nil
}

func (s *SQLiteStore) initSchema() error {
	query := `
	PRAGMA busy_timeout = 5000;
	CREATE TABLE IF NOT EXISTS chatbot_answers (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		session_id TEXT NOT NULL,
		answers_json TEXT NOT NULL,
		created_at INTEGER NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_answers_session ON chatbot_answers(session_id);

	CREATE TABLE IF NOT EXISTS resume_results (
		session_id TEXT PRIMARY KEY,
		record_json TEXT NOT NULL,
		score INTEGER NOT NULL,
		gaps_json TEXT NOT NULL,
		roadmap_json TEXT NOT NULL,
		updated_at INTEGER NOT NULL
	);

	CREATE TABLE IF NOT EXISTS resume_files (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		session_id TEXT NOT NULL,
		file_name TEXT NOT NULL,
		content_type TEXT NOT NULL,
		size_bytes INTEGER NOT NULL,
		created_at INTEGER NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_files_session ON resume_files(session_id);
	`
	if _, err := s.db.Exec(query); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	return nil
}

// Ping verifies database connectivity.
func (s *SQLiteStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// SaveAnswers persists the raw answers collected for a session.
func (s *SQLiteStore) SaveAnswers(ctx context.Context, sessionID string, answers map[string]any) error {
	payload, err := json.Marshal(answers)
	if err != nil {
		return fmt.Errorf("marshal answers: %w", err)
	}

	query := `INSERT INTO chatbot_answers (session_id, answers_json, created_at) VALUES (?, ?, ?)`
	return s.execWithRetry(ctx, "save answers", query, sessionID, string(payload), time.Now().Unix())
}

// SaveResults upserts pipeline outputs for a session.
func (s *SQLiteStore) SaveResults(ctx context.Context, sessionID string, record domain.ResumeRecord, score int, gaps []string, roadmap domain.Roadmap) error {
	recordJSON, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("marshal record: %w", err)
	}
	gapsJSON, err := json.Marshal(gaps)
	if err != nil {
		return fmt.Errorf("marshal gaps: %w", err)
	}
	roadmapJSON, err := json.Marshal(roadmap)
	if err != nil {
		return fmt.Errorf("marshal roadmap: %w", err)
	}

	query := `
	INSERT INTO resume_results (session_id, record_json, score, gaps_json, roadmap_json, updated_at)
	VALUES (?, ?, ?, ?, ?, ?)
	ON CONFLICT(session_id) DO UPDATE SET
		record_json = excluded.record_json,
		score = excluded.score,
		gaps_json = excluded.gaps_json,
		roadmap_json = excluded.roadmap_json,
		updated_at = excluded.updated_at`
	return s.execWithRetry(ctx, "save results", query,
		sessionID, string(recordJSON), score, string(gapsJSON), string(roadmapJSON), time.Now().Unix())
}

// SaveArtifact records a generated resume file for a session.
func (s *SQLiteStore) SaveArtifact(ctx context.Context, sessionID, filePath, contentType string) error {
	var size int64
	if info, err := os.Stat(filePath); err == nil {
		size = info.Size()
	}

	query := `INSERT INTO resume_files (session_id, file_name, content_type, size_bytes, created_at) VALUES (?, ?, ?, ?, ?)`
	return s.execWithRetry(ctx, "save artifact", query,
		sessionID, filepath.Base(filePath), contentType, size, time.Now().Unix())
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	if err := s.db.Close(); err != nil {
		return fmt.Errorf("close database: %w", err)
	}
	return nil
}

// execWithRetry executes a write with exponential backoff to handle
// SQLITE_BUSY errors from concurrent writers.
func (s *SQLiteStore) execWithRetry(ctx context.Context, op, query string, args ...any) error {
	maxRetries := 3
	baseDelay := 100 * time.Millisecond

	var err error
	for i := 0; i < maxRetries; i++ {
		_, err = s.db.ExecContext(ctx, query, args...)
		if err == nil {
			return nil
		}
		if !isSQLiteBusy(err) || i == maxRetries-1 {
			break
		}
		delay := baseDelay * time.Duration(1<<i)
		slog.Debug("SQLite write busy, retrying", "op", op, "attempt", i+1, "delay", delay)
		time.Sleep(delay)
	}
	return fmt.Errorf("%s: %w", op, err)
}

// isSQLiteBusy reports whether err is a SQLite concurrency error that
// warrants a retry.
func isSQLiteBusy(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "SQLITE_BUSY") || strings.Contains(msg, "database is locked")
}

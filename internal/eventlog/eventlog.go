// Package eventlog keeps the session's structured degradation log.
package eventlog

// File: internal/eventlog/eventlog.go
// Purpose: In-memory, session-scoped event log mirrored to slog, so the
// dashboard can show why fallback data is being displayed.

import (
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"rpo-console-api/internal/models"
)

// Severity levels match what the dashboard's log console renders.
const (
	SeverityInfo    = "info"
	SeveritySuccess = "success"
	SeverityWarning = "warning"
	SeverityError   = "error"
)

// Log records session events in memory and mirrors them to slog. Safe for
// concurrent use; fan-out fetches record from multiple goroutines.
type Log struct {
	mu      sync.Mutex
	entries []models.LogEvent
	logger  *slog.Logger
}

// New returns a Log mirroring to the given logger, or slog.Default when nil.
func New(logger *slog.Logger) *Log {
	if logger == nil {
		logger = slog.Default()
	}
	return &Log{logger: logger}
}

// Record appends one entry and mirrors it at the matching slog level.
func (l *Log) Record(severity, message string) models.LogEvent {
	entry := models.LogEvent{
		ID:        uuid.NewString(),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Severity:  severity,
		Message:   message,
	}
	l.mu.Lock()
	l.entries = append(l.entries, entry)
	l.mu.Unlock()

	switch severity {
	case SeverityWarning:
		l.logger.Warn(message)
	case SeverityError:
		l.logger.Error(message)
	default:
		l.logger.Info(message)
	}
	return entry
}

// Snapshot returns a copy of every entry recorded so far.
func (l *Log) Snapshot() []models.LogEvent {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]models.LogEvent, len(l.entries))
	copy(out, l.entries)
	return out
}

// Reset clears the session log; each analysis run starts clean.
func (l *Log) Reset() {
	l.mu.Lock()
	l.entries = nil
	l.mu.Unlock()
}

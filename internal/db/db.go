// Package db wraps the optional MySQL audit store for the console API.
package db

// File: internal/db/db.go
// Purpose: Persist degradation events and published mapping snapshots so
// "why is fallback data showing" can be answered after the session ends.

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/google/uuid"

	"rpo-console-api/internal/models"
)

// Store wraps a sql.DB and exposes the audit queries.
type Store struct {
	db *sql.DB
}

// New opens a MySQL connection and verifies connectivity.
func New(dsn string) (*Store, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("sql.Open: %w", err)
	}
	db.SetConnMaxLifetime(3 * time.Minute)
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(10)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("db ping: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Health performs a ping to validate database connectivity.
func (s *Store) Health(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// RecordDegradation inserts one row describing a fallback substitution.
func (s *Store) RecordDegradation(ctx context.Context, scenario, reason string) error {
	query := `
		INSERT INTO degradation_events (id, scenario, reason)
		VALUES (?, ?, ?)
	`
	if _, err := s.db.ExecContext(ctx, query, uuid.NewString(), scenario, reason); err != nil {
		return fmt.Errorf("insert degradation event: %w", err)
	}
	return nil
}

// RecordMappingSnapshot stores the full published association as JSON.
func (s *Store) RecordMappingSnapshot(ctx context.Context, req models.SaveMappingRequest) error {
	payload, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("marshal mapping snapshot: %w", err)
	}
	query := `
		INSERT INTO mapping_snapshots (id, scenario_name, payload)
		VALUES (?, ?, ?)
	`
	if _, err := s.db.ExecContext(ctx, query, uuid.NewString(), req.ScenarioName, payload); err != nil {
		return fmt.Errorf("insert mapping snapshot: %w", err)
	}
	return nil
}

package storage

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"
	_ "modernc.org/sqlite"
)

const createRecordsTable = `
CREATE TABLE IF NOT EXISTS assessment_records (
		"id" TEXT PRIMARY KEY,
		"request_id" TEXT NOT NULL,
		"channel" TEXT NOT NULL,
		"kind" TEXT NOT NULL,
		"http_status" INTEGER NOT NULL DEFAULT 0,
		"duration_ms" INTEGER NOT NULL,
		"created_at" TEXT NOT NULL
);`

const createRecordsIndex = `
CREATE INDEX IF NOT EXISTS idx_assessment_records_created_at
	ON assessment_records(created_at);`

// Store is the audit log of submission outcomes.
type Store struct {
	db   *sql.DB
	path string
}

// Open opens (or creates) the sqlite database at path and prepares the schema.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("storage.Open(): failed to open database: %w", err)
	}
	// sqlite serializes writers anyway; one connection also keeps ":memory:" databases shared.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage.Open(): failed to connect to database: %w", err)
	}
	for _, stmt := range []string{createRecordsTable, createRecordsIndex} {
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			return nil, fmt.Errorf("storage.Open(): failed to create schema: %w", err)
		}
	}
	log.Info().Str("path", path).Msg("storage.Open(): audit database ready")
	return &Store{db: db, path: path}, nil
}

func (s *Store) Close() error {
	log.Info().Str("path", s.path).Msg("storage.Close(): closing audit database")
	return s.db.Close()
}

// Health reports database reachability and connection pool counters.
func (s *Store) Health(ctx context.Context) map[string]string {
	ctx, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()

	stats := make(map[string]string)
	if err := s.db.PingContext(ctx); err != nil {
		stats["status"] = "down"
		stats["error"] = fmt.Sprintf("db down: %v", err)
		log.Error().Err(err).Msg("storage.Health(): db down")
		return stats
	}

	dbStats := s.db.Stats()
	stats["status"] = "up"
	stats["open_connections"] = strconv.Itoa(dbStats.OpenConnections)
	stats["in_use"] = strconv.Itoa(dbStats.InUse)
	stats["idle"] = strconv.Itoa(dbStats.Idle)
	stats["wait_count"] = strconv.FormatInt(dbStats.WaitCount, 10)
	return stats
}

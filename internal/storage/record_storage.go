package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"AlzheimerRiskPredictor/internal/models"

	"github.com/google/uuid"
)

// timestamps are stored as fixed-width UTC text so they sort lexically
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

const (
	DefaultListLimit = 50
	MaxListLimit     = 500
)

var ErrRecordNotFound = errors.New("record not found")

// CreateRecord stores an outcome. ID and CreatedAt are filled in when empty.
func (s *Store) CreateRecord(ctx context.Context, r *models.Record) error {
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now()
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO assessment_records(id, request_id, channel, kind, http_status, duration_ms, created_at)
		 VALUES(?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.RequestID, r.Channel, r.Kind, r.HTTPStatus, r.DurationMS,
		r.CreatedAt.UTC().Format(timeLayout),
	)
	if err != nil {
		return fmt.Errorf("CreateRecord(): %w", err)
	}
	return nil
}

// ListRecords returns the most recent records first.
func (s *Store) ListRecords(ctx context.Context, limit int) ([]models.Record, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	if limit > MaxListLimit {
		limit = MaxListLimit
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, request_id, channel, kind, http_status, duration_ms, created_at
		FROM assessment_records
		ORDER BY created_at DESC, rowid DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("ListRecords(): %w", err)
	}
	defer rows.Close()

	records := []models.Record{}
	for rows.Next() {
		r, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

func (s *Store) GetRecord(ctx context.Context, id string) (models.Record, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, request_id, channel, kind, http_status, duration_ms, created_at
		FROM assessment_records WHERE id = ?`, id)
	r, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Record{}, ErrRecordNotFound
	}
	return r, err
}

// CountByKind summarizes outcomes, most frequent first.
func (s *Store) CountByKind(ctx context.Context) ([]models.KindCount, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT kind, COUNT(*) FROM assessment_records
		GROUP BY kind ORDER BY COUNT(*) DESC, kind ASC`)
	if err != nil {
		return nil, fmt.Errorf("CountByKind(): %w", err)
	}
	defer rows.Close()

	counts := []models.KindCount{}
	for rows.Next() {
		var kc models.KindCount
		if err := rows.Scan(&kc.Kind, &kc.Count); err != nil {
			return nil, err
		}
		counts = append(counts, kc)
	}
	return counts, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(row scanner) (models.Record, error) {
	var r models.Record
	var created string
	if err := row.Scan(&r.ID, &r.RequestID, &r.Channel, &r.Kind, &r.HTTPStatus, &r.DurationMS, &created); err != nil {
		return r, err
	}
	t, err := time.Parse(timeLayout, created)
	if err != nil {
		return r, fmt.Errorf("scanRecord(): bad created_at %q: %w", created, err)
	}
	r.CreatedAt = t
	return r, nil
}

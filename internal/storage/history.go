package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/DylanJ17/batchcode/internal/common"
	"github.com/DylanJ17/batchcode/internal/model"
)

// SaveAnalysis records the outcome of one analysis. Unrecognized codes are
// stored too; a row with zero interpretations is the "format unrecognized"
// record.
func (s *SQLiteStorage) SaveAnalysis(ctx context.Context, code string, result model.AnalysisResult) (*model.AnalysisRecord, error) {
	if code == "" {
		return nil, fmt.Errorf("code cannot be empty")
	}

	record := &model.AnalysisRecord{
		Code:            code,
		Interpretations: len(result),
		AnalyzedAt:      time.Now().UTC(),
	}

	var pattern, tier sql.NullString
	var production, expiry sql.NullTime
	if top := result.Top(); top != nil {
		record.Pattern = top.Pattern
		record.Confidence = top.Confidence
		record.Tier = string(top.Tier)
		record.Production = &top.Production
		record.Expiry = &top.Expiry

		pattern = sql.NullString{String: top.Pattern, Valid: true}
		tier = sql.NullString{String: string(top.Tier), Valid: true}
		production = sql.NullTime{Time: top.Production, Valid: true}
		expiry = sql.NullTime{Time: top.Expiry, Valid: true}
	}

	res, err := s.db.ExecContext(ctx, `
		INSERT INTO analyses (code, pattern, production_date, expiry_date, confidence, tier, interpretations, analyzed_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		code, pattern, production, expiry, record.Confidence, tier, record.Interpretations, record.AnalyzedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to save analysis: %w", err)
	}

	record.ID, err = res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to read analysis id: %w", err)
	}

	return record, nil
}

// ListAnalyses returns the most recent analysis records, newest first.
func (s *SQLiteStorage) ListAnalyses(ctx context.Context, limit int) ([]model.AnalysisRecord, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, code, pattern, production_date, expiry_date, confidence, tier, interpretations, analyzed_at
		FROM analyses
		ORDER BY analyzed_at DESC, id DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list analyses: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var records []model.AnalysisRecord
	for rows.Next() {
		var r model.AnalysisRecord
		var pattern, tier sql.NullString
		var production, expiry sql.NullTime

		if err := rows.Scan(&r.ID, &r.Code, &pattern, &production, &expiry, &r.Confidence, &tier, &r.Interpretations, &r.AnalyzedAt); err != nil {
			return nil, fmt.Errorf("failed to scan analysis row: %w", err)
		}

		r.Pattern = pattern.String
		r.Tier = tier.String
		if production.Valid {
			t := production.Time
			r.Production = &t
		}
		if expiry.Valid {
			t := expiry.Time
			r.Expiry = &t
		}

		records = append(records, r)
	}

	return records, rows.Err()
}

// LatestAnalysis returns the most recent record for a code, or
// common.ErrNotFound if the code has never been analyzed.
func (s *SQLiteStorage) LatestAnalysis(ctx context.Context, code string) (*model.AnalysisRecord, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, code, pattern, production_date, expiry_date, confidence, tier, interpretations, analyzed_at
		FROM analyses
		WHERE code = ?
		ORDER BY analyzed_at DESC, id DESC
		LIMIT 1`, code)

	var r model.AnalysisRecord
	var pattern, tier sql.NullString
	var production, expiry sql.NullTime

	err := row.Scan(&r.ID, &r.Code, &pattern, &production, &expiry, &r.Confidence, &tier, &r.Interpretations, &r.AnalyzedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load analysis: %w", err)
	}

	r.Pattern = pattern.String
	r.Tier = tier.String
	if production.Valid {
		t := production.Time
		r.Production = &t
	}
	if expiry.Valid {
		t := expiry.Time
		r.Expiry = &t
	}

	return &r, nil
}

// ClearHistory removes all stored analysis records and returns the number
// deleted.
func (s *SQLiteStorage) ClearHistory(ctx context.Context) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM analyses`)
	if err != nil {
		return 0, fmt.Errorf("failed to clear history: %w", err)
	}
	return res.RowsAffected()
}

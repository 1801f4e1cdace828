package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// assessmentRepository implements AssessmentRepository backed by postgres.
// The full record is stored as a JSONB payload; the columns used for
// filtering and listing are projected out at write time.
type assessmentRepository struct {
	db dbExecutor
}

// NewAssessmentRepository creates a new assessment repository
func NewAssessmentRepository(db dbExecutor) AssessmentRepository {
	return &assessmentRepository{db: db}
}

// Store persists a completed assessment
func (r *assessmentRepository) Store(record *AssessmentRecord) error {
	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now()
	}

	payload, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal assessment: %w", err)
	}

	query := `
		INSERT INTO assessments (id, user_id, project_name, country, sector,
			eligibility_status, overall_score, payload, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err = r.db.Exec(query,
		record.ID,
		record.UserID,
		record.Result.ProjectName,
		record.Result.Country,
		record.Result.Sector,
		record.Result.EligibilityStatus,
		record.Result.OverallScore,
		payload,
		record.CreatedAt,
	)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return fmt.Errorf("assessment with id %s already exists", record.ID)
		}
		return fmt.Errorf("failed to store assessment: %w", err)
	}

	return nil
}

// GetByID retrieves a stored assessment by its id
func (r *assessmentRepository) GetByID(id uuid.UUID) (*AssessmentRecord, error) {
	query := `SELECT payload FROM assessments WHERE id = $1`

	var payload []byte
	err := r.db.QueryRow(query, id).Scan(&payload)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("assessment not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get assessment: %w", err)
	}

	var record AssessmentRecord
	if err := json.Unmarshal(payload, &record); err != nil {
		return nil, fmt.Errorf("failed to unmarshal assessment: %w", err)
	}

	return &record, nil
}

// ListByUser returns summaries of a user's assessments, newest first
func (r *assessmentRepository) ListByUser(userID uuid.UUID, filters AssessmentFilters) ([]AssessmentSummary, error) {
	query := `
		SELECT id, project_name, country, sector, eligibility_status, overall_score, created_at
		FROM assessments
		WHERE user_id = $1`
	args := []interface{}{userID}
	argCount := 1

	if filters.EligibilityStatus != "" {
		argCount++
		query += fmt.Sprintf(" AND eligibility_status = $%d", argCount)
		args = append(args, filters.EligibilityStatus)
	}
	if filters.Country != "" {
		argCount++
		query += fmt.Sprintf(" AND country = $%d", argCount)
		args = append(args, filters.Country)
	}
	if filters.Sector != "" {
		argCount++
		query += fmt.Sprintf(" AND sector = $%d", argCount)
		args = append(args, filters.Sector)
	}

	query += " ORDER BY created_at DESC"

	if filters.Limit > 0 {
		argCount++
		query += fmt.Sprintf(" LIMIT $%d", argCount)
		args = append(args, filters.Limit)
	}
	if filters.Offset > 0 {
		argCount++
		query += fmt.Sprintf(" OFFSET $%d", argCount)
		args = append(args, filters.Offset)
	}

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list assessments: %w", err)
	}
	defer rows.Close()

	var summaries []AssessmentSummary
	for rows.Next() {
		var s AssessmentSummary
		err := rows.Scan(&s.ID, &s.ProjectName, &s.Country, &s.Sector,
			&s.EligibilityStatus, &s.OverallScore, &s.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan assessment summary: %w", err)
		}
		summaries = append(summaries, s)
	}

	return summaries, rows.Err()
}

// Delete removes a stored assessment
func (r *assessmentRepository) Delete(id uuid.UUID) error {
	result, err := r.db.Exec(`DELETE FROM assessments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete assessment: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("assessment not found")
	}

	return nil
}

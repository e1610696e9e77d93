package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/jonathan/pds-screener/internal/types"
)

// SaveAssessment stores one scored pair for a comparison run. Scores are
// kept as a jsonb document so the reporting layer stays independent of the
// score schema.
func (s *Store) SaveAssessment(ctx context.Context, runID uuid.UUID, candidateKey, jobTitle string, result *types.AssessmentResult) error {
	scores, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to marshal assessment result: %w", err)
	}

	_, err = s.pool.Exec(ctx,
		`INSERT INTO assessments (run_id, candidate_key, job_title, scores)
		 VALUES ($1, $2, $3, $4)`,
		runID, candidateKey, jobTitle, scores,
	)
	if err != nil {
		return fmt.Errorf("failed to save assessment: %w", err)
	}
	return nil
}

// ListAssessments returns the stored results for one comparison run in
// insertion order.
func (s *Store) ListAssessments(ctx context.Context, runID uuid.UUID) ([]StoredAssessment, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT candidate_key, job_title, scores FROM assessments WHERE run_id = $1 ORDER BY id`,
		runID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list assessments: %w", err)
	}
	defer rows.Close()

	var stored []StoredAssessment
	for rows.Next() {
		var item StoredAssessment
		var scores []byte
		if err := rows.Scan(&item.CandidateKey, &item.JobTitle, &scores); err != nil {
			return nil, fmt.Errorf("failed to scan assessment: %w", err)
		}
		if err := json.Unmarshal(scores, &item.Result); err != nil {
			return nil, fmt.Errorf("failed to unmarshal assessment scores: %w", err)
		}
		stored = append(stored, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read assessments: %w", err)
	}
	return stored, nil
}

// StoredAssessment is one persisted (candidate, job) score row.
type StoredAssessment struct {
	CandidateKey string
	JobTitle     string
	Result       types.AssessmentResult
}

package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jonathan/pds-screener/internal/types"
)

// ErrJobPostingNotFound is returned when a job posting ID does not exist.
var ErrJobPostingNotFound = errors.New("job posting not found")

// CreateJobPosting inserts a job posting and returns its ID. The posting is
// validated before insertion.
func (s *Store) CreateJobPosting(ctx context.Context, job *types.JobRequirement) (int64, error) {
	if err := job.Validate(); err != nil {
		return 0, fmt.Errorf("invalid job posting: %w", err)
	}

	var id int64
	err := s.pool.QueryRow(ctx,
		`INSERT INTO job_postings (position_title, department_office, education_requirements,
		                           training_requirements, experience_requirements, eligibility_requirements)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id`,
		job.PositionTitle, job.DepartmentOffice, job.EducationRequirements,
		job.TrainingRequirements, job.ExperienceRequirements, job.EligibilityRequirements,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to create job posting: %w", err)
	}
	return id, nil
}

// GetJobPosting fetches one job posting by ID.
func (s *Store) GetJobPosting(ctx context.Context, id int64) (*types.JobRequirement, error) {
	job := &types.JobRequirement{}
	err := s.pool.QueryRow(ctx,
		`SELECT id, position_title, department_office, education_requirements,
		        training_requirements, experience_requirements, eligibility_requirements
		 FROM job_postings WHERE id = $1`,
		id,
	).Scan(&job.ID, &job.PositionTitle, &job.DepartmentOffice, &job.EducationRequirements,
		&job.TrainingRequirements, &job.ExperienceRequirements, &job.EligibilityRequirements)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrJobPostingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get job posting %d: %w", id, err)
	}
	return job, nil
}

// ListJobPostings returns all job postings ordered by ID.
func (s *Store) ListJobPostings(ctx context.Context) ([]*types.JobRequirement, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, position_title, department_office, education_requirements,
		        training_requirements, experience_requirements, eligibility_requirements
		 FROM job_postings ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list job postings: %w", err)
	}
	defer rows.Close()

	var jobs []*types.JobRequirement
	for rows.Next() {
		job := &types.JobRequirement{}
		if err := rows.Scan(&job.ID, &job.PositionTitle, &job.DepartmentOffice,
			&job.EducationRequirements, &job.TrainingRequirements,
			&job.ExperienceRequirements, &job.EligibilityRequirements); err != nil {
			return nil, fmt.Errorf("failed to scan job posting: %w", err)
		}
		jobs = append(jobs, job)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read job postings: %w", err)
	}
	return jobs, nil
}

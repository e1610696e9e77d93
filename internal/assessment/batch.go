package assessment

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/pds-screener/internal/types"
)

// defaultWorkers bounds batch parallelism when the caller does not set one.
const defaultWorkers = 4

// Candidate pairs a candidate record with the key used to report its scores.
type Candidate struct {
	Key    string
	Record *types.CandidateRecord
}

// PairResult is the assessment outcome for one (candidate, job) pair.
type PairResult struct {
	CandidateKey string                  `json:"candidate"`
	JobTitle     string                  `json:"job"`
	Result       *types.AssessmentResult `json:"result"`
}

// BatchReport holds the results of one comparison run in input order:
// candidate-major, then job order.
type BatchReport struct {
	RunID   uuid.UUID    `json:"run_id"`
	Results []PairResult `json:"results"`
}

// BatchOptions configures a comparison run.
type BatchOptions struct {
	Workers int
	Logger  *zap.Logger
}

// Compare assesses every candidate against every job posting. Pairs are
// independent and run in parallel up to the worker limit; results land in a
// pre-sized slice so output order is stable regardless of scheduling. A
// malformed pair contributes a zero-score result with its error annotation
// and never halts the batch; only context cancellation aborts the run.
func (a *Assessor) Compare(ctx context.Context, candidates []Candidate, jobs []*types.JobRequirement, opts BatchOptions) (*BatchReport, error) {
	workers := opts.Workers
	if workers <= 0 {
		workers = defaultWorkers
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	report := &BatchReport{
		RunID:   uuid.New(),
		Results: make([]PairResult, len(candidates)*len(jobs)),
	}

	log.Info("starting comparison run",
		zap.String("run_id", report.RunID.String()),
		zap.Int("candidates", len(candidates)),
		zap.Int("jobs", len(jobs)),
		zap.Int("workers", workers),
	)

	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(workers)

	for i, candidate := range candidates {
		for j, job := range jobs {
			index := i*len(jobs) + j
			candidate := candidate
			job := job

			group.Go(func() error {
				if err := ctx.Err(); err != nil {
					return err
				}

				result := a.Assess(candidate.Record, job)
				report.Results[index] = PairResult{
					CandidateKey: candidate.Key,
					JobTitle:     jobTitle(job),
					Result:       result,
				}

				if result.Error != "" {
					log.Warn("pair scored with error",
						zap.String("candidate", candidate.Key),
						zap.String("job", jobTitle(job)),
						zap.String("error", result.Error),
					)
					return nil
				}
				log.Debug("pair scored",
					zap.String("candidate", candidate.Key),
					zap.String("job", jobTitle(job)),
					zap.Float64("total_score", result.TotalScore),
				)
				return nil
			})
		}
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	log.Info("comparison run finished",
		zap.String("run_id", report.RunID.String()),
		zap.Int("pairs", len(report.Results)),
	)
	return report, nil
}

func jobTitle(job *types.JobRequirement) string {
	if job == nil {
		return ""
	}
	return job.PositionTitle
}

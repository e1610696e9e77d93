// Package assessment provides the single entry point for assessing candidate
// records against job requirements, for one pair or for batch comparisons.
package assessment

import (
	"encoding/json"
	"fmt"

	"github.com/jonathan/pds-screener/internal/scoring"
	"github.com/jonathan/pds-screener/internal/types"
	"github.com/jonathan/pds-screener/internal/validation"
)

// Assessor composes record filtering and the scoring engine behind one
// entry point, so single-pair assessment and batch comparison derive
// background profiles identically. It holds no mutable state.
type Assessor struct {
	engine *scoring.Engine
}

// New creates an Assessor with the given scoring weights.
func New(weights scoring.Weights) (*Assessor, error) {
	engine, err := scoring.NewEngine(weights)
	if err != nil {
		return nil, err
	}
	return &Assessor{engine: engine}, nil
}

// Assess scores an already-validated candidate record against a job
// requirement. It never returns an error: failures surface on the result's
// Error field with all scores zero.
func (a *Assessor) Assess(candidate *types.CandidateRecord, job *types.JobRequirement) *types.AssessmentResult {
	return a.engine.Score(candidate, job)
}

// AssessRaw filters extraction noise out of an unvalidated candidate record
// and then scores it.
func (a *Assessor) AssessRaw(candidate *types.CandidateRecord, job *types.JobRequirement) *types.AssessmentResult {
	return a.engine.Score(validation.FilterRecord(candidate), job)
}

// AssessDocuments decodes raw candidate and job JSON documents, filters the
// candidate, and scores the pair. Structurally malformed documents (not a
// JSON object, wrong field types) produce a zero-score result with Error
// populated rather than an error, so batch callers can keep going.
func (a *Assessor) AssessDocuments(candidateJSON, jobJSON []byte) *types.AssessmentResult {
	var candidate types.CandidateRecord
	if err := json.Unmarshal(candidateJSON, &candidate); err != nil {
		return types.ErrorResult(fmt.Sprintf("malformed candidate record: %v", err))
	}

	var job types.JobRequirement
	if err := json.Unmarshal(jobJSON, &job); err != nil {
		return types.ErrorResult(fmt.Sprintf("malformed job requirement: %v", err))
	}

	return a.AssessRaw(&candidate, &job)
}

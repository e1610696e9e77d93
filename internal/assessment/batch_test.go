package assessment

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/pds-screener/internal/types"
)

func TestCompare_CartesianProductInInputOrder(t *testing.T) {
	assessor := newAssessor(t)

	candidates := []Candidate{
		{Key: "alpha", Record: sampleCandidate()},
		{Key: "beta", Record: &types.CandidateRecord{Name: "Beta"}},
	}
	jobs := []*types.JobRequirement{
		sampleJob(),
		{PositionTitle: "Instructor I", EducationRequirements: "Education degree"},
	}

	report, err := assessor.Compare(context.Background(), candidates, jobs, BatchOptions{Workers: 3})

	require.NoError(t, err)
	require.Len(t, report.Results, 4)
	assert.NotEqual(t, uuid.Nil, report.RunID)

	assert.Equal(t, "alpha", report.Results[0].CandidateKey)
	assert.Equal(t, "Administrative Officer IV", report.Results[0].JobTitle)
	assert.Equal(t, "alpha", report.Results[1].CandidateKey)
	assert.Equal(t, "Instructor I", report.Results[1].JobTitle)
	assert.Equal(t, "beta", report.Results[2].CandidateKey)
	assert.Equal(t, "Administrative Officer IV", report.Results[2].JobTitle)
	assert.Equal(t, "beta", report.Results[3].CandidateKey)
	assert.Equal(t, "Instructor I", report.Results[3].JobTitle)
}

func TestCompare_MalformedPairDoesNotAbortBatch(t *testing.T) {
	assessor := newAssessor(t)

	candidates := []Candidate{
		{Key: "broken", Record: nil},
		{Key: "good", Record: sampleCandidate()},
	}
	jobs := []*types.JobRequirement{sampleJob()}

	report, err := assessor.Compare(context.Background(), candidates, jobs, BatchOptions{})

	require.NoError(t, err)
	require.Len(t, report.Results, 2)

	assert.NotEmpty(t, report.Results[0].Result.Error)
	assert.Zero(t, report.Results[0].Result.TotalScore)

	assert.Empty(t, report.Results[1].Result.Error)
	assert.Greater(t, report.Results[1].Result.TotalScore, 0.0)
}

func TestCompare_DeterministicAcrossRuns(t *testing.T) {
	assessor := newAssessor(t)

	candidates := []Candidate{{Key: "alpha", Record: sampleCandidate()}}
	jobs := []*types.JobRequirement{sampleJob()}

	first, err := assessor.Compare(context.Background(), candidates, jobs, BatchOptions{Workers: 1})
	require.NoError(t, err)
	second, err := assessor.Compare(context.Background(), candidates, jobs, BatchOptions{Workers: 8})
	require.NoError(t, err)

	assert.Equal(t, first.Results, second.Results)
}

func TestCompare_CancelledContext(t *testing.T) {
	assessor := newAssessor(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := assessor.Compare(ctx, []Candidate{{Key: "alpha", Record: sampleCandidate()}},
		[]*types.JobRequirement{sampleJob()}, BatchOptions{})

	assert.Error(t, err)
}

func TestCompare_EmptyInputs(t *testing.T) {
	assessor := newAssessor(t)

	report, err := assessor.Compare(context.Background(), nil, nil, BatchOptions{})

	require.NoError(t, err)
	assert.Empty(t, report.Results)
}

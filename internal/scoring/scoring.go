package scoring

import (
	"fmt"
	"math"
	"strings"

	"github.com/jonathan/pds-screener/internal/profile"
	"github.com/jonathan/pds-screener/internal/types"
)

// neutralScore is awarded for a category the job does not constrain, so an
// absent requirement never penalizes a candidate.
const neutralScore = 100.0

// weightTolerance is the allowed deviation when checking that weights sum to 1.
const weightTolerance = 1e-9

// Weights holds the category weights for combining sub-scores into a total.
// Education and experience carry the most weight, reflecting institutional
// hiring policy. Weights must sum to 1.
type Weights struct {
	Education   float64 `json:"education"`
	Experience  float64 `json:"experience"`
	Training    float64 `json:"training"`
	Eligibility float64 `json:"eligibility"`
}

// DefaultWeights returns the institutional default category weights.
func DefaultWeights() Weights {
	return Weights{
		Education:   0.35,
		Experience:  0.35,
		Training:    0.15,
		Eligibility: 0.15,
	}
}

// Validate checks that every weight is in [0,1] and that the weights sum to 1.
func (w Weights) Validate() error {
	for name, value := range map[string]float64{
		"education":   w.Education,
		"experience":  w.Experience,
		"training":    w.Training,
		"eligibility": w.Eligibility,
	} {
		if value < 0 || value > 1 {
			return fmt.Errorf("weight %s must be in [0,1], got %v", name, value)
		}
	}

	sum := w.Education + w.Experience + w.Training + w.Eligibility
	if math.Abs(sum-1.0) > weightTolerance {
		return fmt.Errorf("weights must sum to 1, got %v", sum)
	}
	return nil
}

// Engine computes assessment scores. It holds only the fixed weight
// configuration, retains no state between calls, and is safe for concurrent
// use across (candidate, job) pairs.
type Engine struct {
	weights Weights
}

// NewEngine creates a scoring engine with the given weights.
func NewEngine(weights Weights) (*Engine, error) {
	if err := weights.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scoring weights: %w", err)
	}
	return &Engine{weights: weights}, nil
}

// Weights returns the engine's weight configuration.
func (e *Engine) Weights() Weights {
	return e.weights
}

// Score computes the four category sub-scores for the candidate against the
// job and combines them into a total. Sub-scores and the total are rounded
// to one decimal place; the combination uses full precision before rounding.
// A nil candidate or job yields a zero-score result with Error populated.
func (e *Engine) Score(record *types.CandidateRecord, job *types.JobRequirement) *types.AssessmentResult {
	if record == nil {
		return types.ErrorResult("candidate record is missing")
	}
	if job == nil {
		return types.ErrorResult("job requirement is missing")
	}

	analysis := profile.Build(record)

	education := categoryScore(job.EducationRequirements, analysis.EducationFields)
	experience := categoryScore(job.ExperienceRequirements, analysis.WorkExperienceAreas)
	training := categoryScore(job.TrainingRequirements, analysis.TrainingAreas)
	eligibility := categoryScore(job.EligibilityRequirements, record.CivilServiceEligibility)

	total := e.weights.Education*education +
		e.weights.Experience*experience +
		e.weights.Training*training +
		e.weights.Eligibility*eligibility

	return &types.AssessmentResult{
		TotalScore:       round1(total),
		EducationScore:   round1(education),
		ExperienceScore:  round1(experience),
		TrainingScore:    round1(training),
		EligibilityScore: round1(eligibility),
	}
}

// categoryScore computes the keyword overlap between one requirement string
// and one background bucket as a percentage. A requirement that is empty or
// tokenizes to nothing does not constrain the category and scores neutral;
// a constrained category with an empty bucket scores zero.
func categoryScore(requirement string, bucket []string) float64 {
	keywords := Keywords(requirement)
	if len(keywords) == 0 {
		return neutralScore
	}
	if len(bucket) == 0 {
		return 0
	}

	lowered := make([]string, 0, len(bucket))
	for _, entry := range bucket {
		lowered = append(lowered, strings.ToLower(entry))
	}

	matched := 0
	for _, keyword := range keywords {
		for _, entry := range lowered {
			if strings.Contains(entry, keyword) {
				matched++
				break
			}
		}
	}

	ratio := float64(matched) / float64(len(keywords))
	if ratio > 1 {
		ratio = 1
	}
	return ratio * 100
}

func round1(value float64) float64 {
	return math.Round(value*10) / 10
}

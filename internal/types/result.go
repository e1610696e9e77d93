package types

// AssessmentResult holds the four category sub-scores and their weighted
// combination for one (candidate, job) pair. Scores are percentages in
// [0,100], rounded to one decimal place. Error is populated when scoring
// could not complete; in that case all scores are zero.
type AssessmentResult struct {
	TotalScore       float64 `json:"total_score"`
	EducationScore   float64 `json:"education_score"`
	ExperienceScore  float64 `json:"experience_score"`
	TrainingScore    float64 `json:"training_score"`
	EligibilityScore float64 `json:"eligibility_score"`
	Error            string  `json:"error,omitempty"`
}

// ErrorResult builds a zero-score result annotated with the given error message.
func ErrorResult(message string) *AssessmentResult {
	return &AssessmentResult{Error: message}
}

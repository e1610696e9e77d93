package types

// BackgroundProfile is the flattened view of a candidate's record used for
// scoring and reporting. It is recomputed on demand from a CandidateRecord
// and never mutated after creation. Duplicates are preserved; deduplication
// is a presentation concern.
type BackgroundProfile struct {
	EducationFields     []string `json:"education_fields"`
	WorkExperienceAreas []string `json:"work_experience_areas"`
	TrainingAreas       []string `json:"training_areas"`
	KeySkills           []string `json:"key_skills"`
}

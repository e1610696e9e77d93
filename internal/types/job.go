package types

import (
	"github.com/go-playground/validator/v10"
)

// JobRequirement represents a job posting's requirement record.
// Requirement fields are free text; an empty requirement means the posting
// does not constrain that category.
type JobRequirement struct {
	ID                      int64  `json:"id,omitempty"`
	PositionTitle           string `json:"position_title" validate:"required"`
	DepartmentOffice        string `json:"department_office,omitempty"`
	EducationRequirements   string `json:"education_requirements"`
	TrainingRequirements    string `json:"training_requirements"`
	ExperienceRequirements  string `json:"experience_requirements"`
	EligibilityRequirements string `json:"eligibility_requirements"`
}

// Validate validates the JobRequirement using the validator.
func (j *JobRequirement) Validate() error {
	validate := validator.New()
	return validate.Struct(j)
}

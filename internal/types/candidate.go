// Package types provides type definitions for structured data used throughout the pds-screener system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"encoding/json"
	"fmt"
)

// CandidateRecord represents one applicant extracted from a Personal Data Sheet.
// Nested collections are expected to contain only entries that survived field
// validation; raw extraction noise is filtered out before a record is scored.
type CandidateRecord struct {
	Name                    string                 `json:"name,omitempty"`
	EducationalBackground   EducationalBackground  `json:"educational_background"`
	WorkExperience          []WorkExperienceEntry  `json:"work_experience"`
	LearningDevelopment     []TrainingEntry        `json:"learning_development"`
	CivilServiceEligibility []string               `json:"civil_service_eligibility"`
	References              []Reference            `json:"references"`
}

// EducationalBackground groups education entries by attainment level.
type EducationalBackground struct {
	College         EducationEntries `json:"college,omitempty"`
	GraduateStudies EducationEntries `json:"graduate_studies,omitempty"`
	PostGraduate    EducationEntries `json:"post_graduate,omitempty"`
}

// EducationEntry represents a single schooling record for one level.
type EducationEntry struct {
	Course string `json:"course"`
	School string `json:"school,omitempty"`
	Year   string `json:"year,omitempty"`
}

// EducationEntries is a list of education entries for one level.
// PDS extractions emit either a single object or a list for a level, so
// unmarshalling normalizes both shapes to a list once, at the boundary.
type EducationEntries []EducationEntry

// UnmarshalJSON accepts either a single EducationEntry object or an array of them.
func (e *EducationEntries) UnmarshalJSON(data []byte) error {
	var list []EducationEntry
	if err := json.Unmarshal(data, &list); err == nil {
		*e = list
		return nil
	}

	var single EducationEntry
	if err := json.Unmarshal(data, &single); err != nil {
		return fmt.Errorf("education entries must be an object or an array: %w", err)
	}
	*e = EducationEntries{single}
	return nil
}

// WorkExperienceEntry represents one position held by the candidate.
type WorkExperienceEntry struct {
	PositionTitle    string `json:"position_title"`
	DepartmentOffice string `json:"department_office,omitempty"`
	DateFrom         string `json:"date_from,omitempty"`
	DateTo           string `json:"date_to,omitempty"`
}

// TrainingEntry represents one learning and development program attended.
type TrainingEntry struct {
	Title string  `json:"title"`
	Hours float64 `json:"hours,omitempty"`
	Type  string  `json:"type,omitempty"`
}

// Reference represents one personal reference with its contact details.
type Reference struct {
	Name        string `json:"name"`
	ContactData string `json:"contact_data,omitempty"`
}

// Package profile derives flattened background profiles from candidate records for scoring and reporting.
package profile

import (
	"strings"

	"github.com/jonathan/pds-screener/internal/types"
)

// Build flattens a candidate record into its background buckets. Values are
// collected in insertion order and duplicates are preserved; the scoring
// engine must not assume uniqueness. Blank nested values are skipped.
// A nil record yields an empty profile.
func Build(record *types.CandidateRecord) *types.BackgroundProfile {
	analysis := &types.BackgroundProfile{
		EducationFields:     []string{},
		WorkExperienceAreas: []string{},
		TrainingAreas:       []string{},
		KeySkills:           []string{},
	}
	if record == nil {
		return analysis
	}

	levels := []types.EducationEntries{
		record.EducationalBackground.College,
		record.EducationalBackground.GraduateStudies,
		record.EducationalBackground.PostGraduate,
	}
	for _, entries := range levels {
		for _, entry := range entries {
			if course := strings.TrimSpace(entry.Course); course != "" {
				analysis.EducationFields = append(analysis.EducationFields, course)
			}
		}
	}

	// Position title and office contribute independently so requirements
	// phrased either way can match.
	for _, exp := range record.WorkExperience {
		if position := strings.TrimSpace(exp.PositionTitle); position != "" {
			analysis.WorkExperienceAreas = append(analysis.WorkExperienceAreas, position)
		}
		if office := strings.TrimSpace(exp.DepartmentOffice); office != "" {
			analysis.WorkExperienceAreas = append(analysis.WorkExperienceAreas, office)
		}
	}

	for _, training := range record.LearningDevelopment {
		if title := strings.TrimSpace(training.Title); title != "" {
			analysis.TrainingAreas = append(analysis.TrainingAreas, title)
		}
	}

	// Validated eligibilities double as the key-skill bucket; it is
	// reported but never scored.
	for _, eligibility := range record.CivilServiceEligibility {
		if value := strings.TrimSpace(eligibility); value != "" {
			analysis.KeySkills = append(analysis.KeySkills, value)
		}
	}

	return analysis
}

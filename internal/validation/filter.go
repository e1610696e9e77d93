package validation

import (
	"strings"

	"github.com/jonathan/pds-screener/internal/types"
)

// FilterRecord returns a copy of record with extraction noise removed from
// every nested collection. Eligibilities and references go through their
// field-kind rules; education, work experience, and training entries are
// dropped when their identifying text is generic noise. The input record is
// not modified, and the returned record satisfies the invariant that only
// validated entries persist.
func FilterRecord(record *types.CandidateRecord) *types.CandidateRecord {
	if record == nil {
		return nil
	}

	filtered := &types.CandidateRecord{
		Name: record.Name,
		EducationalBackground: types.EducationalBackground{
			College:         filterEducation(record.EducationalBackground.College),
			GraduateStudies: filterEducation(record.EducationalBackground.GraduateStudies),
			PostGraduate:    filterEducation(record.EducationalBackground.PostGraduate),
		},
	}

	for _, exp := range record.WorkExperience {
		if IsNoise(exp.PositionTitle) {
			continue
		}
		if IsNoise(exp.DepartmentOffice) {
			exp.DepartmentOffice = ""
		}
		filtered.WorkExperience = append(filtered.WorkExperience, exp)
	}

	for _, training := range record.LearningDevelopment {
		if IsNoise(training.Title) {
			continue
		}
		filtered.LearningDevelopment = append(filtered.LearningDevelopment, training)
	}

	for _, eligibility := range record.CivilServiceEligibility {
		if Validate(KindEligibility, eligibility) {
			filtered.CivilServiceEligibility = append(filtered.CivilServiceEligibility, strings.TrimSpace(eligibility))
		}
	}

	for _, ref := range record.References {
		if !Validate(KindReferenceName, ref.Name) {
			continue
		}
		if !Validate(KindReferenceData, ref.ContactData) {
			ref.ContactData = ""
		}
		filtered.References = append(filtered.References, ref)
	}

	return filtered
}

func filterEducation(entries types.EducationEntries) types.EducationEntries {
	var kept types.EducationEntries
	for _, entry := range entries {
		if IsNoise(entry.Course) {
			continue
		}
		kept = append(kept, entry)
	}
	return kept
}

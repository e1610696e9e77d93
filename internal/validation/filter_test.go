package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/pds-screener/internal/types"
)

func TestFilterRecord_DropsExtractionNoise(t *testing.T) {
	raw := &types.CandidateRecord{
		Name: "Test Candidate",
		EducationalBackground: types.EducationalBackground{
			College: types.EducationEntries{
				{Course: "BS Human Resource Management", School: "State University"},
				{Course: "2015-06-01 00:00:00"},
				{Course: "85.50"},
			},
		},
		WorkExperience: []types.WorkExperienceEntry{
			{PositionTitle: "HR Officer", DepartmentOffice: "Human Resources Office"},
			{PositionTitle: "From"},
			{PositionTitle: "Records Custodian", DepartmentOffice: "Present"},
		},
		LearningDevelopment: []types.TrainingEntry{
			{Title: "Records Management Training", Hours: 16},
			{Title: "INCLUSIVE DATES (mm/dd/yyyy)"},
		},
		CivilServiceEligibility: []string{
			"Career Service Professional",
			"Rating: INCLUSIVE DATES (mm/dd/yyyy)",
			"2019-06-01 00:00:00",
			"  Tourism Professional Certification  ",
		},
		References: []types.Reference{
			{Name: "Prof. Norilyn Dela Cruz", ContactData: "Zamboanga City | 4342"},
			{Name: "Government Issued ID", ContactData: "SSS: 123456789"},
			{Name: "Dr. Maria Santos", ContactData: "SSS"},
		},
	}

	filtered := FilterRecord(raw)

	require.Len(t, filtered.EducationalBackground.College, 1)
	assert.Equal(t, "BS Human Resource Management", filtered.EducationalBackground.College[0].Course)

	require.Len(t, filtered.WorkExperience, 2)
	assert.Equal(t, "HR Officer", filtered.WorkExperience[0].PositionTitle)
	assert.Equal(t, "Records Custodian", filtered.WorkExperience[1].PositionTitle)
	assert.Empty(t, filtered.WorkExperience[1].DepartmentOffice, "noise office should be cleared")

	require.Len(t, filtered.LearningDevelopment, 1)
	assert.Equal(t, "Records Management Training", filtered.LearningDevelopment[0].Title)

	assert.Equal(t, []string{"Career Service Professional", "Tourism Professional Certification"}, filtered.CivilServiceEligibility)

	require.Len(t, filtered.References, 2)
	assert.Equal(t, "Prof. Norilyn Dela Cruz", filtered.References[0].Name)
	assert.Equal(t, "Zamboanga City | 4342", filtered.References[0].ContactData)
	assert.Equal(t, "Dr. Maria Santos", filtered.References[1].Name)
	assert.Empty(t, filtered.References[1].ContactData, "bare agency abbreviation should be cleared")
}

func TestFilterRecord_DoesNotMutateInput(t *testing.T) {
	raw := &types.CandidateRecord{
		CivilServiceEligibility: []string{"Career Service Professional", "85.50"},
	}

	_ = FilterRecord(raw)

	assert.Equal(t, []string{"Career Service Professional", "85.50"}, raw.CivilServiceEligibility)
}

func TestFilterRecord_Nil(t *testing.T) {
	assert.Nil(t, FilterRecord(nil))
}

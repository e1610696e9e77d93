package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/pds-screener/internal/types"
)

func TestBuild_FlattensAllLevels(t *testing.T) {
	record := &types.CandidateRecord{
		EducationalBackground: types.EducationalBackground{
			College:         types.EducationEntries{{Course: "BS Human Resource Management"}},
			GraduateStudies: types.EducationEntries{{Course: "MBA"}, {Course: "MPA"}},
			PostGraduate:    types.EducationEntries{{Course: "PhD in Management"}},
		},
		WorkExperience: []types.WorkExperienceEntry{
			{PositionTitle: "HR Officer", DepartmentOffice: "Human Resources Office"},
			{PositionTitle: "Administrative Aide"},
		},
		LearningDevelopment: []types.TrainingEntry{
			{Title: "Records Management Training"},
		},
		CivilServiceEligibility: []string{"Career Service Professional"},
	}

	analysis := Build(record)

	assert.Equal(t, []string{"BS Human Resource Management", "MBA", "MPA", "PhD in Management"}, analysis.EducationFields)
	assert.Equal(t, []string{"HR Officer", "Human Resources Office", "Administrative Aide"}, analysis.WorkExperienceAreas)
	assert.Equal(t, []string{"Records Management Training"}, analysis.TrainingAreas)
	assert.Equal(t, []string{"Career Service Professional"}, analysis.KeySkills)
}

func TestBuild_PreservesDuplicatesAndOrder(t *testing.T) {
	record := &types.CandidateRecord{
		WorkExperience: []types.WorkExperienceEntry{
			{PositionTitle: "Instructor", DepartmentOffice: "College of Education"},
			{PositionTitle: "Instructor", DepartmentOffice: "College of Education"},
		},
	}

	analysis := Build(record)

	assert.Equal(t, []string{"Instructor", "College of Education", "Instructor", "College of Education"}, analysis.WorkExperienceAreas)
}

func TestBuild_SkipsBlankValues(t *testing.T) {
	record := &types.CandidateRecord{
		EducationalBackground: types.EducationalBackground{
			College: types.EducationEntries{{Course: "   "}, {Course: "BS Psychology"}},
		},
		WorkExperience: []types.WorkExperienceEntry{
			{PositionTitle: "", DepartmentOffice: "Registrar's Office"},
		},
		LearningDevelopment: []types.TrainingEntry{{Title: ""}},
	}

	analysis := Build(record)

	assert.Equal(t, []string{"BS Psychology"}, analysis.EducationFields)
	assert.Equal(t, []string{"Registrar's Office"}, analysis.WorkExperienceAreas)
	assert.Empty(t, analysis.TrainingAreas)
}

func TestBuild_NilRecord(t *testing.T) {
	analysis := Build(nil)

	assert.NotNil(t, analysis)
	assert.Empty(t, analysis.EducationFields)
	assert.Empty(t, analysis.WorkExperienceAreas)
	assert.Empty(t, analysis.TrainingAreas)
	assert.Empty(t, analysis.KeySkills)
}

package observability

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/pds-screener/internal/types"
)

func TestPrintBackgroundProfile(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf)

	printer.PrintBackgroundProfile("Test Candidate", &types.BackgroundProfile{
		EducationFields:     []string{"BS Human Resource Management"},
		WorkExperienceAreas: []string{"HR Officer", "Human Resources Office"},
		TrainingAreas:       []string{"Records Management Training"},
		KeySkills:           []string{"Career Service Professional"},
	})

	out := buf.String()
	assert.Contains(t, out, "CANDIDATE BACKGROUND")
	assert.Contains(t, out, "Test Candidate")
	assert.Contains(t, out, "BS Human Resource Management")
	assert.Contains(t, out, "HR Officer")
}

func TestPrintBackgroundProfile_TruncatesLongLists(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf)

	areas := []string{"one", "two", "three", "four", "five", "six", "seven"}
	printer.PrintBackgroundProfile("", &types.BackgroundProfile{WorkExperienceAreas: areas})

	assert.Contains(t, buf.String(), "... and 2 more")
}

func TestPrintBackgroundProfile_Nil(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf)

	printer.PrintBackgroundProfile("x", nil)

	assert.Empty(t, buf.String())
}

func TestPrintAssessment(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf)

	printer.PrintAssessment("Administrative Officer IV", &types.AssessmentResult{
		TotalScore:       64.8,
		EducationScore:   60,
		ExperienceScore:  50,
		TrainingScore:    100,
		EligibilityScore: 75,
	})

	out := buf.String()
	assert.Contains(t, out, "ASSESSMENT RESULT")
	assert.Contains(t, out, "Administrative Officer IV")
	assert.Contains(t, out, "64.8%")
	assert.Contains(t, out, "100.0%")
}

func TestPrintAssessment_WithError(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf)

	printer.PrintAssessment("Clerk", &types.AssessmentResult{Error: "malformed candidate record"})

	assert.Contains(t, buf.String(), "malformed candidate record")
}

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jonathan/pds-screener/internal/assessment"
	"github.com/jonathan/pds-screener/internal/observability"
	"github.com/jonathan/pds-screener/internal/profile"
	"github.com/jonathan/pds-screener/internal/schemas"
	"github.com/jonathan/pds-screener/internal/types"
	"github.com/jonathan/pds-screener/internal/validation"
)

var assessCmd = &cobra.Command{
	Use:   "assess",
	Short: "Assess one candidate against one job posting",
	Long:  "Scores a candidate record JSON against a job requirement JSON, producing an AssessmentResult with education, experience, training, and eligibility sub-scores and the weighted total.",
	RunE:  runAssess,
}

var (
	assessCandidate string
	assessJob       string
	assessOutput    string
	assessVerbose   bool
)

func init() {
	assessCmd.Flags().StringVarP(&assessCandidate, "candidate", "c", "", "Path to candidate record JSON file (required)")
	assessCmd.Flags().StringVarP(&assessJob, "job", "j", "", "Path to job requirement JSON file (required)")
	assessCmd.Flags().StringVarP(&assessOutput, "out", "o", "", "Path to output AssessmentResult JSON file (default stdout)")
	assessCmd.Flags().BoolVarP(&assessVerbose, "verbose", "v", false, "Print the candidate background summary and score breakdown")

	if err := assessCmd.MarkFlagRequired("candidate"); err != nil {
		panic(fmt.Sprintf("failed to mark candidate flag as required: %v", err))
	}
	if err := assessCmd.MarkFlagRequired("job"); err != nil {
		panic(fmt.Sprintf("failed to mark job flag as required: %v", err))
	}

	rootCmd.AddCommand(assessCmd)
}

func runAssess(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// 1. Load the input documents
	candidateJSON, err := os.ReadFile(assessCandidate)
	if err != nil {
		return fmt.Errorf("failed to read candidate file %s: %w", assessCandidate, err)
	}
	jobJSON, err := os.ReadFile(assessJob)
	if err != nil {
		return fmt.Errorf("failed to read job file %s: %w", assessJob, err)
	}

	// 2. Check inputs against their schemas (warnings only; a malformed
	// document still produces an error-annotated result below)
	warnOnSchemaMismatch("candidate record", "schemas/candidate_record.schema.json", candidateJSON)
	warnOnSchemaMismatch("job requirement", "schemas/job_requirement.schema.json", jobJSON)

	// 3. Assess
	assessor, err := assessment.New(cfg.ScoringWeights())
	if err != nil {
		return err
	}
	result := assessor.AssessDocuments(candidateJSON, jobJSON)

	// 4. Verbose breakdown
	if assessVerbose || cfg.Verbose {
		printer := observability.NewPrinter(os.Stdout)
		var candidate types.CandidateRecord
		if err := json.Unmarshal(candidateJSON, &candidate); err == nil {
			filtered := validation.FilterRecord(&candidate)
			printer.PrintBackgroundProfile(filtered.Name, profile.Build(filtered))
		}
		var job types.JobRequirement
		_ = json.Unmarshal(jobJSON, &job)
		printer.PrintAssessment(job.PositionTitle, result)
	}

	// 5. Write the result
	output, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal assessment result: %w", err)
	}
	warnOnSchemaMismatch("assessment result", "schemas/assessment_result.schema.json", output)

	return writeOutput(assessOutput, output)
}

// warnOnSchemaMismatch validates a document against a schema when the schema
// file can be resolved. Validation problems are reported but never fatal.
func warnOnSchemaMismatch(label, schemaRelPath string, document []byte) {
	schemaPath := schemas.ResolveSchemaPath(schemaRelPath)
	if schemaPath == "" {
		return
	}
	if err := schemas.ValidateDocument(schemaPath, document); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Warning: %s failed schema validation: %v\n", label, err)
	}
}

// writeOutput writes data to path, creating parent directories, or to stdout
// when path is empty.
func writeOutput(path string, data []byte) error {
	if path == "" {
		_, _ = fmt.Fprintln(os.Stdout, string(data))
		return nil
	}

	outputDir := filepath.Dir(path)
	if outputDir != "" && outputDir != "." {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", outputDir, err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write output file %s: %w", path, err)
	}
	return nil
}

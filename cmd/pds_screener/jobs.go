package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/pds-screener/internal/types"
)

var importJobsCmd = &cobra.Command{
	Use:   "import-jobs",
	Short: "Import job postings into the database",
	Long:  "Reads a JSON array of job requirements and inserts each posting into the job posting store, creating the schema if needed.",
	RunE:  runImportJobs,
}

var listJobsCmd = &cobra.Command{
	Use:   "list-jobs",
	Short: "List stored job postings",
	RunE:  runListJobs,
}

var (
	importJobsFile        string
	importJobsDatabaseURL string
	listJobsDatabaseURL   string
)

func init() {
	importJobsCmd.Flags().StringVarP(&importJobsFile, "file", "f", "", "Path to a JSON file holding an array of job requirements (required)")
	importJobsCmd.Flags().StringVar(&importJobsDatabaseURL, "database-url", "", "PostgreSQL connection URL (defaults to config/database_url)")

	if err := importJobsCmd.MarkFlagRequired("file"); err != nil {
		panic(fmt.Sprintf("failed to mark file flag as required: %v", err))
	}

	listJobsCmd.Flags().StringVar(&listJobsDatabaseURL, "database-url", "", "PostgreSQL connection URL (defaults to config/database_url)")

	rootCmd.AddCommand(importJobsCmd)
	rootCmd.AddCommand(listJobsCmd)
}

func runImportJobs(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	databaseURL := importJobsDatabaseURL
	if databaseURL == "" {
		databaseURL = cfg.DatabaseURL
	}

	data, err := os.ReadFile(importJobsFile)
	if err != nil {
		return fmt.Errorf("failed to read jobs file %s: %w", importJobsFile, err)
	}

	var jobs []*types.JobRequirement
	if err := json.Unmarshal(data, &jobs); err != nil {
		return fmt.Errorf("failed to parse jobs file %s: %w", importJobsFile, err)
	}
	if len(jobs) == 0 {
		return fmt.Errorf("jobs file %s holds no postings", importJobsFile)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	st, err := openStore(ctx, databaseURL)
	if err != nil {
		return err
	}
	defer st.Close()

	for _, job := range jobs {
		id, err := st.CreateJobPosting(ctx, job)
		if err != nil {
			return fmt.Errorf("failed to import posting %q: %w", job.PositionTitle, err)
		}
		fmt.Printf("imported posting %d: %s\n", id, job.PositionTitle)
	}

	fmt.Printf("imported %d job postings\n", len(jobs))
	return nil
}

func runListJobs(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	databaseURL := listJobsDatabaseURL
	if databaseURL == "" {
		databaseURL = cfg.DatabaseURL
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	st, err := openStore(ctx, databaseURL)
	if err != nil {
		return err
	}
	defer st.Close()

	jobs, err := st.ListJobPostings(ctx)
	if err != nil {
		return err
	}

	if len(jobs) == 0 {
		fmt.Println("no job postings stored")
		return nil
	}

	for _, job := range jobs {
		office := job.DepartmentOffice
		if office == "" {
			office = "-"
		}
		fmt.Printf("%4d  %-40s  %s\n", job.ID, job.PositionTitle, office)
	}
	return nil
}

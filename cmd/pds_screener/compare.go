package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/pds-screener/internal/assessment"
	"github.com/jonathan/pds-screener/internal/logger"
	"github.com/jonathan/pds-screener/internal/store"
	"github.com/jonathan/pds-screener/internal/types"
	"github.com/jonathan/pds-screener/internal/validation"
)

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare candidates against job postings in batch",
	Long:  "Assesses every candidate record against every job posting, in parallel, producing a score matrix. Malformed records score zero with an error annotation; the batch never halts on a single bad record.",
	RunE:  runCompare,
}

var (
	compareCandidates  []string
	compareJobsFile    string
	compareFromDB      bool
	compareDatabaseURL string
	compareOutput      string
	compareWorkers     int
	compareSave        bool
	compareJSONLogs    bool
	compareDebug       bool
)

func init() {
	compareCmd.Flags().StringArrayVarP(&compareCandidates, "candidate", "c", nil, "Path to a candidate record JSON file (repeatable, required)")
	compareCmd.Flags().StringVarP(&compareJobsFile, "jobs", "j", "", "Path to a JSON file holding an array of job requirements")
	compareCmd.Flags().BoolVar(&compareFromDB, "from-db", false, "Load job postings from the database instead of a file")
	compareCmd.Flags().StringVar(&compareDatabaseURL, "database-url", "", "PostgreSQL connection URL (defaults to config/database_url)")
	compareCmd.Flags().StringVarP(&compareOutput, "out", "o", "", "Path to output report JSON file (default stdout)")
	compareCmd.Flags().IntVarP(&compareWorkers, "workers", "w", 0, "Number of parallel scoring workers (defaults to config or 4)")
	compareCmd.Flags().BoolVar(&compareSave, "save", false, "Persist the scored pairs to the database")
	compareCmd.Flags().BoolVar(&compareJSONLogs, "json-logs", false, "Emit progress logs as JSON")
	compareCmd.Flags().BoolVar(&compareDebug, "debug", false, "Log every scored pair")

	if err := compareCmd.MarkFlagRequired("candidate"); err != nil {
		panic(fmt.Sprintf("failed to mark candidate flag as required: %v", err))
	}

	rootCmd.AddCommand(compareCmd)
}

func runCompare(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	log, err := logger.New(compareJSONLogs || cfg.JSONLogs, compareDebug)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	databaseURL := compareDatabaseURL
	if databaseURL == "" {
		databaseURL = cfg.DatabaseURL
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	// 1. Load candidate records; a file that fails to parse still yields a
	// pair with an error annotation instead of aborting the batch.
	candidates := make([]assessment.Candidate, 0, len(compareCandidates))
	for _, path := range compareCandidates {
		candidates = append(candidates, loadCandidate(path, log))
	}

	// 2. Load job postings
	jobs, st, err := loadJobs(ctx, databaseURL, log)
	if err != nil {
		return err
	}
	if st != nil {
		defer st.Close()
	}

	// 3. Run the comparison
	assessor, err := assessment.New(cfg.ScoringWeights())
	if err != nil {
		return err
	}

	workers := compareWorkers
	if workers == 0 {
		workers = cfg.Workers
	}

	report, err := assessor.Compare(ctx, candidates, jobs, assessment.BatchOptions{
		Workers: workers,
		Logger:  log,
	})
	if err != nil {
		return fmt.Errorf("comparison run failed: %w", err)
	}

	// 4. Optionally persist the scored pairs
	if compareSave {
		if st == nil {
			return fmt.Errorf("--save requires a database URL")
		}
		for _, pair := range report.Results {
			if err := st.SaveAssessment(ctx, report.RunID, pair.CandidateKey, pair.JobTitle, pair.Result); err != nil {
				return err
			}
		}
		log.Info("saved comparison run", zap.String("run_id", report.RunID.String()))
	}

	// 5. Write the report
	output, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal comparison report: %w", err)
	}
	return writeOutput(compareOutput, output)
}

// loadCandidate reads and filters one candidate record file. Parse failures
// produce a keyed candidate with a nil record so the pair is still reported.
func loadCandidate(path string, log *zap.Logger) assessment.Candidate {
	key := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))

	data, err := os.ReadFile(path)
	if err != nil {
		log.Warn("failed to read candidate file", zap.String("path", path), zap.Error(err))
		return assessment.Candidate{Key: key}
	}

	var record types.CandidateRecord
	if err := json.Unmarshal(data, &record); err != nil {
		log.Warn("malformed candidate record", zap.String("path", path), zap.Error(err))
		return assessment.Candidate{Key: key}
	}

	return assessment.Candidate{Key: key, Record: validation.FilterRecord(&record)}
}

// loadJobs loads job postings from the --jobs file or, with --from-db, from
// the job posting store. The returned store is non-nil when a database
// connection was opened and is reused for --save.
func loadJobs(ctx context.Context, databaseURL string, log *zap.Logger) ([]*types.JobRequirement, *store.Store, error) {
	if compareJobsFile != "" {
		data, err := os.ReadFile(compareJobsFile)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to read jobs file %s: %w", compareJobsFile, err)
		}
		var jobs []*types.JobRequirement
		if err := json.Unmarshal(data, &jobs); err != nil {
			return nil, nil, fmt.Errorf("failed to parse jobs file %s: %w", compareJobsFile, err)
		}
		if compareSave || compareFromDB {
			st, err := openStore(ctx, databaseURL)
			if err != nil {
				return nil, nil, err
			}
			return jobs, st, nil
		}
		return jobs, nil, nil
	}

	if !compareFromDB {
		return nil, nil, fmt.Errorf("either --jobs or --from-db is required")
	}

	st, err := openStore(ctx, databaseURL)
	if err != nil {
		return nil, nil, err
	}
	jobs, err := st.ListJobPostings(ctx)
	if err != nil {
		st.Close()
		return nil, nil, err
	}
	log.Info("loaded job postings", zap.Int("count", len(jobs)))
	return jobs, st, nil
}

func openStore(ctx context.Context, databaseURL string) (*store.Store, error) {
	if databaseURL == "" {
		return nil, fmt.Errorf("a database URL is required (flag --database-url or config database_url)")
	}
	st, err := store.Connect(ctx, databaseURL)
	if err != nil {
		return nil, err
	}
	if err := st.EnsureSchema(ctx); err != nil {
		st.Close()
		return nil, err
	}
	return st, nil
}

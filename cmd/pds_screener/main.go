// Package main provides the pds_screener CLI for validating extracted PDS
// fields and scoring candidates against job postings.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/jonathan/pds-screener/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "pds_screener",
	Short: "PDS candidate screening and assessment",
	Long:  "pds_screener validates field fragments extracted from Personal Data Sheet spreadsheets and scores candidate records against institutional job postings using weighted multi-criteria matching.",
}

var configPath string

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to JSON config file")
}

// loadConfig loads the config file named by --config, or returns an empty
// config when the flag is unset.
func loadConfig() (*config.Config, error) {
	if configPath == "" {
		return &config.Config{}, nil
	}
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

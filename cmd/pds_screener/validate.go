package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/pds-screener/internal/validation"
)

var validateCmd = &cobra.Command{
	Use:   "validate [text]",
	Short: "Probe the field validator with a single text fragment",
	Long:  "Classifies a raw extracted text fragment as a genuine value or extraction noise for the given field kind (eligibility, reference_name, or reference_data).",
	Args:  cobra.ExactArgs(1),
	RunE:  runValidate,
}

var validateKind string

func init() {
	validateCmd.Flags().StringVarP(&validateKind, "kind", "k", "", "Field kind: eligibility, reference_name, or reference_data (required)")

	if err := validateCmd.MarkFlagRequired("kind"); err != nil {
		panic(fmt.Sprintf("failed to mark kind flag as required: %v", err))
	}

	rootCmd.AddCommand(validateCmd)
}

func runValidate(_ *cobra.Command, args []string) error {
	kind, err := validation.ParseKind(validateKind)
	if err != nil {
		return err
	}

	if validation.Validate(kind, args[0]) {
		_, _ = fmt.Fprintln(os.Stdout, "accept")
	} else {
		_, _ = fmt.Fprintln(os.Stdout, "reject")
	}
	return nil
}

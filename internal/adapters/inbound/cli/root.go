// Package cli wires the cobra command tree and maps errors to exit codes.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tfconform/tfconform/internal/domain"
)

var (
	version = "dev"
	commit  = "none"
)

// Exit codes: 0 all checks passed, 1 findings failed the run, 2 the run
// itself could not be performed.
const (
	ExitOK               = 0
	ExitValidationFailed = 1
	ExitConfigError      = 2
)

// ValidationFailedError signals that validation completed and produced
// blocking findings. It is distinct from errors that prevented the run.
type ValidationFailedError struct {
	Errors   int
	Warnings int
}

func (e *ValidationFailedError) Error() string {
	return fmt.Sprintf("validation failed: %d errors, %d warnings", e.Errors, e.Warnings)
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "tfconform",
		Short:         "Validate Terraform projects against structure and coding standards",
		Long:          "tfconform scans Terraform source trees for structural and coding-standard violations, and scaffolds new projects that pass those checks from day one.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newValidateCmd())
	cmd.AddCommand(newInitCmd())
	cmd.AddCommand(newRulesCmd())
	cmd.AddCommand(newMCPCmd())
	return cmd
}

// NewRootCmdForTest returns the root command for testing.
func NewRootCmdForTest() *cobra.Command {
	return newRootCmd()
}

// Execute runs the CLI and returns the process exit code.
func Execute() int {
	err := newRootCmd().Execute()
	if err == nil {
		return ExitOK
	}

	var failed *ValidationFailedError
	if errors.As(err, &failed) {
		fmt.Fprintln(os.Stderr, err)
		return ExitValidationFailed
	}

	var confErr *domain.ConfigurationError
	if errors.As(err, &confErr) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return ExitConfigError
	}

	// Flag parse errors and unknown commands also mean the run never
	// happened.
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	return ExitConfigError
}

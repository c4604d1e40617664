package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tfconform/tfconform/internal/adapters/outbound/collector"
	"github.com/tfconform/tfconform/internal/adapters/outbound/config"
	"github.com/tfconform/tfconform/internal/adapters/outbound/report"
	"github.com/tfconform/tfconform/internal/adapters/outbound/tui"
	"github.com/tfconform/tfconform/internal/application"
	"github.com/tfconform/tfconform/internal/domain"
)

func newValidateCmd() *cobra.Command {
	var (
		path       string
		strict     bool
		reportPath string
		jsonOutput bool
		modules    string
	)

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate a Terraform directory against the rule catalog",
		Long:  "Scan a Terraform source tree, run every enabled rule, and report findings. Exit code 0 means clean, 1 means findings failed the run, 2 means the run could not be performed.",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := application.NewValidateService(collector.New(), config.New())

			mode, err := svc.ModuleReportsMode(path, modules)
			if err != nil {
				return err
			}

			runCfg := domain.RunConfig{TargetPath: path, Strict: strict}

			var reports []*domain.Report
			if mode == domain.ModuleReportsSeparate {
				reports, err = svc.RunSeparate(runCfg)
			} else {
				var single *domain.Report
				single, err = svc.Run(runCfg)
				if single != nil {
					reports = []*domain.Report{single}
				}
			}
			if err != nil {
				return err
			}

			if reportPath != "" {
				writer := report.NewMarkdownWriter()
				if err := writer.Write(reportPath, reports); err != nil {
					// The console summary still matters when the file
					// cannot be written.
					fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %v\n", err)
				} else {
					fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", reportPath)
				}
			}

			if jsonOutput {
				if err := renderReportsJSON(cmd, reports); err != nil {
					return err
				}
			} else {
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderReports(reports))
			}

			var errs, warns int
			passed := true
			for _, r := range reports {
				errs += r.Errors
				warns += r.Warnings
				if !r.Passed {
					passed = false
				}
			}
			if !passed {
				return &ValidationFailedError{Errors: errs, Warnings: warns}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&path, "path", ".", "Terraform directory to validate")
	cmd.Flags().BoolVar(&strict, "strict", false, "Treat warnings as blocking")
	cmd.Flags().StringVar(&reportPath, "report", "", "Write a markdown report to this file")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	cmd.Flags().StringVar(&modules, "modules", "", "Module report mode: combined or separate (overrides project config)")

	return cmd
}

func renderReportsJSON(cmd *cobra.Command, reports []*domain.Report) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	if len(reports) == 1 {
		return enc.Encode(reports[0])
	}
	return enc.Encode(reports)
}

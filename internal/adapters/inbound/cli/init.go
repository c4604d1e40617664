package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tfconform/tfconform/internal/adapters/outbound/scaffold"
	"github.com/tfconform/tfconform/internal/application"
)

func newInitCmd() *cobra.Command {
	var (
		name      string
		tool      string
		cloud     string
		template  string
		outputDir string
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Scaffold a new IaC project that passes validation",
		Long:  "Create a new infrastructure-as-code project tree with pinned providers, validated variables, and a pre-commit hook wired to tfconform.",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := application.NewScaffoldService()

			result, err := svc.Create(application.ScaffoldOptions{
				Name:      name,
				Tool:      tool,
				Cloud:     cloud,
				Template:  template,
				OutputDir: outputDir,
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Created project %s\n\n", result.Dir)
			for _, f := range result.Files {
				fmt.Fprintf(out, "  %s\n", f)
			}
			fmt.Fprintln(out)

			if result.GitInitialized {
				fmt.Fprintln(out, "Initialized git repository with initial commit.")
			}
			if result.GitWarning != "" {
				fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %s\n", result.GitWarning)
			}

			fmt.Fprintln(out, "\nNext steps:")
			fmt.Fprintf(out, "  cd %s/%s\n", result.Dir, tool)
			fmt.Fprintln(out, "  cp terraform.tfvars.example terraform.tfvars")
			fmt.Fprintln(out, "  terraform init")
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Project name (required)")
	cmd.Flags().StringVar(&tool, "tool", scaffold.ToolTerraform, "IaC tool (only terraform)")
	cmd.Flags().StringVar(&cloud, "cloud", scaffold.CloudAzure, "Cloud provider (azure, aws, gcp)")
	cmd.Flags().StringVar(&template, "template", scaffold.TemplateStandard, "Project template (minimal, standard, enterprise)")
	cmd.Flags().StringVar(&outputDir, "output-dir", ".", "Directory to create the project in")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

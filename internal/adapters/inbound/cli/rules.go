package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tfconform/tfconform/internal/domain/rules"
)

func newRulesCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "rules",
		Short: "List the rule catalog",
		Long:  "List every rule with its id, default severity, and description. Severities can be overridden per project in .tfconform.yaml.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if jsonOutput {
				return renderRulesJSON(cmd)
			}

			out := cmd.OutOrStdout()
			for _, rule := range rules.All() {
				fmt.Fprintf(out, "%-28s %-8s %s\n",
					rule.ID(), strings.ToUpper(rule.Severity()), rule.Description())
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}

type ruleInfo struct {
	ID          string `json:"id"`
	Severity    string `json:"severity"`
	Description string `json:"description"`
}

func renderRulesJSON(cmd *cobra.Command) error {
	var infos []ruleInfo
	for _, rule := range rules.All() {
		infos = append(infos, ruleInfo{
			ID:          rule.ID(),
			Severity:    rule.Severity(),
			Description: rule.Description(),
		})
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(infos)
}

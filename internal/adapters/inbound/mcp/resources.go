package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/tfconform/tfconform/internal/domain"
	"github.com/tfconform/tfconform/internal/domain/rules"
)

// registerResources registers all tfconform MCP resources on the given server.
func registerResources(s *server.MCPServer, projectPath string) {
	// 1. tfconform://rules - the rule catalog
	s.AddResource(
		mcplib.NewResource(
			"tfconform://rules",
			"Rule Catalog",
			mcplib.WithResourceDescription("Every validation rule with its default severity and description"),
			mcplib.WithMIMEType("application/json"),
		),
		handleRulesResource(),
	)

	// 2. tfconform://report - current validation report
	s.AddResource(
		mcplib.NewResource(
			"tfconform://report",
			"Validation Report",
			mcplib.WithResourceDescription("Current validation report for the project"),
			mcplib.WithMIMEType("application/json"),
		),
		handleReportResource(projectPath),
	)
}

func handleRulesResource() server.ResourceHandlerFunc {
	type ruleInfo struct {
		ID          string `json:"id"`
		Severity    string `json:"severity"`
		Description string `json:"description"`
	}

	return func(_ context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		var infos []ruleInfo
		for _, rule := range rules.All() {
			infos = append(infos, ruleInfo{
				ID:          rule.ID(),
				Severity:    rule.Severity(),
				Description: rule.Description(),
			})
		}

		data, err := json.MarshalIndent(infos, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshaling rules: %w", err)
		}

		return []mcplib.ResourceContents{
			mcplib.TextResourceContents{
				URI:      "tfconform://rules",
				MIMEType: "application/json",
				Text:     string(data),
			},
		}, nil
	}
}

func handleReportResource(projectPath string) server.ResourceHandlerFunc {
	return func(_ context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		svc := newValidateService()
		r, err := svc.Run(domain.RunConfig{TargetPath: projectPath})
		if err != nil {
			return nil, fmt.Errorf("validation failed: %w", err)
		}

		data, err := json.MarshalIndent(r, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshaling report: %w", err)
		}

		return []mcplib.ResourceContents{
			mcplib.TextResourceContents{
				URI:      "tfconform://report",
				MIMEType: "application/json",
				Text:     string(data),
			},
		}, nil
	}
}

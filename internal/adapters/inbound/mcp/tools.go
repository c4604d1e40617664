package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/tfconform/tfconform/internal/adapters/outbound/collector"
	"github.com/tfconform/tfconform/internal/adapters/outbound/config"
	"github.com/tfconform/tfconform/internal/adapters/outbound/report"
	"github.com/tfconform/tfconform/internal/application"
	"github.com/tfconform/tfconform/internal/domain"
	"github.com/tfconform/tfconform/internal/domain/rules"
)

// registerTools registers all tfconform MCP tools on the given server.
func registerTools(s *server.MCPServer, projectPath string) {
	// 1. tfconform_validate
	s.AddTool(
		mcplib.NewTool("tfconform_validate",
			mcplib.WithDescription("Validate a Terraform directory against the rule catalog. Returns the full report as JSON."),
			mcplib.WithString("path", mcplib.Description("Directory to validate (defaults to the server's project path)")),
			mcplib.WithBoolean("strict", mcplib.Description("Treat warnings as blocking")),
			mcplib.WithString("modules", mcplib.Description("Module report mode: combined or separate")),
		),
		handleValidate(projectPath),
	)

	// 2. tfconform_rules
	s.AddTool(
		mcplib.NewTool("tfconform_rules",
			mcplib.WithDescription("Returns the rule catalog: every rule id with its default severity and description"),
		),
		handleRules(),
	)

	// 3. tfconform_report
	s.AddTool(
		mcplib.NewTool("tfconform_report",
			mcplib.WithDescription("Validate a Terraform directory and return the report rendered as markdown"),
			mcplib.WithString("path", mcplib.Description("Directory to validate (defaults to the server's project path)")),
			mcplib.WithBoolean("strict", mcplib.Description("Treat warnings as blocking")),
		),
		handleReport(projectPath),
	)
}

func newValidateService() *application.ValidateService {
	return application.NewValidateService(collector.New(), config.New())
}

// resolveTarget returns the directory a tool call should validate.
func resolveTarget(request mcplib.CallToolRequest, projectPath string) string {
	if path, ok := request.GetArguments()["path"].(string); ok && path != "" {
		return path
	}
	return projectPath
}

func runValidation(request mcplib.CallToolRequest, projectPath string) ([]*domain.Report, error) {
	args := request.GetArguments()
	strict, _ := args["strict"].(bool)
	modules, _ := args["modules"].(string)

	svc := newValidateService()
	target := resolveTarget(request, projectPath)

	mode, err := svc.ModuleReportsMode(target, modules)
	if err != nil {
		return nil, err
	}

	runCfg := domain.RunConfig{TargetPath: target, Strict: strict}
	if mode == domain.ModuleReportsSeparate {
		return svc.RunSeparate(runCfg)
	}

	r, err := svc.Run(runCfg)
	if err != nil {
		return nil, err
	}
	return []*domain.Report{r}, nil
}

func handleValidate(projectPath string) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		reports, err := runValidation(request, projectPath)
		if err != nil {
			return errorResult(fmt.Sprintf("validation failed: %v", err)), nil
		}
		if len(reports) == 1 {
			return jsonResult(reports[0])
		}
		return jsonResult(reports)
	}
}

func handleRules() server.ToolHandlerFunc {
	type ruleInfo struct {
		ID          string `json:"id"`
		Severity    string `json:"severity"`
		Description string `json:"description"`
	}

	return func(_ context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		var infos []ruleInfo
		for _, rule := range rules.All() {
			infos = append(infos, ruleInfo{
				ID:          rule.ID(),
				Severity:    rule.Severity(),
				Description: rule.Description(),
			})
		}
		return jsonResult(infos)
	}
}

func handleReport(projectPath string) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		reports, err := runValidation(request, projectPath)
		if err != nil {
			return errorResult(fmt.Sprintf("validation failed: %v", err)), nil
		}
		return textResult(report.Render(reports)), nil
	}
}

// jsonResult marshals v to JSON and returns it as a text content result.
func jsonResult(v interface{}) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(string(data))},
	}, nil
}

// textResult returns a plain text content result.
func textResult(text string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(text)},
	}
}

// errorResult returns a tool result that indicates an error occurred.
func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}

package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/kclwrap/kclwrap/internal/adapters/outbound/config"
	"github.com/kclwrap/kclwrap/internal/adapters/outbound/gitinfo"
	"github.com/kclwrap/kclwrap/internal/adapters/outbound/kcl"
	"github.com/kclwrap/kclwrap/internal/adapters/outbound/scanner"
	"github.com/kclwrap/kclwrap/internal/application"
)

// registerTools registers the kclwrap MCP tools on the given server.
func registerTools(s *server.MCPServer, projectPath string) {
	// 1. kcl_run
	s.AddTool(
		mcplib.NewTool("kcl_run",
			mcplib.WithDescription("Execute a KCL file and return its rendered output"),
			mcplib.WithString("file",
				mcplib.Required(),
				mcplib.Description("KCL file to execute, relative to the project root"),
			),
			mcplib.WithString("format", mcplib.Description("Output format: yaml or json (default: yaml)")),
			mcplib.WithString("output", mcplib.Description("Output file path; when set the tool writes there instead of returning content")),
			mcplib.WithString("define", mcplib.Description("Comma-separated key=value definitions injected into evaluation")),
		),
		handleRun(projectPath),
	)

	// 2. kcl_format
	s.AddTool(
		mcplib.NewTool("kcl_format",
			mcplib.WithDescription("Format a KCL file in canonical style, in place"),
			mcplib.WithString("file",
				mcplib.Required(),
				mcplib.Description("KCL file to format, relative to the project root"),
			),
		),
		handleFormat(projectPath),
	)

	// 3. kcl_validate
	s.AddTool(
		mcplib.NewTool("kcl_validate",
			mcplib.WithDescription("Validate every KCL file under a directory and return a per-file report"),
			mcplib.WithString("dir", mcplib.Description("Directory to validate (default: project root)")),
			mcplib.WithString("report", mcplib.Description("Report form: text or json (default: text)")),
		),
		handleValidate(projectPath),
	)
}

func handleRun(projectPath string) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		file, err := request.RequireString("file")
		if err != nil {
			return errorResult(err.Error()), nil
		}
		format, _ := request.GetArguments()["format"].(string)
		output, _ := request.GetArguments()["output"].(string)
		defineStr, _ := request.GetArguments()["define"].(string)

		cfg, err := config.New().Load(projectPath)
		if err != nil {
			return errorResult(fmt.Sprintf("loading config: %v", err)), nil
		}
		if format == "" {
			format = cfg.Format
		}

		svc := application.NewRunService(kcl.New(cfg.Tool))
		result, err := svc.Run(resolve(projectPath, file), format, output, splitAndTrim(defineStr))
		if err != nil {
			return errorResult(fmt.Sprintf("Error executing KCL: %v", err)), nil
		}
		return textResult(result), nil
	}
}

func handleFormat(projectPath string) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		file, err := request.RequireString("file")
		if err != nil {
			return errorResult(err.Error()), nil
		}

		cfg, err := config.New().Load(projectPath)
		if err != nil {
			return errorResult(fmt.Sprintf("loading config: %v", err)), nil
		}

		svc := application.NewFormatService(kcl.New(cfg.Tool))
		result, err := svc.Format(resolve(projectPath, file))
		if err != nil {
			return errorResult(fmt.Sprintf("Error formatting KCL: %v", err)), nil
		}
		return textResult(result), nil
	}
}

func handleValidate(projectPath string) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		dir, _ := request.GetArguments()["dir"].(string)
		if dir == "" {
			dir = projectPath
		} else {
			dir = resolve(projectPath, dir)
		}
		reportForm, _ := request.GetArguments()["report"].(string)

		cfg, err := config.New().Load(dir)
		if err != nil {
			return errorResult(fmt.Sprintf("loading config: %v", err)), nil
		}

		svc := application.NewValidateService(scanner.New(), kcl.New(cfg.Tool), gitinfo.New())
		report, err := svc.Validate(dir, cfg.ExcludePaths, false)
		if err != nil {
			return errorResult(fmt.Sprintf("Error validating KCL project: %v", err)), nil
		}

		if reportForm == "json" {
			return jsonResult(report)
		}
		return textResult(report.Render()), nil
	}
}

// resolve joins path onto root unless it is already absolute.
func resolve(root, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(root, path)
}

func splitAndTrim(s string) []string {
	parts := strings.Split(s, ",")
	var result []string
	for _, p := range parts {
		trimmed := strings.TrimSpace(p)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
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

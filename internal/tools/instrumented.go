package tools

import (
	"context"
	"encoding/json"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/sirupsen/logrus"

	"github.com/daniloc96/google-workspace-admin-mcp/internal/interfaces"
)

// StatusSuccess is the status recorded for a successful tool call. Failed
// calls are recorded with their error kind.
const StatusSuccess = "success"

// Instrument returns a tool handler middleware that logs every invocation and
// reports it to recorder. A nil recorder only logs.
func Instrument(recorder interfaces.ToolRecorder) mcpserver.ToolHandlerMiddleware {
	return func(next mcpserver.ToolHandlerFunc) mcpserver.ToolHandlerFunc {
		return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			start := time.Now()
			result, err := next(ctx, request)
			duration := time.Since(start)

			tool := request.Params.Name
			status := StatusSuccess
			fields := logrus.Fields{"tool": tool}
			switch {
			case err != nil:
				status = KindInternal
				fields["error"] = err.Error()
			case result != nil && result.IsError:
				body := errorBodyOf(result)
				status = body.Error
				if body.Status != 0 {
					fields["status_code"] = body.Status
				}
				if body.Field != "" {
					fields["field"] = body.Field
				}
			}
			fields["status"] = status
			fields["duration_ms"] = duration.Milliseconds()

			entry := logrus.WithContext(ctx).WithFields(fields)
			if status == StatusSuccess {
				entry.Info("Tool call completed")
			} else {
				entry.Warn("Tool call failed")
			}

			if recorder != nil {
				recorder.RecordToolCall(ctx, tool, status, duration)
			}
			return result, err
		}
	}
}

func errorBodyOf(result *mcp.CallToolResult) ErrorBody {
	body := ErrorBody{Error: KindInternal}
	for _, content := range result.Content {
		text, ok := content.(mcp.TextContent)
		if !ok {
			continue
		}
		var parsed ErrorBody
		if err := json.Unmarshal([]byte(text.Text), &parsed); err == nil && parsed.Error != "" {
			return parsed
		}
	}
	return body
}

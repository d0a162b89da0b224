package metrics

import (
	"context"
	"time"

	"github.com/daniloc96/google-workspace-admin-mcp/internal/interfaces"
)

// statusSuccess matches the status reported by the tool middleware for a
// successful call.
const statusSuccess = "success"

// Multi fans a tool call out to several recorders.
type Multi []interfaces.ToolRecorder

// RecordToolCall forwards the call to every recorder.
func (m Multi) RecordToolCall(ctx context.Context, tool string, status string, duration time.Duration) {
	for _, r := range m {
		r.RecordToolCall(ctx, tool, status, duration)
	}
}

// Combine returns a recorder for the non-nil recorders, or nil when there is none.
func Combine(recorders ...interfaces.ToolRecorder) interfaces.ToolRecorder {
	var m Multi
	for _, r := range recorders {
		if r != nil {
			m = append(m, r)
		}
	}
	switch len(m) {
	case 0:
		return nil
	case 1:
		return m[0]
	default:
		return m
	}
}

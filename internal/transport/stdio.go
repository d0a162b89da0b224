package transport

import (
	"context"
	"errors"
	stdlog "log"
	"os"

	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/sirupsen/logrus"
)

// ServeStdio serves srv on stdin/stdout until ctx is cancelled or stdin is closed.
func ServeStdio(ctx context.Context, srv *mcpserver.MCPServer) error {
	stdio := mcpserver.NewStdioServer(srv)
	stdio.SetErrorLogger(stdlog.New(logrus.StandardLogger().WriterLevel(logrus.ErrorLevel), "", 0))

	logrus.Info("Serving MCP over stdio")
	if err := stdio.Listen(ctx, os.Stdin, os.Stdout); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

package main

import (
	"context"
	"net/http"

	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/sirupsen/logrus"

	"github.com/daniloc96/google-workspace-admin-mcp/cmd"
	"github.com/daniloc96/google-workspace-admin-mcp/internal/config"
	"github.com/daniloc96/google-workspace-admin-mcp/internal/google"
	"github.com/daniloc96/google-workspace-admin-mcp/internal/interfaces"
	"github.com/daniloc96/google-workspace-admin-mcp/internal/metrics"
	"github.com/daniloc96/google-workspace-admin-mcp/internal/secrets"
	"github.com/daniloc96/google-workspace-admin-mcp/internal/tools"
)

const serverName = "google-workspace-admin-mcp"

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	cmd.SetBuildServer(buildServer)
	cmd.Execute()
}

// buildServer authenticates against Google once and assembles the MCP server.
// The directory client is shared by every tool call for the process lifetime.
func buildServer(ctx context.Context, cfg *config.Config) (*mcpserver.MCPServer, http.Handler, error) {
	creds, err := secrets.ResolveSecretValue(cfg.Google.CredentialsSecret, cfg.Google.CredentialsFile)
	if err != nil {
		return nil, nil, &google.AuthenticationError{Reason: "loading service account key", Err: err}
	}

	svc, err := google.Authenticate(ctx, creds, cfg.Google.AdminEmail, cfg.Google.VerifyCredentials)
	if err != nil {
		return nil, nil, err
	}
	client, err := google.NewClient(svc, cfg.Google.CustomerID)
	if err != nil {
		return nil, nil, err
	}

	var recorders []interfaces.ToolRecorder
	var metricsHandler http.Handler
	if cfg.Metrics.PrometheusEnabled {
		prom := metrics.NewPrometheus()
		recorders = append(recorders, prom)
		metricsHandler = prom.Handler()
	}
	if cfg.Metrics.CloudWatchEnabled {
		emitter, err := metrics.LoadEmitter(ctx, cfg.Metrics.Region, cfg.Metrics.Namespace)
		if err != nil {
			logrus.WithError(err).Warn("CloudWatch metrics disabled")
		} else {
			recorders = append(recorders, emitter)
		}
	}

	srv := mcpserver.NewMCPServer(serverName, version,
		mcpserver.WithToolCapabilities(true),
		mcpserver.WithRecovery(),
		mcpserver.WithToolHandlerMiddleware(tools.Instrument(metrics.Combine(recorders...))),
	)
	tools.NewDispatcher(client, cfg.Server.ReadOnly).Register(srv)

	logrus.WithFields(logrus.Fields{
		"customer_id": cfg.Google.CustomerID,
		"read_only":   cfg.Server.ReadOnly,
		"tools":       len(srv.ListTools()),
	}).Info("Registered Google Workspace tools")

	return srv, metricsHandler, nil
}

package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/aws/aws-lambda-go/lambda"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/daniloc96/google-workspace-admin-mcp/internal/config"
	"github.com/daniloc96/google-workspace-admin-mcp/internal/google"
	"github.com/daniloc96/google-workspace-admin-mcp/internal/log"
	"github.com/daniloc96/google-workspace-admin-mcp/internal/transport"
)

// BuildFunc assembles the MCP server for a validated configuration. The
// returned handler serves /metrics and may be nil.
type BuildFunc func(ctx context.Context, cfg *config.Config) (*mcpserver.MCPServer, http.Handler, error)

var (
	cfgFile          string
	flagTransport    string
	flagHTTPAddr     string
	flagReadOnly     bool
	flagGoogleAdmin  string
	flagGoogleCreds  string
	flagGoogleSecret string
	flagCustomerID   string
	flagVerifyCreds  bool
	flagLogLevel     string
	flagLogFormat    string

	buildServer BuildFunc
)

// SetBuildServer registers the function that assembles the MCP server.
func SetBuildServer(build BuildFunc) {
	buildServer = build
}

var rootCmd = &cobra.Command{
	Use:   "workspace-admin-mcp",
	Short: "MCP server for Google Workspace user, group and org unit administration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return err
		}

		overrideConfigFromFlags(cmd, cfg)
		if err := config.Validate(cfg); err != nil {
			return err
		}
		log.ConfigureStandard(cfg.Log.Level, cfg.Log.Format)

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		srv, metricsHandler, err := build(ctx, cfg)
		if err != nil {
			return err
		}

		logrus.WithFields(logrus.Fields{
			"transport": cfg.Server.Transport,
			"read_only": cfg.Server.ReadOnly,
			"admin":     cfg.Google.AdminEmail,
		}).Info("Google Workspace admin MCP server ready")

		switch cfg.Server.Transport {
		case config.TransportStreamableHTTP:
			return transport.ServeHTTP(ctx, cfg.Server.HTTPAddr, transport.NewHTTPHandler(srv, metricsHandler))
		default:
			return transport.ServeStdio(ctx, srv)
		}
	},
}

// Execute runs the CLI or Lambda handler depending on environment.
func Execute() {
	if isLambda() {
		startLambda()
		return
	}

	if err := rootCmd.Execute(); err != nil {
		logrus.Fatal(err)
	}
}

func startLambda() {
	cfg, err := config.Load("")
	if err != nil {
		logrus.Fatal(err)
	}
	if err := config.Validate(cfg); err != nil {
		logrus.Fatal(err)
	}
	log.ConfigureStandard(cfg.Log.Level, cfg.Log.Format)

	srv, _, err := build(context.Background(), cfg)
	if err != nil {
		logrus.Fatal(err)
	}
	lambda.Start(transport.NewLambdaHandler(srv))
}

// build exits the process on an authentication failure.
func build(ctx context.Context, cfg *config.Config) (*mcpserver.MCPServer, http.Handler, error) {
	if buildServer == nil {
		return nil, nil, fmt.Errorf("server builder is not configured")
	}
	srv, metricsHandler, err := buildServer(ctx, cfg)
	var authErr *google.AuthenticationError
	if errors.As(err, &authErr) {
		logrus.WithError(err).WithField("admin", cfg.Google.AdminEmail).Fatal("Google authentication failed")
	}
	return srv, metricsHandler, err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file path")
	rootCmd.PersistentFlags().StringVar(&flagTransport, "transport", "", "MCP transport: stdio or streamable-http")
	rootCmd.PersistentFlags().StringVar(&flagHTTPAddr, "http-addr", "", "Listen address for the streamable-http transport")
	rootCmd.PersistentFlags().BoolVar(&flagReadOnly, "read-only", false, "Expose only the tools that do not modify the directory")
	rootCmd.PersistentFlags().StringVar(&flagGoogleAdmin, "google-admin", "", "Google Workspace admin email for impersonation")
	rootCmd.PersistentFlags().StringVar(&flagGoogleCreds, "google-creds", "", "Path to Google service account JSON")
	rootCmd.PersistentFlags().StringVar(&flagGoogleSecret, "google-secret", "", "AWS Secrets Manager secret holding the service account JSON")
	rootCmd.PersistentFlags().StringVar(&flagCustomerID, "customer-id", "", "Google Workspace customer ID (default my_customer)")
	rootCmd.PersistentFlags().BoolVar(&flagVerifyCreds, "verify-credentials", true, "Fetch a token at startup to check the domain-wide delegation")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFormat, "log-format", "", "Log format: text, json or pretty")
}

func isLambda() bool {
	return os.Getenv("AWS_LAMBDA_FUNCTION_NAME") != ""
}

func overrideConfigFromFlags(cmd *cobra.Command, cfg *config.Config) {
	if cmd.Flags().Changed("transport") {
		cfg.Server.Transport = flagTransport
	}
	if cmd.Flags().Changed("http-addr") {
		cfg.Server.HTTPAddr = flagHTTPAddr
	}
	if cmd.Flags().Changed("read-only") {
		cfg.Server.ReadOnly = flagReadOnly
	}
	if cmd.Flags().Changed("google-admin") {
		cfg.Google.AdminEmail = flagGoogleAdmin
	}
	if cmd.Flags().Changed("google-creds") {
		cfg.Google.CredentialsFile = flagGoogleCreds
	}
	if cmd.Flags().Changed("google-secret") {
		cfg.Google.CredentialsSecret = flagGoogleSecret
	}
	if cmd.Flags().Changed("customer-id") {
		cfg.Google.CustomerID = flagCustomerID
	}
	if cmd.Flags().Changed("verify-credentials") {
		cfg.Google.VerifyCredentials = flagVerifyCreds
	}
	if cmd.Flags().Changed("log-level") {
		cfg.Log.Level = flagLogLevel
	}
	if cmd.Flags().Changed("log-format") {
		cfg.Log.Format = flagLogFormat
	}
}

package config

import (
	"errors"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Load reads configuration from file, environment variables, and defaults.
func Load(configFile string) (*Config, error) {
	v := viper.New()
	v.SetDefault("google.credentials_file", "credentials.json")
	v.SetDefault("google.customer_id", "my_customer")
	v.SetDefault("google.verify_credentials", true)
	v.SetDefault("server.transport", TransportStdio)
	v.SetDefault("server.http_addr", ":8080")
	v.SetDefault("server.read_only", false)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("metrics.prometheus_enabled", true)
	v.SetDefault("metrics.cloudwatch_enabled", false)
	v.SetDefault("metrics.namespace", "WorkspaceAdminMCP")
	v.SetDefault("metrics.region", "eu-west-1")

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	_ = v.BindEnv("google.admin_email", "GOOGLE_ADMIN_EMAIL")
	_ = v.BindEnv("google.credentials_file", "GOOGLE_SERVICE_ACCOUNT_FILE", "GOOGLE_CREDENTIALS_FILE")
	_ = v.BindEnv("google.credentials_secret", "GOOGLE_CREDENTIALS_SECRET")
	_ = v.BindEnv("google.customer_id", "GOOGLE_CUSTOMER_ID")
	_ = v.BindEnv("google.verify_credentials", "GOOGLE_VERIFY_CREDENTIALS")
	_ = v.BindEnv("server.transport", "MCP_TRANSPORT")
	_ = v.BindEnv("server.http_addr", "MCP_HTTP_ADDR")
	_ = v.BindEnv("server.read_only", "MCP_READ_ONLY")
	_ = v.BindEnv("log.level", "LOG_LEVEL")
	_ = v.BindEnv("log.format", "LOG_FORMAT")
	_ = v.BindEnv("metrics.prometheus_enabled", "METRICS_PROMETHEUS_ENABLED")
	_ = v.BindEnv("metrics.cloudwatch_enabled", "METRICS_CLOUDWATCH_ENABLED")
	_ = v.BindEnv("metrics.namespace", "METRICS_CLOUDWATCH_NAMESPACE")
	_ = v.BindEnv("metrics.region", "AWS_REGION")

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, err
			}
		}
	}

	cfg := &Config{}

	// Explicitly map values to avoid tag mismatch issues.
	cfg.Google.AdminEmail = v.GetString("google.admin_email")
	cfg.Google.CustomerID = v.GetString("google.customer_id")
	cfg.Google.CredentialsFile = v.GetString("google.credentials_file")
	cfg.Google.CredentialsSecret = v.GetString("google.credentials_secret")
	cfg.Google.VerifyCredentials = v.GetBool("google.verify_credentials")

	cfg.Server.Transport = v.GetString("server.transport")
	cfg.Server.HTTPAddr = v.GetString("server.http_addr")
	cfg.Server.ReadOnly = v.GetBool("server.read_only")

	cfg.Log.Level = v.GetString("log.level")
	cfg.Log.Format = v.GetString("log.format")

	cfg.Metrics.PrometheusEnabled = v.GetBool("metrics.prometheus_enabled")
	cfg.Metrics.CloudWatchEnabled = v.GetBool("metrics.cloudwatch_enabled")
	cfg.Metrics.Namespace = v.GetString("metrics.namespace")
	cfg.Metrics.Region = v.GetString("metrics.region")

	cfg.IsLambda = os.Getenv("AWS_LAMBDA_FUNCTION_NAME") != ""

	return cfg, nil
}

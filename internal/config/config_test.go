package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestValidateConfig(t *testing.T) {
	validLocal := Config{
		Google: GoogleConfig{
			AdminEmail:      "admin@example.com",
			CustomerID:      "my_customer",
			CredentialsFile: "/tmp/creds.json",
		},
		Server: ServerConfig{
			Transport: TransportStdio,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "json",
		},
	}

	cases := []struct {
		name     string
		cfg      Config
		isLambda bool
		wantErr  string
	}{
		{
			name: "valid local config",
			cfg:  validLocal,
		},
		{
			name: "missing admin email",
			cfg: func() Config {
				c := validLocal
				c.Google.AdminEmail = ""
				return c
			}(),
			wantErr: "google.admin_email is required",
		},
		{
			name: "invalid admin email",
			cfg: func() Config {
				c := validLocal
				c.Google.AdminEmail = "not-an-email"
				return c
			}(),
			wantErr: "google.admin_email must be a valid email",
		},
		{
			name: "missing customer id",
			cfg: func() Config {
				c := validLocal
				c.Google.CustomerID = ""
				return c
			}(),
			wantErr: "google.customer_id",
		},
		{
			name: "no credentials source",
			cfg: func() Config {
				c := validLocal
				c.Google.CredentialsFile = ""
				return c
			}(),
			wantErr: "google.credentials_file or google.credentials_secret",
		},
		{
			name: "unknown transport",
			cfg: func() Config {
				c := validLocal
				c.Server.Transport = "sse"
				return c
			}(),
			wantErr: "server.transport",
		},
		{
			name: "http transport without address",
			cfg: func() Config {
				c := validLocal
				c.Server.Transport = TransportStreamableHTTP
				return c
			}(),
			wantErr: "server.http_addr",
		},
		{
			name: "cloudwatch without region",
			cfg: func() Config {
				c := validLocal
				c.Metrics = MetricsConfig{CloudWatchEnabled: true, Namespace: "NS"}
				return c
			}(),
			wantErr: "metrics.region",
		},
		{
			name:     "lambda missing secret",
			cfg:      validLocal,
			isLambda: true,
			wantErr:  "google.credentials_secret is required",
		},
		{
			name: "valid lambda config",
			cfg: func() Config {
				c := validLocal
				c.Google.CredentialsFile = ""
				c.Google.CredentialsSecret = "google-creds"
				c.Server.Transport = ""
				return c
			}(),
			isLambda: true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := tc.cfg
			cfg.IsLambda = tc.isLambda
			err := Validate(&cfg)
			if tc.wantErr != "" {
				if err == nil {
					t.Fatalf("expected error, got nil")
				}
				if !strings.Contains(err.Error(), tc.wantErr) {
					t.Fatalf("expected error containing %q, got %v", tc.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
		})
	}
}

func TestValidateCollectsAllErrors(t *testing.T) {
	err := Validate(&Config{})
	if err == nil {
		t.Fatalf("expected error, got nil")
	}
	for _, want := range []string{"google.admin_email", "google.customer_id", "server.transport"} {
		if !strings.Contains(err.Error(), want) {
			t.Fatalf("expected %q in %v", want, err)
		}
	}
	if Validate(nil) == nil {
		t.Fatalf("expected error for nil config")
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("GOOGLE_ADMIN_EMAIL", "admin@example.com")
	t.Setenv("AWS_LAMBDA_FUNCTION_NAME", "")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if cfg.Google.AdminEmail != "admin@example.com" {
		t.Fatalf("expected admin email from env, got %q", cfg.Google.AdminEmail)
	}
	if cfg.Google.CustomerID != "my_customer" || cfg.Google.CredentialsFile != "credentials.json" || !cfg.Google.VerifyCredentials {
		t.Fatalf("unexpected google defaults: %#v", cfg.Google)
	}
	if cfg.Server.Transport != TransportStdio || cfg.Server.HTTPAddr != ":8080" || cfg.Server.ReadOnly {
		t.Fatalf("unexpected server defaults: %#v", cfg.Server)
	}
	if !cfg.Metrics.PrometheusEnabled || cfg.Metrics.CloudWatchEnabled || cfg.Metrics.Namespace != "WorkspaceAdminMCP" {
		t.Fatalf("unexpected metrics defaults: %#v", cfg.Metrics)
	}
	if cfg.IsLambda {
		t.Fatalf("expected non-lambda environment")
	}
}

func TestLoadEnvironment(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("GOOGLE_SERVICE_ACCOUNT_FILE", "/secrets/sa.json")
	t.Setenv("GOOGLE_CUSTOMER_ID", "C0abc123")
	t.Setenv("MCP_TRANSPORT", TransportStreamableHTTP)
	t.Setenv("MCP_READ_ONLY", "true")
	t.Setenv("GOOGLE_VERIFY_CREDENTIALS", "false")
	t.Setenv("AWS_LAMBDA_FUNCTION_NAME", "workspace-admin-mcp")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if cfg.Google.CredentialsFile != "/secrets/sa.json" || cfg.Google.CustomerID != "C0abc123" || cfg.Google.VerifyCredentials {
		t.Fatalf("unexpected google config: %#v", cfg.Google)
	}
	if cfg.Server.Transport != TransportStreamableHTTP || !cfg.Server.ReadOnly {
		t.Fatalf("unexpected server config: %#v", cfg.Server)
	}
	if !cfg.IsLambda {
		t.Fatalf("expected lambda environment")
	}
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	path := filepath.Join(dir, "server.yaml")
	content := "google:\n  admin_email: admin@example.com\nserver:\n  transport: streamable-http\n  http_addr: \":9000\"\nlog:\n  level: debug\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if cfg.Google.AdminEmail != "admin@example.com" || cfg.Server.HTTPAddr != ":9000" || cfg.Log.Level != "debug" {
		t.Fatalf("unexpected config: %#v", cfg)
	}

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Fatalf("expected error for missing config file")
	}
}

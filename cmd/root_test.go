package cmd

import (
	"testing"

	"github.com/daniloc96/google-workspace-admin-mcp/internal/config"
)

func TestOverrideConfigFromFlags(t *testing.T) {
	cfg := &config.Config{
		Google: config.GoogleConfig{AdminEmail: "env@example.com", VerifyCredentials: true},
		Server: config.ServerConfig{Transport: config.TransportStdio},
	}

	if err := rootCmd.PersistentFlags().Parse([]string{
		"--google-admin", "flag@example.com",
		"--transport", "streamable-http",
		"--read-only",
		"--verify-credentials=false",
	}); err != nil {
		t.Fatalf("parsing flags: %v", err)
	}
	overrideConfigFromFlags(rootCmd, cfg)

	if cfg.Google.AdminEmail != "flag@example.com" {
		t.Fatalf("expected flag admin email, got %q", cfg.Google.AdminEmail)
	}
	if cfg.Server.Transport != config.TransportStreamableHTTP || !cfg.Server.ReadOnly {
		t.Fatalf("unexpected server config: %#v", cfg.Server)
	}
	if cfg.Google.VerifyCredentials {
		t.Fatalf("expected verification to be disabled")
	}
	if cfg.Google.CustomerID != "" {
		t.Fatalf("expected unchanged customer id, got %q", cfg.Google.CustomerID)
	}
}

package config

import (
	"fmt"
	"net/mail"
	"strings"
)

// Validate ensures configuration is complete and well-formed.
func Validate(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("config is nil")
	}

	var errs []string

	requireEmail := func(value string, field string) {
		if value == "" {
			errs = append(errs, fmt.Sprintf("%s is required", field))
			return
		}
		if _, err := mail.ParseAddress(value); err != nil {
			errs = append(errs, fmt.Sprintf("%s must be a valid email", field))
		}
	}

	requireNonEmpty := func(value string, field string) {
		if value == "" {
			errs = append(errs, fmt.Sprintf("%s is required", field))
		}
	}

	requireEmail(cfg.Google.AdminEmail, "google.admin_email")
	requireNonEmpty(cfg.Google.CustomerID, "google.customer_id")

	if cfg.IsLambda {
		requireNonEmpty(cfg.Google.CredentialsSecret, "google.credentials_secret")
	} else if cfg.Google.CredentialsFile == "" && cfg.Google.CredentialsSecret == "" {
		errs = append(errs, "google.credentials_file or google.credentials_secret is required")
	}

	if !cfg.IsLambda {
		switch cfg.Server.Transport {
		case TransportStdio:
		case TransportStreamableHTTP:
			requireNonEmpty(cfg.Server.HTTPAddr, "server.http_addr")
		default:
			errs = append(errs, fmt.Sprintf("server.transport must be %s or %s", TransportStdio, TransportStreamableHTTP))
		}
	}

	if cfg.Metrics.CloudWatchEnabled {
		requireNonEmpty(cfg.Metrics.Namespace, "metrics.namespace")
		requireNonEmpty(cfg.Metrics.Region, "metrics.region")
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed: %s", strings.Join(errs, "; "))
	}

	return nil
}

package google

import (
	"context"
	"fmt"

	"golang.org/x/oauth2/google"
	admin "google.golang.org/api/admin/directory/v1"
	"google.golang.org/api/option"
)

// Scopes are the Directory API scopes the service account must be granted
// through domain-wide delegation.
var Scopes = []string{
	admin.AdminDirectoryUserScope,
	admin.AdminDirectoryUserAliasScope,
	admin.AdminDirectoryGroupScope,
	admin.AdminDirectoryGroupMemberScope,
	admin.AdminDirectoryOrgunitScope,
}

// AuthenticationError reports that the credential setup failed. The process
// cannot serve any tool without credentials, so callers treat it as fatal.
type AuthenticationError struct {
	Reason string
	Err    error
}

func (e *AuthenticationError) Error() string {
	if e.Err == nil {
		return "google authentication failed: " + e.Reason
	}
	return fmt.Sprintf("google authentication failed: %s: %v", e.Reason, e.Err)
}

func (e *AuthenticationError) Unwrap() error {
	return e.Err
}

// Authenticate builds an Admin SDK Directory service that impersonates
// adminEmail through domain-wide delegation. When verify is set, a token is
// fetched up front so a rejected delegation is reported at startup.
func Authenticate(ctx context.Context, credentialsJSON []byte, adminEmail string, verify bool, scopes ...string) (*admin.Service, error) {
	if len(credentialsJSON) == 0 {
		return nil, &AuthenticationError{Reason: "service account key is empty"}
	}
	if adminEmail == "" {
		return nil, &AuthenticationError{Reason: "admin email is required for impersonation"}
	}
	if len(scopes) == 0 {
		scopes = Scopes
	}

	config, err := google.JWTConfigFromJSON(credentialsJSON, scopes...)
	if err != nil {
		return nil, &AuthenticationError{Reason: "invalid service account key", Err: err}
	}
	config.Subject = adminEmail

	ts := config.TokenSource(ctx)
	if verify {
		if _, err := ts.Token(); err != nil {
			return nil, &AuthenticationError{Reason: "delegated token request rejected", Err: err}
		}
	}

	svc, err := admin.NewService(ctx, option.WithTokenSource(ts))
	if err != nil {
		return nil, &AuthenticationError{Reason: "creating directory service", Err: err}
	}
	return svc, nil
}

package secrets

import (
	"bytes"
	"fmt"
	"os"

	"github.com/aws/aws-secretsmanager-caching-go/v2/secretcache"
)

// SecretGetter is the part of the Secrets Manager cache used here.
type SecretGetter interface {
	GetSecretString(secretID string) (string, error)
}

// Manager wraps the Secrets Manager cache client.
type Manager struct {
	cache SecretGetter
}

// NewManager creates a new Secrets Manager cache.
func NewManager() (*Manager, error) {
	cache, err := secretcache.New()
	if err != nil {
		return nil, err
	}
	return &Manager{cache: cache}, nil
}

// GetSecret retrieves a secret value from Secrets Manager.
func (m *Manager) GetSecret(secretName string) ([]byte, error) {
	if secretName == "" {
		return nil, fmt.Errorf("secret name is required")
	}
	value, err := m.cache.GetSecretString(secretName)
	if err != nil {
		return nil, fmt.Errorf("reading secret %s: %w", secretName, err)
	}
	return nonEmpty([]byte(value), "secret "+secretName)
}

// LoadSecretFromFile reads a secret value from a local file.
func LoadSecretFromFile(path string) ([]byte, error) {
	if path == "" {
		return nil, fmt.Errorf("file path is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return nonEmpty(data, "file "+path)
}

var newManager = NewManager

// ResolveSecretValue loads a secret from Secrets Manager when a secret name
// is given, otherwise from the local file.
func ResolveSecretValue(secretName string, filePath string) ([]byte, error) {
	if secretName != "" {
		manager, err := newManager()
		if err != nil {
			return nil, err
		}
		return manager.GetSecret(secretName)
	}
	return LoadSecretFromFile(filePath)
}

func nonEmpty(data []byte, source string) ([]byte, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, fmt.Errorf("%s is empty", source)
	}
	return data, nil
}

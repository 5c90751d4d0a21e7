package config

import (
	"os"
	"strings"
)

// CredentialEnvKey names the variable holding the api-sports key.
const CredentialEnvKey = "API_FOOTBALL_KEY"

// EnvCredential reads the provider key from the process environment on every call,
// so a rotated key is picked up without a restart.
type EnvCredential struct{}

func (EnvCredential) Credential() string {
	return strings.TrimSpace(os.Getenv(CredentialEnvKey))
}

package ai

import (
	"os"
)

// Credential is the opaque key presented to the remote image service.
type Credential struct {
	Token string
	Desc  string
}

func (c Credential) Empty() bool {
	return c.Token == ""
}

const apiKeyEnv = "GEMINI_API_KEY"

// ResolveCredential picks the credential for a request. Precedence:
// explicit value, then the configured key, then the process environment.
// The zero Credential is returned when nothing resolves; callers must
// treat that as a hard failure before any network I/O.
func ResolveCredential(explicit, configured string) Credential {
	if explicit != "" {
		return Credential{Token: explicit, Desc: "explicit"}
	}
	if configured != "" {
		return Credential{Token: configured, Desc: "config"}
	}
	if fromEnv := os.Getenv(apiKeyEnv); fromEnv != "" {
		return Credential{Token: fromEnv, Desc: "env"}
	}
	return Credential{}
}

package secrets

import (
	"fmt"
	"os"
	"strings"
)

// Source describes where a secret value may come from. Resolution order is
// File, then Value, then Env.
type Source struct {
	// Name is used in error messages to give context about the secret.
	Name string
	// Value is an inline secret provided via configuration or flags.
	Value string
	// File points to a file containing the secret.
	File string
	// Env names an environment variable holding the secret.
	Env string
}

// Load resolves the secret value from the source. The returned secret is
// always trimmed; an error is returned when no usable value is found.
func Load(src Source) (string, error) {
	name := strings.TrimSpace(src.Name)
	if name == "" {
		name = "secret"
	}

	if file := strings.TrimSpace(src.File); file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			return "", fmt.Errorf("reading %s from file %q: %w", name, file, err)
		}
		secret := strings.TrimSpace(string(data))
		if secret == "" {
			return "", fmt.Errorf("%s file %q is empty", name, file)
		}
		return secret, nil
	}

	if secret := strings.TrimSpace(src.Value); secret != "" {
		return secret, nil
	}

	if env := strings.TrimSpace(src.Env); env != "" {
		if secret := strings.TrimSpace(os.Getenv(env)); secret != "" {
			return secret, nil
		}
	}

	return "", fmt.Errorf("%s is not configured", name)
}

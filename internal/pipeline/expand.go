package pipeline

import (
	"fmt"
	"os"
	"strings"
)

// Expand substitutes $VAR and ${VAR} references in command against env. Every
// referenced variable must be present and non-empty; a silent empty expansion
// would turn e.g. "$FLAKE8 script/linting/lint" into a different command.
func Expand(command string, env map[string]string) (string, error) {
	var missing []string
	expanded := os.Expand(command, func(name string) string {
		value, ok := env[name]
		if !ok || value == "" {
			missing = append(missing, name)
			return ""
		}
		return value
	})
	if len(missing) > 0 {
		return "", fmt.Errorf("%w: %s", ErrUnresolvedVar, strings.Join(missing, ", "))
	}
	return expanded, nil
}

// MergeEnv layers overrides on top of base without mutating either.
func MergeEnv(base, overrides map[string]string) map[string]string {
	merged := make(map[string]string, len(base)+len(overrides))
	for k, v := range base {
		merged[k] = v
	}
	for k, v := range overrides {
		merged[k] = v
	}
	return merged
}

package runner

import (
	"fmt"
	"os"
	"path/filepath"
)

// LogStore saves per-step output under <baseDir>/run-<id>/.
type LogStore struct {
	BaseDir string
}

func NewLogStore(baseDir string) *LogStore {
	return &LogStore{BaseDir: baseDir}
}

func (ls *LogStore) SaveStepLog(runID uint64, stepIndex int, stepName, output string) (string, error) {
	runDir := filepath.Join(ls.BaseDir, fmt.Sprintf("run-%d", runID))
	if err := os.MkdirAll(runDir, 0775); err != nil {
		return "", fmt.Errorf("failed to create log directory: %w", err)
	}

	filename := fmt.Sprintf("%02d_%s.log", stepIndex, sanitize(stepName))
	path := filepath.Join(runDir, filename)
	if err := os.WriteFile(path, []byte(output), 0644); err != nil {
		return "", fmt.Errorf("failed to write step log: %w", err)
	}
	return path, nil
}

// sanitize removes special characters from step names for filenames
func sanitize(name string) string {
	clean := make([]rune, 0, len(name))
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9', r == '-', r == '_':
			clean = append(clean, r)
		case r == ' ':
			clean = append(clean, '_')
		}
	}
	if len(clean) == 0 {
		return "step"
	}
	if len(clean) > 64 {
		clean = clean[:64]
	}
	return string(clean)
}

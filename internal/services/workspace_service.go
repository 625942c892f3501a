package services

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/PeterJCLaw/sb-vision/internal/logger"
	"github.com/gofrs/flock"
	"go.uber.org/zap"
)

type WorkspaceServiceConfig struct {
	BaseDir string
}

// WorkspaceService hands out fresh per-run directories. Each workspace is
// guarded by a file lock so two runners never share a checkout.
type WorkspaceService struct {
	BaseDir string
}

func NewWorkspaceService(config *WorkspaceServiceConfig) *WorkspaceService {
	return &WorkspaceService{BaseDir: config.BaseDir}
}

type Workspace struct {
	Path string
	lock *flock.Flock
}

// Acquire locks and recreates the workspace directory for a run.
func (s *WorkspaceService) Acquire(ctx context.Context, runID uint64) (*Workspace, error) {
	if err := os.MkdirAll(s.BaseDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create workspace base directory: %w", err)
	}

	path, err := filepath.Abs(filepath.Join(s.BaseDir, fmt.Sprintf("run-%d", runID)))
	if err != nil {
		return nil, err
	}

	lock := flock.New(path + ".lock")
	locked, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("failed to lock workspace: %w", err)
	}
	if !locked {
		return nil, fmt.Errorf("workspace %s is held by another runner", path)
	}

	// Remove any leftover checkout from a previous run with the same ID.
	if _, err := os.Stat(path); err == nil {
		logger.Debug("Removing existing workspace", zap.String("path", path))
		if err := os.RemoveAll(path); err != nil {
			lock.Unlock()
			return nil, fmt.Errorf("failed to remove existing workspace: %w", err)
		}
	}
	if err := os.MkdirAll(path, 0755); err != nil {
		lock.Unlock()
		return nil, fmt.Errorf("failed to create workspace: %w", err)
	}

	logger.Debug("Successfully created workspace", zap.String("path", path))
	return &Workspace{Path: path, lock: lock}, nil
}

// Release drops the workspace lock. The directory is left in place so step
// logs and build output remain inspectable after the run.
func (w *Workspace) Release() error {
	return w.lock.Unlock()
}

// Cleanup removes the workspace directory.
func (s *WorkspaceService) Cleanup(ctx context.Context, w *Workspace) error {
	if err := os.RemoveAll(w.Path); err != nil {
		logger.Error("Failed to remove workspace", err, zap.String("path", w.Path))
		return fmt.Errorf("failed to remove workspace: %w", err)
	}
	return nil
}

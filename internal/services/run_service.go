package services

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"time"

	"github.com/PeterJCLaw/sb-vision/internal/constants"
	"github.com/PeterJCLaw/sb-vision/internal/dto"
	"github.com/PeterJCLaw/sb-vision/internal/logger"
	"github.com/PeterJCLaw/sb-vision/internal/pipeline"
	"github.com/PeterJCLaw/sb-vision/internal/runner"
	"go.uber.org/zap"
)

type RunServiceConfig struct {
	QueueService     *QueueService
	GitService       *GitService
	WorkspaceService *WorkspaceService
	Runner           *runner.Runner
}

// RunService owns the lifecycle of a pipeline run: workspace, checkout,
// definition load, validation, step execution, status bookkeeping.
type RunService struct {
	QueueService     *QueueService
	GitService       *GitService
	WorkspaceService *WorkspaceService
	Runner           *runner.Runner
}

func NewRunService(config *RunServiceConfig) *RunService {
	return &RunService{
		QueueService:     config.QueueService,
		GitService:       config.GitService,
		WorkspaceService: config.WorkspaceService,
		Runner:           config.Runner,
	}
}

func (s *RunService) ProcessRun(ctx context.Context, run *dto.PipelineRun) error {
	logger.Info("Processing run", zap.Uint64("run_id", run.ID), zap.String("repo", run.RepoUrl))

	now := time.Now()
	run.StartedAt = &now
	run.Status = constants.RunStatusRunning
	s.saveRun(ctx, run)

	if run.PipelinePath == "" {
		run.PipelinePath = constants.DefaultPipelinePath
	}

	// 1. Acquire workspace
	ws, err := s.WorkspaceService.Acquire(ctx, run.ID)
	if err != nil {
		return s.failRun(ctx, run, fmt.Errorf("workspace initialization failed: %w", err))
	}
	defer ws.Release()

	// 2. Acquire source checkout. The definition itself lives in the
	// repository, so the clone happens before it can be read; the checkout
	// step in the definition marks where this landed.
	cloneOutput, err := s.GitService.CloneRepository(ctx, run, ws.Path)
	if err != nil {
		return s.failRun(ctx, run, fmt.Errorf("repository clone failed: %w", err))
	}
	checkout := func(ctx context.Context) (string, error) {
		return cloneOutput, nil
	}

	// 3. Load and validate the pipeline definition
	def, err := pipeline.Load(filepath.Join(ws.Path, run.PipelinePath))
	if err != nil {
		return s.failRun(ctx, run, err)
	}
	if err := def.Validate(); err != nil {
		return s.failRun(ctx, run, err)
	}

	// 4. Execute jobs sequentially, in stable name order
	names := make([]string, 0, len(def.Jobs))
	for name := range def.Jobs {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if err := s.Runner.RunJob(ctx, run, def.Jobs[name], ws.Path, checkout); err != nil {
			return s.failRun(ctx, run, fmt.Errorf("job %q failed: %w", name, err))
		}
		s.saveRun(ctx, run)
	}

	completed := time.Now()
	run.CompletedAt = &completed
	run.Status = constants.RunStatusSuccess
	s.saveRun(ctx, run)

	logger.Info("Run succeeded", zap.Uint64("run_id", run.ID))
	return nil
}

func (s *RunService) failRun(ctx context.Context, run *dto.PipelineRun, err error) error {
	reason := err.Error()
	completed := time.Now()
	run.FailureReason = &reason
	run.CompletedAt = &completed
	run.Status = constants.RunStatusFailed
	s.saveRun(ctx, run)

	logger.Error("Run failed", err, zap.Uint64("run_id", run.ID))
	return err
}

func (s *RunService) saveRun(ctx context.Context, run *dto.PipelineRun) {
	if s.QueueService == nil {
		return
	}
	if err := s.QueueService.SaveRun(ctx, run); err != nil {
		logger.Warn("Failed to save run record", zap.Uint64("run_id", run.ID), zap.Error(err))
	}
}

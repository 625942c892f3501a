package runner

import (
	"context"
	"fmt"
	"time"

	"github.com/PeterJCLaw/sb-vision/internal/constants"
	"github.com/PeterJCLaw/sb-vision/internal/dto"
	"github.com/PeterJCLaw/sb-vision/internal/logger"
	"github.com/PeterJCLaw/sb-vision/internal/pipeline"
	"go.uber.org/zap"
)

// CheckoutFunc acquires the source checkout into the run workspace. The git
// behavior lives with the caller; the runner only cares whether it succeeded.
type CheckoutFunc func(ctx context.Context) (string, error)

// Runner executes a job's steps strictly in the declared order, aborting on
// the first failure. There is no retry and no branching.
type Runner struct {
	executor    Executor
	logs        *LogStore
	stepTimeout time.Duration
}

func NewRunner(executor Executor, logs *LogStore, stepTimeout time.Duration) *Runner {
	return &Runner{
		executor:    executor,
		logs:        logs,
		stepTimeout: stepTimeout,
	}
}

// RunJob executes every step of job against workDir, appending a StepResult
// per step to run. The first non-zero exit halts the run; remaining steps are
// marked skipped and the error is returned.
func (r *Runner) RunJob(ctx context.Context, run *dto.PipelineRun, job pipeline.Job, workDir string, checkout CheckoutFunc) error {
	base := len(run.Steps)
	for _, step := range job.Steps {
		run.Steps = append(run.Steps, dto.StepResult{
			Name:    step.Name,
			Command: step.Command,
			Status:  constants.StepStatusPending,
		})
	}

	for i, step := range job.Steps {
		result := &run.Steps[base+i]
		started := time.Now()
		result.StartedAt = &started
		result.Status = constants.StepStatusRunning

		logger.Info("Running step",
			zap.Uint64("run_id", run.ID),
			zap.Int("step", i+1),
			zap.String("name", step.Name))

		outcome, err := r.runStep(ctx, run, job, step, i, workDir, checkout)

		finished := time.Now()
		result.FinishedAt = &finished
		result.Output = outcome.Output
		result.ExitCode = outcome.ExitCode

		if logPath, logErr := r.logs.SaveStepLog(run.ID, base+i+1, step.Name, outcome.Output); logErr != nil {
			logger.Warn("Failed to save step log", zap.Error(logErr))
		} else {
			result.LogPath = logPath
		}

		if err == nil && outcome.ExitCode != 0 {
			err = fmt.Errorf("step %q failed with exit code %d", step.Name, outcome.ExitCode)
		}
		if err != nil {
			result.Status = constants.StepStatusFailed
			for j := base + i + 1; j < len(run.Steps); j++ {
				run.Steps[j].Status = constants.StepStatusSkipped
			}
			logger.Error("Step failed", err,
				zap.Uint64("run_id", run.ID),
				zap.Int("step", i+1))
			return err
		}

		result.Status = constants.StepStatusSuccess
		logger.Debug("Step completed",
			zap.Uint64("run_id", run.ID),
			zap.Int("step", i+1),
			zap.Duration("duration", finished.Sub(started)))
	}
	return nil
}

func (r *Runner) runStep(ctx context.Context, run *dto.PipelineRun, job pipeline.Job, step pipeline.Step, index int, workDir string, checkout CheckoutFunc) (Outcome, error) {
	stepCtx, cancel := context.WithTimeout(ctx, r.stepTimeout)
	defer cancel()

	if step.Type == pipeline.StepTypeCheckout {
		output, err := checkout(stepCtx)
		if err != nil {
			return Outcome{Output: output, ExitCode: -1}, fmt.Errorf("checkout failed: %w", err)
		}
		return Outcome{Output: output, ExitCode: 0}, nil
	}

	command, err := pipeline.Expand(step.Command, job.Environment)
	if err != nil {
		return Outcome{ExitCode: -1}, err
	}

	return r.executor.RunStep(stepCtx, StepSpec{
		RunID:   run.ID,
		Index:   index + 1,
		Name:    step.Name,
		Command: command,
		Image:   job.PrimaryImage(),
		WorkDir: workDir,
		Env:     job.Environment,
	})
}

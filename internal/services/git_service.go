package services

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"

	"github.com/PeterJCLaw/sb-vision/internal/dto"
	"github.com/PeterJCLaw/sb-vision/internal/logger"
	"go.uber.org/zap"
)

type GitServiceConfig struct {
}
type GitService struct {
}

func NewGitService(config *GitServiceConfig) *GitService {
	return &GitService{}
}

// CloneRepository clones the run's repository into workDir and checks out the
// requested branch/commit. The combined git output is returned so it can be
// recorded as the checkout step's output.
func (a *GitService) CloneRepository(ctx context.Context, run *dto.PipelineRun, workDir string) (string, error) {
	var out bytes.Buffer

	// Execute: git clone <repo_url> <work_dir>
	args := []string{"clone"}

	// If branch is provided, add "-b branchName"
	if run.Branch != nil && *run.Branch != "" {
		args = append(args, "-b", *run.Branch)
	}
	args = append(args, run.RepoUrl, workDir)

	cloneCmd := exec.CommandContext(ctx, "git", args...)
	cloneCmd.Stdout = &out
	cloneCmd.Stderr = &out
	if err := cloneCmd.Run(); err != nil {
		logger.Error("Git clone failed", err, zap.String("repo", run.RepoUrl))
		return out.String(), fmt.Errorf("failed to git clone: %w", err)
	}

	// Check out the commit hash if provided
	if run.CommitHash != nil && *run.CommitHash != "" {
		checkoutCmd := exec.CommandContext(ctx, "git", "checkout", *run.CommitHash)
		checkoutCmd.Dir = workDir
		checkoutCmd.Stdout = &out
		checkoutCmd.Stderr = &out

		if err := checkoutCmd.Run(); err != nil {
			logger.Error("Git checkout failed", err, zap.String("commit", *run.CommitHash))
			return out.String(), fmt.Errorf("failed to checkout commit %s: %w", *run.CommitHash, err)
		}
	}

	logger.Debug("Successfully cloned repository",
		zap.String("repo", run.RepoUrl),
		zap.String("workdir", workDir))
	return out.String(), nil
}

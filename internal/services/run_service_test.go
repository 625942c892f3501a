package services

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
	"time"

	"github.com/PeterJCLaw/sb-vision/internal/constants"
	"github.com/PeterJCLaw/sb-vision/internal/dto"
	"github.com/PeterJCLaw/sb-vision/internal/runner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// initSourceRepo creates a local git repository containing a pipeline
// definition, for cloning over the file protocol.
func initSourceRepo(t *testing.T, definition string) string {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not available")
	}

	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, ".circleci"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".circleci", "config.yml"), []byte(definition), 0644))

	for _, args := range [][]string{
		{"init", "--initial-branch", "main"},
		{"add", "."},
		{"-c", "user.name=test", "-c", "user.email=test@example.com", "commit", "-m", "initial"},
	} {
		cmd := exec.Command("git", args...)
		cmd.Dir = dir
		out, err := cmd.CombinedOutput()
		require.NoError(t, err, "git %v: %s", args, out)
	}
	return dir
}

func newTestRunService(t *testing.T) *RunService {
	t.Helper()
	return NewRunService(&RunServiceConfig{
		GitService:       NewGitService(&GitServiceConfig{}),
		WorkspaceService: NewWorkspaceService(&WorkspaceServiceConfig{BaseDir: t.TempDir()}),
		Runner:           runner.NewRunner(runner.NewLocalExecutor(), runner.NewLogStore(t.TempDir()), time.Minute),
	})
}

func TestProcessRunSuccess(t *testing.T) {
	repo := initSourceRepo(t, `
version: 2
jobs:
  build:
    docker:
      - image: python:3.5.4
    environment:
      GREETING: hello
    steps:
      - checkout
      - run: echo "$GREETING" > greeting.txt
      - run:
          name: verify
          command: grep hello greeting.txt
`)

	svc := newTestRunService(t)
	run := &dto.PipelineRun{ID: 1, RepoUrl: repo}

	err := svc.ProcessRun(context.Background(), run)
	require.NoError(t, err)

	assert.Equal(t, constants.RunStatusSuccess, run.Status)
	require.Len(t, run.Steps, 3)
	for _, step := range run.Steps {
		assert.Equal(t, constants.StepStatusSuccess, step.Status)
	}
	assert.NotNil(t, run.StartedAt)
	assert.NotNil(t, run.CompletedAt)
}

func TestProcessRunAbortsOnFailingStep(t *testing.T) {
	repo := initSourceRepo(t, `
version: 2
jobs:
  build:
    docker:
      - image: python:3.5.4
    steps:
      - checkout
      - run: exit 1
      - run: echo never
`)

	svc := newTestRunService(t)
	run := &dto.PipelineRun{ID: 2, RepoUrl: repo}

	err := svc.ProcessRun(context.Background(), run)
	require.Error(t, err)

	assert.Equal(t, constants.RunStatusFailed, run.Status)
	require.NotNil(t, run.FailureReason)
	require.Len(t, run.Steps, 3)
	assert.Equal(t, constants.StepStatusSuccess, run.Steps[0].Status)
	assert.Equal(t, constants.StepStatusFailed, run.Steps[1].Status)
	assert.Equal(t, constants.StepStatusSkipped, run.Steps[2].Status)
}

func TestProcessRunRejectsInvalidDefinition(t *testing.T) {
	repo := initSourceRepo(t, `
version: 2
jobs:
  build:
    docker:
      - image: python:3.5.4
    steps:
      - run: $UNDEFINED script/linting/lint
`)

	svc := newTestRunService(t)
	run := &dto.PipelineRun{ID: 3, RepoUrl: repo}

	err := svc.ProcessRun(context.Background(), run)
	require.Error(t, err)
	assert.Equal(t, constants.RunStatusFailed, run.Status)
	assert.Empty(t, run.Steps, "no step may execute when validation fails")
}

func TestProcessRunCloneFailure(t *testing.T) {
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not available")
	}

	svc := newTestRunService(t)
	run := &dto.PipelineRun{ID: 4, RepoUrl: filepath.Join(t.TempDir(), "missing")}

	err := svc.ProcessRun(context.Background(), run)
	require.Error(t, err)
	assert.Equal(t, constants.RunStatusFailed, run.Status)
}

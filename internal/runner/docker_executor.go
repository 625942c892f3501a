package runner

import (
	"context"
	"fmt"

	docker_client "github.com/PeterJCLaw/sb-vision/internal/client/docker"
	"github.com/PeterJCLaw/sb-vision/internal/logger"
	"github.com/docker/docker/api/types/container"
	"go.uber.org/zap"
)

// ContainerWorkDir is where the run workspace is mounted inside step containers.
const ContainerWorkDir = "/workspace"

// DockerExecutor runs each step in its own container on the pipeline image,
// with the run workspace bind-mounted so state carries between steps.
type DockerExecutor struct {
	DockerClient *docker_client.DockerClient

	pulled map[string]bool
}

func NewDockerExecutor(dockerClient *docker_client.DockerClient) *DockerExecutor {
	return &DockerExecutor{
		DockerClient: dockerClient,
		pulled:       make(map[string]bool),
	}
}

func (e *DockerExecutor) RunStep(ctx context.Context, spec StepSpec) (Outcome, error) {
	if !e.pulled[spec.Image] {
		if err := e.DockerClient.PullImage(ctx, spec.Image); err != nil {
			return Outcome{ExitCode: -1}, fmt.Errorf("failed to pull image %s: %w", spec.Image, err)
		}
		e.pulled[spec.Image] = true
	}

	containerName := fmt.Sprintf("pipeline-run-%d-step-%d", spec.RunID, spec.Index)

	// A container with this name may be left over from an interrupted run.
	if e.DockerClient.DoesContainerExist(ctx, containerName) {
		logger.Debug("Container name is taken, removing existing container", zap.String("name", containerName))
		if err := e.DockerClient.RemoveContainer(ctx, containerName); err != nil {
			return Outcome{ExitCode: -1}, fmt.Errorf("failed to remove existing step container: %w", err)
		}
	}

	volumeBinds := []string{fmt.Sprintf("%s:%s", spec.WorkDir, ContainerWorkDir)}
	containerID, err := e.DockerClient.CreateStepContainer(ctx, spec.Image, containerName, ContainerWorkDir, spec.Command, flattenEnv(spec.Env), volumeBinds)
	if err != nil {
		return Outcome{ExitCode: -1}, fmt.Errorf("failed to create step container: %w", err)
	}
	defer func() {
		if err := e.DockerClient.RemoveContainer(context.WithoutCancel(ctx), containerID); err != nil {
			logger.Warn("Failed to remove step container", zap.Error(err))
		}
	}()

	if err := e.DockerClient.StartContainer(ctx, containerID); err != nil {
		return Outcome{ExitCode: -1}, fmt.Errorf("failed to start step container: %w", err)
	}

	statusCh, errCh := e.DockerClient.WaitContainer(ctx, containerID, container.WaitConditionNotRunning)
	var exitCode int
	select {
	case err := <-errCh:
		if err != nil {
			return Outcome{ExitCode: -1}, fmt.Errorf("error waiting for step container: %w", err)
		}
	case status := <-statusCh:
		exitCode = int(status.StatusCode)
	}

	output, err := e.DockerClient.GetContainerLogs(ctx, containerID)
	if err != nil {
		logger.Warn("Failed to get step container logs", zap.Error(err))
	}

	return Outcome{Output: output, ExitCode: exitCode}, nil
}

package docker_client

import (
	"context"
	"io"
	"strings"

	"github.com/PeterJCLaw/sb-vision/internal/logger"
	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/api/types/image"
	"github.com/docker/docker/client"
	"go.uber.org/zap"
)

type DockerClient struct {
	client *client.Client
}

func NewDockerClient() (*DockerClient, error) {
	dockerClient, err := client.NewClientWithOpts(client.FromEnv)
	if err != nil {
		return nil, err
	}
	return &DockerClient{
		client: dockerClient,
	}, nil
}

func (c *DockerClient) Close() error {
	return c.client.Close()
}

func (c *DockerClient) PullImage(ctx context.Context, imageName string) error {
	logger.Debug("Pulling image", zap.String("image", imageName))

	reader, err := c.client.ImagePull(ctx, imageName, image.PullOptions{})
	if err != nil {
		logger.Error("Failed to pull image", err, zap.String("image", imageName))
		return err
	}
	defer reader.Close()

	// Wait for pull to complete
	io.Copy(io.Discard, reader)

	logger.Debug("Successfully pulled image", zap.String("image", imageName))
	return nil
}

// CreateStepContainer creates a container that runs a single pipeline step
// command under sh -c, with the run workspace bind-mounted at workDir.
func (c *DockerClient) CreateStepContainer(ctx context.Context, imageName, containerName, workDir, command string, env, volumeBinds []string) (string, error) {
	logger.Debug("Creating step container",
		zap.String("image", imageName),
		zap.String("name", containerName))

	resp, err := c.client.ContainerCreate(ctx,
		&container.Config{
			Image:      imageName,
			WorkingDir: workDir,
			Env:        env,
			Cmd:        []string{"sh", "-c", command},
		},
		&container.HostConfig{
			Binds: volumeBinds, // e.g., ["/tmp/run-1:/workspace"]
		},
		nil, nil, containerName)
	if err != nil {
		logger.Error("Failed to create step container", err)
		return "", err
	}

	logger.Debug("Successfully created step container", zap.String("container_id", resp.ID))
	return resp.ID, nil
}

func (c *DockerClient) StartContainer(ctx context.Context, containerId string) error {
	err := c.client.ContainerStart(ctx, containerId, container.StartOptions{})
	if err != nil {
		logger.Error("failed to start container", err, zap.String("container_id", containerId))
		return err
	}
	logger.Debug("Successfully started container", zap.String("container_id", containerId))
	return nil
}

func (c *DockerClient) StopContainer(ctx context.Context, containerId string) error {
	err := c.client.ContainerStop(ctx, containerId, container.StopOptions{})
	if err != nil {
		logger.Error("failed to stop container", err, zap.String("container_id", containerId))
		return err
	}
	logger.Debug("Successfully stopped container", zap.String("container_id", containerId))
	return nil
}

func (c *DockerClient) WaitContainer(ctx context.Context, containerID string, condition container.WaitCondition) (<-chan container.WaitResponse, <-chan error) {
	return c.client.ContainerWait(ctx, containerID, condition)
}

func (c *DockerClient) DoesContainerExist(ctx context.Context, containerName string) bool {
	_, err := c.client.ContainerInspect(ctx, containerName)
	if err != nil {
		if client.IsErrNotFound(err) {
			return false
		}
		// A different error (like connection issues) gets logged, and the
		// container is treated as missing or unreachable.
		logger.Error("Error inspecting container", err)
		return false
	}
	return true
}

// RemoveContainer handles both name and ID identifiers.
func (c *DockerClient) RemoveContainer(ctx context.Context, identifier string) error {
	// If identifier is empty, skip to avoid Docker API errors
	if identifier == "" {
		return nil
	}

	logger.Debug("Removing container", zap.String("identifier", identifier))

	err := c.client.ContainerRemove(ctx, identifier, container.RemoveOptions{
		Force:         true,
		RemoveVolumes: true,
	})
	if err != nil {
		if client.IsErrNotFound(err) {
			logger.Debug("Container already gone", zap.String("identifier", identifier))
			return nil
		}
		logger.Error("Failed to remove container", err, zap.String("identifier", identifier))
		return err
	}

	logger.Debug("Successfully removed container", zap.String("identifier", identifier))
	return nil
}

func (c *DockerClient) GetContainerLogs(ctx context.Context, containerID string) (string, error) {
	options := container.LogsOptions{
		ShowStdout: true,
		ShowStderr: true,
		Follow:     false,
		Timestamps: false,
	}
	reader, err := c.client.ContainerLogs(ctx, containerID, options)
	if err != nil {
		logger.Error("failed to get container logs", err, zap.String("container_id", containerID))
		return "", err
	}
	defer reader.Close()

	buf := new(strings.Builder)
	if _, err = io.Copy(buf, reader); err != nil {
		return "", err
	}
	return buf.String(), nil
}

package services

import (
	"context"
	"fmt"

	docker_client "github.com/PeterJCLaw/sb-vision/internal/client/docker"
	redis_client "github.com/PeterJCLaw/sb-vision/internal/client/redis"
	"github.com/PeterJCLaw/sb-vision/internal/config"
	"github.com/PeterJCLaw/sb-vision/internal/logger"
	"github.com/PeterJCLaw/sb-vision/internal/runner"
)

type Services struct {
	RunService       *RunService
	GitService       *GitService
	WorkspaceService *WorkspaceService
	QueueService     *QueueService
}

func NewServices(ctx context.Context, config *config.Config) (*Services, error) {
	redisClient, err := redis_client.NewRedisClient(ctx, config.Redis)
	if err != nil {
		logger.Error("failed to init redis client", err)
		return nil, err
	}

	executor, err := newExecutor(config)
	if err != nil {
		return nil, err
	}

	gitService := NewGitService(&GitServiceConfig{})
	workspaceService := NewWorkspaceService(&WorkspaceServiceConfig{
		BaseDir: config.Runner.WorkspaceDir,
	})
	queueService := NewQueueService(&QueueServiceConfig{
		RedisClient: redisClient,
	})

	stepRunner := runner.NewRunner(executor, runner.NewLogStore(config.Runner.LogsDir), config.Runner.StepTimeout)

	runService := NewRunService(&RunServiceConfig{
		QueueService:     queueService,
		GitService:       gitService,
		WorkspaceService: workspaceService,
		Runner:           stepRunner,
	})

	return &Services{
		RunService:       runService,
		GitService:       gitService,
		WorkspaceService: workspaceService,
		QueueService:     queueService,
	}, nil
}

func newExecutor(config *config.Config) (runner.Executor, error) {
	switch config.Runner.Executor {
	case "docker":
		dockerClient, err := docker_client.NewDockerClient()
		if err != nil {
			logger.Error("failed to init docker client", err)
			return nil, err
		}
		return runner.NewDockerExecutor(dockerClient), nil
	case "local":
		return runner.NewLocalExecutor(), nil
	default:
		return nil, fmt.Errorf("unknown runner executor %q", config.Runner.Executor)
	}
}

package config

import (
	"time"

	"github.com/PeterJCLaw/sb-vision/internal/helpers"
)

type ServerConfig struct {
	Host string
	Port int
}

type RedisConfig struct {
	Host string
	Port int
}

// RunnerConfig controls how pipeline steps get executed.
type RunnerConfig struct {
	// Executor selects "docker" (step containers) or "local" (sh -c on the host).
	Executor     string
	WorkspaceDir string
	LogsDir      string
	StepTimeout  time.Duration
}

type WebhookConfig struct {
	Secret string
}

type Config struct {
	Environment string
	Server      *ServerConfig
	Redis       *RedisConfig
	Runner      *RunnerConfig
	Webhook     *WebhookConfig
}

func NewConfig() *Config {
	return &Config{
		Environment: helpers.GetEnv("APP_ENV", "development"),
		Server: &ServerConfig{
			Host: helpers.GetEnv("SERVER_HOST", "localhost"),
			Port: helpers.GetEnv("SERVER_PORT", 8081),
		},
		Redis: &RedisConfig{
			Host: helpers.GetEnv("REDIS_HOST", "localhost"),
			Port: helpers.GetEnv("REDIS_PORT", 6379),
		},
		Runner: &RunnerConfig{
			Executor:     helpers.GetEnv("RUNNER_EXECUTOR", "docker"),
			WorkspaceDir: helpers.GetEnv("RUNNER_WORKSPACE_DIR", "tmp"),
			LogsDir:      helpers.GetEnv("RUNNER_LOGS_DIR", "logs"),
			StepTimeout:  time.Duration(helpers.GetEnv("RUNNER_STEP_TIMEOUT_MINUTES", 10)) * time.Minute,
		},
		Webhook: &WebhookConfig{
			Secret: helpers.GetEnv("WEBHOOK_SECRET", ""),
		},
	}
}

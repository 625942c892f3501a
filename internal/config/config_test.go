package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewConfigDefaults(t *testing.T) {
	cfg := NewConfig()

	assert.Equal(t, "localhost", cfg.Server.Host)
	assert.Equal(t, 8081, cfg.Server.Port)
	assert.Equal(t, 6379, cfg.Redis.Port)
	assert.Equal(t, "docker", cfg.Runner.Executor)
	assert.Equal(t, 10*time.Minute, cfg.Runner.StepTimeout)
}

func TestNewConfigEnvOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("RUNNER_EXECUTOR", "local")
	t.Setenv("RUNNER_STEP_TIMEOUT_MINUTES", "3")
	t.Setenv("WEBHOOK_SECRET", "hunter2")

	cfg := NewConfig()

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "local", cfg.Runner.Executor)
	assert.Equal(t, 3*time.Minute, cfg.Runner.StepTimeout)
	assert.Equal(t, "hunter2", cfg.Webhook.Secret)
}

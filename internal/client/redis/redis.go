package redis_client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/PeterJCLaw/sb-vision/internal/config"
	"github.com/PeterJCLaw/sb-vision/internal/dto"
	"github.com/PeterJCLaw/sb-vision/internal/logger"
	"github.com/redis/go-redis/v9"
)

const (
	runQueueKey  = "pipeline:runs:queue"
	runRecordKey = "pipeline:runs:%d"
	runSeqKey    = "pipeline:runs:seq"
)

type RedisClient struct {
	config *config.RedisConfig
	client *redis.Client
}

func NewRedisClient(ctx context.Context, config *config.RedisConfig) (*RedisClient, error) {
	redisAddr := fmt.Sprintf("%s:%d", config.Host, config.Port)
	client := redis.NewClient(&redis.Options{Addr: redisAddr})

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}
	logger.Debug("Successfully connected to redis")

	return &RedisClient{
		client: client,
		config: config,
	}, nil
}

func (c *RedisClient) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

// NextRunID allocates a fresh run identifier.
func (c *RedisClient) NextRunID(ctx context.Context) (uint64, error) {
	id, err := c.client.Incr(ctx, runSeqKey).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to allocate run id: %w", err)
	}
	return uint64(id), nil
}

func (c *RedisClient) EnqueueRun(ctx context.Context, run *dto.PipelineRun) error {
	data, err := json.Marshal(run)
	if err != nil {
		return fmt.Errorf("failed to marshal run: %w", err)
	}
	if err := c.client.LPush(ctx, runQueueKey, data).Err(); err != nil {
		return fmt.Errorf("failed to enqueue run: %w", err)
	}
	return nil
}

// DequeueRun pops the oldest pending run. An empty queue returns (nil, nil).
func (c *RedisClient) DequeueRun(ctx context.Context) (*dto.PipelineRun, error) {
	data, err := c.client.RPop(ctx, runQueueKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to rpop: %w", err)
	}
	var run dto.PipelineRun
	if err := json.Unmarshal([]byte(data), &run); err != nil {
		return nil, fmt.Errorf("failed to unmarshal queued run: %w", err)
	}
	return &run, nil
}

// SaveRun stores the run record so its status can be queried over the API.
func (c *RedisClient) SaveRun(ctx context.Context, run *dto.PipelineRun) error {
	data, err := json.Marshal(run)
	if err != nil {
		return fmt.Errorf("failed to marshal run: %w", err)
	}
	key := fmt.Sprintf(runRecordKey, run.ID)
	if err := c.client.Set(ctx, key, data, 0).Err(); err != nil {
		return fmt.Errorf("failed to save run %d: %w", run.ID, err)
	}
	return nil
}

// GetRun fetches a run record by ID. A missing record returns (nil, nil).
func (c *RedisClient) GetRun(ctx context.Context, id uint64) (*dto.PipelineRun, error) {
	key := fmt.Sprintf(runRecordKey, id)
	data, err := c.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get run %d: %w", id, err)
	}
	var run dto.PipelineRun
	if err := json.Unmarshal([]byte(data), &run); err != nil {
		return nil, fmt.Errorf("failed to unmarshal run %d: %w", id, err)
	}
	return &run, nil
}

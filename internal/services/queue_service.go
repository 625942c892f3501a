package services

import (
	"context"
	"time"

	redis_client "github.com/PeterJCLaw/sb-vision/internal/client/redis"
	"github.com/PeterJCLaw/sb-vision/internal/dto"
)

type QueueServiceConfig struct {
	RedisClient *redis_client.RedisClient
}

type QueueService struct {
	RedisClient *redis_client.RedisClient
}

func NewQueueService(config *QueueServiceConfig) *QueueService {
	return &QueueService{
		RedisClient: config.RedisClient,
	}
}

// EnqueueRun assigns an ID if the run has none, persists the record and
// pushes it onto the pending queue.
func (s *QueueService) EnqueueRun(ctx context.Context, run *dto.PipelineRun) error {
	if run.ID == 0 {
		id, err := s.RedisClient.NextRunID(ctx)
		if err != nil {
			return err
		}
		run.ID = id
	}
	run.UpdatedAt = time.Now()
	if err := s.RedisClient.SaveRun(ctx, run); err != nil {
		return err
	}
	return s.RedisClient.EnqueueRun(ctx, run)
}

func (s *QueueService) DequeueRun(ctx context.Context) (*dto.PipelineRun, error) {
	return s.RedisClient.DequeueRun(ctx)
}

func (s *QueueService) SaveRun(ctx context.Context, run *dto.PipelineRun) error {
	run.UpdatedAt = time.Now()
	return s.RedisClient.SaveRun(ctx, run)
}

func (s *QueueService) GetRun(ctx context.Context, id uint64) (*dto.PipelineRun, error) {
	return s.RedisClient.GetRun(ctx, id)
}

package app

import (
	"context"
	"time"

	"github.com/PeterJCLaw/sb-vision/internal/api/routes"
	"github.com/PeterJCLaw/sb-vision/internal/config"
	"github.com/PeterJCLaw/sb-vision/internal/helpers"
	"github.com/PeterJCLaw/sb-vision/internal/logger"
	"github.com/PeterJCLaw/sb-vision/internal/server"
	"github.com/PeterJCLaw/sb-vision/internal/services"
	"go.uber.org/zap"
)

const idlePollInterval = 2 * time.Second

type App struct {
	Config   *config.Config
	Server   *server.HTTPServer
	Services *services.Services
}

func NewApp(ctx context.Context) (*App, error) {
	helpers.LoadEnv()
	cfg := config.NewConfig()

	if err := logger.Init(cfg.Environment); err != nil {
		return nil, err
	}

	svcs, err := services.NewServices(ctx, cfg)
	if err != nil {
		return nil, err
	}

	router := routes.InitRouter(svcs, cfg.Webhook.Secret)
	httpServer, err := server.NewHTTPServer(cfg.Server, router)
	if err != nil {
		return nil, err
	}

	return &App{
		Config:   cfg,
		Server:   httpServer,
		Services: svcs,
	}, nil
}

// StartWorker runs the single pipeline worker: dequeue, process, repeat.
// Runs execute one at a time; there is no parallelism between runs.
func (a *App) StartWorker(ctx context.Context) {
	go func() {
		logger.Debug("Starting worker")
		for {
			select {
			case <-ctx.Done():
				logger.Info("Worker stopped")
				return
			default:
				run, err := a.Services.QueueService.DequeueRun(ctx)
				if err != nil {
					logger.Error("Failed to dequeue run", err)
					time.Sleep(idlePollInterval)
					continue
				}
				if run == nil {
					time.Sleep(idlePollInterval)
					continue
				}

				if err := a.Services.RunService.ProcessRun(ctx, run); err != nil {
					logger.Error("Run processing failed", err, zap.Uint64("run_id", run.ID))
				}
			}
		}
	}()
}
